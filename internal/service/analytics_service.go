package service

import (
	"math"

	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/repository"
	"neuro_study_backend/internal/util"
)

type AnalyticsService struct {
	CognitiveRepo *repository.CognitiveRepository
}

func NewAnalyticsService(cognitiveRepo *repository.CognitiveRepository) *AnalyticsService {
	return &AnalyticsService{CognitiveRepo: cognitiveRepo}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Performance 按答题日期汇总正确率(%)与平均用时，日期升序
func (s *AnalyticsService) Performance(userID uint) ([]model.DailyPerformance, error) {
	events, err := s.CognitiveRepo.ListAll(userID)
	if err != nil {
		return nil, err
	}

	type dayStats struct {
		correct, total int
		totalTime      float64
	}

	var order []string
	stats := make(map[string]*dayStats)
	for _, e := range events {
		day := e.Timestamp.Format(util.DateFormat)
		st, ok := stats[day]
		if !ok {
			st = &dayStats{}
			stats[day] = st
			order = append(order, day)
		}
		st.total++
		st.totalTime += e.TimeTaken
		if e.Correct {
			st.correct++
		}
	}

	result := make([]model.DailyPerformance, 0, len(order))
	for _, day := range order {
		st := stats[day]
		result = append(result, model.DailyPerformance{
			Date:      day,
			Accuracy:  round1(float64(st.correct) / float64(st.total) * 100),
			AvgTime:   round1(st.totalTime / float64(st.total)),
			Questions: st.total,
		})
	}
	return result, nil
}
