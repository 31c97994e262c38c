package service

import (
	"errors"
	"time"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/repository"

	"gorm.io/gorm"
)

// DefaultEnergyScore 无精力记录时使用的分数
const DefaultEnergyScore = 50

type EnergyService struct {
	Repo   *repository.EnergyRepository
	Engine *EngineHolder
	now    func() time.Time
}

func NewEnergyService(repo *repository.EnergyRepository, holder *EngineHolder) *EnergyService {
	return &EnergyService{Repo: repo, Engine: holder, now: time.Now}
}

// CurrentEnergy 最近一次记录的精力分析；HasData 为 false 时为默认值
type CurrentEnergy struct {
	engine.EnergyAnalysis
	HasData    bool       `json:"has_data"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

type BurnoutResult struct {
	BurnoutRisk float64 `json:"burnout_risk"`
	Window      int     `json:"window"`
	SampleSize  int     `json:"sample_size"`
}

func (s *EnergyService) Submit(log *model.EnergyLog) (*engine.EnergyAnalysis, error) {
	if log.Timestamp.IsZero() {
		log.Timestamp = s.now()
	}
	if err := s.Repo.Create(log); err != nil {
		return nil, err
	}
	analysis := s.Engine.Builder().Analyzer().Analyze(log.SleepHours, log.Tiredness)
	return &analysis, nil
}

func (s *EnergyService) Current(userID uint) (*CurrentEnergy, error) {
	latest, err := s.Repo.FindLatest(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &CurrentEnergy{
			EnergyAnalysis: engine.EnergyAnalysis{
				EnergyScore:           DefaultEnergyScore,
				EnergyLevel:           engine.LevelFor(DefaultEnergyScore),
				RecommendedActivities: []string{},
				AvoidActivities:       []string{},
			},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	recordedAt := latest.Timestamp
	return &CurrentEnergy{
		EnergyAnalysis: s.Engine.Builder().Analyzer().Analyze(latest.SleepHours, latest.Tiredness),
		HasData:        true,
		RecordedAt:     &recordedAt,
	}, nil
}

// CurrentScore 计划生成使用的精力分数
func (s *EnergyService) CurrentScore(userID uint) (int, error) {
	latest, err := s.Repo.FindLatest(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultEnergyScore, nil
	}
	if err != nil {
		return 0, err
	}
	return engine.Score(latest.SleepHours, latest.Tiredness), nil
}

func (s *EnergyService) Burnout(userID uint) (*BurnoutResult, error) {
	window := s.Engine.burnoutWindow()
	logs, err := s.Repo.ListRecent(userID, window)
	if err != nil {
		return nil, err
	}

	samples := make([]engine.EnergySample, 0, len(logs))
	for _, l := range logs {
		samples = append(samples, l.Sample())
	}
	return &BurnoutResult{
		BurnoutRisk: engine.BurnoutRisk(samples, window),
		Window:      window,
		SampleSize:  len(samples),
	}, nil
}
