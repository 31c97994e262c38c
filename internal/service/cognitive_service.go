package service

import (
	"context"
	"time"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/repository"
	"neuro_study_backend/internal/util"
	"neuro_study_backend/pkg/logger"

	"go.uber.org/zap"
)

type CognitiveService struct {
	Repo   *repository.CognitiveRepository
	Cache  *repository.PlanCache
	Engine *EngineHolder
	now    func() time.Time
}

func NewCognitiveService(repo *repository.CognitiveRepository, cache *repository.PlanCache, holder *EngineHolder) *CognitiveService {
	return &CognitiveService{
		Repo:   repo,
		Cache:  cache,
		Engine: holder,
		now:    time.Now,
	}
}

// ProfileResult 认知画像及对应的干预建议
type ProfileResult struct {
	engine.CognitiveProfile
	Intervention string `json:"intervention"`
	SampleSize   int    `json:"sample_size"`
}

// Submit 记录一次答题，并使当天缓存的计划失效
func (s *CognitiveService) Submit(ctx context.Context, event *model.CognitiveEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.Repo.Create(event); err != nil {
		return err
	}

	today := s.now().Format(util.DateFormat)
	if err := s.Cache.Invalidate(ctx, event.UserID, today); err != nil {
		logger.Log.Warn("Failed to invalidate plan cache",
			zap.Uint("userID", event.UserID), zap.Error(err))
	}
	return nil
}

func (s *CognitiveService) ListRecent(userID uint, limit int) ([]model.CognitiveEvent, error) {
	if limit <= 0 {
		limit = util.DefaultEventLimit
	}
	if limit > util.MaxListLimit {
		limit = util.MaxListLimit
	}
	return s.Repo.ListRecent(userID, limit)
}

func (s *CognitiveService) Profile(userID uint) (*ProfileResult, error) {
	events, err := s.Repo.ListRecent(userID, s.Engine.eventWindow())
	if err != nil {
		return nil, err
	}

	profiler := s.Engine.Builder().Profiler()
	profile := profiler.Classify(model.ToAnswerEvents(events))
	return &ProfileResult{
		CognitiveProfile: profile,
		Intervention:     profiler.Intervention(profile.Type),
		SampleSize:       len(events),
	}, nil
}
