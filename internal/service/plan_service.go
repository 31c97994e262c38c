package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/repository"
	"neuro_study_backend/internal/util"
	"neuro_study_backend/pkg/logger"
	"neuro_study_backend/pkg/monitoring"
	"neuro_study_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PlanService struct {
	UserRepo      *repository.UserRepository
	CognitiveRepo *repository.CognitiveRepository
	PlanRepo      *repository.PlanRepository
	Cache         *repository.PlanCache
	Energy        *EnergyService
	Archive       *PlanArchiveService
	Engine        *EngineHolder
	now           func() time.Time
}

func NewPlanService(
	userRepo *repository.UserRepository,
	cognitiveRepo *repository.CognitiveRepository,
	planRepo *repository.PlanRepository,
	cache *repository.PlanCache,
	energy *EnergyService,
	archive *PlanArchiveService,
	holder *EngineHolder,
) *PlanService {
	return &PlanService{
		UserRepo:      userRepo,
		CognitiveRepo: cognitiveRepo,
		PlanRepo:      planRepo,
		Cache:         cache,
		Energy:        energy,
		Archive:       archive,
		Engine:        holder,
		now:           time.Now,
	}
}

// GenerateRequest 计划生成参数，均可为空
type GenerateRequest struct {
	Date          string
	OverrideSlots []string
	Preferences   *engine.Preferences
	Mastery       map[string]float64
}

type PlanMetadata struct {
	GeneratedAt           time.Time `json:"generated_at"`
	ModelVersion          string    `json:"model_version"`
	TotalStudyTime        int       `json:"total_study_time"`
	EstimatedLearningGain float64   `json:"estimated_learning_gain"`
}

// PlanResult 计划接口的响应体
type PlanResult struct {
	ID               string                  `json:"id"`
	Date             string                  `json:"date"`
	CognitiveProfile engine.CognitiveProfile `json:"cognitive_profile"`
	EnergyScore      int                     `json:"energy_score"`
	EnergyLevel      engine.EnergyLevel      `json:"energy_level"`
	StudyPlan        []engine.ScheduleSlot   `json:"study_plan"`
	Metadata         PlanMetadata            `json:"metadata"`
}

func newPlanResult(id string, plan *engine.StudyPlan, generatedAt time.Time, version string) *PlanResult {
	return &PlanResult{
		ID:               id,
		Date:             plan.Date,
		CognitiveProfile: plan.CognitiveProfile,
		EnergyScore:      plan.EnergyScore,
		EnergyLevel:      plan.EnergyLevel,
		StudyPlan:        plan.Slots,
		Metadata: PlanMetadata{
			GeneratedAt:           generatedAt,
			ModelVersion:          version,
			TotalStudyTime:        plan.TotalStudyTime,
			EstimatedLearningGain: plan.EstimatedLearningGain,
		},
	}
}

func (s *PlanService) today() string {
	return s.now().Format(util.DateFormat)
}

// Generate 读取学习者状态，生成并保存一份计划。
// 空闲时段非法时返回 engine.ErrInvalidTimeWindow。
func (s *PlanService) Generate(ctx context.Context, userID uint, req GenerateRequest) (result *PlanResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "PlanService.Generate", attribute.Int("user.id", int(userID)))
	defer func() { tracing.EndSpan(span, err) }()

	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	events, err := s.CognitiveRepo.ListRecent(userID, s.Engine.eventWindow())
	if err != nil {
		return nil, err
	}

	energyScore, err := s.Energy.CurrentScore(userID)
	if err != nil {
		return nil, err
	}

	freeSlots := []string(user.DailyFreeSlots)
	if len(req.OverrideSlots) > 0 {
		freeSlots = req.OverrideSlots
	}

	date := req.Date
	if date == "" {
		date = s.today()
	}

	start := time.Now()
	plan, err := s.Engine.Builder().Build(engine.BuildRequest{
		Date:        date,
		Subjects:    user.Subjects,
		FreeWindows: freeSlots,
		Events:      model.ToAnswerEvents(events),
		EnergyScore: energyScore,
		Mastery:     req.Mastery,
		Preferences: req.Preferences,
	})
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	span.SetAttributes(
		attribute.String("plan.profile", string(plan.CognitiveProfile.Type)),
		attribute.String("plan.energy_level", string(plan.EnergyLevel)),
		attribute.Int("plan.slots", len(plan.Slots)),
	)
	monitoring.ObservePlan(string(plan.CognitiveProfile.Type), string(plan.EnergyLevel), len(plan.Slots), elapsed)

	record := model.NewStudyPlan(userID, plan, util.ModelVersion)
	if err := s.PlanRepo.Create(record); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}

	s.archive(ctx, record)

	if err := s.Cache.Set(ctx, userID, &repository.CachedPlan{ID: record.ID, Plan: *plan}); err != nil {
		logger.Log.Warn("Failed to cache plan", zap.String("planID", record.ID), zap.Error(err))
	}

	logger.Log.Info("Study plan generated",
		zap.Uint("userID", userID),
		zap.String("planID", record.ID),
		zap.String("date", plan.Date),
		zap.String("profile", string(plan.CognitiveProfile.Type)),
		zap.Int("energyScore", plan.EnergyScore),
		zap.Int("slots", len(plan.Slots)),
		zap.Duration("elapsed", elapsed))

	return newPlanResult(record.ID, plan, record.CreatedAt, util.ModelVersion), nil
}

// archive 归档失败不影响计划生成
func (s *PlanService) archive(ctx context.Context, record *model.StudyPlan) {
	if s.Archive == nil {
		return
	}
	url, err := s.Archive.Archive(ctx, record)
	if err != nil {
		logger.Log.Error("Failed to archive plan", zap.String("planID", record.ID), zap.Error(err))
		return
	}
	record.ArchiveURL = url
	if err := s.PlanRepo.UpdateArchiveURL(record.ID, url); err != nil {
		logger.Log.Error("Failed to save archive url", zap.String("planID", record.ID), zap.Error(err))
	}
}

// Today 返回今天最新的计划，优先读缓存
func (s *PlanService) Today(ctx context.Context, userID uint) (*PlanResult, error) {
	date := s.today()

	cached, ok, err := s.Cache.Get(ctx, userID, date)
	if err != nil {
		logger.Log.Warn("Failed to read plan cache", zap.Uint("userID", userID), zap.Error(err))
	}
	if ok {
		record, err := s.PlanRepo.FindByIDAndUserID(cached.ID, userID)
		if err == nil {
			return newPlanResult(record.ID, &cached.Plan, record.CreatedAt, record.ModelVersion), nil
		}
	}

	record, err := s.PlanRepo.FindLatestByDate(userID, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	plan := record.Plan()
	if err := s.Cache.Set(ctx, userID, &repository.CachedPlan{ID: record.ID, Plan: plan}); err != nil {
		logger.Log.Warn("Failed to cache plan", zap.String("planID", record.ID), zap.Error(err))
	}
	return newPlanResult(record.ID, &plan, record.CreatedAt, record.ModelVersion), nil
}

func (s *PlanService) History(userID uint, limit int) ([]model.PlanSummary, error) {
	if limit <= 0 {
		limit = util.DefaultHistoryLimit
	}
	if limit > util.MaxListLimit {
		limit = util.MaxListLimit
	}

	records, err := s.PlanRepo.ListRecent(userID, limit)
	if err != nil {
		return nil, err
	}

	list := make([]model.PlanSummary, 0, len(records))
	for _, r := range records {
		plan := r.Plan()
		list = append(list, model.PlanSummary{
			ID:                    r.ID,
			Date:                  r.Date,
			ProfileType:           r.ProfileType,
			EnergyScore:           r.EnergyScore,
			TotalStudyTime:        r.TotalStudyTime,
			EstimatedLearningGain: plan.EstimatedLearningGain,
			CreatedAt:             r.CreatedAt,
		})
	}
	return list, nil
}
