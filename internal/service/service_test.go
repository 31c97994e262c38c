package service

import (
	"path/filepath"
	"testing"
	"time"

	"neuro_study_backend/internal/config"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/repository"
	"neuro_study_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// testEnv 基于 sqlite 的完整服务依赖，Redis 关闭
type testEnv struct {
	db        *gorm.DB
	cfg       *config.Config
	holder    *EngineHolder
	userRepo  *repository.UserRepository
	auth      *AuthService
	cognitive *CognitiveService
	energy    *EnergyService
	plan      *PlanService
	feedback  *FeedbackService
	analytics *AnalyticsService
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: filepath.Join(t.TempDir(), "archive"),
		},
		Scheduler: config.SchedulerConfig{
			MaxSessionDuration: 60,
			MinBreak:           15,
			EventWindow:        20,
			BurnoutWindow:      7,
			PlanCacheTTLHours:  24,
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := testConfig(t)
	holder, err := NewEngineHolder(cfg.Scheduler)
	require.NoError(t, err)

	env := &testEnv{db: db, cfg: cfg, holder: holder}
	env.userRepo = repository.NewUserRepository(db)
	cognitiveRepo := repository.NewCognitiveRepository(db)
	planRepo := repository.NewPlanRepository(db)
	cache := repository.NewPlanCache(nil, cfg.Scheduler.PlanCacheTTL())

	env.auth = NewAuthService(env.userRepo, holder, cfg)
	env.cognitive = NewCognitiveService(cognitiveRepo, cache, holder)
	env.cognitive.now = clock
	env.energy = NewEnergyService(repository.NewEnergyRepository(db), holder)
	env.energy.now = clock
	env.plan = NewPlanService(env.userRepo, cognitiveRepo, planRepo, cache, env.energy, NewPlanArchiveService(cfg), holder)
	env.plan.now = clock
	env.feedback = NewFeedbackService(repository.NewFeedbackRepository(db), planRepo)
	env.analytics = NewAnalyticsService(cognitiveRepo)
	return env
}

func (e *testEnv) register(t *testing.T, email string, subjects, slots []string) *model.User {
	t.Helper()
	u := &model.User{
		Name:           "Student",
		Email:          email,
		Password:       "secret123",
		Subjects:       subjects,
		DailyFreeSlots: slots,
	}
	require.NoError(t, e.auth.Register(u))
	return u
}
