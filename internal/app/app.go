package app

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"neuro_study_backend/internal/config"
	"neuro_study_backend/internal/controller"
	"neuro_study_backend/internal/repository"
	"neuro_study_backend/internal/service"
	"neuro_study_backend/pkg/configwatcher"
	"neuro_study_backend/pkg/database"
	"neuro_study_backend/pkg/logger"
	"neuro_study_backend/pkg/monitoring"
	"neuro_study_backend/pkg/security"
	"neuro_study_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Engine          *service.EngineHolder
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	cognitive *repository.CognitiveRepository
	energy    *repository.EnergyRepository
	plan      *repository.PlanRepository
	feedback  *repository.FeedbackRepository
	planCache *repository.PlanCache
}

type services struct {
	auth      *service.AuthService
	cognitive *service.CognitiveService
	energy    *service.EnergyService
	plan      *service.PlanService
	archive   *service.PlanArchiveService
	feedback  *service.FeedbackService
	analytics *service.AnalyticsService
}

type controllers struct {
	auth      *controller.AuthController
	catalog   *controller.CatalogController
	cognitive *controller.CognitiveController
	energy    *controller.EnergyController
	plan      *controller.PlanController
	feedback  *controller.FeedbackController
	analytics *controller.AnalyticsController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		cognitive: repository.NewCognitiveRepository(db),
		energy:    repository.NewEnergyRepository(db),
		plan:      repository.NewPlanRepository(db),
		feedback:  repository.NewFeedbackRepository(db),
		planCache: repository.NewPlanCache(rdb, cfg.Scheduler.PlanCacheTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.archive = service.NewPlanArchiveService(cfg)
	s.auth = service.NewAuthService(repos.user, a.Engine, cfg)
	s.cognitive = service.NewCognitiveService(repos.cognitive, repos.planCache, a.Engine)
	s.energy = service.NewEnergyService(repos.energy, a.Engine)
	s.plan = service.NewPlanService(
		repos.user,
		repos.cognitive,
		repos.plan,
		repos.planCache,
		s.energy,
		s.archive,
		a.Engine,
	)
	s.feedback = service.NewFeedbackService(repos.feedback, repos.plan)
	s.analytics = service.NewAnalyticsService(repos.cognitive)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		catalog:   controller.NewCatalogController(a.Engine),
		cognitive: controller.NewCognitiveController(s.cognitive),
		energy:    controller.NewEnergyController(s.energy),
		plan:      controller.NewPlanController(s.plan),
		feedback:  controller.NewFeedbackController(s.feedback),
		analytics: controller.NewAnalyticsController(s.analytics),
		health:    controller.NewHealthController(a.DB, a.Engine),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 用已建立的连接组装应用，便于测试注入 sqlite
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	holder, err := service.NewEngineHolder(cfg.Scheduler)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		Engine: holder,
	}

	repos := app.initRepositories(db, rdb, cfg)
	svcs := app.initServices(repos, cfg)
	ctrls := app.initControllers(svcs)

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	// 调度参数与课程目录支持热更新
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		if err := app.Engine.Reload(newCfg.Scheduler); err != nil {
			logger.Log.Error("Failed to reload scheduling engine, keeping previous", zap.Error(err))
		}
	})

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode != gin.ReleaseMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	// 监控初始化
	monitoring.Init()

	app, err := New(cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Config.ConfigPath != "" {
		go func() {
			err := configwatcher.WatchConfig(ctx, a.Config.ConfigPath, []string{a.Config.Scheduler.CatalogPath}, a.applyConfig)
			if err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
	_ = logger.Log.Sync()
}
