package app

import (
	"neuro_study_backend/docs"
	"neuro_study_backend/internal/config"
	"neuro_study_backend/internal/middleware"
	"neuro_study_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/catalog/subjects", c.catalog.ListSubjects)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/auth/me", c.auth.Me)

	cognitive := group.Group("/cognitive")
	{
		cognitive.POST("/submit", c.cognitive.Submit)
		cognitive.GET("/events", c.cognitive.ListEvents)
		cognitive.GET("/profile", c.cognitive.Profile)
	}

	energy := group.Group("/energy")
	{
		energy.POST("/submit", c.energy.Submit)
		energy.GET("/current", c.energy.Current)
		energy.GET("/burnout", c.energy.Burnout)
	}

	plan := group.Group("/plan")
	{
		plan.POST("/generate", c.plan.Generate)
		plan.GET("/today", c.plan.Today)
		plan.GET("/history", c.plan.History)
	}

	group.POST("/feedback/submit", c.feedback.Submit)
	group.GET("/analytics/performance", c.analytics.Performance)
}
