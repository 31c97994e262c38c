package controller

import (
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB     *gorm.DB
	Engine *service.EngineHolder
}

func NewHealthController(db *gorm.DB, holder *service.EngineHolder) *HealthController {
	return &HealthController{DB: db, Engine: holder}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response "数据库不可用"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.ServiceUnavailable(ctx, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status":        "healthy",
		"model_version": util.ModelVersion,
		"components": gin.H{
			"database": "up",
			"subjects": len(c.Engine.Builder().Catalog().Subjects()),
		},
	})
}
