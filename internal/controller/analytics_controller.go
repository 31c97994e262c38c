package controller

import (
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary 答题表现趋势
// @Description 按天统计正确率与平均用时
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.DailyPerformance}
// @Router /analytics/performance [get]
func (c *AnalyticsController) Performance(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	data, err := c.AnalyticsService.Performance(user.UserID)
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	util.Success(ctx, data)
}
