package controller

import (
	"time"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnergyController struct {
	EnergyService *service.EnergyService
}

func NewEnergyController(energyService *service.EnergyService) *EnergyController {
	return &EnergyController{EnergyService: energyService}
}

// EnergyLogRequest 睡眠与疲劳自评
type EnergyLogRequest struct {
	SleepHours *float64   `json:"sleep_hours" binding:"required,min=0,max=24"`
	Tiredness  int        `json:"tiredness" binding:"required,min=1,max=5"`
	Timestamp  *time.Time `json:"timestamp"`
}

// EnergyLogResponse 记录结果及即时分析
type EnergyLogResponse struct {
	ID         uint                  `json:"id"`
	SleepHours float64               `json:"sleep_hours"`
	Tiredness  int                   `json:"tiredness"`
	Timestamp  time.Time             `json:"timestamp"`
	Analysis   engine.EnergyAnalysis `json:"analysis"`
}

// @Summary 提交精力记录
// @Tags 精力
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body EnergyLogRequest true "精力记录"
// @Success 201 {object} util.Response{data=EnergyLogResponse}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /energy/submit [post]
func (c *EnergyController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req EnergyLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log := &model.EnergyLog{
		UserID:     user.UserID,
		SleepHours: *req.SleepHours,
		Tiredness:  req.Tiredness,
	}
	if req.Timestamp != nil {
		log.Timestamp = *req.Timestamp
	}

	analysis, err := c.EnergyService.Submit(log)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, EnergyLogResponse{
		ID:         log.ID,
		SleepHours: log.SleepHours,
		Tiredness:  log.Tiredness,
		Timestamp:  log.Timestamp,
		Analysis:   *analysis,
	})
}

// @Summary 当前精力
// @Description 基于最近一次记录；没有记录时返回 50 分 medium
// @Tags 精力
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.CurrentEnergy}
// @Router /energy/current [get]
func (c *EnergyController) Current(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	current, err := c.EnergyService.Current(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, current)
}

// @Summary 倦怠风险
// @Tags 精力
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.BurnoutResult}
// @Router /energy/burnout [get]
func (c *EnergyController) Burnout(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.EnergyService.Burnout(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
