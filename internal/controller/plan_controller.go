package controller

import (
	"errors"
	"strconv"
	"time"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{PlanService: planService}
}

// GeneratePlanRequest 计划生成参数
type GeneratePlanRequest struct {
	Date          string              `json:"date"`
	OverrideSlots []string            `json:"override_slots"`
	Preferences   *engine.Preferences `json:"preferences"`
	// key 为 "科目:主题"，取值 0-1
	Mastery map[string]float64 `json:"mastery"`
}

// @Summary 生成学习计划
// @Description 根据认知画像、精力和空闲时段生成当天的学习计划
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GeneratePlanRequest false "生成参数"
// @Success 201 {object} util.Response{data=service.PlanResult}
// @Failure 400 {object} util.Response "时段或日期格式错误"
// @Router /plan/generate [post]
func (c *PlanController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GeneratePlanRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}
	if req.Date != "" {
		if _, err := time.Parse(util.DateFormat, req.Date); err != nil {
			util.BadRequest(ctx, "date must be YYYY-MM-DD")
			return
		}
	}

	result, err := c.PlanService.Generate(ctx.Request.Context(), user.UserID, service.GenerateRequest{
		Date:          req.Date,
		OverrideSlots: req.OverrideSlots,
		Preferences:   req.Preferences,
		Mastery:       req.Mastery,
	})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidTimeWindow):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.Unauthorized(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// @Summary 今日计划
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PlanResult}
// @Failure 404 {object} util.Response "今天还没有生成计划"
// @Router /plan/today [get]
func (c *PlanController) Today(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.PlanService.Today(ctx.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx, "学习计划不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary 历史计划
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数" default(10)
// @Success 200 {object} util.Response{data=[]model.PlanSummary}
// @Router /plan/history [get]
func (c *PlanController) History(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(util.DefaultHistoryLimit)))
	if err != nil {
		util.BadRequest(ctx, "invalid limit")
		return
	}

	list, err := c.PlanService.History(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}
