package controller

import (
	"errors"

	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	FeedbackService *service.FeedbackService
}

func NewFeedbackController(feedbackService *service.FeedbackService) *FeedbackController {
	return &FeedbackController{FeedbackService: feedbackService}
}

// FeedbackRequest 计划时段反馈
type FeedbackRequest struct {
	PlanID         string   `json:"plan_id" binding:"required"`
	SlotIndex      *int     `json:"slot_index" binding:"required,min=0"`
	CompletionRate *int     `json:"completion_rate" binding:"required,min=0,max=100"`
	Difficulty     int      `json:"difficulty" binding:"required,min=1,max=5"`
	ActualTime     *int     `json:"actual_time" binding:"omitempty,min=0"`
	QuizScore      *float64 `json:"quiz_score" binding:"omitempty,min=0,max=100"`
}

// @Summary 提交计划反馈
// @Tags 反馈
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body FeedbackRequest true "反馈内容"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "计划不存在"
// @Router /feedback/submit [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback := &model.Feedback{
		UserID:         user.UserID,
		PlanID:         req.PlanID,
		SlotIndex:      *req.SlotIndex,
		CompletionRate: *req.CompletionRate,
		Difficulty:     req.Difficulty,
		ActualTime:     req.ActualTime,
		QuizScore:      req.QuizScore,
	}

	if err := c.FeedbackService.Submit(feedback); err != nil {
		switch {
		case errors.Is(err, util.ErrPlanNotFound):
			util.NotFound(ctx, "学习计划不存在")
		case errors.Is(err, service.ErrSlotOutOfRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": feedback.ID})
}
