package controller

import (
	"strconv"
	"time"

	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CognitiveController struct {
	CognitiveService *service.CognitiveService
}

func NewCognitiveController(cognitiveService *service.CognitiveService) *CognitiveController {
	return &CognitiveController{CognitiveService: cognitiveService}
}

// CognitiveEventRequest 答题记录
type CognitiveEventRequest struct {
	QuestionID string     `json:"question_id" binding:"required"`
	Subject    string     `json:"subject" binding:"required"`
	TimeTaken  float64    `json:"time_taken" binding:"required,gt=0"`
	Correct    *bool      `json:"correct" binding:"required"`
	Confidence int        `json:"confidence" binding:"required,min=1,max=5"`
	RetryCount int        `json:"retry_count" binding:"min=0"`
	Timestamp  *time.Time `json:"timestamp"`
}

// CognitiveEventResponse 答题记录
type CognitiveEventResponse struct {
	ID         uint      `json:"id"`
	QuestionID string    `json:"question_id"`
	Subject    string    `json:"subject"`
	TimeTaken  float64   `json:"time_taken"`
	Correct    bool      `json:"correct"`
	Confidence int       `json:"confidence"`
	RetryCount int       `json:"retry_count"`
	Timestamp  time.Time `json:"timestamp"`
}

func newCognitiveEventResponse(e *model.CognitiveEvent) CognitiveEventResponse {
	return CognitiveEventResponse{
		ID:         e.ID,
		QuestionID: e.QuestionID,
		Subject:    e.Subject,
		TimeTaken:  e.TimeTaken,
		Correct:    e.Correct,
		Confidence: e.Confidence,
		RetryCount: e.RetryCount,
		Timestamp:  e.Timestamp,
	}
}

// @Summary 提交答题记录
// @Description 记录一次答题行为，用于认知画像
// @Tags 认知画像
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CognitiveEventRequest true "答题记录"
// @Success 201 {object} util.Response{data=CognitiveEventResponse}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /cognitive/submit [post]
func (c *CognitiveController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CognitiveEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event := &model.CognitiveEvent{
		UserID:     user.UserID,
		QuestionID: req.QuestionID,
		Subject:    req.Subject,
		TimeTaken:  req.TimeTaken,
		Correct:    *req.Correct,
		Confidence: req.Confidence,
		RetryCount: req.RetryCount,
	}
	if req.Timestamp != nil {
		event.Timestamp = *req.Timestamp
	}

	if err := c.CognitiveService.Submit(ctx.Request.Context(), event); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, newCognitiveEventResponse(event))
}

// @Summary 最近答题记录
// @Tags 认知画像
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数" default(20)
// @Success 200 {object} util.Response{data=[]CognitiveEventResponse}
// @Router /cognitive/events [get]
func (c *CognitiveController) ListEvents(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(util.DefaultEventLimit)))
	if err != nil {
		util.BadRequest(ctx, "invalid limit")
		return
	}

	events, err := c.CognitiveService.ListRecent(user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	list := make([]CognitiveEventResponse, 0, len(events))
	for i := range events {
		list = append(list, newCognitiveEventResponse(&events[i]))
	}
	util.Success(ctx, list)
}

// @Summary 认知画像
// @Description 根据最近答题记录分类学习者并给出干预建议
// @Tags 认知画像
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ProfileResult}
// @Router /cognitive/profile [get]
func (c *CognitiveController) Profile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.CognitiveService.Profile(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}
