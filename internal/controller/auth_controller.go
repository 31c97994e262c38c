package controller

import (
	"errors"
	"net/http"

	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=6"`
	Subjects       []string `json:"subjects"`
	ExamDate       string   `json:"exam_date"`
	DailyFreeSlots []string `json:"daily_free_slots"`
}

// UserResponse 用户信息
type UserResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Subjects       []string `json:"subjects"`
	ExamDate       string   `json:"exam_date,omitempty"`
	DailyFreeSlots []string `json:"daily_free_slots"`
}

func newUserResponse(u *model.User) UserResponse {
	subjects := []string(u.Subjects)
	if subjects == nil {
		subjects = []string{}
	}
	slots := []string(u.DailyFreeSlots)
	if slots == nil {
		slots = []string{}
	}
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Subjects:       subjects,
		ExamDate:       u.ExamDate,
		DailyFreeSlots: slots,
	}
}

// Register godoc
// @Summary 注册新用户
// @Description 注册学习者，科目必须在课程目录中，空闲时段格式为 HH:MM-HH:MM
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} util.Response{data=UserResponse} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Subjects:       req.Subjects,
		ExamDate:       req.ExamDate,
		DailyFreeSlots: req.DailyFreeSlots,
	}

	if err := c.AuthService.Register(user); err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, "该邮箱已被注册")
		case errors.Is(err, util.ErrInvalidSubject), errors.Is(err, util.ErrInvalidFreeSlot):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, newUserResponse(user))
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户身份并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "邮箱或密码错误"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, "邮箱或密码错误")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me godoc
// @Summary 当前用户信息
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=UserResponse} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetUser(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.Unauthorized(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, newUserResponse(user))
}
