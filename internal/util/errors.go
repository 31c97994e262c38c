package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPlanNotFound       = errors.New("study plan not found")
	ErrInvalidSubject     = errors.New("unknown subject")
	ErrInvalidFreeSlot    = errors.New("invalid free slot")
)
