package service

import (
	"errors"
	"fmt"

	"neuro_study_backend/internal/config"
	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/repository"
	"neuro_study_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Engine   *EngineHolder
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, holder *EngineHolder, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Engine:   holder,
		Cfg:      cfg,
	}
}

// validateProfile 校验科目在课程目录中，且空闲时段格式合法
func (s *AuthService) validateProfile(subjects, freeSlots []string) error {
	catalog := s.Engine.Builder().Catalog()
	for _, subject := range subjects {
		if !catalog.Has(subject) {
			return fmt.Errorf("%w: %s", util.ErrInvalidSubject, subject)
		}
	}
	if _, err := engine.ParseTimeWindows(freeSlots); err != nil {
		return fmt.Errorf("%w: %v", util.ErrInvalidFreeSlot, err)
	}
	return nil
}

func (s *AuthService) Register(user *model.User) error {
	if err := s.validateProfile(user.Subjects, user.DailyFreeSlots); err != nil {
		return err
	}

	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	_ = s.UserRepo.UpdateLastLogin(user.ID)

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetUser(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}
