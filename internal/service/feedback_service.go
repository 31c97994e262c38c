package service

import (
	"errors"
	"fmt"

	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/repository"
	"neuro_study_backend/internal/util"

	"gorm.io/gorm"
)

var ErrSlotOutOfRange = errors.New("slot index out of range")

type FeedbackService struct {
	Repo     *repository.FeedbackRepository
	PlanRepo *repository.PlanRepository
}

func NewFeedbackService(repo *repository.FeedbackRepository, planRepo *repository.PlanRepository) *FeedbackService {
	return &FeedbackService{Repo: repo, PlanRepo: planRepo}
}

// Submit 记录某个计划时段的反馈，计划必须属于该用户
func (s *FeedbackService) Submit(feedback *model.Feedback) error {
	plan, err := s.PlanRepo.FindByIDAndUserID(feedback.PlanID, feedback.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPlanNotFound
	}
	if err != nil {
		return err
	}

	slots := plan.Plan().Slots
	if feedback.SlotIndex < 0 || feedback.SlotIndex >= len(slots) {
		return fmt.Errorf("%w: %d (plan has %d slots)", ErrSlotOutOfRange, feedback.SlotIndex, len(slots))
	}
	return s.Repo.Create(feedback)
}

func (s *FeedbackService) ListByPlan(userID uint, planID string) ([]model.Feedback, error) {
	return s.Repo.ListByPlan(userID, planID)
}
