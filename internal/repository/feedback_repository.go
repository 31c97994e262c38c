package repository

import (
	"neuro_study_backend/internal/model"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(feedback *model.Feedback) error {
	return r.DB.Create(feedback).Error
}

func (r *FeedbackRepository) ListByPlan(userID uint, planID string) ([]model.Feedback, error) {
	var list []model.Feedback
	err := r.DB.Where("user_id = ? AND plan_id = ?", userID, planID).
		Order("slot_index ASC").
		Find(&list).Error
	return list, err
}
