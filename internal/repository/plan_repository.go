package repository

import (
	"neuro_study_backend/internal/model"

	"gorm.io/gorm"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) Create(plan *model.StudyPlan) error {
	return r.DB.Create(plan).Error
}

func (r *PlanRepository) UpdateArchiveURL(id, url string) error {
	return r.DB.Model(&model.StudyPlan{}).
		Where("id = ?", id).
		Update("archive_url", url).
		Error
}

// FindLatestByDate 同一天可能生成多份计划，取最新一份
func (r *PlanRepository) FindLatestByDate(userID uint, date string) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindByIDAndUserID(id string, userID uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) ListRecent(userID uint, limit int) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	return plans, err
}
