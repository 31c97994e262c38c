package repository

import (
	"neuro_study_backend/internal/model"

	"gorm.io/gorm"
)

type EnergyRepository struct {
	DB *gorm.DB
}

func NewEnergyRepository(db *gorm.DB) *EnergyRepository {
	return &EnergyRepository{DB: db}
}

func (r *EnergyRepository) Create(log *model.EnergyLog) error {
	return r.DB.Create(log).Error
}

// FindLatest 没有记录时返回 gorm.ErrRecordNotFound
func (r *EnergyRepository) FindLatest(userID uint) (*model.EnergyLog, error) {
	var log model.EnergyLog
	err := r.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *EnergyRepository) ListRecent(userID uint, limit int) ([]model.EnergyLog, error) {
	var logs []model.EnergyLog
	err := r.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
