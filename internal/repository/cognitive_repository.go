package repository

import (
	"neuro_study_backend/internal/model"

	"gorm.io/gorm"
)

type CognitiveRepository struct {
	DB *gorm.DB
}

func NewCognitiveRepository(db *gorm.DB) *CognitiveRepository {
	return &CognitiveRepository{DB: db}
}

func (r *CognitiveRepository) Create(event *model.CognitiveEvent) error {
	return r.DB.Create(event).Error
}

// ListRecent 按时间倒序返回最近 limit 条答题记录
func (r *CognitiveRepository) ListRecent(userID uint, limit int) ([]model.CognitiveEvent, error) {
	var events []model.CognitiveEvent
	err := r.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// ListAll 按时间正序返回全部答题记录，用于趋势统计
func (r *CognitiveRepository) ListAll(userID uint) ([]model.CognitiveEvent, error) {
	var events []model.CognitiveEvent
	err := r.DB.Where("user_id = ?", userID).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&events).Error
	return events, err
}
