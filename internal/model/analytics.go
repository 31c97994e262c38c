package model

import "time"

// DailyPerformance 按天汇总的答题表现
type DailyPerformance struct {
	Date      string  `json:"date"`
	Accuracy  float64 `json:"accuracy"`
	AvgTime   float64 `json:"avg_time"`
	Questions int     `json:"questions"`
}

// PlanSummary 历史计划列表项
type PlanSummary struct {
	ID                    string    `json:"id"`
	Date                  string    `json:"date"`
	ProfileType           string    `json:"profile_type"`
	EnergyScore           int       `json:"energy_score"`
	TotalStudyTime        int       `json:"total_study_time"`
	EstimatedLearningGain float64   `json:"estimated_learning_gain"`
	CreatedAt             time.Time `json:"created_at"`
}
