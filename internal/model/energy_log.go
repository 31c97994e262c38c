package model

import (
	"neuro_study_backend/internal/engine"
	"time"
)

// swagger:model
type EnergyLog struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_energy_user_time,priority:1;not null" json:"userId"`
	SleepHours float64   `gorm:"not null" json:"sleepHours"`
	Tiredness  int       `gorm:"not null;comment:疲劳程度 1-5" json:"tiredness"`
	Timestamp  time.Time `gorm:"index:idx_energy_user_time,priority:2" json:"timestamp"`
}

func (EnergyLog) TableName() string {
	return "energy_logs"
}

func (l EnergyLog) Sample() engine.EnergySample {
	return engine.EnergySample{
		SleepHours: l.SleepHours,
		Tiredness:  l.Tiredness,
		Timestamp:  l.Timestamp,
	}
}
