package model

import (
	"time"

	"gorm.io/datatypes"
)

// swagger:model User
type User struct {
	BaseModel
	Name           string                      `gorm:"size:100;not null" json:"name"`
	Email          string                      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password       string                      `gorm:"size:100;not null" json:"-"`
	Subjects       datatypes.JSONSlice[string] `json:"subjects"`
	ExamDate       string                      `gorm:"size:20" json:"examDate"`
	DailyFreeSlots datatypes.JSONSlice[string] `json:"dailyFreeSlots"`
	LastLogin      *time.Time                  `json:"lastLogin,omitempty"`
}

func (User) TableName() string {
	return "users"
}
