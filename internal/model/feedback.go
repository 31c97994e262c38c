package model

// Feedback 学生对计划中某个时段的执行反馈
// swagger:model
type Feedback struct {
	BaseModel
	UserID         uint     `gorm:"index;not null" json:"userId"`
	PlanID         string   `gorm:"type:varchar(36);index;not null" json:"planId"`
	SlotIndex      int      `gorm:"not null" json:"slotIndex"`
	CompletionRate int      `gorm:"not null;comment:完成度 0-100" json:"completionRate"`
	Difficulty     int      `gorm:"not null;comment:主观难度 1-5" json:"difficulty"`
	ActualTime     *int     `gorm:"comment:实际用时(分钟)" json:"actualTime,omitempty"`
	QuizScore      *float64 `json:"quizScore,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}
