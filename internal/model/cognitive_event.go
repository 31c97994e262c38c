package model

import (
	"neuro_study_backend/internal/engine"
	"time"
)

// CognitiveEvent 一次答题行为记录
// swagger:model
type CognitiveEvent struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_cognitive_user_time,priority:1;not null" json:"userId"`
	QuestionID string    `gorm:"size:64;not null" json:"questionId"`
	Subject    string    `gorm:"size:64;not null" json:"subject"`
	TimeTaken  float64   `gorm:"not null;comment:答题耗时(秒)" json:"timeTaken"`
	Correct    bool      `gorm:"not null" json:"correct"`
	Confidence int       `gorm:"not null;comment:自评信心 1-5" json:"confidence"`
	RetryCount int       `gorm:"default:0" json:"retryCount"`
	Timestamp  time.Time `gorm:"index:idx_cognitive_user_time,priority:2" json:"timestamp"`
}

func (CognitiveEvent) TableName() string {
	return "cognitive_events"
}

func (e CognitiveEvent) AnswerEvent() engine.AnswerEvent {
	return engine.AnswerEvent{
		TimeTaken:  e.TimeTaken,
		Correct:    e.Correct,
		Confidence: e.Confidence,
		RetryCount: e.RetryCount,
	}
}

func ToAnswerEvents(events []CognitiveEvent) []engine.AnswerEvent {
	out := make([]engine.AnswerEvent, 0, len(events))
	for _, e := range events {
		out = append(out, e.AnswerEvent())
	}
	return out
}
