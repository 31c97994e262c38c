package model

import (
	"neuro_study_backend/internal/engine"

	"gorm.io/datatypes"
)

// StudyPlan 按用户与日期保存的学习计划
// swagger:model
type StudyPlan struct {
	UUIDBase
	UserID         uint                                 `gorm:"index:idx_plan_user_date,priority:1;not null" json:"userId"`
	Date           string                               `gorm:"size:10;index:idx_plan_user_date,priority:2;not null" json:"date"`
	ProfileType    string                               `gorm:"size:32" json:"profileType"`
	EnergyScore    int                                  `json:"energyScore"`
	TotalStudyTime int                                  `json:"totalStudyTime"`
	ModelVersion   string                               `gorm:"size:32" json:"modelVersion"`
	PlanData       datatypes.JSONType[engine.StudyPlan] `json:"planData"`
	ArchiveURL     string                               `gorm:"size:255" json:"archiveUrl,omitempty"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

func NewStudyPlan(userID uint, plan *engine.StudyPlan, modelVersion string) *StudyPlan {
	return &StudyPlan{
		UserID:         userID,
		Date:           plan.Date,
		ProfileType:    string(plan.CognitiveProfile.Type),
		EnergyScore:    plan.EnergyScore,
		TotalStudyTime: plan.TotalStudyTime,
		ModelVersion:   modelVersion,
		PlanData:       datatypes.NewJSONType(*plan),
	}
}

// Plan 返回保存的计划内容
func (p *StudyPlan) Plan() engine.StudyPlan {
	return p.PlanData.Data()
}
