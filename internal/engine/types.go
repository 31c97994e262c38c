package engine

import "time"

type ProfileType string

const (
	Struggling   ProfileType = "struggling"
	FastCareless ProfileType = "fast_careless"
	SlowAccurate ProfileType = "slow_accurate"
	Balanced     ProfileType = "balanced"
)

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// AnswerEvent 一次答题记录，按时间倒序传入
type AnswerEvent struct {
	TimeTaken  float64 `json:"time_taken" yaml:"time_taken"`
	Correct    bool    `json:"correct" yaml:"correct"`
	Confidence int     `json:"confidence" yaml:"confidence"`
	RetryCount int     `json:"retry_count" yaml:"retry_count"`
}

// FeatureVector 由最近答题记录提取的认知特征，均保留两位小数
type FeatureVector struct {
	AvgResponseTime  float64 `json:"avg_response_time"`
	AccuracyRate     float64 `json:"accuracy_rate"`
	RetryPattern     float64 `json:"retry_pattern"`
	ConfidenceGap    float64 `json:"confidence_gap"`
	SpeedConsistency float64 `json:"speed_consistency"`
}

type CognitiveProfile struct {
	Type       ProfileType   `json:"type"`
	Confidence float64       `json:"confidence"`
	Features   FeatureVector `json:"features"`
}

type EnergySample struct {
	SleepHours float64   `json:"sleep_hours"`
	Tiredness  int       `json:"tiredness"`
	Timestamp  time.Time `json:"timestamp"`
}

type EnergyAnalysis struct {
	EnergyScore           int         `json:"energy_score"`
	EnergyLevel           EnergyLevel `json:"energy_level"`
	FatigueIndex          float64     `json:"fatigue_index"`
	RecommendedActivities []string    `json:"recommended_activities"`
	AvoidActivities       []string    `json:"avoid_activities"`
}

type Topic struct {
	Name       string     `json:"name" yaml:"name"`
	Subject    string     `json:"subject" yaml:"-"`
	Weight     float64    `json:"weight" yaml:"weight"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
}

// ScoredTopic 是一次排课中的候选主题，分数只计算一次
type ScoredTopic struct {
	Topic
	Mastery float64 `json:"mastery"`
	Score   float64 `json:"score"`
}

type TimeWindow struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

type ScheduleSlot struct {
	Time      string    `json:"time"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	Method    string    `json:"method"`
	Intensity Intensity `json:"intensity"`
	Rationale string    `json:"rationale"`
}

type StudyPlan struct {
	Date                  string           `json:"date"`
	TotalStudyTime        int              `json:"total_study_time"`
	EstimatedLearningGain float64          `json:"estimated_learning_gain"`
	Slots                 []ScheduleSlot   `json:"slots"`
	CognitiveProfile      CognitiveProfile `json:"cognitive_profile"`
	EnergyScore           int              `json:"energy_score"`
	EnergyLevel           EnergyLevel      `json:"energy_level"`
}

// Preferences 排课偏好，单位为分钟；非正值回退到默认值
type Preferences struct {
	MaxSessionDuration int `json:"max_session_duration" yaml:"max_session_duration"`
	MinBreak           int `json:"min_break" yaml:"min_break"`
}

const (
	DefaultMaxSessionDuration = 60
	DefaultMinBreak           = 15
	DefaultMastery            = 0.3
)

func DefaultPreferences() Preferences {
	return Preferences{
		MaxSessionDuration: DefaultMaxSessionDuration,
		MinBreak:           DefaultMinBreak,
	}
}

// Resolve 用 defaults 补齐缺失字段
func (p *Preferences) Resolve(defaults Preferences) Preferences {
	out := defaults
	if p == nil {
		return out
	}
	if p.MaxSessionDuration > 0 {
		out.MaxSessionDuration = p.MaxSessionDuration
	}
	if p.MinBreak > 0 {
		out.MinBreak = p.MinBreak
	}
	return out
}
