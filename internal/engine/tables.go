package engine

// Tables 汇总排课用到的全部查找表。每张表都有显式的默认值，
// 未知的难度、能量等级或画像类型不会报错。
// 构造后只读，可被并发调用共享。
type Tables struct {
	EnergyMatch    map[EnergyLevel]map[Difficulty]float64
	CognitiveFit   map[ProfileType]map[Difficulty]float64
	Methods        map[ProfileType][]string
	Intensity      map[Difficulty]Intensity
	EnergyPhrases  map[EnergyLevel]string
	ProfilePhrases map[ProfileType]string
	Activities     map[EnergyLevel]ActivityPlan
	Interventions  map[ProfileType]string
}

type ActivityPlan struct {
	Recommended []string
	Avoid       []string
}

const (
	defaultEnergyMatch  = 0.5
	defaultCognitiveFit = 0.7
	defaultMethod       = "Problem Practice"
	defaultIntervention = "Standard practice"
)

func DefaultTables() *Tables {
	return &Tables{
		EnergyMatch: map[EnergyLevel]map[Difficulty]float64{
			EnergyHigh:   {Hard: 1.0, Medium: 0.7, Easy: 0.3},
			EnergyMedium: {Hard: 0.5, Medium: 1.0, Easy: 0.7},
			EnergyLow:    {Hard: 0.2, Medium: 0.5, Easy: 1.0},
		},
		CognitiveFit: map[ProfileType]map[Difficulty]float64{
			Struggling:   {Hard: 0.3, Medium: 0.7, Easy: 1.0},
			FastCareless: {Hard: 0.7, Medium: 1.0, Easy: 0.5},
			SlowAccurate: {Hard: 1.0, Medium: 0.8, Easy: 0.5},
			Balanced:     {Hard: 0.8, Medium: 1.0, Easy: 0.8},
		},
		Methods: map[ProfileType][]string{
			Struggling:   {"Concept Review", "Video Lecture", "Guided Practice"},
			FastCareless: {"Slow Practice", "Reflection Journal", "Error Analysis"},
			SlowAccurate: {"Timed Drills", "Speed Practice", "Pattern Recognition"},
			Balanced:     {"Problem Practice", "Mixed Problems", "Active Recall"},
		},
		Intensity: map[Difficulty]Intensity{
			Hard:   IntensityHigh,
			Medium: IntensityMedium,
			Easy:   IntensityLow,
		},
		EnergyPhrases: map[EnergyLevel]string{
			EnergyHigh:   "Peak energy",
			EnergyMedium: "Moderate energy",
			EnergyLow:    "Low energy",
		},
		ProfilePhrases: map[ProfileType]string{
			Struggling:   "needs foundational review",
			FastCareless: "focus on accuracy",
			SlowAccurate: "speed practice beneficial",
			Balanced:     "optimal learning conditions",
		},
		Activities: map[EnergyLevel]ActivityPlan{
			EnergyHigh: {
				Recommended: []string{"New concepts", "Hard problems", "Active recall"},
				Avoid:       []string{"Passive reading", "Easy revision"},
			},
			EnergyMedium: {
				Recommended: []string{"Practice problems", "Note-making", "Discussion"},
				Avoid:       []string{"Extremely difficult topics"},
			},
			EnergyLow: {
				Recommended: []string{"Revision", "Flashcards", "Light reading"},
				Avoid:       []string{"Learning new material"},
			},
		},
		Interventions: map[ProfileType]string{
			Struggling:   "Concept review, simpler problems, spaced repetition",
			FastCareless: "Slow practice, reflection prompts, penalty for speed",
			SlowAccurate: "Timed drills, pattern recognition training",
			Balanced:     "Standard practice, gradual difficulty increase",
		},
	}
}

func (t *Tables) energyMatch(level EnergyLevel, d Difficulty) float64 {
	if v, ok := t.EnergyMatch[level][d]; ok {
		return v
	}
	return defaultEnergyMatch
}

func (t *Tables) cognitiveFit(p ProfileType, d Difficulty) float64 {
	if v, ok := t.CognitiveFit[p][d]; ok {
		return v
	}
	return defaultCognitiveFit
}

func (t *Tables) methods(p ProfileType) []string {
	if m := t.Methods[p]; len(m) > 0 {
		return m
	}
	return []string{defaultMethod}
}

func (t *Tables) intensity(d Difficulty) Intensity {
	if v, ok := t.Intensity[d]; ok {
		return v
	}
	return IntensityMedium
}

func (t *Tables) activities(level EnergyLevel) ActivityPlan {
	if a, ok := t.Activities[level]; ok {
		return a
	}
	return t.Activities[EnergyMedium]
}

func (t *Tables) energyPhrase(level EnergyLevel) string {
	if p, ok := t.EnergyPhrases[level]; ok {
		return p
	}
	return t.EnergyPhrases[EnergyMedium]
}
