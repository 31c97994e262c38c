package engine

// ProfileRule is one row of the classification table. Rules are evaluated top-down
// and the first matching rule decides the profile type.
type ProfileRule struct {
	Name           string
	Type           ProfileType
	BaseConfidence float64
	Match          func(f FeatureVector) bool
}

// DefaultProfileRules returns the rule table in priority order. The last rule always
// matches.
func DefaultProfileRules() []ProfileRule {
	return []ProfileRule{
		{
			Name:           "low_accuracy",
			Type:           Struggling,
			BaseConfidence: 0.90,
			Match:          func(f FeatureVector) bool { return f.AccuracyRate < 0.5 },
		},
		{
			Name:           "fast_and_inaccurate",
			Type:           FastCareless,
			BaseConfidence: 0.85,
			Match: func(f FeatureVector) bool {
				return f.AvgResponseTime < 12 && f.AccuracyRate < 0.75
			},
		},
		{
			Name:           "slow_and_accurate",
			Type:           SlowAccurate,
			BaseConfidence: 0.85,
			Match: func(f FeatureVector) bool {
				return f.AvgResponseTime > 20 && f.AccuracyRate > 0.8
			},
		},
		{
			Name:           "default",
			Type:           Balanced,
			BaseConfidence: 0.80,
			Match:          func(FeatureVector) bool { return true },
		},
	}
}

// Profiler classifies a learner from recent answer events.
type Profiler struct {
	rules  []ProfileRule
	tables *Tables
}

func NewProfiler(rules []ProfileRule, tables *Tables) *Profiler {
	if len(rules) == 0 {
		rules = DefaultProfileRules()
	}
	if tables == nil {
		tables = DefaultTables()
	}
	return &Profiler{rules: rules, tables: tables}
}

// ExtractFeatures derives the feature vector. No events yields the zero vector.
func ExtractFeatures(events []AnswerEvent) FeatureVector {
	if len(events) == 0 {
		return FeatureVector{}
	}

	n := float64(len(events))
	times := make([]float64, 0, len(events))
	var correct, retries, confidence float64
	for _, e := range events {
		times = append(times, e.TimeTaken)
		if e.Correct {
			correct++
		}
		retries += float64(e.RetryCount)
		confidence += float64(e.Confidence)
	}

	accuracy := correct / n
	gap := accuracy - (confidence/n)/5.0
	if gap < 0 {
		gap = -gap
	}

	return FeatureVector{
		AvgResponseTime:  round2(mean(times)),
		AccuracyRate:     round2(accuracy),
		RetryPattern:     round2(retries / n),
		ConfidenceGap:    round2(gap),
		SpeedConsistency: round2(sampleStdDev(times)),
	}
}

// Classify never fails; with no events every feature is zero and the low-accuracy
// rule applies.
func (p *Profiler) Classify(events []AnswerEvent) CognitiveProfile {
	features := ExtractFeatures(events)

	profile := CognitiveProfile{Type: Balanced, Confidence: 0.80, Features: features}
	for _, rule := range p.rules {
		if rule.Match(features) {
			profile.Type = rule.Type
			profile.Confidence = rule.BaseConfidence
			break
		}
	}

	profile.Confidence = round2(profile.Confidence * sampleSizeFactor(len(events)))
	return profile
}

// Intervention returns the coaching recommendation for a profile type.
func (p *Profiler) Intervention(t ProfileType) string {
	if s, ok := p.tables.Interventions[t]; ok {
		return s
	}
	return defaultIntervention
}

func sampleSizeFactor(n int) float64 {
	switch {
	case n < 10:
		return 0.70
	case n < 20:
		return 0.85
	default:
		return 1.0
	}
}
