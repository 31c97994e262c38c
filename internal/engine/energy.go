package engine

import (
	"math"
	"sort"
)

const (
	highEnergyThreshold   = 70
	mediumEnergyThreshold = 40

	// BurnoutWindow is the default number of samples BurnoutRisk looks at.
	BurnoutWindow = 7
)

// Score maps sleep hours and tiredness (1-5) to an energy score in [0, 100].
func Score(sleepHours float64, tiredness int) int {
	raw := sleepHours*12 - float64(tiredness)*10
	return int(math.Round(clamp(raw, 0, 100)))
}

func LevelFor(score int) EnergyLevel {
	switch {
	case score >= highEnergyThreshold:
		return EnergyHigh
	case score >= mediumEnergyThreshold:
		return EnergyMedium
	default:
		return EnergyLow
	}
}

// FatigueIndex is floored at zero but has no upper clamp.
func FatigueIndex(tiredness int, sleepHours float64) float64 {
	f := float64(tiredness)*0.6 + (7-sleepHours)*0.4
	return round2(math.Max(0, f))
}

// BurnoutRisk maps the mean fatigue of the most recent window samples onto [0, 1].
// No samples means moderate risk (0.5); a single sample is treated as low risk (0.3).
func BurnoutRisk(samples []EnergySample, window int) float64 {
	if len(samples) == 0 {
		return 0.5
	}
	if window <= 0 {
		window = BurnoutWindow
	}

	sorted := make([]EnergySample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if len(sorted) > window {
		sorted = sorted[:window]
	}
	if len(sorted) < 2 {
		return 0.3
	}

	fatigue := make([]float64, 0, len(sorted))
	for _, s := range sorted {
		fatigue = append(fatigue, FatigueIndex(s.Tiredness, s.SleepHours))
	}
	return round2(math.Min(1.0, mean(fatigue)/5.0))
}

type EnergyAnalyzer struct {
	tables *Tables
}

func NewEnergyAnalyzer(tables *Tables) *EnergyAnalyzer {
	if tables == nil {
		tables = DefaultTables()
	}
	return &EnergyAnalyzer{tables: tables}
}

func (a *EnergyAnalyzer) Analyze(sleepHours float64, tiredness int) EnergyAnalysis {
	score := Score(sleepHours, tiredness)
	level := LevelFor(score)
	activities := a.tables.activities(level)

	return EnergyAnalysis{
		EnergyScore:           score,
		EnergyLevel:           level,
		FatigueIndex:          FatigueIndex(tiredness, sleepHours),
		RecommendedActivities: append([]string(nil), activities.Recommended...),
		AvoidActivities:       append([]string(nil), activities.Avoid...),
	}
}
