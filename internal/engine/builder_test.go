package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2026, 5, 4, 7, 30, 0, 0, time.UTC) }

func newTestBuilder() *Builder {
	return NewBuilder(BuilderConfig{Now: fixedNow})
}

func TestBuildMathMorning(t *testing.T) {
	plan, err := newTestBuilder().Build(BuildRequest{
		Subjects:    []string{"Math"},
		FreeWindows: []string{"09:00-11:00"},
		EnergyScore: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-05-04", plan.Date)
	assert.Equal(t, EnergyHigh, plan.EnergyLevel)
	assert.Equal(t, 80, plan.EnergyScore)
	assert.Equal(t, Struggling, plan.CognitiveProfile.Type)
	assert.Equal(t, 0.63, plan.CognitiveProfile.Confidence)

	require.Len(t, plan.Slots, 2)
	assert.Equal(t, ScheduleSlot{
		Time:      "09:00-10:00",
		Subject:   "Math",
		Topic:     "Algebra",
		Method:    "Concept Review",
		Intensity: IntensityMedium,
		Rationale: "Peak energy + weak topic - needs foundational review",
	}, plan.Slots[0])
	assert.Equal(t, "10:00-11:00", plan.Slots[1].Time)
	assert.Equal(t, "Video Lecture", plan.Slots[1].Method)
	assert.Equal(t, 120, plan.TotalStudyTime)
	assert.Equal(t, 0.07, plan.EstimatedLearningGain)
}

func TestBuildGainCountsFirstFiveSlots(t *testing.T) {
	plan, err := newTestBuilder().Build(BuildRequest{
		Subjects:    []string{"Math"},
		FreeWindows: []string{"08:00-14:00"},
		EnergyScore: 80,
	})
	require.NoError(t, err)

	var topics []string
	for _, s := range plan.Slots {
		topics = append(topics, s.Topic)
	}
	assert.Equal(t, []string{"Algebra", "Algebra", "Trigonometry", "Algebra", "Algebra", "Trigonometry"}, topics)
	assert.Equal(t, 360, plan.TotalStudyTime)
	// (4 × 0.343 + 0.2744) × 0.1
	assert.Equal(t, 0.16, plan.EstimatedLearningGain)
}

func TestBuildEmptyInputs(t *testing.T) {
	b := newTestBuilder()

	tests := []struct {
		name string
		req  BuildRequest
	}{
		{"no subjects", BuildRequest{FreeWindows: []string{"09:00-12:00"}, EnergyScore: 50}},
		{"unknown subject", BuildRequest{Subjects: []string{"Latin"}, FreeWindows: []string{"09:00-12:00"}, EnergyScore: 50}},
		{"no windows", BuildRequest{Subjects: []string{"Math"}, EnergyScore: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := b.Build(tt.req)
			require.NoError(t, err)
			assert.NotNil(t, plan.Slots)
			assert.Empty(t, plan.Slots)
			assert.Zero(t, plan.TotalStudyTime)
			assert.Zero(t, plan.EstimatedLearningGain)
			assert.Equal(t, EnergyMedium, plan.EnergyLevel)
		})
	}
}

func TestBuildMalformedWindow(t *testing.T) {
	_, err := newTestBuilder().Build(BuildRequest{
		Subjects:    []string{"Math"},
		FreeWindows: []string{"09:00-11:00", "evening"},
		EnergyScore: 50,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
}

func TestBuildUsesMasteryAndPreferences(t *testing.T) {
	plan, err := newTestBuilder().Build(BuildRequest{
		Date:        "2026-06-01",
		Subjects:    []string{"Math"},
		FreeWindows: []string{"18:30-20:15"},
		EnergyScore: 80,
		Mastery:     map[string]float64{"Math:Algebra": 1.0, "Math:Trigonometry": 0.8},
		Preferences: &Preferences{MaxSessionDuration: 120},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-06-01", plan.Date)
	require.Len(t, plan.Slots, 1)
	assert.Equal(t, "18:00-20:00", plan.Slots[0].Time)
	assert.Equal(t, "Calculus", plan.Slots[0].Topic)
	assert.Equal(t, IntensityHigh, plan.Slots[0].Intensity)
	assert.Equal(t, 120, plan.TotalStudyTime)
}

func TestBuildClampsEnergyScore(t *testing.T) {
	plan, err := newTestBuilder().Build(BuildRequest{EnergyScore: 180})
	require.NoError(t, err)
	assert.Equal(t, 100, plan.EnergyScore)

	plan, err = newTestBuilder().Build(BuildRequest{EnergyScore: -5})
	require.NoError(t, err)
	assert.Equal(t, 0, plan.EnergyScore)
	assert.Equal(t, EnergyLow, plan.EnergyLevel)
}

func TestCandidatesOrdering(t *testing.T) {
	b := newTestBuilder()

	cands := b.Candidates([]string{"Physics", "Math"}, map[string]float64{"Physics:Optics": 2}, EnergyMedium, Balanced)

	require.Len(t, cands, 8)
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, cands[i-1].Score, cands[i].Score)
	}
	// Mechanics 与 Algebra 同分，保持目录顺序
	assert.Equal(t, "Mechanics", cands[0].Name)
	assert.Equal(t, "Algebra", cands[1].Name)

	for _, c := range cands {
		if c.Name == "Optics" {
			assert.Equal(t, 1.0, c.Mastery)
			assert.Zero(t, c.Score)
		}
	}
}

func TestBuildInvariants(t *testing.T) {
	b := newTestBuilder()
	windows := []string{"06:00-09:00", "12:00-13:00", "14:00-22:00"}

	for _, energy := range []int{10, 55, 90} {
		for _, prefs := range []Preferences{{}, {MaxSessionDuration: 120, MinBreak: 60}, {MaxSessionDuration: 180}} {
			prefs := prefs
			plan, err := b.Build(BuildRequest{
				Subjects:    []string{"Physics", "Math", "Chemistry"},
				FreeWindows: windows,
				EnergyScore: energy,
				Preferences: &prefs,
				Events:      repeatEvents(12, AnswerEvent{TimeTaken: 9, Correct: true, Confidence: 3}),
			})
			require.NoError(t, err)

			parsed, _ := ParseTimeWindows(windows)
			total := 0
			for i, s := range plan.Slots {
				slot, err := ParseTimeWindow(s.Time)
				require.NoError(t, err)
				start, end := slot.StartHour, slot.EndHour
				total += (end - start) * 60

				inside := false
				for _, w := range parsed {
					if start >= w.StartHour && end <= w.EndHour {
						inside = true
					}
				}
				assert.True(t, inside, "slot %s outside windows", s.Time)
				assert.Contains(t, []Intensity{IntensityLow, IntensityMedium, IntensityHigh}, s.Intensity)

				if i >= 2 {
					same := plan.Slots[i-2].Topic == s.Topic && plan.Slots[i-1].Topic == s.Topic
					assert.False(t, same, "three consecutive %s", s.Topic)
				}
			}
			assert.Equal(t, total, plan.TotalStudyTime)
		}
	}
}

func TestBuildConcurrentCallsAreIndependent(t *testing.T) {
	b := newTestBuilder()
	req := BuildRequest{
		Subjects:    []string{"Physics", "Chemistry"},
		FreeWindows: []string{"08:00-12:00", "13:00-18:00"},
		EnergyScore: 65,
	}
	want, err := b.Build(req)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*StudyPlan, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = b.Build(req)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
