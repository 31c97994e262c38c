package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, score float64, d Difficulty) ScoredTopic {
	return ScoredTopic{
		Topic:   Topic{Name: name, Subject: "Math", Weight: 1, Difficulty: d},
		Mastery: 0.3,
		Score:   score,
	}
}

func topicsOf(allocs []Allocation) []string {
	out := make([]string, len(allocs))
	for i, a := range allocs {
		out[i] = a.Slot.Topic
	}
	return out
}

func timesOf(allocs []Allocation) []string {
	out := make([]string, len(allocs))
	for i, a := range allocs {
		out[i] = a.Slot.Time
	}
	return out
}

func newTestAllocator(prefs Preferences) *Allocator {
	return NewAllocator(nil, prefs, EnergyHigh, Balanced)
}

func TestStepEmitsSlot(t *testing.T) {
	a := newTestAllocator(DefaultPreferences())
	w := TimeWindow{StartHour: 9, EndHour: 12}
	cands := []ScoredTopic{candidate("Calculus", 1.0, Hard)}

	st, alloc, ok := a.Step(AllocatorState{Cursor: 9}, cands, w)

	require.True(t, ok)
	require.NotNil(t, alloc)
	assert.Equal(t, ScheduleSlot{
		Time:      "09:00-10:00",
		Subject:   "Math",
		Topic:     "Calculus",
		Method:    "Problem Practice",
		Intensity: IntensityHigh,
		Rationale: "Peak energy + weak topic - optimal learning conditions",
	}, alloc.Slot)
	assert.Equal(t, 60, alloc.Minutes)
	assert.Equal(t, AllocatorState{Cursor: 10, Fatigue: 60, LastTopic: "Calculus", Streak: 1, SlotsEmitted: 1}, st)
}

func TestStepCyclesMethods(t *testing.T) {
	a := newTestAllocator(DefaultPreferences())
	w := TimeWindow{StartHour: 0, EndHour: 24}
	cands := []ScoredTopic{candidate("Algebra", 1.0, Medium)}

	_, alloc, _ := a.Step(AllocatorState{Cursor: 5, SlotsEmitted: 4}, cands, w)
	assert.Equal(t, "Mixed Problems", alloc.Slot.Method)
	assert.Equal(t, IntensityMedium, alloc.Slot.Intensity)
}

func TestStepInsertsBreak(t *testing.T) {
	a := newTestAllocator(Preferences{MaxSessionDuration: 60, MinBreak: 60})
	w := TimeWindow{StartHour: 9, EndHour: 14}

	st, alloc, ok := a.Step(AllocatorState{Cursor: 11, Fatigue: 120, LastTopic: "Algebra", Streak: 2}, nil, w)

	assert.True(t, ok)
	assert.Nil(t, alloc)
	assert.Equal(t, 12, st.Cursor)
	assert.Equal(t, 0, st.Fatigue)
	assert.Equal(t, "Algebra", st.LastTopic)
}

func TestStepStopsWithoutEligibleTopic(t *testing.T) {
	a := newTestAllocator(DefaultPreferences())
	w := TimeWindow{StartHour: 9, EndHour: 14}
	in := AllocatorState{Cursor: 11, Fatigue: 60, LastTopic: "Algebra", Streak: 2}

	st, alloc, ok := a.Step(in, []ScoredTopic{candidate("Algebra", 1, Medium)}, w)

	assert.False(t, ok)
	assert.Nil(t, alloc)
	assert.Equal(t, in, st)
}

func TestStepAtWindowEnd(t *testing.T) {
	a := newTestAllocator(DefaultPreferences())
	_, alloc, ok := a.Step(AllocatorState{Cursor: 12}, []ScoredTopic{candidate("A", 1, Easy)}, TimeWindow{StartHour: 9, EndHour: 12})
	assert.False(t, ok)
	assert.Nil(t, alloc)
}

func TestRunLimitsConsecutiveTopics(t *testing.T) {
	a := newTestAllocator(DefaultPreferences())
	cands := []ScoredTopic{candidate("A", 2, Hard), candidate("B", 1, Medium)}

	allocs, st := a.Run(cands, []TimeWindow{{StartHour: 9, EndHour: 14}})

	assert.Equal(t, []string{"A", "A", "B", "A", "A"}, topicsOf(allocs))
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00", "13:00-14:00"}, timesOf(allocs))
	assert.Equal(t, 5, st.SlotsEmitted)
}

func TestRunSingleCandidateAbandonsWindows(t *testing.T) {
	a := newTestAllocator(DefaultPreferences())
	cands := []ScoredTopic{candidate("A", 1, Easy)}

	allocs, st := a.Run(cands, []TimeWindow{{StartHour: 9, EndHour: 14}, {StartHour: 18, EndHour: 20}})

	// 连续上限在窗口之间延续，第二个窗口不再排课
	assert.Equal(t, []string{"A", "A"}, topicsOf(allocs))
	assert.Equal(t, 2, st.Streak)
}

func TestRunBreakAdvancesCursorByWholeHours(t *testing.T) {
	a := newTestAllocator(Preferences{MaxSessionDuration: 60, MinBreak: 60})
	cands := []ScoredTopic{candidate("A", 2, Hard), candidate("B", 1, Medium)}

	allocs, _ := a.Run(cands, []TimeWindow{{StartHour: 9, EndHour: 14}})

	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00", "12:00-13:00", "13:00-14:00"}, timesOf(allocs))
	assert.Equal(t, []string{"A", "A", "B", "A"}, topicsOf(allocs))
}

func TestRunLongSessions(t *testing.T) {
	a := newTestAllocator(Preferences{MaxSessionDuration: 120})
	cands := []ScoredTopic{candidate("A", 2, Hard), candidate("B", 1, Medium)}

	allocs, _ := a.Run(cands, []TimeWindow{{StartHour: 9, EndHour: 12}})

	require.Len(t, allocs, 2)
	assert.Equal(t, "09:00-11:00", allocs[0].Slot.Time)
	assert.Equal(t, 120, allocs[0].Minutes)
	assert.Equal(t, "11:00-12:00", allocs[1].Slot.Time)
	assert.Equal(t, 60, allocs[1].Minutes)
}

func TestRunShortSessionRoundsUpToOneHour(t *testing.T) {
	a := newTestAllocator(Preferences{MaxSessionDuration: 45})
	allocs, _ := a.Run([]ScoredTopic{candidate("A", 1, Easy), candidate("B", 1, Easy)}, []TimeWindow{{StartHour: 9, EndHour: 11}})

	require.Len(t, allocs, 2)
	assert.Equal(t, 60, allocs[0].Minutes)
}

func TestRunNoCandidates(t *testing.T) {
	allocs, st := newTestAllocator(DefaultPreferences()).Run(nil, []TimeWindow{{StartHour: 9, EndHour: 11}})
	assert.Empty(t, allocs)
	assert.Equal(t, 9, st.Cursor)
}

func TestRunIsReplayable(t *testing.T) {
	a := newTestAllocator(DefaultPreferences())
	cands := []ScoredTopic{candidate("A", 2, Hard), candidate("B", 1, Medium)}
	w := TimeWindow{StartHour: 9, EndHour: 14}

	full, _ := a.Run(cands, []TimeWindow{w})

	// 从第二步的状态重放，结果应与完整运行的后半段一致
	st := AllocatorState{Cursor: 9}
	st, _, _ = a.Step(st, cands, w)
	checkpoint := st

	var replay []Allocation
	for st = checkpoint; st.Cursor < w.EndHour; {
		var alloc *Allocation
		var ok bool
		st, alloc, ok = a.Step(st, cands, w)
		if !ok {
			break
		}
		if alloc != nil {
			replay = append(replay, *alloc)
		}
	}
	assert.Equal(t, full[1:], replay)
}
