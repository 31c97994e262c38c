package engine

const (
	// fatigueLimit is the number of study minutes after which a break is inserted.
	fatigueLimit = 120
	// maxConsecutive caps how many slots in a row may share one topic.
	maxConsecutive = 2
)

// AllocatorState carries every accumulator of one allocation pass. It is a plain value:
// a pass can be replayed from any recorded state.
type AllocatorState struct {
	Cursor       int    `json:"cursor"`
	Fatigue      int    `json:"fatigue"`
	LastTopic    string `json:"last_topic"`
	Streak       int    `json:"streak"`
	SlotsEmitted int    `json:"slots_emitted"`
}

// Allocation is one emitted slot together with the score of the topic behind it.
type Allocation struct {
	Slot    ScheduleSlot
	Score   float64
	Minutes int
}

// Allocator fills free windows with ranked topics for one learner state.
type Allocator struct {
	prefs     Preferences
	level     EnergyLevel
	profile   ProfileType
	tables    *Tables
	rationale *RationaleGenerator
}

func NewAllocator(tables *Tables, prefs Preferences, level EnergyLevel, profile ProfileType) *Allocator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Allocator{
		prefs:     prefs.Resolve(DefaultPreferences()),
		level:     level,
		profile:   profile,
		tables:    tables,
		rationale: NewRationaleGenerator(tables),
	}
}

// sessionHours is the slot length in whole hours; slot times only carry hours.
func (a *Allocator) sessionHours() int {
	h := a.prefs.MaxSessionDuration / 60
	if h < 1 {
		h = 1
	}
	return h
}

func (a *Allocator) eligible(st AllocatorState, c ScoredTopic) bool {
	return c.Name != st.LastTopic || st.Streak < maxConsecutive
}

// Step performs one allocation step inside w. It returns the next state and either a
// slot or nil (a break was taken). ok is false once the window cannot take more slots,
// either because the cursor reached its end or because no candidate is eligible.
func (a *Allocator) Step(st AllocatorState, candidates []ScoredTopic, w TimeWindow) (next AllocatorState, alloc *Allocation, ok bool) {
	if st.Cursor >= w.EndHour {
		return st, nil, false
	}

	if st.Fatigue >= fatigueLimit {
		st.Cursor += a.prefs.MinBreak / 60
		st.Fatigue = 0
		return st, nil, true
	}

	chosen := -1
	for i := range candidates {
		if a.eligible(st, candidates[i]) {
			chosen = i
			break
		}
	}
	if chosen < 0 {
		return st, nil, false
	}
	c := candidates[chosen]

	hours := min(a.sessionHours(), w.EndHour-st.Cursor)
	methods := a.tables.methods(a.profile)

	alloc = &Allocation{
		Slot: ScheduleSlot{
			Time:      FormatSlotTime(st.Cursor, st.Cursor+hours),
			Subject:   c.Subject,
			Topic:     c.Name,
			Method:    methods[st.SlotsEmitted%len(methods)],
			Intensity: a.tables.intensity(c.Difficulty),
			Rationale: a.rationale.Explain(a.level, c, a.profile),
		},
		Score:   c.Score,
		Minutes: hours * 60,
	}

	if c.Name == st.LastTopic {
		st.Streak++
	} else {
		st.LastTopic = c.Name
		st.Streak = 1
	}
	st.Fatigue += alloc.Minutes
	st.Cursor += hours
	st.SlotsEmitted++

	return st, alloc, true
}

// Run walks every window in order. Fatigue, last topic and streak carry over from one
// window to the next; only the cursor is reset to each window's start.
func (a *Allocator) Run(candidates []ScoredTopic, windows []TimeWindow) ([]Allocation, AllocatorState) {
	var (
		st     AllocatorState
		allocs []Allocation
	)
	for _, w := range windows {
		st.Cursor = w.StartHour
		for st.Cursor < w.EndHour {
			next, alloc, ok := a.Step(st, candidates, w)
			st = next
			if !ok {
				break
			}
			if alloc != nil {
				allocs = append(allocs, *alloc)
			}
		}
	}
	return allocs, st
}
