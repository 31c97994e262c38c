package engine

import (
	"sort"
	"time"
)

const (
	gainSlots      = 5
	gainMultiplier = 0.1
	dateLayout     = "2006-01-02"
)

// BuilderConfig holds the reference data a Builder owns. Zero fields fall back to the
// built-in catalog, tables, rule list and preferences.
type BuilderConfig struct {
	Catalog  *Catalog
	Tables   *Tables
	Rules    []ProfileRule
	Defaults Preferences
	Now      func() time.Time
}

// Builder turns learner state and free windows into a StudyPlan. A Builder is
// immutable after construction and safe for concurrent use; every Build call keeps
// its accumulators local.
type Builder struct {
	catalog  *Catalog
	tables   *Tables
	defaults Preferences
	profiler *Profiler
	scorer   *TopicScorer
	now      func() time.Time
}

func NewBuilder(cfg BuilderConfig) *Builder {
	if cfg.Catalog == nil {
		cfg.Catalog = DefaultCatalog()
	}
	if cfg.Tables == nil {
		cfg.Tables = DefaultTables()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Builder{
		catalog:  cfg.Catalog,
		tables:   cfg.Tables,
		defaults: cfg.Defaults.Resolve(DefaultPreferences()),
		profiler: NewProfiler(cfg.Rules, cfg.Tables),
		scorer:   NewTopicScorer(cfg.Tables),
		now:      cfg.Now,
	}
}

type BuildRequest struct {
	// Date defaults to today when empty.
	Date        string
	Subjects    []string
	FreeWindows []string
	Events      []AnswerEvent
	EnergyScore int
	// Mastery is keyed by MasteryKey(subject, topic).
	Mastery     map[string]float64
	Preferences *Preferences
}

func MasteryKey(subject, topic string) string {
	return subject + ":" + topic
}

func (b *Builder) Catalog() *Catalog         { return b.catalog }
func (b *Builder) Profiler() *Profiler       { return b.profiler }
func (b *Builder) Defaults() Preferences     { return b.defaults }
func (b *Builder) Analyzer() *EnergyAnalyzer { return NewEnergyAnalyzer(b.tables) }

// Build runs one scheduling pass. The only error is ErrInvalidTimeWindow; empty
// subjects, windows or events give an empty but valid plan.
func (b *Builder) Build(req BuildRequest) (*StudyPlan, error) {
	windows, err := ParseTimeWindows(req.FreeWindows)
	if err != nil {
		return nil, err
	}

	profile := b.profiler.Classify(req.Events)
	score := int(clamp(float64(req.EnergyScore), 0, 100))
	level := LevelFor(score)

	candidates := b.Candidates(req.Subjects, req.Mastery, level, profile.Type)
	prefs := req.Preferences.Resolve(b.defaults)
	allocs, _ := NewAllocator(b.tables, prefs, level, profile.Type).Run(candidates, windows)

	plan := &StudyPlan{
		Date:             req.Date,
		Slots:            make([]ScheduleSlot, 0, len(allocs)),
		CognitiveProfile: profile,
		EnergyScore:      score,
		EnergyLevel:      level,
	}
	if plan.Date == "" {
		plan.Date = b.now().Format(dateLayout)
	}

	var gain float64
	for i, a := range allocs {
		plan.Slots = append(plan.Slots, a.Slot)
		plan.TotalStudyTime += a.Minutes
		if i < gainSlots {
			gain += a.Score * gainMultiplier
		}
	}
	plan.EstimatedLearningGain = round2(gain)

	return plan, nil
}

// Candidates scores every catalog topic of the requested subjects and sorts them by
// score, highest first. Equal scores keep catalog order. The ranking is computed once
// per Build and is not refreshed while slots are assigned.
func (b *Builder) Candidates(subjects []string, mastery map[string]float64, level EnergyLevel, profile ProfileType) []ScoredTopic {
	var out []ScoredTopic
	for _, subject := range subjects {
		for _, t := range b.catalog.Topics(subject) {
			m, ok := mastery[MasteryKey(subject, t.Name)]
			if !ok {
				m = DefaultMastery
			}
			m = clamp(m, 0, 1)
			out = append(out, ScoredTopic{
				Topic:   t,
				Mastery: m,
				Score:   b.scorer.Score(t, m, level, profile),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
