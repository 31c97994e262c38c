package service

import (
	"context"
	"testing"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotTimes(slots []engine.ScheduleSlot) []string {
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	return times
}

func TestPlanService_Generate(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "p@example.com", []string{"Math"}, []string{"09:00-11:00"})
	_, err := env.energy.Submit(&model.EnergyLog{UserID: u.ID, SleepHours: 8, Tiredness: 2})
	require.NoError(t, err)

	result, err := env.plan.Generate(context.Background(), u.ID, GenerateRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "2026-05-04", result.Date)
	assert.Equal(t, 76, result.EnergyScore)
	assert.Equal(t, engine.EnergyHigh, result.EnergyLevel)
	assert.Equal(t, engine.Struggling, result.CognitiveProfile.Type)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotTimes(result.StudyPlan))
	assert.Equal(t, util.ModelVersion, result.Metadata.ModelVersion)
	assert.Equal(t, 120, result.Metadata.TotalStudyTime)
	assert.Greater(t, result.Metadata.EstimatedLearningGain, 0.0)
	for _, slot := range result.StudyPlan {
		assert.Equal(t, "Math", slot.Subject)
		assert.NotEmpty(t, slot.Rationale)
	}

	// 持久化并归档
	record, err := env.plan.PlanRepo.FindByIDAndUserID(result.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "struggling", record.ProfileType)
	assert.Equal(t, 120, record.TotalStudyTime)
	require.NotEmpty(t, record.ArchiveURL)

	archived, err := env.plan.Archive.Load(context.Background(), ArchiveName(record))
	require.NoError(t, err)
	assert.Equal(t, result.ID, archived.ID)
	assert.Equal(t, record.Plan(), archived.Plan())
}

func TestPlanService_GenerateOverrides(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "p@example.com", []string{"Math", "Physics"}, []string{"09:00-17:00"})

	result, err := env.plan.Generate(context.Background(), u.ID, GenerateRequest{
		Date:          "2026-06-01",
		OverrideSlots: []string{"14:00-16:00"},
		Preferences:   &engine.Preferences{MaxSessionDuration: 120},
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-06-01", result.Date)
	assert.Equal(t, []string{"14:00-16:00"}, slotTimes(result.StudyPlan))
	assert.Equal(t, 120, result.Metadata.TotalStudyTime)
}

func TestPlanService_GenerateErrors(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "p@example.com", []string{"Math"}, []string{"09:00-11:00"})

	_, err := env.plan.Generate(context.Background(), u.ID, GenerateRequest{OverrideSlots: []string{"11:00-09:00"}})
	assert.ErrorIs(t, err, engine.ErrInvalidTimeWindow)

	_, err = env.plan.Generate(context.Background(), 999, GenerateRequest{})
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	plans, err := env.plan.History(u.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestPlanService_GenerateWithoutSubjects(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "p@example.com", nil, []string{"09:00-11:00"})

	result, err := env.plan.Generate(context.Background(), u.ID, GenerateRequest{})
	require.NoError(t, err)
	assert.NotNil(t, result.StudyPlan)
	assert.Empty(t, result.StudyPlan)
	assert.Equal(t, 0, result.Metadata.TotalStudyTime)
	assert.Equal(t, 0.0, result.Metadata.EstimatedLearningGain)
}

func TestPlanService_TodayAndHistory(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "p@example.com", []string{"Chemistry"}, []string{"19:00-21:00"})
	ctx := context.Background()

	_, err := env.plan.Today(ctx, u.ID)
	assert.ErrorIs(t, err, util.ErrPlanNotFound)

	first, err := env.plan.Generate(ctx, u.ID, GenerateRequest{})
	require.NoError(t, err)
	second, err := env.plan.Generate(ctx, u.ID, GenerateRequest{OverrideSlots: []string{"19:00-20:00"}})
	require.NoError(t, err)

	today, err := env.plan.Today(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, today.ID)
	assert.Equal(t, second.StudyPlan, today.StudyPlan)

	history, err := env.plan.History(u.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	ids := []string{history[0].ID, history[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)

	limited, err := env.plan.History(u.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
