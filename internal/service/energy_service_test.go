package service

import (
	"testing"
	"time"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergyService_CurrentDefaults(t *testing.T) {
	env := newTestEnv(t)

	current, err := env.energy.Current(1)
	require.NoError(t, err)
	assert.False(t, current.HasData)
	assert.Equal(t, 50, current.EnergyScore)
	assert.Equal(t, engine.EnergyMedium, current.EnergyLevel)

	score, err := env.energy.CurrentScore(1)
	require.NoError(t, err)
	assert.Equal(t, 50, score)
}

func TestEnergyService_SubmitAndCurrent(t *testing.T) {
	env := newTestEnv(t)

	log := &model.EnergyLog{UserID: 1, SleepHours: 8, Tiredness: 2}
	analysis, err := env.energy.Submit(log)
	require.NoError(t, err)
	assert.Equal(t, fixedNow, log.Timestamp)
	assert.Equal(t, 76, analysis.EnergyScore)
	assert.Equal(t, engine.EnergyHigh, analysis.EnergyLevel)
	assert.NotEmpty(t, analysis.RecommendedActivities)

	current, err := env.energy.Current(1)
	require.NoError(t, err)
	assert.True(t, current.HasData)
	assert.Equal(t, 76, current.EnergyScore)
	require.NotNil(t, current.RecordedAt)

	score, err := env.energy.CurrentScore(1)
	require.NoError(t, err)
	assert.Equal(t, 76, score)
}

func TestEnergyService_Burnout(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.energy.Burnout(1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, result.BurnoutRisk)
	assert.Equal(t, 7, result.Window)

	_, err = env.energy.Submit(&model.EnergyLog{UserID: 1, SleepHours: 4, Tiredness: 5, Timestamp: fixedNow.Add(-time.Hour)})
	require.NoError(t, err)
	result, err = env.energy.Burnout(1)
	require.NoError(t, err)
	assert.Equal(t, 0.3, result.BurnoutRisk)

	_, err = env.energy.Submit(&model.EnergyLog{UserID: 1, SleepHours: 4, Tiredness: 5, Timestamp: fixedNow})
	require.NoError(t, err)
	result, err = env.energy.Burnout(1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SampleSize)
	assert.Equal(t, 0.84, result.BurnoutRisk)
}
