package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitEvents(t *testing.T, env *testEnv, userID uint, n int, timeTaken float64, correct bool) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, env.cognitive.Submit(context.Background(), &model.CognitiveEvent{
			UserID:     userID,
			QuestionID: fmt.Sprintf("q%d", i),
			Subject:    "Math",
			TimeTaken:  timeTaken,
			Correct:    correct,
			Confidence: 3,
			Timestamp:  fixedNow.Add(-time.Duration(n-i) * time.Minute),
		}))
	}
}

func TestCognitiveService_ProfileWithoutEvents(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.cognitive.Profile(1)
	require.NoError(t, err)
	assert.Equal(t, engine.Struggling, result.Type)
	assert.Equal(t, 0, result.SampleSize)
	assert.NotEmpty(t, result.Intervention)
}

func TestCognitiveService_ProfileSlowAccurate(t *testing.T) {
	env := newTestEnv(t)
	submitEvents(t, env, 1, 10, 120, true)

	result, err := env.cognitive.Profile(1)
	require.NoError(t, err)
	assert.Equal(t, engine.SlowAccurate, result.Type)
	assert.InDelta(t, 0.72, result.Confidence, 1e-9)
	assert.Equal(t, 10, result.SampleSize)
}

func TestCognitiveService_ProfileUsesEventWindow(t *testing.T) {
	env := newTestEnv(t)
	submitEvents(t, env, 1, 25, 30, false)

	result, err := env.cognitive.Profile(1)
	require.NoError(t, err)
	assert.Equal(t, 20, result.SampleSize)
	assert.Equal(t, engine.Struggling, result.Type)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
}

func TestCognitiveService_SubmitDefaultsTimestamp(t *testing.T) {
	env := newTestEnv(t)

	event := &model.CognitiveEvent{UserID: 1, QuestionID: "q", Subject: "Math", TimeTaken: 5, Confidence: 2}
	require.NoError(t, env.cognitive.Submit(context.Background(), event))
	assert.Equal(t, fixedNow, event.Timestamp)
	assert.NotZero(t, event.ID)
}

func TestCognitiveService_ListRecentLimits(t *testing.T) {
	env := newTestEnv(t)
	submitEvents(t, env, 1, 25, 30, true)

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 20},
		{limit: -1, want: 20},
		{limit: 5, want: 5},
		{limit: 1000, want: 25},
	}
	for _, tt := range tests {
		events, err := env.cognitive.ListRecent(1, tt.limit)
		require.NoError(t, err)
		assert.Len(t, events, tt.want, "limit %d", tt.limit)
	}
}
