package logger

import (
	"neuro_study_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
		mode string
		want zapcore.Level
	}{
		{"explicit level wins", config.LogConfig{Level: "warn"}, "debug", zapcore.WarnLevel},
		{"debug mode", config.LogConfig{}, "debug", zapcore.DebugLevel},
		{"release mode", config.LogConfig{}, "release", zapcore.InfoLevel},
		{"bad level falls back", config.LogConfig{Level: "loud"}, "release", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.cfg, tt.mode))
		})
	}
}

func TestNamedBeforeInit(t *testing.T) {
	l := Named("engine")
	assert.NotNil(t, l)
	l.Info("no-op before init")
}
