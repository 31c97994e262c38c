package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"neuro_study_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSessionLength(t *testing.T, path string, minutes int) {
	t.Helper()
	body := []byte("storage:\n  type: minio\nscheduler:\n  max_session_duration: " + strconv.Itoa(minutes) + "\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeSessionLength(t, path, 60)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, path, nil, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// 等待 watcher 注册
	time.Sleep(200 * time.Millisecond)
	writeSessionLength(t, path, 120)

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 120, cfg.Scheduler.MaxSessionDuration)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
