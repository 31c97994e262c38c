package service

import (
	"fmt"
	"sync/atomic"

	"neuro_study_backend/internal/config"
	"neuro_study_backend/internal/engine"
	"neuro_study_backend/pkg/logger"

	"go.uber.org/zap"
)

// engineState 排课引擎与其配置快照，整体替换
type engineState struct {
	builder   *engine.Builder
	scheduler config.SchedulerConfig
}

// EngineHolder 持有当前排课引擎，配置热更新时原子替换，
// 正在进行的排课继续使用旧实例。
type EngineHolder struct {
	state atomic.Pointer[engineState]
}

func NewEngineHolder(cfg config.SchedulerConfig) (*EngineHolder, error) {
	h := &EngineHolder{}
	if err := h.Reload(cfg); err != nil {
		return nil, err
	}
	return h, nil
}

func newBuilder(cfg config.SchedulerConfig) (*engine.Builder, error) {
	catalog := engine.DefaultCatalog()
	if cfg.CatalogPath != "" {
		c, err := engine.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		catalog = c
	}

	return engine.NewBuilder(engine.BuilderConfig{
		Catalog: catalog,
		Defaults: engine.Preferences{
			MaxSessionDuration: cfg.MaxSessionDuration,
			MinBreak:           cfg.MinBreak,
		},
	}), nil
}

// Reload 构建新引擎，失败时保留旧实例
func (h *EngineHolder) Reload(cfg config.SchedulerConfig) error {
	b, err := newBuilder(cfg)
	if err != nil {
		return err
	}
	h.state.Store(&engineState{builder: b, scheduler: cfg})
	logger.Named("engine").Info("Scheduling engine loaded",
		zap.String("catalog", cfg.CatalogPath),
		zap.Strings("subjects", b.Catalog().Subjects()),
		zap.Int("maxSessionDuration", cfg.MaxSessionDuration),
		zap.Int("minBreak", cfg.MinBreak))
	return nil
}

func (h *EngineHolder) Builder() *engine.Builder {
	return h.state.Load().builder
}

func (h *EngineHolder) Scheduler() config.SchedulerConfig {
	return h.state.Load().scheduler
}

func (h *EngineHolder) eventWindow() int {
	if n := h.Scheduler().EventWindow; n > 0 {
		return n
	}
	return 20
}

func (h *EngineHolder) burnoutWindow() int {
	if n := h.Scheduler().BurnoutWindow; n > 0 {
		return n
	}
	return engine.BurnoutWindow
}
