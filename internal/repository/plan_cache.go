package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"neuro_study_backend/internal/engine"

	"github.com/go-redis/redis/v8"
)

// PlanCache 当日计划的 Redis 缓存，Redis 未启用时所有操作为空操作
type PlanCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewPlanCache(rdb *redis.Client, ttl time.Duration) *PlanCache {
	return &PlanCache{Redis: rdb, TTL: ttl}
}

func planCacheKey(userID uint, date string) string {
	return fmt.Sprintf("plan:%d:%s", userID, date)
}

// CachedPlan 缓存中的计划及其持久化 ID
type CachedPlan struct {
	ID   string           `json:"id"`
	Plan engine.StudyPlan `json:"plan"`
}

func (c *PlanCache) Get(ctx context.Context, userID uint, date string) (*CachedPlan, bool, error) {
	if c == nil || c.Redis == nil {
		return nil, false, nil
	}
	raw, err := c.Redis.Get(ctx, planCacheKey(userID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var cached CachedPlan
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, err
	}
	return &cached, true, nil
}

func (c *PlanCache) Set(ctx context.Context, userID uint, cached *CachedPlan) error {
	if c == nil || c.Redis == nil {
		return nil
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, planCacheKey(userID, cached.Plan.Date), raw, c.TTL).Err()
}

func (c *PlanCache) Invalidate(ctx context.Context, userID uint, date string) error {
	if c == nil || c.Redis == nil {
		return nil
	}
	return c.Redis.Del(ctx, planCacheKey(userID, date)).Err()
}
