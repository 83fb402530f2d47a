package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	settingsuc "quotecraft/internal/application/settings/usecases"
	"quotecraft/internal/domain/settings"
)

const settingsKey = "settings:global"

// SettingsCache provides Redis-based caching for the global settings row so
// quote reads do not hit the database for pricing floors.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSettingsCache(client *redis.Client, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		client: client,
		ttl:    ttl,
	}
}

var _ settingsuc.Cache = (*SettingsCache)(nil)

// Get returns the cached settings, or nil on a cache miss.
func (c *SettingsCache) Get(ctx context.Context) (*settings.GlobalSettings, error) {
	data, err := c.client.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings from redis: %w", err)
	}

	var s settings.GlobalSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached settings: %w", err)
	}
	return &s, nil
}

func (c *SettingsCache) Set(ctx context.Context, s *settings.GlobalSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := c.client.Set(ctx, settingsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store settings in redis: %w", err)
	}
	return nil
}

func (c *SettingsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, settingsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate settings cache: %w", err)
	}
	return nil
}
