package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/VishalKR1202/ChukGO1/internal/entity"
	"github.com/redis/go-redis/v9"
)

// StationCache is a read-through cache for station reference data. It is an
// optimization only: callers fall back to the database on any cache error.
type StationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStationCache(client *redis.Client, ttl time.Duration) *StationCache {
	return &StationCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *StationCache) Set(ctx context.Context, key string, stations []*entity.Station) error {
	data, err := json.Marshal(stations)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, "stations:"+key, data, c.ttl).Err()
}

func (c *StationCache) Get(ctx context.Context, key string) ([]*entity.Station, error) {
	data, err := c.client.Get(ctx, "stations:"+key).Result()
	if err != nil {
		return nil, err
	}

	var stations []*entity.Station
	if err := json.Unmarshal([]byte(data), &stations); err != nil {
		return nil, err
	}

	return stations, nil
}
