package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fireDispatch/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// StationCache keeps the station directory used for fuzzy name matching.
type StationCache struct {
	client *goredis.Client
	key    string
}

func NewStationCache(r *Redis) *StationCache {
	return &StationCache{
		client: r.Client,
		key:    "stations:directory",
	}
}

// GetRefs returns nil, nil on a cache miss.
func (c *StationCache) GetRefs(ctx context.Context) ([]domain.StationRef, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var refs []domain.StationRef
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, err
	}

	return refs, nil
}

func (c *StationCache) SetRefs(ctx context.Context, refs []domain.StationRef, ttl time.Duration) error {
	b, err := json.Marshal(refs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *StationCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
