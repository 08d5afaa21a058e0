package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"fireDispatch/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Publisher fans envelopes out over Redis PUBLISH. Broadcasts go to
// "<prefix>:broadcast", rooms to "<prefix>:<room>".
type Publisher struct {
	client *redis.Client
	prefix string
}

func NewPublisher(client *redis.Client, prefix string) *Publisher {
	return &Publisher{client: client, prefix: prefix}
}

func (p *Publisher) Channel(room string) string {
	if room == "" {
		return p.prefix + ":broadcast"
	}
	return p.prefix + ":" + room
}

func (p *Publisher) Publish(ctx context.Context, env domain.EventEnvelope) error {
	b, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("redis publish marshal: %w", err)
	}
	if err := p.client.Publish(ctx, p.Channel(env.Room), b).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", env.Event, err)
	}
	return nil
}
