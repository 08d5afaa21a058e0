package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/redis/go-redis/v9"
)

// WebhookQueue buffers broadcast envelopes for the webhook sender.
type WebhookQueue struct {
	client *redis.Client
	key    string
}

func NewWebhookQueue(client *redis.Client, key string) *WebhookQueue {
	return &WebhookQueue{client: client, key: key}
}

func (q *WebhookQueue) Enqueue(ctx context.Context, env domain.EventEnvelope) error {
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// Publish enqueues broadcast envelopes only, so each event is delivered to
// the webhook once rather than once per room.
func (q *WebhookQueue) Publish(ctx context.Context, env domain.EventEnvelope) error {
	if env.Room != "" {
		return nil
	}
	return q.Enqueue(ctx, env)
}

func (q *WebhookQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.EventEnvelope, error) {
	var env domain.EventEnvelope

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return env, e.ErrQueueEmpty
		}
		return env, err
	}
	if len(res) < 2 {
		return env, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &env); err != nil {
		return env, err
	}
	return env, nil
}
