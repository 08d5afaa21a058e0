package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/internal/metrics"

	"github.com/google/uuid"
)

// Publisher is the outbound pub/sub boundary. An envelope with an empty Room
// is a broadcast.
type Publisher interface {
	Publish(ctx context.Context, env domain.EventEnvelope) error
}

// RoomName is the per-station channel suffix.
func RoomName(stationID uuid.UUID) string {
	return "station:" + stationID.String()
}

type Fanout struct {
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewFanout(publisher Publisher, logger *slog.Logger) *Fanout {
	return &Fanout{
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Notify publishes ev to the broadcast channel and, when a station can be
// resolved, to that station's room. Failures are logged and dropped.
func (f *Fanout) Notify(ctx context.Context, ev domain.Event) {
	if f == nil || f.publisher == nil {
		return
	}

	body, err := json.Marshal(Project(ev))
	if err != nil {
		f.logger.Error("notify: marshal payload",
			slog.String("event", string(ev.Name)),
			slog.String("error", err.Error()))
		metrics.PublishFailures.WithLabelValues(string(ev.Name)).Inc()
		return
	}

	env := domain.EventEnvelope{
		Event:       ev.Name,
		Payload:     body,
		PublishedAt: f.now(),
	}
	f.publish(ctx, env)

	if station := StationRoom(ev); station != uuid.Nil {
		env.Room = RoomName(station)
		f.publish(ctx, env)
	}
}

func (f *Fanout) publish(ctx context.Context, env domain.EventEnvelope) {
	if err := f.publisher.Publish(ctx, env); err != nil {
		metrics.PublishFailures.WithLabelValues(string(env.Event)).Inc()
		f.logger.Warn("notify: publish failed",
			slog.String("event", string(env.Event)),
			slog.String("room", env.Room),
			slog.String("error", err.Error()))
	}
}

// Multi publishes to every backend; the first error is returned after all
// have been tried.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, env domain.EventEnvelope) error {
	var first error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, env); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Discard drops every envelope. Used when PUBLISHER=none.
type Discard struct{}

func (Discard) Publish(context.Context, domain.EventEnvelope) error { return nil }
