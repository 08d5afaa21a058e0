package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"fireDispatch/internal/config"
	"fireDispatch/internal/domain"

	"github.com/nats-io/nats.go"
)

// Publisher sends envelopes to "<prefix>.broadcast" or "<prefix>.<room>",
// with ':' in room names mapped to the NATS token separator.
type Publisher struct {
	conn   *nats.Conn
	prefix string
}

func Connect(cfg config.NATSConfig, prefix string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("Connected to NATS successfully", slog.String("url", cfg.URL))

	return &Publisher{conn: conn, prefix: prefix}, nil
}

func Subject(prefix, room string) string {
	if room == "" {
		return prefix + ".broadcast"
	}
	return prefix + "." + strings.ReplaceAll(room, ":", ".")
}

func (p *Publisher) Publish(ctx context.Context, env domain.EventEnvelope) error {
	if p.conn == nil {
		return fmt.Errorf("not connected")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return p.conn.Publish(Subject(p.prefix, env.Room), b)
}

func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
