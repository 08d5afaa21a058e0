package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	PublisherRedis = "redis"
	PublisherNATS  = "nats"
	PublisherNone  = "none"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Storage   StorageConfig   `json:"storage"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	Events    EventsConfig    `json:"events"`
	NATS      NATSConfig      `json:"nats"`
	APIKey    string          `json:"api_key,omitempty"`
	Webhook   WebhookConfig   `json:"webhook"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Stations  StationsConfig  `json:"stations"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver string `json:"driver"`
	// SeedFile is a JSON document loaded into the memory driver at start.
	SeedFile string `json:"seed_file,omitempty"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`
	Migrate  bool   `json:"migrate"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type EventsConfig struct {
	Publisher     string `json:"publisher"`
	ChannelPrefix string `json:"channel_prefix"`
}

type NATSConfig struct {
	URL           string        `json:"url"`
	Name          string        `json:"name"`
	ReconnectWait time.Duration `json:"reconnect_wait"`
	MaxReconnects int           `json:"max_reconnects"`
}

type WebhookConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
	QueueKey string `json:"queue_key"`
}

// SchedulerConfig drives the daily unit sweep. Timezone is also the zone in
// which the 07:00/08:00 end-of-shift thresholds are evaluated.
type SchedulerConfig struct {
	SweepAt  string `json:"sweep_at"`
	Timezone string `json:"timezone"`
	Disabled bool   `json:"disabled"`
}

type StationsConfig struct {
	MatchRadiusKM float64       `json:"match_radius_km"`
	CacheTTL      time.Duration `json:"cache_ttl"`
}

func Load(ctx context.Context) (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", StorageDriverPostgres),
			SeedFile: getEnv("MEMORY_SEED_FILE", ""),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "dispatch_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			Migrate:         getEnvBool("POSTGRES_MIGRATE", true),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Events: EventsConfig{
			Publisher:     getEnv("PUBLISHER", PublisherRedis),
			ChannelPrefix: getEnv("EVENT_CHANNEL_PREFIX", "dispatch"),
		},
		NATS: NATSConfig{
			URL:           getEnv("NATS_URL", "nats://nats-local:4222"),
			Name:          getEnv("NATS_CLIENT_NAME", "fire-dispatch"),
			ReconnectWait: getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
			MaxReconnects: getEnvInt("NATS_MAX_RECONNECTS", 60),
		},
		APIKey: getEnv("API_KEY", ""),
		Webhook: WebhookConfig{
			URL:      getEnv("WEBHOOK_URL", ""),
			Disabled: getEnvBool("WEBHOOK_DISABLED", true),
			QueueKey: getEnv("WEBHOOK_QUEUE_KEY", "dispatch:webhooks"),
		},
		Scheduler: SchedulerConfig{
			SweepAt:  getEnv("SWEEP_AT", "08:00"),
			Timezone: getEnv("SWEEP_TZ", "UTC"),
			Disabled: getEnvBool("SWEEP_DISABLED", false),
		},
		Stations: StationsConfig{
			MatchRadiusKM: getEnvFloat("STATION_MATCH_RADIUS_KM", 5),
			CacheTTL:      getEnvDuration("STATION_CACHE_TTL", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("publisher", cfg.Events.Publisher),
		slog.String("sweep_at", cfg.Scheduler.SweepAt),
		slog.String("sweep_tz", cfg.Scheduler.Timezone))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Postgres.Host == "" {
			return errors.New("POSTGRES_HOST required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.Events.Publisher {
	case PublisherRedis, PublisherNATS, PublisherNone:
	default:
		return fmt.Errorf("unknown PUBLISHER %q", c.Events.Publisher)
	}

	if !c.Webhook.Disabled && c.Webhook.URL == "" {
		return errors.New("WEBHOOK_URL required when webhooks are enabled")
	}

	if _, _, err := c.Scheduler.Clock(); err != nil {
		return err
	}
	if _, err := c.Scheduler.Location(); err != nil {
		return err
	}

	return nil
}

// Clock parses SweepAt ("HH:MM").
func (s SchedulerConfig) Clock() (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s.SweepAt), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("SWEEP_AT must be HH:MM, got %q", s.SweepAt)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("SWEEP_AT hour out of range: %q", s.SweepAt)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("SWEEP_AT minute out of range: %q", s.SweepAt)
	}
	return hour, minute, nil
}

func (s SchedulerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("SWEEP_TZ: %w", err)
	}
	return loc, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
