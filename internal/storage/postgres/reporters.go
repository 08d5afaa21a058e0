package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReporterRepo reads the two reporter directories. Both are owned by other
// services; this side only looks them up.
type ReporterRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReporterRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReporterRepo {
	return &ReporterRepo{pool: pool, logger: logger}
}

func (r *ReporterRepo) GetUser(ctx context.Context, id uuid.UUID) (*domain.Reporter, error) {
	return r.get(ctx, "postgres.Reporter.GetUser",
		`SELECT id, name, phone, email FROM users WHERE id = $1`, id, domain.ReporterUser)
}

func (r *ReporterRepo) GetFirePersonnel(ctx context.Context, id uuid.UUID) (*domain.Reporter, error) {
	return r.get(ctx, "postgres.Reporter.GetFirePersonnel",
		`SELECT id, name, phone, email FROM fire_personnel WHERE id = $1`, id, domain.ReporterFirePersonnel)
}

func (r *ReporterRepo) get(ctx context.Context, op, query string, id uuid.UUID, typ domain.ReporterType) (*domain.Reporter, error) {
	rep := domain.Reporter{Type: typ}
	err := r.pool.QueryRow(ctx, query, id).Scan(&rep.ID, &rep.Name, &rep.Phone, &rep.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &rep, nil
}

// CreateUser and CreateFirePersonnel seed the directories.
func (r *ReporterRepo) CreateUser(ctx context.Context, rep *domain.Reporter) error {
	return r.create(ctx, "postgres.Reporter.CreateUser",
		`INSERT INTO users (id, name, phone, email) VALUES ($1, $2, $3, $4)`, rep)
}

func (r *ReporterRepo) CreateFirePersonnel(ctx context.Context, rep *domain.Reporter) error {
	return r.create(ctx, "postgres.Reporter.CreateFirePersonnel",
		`INSERT INTO fire_personnel (id, name, phone, email) VALUES ($1, $2, $3, $4)`, rep)
}

func (r *ReporterRepo) create(ctx context.Context, op, query string, rep *domain.Reporter) error {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if _, err := r.pool.Exec(ctx, query, rep.ID, rep.Name, rep.Phone, rep.Email); err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
