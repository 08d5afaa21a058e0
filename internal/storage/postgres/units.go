package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DepartmentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDepartmentRepo(pool *pgxpool.Pool, logger *slog.Logger) *DepartmentRepo {
	return &DepartmentRepo{pool: pool, logger: logger}
}

func (r *DepartmentRepo) Create(ctx context.Context, d *domain.Department) error {
	const op = "postgres.Department.Create"

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO departments (id, station_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		d.ID, d.StationID, d.Name, d.CreatedAt)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *DepartmentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	const op = "postgres.Department.Get"

	var d domain.Department
	err := r.pool.QueryRow(ctx,
		`SELECT id, station_id, name, created_at FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.StationID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return &d, nil
}

func (r *DepartmentRepo) ListByStation(ctx context.Context, stationID uuid.UUID) ([]*domain.Department, error) {
	const op = "postgres.Department.ListByStation"

	rows, err := r.pool.Query(ctx,
		`SELECT id, station_id, name, created_at FROM departments WHERE station_id = $1 ORDER BY created_at`, stationID)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []*domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.StationID, &d.Name, &d.CreatedAt); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

type UnitRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUnitRepo(pool *pgxpool.Pool, logger *slog.Logger) *UnitRepo {
	return &UnitRepo{pool: pool, logger: logger}
}

const unitColumns = `id, department_id, name, is_active, activated_at, created_at, updated_at`

func scanUnit(row rowScanner) (*domain.Unit, error) {
	var u domain.Unit
	if err := row.Scan(&u.ID, &u.DepartmentID, &u.Name, &u.IsActive, &u.ActivatedAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnitRepo) Create(ctx context.Context, u *domain.Unit) error {
	const op = "postgres.Unit.Create"

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	u.UpdatedAt = u.CreatedAt

	_, err := r.pool.Exec(ctx,
		`INSERT INTO units (`+unitColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.DepartmentID, u.Name, u.IsActive, u.ActivatedAt, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *UnitRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	const op = "postgres.Unit.Get"

	u, err := scanUnit(r.pool.QueryRow(ctx, `SELECT `+unitColumns+` FROM units WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return u, nil
}

func (r *UnitRepo) Update(ctx context.Context, u *domain.Unit) error {
	const op = "postgres.Unit.Update"

	cmd, err := r.pool.Exec(ctx,
		`UPDATE units SET name = $2, is_active = $3, activated_at = $4, updated_at = $5 WHERE id = $1`,
		u.ID, u.Name, u.IsActive, u.ActivatedAt, u.UpdatedAt)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", u.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *UnitRepo) ActiveByDepartment(ctx context.Context, departmentID uuid.UUID) (*domain.Unit, error) {
	const op = "postgres.Unit.ActiveByDepartment"

	const query = `SELECT ` + unitColumns + ` FROM units WHERE department_id = $1 AND is_active ORDER BY activated_at DESC NULLS LAST LIMIT 1`

	u, err := scanUnit(r.pool.QueryRow(ctx, query, departmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return u, nil
}

func (r *UnitRepo) ListActive(ctx context.Context) ([]*domain.Unit, error) {
	const op = "postgres.Unit.ListActive"

	rows, err := r.pool.Query(ctx, `SELECT `+unitColumns+` FROM units WHERE is_active`)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []*domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
