package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlertRepo(pool *pgxpool.Pool, logger *slog.Logger) *AlertRepo {
	return &AlertRepo{pool: pool, logger: logger}
}

const alertColumns = `
	id, reporter_id, reporter_type, station_id, department_id, unit_id,
	incident_type, incident_name, priority, description,
	location_name, location_lat, location_lng, status,
	dispatched, dispatched_at, declined, declined_at, decline_reason,
	referred, referred_at, referred_to_station, refer_reason,
	created_at, updated_at`

func scanAlert(row rowScanner) (*domain.Alert, error) {
	var (
		a        domain.Alert
		lat, lng *float64
	)
	err := row.Scan(
		&a.ID,
		&a.ReporterID,
		&a.ReporterType,
		&a.StationID,
		&a.DepartmentID,
		&a.UnitID,
		&a.IncidentType,
		&a.IncidentName,
		&a.Priority,
		&a.Description,
		&a.Location.Name,
		&lat,
		&lng,
		&a.Status,
		&a.Dispatched,
		&a.DispatchedAt,
		&a.Declined,
		&a.DeclinedAt,
		&a.DeclineReason,
		&a.Referred,
		&a.ReferredAt,
		&a.ReferredToStation,
		&a.ReferReason,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		a.Location.Coordinates = &domain.Coordinates{Lat: *lat, Lng: *lng}
	}
	return &a, nil
}

func locationArgs(l domain.Location) (*float64, *float64) {
	if l.Coordinates == nil {
		return nil, nil
	}
	lat, lng := l.Coordinates.Lat, l.Coordinates.Lng
	return &lat, &lng
}

func (r *AlertRepo) Create(ctx context.Context, a *domain.Alert) error {
	const op = "postgres.Alert.Create"

	const query = `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	if a.Status == "" {
		a.Status = domain.AlertActive
	}

	lat, lng := locationArgs(a.Location)
	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.ReporterID,
		a.ReporterType,
		a.StationID,
		a.DepartmentID,
		a.UnitID,
		a.IncidentType,
		a.IncidentName,
		a.Priority,
		a.Description,
		a.Location.Name,
		lat,
		lng,
		a.Status,
		a.Dispatched,
		a.DispatchedAt,
		a.Declined,
		a.DeclinedAt,
		a.DeclineReason,
		a.Referred,
		a.ReferredAt,
		a.ReferredToStation,
		a.ReferReason,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *AlertRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	const op = "postgres.Alert.Get"

	a, err := scanAlert(r.pool.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return a, nil
}

func (r *AlertRepo) Update(ctx context.Context, a *domain.Alert) error {
	const op = "postgres.Alert.Update"

	const query = `
		UPDATE alerts
		SET station_id = $2,
			department_id = $3,
			unit_id = $4,
			incident_type = $5,
			incident_name = $6,
			priority = $7,
			description = $8,
			location_name = $9,
			location_lat = $10,
			location_lng = $11,
			status = $12,
			dispatched = $13,
			dispatched_at = $14,
			declined = $15,
			declined_at = $16,
			decline_reason = $17,
			referred = $18,
			referred_at = $19,
			referred_to_station = $20,
			refer_reason = $21,
			updated_at = $22
		WHERE id = $1
	`

	lat, lng := locationArgs(a.Location)
	cmd, err := r.pool.Exec(ctx, query,
		a.ID,
		a.StationID,
		a.DepartmentID,
		a.UnitID,
		a.IncidentType,
		a.IncidentName,
		a.Priority,
		a.Description,
		a.Location.Name,
		lat,
		lng,
		a.Status,
		a.Dispatched,
		a.DispatchedAt,
		a.Declined,
		a.DeclinedAt,
		a.DeclineReason,
		a.Referred,
		a.ReferredAt,
		a.ReferredToStation,
		a.ReferReason,
		a.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", a.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *AlertRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Alert.Delete"

	cmd, err := r.pool.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *AlertRepo) List(ctx context.Context, f domain.AlertFilter) ([]*domain.Alert, int64, error) {
	const op = "postgres.Alert.List"

	var (
		conds []string
		args  []any
	)
	if f.StationID != nil {
		args = append(args, *f.StationID)
		conds = append(conds, fmt.Sprintf("station_id = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM alerts`+where, args...).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	limit, offset := pageBounds(f.Page, f.Limit)
	listArgs := append(append([]any{}, args...), limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM alerts%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		alertColumns, where, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, listArgs...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	alerts := make([]*domain.Alert, 0, limit)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return alerts, total, nil
}
