package postgres

import (
	"context"
	"encoding/json"
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

type IncidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *IncidentRepo {
	return &IncidentRepo{pool: pool, logger: logger}
}

const incidentColumns = `
	id, alert_id, station_id, department_id, unit_id, status,
	dispatched_at, arrived_at, resolved_at, closed_at, turnout_slip,
	referred_at, referred_to_station, refer_reason,
	created_at, updated_at`

func scanIncident(row rowScanner) (*domain.Incident, error) {
	var (
		inc  domain.Incident
		slip []byte
	)
	err := row.Scan(
		&inc.ID,
		&inc.AlertID,
		&inc.StationID,
		&inc.DepartmentID,
		&inc.UnitID,
		&inc.Status,
		&inc.DispatchedAt,
		&inc.ArrivedAt,
		&inc.ResolvedAt,
		&inc.ClosedAt,
		&slip,
		&inc.ReferredAt,
		&inc.ReferredToStation,
		&inc.ReferReason,
		&inc.CreatedAt,
		&inc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(slip) > 0 {
		var ts domain.TurnoutSlip
		if err := json.Unmarshal(slip, &ts); err != nil {
			return nil, fmt.Errorf("decode turnout slip: %w", err)
		}
		inc.TurnoutSlip = &ts
	}
	return &inc, nil
}

func encodeSlip(ts *domain.TurnoutSlip) ([]byte, error) {
	if ts == nil {
		return nil, nil
	}
	return json.Marshal(ts)
}

func (r *IncidentRepo) Create(ctx context.Context, inc *domain.Incident) error {
	const op = "postgres.Incident.Create"

	const query = `
		INSERT INTO incidents (` + incidentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	if inc.ID == uuid.Nil {
		inc.ID = uuid.New()
	}
	if inc.CreatedAt.IsZero() {
		inc.CreatedAt = time.Now().UTC()
	}
	if inc.UpdatedAt.IsZero() {
		inc.UpdatedAt = inc.CreatedAt
	}
	if inc.Status == "" {
		inc.Status = domain.IncidentPending
	}

	slip, err := encodeSlip(inc.TurnoutSlip)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.pool.Exec(ctx, query,
		inc.ID,
		inc.AlertID,
		inc.StationID,
		inc.DepartmentID,
		inc.UnitID,
		inc.Status,
		inc.DispatchedAt,
		inc.ArrivedAt,
		inc.ResolvedAt,
		inc.ClosedAt,
		slip,
		inc.ReferredAt,
		inc.ReferredToStation,
		inc.ReferReason,
		inc.CreatedAt,
		inc.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *IncidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	inc, err := scanIncident(r.pool.QueryRow(ctx, `SELECT `+incidentColumns+` FROM incidents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return inc, nil
}

func (r *IncidentRepo) Update(ctx context.Context, inc *domain.Incident) error {
	const op = "postgres.Incident.Update"

	const query = `
		UPDATE incidents
		SET station_id = $2,
			department_id = $3,
			unit_id = $4,
			status = $5,
			dispatched_at = $6,
			arrived_at = $7,
			resolved_at = $8,
			closed_at = $9,
			turnout_slip = $10,
			referred_at = $11,
			referred_to_station = $12,
			refer_reason = $13,
			updated_at = $14
		WHERE id = $1
	`

	slip, err := encodeSlip(inc.TurnoutSlip)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmd, err := r.pool.Exec(ctx, query,
		inc.ID,
		inc.StationID,
		inc.DepartmentID,
		inc.UnitID,
		inc.Status,
		inc.DispatchedAt,
		inc.ArrivedAt,
		inc.ResolvedAt,
		inc.ClosedAt,
		slip,
		inc.ReferredAt,
		inc.ReferredToStation,
		inc.ReferReason,
		inc.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", inc.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *IncidentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Incident.Delete"

	cmd, err := r.pool.Exec(ctx, `DELETE FROM incidents WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (r *IncidentRepo) List(ctx context.Context, f domain.IncidentFilter) ([]*domain.Incident, int64, error) {
	const op = "postgres.Incident.List"

	var (
		conds []string
		args  []any
	)
	if f.StationID != nil {
		args = append(args, *f.StationID)
		conds = append(conds, fmt.Sprintf("station_id = $%d", len(args)))
	}
	if f.AlertID != nil {
		args = append(args, *f.AlertID)
		conds = append(conds, fmt.Sprintf("alert_id = $%d", len(args)))
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
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM incidents`+where, args...).Scan(&total); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	limit, offset := pageBounds(f.Page, f.Limit)
	listArgs := append(append([]any{}, args...), limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM incidents%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		incidentColumns, where, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, listArgs...)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	incidents := make([]*domain.Incident, 0, limit)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return incidents, total, nil
}
