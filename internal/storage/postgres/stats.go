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
)

// Live-count queries backing the station flags, the guard and station stats.

func (r *AlertRepo) CountByStation(ctx context.Context, stationID uuid.UUID, statuses []domain.AlertStatus) (int64, error) {
	const op = "postgres.Alert.CountByStation"

	const query = `SELECT COUNT(*) FROM alerts WHERE station_id = $1 AND status = ANY($2)`

	var n int64
	if err := r.pool.QueryRow(ctx, query, stationID, alertStatusStrings(statuses)).Scan(&n); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err), slog.String("station_id", stationID.String()))
		return 0, e.WrapError(ctx, op, err)
	}
	return n, nil
}

func (r *IncidentRepo) CountByStation(ctx context.Context, stationID uuid.UUID, statuses []domain.IncidentStatus) (int64, error) {
	const op = "postgres.Incident.CountByStation"

	const query = `SELECT COUNT(*) FROM incidents WHERE station_id = $1 AND status = ANY($2)`

	var n int64
	if err := r.pool.QueryRow(ctx, query, stationID, incidentStatusStrings(statuses)).Scan(&n); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err), slog.String("station_id", stationID.String()))
		return 0, e.WrapError(ctx, op, err)
	}
	return n, nil
}

func (r *IncidentRepo) LatestByStation(ctx context.Context, stationID uuid.UUID, statuses []domain.IncidentStatus) (*domain.Incident, error) {
	const op = "postgres.Incident.LatestByStation"

	const query = `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE station_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC
		LIMIT 1
	`

	inc, err := scanIncident(r.pool.QueryRow(ctx, query, stationID, incidentStatusStrings(statuses)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("station_id", stationID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return inc, nil
}
