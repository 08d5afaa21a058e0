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

type StationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStationRepo(pool *pgxpool.Pool, logger *slog.Logger) *StationRepo {
	return &StationRepo{pool: pool, logger: logger}
}

const stationColumns = `
	id, name, COALESCE(place_id, ''), address,
	COALESCE(ST_Y(geo_point::geometry), 0) AS lat,
	COALESCE(ST_X(geo_point::geometry), 0) AS lng,
	commission_status, has_active_alert, has_active_incident,
	created_at, updated_at`

func scanStation(row rowScanner) (*domain.Station, error) {
	var s domain.Station
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.PlaceID,
		&s.Address,
		&s.Lat,
		&s.Lng,
		&s.CommissionStatus,
		&s.HasActiveAlert,
		&s.HasActiveIncident,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StationRepo) Create(ctx context.Context, s *domain.Station) error {
	const op = "postgres.Station.Create"

	const query = `
		INSERT INTO stations (id, name, place_id, address, geo_point, commission_status,
			has_active_alert, has_active_incident, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8, $9, $10, $10)
	`

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CommissionStatus == "" {
		s.CommissionStatus = domain.InCommission
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	s.UpdatedAt = s.CreatedAt

	_, err := r.pool.Exec(ctx, query,
		s.ID,
		s.Name,
		s.PlaceID,
		s.Address,
		s.Lng,
		s.Lat,
		s.CommissionStatus,
		s.HasActiveAlert,
		s.HasActiveIncident,
		s.CreatedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (r *StationRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Station, error) {
	const op = "postgres.Station.Get"

	s, err := scanStation(r.pool.QueryRow(ctx, `SELECT `+stationColumns+` FROM stations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return s, nil
}

func (r *StationRepo) GetByPlaceID(ctx context.Context, placeID string) (*domain.Station, error) {
	const op = "postgres.Station.GetByPlaceID"

	s, err := scanStation(r.pool.QueryRow(ctx, `SELECT `+stationColumns+` FROM stations WHERE place_id = $1`, placeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return s, nil
}

func (r *StationRepo) ListRefs(ctx context.Context) ([]domain.StationRef, error) {
	const op = "postgres.Station.ListRefs"

	rows, err := r.pool.Query(ctx, `SELECT id, name, COALESCE(place_id, '') FROM stations ORDER BY name`)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	refs := make([]domain.StationRef, 0, 32)
	for rows.Next() {
		var ref domain.StationRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.PlaceID); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return refs, nil
}

func (r *StationRepo) SetActiveAlert(ctx context.Context, id uuid.UUID, active bool) error {
	return r.setFlag(ctx, "postgres.Station.SetActiveAlert",
		`UPDATE stations SET has_active_alert = $2, updated_at = now() WHERE id = $1`, id, active)
}

func (r *StationRepo) SetActiveIncident(ctx context.Context, id uuid.UUID, active bool) error {
	return r.setFlag(ctx, "postgres.Station.SetActiveIncident",
		`UPDATE stations SET has_active_incident = $2, updated_at = now() WHERE id = $1`, id, active)
}

func (r *StationRepo) setFlag(ctx context.Context, op, query string, id uuid.UUID, active bool) error {
	cmd, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}
