package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/jackc/pgx/v5"
)

// FindNearest returns the closest station within radiusKm of the point.
func (r *StationRepo) FindNearest(ctx context.Context, lat, lng, radiusKm float64) (*domain.Station, error) {
	const op = "postgres.Station.FindNearest"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusKm <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// geography cast keeps distances in metres.
	query := `
SELECT ` + stationColumns + `
FROM stations
WHERE geo_point IS NOT NULL
  AND ST_DWithin(
    geo_point,
    ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
    $3 * 1000
  )
ORDER BY ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography)
LIMIT 1
`

	s, err := scanStation(r.pool.QueryRow(ctx, query, lng, lat, radiusKm))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return s, nil
}
