package service

import (
	"context"
	"log/slog"

	"fireDispatch/internal/domain"

	"github.com/google/uuid"
)

// StationFlags recomputes the denormalized station flags from live counts.
// Failures are logged and never surface to the caller.
type StationFlags struct {
	stations  StationRepository
	alerts    AlertRepository
	incidents IncidentRepository
	logger    *slog.Logger
}

func NewStationFlags(stations StationRepository, alerts AlertRepository, incidents IncidentRepository, logger *slog.Logger) *StationFlags {
	return &StationFlags{
		stations:  stations,
		alerts:    alerts,
		incidents: incidents,
		logger:    logger,
	}
}

func (f *StationFlags) RecomputeActiveAlert(ctx context.Context, stationID uuid.UUID) {
	if stationID == uuid.Nil {
		return
	}
	n, err := f.alerts.CountByStation(ctx, stationID, domain.OpenAlertStatuses)
	if err != nil {
		f.logger.Error("count open alerts failed",
			slog.String("station_id", stationID.String()),
			slog.Any("error", err),
		)
		return
	}
	if err := f.stations.SetActiveAlert(ctx, stationID, n > 0); err != nil {
		f.logger.Error("persist hasActiveAlert failed",
			slog.String("station_id", stationID.String()),
			slog.Any("error", err),
		)
	}
}

func (f *StationFlags) RecomputeActiveIncident(ctx context.Context, stationID uuid.UUID) {
	if stationID == uuid.Nil {
		return
	}
	n, err := f.incidents.CountByStation(ctx, stationID, domain.LiveIncidentStatuses)
	if err != nil {
		f.logger.Error("count live incidents failed",
			slog.String("station_id", stationID.String()),
			slog.Any("error", err),
		)
		return
	}
	if err := f.stations.SetActiveIncident(ctx, stationID, n > 0); err != nil {
		f.logger.Error("persist hasActiveIncident failed",
			slog.String("station_id", stationID.String()),
			slog.Any("error", err),
		)
	}
}
