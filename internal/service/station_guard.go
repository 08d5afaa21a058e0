package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fireDispatch/internal/domain"
	"fireDispatch/internal/metrics"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

const (
	DenyNotFound             = "station_not_found"
	DenyOutOfCommission      = "station_out_of_commission"
	DenyStationBusy          = "station_busy"
	DenyDuplicateActiveAlert = "duplicate_active_alert"
)

type StationBusyDetails struct {
	ActiveIncidentDetails domain.ActiveIncidentDetails `json:"activeIncidentDetails"`
}

// StationGuard decides whether a station may take a new alert. It never
// mutates the cached station flags; a set flag is only a hint to re-check
// the live records.
type StationGuard struct {
	stations  StationRepository
	alerts    AlertRepository
	incidents IncidentRepository
	logger    *slog.Logger
}

func NewStationGuard(stations StationRepository, alerts AlertRepository, incidents IncidentRepository, logger *slog.Logger) *StationGuard {
	return &StationGuard{
		stations:  stations,
		alerts:    alerts,
		incidents: incidents,
		logger:    logger,
	}
}

// CanAcceptAlert returns the station when it may accept a new alert, or a
// classified *e.Error describing the denial.
func (g *StationGuard) CanAcceptAlert(ctx context.Context, stationID uuid.UUID) (*domain.Station, error) {
	station, err := g.stations.Get(ctx, stationID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, g.deny(e.New(e.ErrNotFound, DenyNotFound, "station not found", nil))
		}
		return nil, err
	}

	if station.CommissionStatus == domain.OutOfCommission {
		return nil, g.deny(e.New(e.ErrUnavailable, DenyOutOfCommission,
			fmt.Sprintf("station %s is out of commission", station.Name), nil))
	}

	if station.HasActiveIncident {
		details, err := g.ActiveIncident(ctx, station.ID)
		if err != nil {
			return nil, err
		}
		if details != nil {
			return nil, g.deny(e.Conflict(DenyStationBusy,
				fmt.Sprintf("station %s is already handling an active incident", station.Name),
				StationBusyDetails{ActiveIncidentDetails: *details}))
		}
	}

	if station.HasActiveAlert {
		open, err := g.alerts.CountByStation(ctx, station.ID, domain.OpenAlertStatuses)
		if err != nil {
			return nil, err
		}
		if open > 0 {
			return nil, g.deny(e.Conflict(DenyDuplicateActiveAlert,
				fmt.Sprintf("station %s already has an active alert awaiting triage", station.Name), nil))
		}
	}

	return station, nil
}

// ActiveIncident queries live incidents of the station and returns the
// details of the latest one, or nil when the station is free.
func (g *StationGuard) ActiveIncident(ctx context.Context, stationID uuid.UUID) (*domain.ActiveIncidentDetails, error) {
	inc, err := g.incidents.LatestByStation(ctx, stationID, domain.LiveIncidentStatuses)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	details := &domain.ActiveIncidentDetails{
		IncidentID: inc.ID,
		AlertID:    inc.AlertID,
		Status:     inc.Status,
		CreatedAt:  inc.CreatedAt,
	}

	alert, err := g.alerts.Get(ctx, inc.AlertID)
	if err != nil {
		g.logger.Warn("active incident alert lookup failed",
			slog.String("incident_id", inc.ID.String()),
			slog.Any("error", err),
		)
		return details, nil
	}
	details.IncidentType = alert.IncidentType
	details.IncidentName = alert.IncidentName
	details.LocationName = alert.Location.Name

	return details, nil
}

func (g *StationGuard) deny(err *e.Error) error {
	metrics.GuardDenials.WithLabelValues(err.Code).Inc()
	return err
}
