package service

import (
	"context"

	"fireDispatch/internal/domain"

	"github.com/google/uuid"
)

type StatsService struct {
	stations  StationRepository
	alerts    AlertRepository
	incidents IncidentRepository
}

func NewStatsService(stations StationRepository, alerts AlertRepository, incidents IncidentRepository) *StatsService {
	return &StatsService{stations: stations, alerts: alerts, incidents: incidents}
}

// StationStats reports live counts next to the cached station flags so
// drift between the two is visible.
func (s *StatsService) StationStats(ctx context.Context, stationID uuid.UUID) (*domain.StationStats, error) {
	station, err := s.stations.Get(ctx, stationID)
	if err != nil {
		return nil, err
	}

	open, err := s.alerts.CountByStation(ctx, stationID, domain.OpenAlertStatuses)
	if err != nil {
		return nil, err
	}

	live, err := s.incidents.CountByStation(ctx, stationID, domain.LiveIncidentStatuses)
	if err != nil {
		return nil, err
	}

	return &domain.StationStats{
		StationID:         stationID,
		OpenAlerts:        open,
		LiveIncidents:     live,
		HasActiveAlert:    station.HasActiveAlert,
		HasActiveIncident: station.HasActiveIncident,
		FlagsConsistent:   station.HasActiveAlert == (open > 0) && station.HasActiveIncident == (live > 0),
	}, nil
}
