package service

import (
	"context"
	"time"

	"fireDispatch/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type StationRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Station, error)
	GetByPlaceID(ctx context.Context, placeID string) (*domain.Station, error)
	FindNearest(ctx context.Context, lat, lng, radiusKm float64) (*domain.Station, error)
	ListRefs(ctx context.Context) ([]domain.StationRef, error)
	SetActiveAlert(ctx context.Context, id uuid.UUID, active bool) error
	SetActiveIncident(ctx context.Context, id uuid.UUID, active bool) error
}

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	Update(ctx context.Context, alert *domain.Alert) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, int64, error)
	CountByStation(ctx context.Context, stationID uuid.UUID, statuses []domain.AlertStatus) (int64, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	Update(ctx context.Context, incident *domain.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, int64, error)
	CountByStation(ctx context.Context, stationID uuid.UUID, statuses []domain.IncidentStatus) (int64, error)
	// LatestByStation returns the most recently created incident of the
	// station in one of statuses, or e.ErrNotFound.
	LatestByStation(ctx context.Context, stationID uuid.UUID, statuses []domain.IncidentStatus) (*domain.Incident, error)
}

type DepartmentRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	ListByStation(ctx context.Context, stationID uuid.UUID) ([]*domain.Department, error)
}

type UnitRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	Update(ctx context.Context, unit *domain.Unit) error
	// ActiveByDepartment returns the on-duty unit of the department, or e.ErrNotFound.
	ActiveByDepartment(ctx context.Context, departmentID uuid.UUID) (*domain.Unit, error)
	ListActive(ctx context.Context) ([]*domain.Unit, error)
}

type ReporterRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.Reporter, error)
	GetFirePersonnel(ctx context.Context, id uuid.UUID) (*domain.Reporter, error)
}

type StationDirectoryCache interface {
	GetRefs(ctx context.Context) ([]domain.StationRef, error)
	SetRefs(ctx context.Context, refs []domain.StationRef, ttl time.Duration) error
}

type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}

type TurnoutSlipGenerator interface {
	Generate(ctx context.Context, tc domain.TurnoutContext) (*domain.TurnoutSlip, error)
}

type IncidentMaterializer interface {
	Materialize(ctx context.Context, alertID, stationID uuid.UUID) (*domain.Incident, error)
}

type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}

type Service struct {
	Guard     *StationGuard
	Alerts    *AlertService
	Incidents *IncidentService
	Units     *UnitService
	Stats     *StatsService
}

func NewService(
	guard *StationGuard,
	alerts *AlertService,
	incidents *IncidentService,
	units *UnitService,
	stats *StatsService,
) *Service {
	return &Service{
		Guard:     guard,
		Alerts:    alerts,
		Incidents: incidents,
		Units:     units,
		Stats:     stats,
	}
}
