package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/internal/metrics"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

// IncidentService drives incidents through
// pending -> active -> dispatched -> on_scene -> resolved -> closed,
// with referred as an alternate terminal from any live status. Timestamps
// are first-write-wins and the turnout slip is generated once.
type IncidentService struct {
	incidents   IncidentRepository
	alerts      AlertRepository
	stations    StationRepository
	departments DepartmentRepository
	units       UnitRepository
	reporters   ReporterRepository
	slips       TurnoutSlipGenerator
	flags       *StationFlags
	notifier    Notifier
	logger      *slog.Logger
	clock       Clock
}

func NewIncidentService(
	incidents IncidentRepository,
	alerts AlertRepository,
	stations StationRepository,
	departments DepartmentRepository,
	units UnitRepository,
	reporters ReporterRepository,
	slips TurnoutSlipGenerator,
	flags *StationFlags,
	notifier Notifier,
	logger *slog.Logger,
	clock Clock,
) *IncidentService {
	return &IncidentService{
		incidents:   incidents,
		alerts:      alerts,
		stations:    stations,
		departments: departments,
		units:       units,
		reporters:   reporters,
		slips:       slips,
		flags:       flags,
		notifier:    notifier,
		logger:      logger,
		clock:       clock,
	}
}

// Materialize creates a pending incident bound to the station's operations
// department and its on-duty unit. Several incidents may exist for one alert.
func (s *IncidentService) Materialize(ctx context.Context, alertID, stationID uuid.UUID) (*domain.Incident, error) {
	depts, err := s.departments.ListByStation(ctx, stationID)
	if err != nil {
		return nil, err
	}

	var ops *domain.Department
	for _, d := range depts {
		if strings.Contains(strings.ToLower(d.Name), "operations") {
			ops = d
			break
		}
	}
	if ops == nil {
		return nil, e.NotFound("station has no operations department")
	}

	unit, err := s.units.ActiveByDepartment(ctx, ops.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound("operations department has no unit on duty")
		}
		return nil, err
	}

	now := s.clock.now()
	inc := &domain.Incident{
		ID:           uuid.New(),
		AlertID:      alertID,
		StationID:    stationID,
		DepartmentID: ops.ID,
		UnitID:       unit.ID,
		Status:       domain.IncidentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.incidents.Create(ctx, inc); err != nil {
		return nil, err
	}
	metrics.IncidentTransitions.WithLabelValues(string(domain.IncidentPending)).Inc()

	s.flags.RecomputeActiveIncident(ctx, stationID)
	s.emit(ctx, domain.Event{Name: domain.EventIncidentCreated, Incident: inc, Department: ops, Unit: unit})

	return inc, nil
}

// SetStatus moves the incident to status. at overrides the timestamp
// recorded for the transition.
func (s *IncidentService) SetStatus(ctx context.Context, id uuid.UUID, status string, at *time.Time) (*domain.Incident, error) {
	next, ok := domain.ParseIncidentStatus(status)
	if !ok {
		return nil, e.Invalid(fmt.Sprintf("unknown incident status %q", status))
	}

	inc, err := s.incidents.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	prev := inc.Status
	if !prev.CanTransition(next) {
		return nil, e.Conflict("invalid_incident_transition",
			fmt.Sprintf("incident cannot move from %s to %s", prev, next),
			map[string]string{"from": string(prev), "to": string(next)})
	}

	now := s.clock.now()
	ts := now
	if at != nil && !at.IsZero() {
		ts = at.UTC()
	}

	inc.Status = next
	switch next {
	case domain.IncidentDispatched:
		setOnce(&inc.DispatchedAt, ts)
		if inc.TurnoutSlip == nil {
			s.attachTurnoutSlip(ctx, inc)
		}
	case domain.IncidentOnScene:
		setOnce(&inc.ArrivedAt, ts)
	case domain.IncidentResolved:
		setOnce(&inc.ResolvedAt, ts)
	case domain.IncidentClosed:
		setOnce(&inc.ClosedAt, ts)
	case domain.IncidentReferred:
		setOnce(&inc.ReferredAt, ts)
	}
	inc.UpdatedAt = now

	if err := s.incidents.Update(ctx, inc); err != nil {
		return nil, err
	}
	if prev != next {
		metrics.IncidentTransitions.WithLabelValues(string(next)).Inc()
	}

	s.flags.RecomputeActiveIncident(ctx, inc.StationID)

	s.emit(ctx, domain.Event{Name: domain.EventIncidentUpdated, Incident: inc})
	if next == domain.IncidentReferred {
		s.emit(ctx, domain.Event{Name: domain.EventReferralUpdated, Incident: inc, ReferredTo: s.referralStation(ctx, inc)})
	}
	if next == domain.IncidentDispatched && prev != domain.IncidentDispatched && inc.TurnoutSlip != nil {
		s.emit(ctx, domain.Event{Name: domain.EventTurnoutSlipDispatched, Incident: inc})
	}
	return inc, nil
}

// Refer hands a live incident to another station.
func (s *IncidentService) Refer(ctx context.Context, id, targetStationID uuid.UUID, reason string) (*domain.Incident, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, e.Invalid("referral reason is required")
	}

	inc, err := s.incidents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inc.Status.IsLive() {
		return nil, e.Conflict("incident_not_open",
			fmt.Sprintf("incident is already %s", inc.Status),
			map[string]string{"status": string(inc.Status)})
	}
	if targetStationID == inc.StationID {
		return nil, e.Invalid("incident cannot be referred to the station it belongs to")
	}

	target, err := s.stations.Get(ctx, targetStationID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound("target station not found")
		}
		return nil, err
	}

	now := s.clock.now()
	inc.Status = domain.IncidentReferred
	inc.ReferredAt = &now
	inc.ReferredToStation = &target.ID
	inc.ReferReason = reason
	inc.UpdatedAt = now

	if err := s.incidents.Update(ctx, inc); err != nil {
		return nil, err
	}
	metrics.IncidentTransitions.WithLabelValues(string(domain.IncidentReferred)).Inc()

	s.flags.RecomputeActiveIncident(ctx, inc.StationID)
	s.emit(ctx, domain.Event{Name: domain.EventReferralCreated, Incident: inc, ReferredTo: target})
	s.emit(ctx, domain.Event{Name: domain.EventIncidentUpdated, Incident: inc, ReferredTo: target})
	return inc, nil
}

func (s *IncidentService) Delete(ctx context.Context, id uuid.UUID) error {
	inc, err := s.incidents.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.incidents.Delete(ctx, id); err != nil {
		return err
	}

	s.flags.RecomputeActiveIncident(ctx, inc.StationID)
	s.emit(ctx, domain.Event{Name: domain.EventIncidentDeleted, Incident: inc})
	return nil
}

func (s *IncidentService) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	return s.incidents.Get(ctx, id)
}

func (s *IncidentService) List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, int64, error) {
	return s.incidents.List(ctx, filter)
}

func (s *IncidentService) TurnoutSlip(ctx context.Context, id uuid.UUID) (*domain.TurnoutSlip, error) {
	inc, err := s.incidents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if inc.TurnoutSlip == nil {
		return nil, e.NotFound("incident has no turnout slip yet")
	}
	return inc.TurnoutSlip, nil
}

// attachTurnoutSlip never fails the status change; a missing context or a
// generator error only leaves the slip empty for a later dispatch.
func (s *IncidentService) attachTurnoutSlip(ctx context.Context, inc *domain.Incident) {
	if s.slips == nil {
		return
	}
	l := s.logger.With(slog.String("incident_id", inc.ID.String()))

	alert, err := s.alerts.Get(ctx, inc.AlertID)
	if err != nil {
		l.Error("turnout slip: alert lookup failed", slog.Any("error", err))
		return
	}

	tc := domain.TurnoutContext{Incident: inc, Alert: alert}
	if tc.Reporter, err = s.reporter(ctx, alert); err != nil {
		l.Warn("turnout slip: reporter lookup failed", slog.Any("error", err))
	}
	if tc.Station, err = s.stations.Get(ctx, inc.StationID); err != nil {
		l.Warn("turnout slip: station lookup failed", slog.Any("error", err))
	}
	if tc.Department, err = s.departments.Get(ctx, inc.DepartmentID); err != nil {
		l.Warn("turnout slip: department lookup failed", slog.Any("error", err))
	}
	if tc.Unit, err = s.units.Get(ctx, inc.UnitID); err != nil {
		l.Warn("turnout slip: unit lookup failed", slog.Any("error", err))
	}

	slip, err := s.slips.Generate(ctx, tc)
	if err != nil {
		l.Error("turnout slip generation failed", slog.Any("error", err))
		return
	}
	inc.TurnoutSlip = slip
}

func (s *IncidentService) reporter(ctx context.Context, alert *domain.Alert) (*domain.Reporter, error) {
	if alert.ReporterType == domain.ReporterFirePersonnel {
		return s.reporters.GetFirePersonnel(ctx, alert.ReporterID)
	}
	return s.reporters.GetUser(ctx, alert.ReporterID)
}

func (s *IncidentService) referralStation(ctx context.Context, inc *domain.Incident) *domain.Station {
	if inc.ReferredToStation == nil {
		return nil
	}
	st, err := s.stations.Get(ctx, *inc.ReferredToStation)
	if err != nil {
		s.logger.Warn("referral target lookup failed",
			slog.String("incident_id", inc.ID.String()),
			slog.Any("error", err),
		)
		return nil
	}
	return st
}

func (s *IncidentService) emit(ctx context.Context, ev domain.Event) {
	if s.notifier == nil {
		return
	}
	if ev.Incident != nil && ev.Alert == nil {
		if a, err := s.alerts.Get(ctx, ev.Incident.AlertID); err == nil {
			ev.Alert = a
		}
	}
	if ev.Incident != nil && ev.Station == nil {
		if st, err := s.stations.Get(ctx, ev.Incident.StationID); err == nil {
			ev.Station = st
		}
	}
	s.notifier.Notify(ctx, ev)
}

func setOnce(field **time.Time, ts time.Time) {
	if *field == nil {
		t := ts
		*field = &t
	}
}
