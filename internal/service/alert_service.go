package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fireDispatch/internal/domain"
	"fireDispatch/internal/metrics"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

// AlertService owns the alert state machine: an open alert (active or
// pending) reaches exactly one terminal outcome, accepted, rejected or
// referred, and never leaves it.
type AlertService struct {
	alerts    AlertRepository
	stations  StationRepository
	reporters ReporterRepository
	units     UnitRepository
	guard     *StationGuard
	resolver  *StationResolver
	incidents IncidentMaterializer
	flags     *StationFlags
	notifier  Notifier
	logger    *slog.Logger
	clock     Clock
}

func NewAlertService(
	alerts AlertRepository,
	stations StationRepository,
	reporters ReporterRepository,
	units UnitRepository,
	guard *StationGuard,
	resolver *StationResolver,
	incidents IncidentMaterializer,
	flags *StationFlags,
	notifier Notifier,
	logger *slog.Logger,
	clock Clock,
) *AlertService {
	return &AlertService{
		alerts:    alerts,
		stations:  stations,
		reporters: reporters,
		units:     units,
		guard:     guard,
		resolver:  resolver,
		incidents: incidents,
		flags:     flags,
		notifier:  notifier,
		logger:    logger,
		clock:     clock,
	}
}

func (s *AlertService) Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.Alert, error) {
	if req.ReporterID == uuid.Nil {
		return nil, e.Invalid("reporter_id is required")
	}

	reporter, err := s.resolveReporter(ctx, req.ReporterID)
	if err != nil {
		return nil, err
	}

	stationID, err := s.resolver.Resolve(ctx, req.Station)
	if err != nil {
		return nil, err
	}

	// Guard denials go back to the caller untouched.
	station, err := s.guard.CanAcceptAlert(ctx, stationID)
	if err != nil {
		s.logger.Info("alert refused by station guard",
			slog.String("station_id", stationID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	now := s.clock.now()
	alert := &domain.Alert{
		ID:           uuid.New(),
		ReporterID:   reporter.ID,
		ReporterType: reporter.Type,
		StationID:    station.ID,
		IncidentType: strings.TrimSpace(req.IncidentType),
		IncidentName: strings.TrimSpace(req.IncidentName),
		Priority:     req.Priority,
		Description:  strings.TrimSpace(req.Description),
		Location:     req.Location,
		Status:       domain.AlertActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	metrics.AlertTransitions.WithLabelValues(string(domain.AlertActive)).Inc()

	s.flags.RecomputeActiveAlert(ctx, station.ID)

	// The guard may have raced with a concurrent incident creation, so look
	// again before choosing which notification to send.
	ev := domain.Event{
		Name:     domain.EventAlertCreated,
		Alert:    alert,
		Station:  station,
		Reporter: reporter,
	}
	active, err := s.guard.ActiveIncident(ctx, station.ID)
	if err != nil {
		s.logger.Warn("active incident re-check failed", slog.Any("error", err))
	}
	if active != nil {
		ev.Name = domain.EventActiveIncidentExists
		ev.ActiveIncident = active
	}
	s.emit(ctx, ev)

	s.logger.Info("alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.String("station_id", station.ID.String()),
		slog.String("reporter_type", string(reporter.Type)),
	)
	return alert, nil
}

// Accept dispatches the alert and materializes an incident for the
// station's on-duty operations unit. Materialization failures are logged
// and never undo the acceptance.
func (s *AlertService) Accept(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(alert); err != nil {
		return nil, err
	}
	if err := s.ensureUnitOnDuty(ctx, alert.UnitID); err != nil {
		return nil, err
	}

	wasAccepted := alert.Status == domain.AlertAccepted
	s.markAccepted(alert)

	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, err
	}
	metrics.AlertTransitions.WithLabelValues(string(domain.AlertAccepted)).Inc()

	s.flags.RecomputeActiveAlert(ctx, alert.StationID)
	s.emit(ctx, domain.Event{Name: domain.EventAlertUpdated, Alert: alert})

	if !wasAccepted {
		s.materialize(ctx, alert)
	}
	return alert, nil
}

func (s *AlertService) Decline(ctx context.Context, id uuid.UUID, reason string) (*domain.Alert, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, e.Invalid("decline reason is required")
	}

	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(alert); err != nil {
		return nil, err
	}

	s.markDeclined(alert, reason)
	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, err
	}
	metrics.AlertTransitions.WithLabelValues(string(domain.AlertRejected)).Inc()

	s.flags.RecomputeActiveAlert(ctx, alert.StationID)
	s.emit(ctx, domain.Event{Name: domain.EventAlertUpdated, Alert: alert})
	return alert, nil
}

// Refer hands the alert to another station; the target has to re-route it,
// so department and unit assignments are cleared.
func (s *AlertService) Refer(ctx context.Context, id, targetStationID uuid.UUID, reason string) (*domain.Alert, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, e.Invalid("referral reason is required")
	}
	if targetStationID == uuid.Nil {
		return nil, e.Invalid("target station is required")
	}

	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(alert); err != nil {
		return nil, err
	}

	target, err := s.referralTarget(ctx, alert.StationID, targetStationID)
	if err != nil {
		return nil, err
	}

	previous := alert.StationID
	s.markReferred(alert, target.ID, reason)
	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, err
	}
	metrics.AlertTransitions.WithLabelValues(string(domain.AlertReferred)).Inc()

	s.flags.RecomputeActiveAlert(ctx, previous)
	s.flags.RecomputeActiveAlert(ctx, target.ID)

	s.emit(ctx, domain.Event{Name: domain.EventReferralCreated, Alert: alert, Station: target, ReferredTo: target})
	s.emit(ctx, domain.Event{Name: domain.EventAlertUpdated, Alert: alert, Station: target})
	return alert, nil
}

// Update merges a patch. A status moving into accepted, rejected or
// referred gets the same side effects as the dedicated operations.
func (s *AlertService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateAlertRequest) (*domain.Alert, error) {
	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOpen(alert); err != nil {
		return nil, err
	}

	previousStation := alert.StationID
	previousStatus := alert.Status

	if req.IncidentType != nil {
		alert.IncidentType = strings.TrimSpace(*req.IncidentType)
	}
	if req.IncidentName != nil {
		alert.IncidentName = strings.TrimSpace(*req.IncidentName)
	}
	if req.Priority != nil {
		alert.Priority = *req.Priority
	}
	if req.Description != nil {
		alert.Description = strings.TrimSpace(*req.Description)
	}
	if req.Location != nil {
		alert.Location = *req.Location
	}
	if req.DepartmentID != nil {
		alert.DepartmentID = req.DepartmentID
	}
	if req.UnitID != nil {
		alert.UnitID = req.UnitID
	}

	var (
		materialize bool
		referredTo  *domain.Station
	)
	if req.Status != nil {
		next, ok := domain.ParseAlertStatus(*req.Status)
		if !ok {
			return nil, e.Invalid(fmt.Sprintf("unknown alert status %q", *req.Status))
		}

		switch next {
		case domain.AlertAccepted:
			if previousStatus != domain.AlertAccepted {
				if err := s.ensureUnitOnDuty(ctx, alert.UnitID); err != nil {
					return nil, err
				}
				s.markAccepted(alert)
				materialize = true
			}
		case domain.AlertRejected:
			reason := trimmed(req.DeclineReason)
			if reason == "" {
				return nil, e.Invalid("decline reason is required")
			}
			s.markDeclined(alert, reason)
		case domain.AlertReferred:
			if req.ReferredToStation == nil {
				return nil, e.Invalid("referred_to_station is required to refer an alert")
			}
			reason := trimmed(req.ReferReason)
			if reason == "" {
				return nil, e.Invalid("referral reason is required")
			}
			target, err := s.referralTarget(ctx, previousStation, *req.ReferredToStation)
			if err != nil {
				return nil, err
			}
			s.markReferred(alert, target.ID, reason)
			referredTo = target
		default:
			alert.Status = next
		}
	}
	alert.UpdatedAt = s.clock.now()

	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, err
	}
	if alert.Status != previousStatus {
		metrics.AlertTransitions.WithLabelValues(string(alert.Status)).Inc()
	}

	s.flags.RecomputeActiveAlert(ctx, alert.StationID)
	if previousStation != alert.StationID {
		s.flags.RecomputeActiveAlert(ctx, previousStation)
	}

	if referredTo != nil {
		s.emit(ctx, domain.Event{Name: domain.EventReferralCreated, Alert: alert, Station: referredTo, ReferredTo: referredTo})
	}
	s.emit(ctx, domain.Event{Name: domain.EventAlertUpdated, Alert: alert, ReferredTo: referredTo})

	if materialize {
		s.materialize(ctx, alert)
	}
	return alert, nil
}

func (s *AlertService) Delete(ctx context.Context, id uuid.UUID) error {
	alert, err := s.alerts.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.alerts.Delete(ctx, id); err != nil {
		return err
	}

	// Deleting an alert cascades to its incidents, which are always
	// materialized at the alert's station.
	s.flags.RecomputeActiveAlert(ctx, alert.StationID)
	s.flags.RecomputeActiveIncident(ctx, alert.StationID)
	s.emit(ctx, domain.Event{Name: domain.EventAlertDeleted, Alert: alert})
	return nil
}

func (s *AlertService) Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	return s.alerts.Get(ctx, id)
}

func (s *AlertService) List(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, int64, error) {
	return s.alerts.List(ctx, filter)
}

// resolveReporter probes users first, then fire personnel.
func (s *AlertService) resolveReporter(ctx context.Context, id uuid.UUID) (*domain.Reporter, error) {
	r, err := s.reporters.GetUser(ctx, id)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		return nil, err
	}

	r, err = s.reporters.GetFirePersonnel(ctx, id)
	if err == nil {
		return r, nil
	}
	if errors.Is(err, e.ErrNotFound) {
		return nil, e.NotFound("reporter not found")
	}
	return nil, err
}

func (s *AlertService) ensureUnitOnDuty(ctx context.Context, unitID *uuid.UUID) error {
	if unitID == nil {
		return nil
	}
	unit, err := s.units.Get(ctx, *unitID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return e.NotFound("assigned unit not found")
		}
		return err
	}
	if !unit.IsActive {
		return e.Conflict("unit_not_on_duty",
			fmt.Sprintf("assigned unit %s is not on duty", unit.Name),
			map[string]string{"unitId": unit.ID.String()})
	}
	return nil
}

func (s *AlertService) referralTarget(ctx context.Context, current, targetID uuid.UUID) (*domain.Station, error) {
	if targetID == current {
		return nil, e.Invalid("alert cannot be referred to the station it is already assigned to")
	}
	target, err := s.stations.Get(ctx, targetID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound("target station not found")
		}
		return nil, err
	}
	return target, nil
}

func (s *AlertService) markAccepted(alert *domain.Alert) {
	now := s.clock.now()
	alert.Dispatched = true
	alert.DispatchedAt = &now
	alert.Status = domain.AlertAccepted
	alert.UpdatedAt = now
}

func (s *AlertService) markDeclined(alert *domain.Alert, reason string) {
	now := s.clock.now()
	alert.Declined = true
	alert.DeclinedAt = &now
	alert.DeclineReason = reason
	alert.Status = domain.AlertRejected
	alert.UpdatedAt = now
}

func (s *AlertService) markReferred(alert *domain.Alert, target uuid.UUID, reason string) {
	now := s.clock.now()
	alert.Referred = true
	alert.ReferredAt = &now
	alert.ReferredToStation = &target
	alert.ReferReason = reason
	alert.StationID = target
	alert.DepartmentID = nil
	alert.UnitID = nil
	alert.Status = domain.AlertReferred
	alert.UpdatedAt = now
}

func (s *AlertService) materialize(ctx context.Context, alert *domain.Alert) {
	if s.incidents == nil {
		return
	}
	inc, err := s.incidents.Materialize(ctx, alert.ID, alert.StationID)
	if err != nil {
		metrics.MaterializeFailures.Inc()
		s.logger.Error("incident materialization after acceptance failed",
			slog.String("alert_id", alert.ID.String()),
			slog.String("station_id", alert.StationID.String()),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Info("incident materialized",
		slog.String("alert_id", alert.ID.String()),
		slog.String("incident_id", inc.ID.String()),
	)
}

func (s *AlertService) emit(ctx context.Context, ev domain.Event) {
	if s.notifier == nil {
		return
	}
	if ev.Station == nil && ev.Alert != nil {
		if st, err := s.stations.Get(ctx, ev.Alert.StationID); err == nil {
			ev.Station = st
		}
	}
	s.notifier.Notify(ctx, ev)
}

func ensureOpen(alert *domain.Alert) error {
	state := alert.TerminalState()
	if state == "" {
		return nil
	}
	return e.Conflict("alert_already_"+string(state),
		fmt.Sprintf("alert has already been %s", state),
		map[string]string{"status": string(state)})
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
