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

const (
	manualOffDutyHour = 7
	autoOffDutyHour   = 8
)

type ActiveUnitDetails struct {
	UnitID      uuid.UUID  `json:"unitId"`
	UnitName    string     `json:"unitName"`
	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
}

type DeactivationDetails struct {
	NextAllowedAt time.Time `json:"nextAllowedDeactivationTime"`
}

// UnitService puts units on and off duty. Only one unit per operations
// department may be on duty; the check is read-then-write against the store.
type UnitService struct {
	units       UnitRepository
	departments DepartmentRepository
	logger      *slog.Logger
	clock       Clock
	loc         *time.Location
}

func NewUnitService(units UnitRepository, departments DepartmentRepository, logger *slog.Logger, clock Clock, loc *time.Location) *UnitService {
	if loc == nil {
		loc = time.UTC
	}
	return &UnitService{
		units:       units,
		departments: departments,
		logger:      logger,
		clock:       clock,
		loc:         loc,
	}
}

func (s *UnitService) Get(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	return s.units.Get(ctx, id)
}

func (s *UnitService) Activate(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	unit, err := s.units.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dept, err := s.departments.Get(ctx, unit.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(dept.Name), "operations") {
		return nil, e.New(e.ErrInvalidInput, "not_operations_department",
			"only units of the Operations department can go on duty", nil)
	}

	if unit.IsActive {
		return unit, nil
	}

	current, err := s.units.ActiveByDepartment(ctx, unit.DepartmentID)
	switch {
	case err == nil && current.ID != unit.ID:
		return nil, e.Conflict("unit_already_active",
			fmt.Sprintf("unit %s is already on duty in this department", current.Name),
			ActiveUnitDetails{UnitID: current.ID, UnitName: current.Name, ActivatedAt: current.ActivatedAt})
	case err != nil && !errors.Is(err, e.ErrNotFound):
		return nil, err
	}

	now := s.clock.now()
	unit.IsActive = true
	unit.ActivatedAt = &now
	unit.UpdatedAt = now
	if err := s.units.Update(ctx, unit); err != nil {
		return nil, err
	}

	s.logger.Info("unit on duty",
		slog.String("unit_id", unit.ID.String()),
		slog.String("department_id", unit.DepartmentID.String()),
	)
	return unit, nil
}

// Deactivate takes a unit off duty, but not before 07:00 on the day after
// it was activated.
func (s *UnitService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Unit, error) {
	unit, err := s.units.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	if unit.ActivatedAt == nil {
		if unit.IsActive {
			unit.IsActive = false
			unit.UpdatedAt = now
			if err := s.units.Update(ctx, unit); err != nil {
				return nil, err
			}
		}
		return unit, nil
	}

	allowed := NextDeactivationAllowed(*unit.ActivatedAt, s.loc)
	if now.Before(allowed) {
		return nil, e.Conflict("deactivation_too_early",
			fmt.Sprintf("unit %s cannot go off duty before %s", unit.Name, allowed.Format(time.RFC3339)),
			DeactivationDetails{NextAllowedAt: allowed})
	}

	unit.IsActive = false
	unit.ActivatedAt = nil
	unit.UpdatedAt = now
	if err := s.units.Update(ctx, unit); err != nil {
		return nil, err
	}

	s.logger.Info("unit off duty", slog.String("unit_id", unit.ID.String()))
	return unit, nil
}

// AutoDeactivateSweep clears every on-duty unit past 08:00 of the day after
// activation. Per-unit failures are logged and skipped.
func (s *UnitService) AutoDeactivateSweep(ctx context.Context) (*domain.SweepResult, error) {
	start := time.Now()
	defer func() { metrics.SweepDuration.Observe(time.Since(start).Seconds()) }()

	active, err := s.units.ListActive(ctx)
	if err != nil {
		s.logger.Error("unit sweep: list active units failed", slog.Any("error", err))
		return nil, err
	}

	now := s.clock.now()
	res := &domain.SweepResult{Units: make([]domain.SweptUnit, 0)}
	for _, u := range active {
		if u.ActivatedAt == nil {
			continue
		}
		activatedAt := *u.ActivatedAt
		if now.Before(AutoDeactivationAt(activatedAt, s.loc)) {
			continue
		}

		u.IsActive = false
		u.ActivatedAt = nil
		u.UpdatedAt = now
		if err := s.units.Update(ctx, u); err != nil {
			s.logger.Error("unit sweep: deactivate failed",
				slog.String("unit_id", u.ID.String()),
				slog.Any("error", err),
			)
			continue
		}

		res.Units = append(res.Units, domain.SweptUnit{
			ID:           u.ID,
			Name:         u.Name,
			DepartmentID: u.DepartmentID,
			ActivatedAt:  activatedAt,
		})
	}
	res.Count = len(res.Units)
	metrics.UnitsAutoDeactivated.Add(float64(res.Count))

	s.logger.Info("unit sweep finished",
		slog.Int("scanned", len(active)),
		slog.Int("deactivated", res.Count),
	)
	return res, nil
}

// NextDeactivationAllowed is 07:00 on the calendar day after activatedAt.
func NextDeactivationAllowed(activatedAt time.Time, loc *time.Location) time.Time {
	return nextDayAt(activatedAt, manualOffDutyHour, loc)
}

// AutoDeactivationAt is 08:00 on the calendar day after activatedAt.
func AutoDeactivationAt(activatedAt time.Time, loc *time.Location) time.Time {
	return nextDayAt(activatedAt, autoOffDutyHour, loc)
}

func nextDayAt(t time.Time, hour int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
}
