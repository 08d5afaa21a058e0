package memory

import (
	"context"
	"fmt"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

type IncidentRepo struct{ s *Store }

func cloneIncident(inc domain.Incident) *domain.Incident {
	if inc.TurnoutSlip != nil {
		ts := *inc.TurnoutSlip
		ts.Document = append([]byte(nil), ts.Document...)
		inc.TurnoutSlip = &ts
	}
	return &inc
}

func (r *IncidentRepo) Create(_ context.Context, inc *domain.Incident) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if inc.ID == uuid.Nil {
		inc.ID = uuid.New()
	}
	if _, exists := r.s.incidents[inc.ID]; exists {
		return fmt.Errorf("memory.Incident.Create: %w", e.ErrUniqueViolation)
	}
	if inc.CreatedAt.IsZero() {
		inc.CreatedAt = r.s.now()
	}
	if inc.UpdatedAt.IsZero() {
		inc.UpdatedAt = inc.CreatedAt
	}
	if inc.Status == "" {
		inc.Status = domain.IncidentPending
	}
	r.s.incidents[inc.ID] = *cloneIncident(*inc)
	return nil
}

func (r *IncidentRepo) Get(_ context.Context, id uuid.UUID) (*domain.Incident, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inc, ok := r.s.incidents[id]
	if !ok {
		return nil, fmt.Errorf("memory.Incident.Get: %w", e.ErrNotFound)
	}
	return cloneIncident(inc), nil
}

func (r *IncidentRepo) Update(_ context.Context, inc *domain.Incident) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.incidents[inc.ID]; !ok {
		return fmt.Errorf("memory.Incident.Update: %w", e.ErrNotFound)
	}
	r.s.incidents[inc.ID] = *cloneIncident(*inc)
	return nil
}

func (r *IncidentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.incidents[id]; !ok {
		return fmt.Errorf("memory.Incident.Delete: %w", e.ErrNotFound)
	}
	delete(r.s.incidents, id)
	return nil
}

func (r *IncidentRepo) List(_ context.Context, f domain.IncidentFilter) ([]*domain.Incident, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*domain.Incident
	for _, inc := range r.s.incidents {
		if f.StationID != nil && inc.StationID != *f.StationID {
			continue
		}
		if f.AlertID != nil && inc.AlertID != *f.AlertID {
			continue
		}
		if f.Status != nil && inc.Status != *f.Status {
			continue
		}
		matched = append(matched, cloneIncident(inc))
	}
	sortNewestFirst(matched, func(i *domain.Incident) time.Time { return i.CreatedAt })

	start, end := pageWindow(len(matched), f.Page, f.Limit)
	return matched[start:end], int64(len(matched)), nil
}

func (r *IncidentRepo) CountByStation(_ context.Context, stationID uuid.UUID, statuses []domain.IncidentStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, inc := range r.s.incidents {
		if inc.StationID == stationID && hasIncidentStatus(statuses, inc.Status) {
			n++
		}
	}
	return n, nil
}

func (r *IncidentRepo) LatestByStation(_ context.Context, stationID uuid.UUID, statuses []domain.IncidentStatus) (*domain.Incident, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest *domain.Incident
	for _, inc := range r.s.incidents {
		if inc.StationID != stationID || !hasIncidentStatus(statuses, inc.Status) {
			continue
		}
		if latest == nil || inc.CreatedAt.After(latest.CreatedAt) {
			latest = cloneIncident(inc)
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("memory.Incident.LatestByStation: %w", e.ErrNotFound)
	}
	return latest, nil
}

func hasIncidentStatus(in []domain.IncidentStatus, s domain.IncidentStatus) bool {
	for _, v := range in {
		if v == s {
			return true
		}
	}
	return false
}
