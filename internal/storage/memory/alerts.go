package memory

import (
	"context"
	"fmt"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

type AlertRepo struct{ s *Store }

func cloneAlert(a domain.Alert) *domain.Alert {
	if a.Location.Coordinates != nil {
		c := *a.Location.Coordinates
		a.Location.Coordinates = &c
	}
	return &a
}

func (r *AlertRepo) Create(_ context.Context, a *domain.Alert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if _, exists := r.s.alerts[a.ID]; exists {
		return fmt.Errorf("memory.Alert.Create: %w", e.ErrUniqueViolation)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.s.now()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	if a.Status == "" {
		a.Status = domain.AlertActive
	}
	r.s.alerts[a.ID] = *cloneAlert(*a)
	return nil
}

func (r *AlertRepo) Get(_ context.Context, id uuid.UUID) (*domain.Alert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.alerts[id]
	if !ok {
		return nil, fmt.Errorf("memory.Alert.Get: %w", e.ErrNotFound)
	}
	return cloneAlert(a), nil
}

func (r *AlertRepo) Update(_ context.Context, a *domain.Alert) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.alerts[a.ID]; !ok {
		return fmt.Errorf("memory.Alert.Update: %w", e.ErrNotFound)
	}
	r.s.alerts[a.ID] = *cloneAlert(*a)
	return nil
}

// Delete removes the alert and its incidents, like the postgres foreign key.
func (r *AlertRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.alerts[id]; !ok {
		return fmt.Errorf("memory.Alert.Delete: %w", e.ErrNotFound)
	}
	delete(r.s.alerts, id)
	for incID, inc := range r.s.incidents {
		if inc.AlertID == id {
			delete(r.s.incidents, incID)
		}
	}
	return nil
}

func (r *AlertRepo) List(_ context.Context, f domain.AlertFilter) ([]*domain.Alert, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []*domain.Alert
	for _, a := range r.s.alerts {
		if f.StationID != nil && a.StationID != *f.StationID {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		matched = append(matched, cloneAlert(a))
	}
	sortNewestFirst(matched, func(a *domain.Alert) time.Time { return a.CreatedAt })

	start, end := pageWindow(len(matched), f.Page, f.Limit)
	return matched[start:end], int64(len(matched)), nil
}

func (r *AlertRepo) CountByStation(_ context.Context, stationID uuid.UUID, statuses []domain.AlertStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, a := range r.s.alerts {
		if a.StationID != stationID {
			continue
		}
		for _, st := range statuses {
			if a.Status == st {
				n++
				break
			}
		}
	}
	return n, nil
}
