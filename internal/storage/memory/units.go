package memory

import (
	"context"
	"fmt"
	"sort"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

type DepartmentRepo struct{ s *Store }

func (r *DepartmentRepo) Create(_ context.Context, d *domain.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = r.s.now()
	}
	r.s.departments[d.ID] = *d
	return nil
}

func (r *DepartmentRepo) Get(_ context.Context, id uuid.UUID) (*domain.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.departments[id]
	if !ok {
		return nil, fmt.Errorf("memory.Department.Get: %w", e.ErrNotFound)
	}
	return &d, nil
}

func (r *DepartmentRepo) ListByStation(_ context.Context, stationID uuid.UUID) ([]*domain.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Department
	for _, d := range r.s.departments {
		if d.StationID == stationID {
			d := d
			out = append(out, &d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type UnitRepo struct{ s *Store }

func (r *UnitRepo) Create(_ context.Context, u *domain.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.s.now()
	}
	u.UpdatedAt = u.CreatedAt
	r.s.units[u.ID] = *u
	return nil
}

func (r *UnitRepo) Get(_ context.Context, id uuid.UUID) (*domain.Unit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.units[id]
	if !ok {
		return nil, fmt.Errorf("memory.Unit.Get: %w", e.ErrNotFound)
	}
	return &u, nil
}

func (r *UnitRepo) Update(_ context.Context, u *domain.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.units[u.ID]; !ok {
		return fmt.Errorf("memory.Unit.Update: %w", e.ErrNotFound)
	}
	r.s.units[u.ID] = *u
	return nil
}

func (r *UnitRepo) ActiveByDepartment(_ context.Context, departmentID uuid.UUID) (*domain.Unit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.units {
		if u.DepartmentID == departmentID && u.IsActive {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("memory.Unit.ActiveByDepartment: %w", e.ErrNotFound)
}

func (r *UnitRepo) ListActive(_ context.Context) ([]*domain.Unit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Unit
	for _, u := range r.s.units {
		if u.IsActive {
			u := u
			out = append(out, &u)
		}
	}
	return out, nil
}

type ReporterRepo struct{ s *Store }

func (r *ReporterRepo) GetUser(_ context.Context, id uuid.UUID) (*domain.Reporter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rep, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("memory.Reporter.GetUser: %w", e.ErrNotFound)
	}
	return &rep, nil
}

func (r *ReporterRepo) GetFirePersonnel(_ context.Context, id uuid.UUID) (*domain.Reporter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rep, ok := r.s.personnel[id]
	if !ok {
		return nil, fmt.Errorf("memory.Reporter.GetFirePersonnel: %w", e.ErrNotFound)
	}
	return &rep, nil
}
