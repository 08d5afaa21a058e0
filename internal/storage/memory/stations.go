package memory

import (
	"context"
	"fmt"
	"math"
	"sort"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

type StationRepo struct{ s *Store }

func (r *StationRepo) Create(_ context.Context, st *domain.Station) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	if st.CommissionStatus == "" {
		st.CommissionStatus = domain.InCommission
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = r.s.now()
	}
	st.UpdatedAt = st.CreatedAt
	r.s.stations[st.ID] = *st
	return nil
}

func (r *StationRepo) Get(_ context.Context, id uuid.UUID) (*domain.Station, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	st, ok := r.s.stations[id]
	if !ok {
		return nil, fmt.Errorf("memory.Station.Get: %w", e.ErrNotFound)
	}
	return &st, nil
}

func (r *StationRepo) GetByPlaceID(_ context.Context, placeID string) (*domain.Station, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, st := range r.s.stations {
		if placeID != "" && st.PlaceID == placeID {
			return &st, nil
		}
	}
	return nil, fmt.Errorf("memory.Station.GetByPlaceID: %w", e.ErrNotFound)
}

func (r *StationRepo) FindNearest(_ context.Context, lat, lng, radiusKm float64) (*domain.Station, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radiusKm <= 0 {
		return nil, fmt.Errorf("memory.Station.FindNearest: %w", e.ErrInvalidInput)
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var (
		best     *domain.Station
		bestDist = math.Inf(1)
	)
	for _, st := range r.s.stations {
		if st.Lat == 0 && st.Lng == 0 {
			continue
		}
		d := haversineKm(lat, lng, st.Lat, st.Lng)
		if d <= radiusKm && d < bestDist {
			st := st
			best, bestDist = &st, d
		}
	}
	if best == nil {
		return nil, fmt.Errorf("memory.Station.FindNearest: %w", e.ErrNotFound)
	}
	return best, nil
}

func (r *StationRepo) ListRefs(_ context.Context) ([]domain.StationRef, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	refs := make([]domain.StationRef, 0, len(r.s.stations))
	for _, st := range r.s.stations {
		refs = append(refs, domain.StationRef{ID: st.ID, Name: st.Name, PlaceID: st.PlaceID})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (r *StationRepo) SetActiveAlert(_ context.Context, id uuid.UUID, active bool) error {
	return r.mutate(id, func(st *domain.Station) { st.HasActiveAlert = active })
}

func (r *StationRepo) SetActiveIncident(_ context.Context, id uuid.UUID, active bool) error {
	return r.mutate(id, func(st *domain.Station) { st.HasActiveIncident = active })
}

func (r *StationRepo) mutate(id uuid.UUID, fn func(st *domain.Station)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st, ok := r.s.stations[id]
	if !ok {
		return fmt.Errorf("memory.Station.Update: %w", e.ErrNotFound)
	}
	fn(&st)
	st.UpdatedAt = r.s.now()
	r.s.stations[id] = st
	return nil
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
