// Package memory is a mutex-guarded in-process store implementing the
// service repositories. Every record is copied on the way in and out, so
// each call behaves like an atomic per-document read or write.
package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"fireDispatch/internal/domain"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	stations    map[uuid.UUID]domain.Station
	departments map[uuid.UUID]domain.Department
	units       map[uuid.UUID]domain.Unit
	users       map[uuid.UUID]domain.Reporter
	personnel   map[uuid.UUID]domain.Reporter
	alerts      map[uuid.UUID]domain.Alert
	incidents   map[uuid.UUID]domain.Incident

	now func() time.Time
}

func New() *Store {
	return &Store{
		stations:    make(map[uuid.UUID]domain.Station),
		departments: make(map[uuid.UUID]domain.Department),
		units:       make(map[uuid.UUID]domain.Unit),
		users:       make(map[uuid.UUID]domain.Reporter),
		personnel:   make(map[uuid.UUID]domain.Reporter),
		alerts:      make(map[uuid.UUID]domain.Alert),
		incidents:   make(map[uuid.UUID]domain.Incident),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Stations() *StationRepo       { return &StationRepo{s: s} }
func (s *Store) Alerts() *AlertRepo           { return &AlertRepo{s: s} }
func (s *Store) Incidents() *IncidentRepo     { return &IncidentRepo{s: s} }
func (s *Store) Departments() *DepartmentRepo { return &DepartmentRepo{s: s} }
func (s *Store) Units() *UnitRepo             { return &UnitRepo{s: s} }
func (s *Store) Reporters() *ReporterRepo     { return &ReporterRepo{s: s} }

// Seed is the reference data a memory store can be started with.
type Seed struct {
	Stations      []domain.Station    `json:"stations"`
	Departments   []domain.Department `json:"departments"`
	Units         []domain.Unit       `json:"units"`
	Users         []domain.Reporter   `json:"users"`
	FirePersonnel []domain.Reporter   `json:"fire_personnel"`
}

// LoadSeed decodes a JSON Seed from r and inserts it.
func (s *Store) LoadSeed(r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("memory seed: %w", err)
	}
	s.Apply(seed)
	return nil
}

func (s *Store) Apply(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range seed.Stations {
		if st.CommissionStatus == "" {
			st.CommissionStatus = domain.InCommission
		}
		s.stations[st.ID] = st
	}
	for _, d := range seed.Departments {
		s.departments[d.ID] = d
	}
	for _, u := range seed.Units {
		s.units[u.ID] = u
	}
	for _, r := range seed.Users {
		r.Type = domain.ReporterUser
		s.users[r.ID] = r
	}
	for _, r := range seed.FirePersonnel {
		r.Type = domain.ReporterFirePersonnel
		s.personnel[r.ID] = r
	}
}

func pageWindow(n, page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	start := (page - 1) * limit
	if start > n {
		start = n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}

func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
