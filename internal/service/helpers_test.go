package service_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"fireDispatch/internal/domain"
	"fireDispatch/internal/service"
	"fireDispatch/internal/storage/memory"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (n *recordingNotifier) Notify(_ context.Context, ev domain.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) names() []domain.EventName {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]domain.EventName, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Name)
	}
	return out
}

func (n *recordingNotifier) find(name domain.EventName) (domain.Event, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ev := range n.events {
		if ev.Name == name {
			return ev, true
		}
	}
	return domain.Event{}, false
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type stubSlips struct {
	calls int
	err   error
}

func (s *stubSlips) Generate(_ context.Context, tc domain.TurnoutContext) (*domain.TurnoutSlip, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.TurnoutSlip{
		ContentType: "text/plain",
		Document:    []byte("TURNOUT " + tc.Alert.IncidentName),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// world is a seeded in-memory dispatch setup: station S with an Operations
// department whose unit U is on duty, a second station T, one citizen and
// one fire-personnel reporter.
type world struct {
	store    *memory.Store
	clock    *testClock
	notifier *recordingNotifier
	slips    *stubSlips

	stationS, stationT uuid.UUID
	opsDept, adminDept uuid.UUID
	unitU, unitSpare   uuid.UUID
	citizen, firefight uuid.UUID

	guard     *service.StationGuard
	alerts    *service.AlertService
	incidents *service.IncidentService
	units     *service.UnitService
	stats     *service.StatsService
}

var worldStart = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func newWorld(t *testing.T) *world {
	t.Helper()

	w := &world{
		store:     memory.New(),
		clock:     &testClock{now: worldStart},
		notifier:  &recordingNotifier{},
		slips:     &stubSlips{},
		stationS:  uuid.New(),
		stationT:  uuid.New(),
		opsDept:   uuid.New(),
		adminDept: uuid.New(),
		unitU:     uuid.New(),
		unitSpare: uuid.New(),
		citizen:   uuid.New(),
		firefight: uuid.New(),
	}

	activated := worldStart.Add(-2 * time.Hour)
	w.store.Apply(memory.Seed{
		Stations: []domain.Station{
			{ID: w.stationS, Name: "Accra Central Fire Station", PlaceID: "place-s", Lat: 5.55, Lng: -0.2, CommissionStatus: domain.InCommission},
			{ID: w.stationT, Name: "Tema Fire Station", PlaceID: "place-t", Lat: 5.67, Lng: -0.01, CommissionStatus: domain.InCommission},
		},
		Departments: []domain.Department{
			{ID: w.opsDept, StationID: w.stationS, Name: "Operations"},
			{ID: w.adminDept, StationID: w.stationS, Name: "Administration"},
		},
		Units: []domain.Unit{
			{ID: w.unitU, DepartmentID: w.opsDept, Name: "Red Watch", IsActive: true, ActivatedAt: &activated},
			{ID: w.unitSpare, DepartmentID: w.opsDept, Name: "Blue Watch"},
		},
		Users:         []domain.Reporter{{ID: w.citizen, Name: "Kofi Boateng"}},
		FirePersonnel: []domain.Reporter{{ID: w.firefight, Name: "Sgt. Adjoa Owusu"}},
	})

	w.build(nil)
	return w
}

// build wires the services; stations may be swapped for a failing fake.
func (w *world) build(stations service.StationRepository) {
	if stations == nil {
		stations = w.store.Stations()
	}
	logger := newTestLogger()
	clock := service.Clock(w.clock.Now)

	w.guard = service.NewStationGuard(stations, w.store.Alerts(), w.store.Incidents(), logger)
	flags := service.NewStationFlags(stations, w.store.Alerts(), w.store.Incidents(), logger)
	resolver := service.NewStationResolver(stations, nil, logger, 5, time.Minute)

	w.incidents = service.NewIncidentService(w.store.Incidents(), w.store.Alerts(), stations, w.store.Departments(),
		w.store.Units(), w.store.Reporters(), w.slips, flags, w.notifier, logger, clock)
	w.alerts = service.NewAlertService(w.store.Alerts(), stations, w.store.Reporters(), w.store.Units(),
		w.guard, resolver, w.incidents, flags, w.notifier, logger, clock)
	w.units = service.NewUnitService(w.store.Units(), w.store.Departments(), logger, clock, time.UTC)
	w.stats = service.NewStatsService(stations, w.store.Alerts(), w.store.Incidents())
}

func (w *world) station(t *testing.T, id uuid.UUID) *domain.Station {
	t.Helper()
	st, err := w.store.Stations().Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get station: %v", err)
	}
	return st
}

func (w *world) createAlert(t *testing.T, station uuid.UUID) *domain.Alert {
	t.Helper()
	a, err := w.alerts.Create(context.Background(), w.alertRequest(station))
	if err != nil {
		t.Fatalf("create alert: %v", err)
	}
	return a
}

func (w *world) alertRequest(station uuid.UUID) domain.CreateAlertRequest {
	return domain.CreateAlertRequest{
		ReporterID:   w.citizen,
		Station:      domain.StationTarget{ID: &station},
		IncidentType: "fire",
		IncidentName: "Market fire",
		Priority:     "high",
		Location:     domain.Location{Name: "Makola Market", Coordinates: &domain.Coordinates{Lat: 5.548, Lng: -0.207}},
	}
}

func (w *world) liveIncidents(t *testing.T, alertID uuid.UUID) []*domain.Incident {
	t.Helper()
	list, _, err := w.store.Incidents().List(context.Background(), domain.IncidentFilter{AlertID: &alertID})
	if err != nil {
		t.Fatalf("list incidents: %v", err)
	}
	return list
}

func containsEvent(names []domain.EventName, want domain.EventName) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}
