package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/google/uuid"
)

func TestAlertRepo_CopiesOnReadAndWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := New().Alerts()

	a := &domain.Alert{StationID: uuid.New(), Location: domain.Location{Coordinates: &domain.Coordinates{Lat: 1, Lng: 2}}}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.Status != domain.AlertActive {
		t.Fatalf("expected default status active, got %s", a.Status)
	}

	a.Location.Coordinates.Lat = 50
	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Location.Coordinates.Lat != 1 {
		t.Fatalf("stored alert was mutated through caller pointer")
	}

	got.Status = domain.AlertAccepted
	again, _ := repo.Get(ctx, a.ID)
	if again.Status != domain.AlertActive {
		t.Fatalf("stored alert was mutated through returned pointer")
	}
}

func TestAlertRepo_ListAndCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New()
	repo := store.Alerts()
	station := uuid.New()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	statuses := []domain.AlertStatus{domain.AlertActive, domain.AlertPending, domain.AlertRejected}
	for i, st := range statuses {
		if err := repo.Create(ctx, &domain.Alert{StationID: station, Status: st, CreatedAt: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	_ = repo.Create(ctx, &domain.Alert{StationID: uuid.New(), Status: domain.AlertActive})

	n, err := repo.CountByStation(ctx, station, domain.OpenAlertStatuses)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 open alerts got %d (%v)", n, err)
	}

	list, total, err := repo.List(ctx, domain.AlertFilter{StationID: &station, Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(list) != 2 {
		t.Fatalf("expected total=3 len=2 got total=%d len=%d", total, len(list))
	}
	if list[0].Status != domain.AlertRejected {
		t.Fatalf("expected newest first, got %s", list[0].Status)
	}

	page3, _, _ := repo.List(ctx, domain.AlertFilter{StationID: &station, Page: 3, Limit: 2})
	if len(page3) != 0 {
		t.Fatalf("expected empty page, got %d", len(page3))
	}
}

func TestIncidentRepo_LatestByStation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := New().Incidents()
	station := uuid.New()

	_, err := repo.LatestByStation(ctx, station, domain.LiveIncidentStatuses)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}

	old := &domain.Incident{StationID: station, Status: domain.IncidentActive, CreatedAt: time.Unix(100, 0)}
	closed := &domain.Incident{StationID: station, Status: domain.IncidentClosed, CreatedAt: time.Unix(300, 0)}
	newer := &domain.Incident{StationID: station, Status: domain.IncidentDispatched, CreatedAt: time.Unix(200, 0)}
	for _, inc := range []*domain.Incident{old, closed, newer} {
		if err := repo.Create(ctx, inc); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.LatestByStation(ctx, station, domain.LiveIncidentStatuses)
	if err != nil {
		t.Fatalf("LatestByStation: %v", err)
	}
	if got.ID != newer.ID {
		t.Fatalf("expected latest live incident %s got %s", newer.ID, got.ID)
	}
}

func TestStationRepo_FindNearestAndFlags(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := New().Stations()

	near := &domain.Station{Name: "Near", Lat: 5.6037, Lng: -0.1870}
	far := &domain.Station{Name: "Far", Lat: 6.6885, Lng: -1.6244}
	_ = repo.Create(ctx, near)
	_ = repo.Create(ctx, far)

	got, err := repo.FindNearest(ctx, 5.61, -0.19, 5)
	if err != nil || got.ID != near.ID {
		t.Fatalf("FindNearest: %v %+v", err, got)
	}
	if _, err := repo.FindNearest(ctx, 0.1, 0.1, 1); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
	if _, err := repo.FindNearest(ctx, 100, 0, 1); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}

	if err := repo.SetActiveIncident(ctx, near.ID, true); err != nil {
		t.Fatalf("SetActiveIncident: %v", err)
	}
	st, _ := repo.Get(ctx, near.ID)
	if !st.HasActiveIncident {
		t.Fatalf("flag not persisted")
	}
	if err := repo.SetActiveAlert(ctx, uuid.New(), true); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestLoadSeed(t *testing.T) {
	t.Parallel()

	stationID := uuid.New()
	deptID := uuid.New()
	unitID := uuid.New()
	userID := uuid.New()

	body := `{
		"stations": [{"id": "` + stationID.String() + `", "name": "Central"}],
		"departments": [{"id": "` + deptID.String() + `", "station_id": "` + stationID.String() + `", "name": "Operations"}],
		"units": [{"id": "` + unitID.String() + `", "department_id": "` + deptID.String() + `", "name": "Red Watch"}],
		"users": [{"id": "` + userID.String() + `", "name": "Ama"}]
	}`

	store := New()
	if err := store.LoadSeed(strings.NewReader(body)); err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}

	ctx := context.Background()
	st, err := store.Stations().Get(ctx, stationID)
	if err != nil || st.CommissionStatus != domain.InCommission {
		t.Fatalf("seeded station: %v %+v", err, st)
	}
	depts, _ := store.Departments().ListByStation(ctx, stationID)
	if len(depts) != 1 {
		t.Fatalf("expected 1 department got %d", len(depts))
	}
	rep, err := store.Reporters().GetUser(ctx, userID)
	if err != nil || rep.Type != domain.ReporterUser {
		t.Fatalf("seeded user: %v %+v", err, rep)
	}
	if _, err := store.Reporters().GetFirePersonnel(ctx, userID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}

	if err := store.LoadSeed(strings.NewReader("{")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestAlertRepo_DeleteCascadesToIncidents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := New()
	station := uuid.New()

	a := &domain.Alert{ID: uuid.New(), StationID: station, Status: domain.AlertAccepted}
	other := &domain.Alert{ID: uuid.New(), StationID: station, Status: domain.AlertAccepted}
	for _, al := range []*domain.Alert{a, other} {
		if err := store.Alerts().Create(ctx, al); err != nil {
			t.Fatalf("Create alert: %v", err)
		}
	}
	for _, alertID := range []uuid.UUID{a.ID, a.ID, other.ID} {
		inc := &domain.Incident{ID: uuid.New(), AlertID: alertID, StationID: station, Status: domain.IncidentPending}
		if err := store.Incidents().Create(ctx, inc); err != nil {
			t.Fatalf("Create incident: %v", err)
		}
	}

	if err := store.Alerts().Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	n, err := store.Incidents().CountByStation(ctx, station, domain.LiveIncidentStatuses)
	if err != nil {
		t.Fatalf("CountByStation: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected only the other alert's incident to remain, got %d", n)
	}
}
