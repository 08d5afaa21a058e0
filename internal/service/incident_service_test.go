package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"
)

// acceptedIncident creates and accepts an alert at station S and returns
// the materialized incident.
func (w *world) acceptedIncident(t *testing.T) *domain.Incident {
	t.Helper()
	a := w.createAlert(t, w.stationS)
	if _, err := w.alerts.Accept(context.Background(), a.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	incs := w.liveIncidents(t, a.ID)
	if len(incs) != 1 {
		t.Fatalf("expected one incident, got %d", len(incs))
	}
	return incs[0]
}

func TestIncidentSetStatus_DispatchIsIdempotent(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	ctx := context.Background()
	inc := w.acceptedIncident(t)
	w.notifier.reset()

	first, err := w.incidents.SetStatus(ctx, inc.ID, "dispatched", nil)
	if err != nil {
		t.Fatalf("first dispatch: %v", err)
	}
	if first.DispatchedAt == nil || !first.DispatchedAt.Equal(worldStart) {
		t.Fatalf("unexpected dispatchedAt %v", first.DispatchedAt)
	}
	if first.TurnoutSlip == nil {
		t.Fatalf("expected a turnout slip")
	}
	if !containsEvent(w.notifier.names(), domain.EventTurnoutSlipDispatched) {
		t.Fatalf("expected turnout slip event, got %v", w.notifier.names())
	}

	w.clock.Set(worldStart.Add(10 * time.Minute))
	w.notifier.reset()

	second, err := w.incidents.SetStatus(ctx, inc.ID, "dispatched", nil)
	if err != nil {
		t.Fatalf("second dispatch: %v", err)
	}
	if !second.DispatchedAt.Equal(*first.DispatchedAt) {
		t.Fatalf("dispatchedAt changed: %v -> %v", first.DispatchedAt, second.DispatchedAt)
	}
	if string(second.TurnoutSlip.Document) != string(first.TurnoutSlip.Document) {
		t.Fatalf("turnout slip regenerated")
	}
	if w.slips.calls != 1 {
		t.Fatalf("expected one slip generation, got %d", w.slips.calls)
	}
	if containsEvent(w.notifier.names(), domain.EventTurnoutSlipDispatched) {
		t.Fatalf("slip event must not repeat")
	}
}

func TestIncidentSetStatus_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    []string
		next    string
		wantErr error
	}{
		{name: "forward skip", path: nil, next: "on_scene"},
		{name: "backward", path: []string{"on_scene"}, next: "active", wantErr: e.ErrConflict},
		{name: "out of closed", path: []string{"closed"}, next: "resolved", wantErr: e.ErrConflict},
		{name: "referred from live", path: []string{"active"}, next: "referred"},
		{name: "referred after resolved", path: []string{"resolved"}, next: "referred", wantErr: e.ErrConflict},
		{name: "unknown status", path: nil, next: "burning", wantErr: e.ErrInvalidInput},
		{name: "mixed case", path: nil, next: " Active "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := newWorld(t)
			ctx := context.Background()
			inc := w.acceptedIncident(t)

			for _, st := range tt.path {
				if _, err := w.incidents.SetStatus(ctx, inc.ID, st, nil); err != nil {
					t.Fatalf("setup %s: %v", st, err)
				}
			}

			_, err := w.incidents.SetStatus(ctx, inc.ID, tt.next, nil)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIncidentSetStatus_TimestampsAndFlags(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	ctx := context.Background()
	inc := w.acceptedIncident(t)

	arrived := time.Date(2025, 6, 10, 14, 52, 0, 0, time.FixedZone("GMT+1", 3600))
	got, err := w.incidents.SetStatus(ctx, inc.ID, "on_scene", &arrived)
	if err != nil {
		t.Fatalf("on_scene: %v", err)
	}
	if got.ArrivedAt == nil || !got.ArrivedAt.Equal(arrived) || got.ArrivedAt.Location() != time.UTC {
		t.Fatalf("expected override stored in UTC, got %v", got.ArrivedAt)
	}
	if got.DispatchedAt != nil {
		t.Fatalf("skipping dispatched must not set dispatchedAt")
	}
	if !w.station(t, w.stationS).HasActiveIncident {
		t.Fatalf("on_scene is live")
	}

	w.clock.Set(worldStart.Add(time.Hour))
	got, err = w.incidents.SetStatus(ctx, inc.ID, "resolved", nil)
	if err != nil {
		t.Fatalf("resolved: %v", err)
	}
	if got.ResolvedAt == nil || !got.ResolvedAt.Equal(worldStart.Add(time.Hour)) {
		t.Fatalf("unexpected resolvedAt %v", got.ResolvedAt)
	}
	if w.station(t, w.stationS).HasActiveIncident {
		t.Fatalf("expected hasActiveIncident cleared after resolve")
	}
}

func TestIncidentSetStatus_SlipFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	ctx := context.Background()
	inc := w.acceptedIncident(t)
	w.slips.err = errors.New("renderer down")
	w.notifier.reset()

	got, err := w.incidents.SetStatus(ctx, inc.ID, "dispatched", nil)
	if err != nil {
		t.Fatalf("dispatch must succeed, got %v", err)
	}
	if got.Status != domain.IncidentDispatched || got.DispatchedAt == nil || got.TurnoutSlip != nil {
		t.Fatalf("unexpected incident %+v", got)
	}
	if containsEvent(w.notifier.names(), domain.EventTurnoutSlipDispatched) {
		t.Fatalf("no slip, no slip event")
	}
	if _, err := w.incidents.TurnoutSlip(ctx, inc.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not found slip, got %v", err)
	}

	// A later dispatch retries the slip.
	w.slips.err = nil
	got, err = w.incidents.SetStatus(ctx, inc.ID, "dispatched", nil)
	if err != nil {
		t.Fatalf("re-dispatch: %v", err)
	}
	if got.TurnoutSlip == nil {
		t.Fatalf("expected slip on retry")
	}
	slip, err := w.incidents.TurnoutSlip(ctx, inc.ID)
	if err != nil || string(slip.Document) != "TURNOUT Market fire" {
		t.Fatalf("unexpected slip %v, %v", slip, err)
	}
}

func TestIncidentRefer(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	ctx := context.Background()
	inc := w.acceptedIncident(t)

	if _, err := w.incidents.Refer(ctx, inc.ID, w.stationT, " "); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank reason, got %v", err)
	}
	if _, err := w.incidents.Refer(ctx, inc.ID, w.stationS, "same"); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected invalid input for own station, got %v", err)
	}
	if _, err := w.incidents.Refer(ctx, inc.ID, uuid.New(), "nowhere"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not found target, got %v", err)
	}

	w.notifier.reset()
	got, err := w.incidents.Refer(ctx, inc.ID, w.stationT, "needs ladder truck")
	if err != nil {
		t.Fatalf("refer: %v", err)
	}
	if got.Status != domain.IncidentReferred || got.ReferredToStation == nil || *got.ReferredToStation != w.stationT {
		t.Fatalf("unexpected incident %+v", got)
	}
	if w.station(t, w.stationS).HasActiveIncident {
		t.Fatalf("expected hasActiveIncident cleared")
	}
	if !containsEvent(w.notifier.names(), domain.EventReferralCreated) {
		t.Fatalf("expected referral:created, got %v", w.notifier.names())
	}

	_, err = w.incidents.Refer(ctx, inc.ID, w.stationT, "again")
	ce, ok := e.As(err)
	if !ok || ce.Code != "incident_not_open" {
		t.Fatalf("expected incident_not_open, got %v", err)
	}
}

func TestIncidentSetStatus_ReferralUpdated(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	ctx := context.Background()
	inc := w.acceptedIncident(t)

	referred, err := w.incidents.Refer(ctx, inc.ID, w.stationT, "needs ladder truck")
	if err != nil {
		t.Fatalf("refer: %v", err)
	}
	if containsEvent(w.notifier.names(), domain.EventReferralUpdated) {
		t.Fatalf("a new referral is referral:created only")
	}

	w.notifier.reset()
	later := worldStart.Add(time.Hour)
	got, err := w.incidents.SetStatus(ctx, inc.ID, "referred", &later)
	if err != nil {
		t.Fatalf("re-enter referred: %v", err)
	}
	if !got.ReferredAt.Equal(*referred.ReferredAt) {
		t.Fatalf("referredAt is first-write-wins, got %v", got.ReferredAt)
	}

	ev, ok := w.notifier.find(domain.EventReferralUpdated)
	if !ok {
		t.Fatalf("expected referral:updated, got %v", w.notifier.names())
	}
	if ev.ReferredTo == nil || ev.ReferredTo.ID != w.stationT {
		t.Fatalf("expected referral target on the event, got %+v", ev.ReferredTo)
	}

	// Other transitions do not touch referrals.
	other := newWorld(t)
	inc2 := other.acceptedIncident(t)
	other.notifier.reset()
	if _, err := other.incidents.SetStatus(ctx, inc2.ID, "active", nil); err != nil {
		t.Fatalf("active: %v", err)
	}
	if containsEvent(other.notifier.names(), domain.EventReferralUpdated) {
		t.Fatalf("unexpected referral:updated on a plain transition")
	}
}

func TestIncidentDelete_RecomputesFlag(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	ctx := context.Background()
	inc := w.acceptedIncident(t)

	if err := w.incidents.Delete(ctx, inc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if w.station(t, w.stationS).HasActiveIncident {
		t.Fatalf("expected hasActiveIncident cleared")
	}
	if !containsEvent(w.notifier.names(), domain.EventIncidentDeleted) {
		t.Fatalf("expected incident:deleted")
	}
	if _, err := w.incidents.Get(ctx, inc.ID); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// The station takes alerts again.
	w.createAlert(t, w.stationS)
}

func TestIncidentMaterialize_NoUnitOnDuty(t *testing.T) {
	t.Parallel()

	w := newWorld(t)
	ctx := context.Background()

	u, _ := w.store.Units().Get(ctx, w.unitU)
	u.IsActive = false
	u.ActivatedAt = nil
	if err := w.store.Units().Update(ctx, u); err != nil {
		t.Fatalf("update unit: %v", err)
	}

	_, err := w.incidents.Materialize(ctx, uuid.New(), w.stationS)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if w.station(t, w.stationS).HasActiveIncident {
		t.Fatalf("no incident, no flag")
	}
}
