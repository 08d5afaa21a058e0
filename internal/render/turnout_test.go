package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"fireDispatch/internal/domain"

	"github.com/google/uuid"
)

func TestTurnoutGenerator_Generate(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	g := NewTurnoutGenerator(r)
	g.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	dispatched := time.Date(2024, 6, 1, 8, 55, 0, 0, time.UTC)
	tc := domain.TurnoutContext{
		Incident: &domain.Incident{ID: uuid.New(), DispatchedAt: &dispatched},
		Alert: &domain.Alert{
			IncidentType: "fire",
			IncidentName: "Kitchen <fire>",
			Priority:     "high",
			Location:     domain.Location{Name: "12 Ring Rd", Coordinates: &domain.Coordinates{Lat: 5.6, Lng: -0.2}},
		},
		Reporter:   &domain.Reporter{Name: "Kofi", Type: domain.ReporterUser, Phone: "+233"},
		Station:    &domain.Station{Name: "Central"},
		Department: &domain.Department{Name: "Operations"},
		Unit:       &domain.Unit{Name: "Red Watch"},
	}

	slip, err := g.Generate(context.Background(), tc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if slip.ContentType != turnoutContentType {
		t.Fatalf("unexpected content type %q", slip.ContentType)
	}
	if !slip.GeneratedAt.Equal(g.now()) {
		t.Fatalf("unexpected generatedAt %v", slip.GeneratedAt)
	}

	doc := string(slip.Document)
	for _, want := range []string{"TURNOUT: FIRE", "Kitchen &lt;fire&gt;", "Red Watch", "Operations", "01 Jun 2024 08:55 UTC"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestTurnoutGenerator_RequiresIncidentAndAlert(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := NewTurnoutGenerator(r).Generate(context.Background(), domain.TurnoutContext{}); err == nil {
		t.Fatalf("expected error")
	}
}
