package incidents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"fireDispatch/internal/api/handlers/http/incidents"
	mock_incidents "fireDispatch/internal/api/handlers/http/incidents/mocks"
	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Data    T      `json:"data"`
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestIncidentSetStatus(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setup      func(t *testing.T, m *mock_incidents.MockIncidents, id uuid.UUID)
		wantStatus int
	}{
		{
			name:       "missing status",
			body:       `{}`,
			setup:      func(t *testing.T, m *mock_incidents.MockIncidents, id uuid.UUID) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "with timestamp override",
			body: `{"status":"on_scene","at":"2025-03-01T10:15:00Z"}`,
			setup: func(t *testing.T, m *mock_incidents.MockIncidents, id uuid.UUID) {
				m.EXPECT().
					SetStatus(gomock.Any(), id, "on_scene", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, got *time.Time) (*domain.Incident, error) {
						if got == nil || !got.Equal(at) {
							t.Errorf("expected override %v, got %v", at, got)
						}
						return &domain.Incident{ID: id, Status: domain.IncidentOnScene, ArrivedAt: &at}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "backward transition",
			body: `{"status":"pending"}`,
			setup: func(t *testing.T, m *mock_incidents.MockIncidents, id uuid.UUID) {
				m.EXPECT().
					SetStatus(gomock.Any(), id, "pending", nil).
					Return(nil, e.Conflict("invalid_incident_transition", "incident cannot move from on_scene to pending", nil))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "unknown status",
			body: `{"status":"en-route"}`,
			setup: func(t *testing.T, m *mock_incidents.MockIncidents, id uuid.UUID) {
				m.EXPECT().
					SetStatus(gomock.Any(), id, "en-route", nil).
					Return(nil, e.Invalid(`unknown incident status "en-route"`))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_incidents.NewMockIncidents(ctrl)
			id := uuid.New()
			tt.setup(t, svc, id)

			h := incidents.NewHandler(newTestLogger(), svc)
			req := addChiURLParam(httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(tt.body)), "id", id.String())
			rr := httptest.NewRecorder()

			h.IncidentSetStatus(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d, body=%s", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestIncidentTurnoutSlip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	doc := []byte("<html><body>turnout</body></html>")
	svc.EXPECT().
		TurnoutSlip(gomock.Any(), id).
		Return(&domain.TurnoutSlip{ContentType: "text/html; charset=utf-8", Document: doc}, nil).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.IncidentTurnoutSlip(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !bytes.Equal(rr.Body.Bytes(), doc) {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestIncidentTurnoutSlip_NotYetGenerated_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().TurnoutSlip(gomock.Any(), id).Return(nil, e.NotFound("incident has no turnout slip yet")).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.IncidentTurnoutSlip(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
	got := decodeJSON[envelope[any]](t, rr)
	if got.Code != "not_found" {
		t.Fatalf("unexpected code %q", got.Code)
	}
}

func TestIncidentList_Filters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	alertID := uuid.New()
	svc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.IncidentFilter) ([]*domain.Incident, int64, error) {
			if f.AlertID == nil || *f.AlertID != alertID {
				t.Errorf("unexpected alert filter %+v", f.AlertID)
			}
			if f.StationID != nil {
				t.Errorf("unexpected station filter %+v", f.StationID)
			}
			if f.Status == nil || *f.Status != domain.IncidentDispatched {
				t.Errorf("unexpected status filter %+v", f.Status)
			}
			return nil, 0, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/?status=dispatched&alert_id="+alertID.String(), nil)
	rr := httptest.NewRecorder()

	h.IncidentList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/?station_id=bogus", nil)
	rr = httptest.NewRecorder()
	h.IncidentList(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestIncidentRefer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	target := uuid.New()
	svc.EXPECT().
		Refer(gomock.Any(), id, target, "out of area").
		Return(&domain.Incident{ID: id, Status: domain.IncidentReferred, ReferredToStation: &target}, nil).
		Times(1)

	body := `{"station_id":"` + target.String() + `","reason":"out of area"}`
	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)), "id", id.String())
	rr := httptest.NewRecorder()

	h.IncidentRefer(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[envelope[domain.Incident]](t, rr)
	if got.Data.Status != domain.IncidentReferred {
		t.Fatalf("unexpected status %s", got.Data.Status)
	}
}

func TestIncidentDelete_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_incidents.NewMockIncidents(ctrl)
	h := incidents.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().Delete(gomock.Any(), id).Return(e.ErrNotFound).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.IncidentDelete(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}
