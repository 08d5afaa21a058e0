package alerts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"fireDispatch/internal/api/handlers/http/alerts"
	mock_alerts "fireDispatch/internal/api/handlers/http/alerts/mocks"
	"fireDispatch/internal/domain"
	"fireDispatch/internal/service"
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
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Data    T                 `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestAlertCreate_Created(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlerts(ctrl)
	h := alerts.NewHandler(newTestLogger(), svc)

	reporterID := uuid.New()
	stationID := uuid.New()
	body := `{"reporter_id":"` + reporterID.String() + `","station":"` + stationID.String() + `",` +
		`"incident_type":"fire","incident_name":"House fire","priority":"high",` +
		`"location":{"name":"Main St 1","coordinates":{"lat":5.6,"lng":-0.2}}}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	want := &domain.Alert{ID: uuid.New(), StationID: stationID, Status: domain.AlertActive}
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got domain.CreateAlertRequest) (*domain.Alert, error) {
			if got.ReporterID != reporterID {
				t.Fatalf("unexpected reporter %s", got.ReporterID)
			}
			if got.Station.ID == nil || *got.Station.ID != stationID {
				t.Fatalf("expected bare station id to be decoded, got %+v", got.Station)
			}
			return want, nil
		}).
		Times(1)

	h.AlertCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[envelope[domain.Alert]](t, rr)
	if !got.Success || got.Data.ID != want.ID {
		t.Fatalf("unexpected body %+v", got)
	}
}

func TestAlertCreate_ValidationErrors_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlerts(ctrl))

	tests := []struct {
		name string
		body string
	}{
		{name: "bad json", body: `{bad json`},
		{name: "missing fields", body: `{"station":"` + uuid.NewString() + `"}`},
		{name: "missing station", body: `{"reporter_id":"` + uuid.NewString() + `","incident_type":"fire","incident_name":"x","location":{"name":"a"}}`},
		{name: "bad latitude", body: `{"reporter_id":"` + uuid.NewString() + `","station":"` + uuid.NewString() + `","incident_type":"fire","incident_name":"x","location":{"name":"a","coordinates":{"lat":120,"lng":0}}}`},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", bytes.NewBufferString(tt.body))
		rr := httptest.NewRecorder()

		h.AlertCreate(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d got %d, body=%s", tt.name, http.StatusBadRequest, rr.Code, rr.Body.String())
		}
	}
}

func TestAlertCreate_StationBusy_409WithDetails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlerts(ctrl)
	h := alerts.NewHandler(newTestLogger(), svc)

	incidentID := uuid.New()
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, e.Conflict(service.DenyStationBusy, "station is already handling an active incident",
			service.StationBusyDetails{ActiveIncidentDetails: domain.ActiveIncidentDetails{
				IncidentID: incidentID,
				Status:     domain.IncidentDispatched,
			}})).
		Times(1)

	body := `{"reporter_id":"` + uuid.NewString() + `","station":"` + uuid.NewString() + `",` +
		`"incident_type":"fire","incident_name":"x","location":{"name":"a"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AlertCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
	got := decodeJSON[envelope[map[string]map[string]any]](t, rr)
	if got.Code != service.DenyStationBusy {
		t.Fatalf("expected code %s got %s", service.DenyStationBusy, got.Code)
	}
	details, ok := got.Data["activeIncidentDetails"]
	if !ok {
		t.Fatalf("expected activeIncidentDetails in data, got %+v", got.Data)
	}
	if details["incident_id"] != incidentID.String() {
		t.Fatalf("unexpected details %+v", details)
	}
}

func TestAlertGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setup      func(m *mock_alerts.MockAlerts, id uuid.UUID)
		wantStatus int
	}{
		{
			name:       "invalid id",
			id:         "nope",
			setup:      func(m *mock_alerts.MockAlerts, id uuid.UUID) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			id:   uuid.NewString(),
			setup: func(m *mock_alerts.MockAlerts, id uuid.UUID) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "ok",
			id:   uuid.NewString(),
			setup: func(m *mock_alerts.MockAlerts, id uuid.UUID) {
				m.EXPECT().Get(gomock.Any(), id).Return(&domain.Alert{ID: id}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_alerts.NewMockAlerts(ctrl)
			id, _ := uuid.Parse(tt.id)
			tt.setup(svc, id)

			h := alerts.NewHandler(newTestLogger(), svc)
			req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/alerts/"+tt.id, nil), "id", tt.id)
			rr := httptest.NewRecorder()

			h.AlertGet(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d, body=%s", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAlertList_FilterAndLimitCap(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlerts(ctrl)
	h := alerts.NewHandler(newTestLogger(), svc)

	stationID := uuid.New()
	svc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.AlertFilter) ([]*domain.Alert, int64, error) {
			if f.Limit != 100 || f.Page != 2 {
				t.Fatalf("unexpected paging %+v", f)
			}
			if f.StationID == nil || *f.StationID != stationID {
				t.Fatalf("unexpected station filter %+v", f.StationID)
			}
			if f.Status == nil || *f.Status != domain.AlertActive {
				t.Fatalf("unexpected status filter %+v", f.Status)
			}
			return []*domain.Alert{{ID: uuid.New()}}, 1, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/alerts?page=2&limit=500&status=Active&station_id="+stationID.String(), nil)
	rr := httptest.NewRecorder()

	h.AlertList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[envelope[map[string]any]](t, rr)
	if got.Data["total"].(float64) != 1 {
		t.Fatalf("unexpected total %v", got.Data["total"])
	}
}

func TestAlertList_UnknownStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := alerts.NewHandler(newTestLogger(), mock_alerts.NewMockAlerts(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?status=exploded", nil)
	rr := httptest.NewRecorder()

	h.AlertList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAlertAccept_AlreadyTerminal_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlerts(ctrl)
	h := alerts.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().
		Accept(gomock.Any(), id).
		Return(nil, e.Conflict("alert_already_rejected", "alert has already been rejected", map[string]string{"status": "rejected"})).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/alerts/"+id.String()+"/accept", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.AlertAccept(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
	got := decodeJSON[envelope[map[string]string]](t, rr)
	if got.Message != "alert has already been rejected" {
		t.Fatalf("unexpected message %q", got.Message)
	}
}

func TestAlertDecline(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlerts(ctrl)
	h := alerts.NewHandler(newTestLogger(), svc)
	id := uuid.New()

	// blank reason never reaches the service
	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"reason":"  "}`)), "id", id.String())
	rr := httptest.NewRecorder()
	h.AlertDecline(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}

	svc.EXPECT().
		Decline(gomock.Any(), id, "no crew available").
		Return(&domain.Alert{ID: id, Status: domain.AlertRejected, Declined: true}, nil).
		Times(1)

	req = addChiURLParam(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"reason":"no crew available"}`)), "id", id.String())
	rr = httptest.NewRecorder()
	h.AlertDecline(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[envelope[domain.Alert]](t, rr)
	if got.Data.Status != domain.AlertRejected {
		t.Fatalf("unexpected status %s", got.Data.Status)
	}
}

func TestAlertRefer_PassesTarget(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlerts(ctrl)
	h := alerts.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	target := uuid.New()
	svc.EXPECT().
		Refer(gomock.Any(), id, target, "closer station").
		Return(&domain.Alert{ID: id, StationID: target, Referred: true}, nil).
		Times(1)

	body := `{"station_id":"` + target.String() + `","reason":"closer station"}`
	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)), "id", id.String())
	rr := httptest.NewRecorder()

	h.AlertRefer(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAlertDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_alerts.NewMockAlerts(ctrl)
	h := alerts.NewHandler(newTestLogger(), svc)

	id := uuid.New()
	svc.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodDelete, "/", nil), "id", id.String())
	rr := httptest.NewRecorder()
	h.AlertDelete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}

	svc.EXPECT().Delete(gomock.Any(), id).Return(errors.New("boom")).Times(1)
	rr = httptest.NewRecorder()
	h.AlertDelete(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
	got := decodeJSON[envelope[any]](t, rr)
	if got.Message != "boom" {
		t.Fatalf("expected verbatim message, got %q", got.Message)
	}
}
