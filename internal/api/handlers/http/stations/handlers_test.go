package stations_test

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

	"fireDispatch/internal/api/handlers/http/stations"
	mock_stations "fireDispatch/internal/api/handlers/http/stations/mocks"
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
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestStationAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		guardErr   error
		wantStatus int
		wantAccept bool
		wantReason string
	}{
		{name: "free", wantStatus: http.StatusOK, wantAccept: true},
		{
			name:       "out of commission",
			guardErr:   e.New(e.ErrUnavailable, service.DenyOutOfCommission, "station is out of commission", nil),
			wantStatus: http.StatusOK,
			wantReason: service.DenyOutOfCommission,
		},
		{
			name:       "duplicate alert",
			guardErr:   e.Conflict(service.DenyDuplicateActiveAlert, "station already has an active alert", nil),
			wantStatus: http.StatusOK,
			wantReason: service.DenyDuplicateActiveAlert,
		},
		{
			name:       "missing station",
			guardErr:   e.New(e.ErrNotFound, service.DenyNotFound, "station not found", nil),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store failure",
			guardErr:   errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			guard := mock_stations.NewMockGuard(ctrl)
			h := stations.NewHandler(newTestLogger(), guard, mock_stations.NewMockStatsGetter(ctrl))

			id := uuid.New()
			var station *domain.Station
			if tt.guardErr == nil {
				station = &domain.Station{ID: id}
			}
			guard.EXPECT().CanAcceptAlert(gomock.Any(), id).Return(station, tt.guardErr).Times(1)

			req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
			rr := httptest.NewRecorder()

			h.StationAvailability(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d, body=%s", tt.wantStatus, rr.Code, rr.Body.String())
			}
			if rr.Code != http.StatusOK {
				return
			}
			got := decodeJSON[envelope[stations.Availability]](t, rr)
			if got.Data.CanAcceptAlert != tt.wantAccept || got.Data.Reason != tt.wantReason {
				t.Fatalf("unexpected availability %+v", got.Data)
			}
		})
	}
}

func TestStationStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_stations.NewMockStatsGetter(ctrl)
	h := stations.NewHandler(newTestLogger(), mock_stations.NewMockGuard(ctrl), stats)

	id := uuid.New()
	stats.EXPECT().
		StationStats(gomock.Any(), id).
		Return(&domain.StationStats{StationID: id, OpenAlerts: 1, HasActiveAlert: false, FlagsConsistent: false}, nil).
		Times(1)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String())
	rr := httptest.NewRecorder()

	h.StationStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[envelope[domain.StationStats]](t, rr)
	if got.Data.OpenAlerts != 1 || got.Data.FlagsConsistent {
		t.Fatalf("unexpected stats %+v", got.Data)
	}
}
