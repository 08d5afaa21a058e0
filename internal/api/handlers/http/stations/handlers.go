package stations

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fireDispatch/internal/api/response"
	"fireDispatch/internal/domain"
	"fireDispatch/pkg/e"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Guard interface {
	CanAcceptAlert(ctx context.Context, stationID uuid.UUID) (*domain.Station, error)
}

type StatsGetter interface {
	StationStats(ctx context.Context, stationID uuid.UUID) (*domain.StationStats, error)
}

type Availability struct {
	StationID      uuid.UUID `json:"station_id"`
	CanAcceptAlert bool      `json:"can_accept_alert"`
	Reason         string    `json:"reason,omitempty"`
	Message        string    `json:"message,omitempty"`
	Details        any       `json:"details,omitempty"`
}

type Handler struct {
	logger *slog.Logger
	Guard  Guard
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, guard Guard, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Guard:  guard,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// StationAvailability runs the alert guard as a read. A denial is a normal
// answer; only a missing station or a failed lookup is an error.
func (h *Handler) StationAvailability(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("StationAvailability", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	_, err := h.Guard.CanAcceptAlert(r.Context(), id)
	if err == nil {
		response.OK(w, Availability{StationID: id, CanAcceptAlert: true})
		return
	}

	denial, classified := e.As(err)
	if !classified || errors.Is(err, e.ErrNotFound) {
		h.handleError(w, r, err)
		return
	}

	l.Info("station unavailable", slog.String("id", id.String()), slog.String("reason", denial.Code))
	response.OK(w, Availability{
		StationID: id,
		Reason:    denial.Code,
		Message:   denial.Message,
		Details:   denial.Details,
	})
}

func (h *Handler) StationStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("StationStats", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	stats, err := h.Stats.StationStats(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if !stats.FlagsConsistent {
		l.Warn("station flags drifted from live counts",
			slog.String("id", id.String()),
			slog.Int64("open_alerts", stats.OpenAlerts),
			slog.Int64("live_incidents", stats.LiveIncidents),
		)
	}
	response.OK(w, stats)
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	response.Error(w, h.log(r), r, err)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, e.Invalid("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
