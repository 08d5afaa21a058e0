package incidents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fireDispatch/internal/api/response"
	"fireDispatch/internal/domain"
	"fireDispatch/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Incidents interface {
	SetStatus(ctx context.Context, id uuid.UUID, status string, at *time.Time) (*domain.Incident, error)
	Refer(ctx context.Context, id, targetStationID uuid.UUID, reason string) (*domain.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, int64, error)
	TurnoutSlip(ctx context.Context, id uuid.UUID) (*domain.TurnoutSlip, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents Incidents
}

func NewHandler(logger *slog.Logger, incidents Incidents) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) IncidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	filter := domain.IncidentFilter{
		Page:  parseInt(q.Get("page"), 1),
		Limit: parseInt(q.Get("limit"), 20),
	}
	if filter.Limit > 100 {
		filter.Limit = 100
		l.Warn("limit capped", slog.Int("limit", filter.Limit))
	}
	for key, dst := range map[string]**uuid.UUID{"station_id": &filter.StationID, "alert_id": &filter.AlertID} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			h.handleError(w, r, invalidQuery(key))
			return
		}
		*dst = &id
	}
	if v := q.Get("status"); v != "" {
		st, ok := domain.ParseIncidentStatus(v)
		if !ok {
			h.handleError(w, r, invalidQuery("status"))
			return
		}
		filter.Status = &st
	}

	incidents, total, err := h.Incidents.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incidents listed", slog.Int("count", len(incidents)), slog.Int64("total", total))
	response.OK(w, map[string]any{
		"incidents": incidents,
		"total":     total,
		"page":      filter.Page,
		"limit":     filter.Limit,
	})
}

func (h *Handler) IncidentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	incident, err := h.Incidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, incident)
}

func (h *Handler) IncidentSetStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentSetStatus", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.SetIncidentStatusRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	incident, err := h.Incidents.SetStatus(r.Context(), id, req.Status, req.At)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident status set",
		slog.String("id", id.String()),
		slog.String("status", string(incident.Status)),
	)
	response.OK(w, incident)
}

func (h *Handler) IncidentRefer(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentRefer", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.ReferIncidentRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	incident, err := h.Incidents.Refer(r.Context(), id, req.StationID, req.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident referred",
		slog.String("id", id.String()),
		slog.String("station_id", req.StationID.String()),
	)
	response.OK(w, incident)
}

func (h *Handler) IncidentDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Incidents.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// IncidentTurnoutSlip serves the stored document as-is.
func (h *Handler) IncidentTurnoutSlip(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	slip, err := h.Incidents.TurnoutSlip(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", slip.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(slip.Document)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(slip.Document)
}
