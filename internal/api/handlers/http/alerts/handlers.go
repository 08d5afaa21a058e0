package alerts

import (
	"context"
	"log/slog"
	"net/http"

	"fireDispatch/internal/api/response"
	"fireDispatch/internal/domain"
	"fireDispatch/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Alerts interface {
	Create(ctx context.Context, req domain.CreateAlertRequest) (*domain.Alert, error)
	Accept(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	Decline(ctx context.Context, id uuid.UUID, reason string) (*domain.Alert, error)
	Refer(ctx context.Context, id, targetStationID uuid.UUID, reason string) (*domain.Alert, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateAlertRequest) (*domain.Alert, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	List(ctx context.Context, filter domain.AlertFilter) ([]*domain.Alert, int64, error)
}

type Handler struct {
	logger *slog.Logger
	Alerts Alerts
}

func NewHandler(logger *slog.Logger, alerts Alerts) *Handler {
	return &Handler{
		logger: logger,
		Alerts: alerts,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AlertCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateAlertRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if req.Station.IsEmpty() {
		h.handleError(w, r, errStationRequired)
		return
	}

	alert, err := h.Alerts.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert created", slog.String("id", alert.ID.String()))
	response.Created(w, "alert created", alert)
}

func (h *Handler) AlertList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	filter := domain.AlertFilter{
		Page:  parseInt(q.Get("page"), 1),
		Limit: parseInt(q.Get("limit"), 20),
	}
	if filter.Limit > 100 {
		filter.Limit = 100
		l.Warn("limit capped", slog.Int("limit", filter.Limit))
	}
	if v := q.Get("station_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.handleError(w, r, errInvalidStationID)
			return
		}
		filter.StationID = &id
	}
	if v := q.Get("status"); v != "" {
		st, ok := domain.ParseAlertStatus(v)
		if !ok {
			h.handleError(w, r, errInvalidStatus)
			return
		}
		filter.Status = &st
	}

	alerts, total, err := h.Alerts.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alerts listed", slog.Int("count", len(alerts)), slog.Int64("total", total))
	response.OK(w, map[string]any{
		"alerts": alerts,
		"total":  total,
		"page":   filter.Page,
		"limit":  filter.Limit,
	})
}

func (h *Handler) AlertGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	alert, err := h.Alerts.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, alert)
}

func (h *Handler) AlertUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateAlertRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	alert, err := h.Alerts.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, alert)
}

func (h *Handler) AlertDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Alerts.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// AlertAccept also serves the dispatch route; both end in the same
// transition and the same incident materialization.
func (h *Handler) AlertAccept(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertAccept", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	alert, err := h.Alerts.Accept(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert accepted", slog.String("id", id.String()))
	response.OK(w, alert)
}

func (h *Handler) AlertDecline(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertDecline", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.DeclineAlertRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	alert, err := h.Alerts.Decline(r.Context(), id, req.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert declined", slog.String("id", id.String()))
	response.OK(w, alert)
}

func (h *Handler) AlertRefer(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertRefer", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.ReferAlertRequest
	if err := middleware.BindJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	alert, err := h.Alerts.Refer(r.Context(), id, req.StationID, req.Reason)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alert referred",
		slog.String("id", id.String()),
		slog.String("station_id", req.StationID.String()),
	)
	response.OK(w, alert)
}
