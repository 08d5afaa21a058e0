package units

import (
	"context"
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
type Units interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	Activate(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Unit, error)
}

// Sweeper runs the end-of-shift deactivation on demand.
type Sweeper interface {
	Sweep(ctx context.Context) (*domain.SweepResult, error)
}

type Handler struct {
	logger  *slog.Logger
	Units   Units
	Sweeper Sweeper
}

func NewHandler(logger *slog.Logger, units Units, sweeper Sweeper) *Handler {
	return &Handler{
		logger:  logger,
		Units:   units,
		Sweeper: sweeper,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) UnitGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	unit, err := h.Units.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, unit)
}

func (h *Handler) UnitActivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("UnitActivate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	unit, err := h.Units.Activate(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("unit activated", slog.String("id", id.String()))
	response.OK(w, unit)
}

func (h *Handler) UnitDeactivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("UnitDeactivate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	unit, err := h.Units.Deactivate(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("unit deactivated", slog.String("id", id.String()))
	response.OK(w, unit)
}

func (h *Handler) UnitAutoDeactivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("UnitAutoDeactivate", slog.String("remote", r.RemoteAddr))

	res, err := h.Sweeper.Sweep(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("manual unit sweep finished", slog.Int("deactivated", res.Count))
	response.OK(w, res)
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
