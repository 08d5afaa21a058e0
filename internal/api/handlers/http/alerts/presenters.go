package alerts

import (
	"net/http"
	"strconv"

	"fireDispatch/internal/api/response"
	"fireDispatch/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var (
	errInvalidID        = e.Invalid("invalid id")
	errInvalidStationID = e.Invalid("invalid station_id")
	errInvalidStatus    = e.Invalid("unknown alert status")
	errStationRequired  = e.Invalid("station is required")
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	response.Error(w, h.log(r), r, err)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.handleError(w, r, errInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return def
	}
	return i
}
