package incidents

import (
	"net/http"
	"strconv"

	"fireDispatch/internal/api/response"
	"fireDispatch/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

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

func invalidQuery(key string) error {
	return e.Invalid("invalid " + key)
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
