package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fireDispatch/pkg/e"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message})
}

// Error maps err onto a status code and writes the failure envelope.
// Classified errors keep their code and details. Errors wrapping a sentinel
// kind report the kind only; anything else is a 500 carrying its message.
func Error(w http.ResponseWriter, l *slog.Logger, r *http.Request, err error) {
	status := StatusOf(err)

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	}
	if status >= http.StatusInternalServerError {
		l.Error("handler error", attrs...)
	} else {
		l.Warn("request rejected", attrs...)
	}

	body := Envelope{Success: false, Message: publicMessage(err)}
	if ce, ok := e.As(err); ok {
		body.Code = ce.Code
		body.Message = ce.Message
		if fields, ok := ce.Details.(map[string]string); ok && ce.Code == e.CodeValidation {
			body.Errors = fields
		} else {
			body.Data = ce.Details
		}
	}
	WriteJSON(w, status, body)
}

// sentinelKinds are the bare kinds whose text replaces a wrapped error's
// message, so storage op names stay in the logs.
var sentinelKinds = []error{
	e.ErrNotFound,
	e.ErrInvalidInput,
	e.ErrUnavailable,
	e.ErrConflict,
	e.ErrUniqueViolation,
	e.ErrDeadline,
	e.ErrCanceled,
	e.ErrInternal,
}

func publicMessage(err error) string {
	for _, kind := range sentinelKinds {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return err.Error()
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict
	case errors.Is(err, e.ErrDeadline):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
