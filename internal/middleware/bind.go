package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fireDispatch/pkg/e"
	"fireDispatch/pkg/validator"
)

const maxBodyBytes = 1 << 20

// BindJSON decodes the request body into target and validates it. Failures
// come back as classified invalid-input errors.
func BindJSON(r *http.Request, target any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return e.Invalid("request body is empty")
		}
		return e.Invalid("invalid JSON: " + err.Error())
	}
	if dec.More() {
		return e.Invalid("invalid JSON: unexpected data after the object")
	}

	if err := validator.ValidateStruct(target); err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return e.InvalidFields("request validation failed", fields)
		}
		return e.Invalid(err.Error())
	}
	return nil
}
