// Package httputil centralizes JSON response and request helpers so handlers
// stay thin and error bodies stay uniform.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "classroom/pkg/domain-errors"
)

type errorBody struct {
	Error string `json:"error"`
}

// WriteJSON serializes v with the given status. Encoding failures are
// swallowed; headers are already on the wire at that point.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError renders err as its coarse wire code. Unclassified errors
// collapse to internal so no cause detail ever crosses the wire.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.GetCode(err)
	WriteJSON(w, dErrors.HTTPStatus(code), errorBody{Error: string(code)})
}

// DecodeJSON parses the request body into dst. A malformed or empty body is
// a bad_request, not an internal error.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}
