// ABOUTME: HTTP error envelope for the sample handlers.
// ABOUTME: Maps catalog lookup failures to 404s with a short JSON detail message.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2389-research/bridgeplay/catalog"
)

const (
	detailSampleNotFound = "Sample not found"
	detailFileMissing    = "Sample file missing"
	detailInternal       = "internal server error"
)

// HTTPError is a request-scoped failure with the status and detail sent to
// the client.
type HTTPError struct {
	Status int
	Detail string
	Err    error // underlying cause, logged but never sent
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *HTTPError) Unwrap() error { return e.Err }

// httpErrorFor classifies err. Catalog misses become 404s; anything else is
// a 500.
func httpErrorFor(err error) *HTTPError {
	var he *HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, catalog.ErrNotFound):
		return &HTTPError{Status: http.StatusNotFound, Detail: detailSampleNotFound, Err: err}
	case errors.Is(err, catalog.ErrFileMissing):
		return &HTTPError{Status: http.StatusNotFound, Detail: detailFileMissing, Err: err}
	default:
		return &HTTPError{Status: http.StatusInternalServerError, Detail: detailInternal, Err: err}
	}
}

// writeError sends {"detail": ...} with the error's status.
func writeError(w http.ResponseWriter, e *HTTPError) {
	writeJSON(w, e.Status, map[string]string{"detail": e.Detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
