package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
	ErrInvalidSignals    = HTTPError{Code: http.StatusBadRequest, Key: "invalid_signals"}
	ErrNotDataStar       = HTTPError{Code: http.StatusBadRequest, Key: "datastar_required"}
)

// HTTPError is an error with an HTTP status code.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }
