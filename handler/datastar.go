package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is sent by Datastar on every backend action.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Patch modes.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchAppend  = datastar.ElementPatchModeAppend
)

// IsDataStar reports whether r was issued by Datastar.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// Signals binds Datastar signals into the request value. Requests without
// signals leave the value untouched.
func Signals() Bind {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet && !r.URL.Query().Has(DataStarQueryParam) {
			return nil
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}
