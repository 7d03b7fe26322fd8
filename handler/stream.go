package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context with an open Datastar SSE stream.
type StreamContext interface {
	Context

	// SendComponent patches a component into the page.
	SendComponent(component templ.Component, opts ...TemplOption) error
}

// StreamFunc pushes patches for the lifetime of one SSE response.
type StreamFunc func(stream StreamContext) error

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

type streamResponse struct {
	fn StreamFunc
}

func (s streamResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrNotDataStar
	}
	return s.fn(&streamContext{
		Context: NewContext(w, r),
		sse:     datastar.NewSSE(w, r),
	})
}

// Stream opens an SSE stream for a Datastar request and runs fn on it. Other
// requests fail with ErrNotDataStar.
func Stream(fn StreamFunc) Response {
	return streamResponse{fn: fn}
}
