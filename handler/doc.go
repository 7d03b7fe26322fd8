// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by the
// configured binders, and returns a Response that renders itself. Wrap turns it
// into an http.HandlerFunc; binding and rendering errors go to an ErrorHandler.
//
// Responses cover what the explorer pages need:
//
//   - Templ renders a component as HTML, or as a Datastar element patch when
//     the request came from Datastar.
//   - Stream opens a Datastar SSE stream and hands a StreamContext to a callback
//     that can push any number of patches.
//
// Example:
//
//	type resultsRequest struct {
//		URL string `json:"url"`
//	}
//
//	r.Get("/explorer/results", handler.Wrap(
//		func(ctx handler.Context, req resultsRequest) handler.Response {
//			return handler.Stream(func(stream handler.StreamContext) error {
//				return stream.SendComponent(view(req.URL), handler.WithTarget("#ax-results"))
//			})
//		},
//		handler.WithBinder[resultsRequest](handler.Signals()),
//	))
package handler
