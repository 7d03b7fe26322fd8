package handler

import "net/http"

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ResponseFunc adapts a function to Response.
type ResponseFunc func(w http.ResponseWriter, r *http.Request) error

func (f ResponseFunc) Render(w http.ResponseWriter, r *http.Request) error { return f(w, r) }

// HandlerFunc handles a request bound into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Bind populates v from the request.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler func(ctx Context, err error)

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinder appends request binders. They run in order.
func WithBinder[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler replaces the default error handler. Nil is ignored.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// Wrap converts a typed HandlerFunc to an http.HandlerFunc.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: NewErrorHandler(nil)}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
