package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/gutendex/explorer/pkg/logger"
)

// StatusCode maps err to an HTTP status: the code of a wrapped HTTPError, or 500.
func StatusCode(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// NewErrorHandler returns an ErrorHandler that logs err and writes a plain text
// status response. Client errors are logged at warn, the rest at error. Nothing
// is written for Datastar requests since the stream may already be open.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		status := StatusCode(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.RequestID(middleware.GetReqID(ctx)),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("handler"),
		)

		if IsDataStar(r) {
			return
		}
		http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
	}
}
