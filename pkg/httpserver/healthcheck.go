package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gutendex/explorer/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness checks. With no checks it
// answers 200 "ALIVE". Otherwise every check runs with the request context:
// 200 "READY" when all pass, 503 "NOT_READY" on the first failure.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
