package explorer

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gutendex/explorer/handler"
	"github.com/gutendex/explorer/pkg/gate"
	"github.com/gutendex/explorer/pkg/httpserver"
	"github.com/gutendex/explorer/pkg/logger"
	"github.com/gutendex/explorer/pkg/resultpanel"
)

// RouterOptions configures the explorer module. Zero values get defaults.
type RouterOptions struct {
	Config Config
	// Gate decides admission. Defaults to gate.New().
	Gate *gate.Gate
	// Panel serves the results endpoint. Defaults to resultpanel.New().
	Panel  *resultpanel.Panel
	Logger *slog.Logger
}

type explorer struct {
	cfg    Config
	boot   *gate.Bootstrapper
	panel  *resultpanel.Panel
	logger *slog.Logger
	errors handler.ErrorHandler
}

// Router creates the explorer router with request ID, real IP and panic
// recovery middleware.
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("explorer"))

	panel := opts.Panel
	if panel == nil {
		panel = resultpanel.New(resultpanel.WithLogger(log))
	}

	cfg := opts.Config.withDefaults()
	e := &explorer{
		cfg: cfg,
		boot: gate.NewBootstrapper(opts.Gate,
			gate.WithModules(cfg.Modules()...),
			gate.WithLogger(log),
		),
		panel:  panel,
		logger: log,
		errors: handler.NewErrorHandler(log),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	page := handler.Wrap[struct{}](e.page, handler.WithErrorHandler[struct{}](e.errors))
	r.Get("/", page)
	r.Get("/explorer", page)
	r.Get(ResultsPath, handler.Wrap[resultsRequest](e.results,
		handler.WithBinder[resultsRequest](handler.Signals()),
		handler.WithErrorHandler[resultsRequest](e.resultsError),
	))
	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	return r
}
