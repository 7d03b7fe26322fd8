// Package logger builds *slog.Logger instances with functional options, helper
// attribute constructors and attributes injected from context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it in a handler that runs every registered ContextExtractor
// before a record is written. RequestIDExtractor pulls the id set by chi's
// middleware.RequestID so request logs can be correlated.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Service),
//	    logger.WithContextExtractors(logger.RequestIDExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "browser gate decided",
//	    logger.Browser(decision.Identity),
//	    logger.State(string(decision.State)),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally:
//
//	log.Info("fetch finished", logger.Error(err))
package logger
