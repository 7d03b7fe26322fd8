package explorer

import (
	"context"

	"github.com/gutendex/explorer/handler"
	"github.com/gutendex/explorer/pkg/logger"
	"github.com/gutendex/explorer/pkg/resultpanel"
)

type resultsRequest struct {
	URL string `json:"url"`
}

// streamTarget writes panel text into #ax-results over an open stream.
type streamTarget struct {
	stream handler.StreamContext
}

func (t streamTarget) SetText(_ context.Context, text string) error {
	return t.stream.SendComponent(resultsView(text), handler.WithTarget("#"+ResultsID))
}

func (e *explorer) results(_ handler.Context, req resultsRequest) handler.Response {
	return handler.Stream(func(stream handler.StreamContext) error {
		_, err := e.panel.Submit(stream, req.URL, streamTarget{stream: stream}).Wait()
		return err
	})
}

// resultsError shows the fixed error text when the request never reached the
// panel, e.g. unreadable signals.
func (e *explorer) resultsError(ctx handler.Context, err error) {
	e.logger.WarnContext(ctx, "results request failed", logger.Error(err))
	if !handler.IsDataStar(ctx.Request()) {
		e.errors(ctx, err)
		return
	}
	resp := handler.Templ(resultsView(resultpanel.ErrorText), handler.WithTarget("#"+ResultsID))
	if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		e.logger.WarnContext(ctx, "failed to show results error", logger.Error(renderErr))
	}
}
