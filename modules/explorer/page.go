package explorer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/gutendex/explorer/handler"
	"github.com/gutendex/explorer/pkg/gate"
)

// pageRenderer collects the container contents chosen by the gate.
type pageRenderer struct {
	parts []templ.Component
}

func (p *pageRenderer) ShowFallback(_ context.Context, notice string) error {
	p.parts = []templ.Component{fallbackView(notice)}
	return nil
}

func (p *pageRenderer) Attach(_ context.Context, m gate.Module) error {
	switch m.Name {
	case gate.ModuleGetResults:
		p.parts = append(p.parts, moduleView(m, resultsView("")))
	case gate.ModuleIndex:
		p.parts = append(p.parts, moduleView(m, formView()))
	default:
		return fmt.Errorf("%w: %s", ErrUnknownModule, m.Name)
	}
	return nil
}

func (e *explorer) page(ctx handler.Context, _ struct{}) handler.Response {
	pr := &pageRenderer{}
	d, err := e.boot.Run(ctx, ctx.Request().UserAgent(), pr)
	if err != nil {
		return handler.ResponseFunc(func(http.ResponseWriter, *http.Request) error { return err })
	}
	return handler.Templ(pageView(e.cfg, d.Admitted(), pr.parts))
}
