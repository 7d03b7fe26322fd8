package explorer

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gutendex/explorer/pkg/gate"
)

// Element IDs shared by the views and the results endpoint.
const (
	ContainerID = "api-explorer"
	ResultsID   = "ax-results"
	URLInputID  = "ax-url"
)

// ResultsPath is the endpoint Datastar calls with the url signal.
const ResultsPath = "/explorer/results"

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

func pageView(cfg Config, admitted bool, body []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(cfg.Title), ` API explorer</title>`,
		); err != nil {
			return err
		}
		if admitted {
			if err := write(w, `<script type="module" src="`, templ.EscapeString(cfg.DatastarScript), `"></script>`); err != nil {
				return err
			}
		}
		if err := write(w, `</head><body><main class="container"><div id="`, ContainerID, `">`); err != nil {
			return err
		}
		for _, c := range body {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return write(w, `</div></main></body></html>`)
	})
}

func fallbackView(notice string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<p class="lead m-0 text-center">`, templ.EscapeString(notice), `</p>`)
	})
}

// moduleView wraps a follow-on module's markup, naming its script.
func moduleView(m gate.Module, inner templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<div data-module="`, templ.EscapeString(m.Path()), `">`); err != nil {
			return err
		}
		if err := inner.Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</div>`)
	})
}

func resultsView(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<pre id="`, ResultsID, `">`, templ.EscapeString(text), `</pre>`)
	})
}

func formView() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<form id="ax-form" class="input-group" onsubmit="return false">`,
			`<input id="`, URLInputID, `" class="form-control" type="url" placeholder="https://gutendex.com/books/" data-bind-url>`,
			`<button class="btn btn-primary" type="submit" data-on-click="@get('`, ResultsPath, `')">Go</button>`,
			`</form>`,
		)
	})
}
