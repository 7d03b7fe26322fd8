package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector of the element to patch.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the target.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	component templ.Component
	status    int
	options   []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders component as an HTML page, or as a single element patch for
// Datastar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplWithStatus is Templ with an explicit status code for HTML responses.
func TemplWithStatus(status int, component templ.Component) Response {
	return templResponse{component: component, status: status}
}
