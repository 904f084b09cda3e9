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

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	component templ.Component
	options   []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return t.RenderContext(NewContext(w, r))
}

func (t templResponse) RenderContext(ctx Context) error {
	if IsDataStar(ctx.Request()) {
		return ctx.SSE().PatchElementTempl(t.component, t.options...)
	}
	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(ctx, w)
}

// Templ renders a component as an HTML page for regular requests and as an
// element patch for DataStar requests.
//
//	return handler.Templ(views.CodeBox(code), handler.WithTarget("#code"))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}
