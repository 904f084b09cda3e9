package handler

import (
	"encoding/json"

	"github.com/a-h/templ"
)

// StreamContext extends Context with methods pushing DataStar events over
// the request's event stream.
type StreamContext interface {
	Context

	// SendComponent patches a rendered component into the page.
	SendComponent(component templ.Component, opts ...TemplOption) error
	// SendSignals merges values into the frontend signals.
	SendSignals(signals map[string]any) error
}

type streamContext struct {
	Context
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	return c.SSE().PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.SSE().PatchSignals(data)
}
