package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers use to customise their
// output without touching the replication pipeline itself.
type RenderOptions struct {
	// Theme carries the resolved go-theme configuration: chrome class
	// tokens, CSS variables, and asset URL resolution. Nil means the
	// renderer's built-in defaults.
	Theme *theme.RendererConfig
	// Title is the page heading used by shell renderers.
	Title string
	// Lang sets the document language attribute on full-page output.
	Lang string
	// Values pre-populates rendered controls, keyed by the prefixed
	// control name (for example "0-email" or "addr_1-city").
	Values map[string]string
	// AddEndpoint, when set, is stamped on the add affordance as a
	// data-endpoint attribute so client-side wiring can reach the add
	// endpoint exposed by the repeatform component.
	AddEndpoint string
	// OmitControls drops the controls region from the output for hosts
	// that present their own affordance.
	OmitControls bool
	// ChromeClasses replaces the renderer's default class per chrome
	// slot. Empty fields keep the default.
	ChromeClasses *ChromeClasses
}

// ChromeClasses names the CSS class applied to each structural slot of the
// rendered surface. A non-empty field replaces the renderer default for that
// slot rather than appending to it.
type ChromeClasses struct {
	Surface  string
	Instance string
	Controls string
	Add      string
}

// CloneValues returns a defensive copy of the Values map.
func (o RenderOptions) CloneValues() map[string]string {
	if len(o.Values) == 0 {
		return nil
	}
	out := make(map[string]string, len(o.Values))
	for k, v := range o.Values {
		out[k] = v
	}
	return out
}
