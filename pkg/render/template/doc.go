// Package template defines the renderer-agnostic template contract used by
// shell renderers, plus adapters that satisfy it. The interface keeps page
// chrome swappable: the vanilla renderer ships a pongo2-backed engine, and
// hosts can inject their own implementation through renderer options.
package template
