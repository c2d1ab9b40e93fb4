// Package formrepeat assembles replicating form surfaces: a captured
// template subtree is cloned per activation with disjoint control
// identifiers, so each replica submits as an independent record. The root
// package is a thin facade over pkg/replicate (the cloning core),
// pkg/blueprint and pkg/scaffold (seed container sources), and pkg/render
// (output).
package formrepeat

import (
	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

// Form aliases the assembled replicating form exported by pkg/replicate.
type Form = replicate.Form

// FormOption aliases the replication option type so callers can configure
// Build without importing pkg/replicate directly.
type FormOption = replicate.OptionFn

// RenderOptions carries per-request settings renderers consume.
type RenderOptions = render.RenderOptions

// Re-exported replication options for the common configuration surface.
var (
	WithPrefixSeed = replicate.WithPrefixSeed
	WithWrapperTag = replicate.WithWrapperTag
	WithAddLabel   = replicate.WithAddLabel
)

// Build is the setup entry point: it detaches container's current children
// into a replication template, builds a surface with the add affordance
// around the now-empty container, binds the affordance, and appends one
// initial instance. The returned form drives further additions via Add.
func Build(container *dom.Node, fns ...FormOption) (*Form, error) {
	return replicate.New(container, fns...)
}

// BuildFromMarkup parses an HTML fragment holding one literal instance of
// the fields to replicate, wraps it in a fresh container, and assembles the
// form around it.
func BuildFromMarkup(markup string, fns ...FormOption) (*Form, error) {
	nodes, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	container := dom.NewElement("div")
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return replicate.New(container, fns...)
}
