package formrepeat

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formrepeat/pkg/blueprint"
	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/renderers/jsonform"
	"github.com/goliatone/go-formrepeat/pkg/renderers/vanilla"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
	"github.com/goliatone/go-formrepeat/pkg/scaffold"
)

const defaultRendererName = "vanilla"

// EngineOption customises the engine configuration.
type EngineOption func(*Engine)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) EngineOption {
	return func(e *Engine) {
		e.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) EngineOption {
	return func(e *Engine) {
		e.defaultRenderer = name
	}
}

// WithScaffoldOptions sets the options applied when a request scaffolds its
// container from an OpenAPI document.
func WithScaffoldOptions(options ...scaffold.Option) EngineOption {
	return func(e *Engine) {
		e.scaffoldOptions = append(e.scaffoldOptions, options...)
	}
}

// Engine coordinates the pipeline from seed container source to rendered
// output. It applies sensible defaults (vanilla renderer, embedded
// templates) while remaining open to dependency injection.
type Engine struct {
	registry        *render.Registry
	defaultRenderer string
	scaffoldOptions []scaffold.Option
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Engine applying any provided options. A missing
// registry is initialised with the built-in renderers so callers can start
// with a single constructor call.
func New(options ...EngineOption) *Engine {
	e := &Engine{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.applyDefaults()
	return e
}

func (e *Engine) applyDefaults() {
	e.defaultsApplied = true

	if e.registry == nil {
		registry := render.NewRegistry()

		vanillaRenderer, err := vanilla.New()
		if err != nil {
			e.initialiseErr = fmt.Errorf("formrepeat: initialise vanilla renderer: %w", err)
			return
		}
		if err := registry.Register(vanillaRenderer); err != nil {
			e.initialiseErr = err
			return
		}
		jsonRenderer, err := jsonform.New()
		if err != nil {
			e.initialiseErr = fmt.Errorf("formrepeat: initialise jsonform renderer: %w", err)
			return
		}
		if err := registry.Register(jsonRenderer); err != nil {
			e.initialiseErr = err
			return
		}
		e.registry = registry
	}
}

// Request describes the inputs required to render a replicating surface.
// Exactly one of Container, Markup, Blueprint, or OpenAPI must be set.
type Request struct {
	// Container supplies a pre-built seed container directly.
	Container *dom.Node

	// Markup is an HTML fragment holding one literal instance of the
	// fields to replicate.
	Markup string

	// Blueprint is a YAML or JSON blueprint document.
	Blueprint []byte

	// OpenAPI is an OpenAPI document payload; OperationID selects the
	// operation whose request schema seeds the container.
	OpenAPI     []byte
	OperationID string

	// Seed becomes the template's prefix seed.
	Seed string

	// AddCount activates the add affordance this many times after the
	// initial instance, so the output holds AddCount+1 instances.
	AddCount int

	// Renderer names the renderer to use. If empty, the engine falls back
	// to the configured default renderer.
	Renderer string

	// FormOptions are threaded into the replication setup.
	FormOptions []replicate.OptionFn

	// RenderOptions carries per-request instructions renderers surface.
	RenderOptions render.RenderOptions
}

// Generate executes the container-resolution → replication → renderer
// sequence and returns the rendered bytes.
func (e *Engine) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("formrepeat: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.initialiseErr; err != nil {
		return nil, err
	}
	if !e.defaultsApplied {
		e.applyDefaults()
		if err := e.initialiseErr; err != nil {
			return nil, err
		}
	}

	form, err := e.assemble(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := e.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, form, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("formrepeat: render output: %w", err)
	}
	return output, nil
}

// Assemble resolves the request's seed container and builds the replicating
// form, activating the add affordance AddCount times.
func (e *Engine) Assemble(ctx context.Context, req Request) (*Form, error) {
	return e.assemble(ctx, req)
}

func (e *Engine) assemble(ctx context.Context, req Request) (*Form, error) {
	container, fns, err := e.resolveContainer(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.Seed != "" {
		fns = append(fns, replicate.WithPrefixSeed(req.Seed))
	}
	fns = append(fns, req.FormOptions...)

	form, err := replicate.New(container, fns...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < req.AddCount; i++ {
		if _, err := form.Add(); err != nil {
			return nil, fmt.Errorf("formrepeat: add instance %d: %w", i+1, err)
		}
	}
	return form, nil
}

func (e *Engine) resolveContainer(ctx context.Context, req Request) (*dom.Node, []replicate.OptionFn, error) {
	switch {
	case req.Container != nil:
		return req.Container, nil, nil

	case req.Markup != "":
		nodes, err := dom.ParseFragment(req.Markup)
		if err != nil {
			return nil, nil, err
		}
		container := dom.NewElement("div")
		for _, n := range nodes {
			container.AppendChild(n)
		}
		return container, nil, nil

	case len(req.Blueprint) > 0:
		bp, err := blueprint.Parse(req.Blueprint)
		if err != nil {
			return nil, nil, err
		}
		return bp.BuildContainer(), bp.FormOptions(), nil

	case len(req.OpenAPI) > 0:
		container, err := scaffold.FromData(ctx, req.OpenAPI, req.OperationID, e.scaffoldOptions...)
		if err != nil {
			return nil, nil, err
		}
		return container, nil, nil

	default:
		return nil, nil, errors.New("formrepeat: container, markup, blueprint, or openapi source is required")
	}
}

func (e *Engine) rendererFor(name string) (render.Renderer, error) {
	if e.registry == nil {
		return nil, errors.New("formrepeat: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = e.defaultRenderer
	}

	if target != "" {
		renderer, err := e.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("formrepeat: renderer %q: %w", name, err)
		}
	}

	names := e.registry.List()
	if len(names) == 0 {
		return nil, errors.New("formrepeat: no renderers registered")
	}
	renderer, err := e.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("formrepeat: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}
