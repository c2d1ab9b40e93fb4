package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	rendertemplate "github.com/goliatone/go-formrepeat/pkg/render/template"
	gotemplate "github.com/goliatone/go-formrepeat/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
	inlineRuntime    bool
	stylesheets      []string
	scripts          []string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithDefaultStyles inlines the embedded stylesheet into the output.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithStylesheet references an external stylesheet by href.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href == "" {
			return
		}
		cfg.stylesheets = append(cfg.stylesheets, href)
	}
}

// WithScript references an external script by src.
func WithScript(src string) Option {
	return func(cfg *config) {
		if src == "" {
			return
		}
		cfg.scripts = append(cfg.scripts, src)
	}
}

// WithInlineRuntime inlines the embedded add-affordance runtime script into
// the output, so the rendered surface is interactive without serving the
// asset bundle separately.
func WithInlineRuntime() Option {
	return func(cfg *config) {
		cfg.inlineRuntime = true
	}
}

type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	inlineStyles  bool
	inlineRuntime bool
	stylesheets   []string
	scripts       []string
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		inlineStyles:  cfg.inlineStyles,
		inlineRuntime: cfg.inlineRuntime,
		stylesheets:   cfg.stylesheets,
		scripts:       cfg.scripts,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render serializes a snapshot of the form's surface: a clone of the live
// container with chrome classes, prefill values, and the add-affordance
// decorations applied. The live form is never mutated.
func (r *Renderer) Render(ctx context.Context, form *replicate.Form, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, render.ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if form == nil {
		return nil, render.ErrNilForm
	}

	snapshot := surfaceSnapshot(form, options)
	markup, err := dom.RenderString(snapshot)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: serialize surface: %w", err)
	}

	var inlineCSS string
	if r.inlineStyles {
		inlineCSS = defaultStylesheet()
	}
	var inlineJS string
	if r.inlineRuntime {
		inlineJS = runtimeScript()
	}

	stylesheets := themeStylesheets(options.Theme)
	stylesheets = append(stylesheets, r.stylesheets...)

	result, err := r.templates.RenderTemplate("templates/surface.tmpl", map[string]any{
		"title":       options.Title,
		"markup":      markup,
		"css_vars":    cssVarsBlock(options.Theme),
		"inline_css":  inlineCSS,
		"inline_js":   inlineJS,
		"stylesheets": stylesheets,
		"scripts":     r.scripts,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
