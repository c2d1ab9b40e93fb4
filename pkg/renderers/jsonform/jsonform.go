package jsonform

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

// Renderer serializes the replicated surface as a structured JSON document
// for hosts that hydrate their own client-side UI instead of consuming
// server-rendered markup.
type Renderer struct {
	indent bool
}

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithIndent emits indented JSON for debugging and fixtures.
func WithIndent() Option {
	return func(r *Renderer) {
		r.indent = true
	}
}

// New constructs a JSON renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "application/json"
}

type surfaceDocument struct {
	Seed        string             `json:"seed,omitempty"`
	Iterations  int                `json:"iterations"`
	AddEndpoint string             `json:"addEndpoint,omitempty"`
	Instances   []instanceDocument `json:"instances"`
	Theme       *themeDocument     `json:"theme,omitempty"`
}

type instanceDocument struct {
	Index    int               `json:"index"`
	Prefix   string            `json:"prefix"`
	Markup   string            `json:"markup"`
	Controls []controlDocument `json:"controls"`
}

type controlDocument struct {
	Tag   string `json:"tag"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
}

type themeDocument struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle string            `json:"cssVarsStyle,omitempty"`
}

// Render describes the live surface: one entry per instance in append
// order, each with its identifier prefix, serialized markup, and control
// inventory. Instances only ever append, so the position in the list is
// the iteration the instance was created at.
func (r *Renderer) Render(ctx context.Context, form *replicate.Form, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, render.ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, render.ErrNilForm
	}

	seed := form.Template().PrefixSeed()
	doc := surfaceDocument{
		Seed:        seed,
		Iterations:  form.Template().IterationCount(),
		AddEndpoint: options.AddEndpoint,
		Instances:   []instanceDocument{},
		Theme:       buildThemeDocument(options.Theme),
	}

	for i, wrapper := range form.Instances() {
		markup, err := dom.RenderString(wrapper)
		if err != nil {
			return nil, fmt.Errorf("json renderer: serialize instance %d: %w", i, err)
		}
		doc.Instances = append(doc.Instances, instanceDocument{
			Index:    i,
			Prefix:   replicate.InstancePrefix(seed, i),
			Markup:   markup,
			Controls: controlInventory(wrapper),
		})
	}

	if r.indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func controlInventory(wrapper *dom.Node) []controlDocument {
	out := []controlDocument{}
	dom.Walk(wrapper, func(n *dom.Node) {
		if n.Kind != dom.Element || !dom.IsFormControl(n.Tag) {
			return
		}
		out = append(out, controlDocument{
			Tag:   n.Tag,
			ID:    n.Attr("id"),
			Name:  n.Attr("name"),
			Type:  n.Attr("type"),
			Value: n.Attr("value"),
		})
	})
	return out
}

func buildThemeDocument(cfg *theme.RendererConfig) *themeDocument {
	if cfg == nil {
		return nil
	}
	doc := &themeDocument{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  copyStringMap(cfg.Tokens),
		CSSVars: copyStringMap(cfg.CSSVars),
	}
	doc.CSSVarsStyle = cssVarsStyle(doc.CSSVars)
	return doc
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
