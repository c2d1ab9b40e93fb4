package jsonform_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/renderers/jsonform"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
	"github.com/goliatone/go-formrepeat/pkg/testsupport"
)

type surfacePayload struct {
	Seed        string `json:"seed"`
	Iterations  int    `json:"iterations"`
	AddEndpoint string `json:"addEndpoint"`
	Instances   []struct {
		Index    int    `json:"index"`
		Prefix   string `json:"prefix"`
		Markup   string `json:"markup"`
		Controls []struct {
			Tag  string `json:"tag"`
			ID   string `json:"id"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"controls"`
	} `json:"instances"`
	Theme *struct {
		Name         string `json:"name"`
		CSSVarsStyle string `json:"cssVarsStyle"`
	} `json:"theme"`
}

func TestRenderer_DescribesInstances(t *testing.T) {
	markup := `<div id="addresses"><label for="email">Email</label><input id="email" name="email" type="email"></div>`
	container := dom.FirstElement(testsupport.MustParseFragment(t, markup))

	form, err := replicate.New(container, replicate.WithPrefixSeed("addr"))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	if _, err := form.Add(); err != nil {
		t.Fatalf("add: %v", err)
	}

	renderer, err := jsonform.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), form, render.RenderOptions{
		AddEndpoint: "/forms/addresses/add",
		Theme: &theme.RendererConfig{
			Theme:   "acme",
			CSSVars: map[string]string{"--brand": "#123456"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var payload surfacePayload
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if payload.Seed != "addr" || payload.Iterations != 2 {
		t.Fatalf("unexpected surface header: %+v", payload)
	}
	if payload.AddEndpoint != "/forms/addresses/add" {
		t.Fatalf("unexpected add endpoint: %q", payload.AddEndpoint)
	}
	if len(payload.Instances) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(payload.Instances))
	}
	if payload.Instances[0].Prefix != "addr_0-" || payload.Instances[1].Prefix != "addr_1-" {
		t.Fatalf("unexpected prefixes: %q %q", payload.Instances[0].Prefix, payload.Instances[1].Prefix)
	}
	if !strings.Contains(payload.Instances[1].Markup, `name="addr_1-email"`) {
		t.Fatalf("expected instance markup to carry prefixed name: %s", payload.Instances[1].Markup)
	}

	controls := payload.Instances[0].Controls
	if len(controls) != 1 || controls[0].Tag != "input" || controls[0].Name != "addr_0-email" {
		t.Fatalf("unexpected control inventory: %+v", controls)
	}
	if payload.Theme == nil || payload.Theme.Name != "acme" || !strings.Contains(payload.Theme.CSSVarsStyle, "--brand") {
		t.Fatalf("unexpected theme document: %+v", payload.Theme)
	}
}

func TestRenderer_NilForm(t *testing.T) {
	renderer, err := jsonform.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(testsupport.Context(), nil, render.RenderOptions{}); err != render.ErrNilForm {
		t.Fatalf("expected ErrNilForm, got %v", err)
	}
}

func TestRenderer_NilContext(t *testing.T) {
	container := dom.NewElement("div")
	form, err := replicate.New(container)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	renderer, err := jsonform.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var nilCtx context.Context
	if _, err := renderer.Render(nilCtx, form, render.RenderOptions{}); !errors.Is(err, render.ErrNilContext) {
		t.Fatalf("expected ErrNilContext, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, form, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderer_EmptySurface(t *testing.T) {
	container := dom.NewElement("div")
	form, err := replicate.New(container)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	renderer, err := jsonform.New(jsonform.WithIndent())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var payload surfacePayload
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(payload.Instances) != 1 || payload.Instances[0].Prefix != "0-" {
		t.Fatalf("expected the initial bare instance, got %+v", payload.Instances)
	}
	if len(payload.Instances[0].Controls) != 0 {
		t.Fatalf("expected no controls in empty template instance: %+v", payload.Instances[0].Controls)
	}
}
