package vanilla_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/renderers/vanilla"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
	"github.com/goliatone/go-formrepeat/pkg/testsupport"
)

const addressMarkup = `<div id="addresses"><label for="email">Email</label><input id="email" name="email" type="email"></div>`

func newAddressForm(t *testing.T) *replicate.Form {
	t.Helper()

	nodes := testsupport.MustParseFragment(t, addressMarkup)
	container := dom.FirstElement(nodes)
	if container == nil {
		t.Fatal("expected a container element")
	}

	form, err := replicate.New(container)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return form
}

func TestRenderer_RenderContract(t *testing.T) {
	form := newAddressForm(t)

	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), form, render.RenderOptions{
		Theme: testThemeConfig(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "surface_output.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_RenderWithDefaultStyles(t *testing.T) {
	form := newAddressForm(t)

	renderer, err := vanilla.New(vanilla.WithDefaultStyles(), vanilla.WithStylesheet("/assets/custom.css"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "surface_output_with_styles.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("styled output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, out ...io.Writer) (string, error) {
			if name == "templates/surface.tmpl" {
				return "custom-output", nil
			}
			return "", nil
		},
	}

	renderer, err := vanilla.New(vanilla.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(testsupport.Context(), newAddressForm(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "custom-output" {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatalf("expected render template to be called")
	}
}

func TestRenderer_RenderPrefilledForm(t *testing.T) {
	markup := `<div id="contacts">` +
		`<label for="kind">Kind</label>` +
		`<select id="kind" name="kind"><option value="home">Home</option><option value="work">Work</option></select>` +
		`<textarea id="notes" name="notes"></textarea>` +
		`<input id="email" name="email" type="email">` +
		`</div>`

	container := dom.FirstElement(testsupport.MustParseFragment(t, markup))
	form, err := replicate.New(container)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), form, render.RenderOptions{
		Values: map[string]string{
			"0-kind":  "work",
			"0-notes": "Call first",
			"0-email": "ada@example.com",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	got := string(output)
	for _, want := range []string{
		`<option value="work" selected="">Work</option>`,
		`<textarea id="0-notes" name="0-notes">Call first</textarea>`,
		`<input id="0-email" name="0-email" type="email" value="ada@example.com">`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, `<option value="home" selected=""`) {
		t.Fatalf("expected home option to stay unselected, got:\n%s", got)
	}
}

func TestRenderer_NilForm(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := renderer.Render(testsupport.Context(), nil, render.RenderOptions{}); err != render.ErrNilForm {
		t.Fatalf("expected ErrNilForm, got %v", err)
	}
}

type stubTemplateRenderer struct {
	called             bool
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(data any) error {
	return nil
}

func testThemeConfig() *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		CSSVars: map[string]string{
			"--brand": "#123456",
		},
		AssetURL: func(key string) string {
			if key == "" {
				return ""
			}
			return "/themes/acme/" + key
		},
	}
}
