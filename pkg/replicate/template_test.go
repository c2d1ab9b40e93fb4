package replicate_test

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

func seededContainer() *dom.Node {
	container := dom.NewElement("div", dom.Attr{Key: "id", Value: "addresses"})
	for _, n := range addressTemplate() {
		container.AppendChild(n)
	}
	return container
}

func TestNewTemplate_DetachesContainerChildren(t *testing.T) {
	container := seededContainer()
	if len(container.Children) == 0 {
		t.Fatalf("container should start populated")
	}

	replicate.NewTemplate(container)

	if len(container.Children) != 0 {
		t.Fatalf("capture should empty the container, got %d children", len(container.Children))
	}
}

func TestNewTemplate_CaptureIsACopy(t *testing.T) {
	container := seededContainer()
	original := container.Children[0]

	tpl := replicate.NewTemplate(container)

	// Mutating the detached original must not leak into later instances.
	original.SetAttr("class", "mutated")
	instance := tpl.CreateInstance()
	row := instance.Children[0]
	if got := row.Attr("class"); got != "row" {
		t.Fatalf("template should own an independent copy, got class %q", got)
	}
}

func TestTemplate_SeededPrefixSequence(t *testing.T) {
	tpl := replicate.NewTemplate(seededContainer(), replicate.WithPrefixSeed("addr"))

	for i, want := range []string{"addr_0-email", "addr_1-email", "addr_2-email"} {
		instance := tpl.CreateInstance()
		input := instance.FindByID(want)
		if input == nil || input.Tag != "input" {
			t.Fatalf("instance %d: expected input with id %q, got %#v", i, want, instance)
		}
		if got := input.Attr("name"); got != want {
			t.Fatalf("instance %d: name mismatch: %q", i, got)
		}
	}
	if got := tpl.IterationCount(); got != 3 {
		t.Fatalf("expected iteration count 3, got %d", got)
	}
}

func TestTemplate_UnseededPrefixSequence(t *testing.T) {
	tpl := replicate.NewTemplate(seededContainer())

	for i := 0; i < 3; i++ {
		want := fmt.Sprintf("%d-email", i)
		instance := tpl.CreateInstance()
		if instance.FindByID(want) == nil {
			t.Fatalf("instance %d: expected id %q, got %s", i, want, mustRender(t, instance))
		}
	}
}

func TestTemplate_IndependentCounters(t *testing.T) {
	a := replicate.NewTemplate(seededContainer(), replicate.WithPrefixSeed("a"))
	b := replicate.NewTemplate(seededContainer(), replicate.WithPrefixSeed("b"))

	a.CreateInstance()
	a.CreateInstance()
	first := b.CreateInstance()

	if first.FindByID("b_0-email") == nil {
		t.Fatalf("templates must not share counters, got %s", mustRender(t, first))
	}
	if a.IterationCount() != 2 || b.IterationCount() != 1 {
		t.Fatalf("counter mismatch: a=%d b=%d", a.IterationCount(), b.IterationCount())
	}
}

func TestTemplate_WrapperShape(t *testing.T) {
	tpl := replicate.NewTemplate(seededContainer(),
		replicate.WithWrapperTag("fieldset"),
		replicate.WithInstanceClass("entry"),
	)

	instance := tpl.CreateInstance()
	if instance.Tag != "fieldset" {
		t.Fatalf("wrapper tag mismatch: %q", instance.Tag)
	}
	if got := instance.Attr("class"); got != "entry" {
		t.Fatalf("wrapper class mismatch: %q", got)
	}
	if len(instance.Children) != 1 {
		t.Fatalf("wrapper should hold the cloned row, got %d children", len(instance.Children))
	}
}

func TestTemplate_MultiNodeTemplateYieldsOneWrapper(t *testing.T) {
	container := dom.NewElement("div")
	container.AppendChild(dom.NewElement("label", dom.Attr{Key: "for", Value: "city"}))
	container.AppendChild(dom.NewElement("input", dom.Attr{Key: "id", Value: "city"}, dom.Attr{Key: "name", Value: "city"}))
	container.AppendChild(dom.NewText("hint"))

	tpl := replicate.NewTemplate(container)
	instance := tpl.CreateInstance()

	if len(instance.Children) != 3 {
		t.Fatalf("expected all template nodes inside one wrapper, got %d", len(instance.Children))
	}
	if instance.Children[0].Attr("for") != "0-city" {
		t.Fatalf("label not rewritten: %#v", instance.Children[0].Attrs)
	}
	if instance.Children[2].Text != "hint" {
		t.Fatalf("text child not preserved: %#v", instance.Children[2])
	}
}

func TestTemplate_EmptyTemplate(t *testing.T) {
	tpl := replicate.NewTemplate(nil)
	instance := tpl.CreateInstance()
	if instance == nil || len(instance.Children) != 0 {
		t.Fatalf("empty template should yield a bare wrapper, got %#v", instance)
	}
	if tpl.IterationCount() != 1 {
		t.Fatalf("counter should advance even for empty templates")
	}
}

func mustRender(t *testing.T, nodes ...*dom.Node) string {
	t.Helper()
	out, err := dom.RenderString(nodes...)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}
