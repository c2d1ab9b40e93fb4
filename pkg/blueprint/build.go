package blueprint

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

// BuildContainer materializes the blueprint as a live container holding one
// literal instance of the described fields: per field a wrapper element with
// a label (for-target pointing at the control) followed by the control
// itself, ids and names unprefixed. The result is what the replication
// engine expects to capture at setup time.
func (bp Blueprint) BuildContainer() *dom.Node {
	container := dom.NewElement("div")
	for _, f := range bp.Fields {
		container.AppendChild(buildField(f))
	}
	return container
}

// FormOptions translates the blueprint's surface settings into replication
// options, so callers can thread seed and add label through in one call:
//
//	form, err := replicate.New(bp.BuildContainer(), bp.FormOptions()...)
func (bp Blueprint) FormOptions() []replicate.OptionFn {
	var fns []replicate.OptionFn
	if bp.Seed != "" {
		fns = append(fns, replicate.WithPrefixSeed(bp.Seed))
	}
	if bp.AddLabel != "" {
		fns = append(fns, replicate.WithAddLabel(bp.AddLabel))
	}
	return fns
}

func buildField(f Field) *dom.Node {
	name := strings.TrimSpace(f.Name)

	wrapper := dom.NewElement("div", dom.Attr{Key: "class", Value: "field"})

	label := dom.NewElement("label", dom.Attr{Key: "for", Value: name})
	text := f.Label
	if text == "" {
		text = name
	}
	label.AppendChild(dom.NewText(text))
	wrapper.AppendChild(label)
	wrapper.AppendChild(buildControl(f, name))

	return wrapper
}

func buildControl(f Field, name string) *dom.Node {
	switch f.Kind {
	case KindSelect:
		return buildSelect(f, name)
	case KindTextArea:
		return buildTextArea(f, name)
	default:
		return buildInput(f, name)
	}
}

func buildInput(f Field, name string) *dom.Node {
	kind := f.Kind
	if kind == "" {
		kind = KindText
	}
	input := dom.NewElement("input",
		dom.Attr{Key: "type", Value: kind},
		dom.Attr{Key: "id", Value: name},
		dom.Attr{Key: "name", Value: name},
	)
	if f.Placeholder != "" {
		input.SetAttr("placeholder", f.Placeholder)
	}
	if f.Default != "" {
		if kind == KindCheckbox {
			input.SetAttr("checked", "checked")
		} else {
			input.SetAttr("value", f.Default)
		}
	}
	if f.Required {
		input.SetAttr("required", "required")
	}
	return input
}

func buildSelect(f Field, name string) *dom.Node {
	sel := dom.NewElement("select",
		dom.Attr{Key: "id", Value: name},
		dom.Attr{Key: "name", Value: name},
	)
	if f.Required {
		sel.SetAttr("required", "required")
	}
	for _, choice := range f.Options {
		opt := dom.NewElement("option", dom.Attr{Key: "value", Value: choice.Value})
		if choice.Value == f.Default && f.Default != "" {
			opt.SetAttr("selected", "selected")
		}
		text := choice.Label
		if text == "" {
			text = choice.Value
		}
		opt.AppendChild(dom.NewText(text))
		sel.AppendChild(opt)
	}
	return sel
}

func buildTextArea(f Field, name string) *dom.Node {
	area := dom.NewElement("textarea",
		dom.Attr{Key: "id", Value: name},
		dom.Attr{Key: "name", Value: name},
	)
	if f.Rows > 0 {
		area.SetAttr("rows", strconv.Itoa(f.Rows))
	}
	if f.Placeholder != "" {
		area.SetAttr("placeholder", f.Placeholder)
	}
	if f.Required {
		area.SetAttr("required", "required")
	}
	if f.Default != "" {
		area.AppendChild(dom.NewText(f.Default))
	}
	return area
}
