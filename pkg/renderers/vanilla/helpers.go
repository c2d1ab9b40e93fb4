package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

type chromeSlot int

const (
	slotSurface chromeSlot = iota
	slotInstance
	slotControls
	slotAdd
)

// surfaceSnapshot clones the live container and applies presentation-only
// decorations. Instance wrappers are every container child other than the
// controls region.
func surfaceSnapshot(form *replicate.Form, opts render.RenderOptions) *dom.Node {
	container := form.Container()
	controls := form.Surface().Controls()

	snapshot := dom.NewElement(container.Tag)
	if container.Attrs != nil {
		snapshot.Attrs = make([]dom.Attr, len(container.Attrs))
		copy(snapshot.Attrs, container.Attrs)
	}

	for _, child := range container.Children {
		if child == controls {
			if opts.OmitControls {
				continue
			}
			clone := child.Clone()
			decorateControls(clone, opts)
			snapshot.AppendChild(clone)
			continue
		}
		clone := child.Clone()
		if clone.Kind == dom.Element {
			addClass(clone, chromeFor(opts, slotInstance))
		}
		snapshot.AppendChild(clone)
	}

	addClass(snapshot, chromeFor(opts, slotSurface))
	if opts.Lang != "" {
		snapshot.SetAttr("lang", opts.Lang)
	}
	if len(opts.Values) > 0 {
		applyValues(snapshot, opts.Values)
	}
	return snapshot
}

func decorateControls(controls *dom.Node, opts render.RenderOptions) {
	addClass(controls, chromeFor(opts, slotControls))

	button := findAddButton(controls)
	if button == nil {
		return
	}
	addClass(button, chromeFor(opts, slotAdd))
	if opts.AddEndpoint != "" {
		button.SetAttr("data-endpoint", opts.AddEndpoint)
	}
}

func findAddButton(controls *dom.Node) *dom.Node {
	var button *dom.Node
	dom.Walk(controls, func(n *dom.Node) {
		if button == nil && n.Kind == dom.Element && n.Tag == "button" {
			button = n
		}
	})
	return button
}

// chromeFor resolves the class for a chrome slot. A non-empty override from
// RenderOptions replaces the default rather than appending to it.
func chromeFor(opts render.RenderOptions, slot chromeSlot) string {
	overrides := opts.ChromeClasses
	switch slot {
	case slotSurface:
		if overrides != nil && overrides.Surface != "" {
			return overrides.Surface
		}
		return DefaultSurfaceClass
	case slotInstance:
		if overrides != nil && overrides.Instance != "" {
			return overrides.Instance
		}
		return DefaultInstanceClass
	case slotControls:
		if overrides != nil && overrides.Controls != "" {
			return overrides.Controls
		}
		return DefaultControlsClass
	case slotAdd:
		if overrides != nil && overrides.Add != "" {
			return overrides.Add
		}
		return DefaultAddClass
	default:
		return ""
	}
}

// addClass appends class to the node's class list, skipping duplicates.
func addClass(n *dom.Node, class string) {
	class = strings.TrimSpace(class)
	if class == "" {
		return
	}
	existing := n.Attr("class")
	if existing == "" {
		n.SetAttr("class", class)
		return
	}
	for _, token := range strings.Fields(existing) {
		if token == class {
			return
		}
	}
	n.SetAttr("class", existing+" "+class)
}

// applyValues prefills controls whose prefixed name has an entry in values.
func applyValues(root *dom.Node, values map[string]string) {
	dom.Walk(root, func(n *dom.Node) {
		if n.Kind != dom.Element {
			return
		}
		value, ok := values[n.Attr("name")]
		if !ok {
			return
		}
		switch n.Tag {
		case "input":
			applyInputValue(n, value)
		case "textarea":
			n.Children = []*dom.Node{dom.NewText(value)}
		case "select":
			applySelectValue(n, value)
		}
	})
}

func applyInputValue(input *dom.Node, value string) {
	switch input.Attr("type") {
	case "checkbox", "radio":
		if input.Attr("value") == value {
			input.SetAttr("checked", "")
		} else {
			input.DelAttr("checked")
		}
	default:
		input.SetAttr("value", value)
	}
}

func applySelectValue(sel *dom.Node, value string) {
	dom.Walk(sel, func(n *dom.Node) {
		if n.Kind != dom.Element || n.Tag != "option" {
			return
		}
		if optionValue(n) == value {
			n.SetAttr("selected", "")
		} else {
			n.DelAttr("selected")
		}
	})
}

func optionValue(option *dom.Node) string {
	if option.HasAttr("value") {
		return option.Attr("value")
	}
	var text strings.Builder
	for _, child := range option.Children {
		if child.Kind == dom.Text {
			text.WriteString(child.Text)
		}
	}
	return strings.TrimSpace(text.String())
}

// cssVarsBlock renders the theme's CSS custom properties as a :root rule,
// sorted for stable output. Empty when no theme or no vars are configured.
func cssVarsBlock(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root{")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(":")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";")
	}
	b.WriteString("}")
	return b.String()
}

// themeStylesheets resolves the renderer stylesheet through the theme's
// asset URL hook when one is configured.
func themeStylesheets(cfg *theme.RendererConfig) []string {
	if cfg == nil || cfg.AssetURL == nil {
		return nil
	}
	href := cfg.AssetURL(StylesheetName)
	if href == "" {
		return nil
	}
	return []string{href}
}
