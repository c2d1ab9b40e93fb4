package replicate

import "github.com/goliatone/go-formrepeat/pkg/dom"

// Clone deep-copies nodes in order, rewriting identifying attributes with
// prefix. The input is never mutated and every returned node is newly
// allocated, so the same template can be cloned arbitrarily many times.
//
// Rewriting follows a three-way classification of element tags:
//
//   - form controls (datalist, input, optgroup, select, textarea): id and
//     name are set to prefix + original value unconditionally, so a control
//     without an id or name still receives a prefix-only identifier;
//   - label: the for attribute is set to prefix + original value,
//     unconditionally, keeping label associations inside the copy;
//   - anything else: id and name are prefixed only when the original value
//     is non-empty; elements carrying neither pass through unchanged.
//
// Text nodes are copied verbatim. Malformed input, such as a text node
// with children, is a contract violation by the caller and is not guarded
// against here.
func Clone(nodes []*dom.Node, prefix string) []*dom.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*dom.Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n, prefix)
	}
	return out
}

func cloneNode(n *dom.Node, prefix string) *dom.Node {
	if n.Kind == dom.Text {
		return dom.NewText(n.Text)
	}

	clone := dom.NewElement(n.Tag)
	if n.Attrs != nil {
		clone.Attrs = make([]dom.Attr, len(n.Attrs))
		copy(clone.Attrs, n.Attrs)
	}

	switch {
	case dom.IsFormControl(n.Tag):
		clone.SetAttr("name", prefix+n.Attr("name"))
		clone.SetAttr("id", prefix+n.Attr("id"))
	case n.Tag == "label":
		clone.SetAttr("for", prefix+n.Attr("for"))
	default:
		if id := n.Attr("id"); id != "" {
			clone.SetAttr("id", prefix+id)
		}
		if name := n.Attr("name"); name != "" {
			clone.SetAttr("name", prefix+name)
		}
	}

	for _, c := range n.Children {
		clone.AppendChild(cloneNode(c, prefix))
	}
	return clone
}
