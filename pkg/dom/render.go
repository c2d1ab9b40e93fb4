package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes the HTML serialization of nodes to w in order. Escaping
// and void-element handling follow the html package's serializer.
func RenderHTML(w io.Writer, nodes ...*Node) error {
	for _, n := range nodes {
		if err := html.Render(w, toHTML(n)); err != nil {
			return fmt.Errorf("dom: render: %w", err)
		}
	}
	return nil
}

// RenderString returns the HTML serialization of nodes as a single string.
func RenderString(nodes ...*Node) (string, error) {
	var sb strings.Builder
	if err := RenderHTML(&sb, nodes...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func toHTML(n *Node) *html.Node {
	if n.Kind == Text {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	for _, c := range n.Children {
		hn.AppendChild(toHTML(c))
	}
	return hn
}
