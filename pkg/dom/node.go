// Package dom provides the ordered document tree the replication engine
// operates on: element and text nodes with string attributes and owned
// children. There are two node kinds, no parent back-references, and
// top-down ownership, which keeps deep copies and identifier rewrites
// cheap and predictable. Markup enters and leaves the tree
// through the parse and render helpers built on golang.org/x/net/html.
package dom

// Kind discriminates the two node shapes in a document tree.
type Kind uint8

const (
	// Element nodes carry a tag, attributes, and children.
	Element Kind = iota
	// Text nodes carry literal character data and nothing else.
	Text
)

// Attr is a single attribute on an element node. Attribute order is
// preserved as written so serialized markup stays deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is one node in an ordered document tree. A text node has no
// attributes and no children; an element node has zero or more of each.
// Children are owned exclusively by their parent.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// NewElement returns an element node with the given tag and attributes.
func NewElement(tag string, attrs ...Attr) *Node {
	n := &Node{Kind: Element, Tag: tag}
	if len(attrs) > 0 {
		n.Attrs = append(n.Attrs, attrs...)
	}
	return n
}

// NewText returns a text node holding the given character data.
func NewText(text string) *Node {
	return &Node{Kind: Text, Text: text}
}

// AppendChild appends child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Attr returns the value of the named attribute, or the empty string when
// the attribute is absent.
func (n *Node) Attr(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, regardless of its
// value.
func (n *Node) HasAttr(key string) bool {
	for _, a := range n.Attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets the named attribute, updating it in place when present and
// appending it otherwise.
func (n *Node) SetAttr(key, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

// DelAttr removes the named attribute when present.
func (n *Node) DelAttr(key string) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy of n and its entire subtree. The copy shares no
// slices or nodes with the original, so mutating one side never shows
// through the other.
func (n *Node) Clone() *Node {
	out := &Node{Kind: n.Kind, Tag: n.Tag, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = make([]Attr, len(n.Attrs))
		copy(out.Attrs, n.Attrs)
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Walk visits n and every descendant in depth-first document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Walk visits root and every descendant in depth-first document order. A
// nil root is a no-op.
func Walk(root *Node, fn func(*Node)) {
	if root == nil {
		return
	}
	root.Walk(fn)
}

// FindByID returns the first element in depth-first order whose id
// attribute equals id, or nil when no such element exists.
func (n *Node) FindByID(id string) *Node {
	if n.Kind == Element && n.Attr("id") == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// FirstElement returns the first element node in nodes, skipping text
// nodes, or nil when nodes holds no element.
func FirstElement(nodes []*Node) *Node {
	for _, n := range nodes {
		if n.Kind == Element {
			return n
		}
	}
	return nil
}

// formControls is the closed set of tags whose id and name are rewritten
// unconditionally during replication.
var formControls = map[string]struct{}{
	"datalist": {},
	"input":    {},
	"optgroup": {},
	"select":   {},
	"textarea": {},
}

// IsFormControl reports whether tag names a form control whose id and name
// participate in unconditional identifier rewriting.
func IsFormControl(tag string) bool {
	_, ok := formControls[tag]
	return ok
}
