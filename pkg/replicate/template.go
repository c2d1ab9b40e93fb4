package replicate

import "github.com/goliatone/go-formrepeat/pkg/dom"

// Template owns the captured original subtree and the state needed to
// produce uniquely identified copies of it. The captured nodes are deep
// copies detached from the live container, so the design-time markup never
// itself becomes a live, submittable instance.
type Template struct {
	nodes         []*dom.Node
	prefixSeed    string
	wrapperTag    string
	instanceClass string
	iteration     int
}

// NewTemplate captures container's current children, in order, as the
// replication template and removes them from the container. A nil
// container yields an empty template whose instances are bare wrappers.
func NewTemplate(container *dom.Node, fns ...OptionFn) *Template {
	return newTemplate(container, NewOptions(fns...))
}

func newTemplate(container *dom.Node, opts Options) *Template {
	t := &Template{
		prefixSeed:    opts.PrefixSeed,
		wrapperTag:    opts.WrapperTag,
		instanceClass: opts.InstanceClass,
	}
	if container == nil {
		return t
	}
	for _, child := range container.Children {
		t.nodes = append(t.nodes, child.Clone())
	}
	container.Children = nil
	return t
}

// CreateInstance clones the captured nodes under the next instance prefix,
// wraps them in a single new wrapper element, and advances the iteration
// counter by exactly one. Every call succeeds; prefixes never repeat over
// the template's lifetime.
func (t *Template) CreateInstance() *dom.Node {
	prefix := t.nextPrefix()
	wrapper := dom.NewElement(t.wrapperTag)
	if t.instanceClass != "" {
		wrapper.SetAttr("class", t.instanceClass)
	}
	for _, clone := range Clone(t.nodes, prefix) {
		wrapper.AppendChild(clone)
	}
	t.iteration++
	return wrapper
}

// IterationCount returns how many instances the template has produced.
func (t *Template) IterationCount() int {
	return t.iteration
}

// PrefixSeed returns the seed identifier prefixes are derived from. Empty
// means prefixes carry the iteration number alone.
func (t *Template) PrefixSeed() string {
	return t.prefixSeed
}

// nextPrefix computes the identifier prefix for the upcoming instance.
func (t *Template) nextPrefix() string {
	return InstancePrefix(t.prefixSeed, t.iteration)
}
