package replicate

import "github.com/goliatone/go-formrepeat/pkg/dom"

// Form ties a captured template, its surface, and the live add binding
// into one assembled replicating form.
type Form struct {
	template *Template
	surface  *Surface
	binding  *Binding
}

// New assembles a replicating form around container: the container's
// current children are captured into a Template, a Surface with the add
// affordance is built around the now-empty container, the affordance is
// bound, and one initial instance is appended so the form starts with
// exactly one populated record.
func New(container *dom.Node, fns ...OptionFn) (*Form, error) {
	if container == nil {
		return nil, ErrNilContainer
	}
	opts := NewOptions(fns...)

	tpl := newTemplate(container, opts)
	srf := newSurface(container, opts)

	binding, err := srf.Bind(tpl)
	if err != nil {
		return nil, err
	}
	if _, err := binding.Activate(); err != nil {
		return nil, err
	}

	return &Form{template: tpl, surface: srf, binding: binding}, nil
}

// Add performs one add-affordance activation through the form's binding
// and returns the appended instance wrapper.
func (f *Form) Add() (*dom.Node, error) {
	return f.binding.Activate()
}

// Container returns the live container, controls region and instances
// included.
func (f *Form) Container() *dom.Node {
	return f.surface.Container()
}

// Instances returns the instance wrappers currently held by the container,
// excluding the controls region, in append order.
func (f *Form) Instances() []*dom.Node {
	var out []*dom.Node
	for _, child := range f.surface.Container().Children {
		if child == f.surface.Controls() {
			continue
		}
		out = append(out, child)
	}
	return out
}

// Template returns the captured template.
func (f *Form) Template() *Template {
	return f.template
}

// Surface returns the live surface.
func (f *Form) Surface() *Surface {
	return f.surface
}

// Binding returns the live add-affordance binding.
func (f *Form) Binding() *Binding {
	return f.binding
}
