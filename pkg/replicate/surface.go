package replicate

import "github.com/goliatone/go-formrepeat/pkg/dom"

// Surface owns the live container replicated instances land in, plus the
// controls region holding the add affordance. The controls region is built
// and appended to the container at construction; instances appended later
// follow it as siblings.
type Surface struct {
	container *dom.Node
	controls  *dom.Node
	active    *Binding
}

// NewSurface builds a controls region with an add-affordance button and
// appends it to container.
func NewSurface(container *dom.Node, fns ...OptionFn) *Surface {
	return newSurface(container, NewOptions(fns...))
}

func newSurface(container *dom.Node, opts Options) *Surface {
	controls := dom.NewElement(opts.ControlsTag)
	if opts.ControlsClass != "" {
		controls.SetAttr("class", opts.ControlsClass)
	}

	button := dom.NewElement("button", dom.Attr{Key: "type", Value: "button"})
	if opts.AddButtonClass != "" {
		button.SetAttr("class", opts.AddButtonClass)
	}
	button.AppendChild(dom.NewText(opts.AddLabel))
	controls.AppendChild(button)

	s := &Surface{container: container, controls: controls}
	if container != nil {
		container.AppendChild(controls)
	}
	return s
}

// AppendChild appends n as the last child of the live container. There is
// no position control and no removal primitive; placement is strictly
// append-at-end.
func (s *Surface) AppendChild(n *dom.Node) {
	if s.container == nil || n == nil {
		return
	}
	s.container.AppendChild(n)
}

// Container returns the live container node.
func (s *Surface) Container() *dom.Node {
	return s.container
}

// Controls returns the controls region holding the add affordance.
func (s *Surface) Controls() *dom.Node {
	return s.controls
}
