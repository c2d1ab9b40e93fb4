package replicate

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-formrepeat/pkg/dom"
)

// Binding is the capability returned by Surface.Bind: the one live wiring
// between a surface's add affordance and a template. Activations flow
// through it, and revoking it detaches the affordance without touching
// instances already appended.
type Binding struct {
	token    string
	surface  *Surface
	template *Template
	revoked  bool
}

// Bind registers the add-affordance activation wiring for this surface. A
// surface accepts a single live binding: a second Bind fails with
// ErrAlreadyBound until the current binding is revoked.
func (s *Surface) Bind(t *Template) (*Binding, error) {
	if t == nil {
		return nil, ErrNilTemplate
	}
	if s.active != nil && !s.active.revoked {
		return nil, ErrAlreadyBound
	}
	b := &Binding{
		token:    uuid.NewString(),
		surface:  s,
		template: t,
	}
	s.active = b
	return b, nil
}

// Activate performs one add-affordance activation: create the next
// instance and append it to the surface. It returns the appended wrapper.
func (b *Binding) Activate() (*dom.Node, error) {
	if b.revoked {
		return nil, ErrBindingRevoked
	}
	instance := b.template.CreateInstance()
	b.surface.AppendChild(instance)
	return instance, nil
}

// Revoke releases the registration. Revoking an already revoked binding is
// a no-op; after revocation the surface accepts a fresh Bind.
func (b *Binding) Revoke() {
	if b.revoked {
		return
	}
	b.revoked = true
	if b.surface != nil && b.surface.active == b {
		b.surface.active = nil
	}
}

// Revoked reports whether the binding has been revoked.
func (b *Binding) Revoked() bool {
	return b.revoked
}

// Token returns the opaque token identifying this binding, suitable for
// addressing the capability over a wire boundary.
func (b *Binding) Token() string {
	return b.token
}
