package replicate

import "errors"

var (
	// ErrNilContainer is returned when a form is assembled without a live
	// container node.
	ErrNilContainer = errors.New("replicate: container is required")

	// ErrNilTemplate is returned when Bind is called without a template.
	ErrNilTemplate = errors.New("replicate: template is required")

	// ErrAlreadyBound is returned when Bind is called on a surface that
	// already holds a live binding.
	ErrAlreadyBound = errors.New("replicate: add affordance already bound")

	// ErrBindingRevoked is returned when a revoked binding is activated.
	ErrBindingRevoked = errors.New("replicate: binding has been revoked")
)
