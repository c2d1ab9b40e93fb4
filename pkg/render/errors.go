package render

import "errors"

var (
	// ErrNilForm is returned when a renderer receives no form.
	ErrNilForm = errors.New("render: form is required")

	// ErrNilContext is returned when a renderer is invoked without a
	// context.
	ErrNilContext = errors.New("render: context is required")
)
