package repeatform

import "github.com/goliatone/go-formrepeat/pkg/replicate"

// Component is a small, extraction-friendly wrapper around the session
// endpoints, their configuration, and routing helpers. Sessions created
// through CreateSession and sessions created over HTTP share one store, so
// a host can assemble a form server-side and let the browser runtime add
// instances to it.
type Component struct {
	opts Options
	h    *handlers
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts, h: newHandlers(opts)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// CreateSession registers an already-assembled form with the component's
// session store and returns the session id the HTTP endpoints address it
// by. Pair the id with InstancesPath to stamp an add endpoint on rendered
// output.
func (c *Component) CreateSession(form *replicate.Form) (string, error) {
	if form == nil {
		return "", errNilForm
	}
	sess, err := c.h.store.create(form)
	if err != nil {
		return "", err
	}
	return sess.id, nil
}

// RegisterRoutes registers the component endpoints under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return registerHandlers(mux, basePath, c.h)
}
