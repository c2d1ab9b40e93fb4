package repeatform

import "net/http"

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePrefix  string
	MaxInstances int
	MaxSessions  int
	DefaultSeed  string
	Guard        GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePrefix:  "/api/repeatform",
		MaxInstances: 20,
		MaxSessions:  64,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePrefix == "" {
		opts.RoutePrefix = "/api/repeatform"
	}
	if opts.MaxInstances <= 0 {
		opts.MaxInstances = 20
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 64
	}
	return opts
}

func WithRoutePrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePrefix = prefix
	}
}

// WithMaxInstances caps how many instances a session's surface may hold.
func WithMaxInstances(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxInstances = limit
	}
}

// WithMaxSessions caps how many concurrent surface sessions the component
// keeps alive.
func WithMaxSessions(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxSessions = limit
	}
}

// WithDefaultSeed applies a prefix seed to sessions that do not name one.
func WithDefaultSeed(seed string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultSeed = seed
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}
