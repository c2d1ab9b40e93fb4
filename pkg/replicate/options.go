package replicate

type Options struct {
	PrefixSeed     string
	WrapperTag     string
	InstanceClass  string
	ControlsTag    string
	ControlsClass  string
	AddLabel       string
	AddButtonClass string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		WrapperTag:     "div",
		InstanceClass:  "repeat-instance",
		ControlsTag:    "div",
		ControlsClass:  "repeat-controls",
		AddLabel:       "Add another",
		AddButtonClass: "repeat-add",
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
	if opts.WrapperTag == "" {
		opts.WrapperTag = "div"
	}
	if opts.ControlsTag == "" {
		opts.ControlsTag = "div"
	}
	if opts.AddLabel == "" {
		opts.AddLabel = "Add another"
	}
	return opts
}

func WithPrefixSeed(seed string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PrefixSeed = seed
	}
}

func WithWrapperTag(tag string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.WrapperTag = tag
	}
}

func WithInstanceClass(class string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.InstanceClass = class
	}
}

func WithControlsTag(tag string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ControlsTag = tag
	}
}

func WithControlsClass(class string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ControlsClass = class
	}
}

func WithAddLabel(label string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AddLabel = label
	}
}

func WithAddButtonClass(class string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AddButtonClass = class
	}
}
