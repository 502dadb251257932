package carousel

import "net/http"

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath     string
	StartParam    string
	ActionParam   string
	SizeParam     string
	DefaultWindow int
	MaxWindow     int
	Guard         GuardFunc

	Source Source
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     "/carousel/{name}",
		StartParam:    "start",
		ActionParam:   "action",
		SizeParam:     "size",
		DefaultWindow: 3,
		MaxWindow:     12,
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
	if opts.DefaultWindow <= 0 {
		opts.DefaultWindow = 3
	}
	if opts.MaxWindow <= 0 {
		opts.MaxWindow = 12
	}
	if opts.DefaultWindow > opts.MaxWindow {
		opts.DefaultWindow = opts.MaxWindow
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/carousel/{name}"
	}
	if opts.StartParam == "" {
		opts.StartParam = "start"
	}
	if opts.ActionParam == "" {
		opts.ActionParam = "action"
	}
	if opts.SizeParam == "" {
		opts.SizeParam = "size"
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithStartParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.StartParam = name
	}
}

func WithActionParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ActionParam = name
	}
}

func WithSizeParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SizeParam = name
	}
}

func WithDefaultWindow(size int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultWindow = size
	}
}

func WithMaxWindow(size int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxWindow = size
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

func WithSource(source Source) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Source = source
	}
}

func clampWindow(size int, opts Options) int {
	if size <= 0 {
		size = opts.DefaultWindow
	}
	if opts.MaxWindow > 0 && size > opts.MaxWindow {
		return opts.MaxWindow
	}
	return size
}
