package monitor

import (
	"github.com/labi-le/xbind/pkg/keysym"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
)

// KeyMapper turns key event coordinates into a keysym. Both display backends
// implement it.
type KeyMapper interface {
	Keysym(code xdef.KeyCode, state xdef.ModMask) (keysym.Sym, error)
}

type Options struct {
	Codec  xevent.Codec
	Names  xevent.AtomNamer
	Keys   KeyMapper
	Types  []xdef.EventType
	Dedup  bool
	Logger zerolog.Logger
}

type Option func(*Options)

var DefaultOptions = Options{
	Dedup:  true,
	Logger: zerolog.Nop(),
}

func NewOptions(opts ...Option) Options {
	options := DefaultOptions

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// WithCodec sets the ABI the source's buffers are laid out in.
func WithCodec(c xevent.Codec) Option {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithNamer resolves atoms in log output, usually an *xatom.Registry.
func WithNamer(n xevent.AtomNamer) Option {
	return func(o *Options) {
		o.Names = n
	}
}

func WithKeyMapper(k KeyMapper) Option {
	return func(o *Options) {
		o.Keys = k
	}
}

// WithTypes drops every event whose type is not listed. No types means all.
func WithTypes(types ...xdef.EventType) Option {
	return func(o *Options) {
		o.Types = types
	}
}

func WithDedup(enable bool) Option {
	return func(o *Options) {
		o.Dedup = enable
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
