// Package xatom resolves the atoms the binding uses in one round trip.
//
// Names are interned only if they exist: asking never creates an atom on the
// server. A name the server does not know resolves to xdef.None. That is
// unambiguous because the protocol never assigns 0 to a real atom; Lookup
// reports the state explicitly for callers that need to tell the cases apart.
package xatom

import (
	"errors"
	"fmt"
	"slices"

	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/rs/zerolog"
)

var (
	ErrIntern      = errors.New("intern atoms")
	ErrReplyLength = errors.New("reply length does not match request")
)

// Interner is the part of a display connection the registry needs. The reply
// has one entry per name, in order, with xdef.None for names the server does
// not know.
type Interner interface {
	InternNames(names []string) ([]xdef.Atom, error)
}

// State says how a name was resolved.
type State uint8

const (
	// StateUndeclared: the name was not part of the request.
	StateUndeclared State = iota
	// StateMissing: requested, but the server has no such atom.
	StateMissing
	StateResolved
	// StatePredefined: a core protocol atom, known without asking.
	StatePredefined
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateResolved:
		return "resolved"
	case StatePredefined:
		return "predefined"
	}
	return "undeclared"
}

type Options struct {
	Names  []string
	Logger zerolog.Logger
}

type Option func(*Options)

// WithNames adds names beyond the built-in schema to the request.
func WithNames(names ...string) Option {
	return func(o *Options) {
		o.Names = append(o.Names, names...)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Registry maps names to atoms for one connection. It is immutable once New
// returns and safe for concurrent use.
type Registry struct {
	atoms  Atoms
	names  []string
	byName map[string]xdef.Atom
	byAtom map[xdef.Atom]string
}

// New interns the schema plus any WithNames extras in a single request to
// conn. Predefined atoms are not sent. If the request fails, or the reply does
// not line up with it, no registry is returned.
func New(conn Interner, opts ...Option) (*Registry, error) {
	o := Options{Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	var atoms Atoms
	schema := atoms.schema()
	names := requestNames(schema, o.Names)

	handles, err := conn.InternNames(names)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntern, err)
	}
	if len(handles) != len(names) {
		return nil, fmt.Errorf("%w: %w: sent %d names, got %d atoms",
			ErrIntern, ErrReplyLength, len(names), len(handles))
	}

	r := &Registry{
		names:  names,
		byName: make(map[string]xdef.Atom, len(names)),
		byAtom: make(map[xdef.Atom]string, len(names)),
	}
	for i, name := range names {
		r.byName[name] = handles[i]
		if handles[i] != xdef.None {
			r.byAtom[handles[i]] = name
		}
	}
	for _, b := range schema {
		*b.dst = r.Get(b.name)
	}
	r.atoms = atoms

	o.Logger.Debug().EmbedObject(r).Msg("atoms interned")
	return r, nil
}

func requestNames(schema []binding, extra []string) []string {
	names := make([]string, 0, len(schema)+len(extra))
	seen := make(map[string]struct{}, cap(names))
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		if _, ok := Predefined(name); ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, b := range schema {
		add(b.name)
	}
	for _, name := range extra {
		add(name)
	}
	return names
}

// Atoms returns a copy of the resolved schema.
func (r *Registry) Atoms() Atoms {
	return r.atoms
}

// Get returns the atom for name, or xdef.None if the server does not have it
// or it was never requested.
func (r *Registry) Get(name string) xdef.Atom {
	a, _ := r.Lookup(name)
	return a
}

func (r *Registry) Lookup(name string) (xdef.Atom, State) {
	if a, ok := Predefined(name); ok {
		return a, StatePredefined
	}
	a, ok := r.byName[name]
	switch {
	case !ok:
		return xdef.None, StateUndeclared
	case a == xdef.None:
		return xdef.None, StateMissing
	}
	return a, StateResolved
}

// Name is the reverse of Get, for atoms this registry knows.
func (r *Registry) Name(a xdef.Atom) (string, bool) {
	if name, ok := predefinedName(a); ok {
		return name, true
	}
	name, ok := r.byAtom[a]
	return name, ok
}

// Names returns the requested names in request order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Missing returns the requested names the server had no atom for.
func (r *Registry) Missing() []string {
	var out []string
	for _, name := range r.names {
		if r.byName[name] == xdef.None {
			out = append(out, name)
		}
	}
	return out
}

func (r *Registry) MarshalZerologObject(e *zerolog.Event) {
	e.Int("requested", len(r.names)).
		Int("resolved", len(r.byAtom)).
		Int("missing", len(r.names)-len(r.byAtom))
}
