package xevent

import (
	"fmt"
	"slices"
	"sync"

	"github.com/labi-le/xbind/pkg/xdef"
)

// Field is one member of an event structure.
type Field struct {
	Name   string
	Offset int
	Width  int
	Kind   Kind
}

func (f Field) String() string {
	return fmt.Sprintf("%-16s %4d %3d  %s", f.Name, f.Offset, f.Width, f.Kind)
}

// Layout is the member table of one event structure under one ABI.
type Layout struct {
	Shape  string
	Types  []xdef.EventType
	Size   int
	Fields []Field
}

// Field returns the member called name.
func (l Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// scalar reads f out of buf as a signed integer. Arrays have no scalar value.
func (f Field) scalar(a ABI, buf []byte) (int64, error) {
	c := codec{abi: a, buf: buf}
	switch f.Kind {
	case KindInt, KindBool:
		return int64(int32(c.u32(f.Offset))), nil
	case KindUint:
		return int64(c.u32(f.Offset)), nil
	case KindChar:
		return int64(int8(buf[f.Offset])), nil
	case KindLong:
		return c.sword(f.Offset), nil
	case KindUlong, KindXID, KindPointer:
		return int64(c.word(f.Offset)), nil
	}
	return 0, fmt.Errorf("%w: %s is %s", ErrNotScalar, f.Name, f.Kind)
}

type layoutSet struct {
	byType  map[xdef.EventType]*Layout
	byShape map[string]*Layout
	ordered []*Layout
	generic *Layout
}

func (s *layoutSet) forType(t xdef.EventType) *Layout {
	if l, ok := s.byType[t]; ok {
		return l
	}
	return s.generic
}

var (
	layoutMu    sync.Mutex
	layoutCache = make(map[abiKey]*layoutSet)
)

func layoutsFor(a ABI) *layoutSet {
	a = a.resolve()
	layoutMu.Lock()
	defer layoutMu.Unlock()

	if s, ok := layoutCache[a.key()]; ok {
		return s
	}
	s := buildLayouts(a)
	layoutCache[a.key()] = s
	return s
}

func describe(a ABI, ev Event) *Layout {
	c := codec{abi: a, mode: modeDescribe}
	ev.walk(&c)
	return &Layout{Shape: c.shape, Size: c.size(), Fields: c.fields}
}

func buildLayouts(a ABI) *layoutSet {
	s := &layoutSet{
		byType:  make(map[xdef.EventType]*Layout, len(shapes)),
		byShape: make(map[string]*Layout),
	}
	types := make([]xdef.EventType, 0, len(shapes))
	for t := range shapes {
		types = append(types, t)
	}
	slices.Sort(types)

	for _, t := range types {
		l := describe(a, shapes[t]())
		if known, ok := s.byShape[l.Shape]; ok {
			l = known
		} else {
			s.byShape[l.Shape] = l
			s.ordered = append(s.ordered, l)
		}
		l.Types = append(l.Types, t)
		s.byType[t] = l
	}

	s.generic = describe(a, new(Generic))
	s.byShape[s.generic.Shape] = s.generic
	s.ordered = append(s.ordered, s.generic)
	return s
}
