// Package xevent decodes and encodes native XEvent buffers.
//
// An XEvent is a C union: one fixed-size block read under whichever struct the
// type member selects. Here every struct is a Go shape whose walk method lists
// its members in declaration order, and offsets come from walking that list
// under an ABI with C alignment rules. No memory is reinterpreted.
package xevent

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/rs/zerolog"
)

var (
	ErrShortBuffer   = errors.New("event buffer too short")
	ErrUnknownField  = errors.New("no such field in event")
	ErrNotScalar     = errors.New("field is not a scalar")
	ErrShapeMismatch = errors.New("event shape does not match its type")
	ErrBadABI        = errors.New("unsupported abi")
)

// Event is one decoded XEvent. The concrete type is the shape selected by the
// type member; unknown types decode to *Generic.
type Event interface {
	Any() *Header
	walk(c *codec)
}

// Header is the XAnyEvent prefix shared by every shape.
type Header struct {
	Type      xdef.EventType
	Serial    uint64
	SendEvent bool
	Display   uint64
	// Window is the fifth member. Its C name differs by shape (window,
	// drawable, event, parent, owner, requestor) and so does its key in
	// Layout and Format output.
	Window xdef.Window

	raw    []byte
	rawABI abiKey
}

func (h *Header) Any() *Header { return h }

func (h *Header) walk(c *codec, slot string) {
	eventType(c, &h.Type)
	ulong(c, "serial", &h.Serial)
	boolean(c, "send_event", &h.SendEvent)
	pointer(c, "display", &h.Display)
	xid(c, slot, &h.Window)
}

// Generic is the header-only shape for type codes this package has no struct
// for, such as GenericEvent and extension events.
type Generic struct {
	Header
}

func (e *Generic) walk(c *codec) {
	c.begin("Generic")
	e.Header.walk(c, "window")
}

// AtomNamer resolves atoms for Format and log output.
type AtomNamer interface {
	Name(xdef.Atom) (string, bool)
}

// Codec decodes and encodes events under one ABI. The zero value uses Native.
type Codec struct {
	abi ABI
}

func NewCodec(a ABI) (Codec, error) {
	if !a.valid() {
		return Codec{}, fmt.Errorf("%w: word size %d", ErrBadABI, a.WordSize)
	}
	return Codec{abi: a.resolve()}, nil
}

func (c Codec) ABI() ABI { return c.abi.resolve() }

// EventSize is the buffer length Decode expects.
func (c Codec) EventSize() int { return c.abi.EventSize() }

func (c Codec) typeOf(buf []byte) xdef.EventType {
	return xdef.EventType(int32(c.ABI().Order.Uint32(buf)))
}

// Decode reads the shape selected by the type member of buf. The event keeps
// a copy of buf, so encoding it again under the same ABI reproduces buf
// exactly, padding included.
func (c Codec) Decode(buf []byte) (Event, error) {
	a := c.ABI()
	size := a.EventSize()
	if len(buf) < size {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortBuffer, len(buf), size)
	}
	raw := slices.Clone(buf[:size])

	ev := newShape(c.typeOf(raw))
	w := codec{abi: a, mode: modeDecode, buf: raw}
	ev.walk(&w)

	h := ev.Any()
	h.raw = raw
	h.rawABI = a.key()
	return ev, nil
}

// Encode lays ev out as an XEvent buffer. Members outside the shape are zero
// unless ev came from Decode under the same ABI.
func (c Codec) Encode(ev Event) ([]byte, error) {
	a := c.ABI()
	h := ev.Any()

	var buf []byte
	if h.raw != nil && h.rawABI == a.key() {
		buf = slices.Clone(h.raw)
	} else {
		buf = make([]byte, a.EventSize())
	}

	w := codec{abi: a, mode: modeEncode, buf: buf}
	ev.walk(&w)
	if want := layoutsFor(a).forType(h.Type).Shape; w.shape != want {
		return nil, fmt.Errorf("%w: %s carries %s", ErrShapeMismatch, w.shape, h.Type)
	}
	return buf, nil
}

// Field reads one member of the shape selected by buf's type without decoding
// the rest.
func (c Codec) Field(buf []byte, name string) (int64, error) {
	a := c.ABI()
	if size := a.EventSize(); len(buf) < size {
		return 0, fmt.Errorf("%w: %d < %d", ErrShortBuffer, len(buf), size)
	}
	l := layoutsFor(a).forType(c.typeOf(buf))
	f, ok := l.Field(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %q", ErrUnknownField, l.Shape, name)
	}
	return f.scalar(a, buf)
}

// Layout returns the member table for events of type t.
func (c Codec) Layout(t xdef.EventType) (Layout, bool) {
	s := layoutsFor(c.ABI())
	l, ok := s.byType[t]
	if !ok {
		return s.generic.clone(), false
	}
	return l.clone(), true
}

// LayoutByShape looks a table up by shape name ("Button", "Generic").
func (c Codec) LayoutByShape(shape string) (Layout, bool) {
	l, ok := layoutsFor(c.ABI()).byShape[shape]
	if !ok {
		return Layout{}, false
	}
	return l.clone(), true
}

// Layouts returns every table, ordered by the lowest type each one serves.
func (c Codec) Layouts() []Layout {
	s := layoutsFor(c.ABI())
	out := make([]Layout, 0, len(s.ordered))
	for _, l := range s.ordered {
		out = append(out, l.clone())
	}
	return out
}

func (l *Layout) clone() Layout {
	return Layout{
		Shape:  l.Shape,
		Types:  slices.Clone(l.Types),
		Size:   l.Size,
		Fields: slices.Clone(l.Fields),
	}
}

var native Codec

func Decode(buf []byte) (Event, error) { return native.Decode(buf) }

func Encode(ev Event) ([]byte, error) { return native.Encode(ev) }

func ReadField(buf []byte, name string) (int64, error) { return native.Field(buf, name) }

func LayoutOf(t xdef.EventType) (Layout, bool) { return native.Layout(t) }

// Format renders ev as "Shape(member=value, ...)". names may be nil.
func Format(ev Event, names AtomNamer) string {
	var b strings.Builder
	c := codec{abi: Native, mode: modeFormat, text: &b, names: names}
	ev.walk(&c)
	b.WriteByte(')')
	return b.String()
}

// ShapeOf returns the shape name of ev.
func ShapeOf(ev Event) string {
	c := codec{abi: Native, mode: modeDescribe}
	ev.walk(&c)
	return c.shape
}

// Object adapts ev for zerolog's Object and EmbedObject.
func Object(ev Event, names AtomNamer) zerolog.LogObjectMarshaler {
	return logObject{ev: ev, names: names}
}

type logObject struct {
	ev    Event
	names AtomNamer
}

func (o logObject) MarshalZerologObject(e *zerolog.Event) {
	c := codec{abi: Native, mode: modeLog, log: e, names: o.names}
	o.ev.walk(&c)
	e.Str("shape", c.shape)
}
