package xevent

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/rs/zerolog"
)

type mode uint8

const (
	modeDecode mode = iota
	modeEncode
	modeDescribe
	modeFormat
	modeLog
)

// codec walks one shape's members in C declaration order. Each shape lists its
// members exactly once, in walk; the mode decides whether a member is read
// from buf, written to buf, recorded as a layout Field or rendered as text.
type codec struct {
	abi   ABI
	mode  mode
	buf   []byte
	off   int
	align int
	shape string

	fields []Field
	text   *strings.Builder
	n      int
	log    *zerolog.Event
	names  AtomNamer
}

func (c *codec) begin(shape string) {
	c.shape = shape
	if c.mode == modeFormat {
		c.text.WriteString(shape)
		c.text.WriteByte('(')
	}
}

// place reserves the next member at its natural alignment and returns its
// offset.
func (c *codec) place(name string, k Kind, width int) int {
	a := k.align(c.abi)
	c.off = alignUp(c.off, a)
	at := c.off
	c.off += width
	c.align = max(c.align, a)
	if c.mode == modeDescribe {
		c.fields = append(c.fields, Field{Name: name, Offset: at, Width: width, Kind: k})
	}
	return at
}

func (c *codec) size() int {
	return alignUp(c.off, max(c.align, 1))
}

func (c *codec) u32(at int) uint32 { return c.abi.Order.Uint32(c.buf[at:]) }

func (c *codec) putU32(at int, v uint32) { c.abi.Order.PutUint32(c.buf[at:], v) }

func (c *codec) word(at int) uint64 {
	if c.abi.WordSize == 4 {
		return uint64(c.abi.Order.Uint32(c.buf[at:]))
	}
	return c.abi.Order.Uint64(c.buf[at:])
}

func (c *codec) sword(at int) int64 {
	if c.abi.WordSize == 4 {
		return int64(int32(c.abi.Order.Uint32(c.buf[at:])))
	}
	return int64(c.abi.Order.Uint64(c.buf[at:]))
}

func (c *codec) putWord(at int, v uint64) {
	if c.abi.WordSize == 4 {
		c.abi.Order.PutUint32(c.buf[at:], uint32(v))
		return
	}
	c.abi.Order.PutUint64(c.buf[at:], v)
}

func (c *codec) sep() {
	if c.n > 0 {
		c.text.WriteString(", ")
	}
	c.n++
}

func (c *codec) showInt(name string, v int64) {
	switch c.mode {
	case modeFormat:
		c.sep()
		c.text.WriteString(name)
		c.text.WriteByte('=')
		c.text.WriteString(strconv.FormatInt(v, 10))
	case modeLog:
		c.log.Int64(name, v)
	}
}

func (c *codec) showUint(name string, v uint64) {
	switch c.mode {
	case modeFormat:
		c.sep()
		c.text.WriteString(name)
		c.text.WriteByte('=')
		c.text.WriteString(strconv.FormatUint(v, 10))
	case modeLog:
		c.log.Uint64(name, v)
	}
}

func (c *codec) showStr(name, v string) {
	switch c.mode {
	case modeFormat:
		c.sep()
		c.text.WriteString(name)
		c.text.WriteByte('=')
		c.text.WriteString(v)
	case modeLog:
		c.log.Str(name, v)
	}
}

func (c *codec) showBool(name string, v bool) {
	switch c.mode {
	case modeFormat:
		c.showStr(name, strconv.FormatBool(v))
	case modeLog:
		c.log.Bool(name, v)
	}
}

func hexID(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func eventType(c *codec, v *xdef.EventType) {
	at := c.place("type", KindInt, 4)
	switch c.mode {
	case modeDecode:
		*v = xdef.EventType(int32(c.u32(at)))
	case modeEncode:
		c.putU32(at, uint32(*v))
	default:
		c.showStr("type", v.String())
	}
}

// integer is a C int member.
func integer[T ~int32](c *codec, name string, v *T) {
	at := c.place(name, KindInt, 4)
	switch c.mode {
	case modeDecode:
		*v = T(int32(c.u32(at)))
	case modeEncode:
		c.putU32(at, uint32(*v))
	default:
		c.showInt(name, int64(*v))
	}
}

// unsigned is a C unsigned int member.
func unsigned[T ~uint32](c *codec, name string, v *T) {
	at := c.place(name, KindUint, 4)
	switch c.mode {
	case modeDecode:
		*v = T(c.u32(at))
	case modeEncode:
		c.putU32(at, uint32(*v))
	default:
		if s, ok := any(*v).(interface{ String() string }); ok {
			c.showStr(name, s.String())
			return
		}
		c.showUint(name, uint64(*v))
	}
}

// boolean is an Xlib Bool. Any nonzero int decodes as true; encoding leaves a
// slot alone when it already holds the same truth value so that decoded
// events re-encode to their original bytes.
func boolean(c *codec, name string, v *bool) {
	at := c.place(name, KindBool, 4)
	switch c.mode {
	case modeDecode:
		*v = c.u32(at) != 0
	case modeEncode:
		if (c.u32(at) != 0) == *v {
			return
		}
		var n uint32
		if *v {
			n = 1
		}
		c.putU32(at, n)
	default:
		c.showBool(name, *v)
	}
}

func char(c *codec, name string, v *int8) {
	at := c.place(name, KindChar, 1)
	switch c.mode {
	case modeDecode:
		*v = int8(c.buf[at])
	case modeEncode:
		c.buf[at] = byte(*v)
	default:
		c.showInt(name, int64(*v))
	}
}

// ulong is an unsigned long member that is a count or a mask, not an XID.
func ulong[T ~uint64](c *codec, name string, v *T) {
	at := c.place(name, KindUlong, c.abi.WordSize)
	switch c.mode {
	case modeDecode:
		*v = T(c.word(at))
	case modeEncode:
		c.putWord(at, uint64(*v))
	default:
		c.showUint(name, uint64(*v))
	}
}

func pointer(c *codec, name string, v *uint64) {
	at := c.place(name, KindPointer, c.abi.WordSize)
	switch c.mode {
	case modeDecode:
		*v = c.word(at)
	case modeEncode:
		c.putWord(at, *v)
	default:
		c.showStr(name, hexID(*v))
	}
}

func xid[T ~uint64](c *codec, name string, v *T) {
	at := c.place(name, KindXID, c.abi.WordSize)
	switch c.mode {
	case modeDecode:
		*v = T(c.word(at))
	case modeEncode:
		c.putWord(at, uint64(*v))
	default:
		c.showStr(name, hexID(uint64(*v)))
	}
}

// atom is an XID member holding an Atom; it renders by name when the codec
// has a namer.
func atom(c *codec, name string, v *xdef.Atom) {
	if c.mode != modeFormat && c.mode != modeLog {
		xid(c, name, v)
		return
	}
	c.place(name, KindXID, c.abi.WordSize)
	switch {
	case *v == xdef.None:
		c.showStr(name, "None")
	case c.names != nil:
		if n, ok := c.names.Name(*v); ok {
			c.showStr(name, n)
			return
		}
		fallthrough
	default:
		c.showUint(name, uint64(*v))
	}
}

// array is a char[n] member.
func array(c *codec, name string, v []byte) {
	at := c.place(name, KindBytes, len(v))
	switch c.mode {
	case modeDecode:
		copy(v, c.buf[at:at+len(v)])
	case modeEncode:
		copy(c.buf[at:at+len(v)], v)
	default:
		c.showStr(name, hex.EncodeToString(v))
	}
}

func clientData(c *codec, name string, v *ClientData, format int32) {
	width := dataWords * c.abi.WordSize
	at := c.place(name, KindData, width)
	switch c.mode {
	case modeDecode:
		v.load(c.abi, c.buf[at:at+width])
	case modeEncode:
		v.store(c.abi, format, c.buf[at:at+width])
	default:
		c.showStr(name, v.format(format))
	}
}
