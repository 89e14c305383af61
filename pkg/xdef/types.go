// Package xdef holds the fixed protocol constants shared by the binding:
// resource id types, event discriminants, masks and status codes. Every value
// mirrors <X11/X.h>, <X11/Xproto.h> or <X11/Xutil.h>; none are locally chosen.
package xdef

// XID is a server resource id. In the C ABI it is an unsigned long, so it is
// carried as 64 bits to survive LP64 buffers unchanged.
type XID uint64

type (
	Window   XID
	Drawable XID
	Pixmap   XID
	Cursor   XID
	Colormap XID
	Atom     XID
	Time     uint64
	KeyCode  uint8
)

// None is the zero sentinel for every resource id. The protocol never hands
// out 0 for a real atom or window, so it doubles as "does not exist".
const None = 0

const (
	CurrentTime Time = 0
	AnyKey           = 0
	AnyButton        = 0
	PointerRoot      = 1
	AllTemporary     = 0
)

const (
	InputOutput = 1
	InputOnly   = 2
)
