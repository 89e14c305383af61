// Package xgbconn is a Display Connection over the pure-Go X protocol client
// github.com/jezek/xgb. Wire events are widened into native XEvent buffers the
// way Xlib does it, so consumers see the same bytes as with libX11.
package xgbconn

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xfixes"
	"github.com/jezek/xgb/xproto"
	"github.com/labi-le/xbind/pkg/ctxlog"
	"github.com/labi-le/xbind/pkg/keysym"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
)

const (
	xFixesClientMajor = 5
	xFixesClientMinor = 0
)

var ErrUnsupported = errors.New("event cannot be sent by this backend")

type Conn struct {
	logger zerolog.Logger
	conn   *xgb.Conn
	codec  xevent.Codec
	root   xdef.Window
	minKey xproto.Keycode
	maxKey xproto.Keycode

	mu        sync.Mutex
	wire      wireState
	keymap    []xproto.Keysym
	perKey    int
	fixesBase int
}

// Open connects to display, or to $DISPLAY when it is empty.
func Open(display string, log zerolog.Logger) (*Conn, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("xgb connect: %w", err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	return &Conn{
		logger:    ctxlog.Component(log, "xgb"),
		conn:      conn,
		codec:     xevent.Codec{},
		root:      xdef.Window(screen.Root),
		minKey:    setup.MinKeycode,
		maxKey:    setup.MaxKeycode,
		fixesBase: -1,
	}, nil
}

func (c *Conn) Root() xdef.Window { return c.root }

// InternNames sends one only-if-exists InternAtom per name before reading any
// reply, so the whole batch costs a single round trip.
func (c *Conn) InternNames(names []string) ([]xdef.Atom, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(c.conn, true, uint16(len(name)), name)
	}

	atoms := make([]xdef.Atom, len(names))
	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return nil, fmt.Errorf("intern %q: %w", names[i], err)
		}
		atoms[i] = xdef.Atom(reply.Atom)
	}
	return atoms, nil
}

func (c *Conn) SelectInput(w xdef.Window, mask xdef.EventMask) error {
	err := xproto.ChangeWindowAttributesChecked(
		c.conn,
		xproto.Window(w),
		xproto.CwEventMask,
		[]uint32{uint32(mask)},
	).Check()
	if err != nil {
		return fmt.Errorf("select input: %w", err)
	}
	return nil
}

// WatchSelection asks XFIXES to report ownership changes of selection. The
// notifications arrive as header-only events with the extension's type code.
func (c *Conn) WatchSelection(selection xdef.Atom) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fixesBase < 0 {
		if err := xfixes.Init(c.conn); err != nil {
			return fmt.Errorf("xfixes init: %w", err)
		}
		if _, err := xfixes.QueryVersion(c.conn, xFixesClientMajor, xFixesClientMinor).Reply(); err != nil {
			return fmt.Errorf("xfixes query version: %w", err)
		}
		ext, err := xproto.QueryExtension(c.conn, uint16(len("XFIXES")), "XFIXES").Reply()
		if err != nil {
			return fmt.Errorf("query xfixes: %w", err)
		}
		c.fixesBase = int(ext.FirstEvent)
	}

	mask := xfixes.SelectionEventMaskSetSelectionOwner |
		xfixes.SelectionEventMaskSelectionWindowDestroy |
		xfixes.SelectionEventMaskSelectionClientClose
	err := xfixes.SelectSelectionInputChecked(c.conn, xproto.Window(c.root), xproto.Atom(selection), uint32(mask)).Check()
	if err != nil {
		return fmt.Errorf("select selection input: %w", err)
	}
	return nil
}

// ReadEvent blocks for the next event and returns it as a native XEvent
// buffer. X errors are logged and skipped. io.EOF means the connection is gone.
func (c *Conn) ReadEvent() ([]byte, error) {
	log := ctxlog.Op(c.logger, "xgbconn.ReadEvent")
	for {
		ev, xerr := c.conn.WaitForEvent()
		switch {
		case ev == nil && xerr == nil:
			return nil, io.EOF
		case xerr != nil:
			log.Warn().Str("error", xerr.Error()).Msg("x error")
			continue
		}

		c.mu.Lock()
		out, seq, ok := c.translate(ev)
		if ok {
			out.Any().Serial = c.wire.serial(seq)
			if m, isMapping := out.(*xevent.MappingEvent); isMapping && m.Request == xdef.MappingKeyboard {
				c.keymap = nil
			}
		}
		c.mu.Unlock()

		if !ok {
			log.Trace().Type("event", ev).Msg("skip untranslated")
			continue
		}
		buf, err := c.codec.Encode(out)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", xevent.ShapeOf(out), err)
		}
		return buf, nil
	}
}

// Keysym maps a keycode to a keysym with the core keyboard mapping. Shift
// selects the second column when it holds a symbol.
func (c *Conn) Keysym(code xdef.KeyCode, state xdef.ModMask) (keysym.Sym, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keymap == nil {
		count := byte(int(c.maxKey) - int(c.minKey) + 1)
		reply, err := xproto.GetKeyboardMapping(c.conn, c.minKey, count).Reply()
		if err != nil {
			return 0, fmt.Errorf("keyboard mapping: %w", err)
		}
		c.keymap = reply.Keysyms
		c.perKey = int(reply.KeysymsPerKeycode)
	}
	return lookupKeysym(c.keymap, c.perKey, int(c.minKey), code, state), nil
}

func lookupKeysym(keymap []xproto.Keysym, perKey, minKey int, code xdef.KeyCode, state xdef.ModMask) keysym.Sym {
	at := (int(code) - minKey) * perKey
	if int(code) < minKey || perKey == 0 || at+perKey > len(keymap) {
		return keysym.NoSymbol
	}
	row := keymap[at : at+perKey]
	if state&xdef.ShiftMask != 0 && perKey > 1 && row[1] != 0 {
		return keysym.Sym(row[1])
	}
	return keysym.Sym(row[0])
}

// SendEvent delivers ev to dst as a synthetic event. Only the shapes clients
// commonly synthesize are supported.
func (c *Conn) SendEvent(dst xdef.Window, propagate bool, mask xdef.EventMask, ev xevent.Event) error {
	wire, err := toWire(ev)
	if err != nil {
		return err
	}
	err = xproto.SendEventChecked(c.conn, propagate, xproto.Window(dst), uint32(mask), string(wire)).Check()
	if err != nil {
		return fmt.Errorf("send event: %w", err)
	}
	return nil
}

func (c *Conn) Close() error {
	c.conn.Close()
	return nil
}

// wireState widens 16-bit wire sequence numbers to a running serial.
type wireState struct {
	last uint64
}

// serial is the running serial for seq. Events without a sequence number
// report the last one read, as KeymapNotify does in Xlib.
func (w *wireState) serial(seq wireSeq) uint64 {
	if seq == noSequence {
		return w.last
	}
	return w.widen(uint16(seq))
}

func (w *wireState) widen(seq uint16) uint64 {
	serial := w.last&^0xffff | uint64(seq)
	if serial < w.last {
		serial += 0x10000
	}
	w.last = serial
	return serial
}
