//go:build (linux || freebsd) && (amd64 || arm64)

package xlib

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/labi-le/xbind/pkg/ctxlog"
	"github.com/labi-le/xbind/pkg/keysym"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

const (
	libName      = "libX11.so.6"
	pollInterval = 100 * time.Millisecond
)

var (
	xInitThreads       func() int32
	xOpenDisplay       func(name string) uintptr
	xCloseDisplay      func(dpy uintptr) int32
	xDefaultRootWindow func(dpy uintptr) uintptr
	xConnectionNumber  func(dpy uintptr) int32
	xInternAtoms       func(dpy uintptr, names unsafe.Pointer, count int32, onlyIfExists int32, atoms unsafe.Pointer) int32
	xSelectInput       func(dpy uintptr, w uintptr, mask int64) int32
	xSendEvent         func(dpy uintptr, w uintptr, propagate int32, mask int64, ev unsafe.Pointer) int32
	xNextEvent         func(dpy uintptr, ev unsafe.Pointer) int32
	xPending           func(dpy uintptr) int32
	xFlush             func(dpy uintptr) int32
	xSync              func(dpy uintptr, discard int32) int32
	xLookupKeysym      func(ev unsafe.Pointer, index int32) uintptr
	xSetErrorHandler   func(handler uintptr) uintptr
)

var (
	loadOnce sync.Once
	loadErr  error

	// handlerLog receives protocol errors from the process-wide handler.
	handlerLog atomic.Pointer[zerolog.Logger]
)

func load() error {
	loadOnce.Do(func() {
		lib, err := purego.Dlopen(libName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("load %s: %w", libName, err)
			return
		}
		purego.RegisterLibFunc(&xInitThreads, lib, "XInitThreads")
		purego.RegisterLibFunc(&xOpenDisplay, lib, "XOpenDisplay")
		purego.RegisterLibFunc(&xCloseDisplay, lib, "XCloseDisplay")
		purego.RegisterLibFunc(&xDefaultRootWindow, lib, "XDefaultRootWindow")
		purego.RegisterLibFunc(&xConnectionNumber, lib, "XConnectionNumber")
		purego.RegisterLibFunc(&xInternAtoms, lib, "XInternAtoms")
		purego.RegisterLibFunc(&xSelectInput, lib, "XSelectInput")
		purego.RegisterLibFunc(&xSendEvent, lib, "XSendEvent")
		purego.RegisterLibFunc(&xNextEvent, lib, "XNextEvent")
		purego.RegisterLibFunc(&xPending, lib, "XPending")
		purego.RegisterLibFunc(&xFlush, lib, "XFlush")
		purego.RegisterLibFunc(&xSync, lib, "XSync")
		purego.RegisterLibFunc(&xLookupKeysym, lib, "XLookupKeysym")
		purego.RegisterLibFunc(&xSetErrorHandler, lib, "XSetErrorHandler")

		xInitThreads()
		// The default handler exits the process.
		xSetErrorHandler(purego.NewCallback(onError))
	})
	return loadErr
}

func onError(_ unsafe.Pointer, ev *byte) uintptr {
	buf := unsafe.Slice(ev, 4*xevent.Native.WordSize+3)
	perr, ok := parseErrorEvent(xevent.Native, buf)
	if log := handlerLog.Load(); ok && log != nil {
		log.Warn().EmbedObject(perr).Msg("x error")
	}
	return 0
}

type Conn struct {
	logger zerolog.Logger
	codec  xevent.Codec

	mu     sync.Mutex
	dpy    uintptr
	fd     int
	closed atomic.Bool
}

// Open connects through XOpenDisplay; an empty display means $DISPLAY.
func Open(display string, log zerolog.Logger) (*Conn, error) {
	if err := load(); err != nil {
		return nil, err
	}
	logger := ctxlog.Component(log, "xlib")
	handlerLog.Store(&logger)

	dpy := xOpenDisplay(display)
	if dpy == 0 {
		return nil, fmt.Errorf("%w %q", ErrOpen, display)
	}
	return &Conn{
		logger: logger,
		dpy:    dpy,
		fd:     int(xConnectionNumber(dpy)),
	}, nil
}

func (c *Conn) Root() xdef.Window {
	c.mu.Lock()
	defer c.mu.Unlock()
	return xdef.Window(xDefaultRootWindow(c.dpy))
}

// InternNames resolves names with one XInternAtoms call. Its status is
// ignored: with only_if_exists it reports failure whenever a name is missing,
// and those slots come back as None, which is what the caller expects.
func (c *Conn) InternNames(names []string) ([]xdef.Atom, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()

	cnames := make([]*byte, len(names))
	for i, name := range names {
		b := append([]byte(name), 0)
		pinner.Pin(&b[0])
		cnames[i] = &b[0]
	}
	out := make([]uintptr, len(names))

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return nil, ErrClosed
	}
	xInternAtoms(c.dpy, unsafe.Pointer(&cnames[0]), int32(len(names)), 1, unsafe.Pointer(&out[0]))

	atoms := make([]xdef.Atom, len(out))
	for i, a := range out {
		atoms[i] = xdef.Atom(a)
	}
	return atoms, nil
}

func (c *Conn) SelectInput(w xdef.Window, mask xdef.EventMask) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return ErrClosed
	}
	xSelectInput(c.dpy, uintptr(w), int64(mask))
	xSync(c.dpy, 0)
	return nil
}

// ReadEvent returns the next event buffer. It waits on the connection socket
// rather than inside XNextEvent so that Close can interrupt it.
func (c *Conn) ReadEvent() ([]byte, error) {
	log := ctxlog.Op(c.logger, "xlib.ReadEvent")
	buf := make([]byte, c.codec.EventSize())
	for {
		if c.closed.Load() {
			return nil, io.EOF
		}

		c.mu.Lock()
		ready := !c.closed.Load() && xPending(c.dpy) > 0
		if ready {
			xNextEvent(c.dpy, unsafe.Pointer(&buf[0]))
		}
		c.mu.Unlock()
		if ready {
			return buf, nil
		}

		fds := []unix.PollFd{{Fd: int32(c.fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, int(pollInterval.Milliseconds())); err != nil && !errors.Is(err, unix.EINTR) {
			return nil, fmt.Errorf("poll display: %w", err)
		}
		if fds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
			log.Debug().Msg("display socket hung up")
			return nil, io.EOF
		}
	}
}

// Keysym runs XLookupKeysym on a synthesized key event.
func (c *Conn) Keysym(code xdef.KeyCode, state xdef.ModMask) (keysym.Sym, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return 0, ErrClosed
	}

	buf, err := c.codec.Encode(&xevent.KeyEvent{
		Header:  xevent.Header{Type: xdef.KeyPress, Display: uint64(c.dpy)},
		State:   state,
		Keycode: uint32(code),
	})
	if err != nil {
		return 0, fmt.Errorf("encode key event: %w", err)
	}

	var col int32
	if state&xdef.ShiftMask != 0 {
		col = 1
	}
	sym := keysym.Sym(xLookupKeysym(unsafe.Pointer(&buf[0]), col))
	if sym == keysym.NoSymbol && col == 1 {
		sym = keysym.Sym(xLookupKeysym(unsafe.Pointer(&buf[0]), 0))
	}
	return sym, nil
}

func (c *Conn) SendEvent(dst xdef.Window, propagate bool, mask xdef.EventMask, ev xevent.Event) error {
	buf, err := c.codec.Encode(ev)
	if err != nil {
		return fmt.Errorf("encode %s: %w", xevent.ShapeOf(ev), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() {
		return ErrClosed
	}

	var prop int32
	if propagate {
		prop = 1
	}
	if xSendEvent(c.dpy, uintptr(dst), prop, int64(mask), unsafe.Pointer(&buf[0])) == 0 {
		return ErrSend
	}
	xFlush(c.dpy)
	return nil
}

func (c *Conn) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	xCloseDisplay(c.dpy)
	c.dpy = 0
	return nil
}
