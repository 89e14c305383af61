// Package xlib is a Display Connection over the system libX11, loaded at run
// time with purego. Events come out of XNextEvent already in the native
// XEvent layout, so they are passed through untouched.
package xlib

import (
	"errors"
	"fmt"

	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
)

var (
	ErrUnavailable = errors.New("libX11 backend is not available on this platform")
	ErrOpen        = errors.New("cannot open display")
	ErrClosed      = errors.New("display closed")
	ErrSend        = errors.New("send event: no wire encoding for event")
)

// ProtocolError is an XErrorEvent as passed to the error handler.
type ProtocolError struct {
	Code     xdef.ErrorCode
	Request  uint8
	Minor    uint8
	Resource xdef.XID
	Serial   uint64
}

func (e ProtocolError) Error() string {
	return fmt.Sprintf("x error %s: request %d.%d, resource %#x, serial %d",
		e.Code, e.Request, e.Minor, e.Resource, e.Serial)
}

func (e ProtocolError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Stringer("code", e.Code).
		Uint8("request", e.Request).
		Uint8("minor", e.Minor).
		Str("resource", fmt.Sprintf("%#x", e.Resource)).
		Uint64("serial", e.Serial)
}

// parseErrorEvent reads an XErrorEvent:
//
//	int type; Display *display; XID resourceid; unsigned long serial;
//	unsigned char error_code, request_code, minor_code;
//
// Every member up to serial is word-aligned, so they sit one word apart.
func parseErrorEvent(a xevent.ABI, buf []byte) (ProtocolError, bool) {
	w := a.WordSize
	if len(buf) < 4*w+3 {
		return ProtocolError{}, false
	}
	word := func(at int) uint64 {
		if w == 4 {
			return uint64(a.Order.Uint32(buf[at:]))
		}
		return a.Order.Uint64(buf[at:])
	}
	return ProtocolError{
		Resource: xdef.XID(word(2 * w)),
		Serial:   word(3 * w),
		Code:     xdef.ErrorCode(buf[4*w]),
		Request:  buf[4*w+1],
		Minor:    buf[4*w+2],
	}, true
}
