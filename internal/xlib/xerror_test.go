package xlib

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
)

func TestParseErrorEvent(t *testing.T) {
	tests := []struct {
		name string
		abi  xevent.ABI
	}{
		{"lp64", xevent.LP64},
		{"ilp32", xevent.ILP32},
		{"lp64 big endian", xevent.ABI{WordSize: 8, Order: binary.BigEndian}},
	}
	want := ProtocolError{
		Code:     xdef.BadWindow,
		Request:  uint8(xdef.XChangeWindowAttributes),
		Minor:    0,
		Resource: 0x1a00003,
		Serial:   77,
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.abi.WordSize
			buf := make([]byte, 4*w+8)
			put := func(at int, v uint64) {
				if w == 4 {
					tt.abi.Order.PutUint32(buf[at:], uint32(v))
					return
				}
				tt.abi.Order.PutUint64(buf[at:], v)
			}
			tt.abi.Order.PutUint32(buf, 0)
			put(w, 0xdeadbeef)
			put(2*w, uint64(want.Resource))
			put(3*w, want.Serial)
			buf[4*w] = byte(want.Code)
			buf[4*w+1] = want.Request
			buf[4*w+2] = want.Minor

			got, ok := parseErrorEvent(tt.abi, buf)
			if !ok {
				t.Fatal("parse failed")
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, ok := parseErrorEvent(xevent.LP64, make([]byte, 20)); ok {
		t.Error("short buffer parsed")
	}
}

func TestProtocolErrorMessage(t *testing.T) {
	err := ProtocolError{Code: xdef.BadAtom, Request: 17, Resource: 0x99, Serial: 5}
	want := "x error BadAtom: request 17.0, resource 0x99, serial 5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
