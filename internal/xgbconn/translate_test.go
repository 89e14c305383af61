package xgbconn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/labi-le/xbind/pkg/keysym"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
)

var ignoreRaw = cmpopts.IgnoreUnexported(xevent.Header{}, xevent.ClientData{})

func TestTranslateButtonPress(t *testing.T) {
	wire := xproto.ButtonPressEvent{
		Sequence:   7,
		Detail:     1,
		Time:       1234,
		Root:       0x100,
		Event:      0x200,
		Child:      0x300,
		RootX:      115,
		RootY:      142,
		EventX:     15,
		EventY:     42,
		State:      xproto.ModMaskShift,
		SameScreen: true,
	}

	got, seq, ok := translate(wire, -1)
	if !ok || seq != 7 {
		t.Fatalf("translate: ok=%v seq=%d", ok, seq)
	}
	want := &xevent.ButtonEvent{
		Header:     xevent.Header{Type: xdef.ButtonPress, Window: 0x200},
		Root:       0x100,
		Subwindow:  0x300,
		Time:       1234,
		X:          15,
		Y:          42,
		XRoot:      115,
		YRoot:      142,
		State:      xdef.ShiftMask,
		Button:     1,
		SameScreen: true,
	}
	if diff := cmp.Diff(want, got, ignoreRaw); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	buf, err := xevent.Encode(got)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for name, want := range map[string]int64{"x": 15, "y": 42, "button": 1, "state": int64(xdef.ShiftMask)} {
		if v, err := xevent.ReadField(buf, name); err != nil || v != want {
			t.Errorf("ReadField(%q) = %d, %v; want %d", name, v, err, want)
		}
	}
}

func TestTranslateClientMessage(t *testing.T) {
	tests := []struct {
		name   string
		format byte
		data   xproto.ClientMessageDataUnion
		check  func(t *testing.T, d xevent.ClientData)
	}{
		{
			name:   "longs are sign extended",
			format: 32,
			data:   xproto.ClientMessageDataUnionData32New([]uint32{1, 0xffffffff, 3, 0, 0}),
			check: func(t *testing.T, d xevent.ClientData) {
				want := [5]int64{1, -1, 3, 0, 0}
				if diff := cmp.Diff(want, d.Longs()); diff != "" {
					t.Errorf("longs (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:   "bytes",
			format: 8,
			data:   xproto.ClientMessageDataUnionData8New([]byte("hello, world........")),
			check: func(t *testing.T, d xevent.ClientData) {
				b := d.Bytes()
				if string(b[:]) != "hello, world........" {
					t.Errorf("bytes = %q", b)
				}
			},
		},
		{
			name:   "shorts",
			format: 16,
			data:   xproto.ClientMessageDataUnionData16New([]uint16{1, 2, 0xfffe, 0, 0, 0, 0, 0, 0, 9}),
			check: func(t *testing.T, d xevent.ClientData) {
				want := [10]int16{1, 2, -2, 0, 0, 0, 0, 0, 0, 9}
				if diff := cmp.Diff(want, d.Shorts()); diff != "" {
					t.Errorf("shorts (-want +got):\n%s", diff)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := xproto.ClientMessageEvent{
				Format:   tt.format,
				Sequence: 3,
				Window:   0x400,
				Type:     0x150,
				Data:     tt.data,
			}
			got, _, ok := translate(wire, -1)
			if !ok {
				t.Fatal("not translated")
			}
			cm, ok := got.(*xevent.ClientMessageEvent)
			if !ok {
				t.Fatalf("shape %T", got)
			}
			if cm.Header.Window != 0x400 || cm.MessageType != 0x150 || cm.Format != int32(tt.format) {
				t.Errorf("header = %+v, type %d, format %d", cm.Header, cm.MessageType, cm.Format)
			}
			tt.check(t, cm.Data)

			back, err := toWire(cm)
			if err != nil {
				t.Fatalf("toWire: %v", err)
			}
			if len(back) != 32 || back[0] != xproto.ClientMessage || back[1] != tt.format {
				t.Errorf("wire header = % x", back[:4])
			}
		})
	}
}

func TestTranslateCrossingFlags(t *testing.T) {
	tests := []struct {
		flags      byte
		focus      bool
		sameScreen bool
	}{
		{0, false, false},
		{flagFocus, true, false},
		{flagSameScreen, false, true},
		{flagFocus | flagSameScreen, true, true},
	}
	for _, tt := range tests {
		got, _, _ := translate(xproto.LeaveNotifyEvent{SameScreenFocus: tt.flags}, -1)
		ev := got.(*xevent.CrossingEvent)
		if ev.Type != xdef.LeaveNotify || ev.Focus != tt.focus || ev.SameScreen != tt.sameScreen {
			t.Errorf("flags %02b: type %v focus %v same_screen %v", tt.flags, ev.Type, ev.Focus, ev.SameScreen)
		}
	}
}

func TestWidenSerial(t *testing.T) {
	var w wireState
	steps := []struct {
		seq  uint16
		want uint64
	}{
		{1, 1},
		{0xfffe, 0xfffe},
		{0xffff, 0xffff},
		{2, 0x10002},
		{2, 0x10002},
		{0x8000, 0x18000},
	}
	for _, s := range steps {
		if got := w.widen(s.seq); got != s.want {
			t.Errorf("widen(%#x) = %#x, want %#x", s.seq, got, s.want)
		}
	}
}

func TestLookupKeysym(t *testing.T) {
	keymap := []xproto.Keysym{
		'a', 'A',
		xproto.Keysym(keysym.Return), 0,
	}
	tests := []struct {
		code  xdef.KeyCode
		state xdef.ModMask
		want  keysym.Sym
	}{
		{8, 0, 'a'},
		{8, xdef.ShiftMask, 'A'},
		{9, xdef.ShiftMask, keysym.Return},
		{7, 0, keysym.NoSymbol},
		{10, 0, keysym.NoSymbol},
	}
	for _, tt := range tests {
		if got := lookupKeysym(keymap, 2, 8, tt.code, tt.state); got != tt.want {
			t.Errorf("lookupKeysym(%d, %v) = %v, want %v", tt.code, tt.state, got, tt.want)
		}
	}
}

func TestKeymapNotifyKeepsSerial(t *testing.T) {
	events := []xgb.Event{
		xproto.EnterNotifyEvent{Sequence: 5, Event: 0x200},
		xproto.KeymapNotifyEvent{Keys: make([]byte, 31)},
		xproto.PropertyNotifyEvent{Sequence: 6, Window: 0x200},
		xproto.KeymapNotifyEvent{Keys: make([]byte, 31)},
	}

	var w wireState
	var serials []uint64
	for _, ev := range events {
		_, seq, ok := translate(ev, -1)
		if !ok {
			t.Fatalf("translate(%T) not ok", ev)
		}
		serials = append(serials, w.serial(seq))
	}
	if diff := cmp.Diff([]uint64{5, 5, 6, 6}, serials); diff != "" {
		t.Errorf("serials (-want +got):\n%s", diff)
	}
}
