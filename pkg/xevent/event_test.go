package xevent_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
	"github.com/rs/zerolog"
)

var ignoreRaw = cmpopts.IgnoreUnexported(xevent.Header{}, xevent.ClientData{})

type buffer struct {
	b     []byte
	order binary.ByteOrder
}

func newBuffer(a xevent.ABI) *buffer {
	return &buffer{b: make([]byte, a.EventSize()), order: a.Order}
}

func (b *buffer) i32(at int, v int32) *buffer {
	b.order.PutUint32(b.b[at:], uint32(v))
	return b
}

func (b *buffer) u64(at int, v uint64) *buffer {
	b.order.PutUint64(b.b[at:], v)
	return b
}

func TestDecodeButtonPress(t *testing.T) {
	buf := newBuffer(xevent.LP64).
		i32(0, int32(xdef.ButtonPress)).
		u64(8, 4242).
		u64(32, 0x1a00003).
		i32(64, 15).
		i32(68, 42).
		i32(80, int32(xdef.ShiftMask)).
		i32(84, 1).
		i32(88, 1).b

	c := mustCodec(t, xevent.LP64)
	ev, err := c.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := ev.(*xevent.ButtonEvent)
	if !ok {
		t.Fatalf("Decode returned %T, want *ButtonEvent", ev)
	}
	want := &xevent.ButtonEvent{
		Header: xevent.Header{
			Type:   xdef.ButtonPress,
			Serial: 4242,
			Window: 0x1a00003,
		},
		X:          15,
		Y:          42,
		State:      xdef.ShiftMask,
		Button:     xdef.Button1,
		SameScreen: true,
	}
	if diff := cmp.Diff(want, got, ignoreRaw); diff != "" {
		t.Errorf("ButtonPress mismatch (-want +got):\n%s", diff)
	}

	for name, want := range map[string]int64{"x": 15, "y": 42, "button": 1, "state": int64(xdef.ShiftMask)} {
		v, err := c.Field(buf, name)
		if err != nil || v != want {
			t.Errorf("Field(%q) = %d, %v; want %d", name, v, err, want)
		}
	}
	for _, foreign := range []string{"width", "keycode", "message_type", "atom", "event"} {
		if _, err := c.Field(buf, foreign); !errors.Is(err, xevent.ErrUnknownField) {
			t.Errorf("Field(%q) error = %v, want ErrUnknownField", foreign, err)
		}
	}
}

func TestConfigureNotifyRoundTrip(t *testing.T) {
	buf := newBuffer(xevent.LP64).
		i32(0, int32(xdef.ConfigureNotify)).
		u64(32, 0x100).
		u64(40, 0x200).
		i32(48, 10).
		i32(52, 20).
		i32(56, 800).
		i32(60, 600).b
	// padding after border_width and past the struct end must survive
	for i := 68; i < 72; i++ {
		buf[i] = 0xee
	}
	for i := 88; i < len(buf); i++ {
		buf[i] = byte(i)
	}

	c := mustCodec(t, xevent.LP64)
	ev, err := c.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cfg, ok := ev.(*xevent.ConfigureEvent)
	if !ok {
		t.Fatalf("Decode returned %T", ev)
	}
	if diff := cmp.Diff([4]int32{10, 20, 800, 600}, [4]int32{cfg.X, cfg.Y, cfg.Width, cfg.Height}); diff != "" {
		t.Errorf("geometry mismatch (-want +got):\n%s", diff)
	}
	if cfg.Event() != 0x100 || cfg.Window != 0x200 {
		t.Errorf("event/window = %#x/%#x", cfg.Event(), cfg.Window)
	}

	out, err := c.Encode(ev)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out, buf) {
		t.Errorf("round trip changed bytes:\n got %x\nwant %x", out, buf)
	}
}

func TestRoundTripEveryShape(t *testing.T) {
	abis := []xevent.ABI{
		xevent.LP64,
		xevent.ILP32,
		{WordSize: 8, Order: binary.BigEndian},
		{WordSize: 4, Order: binary.BigEndian},
	}
	rng := rand.New(rand.NewSource(1))
	types := []xdef.EventType{0, 1, xdef.GenericEvent, xdef.LASTEvent, 64, 127}
	for typ := xdef.KeyPress; typ <= xdef.MappingNotify; typ++ {
		types = append(types, typ)
	}

	for _, a := range abis {
		c := mustCodec(t, a)
		for _, typ := range types {
			for n := 0; n < 4; n++ {
				buf := make([]byte, a.EventSize())
				for i := range buf {
					buf[i] = byte(rng.Uint32())
				}
				a.Order.PutUint32(buf, uint32(typ))

				ev, err := c.Decode(buf)
				if err != nil {
					t.Fatalf("%v %v: Decode: %v", a, typ, err)
				}
				out, err := c.Encode(ev)
				if err != nil {
					t.Fatalf("%v %v: Encode: %v", a, typ, err)
				}
				if !bytes.Equal(out, buf) {
					t.Fatalf("%v %v: round trip mismatch\n got %x\nwant %x", a, typ, out, buf)
				}
			}
		}
	}
}

func TestUnknownTypeDecodesToGeneric(t *testing.T) {
	for _, typ := range []xdef.EventType{xdef.GenericEvent, 90, 0} {
		buf := newBuffer(xevent.LP64).i32(0, int32(typ)).u64(8, 7).i32(16, 1).u64(32, 0x42).b
		ev, err := mustCodec(t, xevent.LP64).Decode(buf)
		if err != nil {
			t.Fatalf("Decode(%v): %v", typ, err)
		}
		g, ok := ev.(*xevent.Generic)
		if !ok {
			t.Fatalf("Decode(%v) = %T, want *Generic", typ, ev)
		}
		want := xevent.Header{Type: typ, Serial: 7, SendEvent: true, Window: 0x42}
		if diff := cmp.Diff(want, g.Header, ignoreRaw); diff != "" {
			t.Errorf("header mismatch (-want +got):\n%s", diff)
		}
		if _, err := mustCodec(t, xevent.LP64).Field(buf, "x"); !errors.Is(err, xevent.ErrUnknownField) {
			t.Errorf("Field(x) on generic = %v", err)
		}
	}
}

func TestShortBuffer(t *testing.T) {
	c := mustCodec(t, xevent.LP64)
	if _, err := c.Decode(make([]byte, 95)); !errors.Is(err, xevent.ErrShortBuffer) {
		t.Errorf("Decode error = %v, want ErrShortBuffer", err)
	}
	if _, err := c.Field(make([]byte, 32), "type"); !errors.Is(err, xevent.ErrShortBuffer) {
		t.Errorf("Field error = %v, want ErrShortBuffer", err)
	}
}

func TestEncodeFreshShape(t *testing.T) {
	ev := &xevent.PropertyEvent{
		Header: xevent.Header{Type: xdef.PropertyNotify, SendEvent: true, Window: 0x600001},
		Atom:   39,
		Time:   1234,
		State:  xdef.PropertyDelete,
	}
	want := newBuffer(xevent.ILP32).
		i32(0, int32(xdef.PropertyNotify)).
		i32(8, 1).
		i32(16, 0x600001).
		i32(20, 39).
		i32(24, 1234).
		i32(28, xdef.PropertyDelete).b

	got, err := mustCodec(t, xevent.ILP32).Encode(ev)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode:\n got %x\nwant %x", got, want)
	}
}

func TestEncodeShapeMismatch(t *testing.T) {
	ev := &xevent.KeyEvent{Header: xevent.Header{Type: xdef.ButtonPress}}
	if _, err := xevent.Encode(ev); !errors.Is(err, xevent.ErrShapeMismatch) {
		t.Errorf("Encode error = %v, want ErrShapeMismatch", err)
	}
	g := &xevent.Generic{Header: xevent.Header{Type: xdef.GenericEvent}}
	if _, err := xevent.Encode(g); err != nil {
		t.Errorf("Encode(generic): %v", err)
	}
}

func TestClientMessage(t *testing.T) {
	ev := &xevent.ClientMessageEvent{
		Header:      xevent.Header{Type: xdef.ClientMessage, Window: 0x800002},
		MessageType: 301,
		Format:      32,
		Data:        xevent.NewClientData(xevent.LP64),
	}
	ev.Data.SetLongs([5]int64{302, -1, 0, 7, 0})

	lp, err := mustCodec(t, xevent.LP64).Encode(ev)
	if err != nil {
		t.Fatalf("Encode lp64: %v", err)
	}
	if got := int64(binary.LittleEndian.Uint64(lp[64:])); got != -1 {
		t.Errorf("l[1] at 64 = %d", got)
	}

	ilp, err := mustCodec(t, xevent.ILP32).Encode(ev)
	if err != nil {
		t.Fatalf("Encode ilp32: %v", err)
	}
	if got := int32(binary.LittleEndian.Uint32(ilp[28:])); got != 302 {
		t.Errorf("l[0] at 28 = %d", got)
	}
	if got := int32(binary.LittleEndian.Uint32(ilp[32:])); got != -1 {
		t.Errorf("l[1] at 32 = %d", got)
	}

	back, err := mustCodec(t, xevent.ILP32).Decode(ilp)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cm := back.(*xevent.ClientMessageEvent)
	if diff := cmp.Diff([5]int64{302, -1, 0, 7, 0}, cm.Data.Longs()); diff != "" {
		t.Errorf("Longs mismatch (-want +got):\n%s", diff)
	}

	var b [20]byte
	copy(b[:], "hello")
	cm.Data.SetBytes(b)
	if got := cm.Data.Bytes(); string(got[:5]) != "hello" {
		t.Errorf("Bytes = %q", got)
	}
	cm.Data.SetShorts([10]int16{-2, 3})
	if got := cm.Data.Shorts(); got[0] != -2 || got[1] != 3 {
		t.Errorf("Shorts = %v", got)
	}
}

type names map[xdef.Atom]string

func (n names) Name(a xdef.Atom) (string, bool) {
	s, ok := n[a]
	return s, ok
}

func TestFormat(t *testing.T) {
	ev := &xevent.ButtonEvent{
		Header:     xevent.Header{Type: xdef.ButtonPress, Serial: 7, Window: 0x400001},
		Root:       0x1,
		X:          15,
		Y:          42,
		State:      xdef.ShiftMask,
		Button:     1,
		SameScreen: true,
	}
	want := "Button(type=ButtonPress, serial=7, send_event=false, display=0x0, window=0x400001, " +
		"root=0x1, subwindow=0x0, time=0, x=15, y=42, x_root=0, y_root=0, state=Shift, " +
		"button=1, same_screen=true)"
	if got := xevent.Format(ev, nil); got != want {
		t.Errorf("Format:\n got %s\nwant %s", got, want)
	}

	prop := &xevent.PropertyEvent{Header: xevent.Header{Type: xdef.PropertyNotify}, Atom: 39}
	got := xevent.Format(prop, names{39: "WM_NAME"})
	if !strings.Contains(got, "atom=WM_NAME") {
		t.Errorf("Format with names = %s", got)
	}
	if got := xevent.Format(prop, nil); !strings.Contains(got, "atom=39") {
		t.Errorf("Format without names = %s", got)
	}
	if xevent.ShapeOf(prop) != "Property" {
		t.Errorf("ShapeOf = %q", xevent.ShapeOf(prop))
	}
}

func TestObject(t *testing.T) {
	var out bytes.Buffer
	logger := zerolog.New(&out)
	ev := &xevent.ExposeEvent{Header: xevent.Header{Type: xdef.Expose}, Width: 640, Height: 480}
	logger.Info().Object("event", xevent.Object(ev, nil)).Send()

	for _, want := range []string{`"shape":"Expose"`, `"type":"Expose"`, `"width":640`, `"height":480`} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("log line %s lacks %s", out.String(), want)
		}
	}
}
