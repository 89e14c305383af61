package xevent_test

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
)

func offsets(l xevent.Layout) map[string]int {
	out := make(map[string]int, len(l.Fields))
	for _, f := range l.Fields {
		out[f.Name] = f.Offset
	}
	return out
}

func mustCodec(t *testing.T, a xevent.ABI) xevent.Codec {
	t.Helper()
	c, err := xevent.NewCodec(a)
	if err != nil {
		t.Fatalf("NewCodec(%v): %v", a, err)
	}
	return c
}

// Offsets below are sizeof/offsetof values of the Xlib.h structures compiled
// for x86_64 and i386.
func TestLayoutOffsets(t *testing.T) {
	header64 := map[string]int{"type": 0, "serial": 8, "send_event": 16, "display": 24}
	header32 := map[string]int{"type": 0, "serial": 4, "send_event": 8, "display": 12}
	with := func(base map[string]int, slot string, slotAt int, rest map[string]int) map[string]int {
		out := map[string]int{slot: slotAt}
		for k, v := range base {
			out[k] = v
		}
		for k, v := range rest {
			out[k] = v
		}
		return out
	}

	tests := []struct {
		name  string
		abi   xevent.ABI
		typ   xdef.EventType
		shape string
		size  int
		want  map[string]int
	}{
		{
			name: "button lp64", abi: xevent.LP64, typ: xdef.ButtonPress, shape: "Button", size: 96,
			want: with(header64, "window", 32, map[string]int{
				"root": 40, "subwindow": 48, "time": 56, "x": 64, "y": 68,
				"x_root": 72, "y_root": 76, "state": 80, "button": 84, "same_screen": 88,
			}),
		},
		{
			name: "key ilp32", abi: xevent.ILP32, typ: xdef.KeyRelease, shape: "Key", size: 60,
			want: with(header32, "window", 16, map[string]int{
				"root": 20, "subwindow": 24, "time": 28, "x": 32, "y": 36,
				"x_root": 40, "y_root": 44, "state": 48, "keycode": 52, "same_screen": 56,
			}),
		},
		{
			name: "motion lp64", abi: xevent.LP64, typ: xdef.MotionNotify, shape: "Motion", size: 96,
			want: with(header64, "window", 32, map[string]int{
				"root": 40, "subwindow": 48, "time": 56, "x": 64, "y": 68,
				"x_root": 72, "y_root": 76, "state": 80, "is_hint": 84, "same_screen": 88,
			}),
		},
		{
			name: "crossing lp64", abi: xevent.LP64, typ: xdef.EnterNotify, shape: "Crossing", size: 104,
			want: with(header64, "window", 32, map[string]int{
				"root": 40, "subwindow": 48, "time": 56, "x": 64, "y": 68,
				"x_root": 72, "y_root": 76, "mode": 80, "detail": 84,
				"same_screen": 88, "focus": 92, "state": 96,
			}),
		},
		{
			name: "keymap lp64", abi: xevent.LP64, typ: xdef.KeymapNotify, shape: "Keymap", size: 72,
			want: with(header64, "window", 32, map[string]int{"key_vector": 40}),
		},
		{
			name: "configure lp64", abi: xevent.LP64, typ: xdef.ConfigureNotify, shape: "Configure", size: 88,
			want: with(header64, "event", 32, map[string]int{
				"window": 40, "x": 48, "y": 52, "width": 56, "height": 60,
				"border_width": 64, "above": 72, "override_redirect": 80,
			}),
		},
		{
			name: "configure ilp32", abi: xevent.ILP32, typ: xdef.ConfigureNotify, shape: "Configure", size: 52,
			want: with(header32, "event", 16, map[string]int{
				"window": 20, "x": 24, "y": 28, "width": 32, "height": 36,
				"border_width": 40, "above": 44, "override_redirect": 48,
			}),
		},
		{
			name: "configure request lp64", abi: xevent.LP64, typ: xdef.ConfigureRequest, shape: "ConfigureRequest", size: 96,
			want: with(header64, "parent", 32, map[string]int{
				"window": 40, "x": 48, "y": 52, "width": 56, "height": 60,
				"border_width": 64, "above": 72, "detail": 80, "value_mask": 88,
			}),
		},
		{
			name: "client message lp64", abi: xevent.LP64, typ: xdef.ClientMessage, shape: "ClientMessage", size: 96,
			want: with(header64, "window", 32, map[string]int{"message_type": 40, "format": 48, "data": 56}),
		},
		{
			name: "client message ilp32", abi: xevent.ILP32, typ: xdef.ClientMessage, shape: "ClientMessage", size: 48,
			want: with(header32, "window", 16, map[string]int{"message_type": 20, "format": 24, "data": 28}),
		},
		{
			name: "property lp64", abi: xevent.LP64, typ: xdef.PropertyNotify, shape: "Property", size: 64,
			want: with(header64, "window", 32, map[string]int{"atom": 40, "time": 48, "state": 56}),
		},
		{
			name: "property ilp32", abi: xevent.ILP32, typ: xdef.PropertyNotify, shape: "Property", size: 32,
			want: with(header32, "window", 16, map[string]int{"atom": 20, "time": 24, "state": 28}),
		},
		{
			name: "selection request lp64", abi: xevent.LP64, typ: xdef.SelectionRequest, shape: "SelectionRequest", size: 80,
			want: with(header64, "owner", 32, map[string]int{
				"requestor": 40, "selection": 48, "target": 56, "property": 64, "time": 72,
			}),
		},
		{
			name: "selection request ilp32", abi: xevent.ILP32, typ: xdef.SelectionRequest, shape: "SelectionRequest", size: 40,
			want: with(header32, "owner", 16, map[string]int{
				"requestor": 20, "selection": 24, "target": 28, "property": 32, "time": 36,
			}),
		},
		{
			name: "graphics expose lp64", abi: xevent.LP64, typ: xdef.GraphicsExpose, shape: "GraphicsExpose", size: 72,
			want: with(header64, "drawable", 32, map[string]int{
				"x": 40, "y": 44, "width": 48, "height": 52, "count": 56,
				"major_code": 60, "minor_code": 64,
			}),
		},
		{
			name: "colormap lp64", abi: xevent.LP64, typ: xdef.ColormapNotify, shape: "Colormap", size: 56,
			want: with(header64, "window", 32, map[string]int{"colormap": 40, "new": 48, "state": 52}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := mustCodec(t, tt.abi).Layout(tt.typ)
			if !ok {
				t.Fatalf("Layout(%v) not found", tt.typ)
			}
			if l.Shape != tt.shape {
				t.Errorf("Shape = %q, want %q", l.Shape, tt.shape)
			}
			if l.Size != tt.size {
				t.Errorf("Size = %d, want %d", l.Size, tt.size)
			}
			if diff := cmp.Diff(tt.want, offsets(l)); diff != "" {
				t.Errorf("offsets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutsFitEvent(t *testing.T) {
	for _, a := range []xevent.ABI{xevent.LP64, xevent.ILP32, xevent.Native} {
		c := mustCodec(t, a)
		layouts := c.Layouts()
		if len(layouts) != 30 {
			t.Errorf("%v: %d layouts, want 29 shapes plus Generic", a, len(layouts))
		}
		for _, l := range layouts {
			if l.Size > c.EventSize() {
				t.Errorf("%v: %s is %d bytes, larger than XEvent (%d)", a, l.Shape, l.Size, c.EventSize())
			}
			for _, f := range l.Fields {
				if f.Offset+f.Width > l.Size {
					t.Errorf("%v: %s.%s overruns the struct", a, l.Shape, f.Name)
				}
			}
		}
	}
}

func TestLayoutByShape(t *testing.T) {
	c := mustCodec(t, xevent.LP64)
	l, ok := c.LayoutByShape("Key")
	if !ok {
		t.Fatal("Key layout missing")
	}
	if diff := cmp.Diff([]xdef.EventType{xdef.KeyPress, xdef.KeyRelease}, l.Types); diff != "" {
		t.Errorf("Types mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.LayoutByShape("Nope"); ok {
		t.Error("LayoutByShape(Nope) found a layout")
	}

	g, ok := c.Layout(xdef.GenericEvent)
	if ok {
		t.Error("Layout(GenericEvent) reported a known shape")
	}
	if g.Shape != "Generic" || g.Size != 40 {
		t.Errorf("generic layout = %s/%d", g.Shape, g.Size)
	}

	l.Fields[0].Name = "mutated"
	again, _ := c.LayoutByShape("Key")
	if again.Fields[0].Name != "type" {
		t.Error("Layout results share storage with the cache")
	}
}

func TestEventSize(t *testing.T) {
	if got := xevent.LP64.EventSize(); got != 192 {
		t.Errorf("LP64 EventSize = %d", got)
	}
	if got := xevent.ILP32.EventSize(); got != 96 {
		t.Errorf("ILP32 EventSize = %d", got)
	}
	if _, err := xevent.NewCodec(xevent.ABI{WordSize: 2, Order: binary.LittleEndian}); err == nil {
		t.Error("NewCodec accepted a 16-bit word")
	}
}
