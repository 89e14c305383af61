package xgbconn

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xfixes"
	"github.com/jezek/xgb/xproto"
	"github.com/labi-le/xbind/pkg/xdef"
	"github.com/labi-le/xbind/pkg/xevent"
)

// Enter/leave flag bits of the wire event.
const (
	flagFocus      = 1 << 0
	flagSameScreen = 1 << 1
)

func (c *Conn) translate(ev xgb.Event) (xevent.Event, wireSeq, bool) {
	return translate(ev, c.fixesBase)
}

// wireSeq is a 16-bit wire sequence number, or noSequence for events that
// carry none.
type wireSeq int32

const noSequence wireSeq = -1

func sequence(n uint16) wireSeq { return wireSeq(n) }

// translate widens one wire event into its XEvent shape. The serial is left
// for the caller; the sequence number is returned instead. fixesBase is the
// first XFIXES event code, or negative when the extension is not in use.
func translate(ev xgb.Event, fixesBase int) (xevent.Event, wireSeq, bool) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return keyEvent(xdef.KeyPress, e), sequence(e.Sequence), true
	case xproto.KeyReleaseEvent:
		return keyEvent(xdef.KeyRelease, xproto.KeyPressEvent(e)), sequence(e.Sequence), true
	case xproto.ButtonPressEvent:
		return buttonEvent(xdef.ButtonPress, e), sequence(e.Sequence), true
	case xproto.ButtonReleaseEvent:
		return buttonEvent(xdef.ButtonRelease, xproto.ButtonPressEvent(e)), sequence(e.Sequence), true
	case xproto.MotionNotifyEvent:
		return &xevent.MotionEvent{
			Header:     header(xdef.MotionNotify, e.Event),
			Root:       xdef.Window(e.Root),
			Subwindow:  xdef.Window(e.Child),
			Time:       xdef.Time(e.Time),
			X:          int32(e.EventX),
			Y:          int32(e.EventY),
			XRoot:      int32(e.RootX),
			YRoot:      int32(e.RootY),
			State:      xdef.ModMask(e.State),
			IsHint:     int8(e.Detail),
			SameScreen: e.SameScreen,
		}, sequence(e.Sequence), true
	case xproto.EnterNotifyEvent:
		return crossingEvent(xdef.EnterNotify, e), sequence(e.Sequence), true
	case xproto.LeaveNotifyEvent:
		return crossingEvent(xdef.LeaveNotify, xproto.EnterNotifyEvent(e)), sequence(e.Sequence), true
	case xproto.FocusInEvent:
		return focusEvent(xdef.FocusIn, e), sequence(e.Sequence), true
	case xproto.FocusOutEvent:
		return focusEvent(xdef.FocusOut, xproto.FocusInEvent(e)), sequence(e.Sequence), true
	case xproto.KeymapNotifyEvent:
		// No sequence number on the wire; key_vector[0] stays zero.
		out := &xevent.KeymapEvent{Header: xevent.Header{Type: xdef.KeymapNotify}}
		copy(out.KeyVector[1:], e.Keys)
		return out, noSequence, true
	case xproto.ExposeEvent:
		return &xevent.ExposeEvent{
			Header: header(xdef.Expose, e.Window),
			X:      int32(e.X),
			Y:      int32(e.Y),
			Width:  int32(e.Width),
			Height: int32(e.Height),
			Count:  int32(e.Count),
		}, sequence(e.Sequence), true
	case xproto.GraphicsExposureEvent:
		return &xevent.GraphicsExposeEvent{
			Header:    header(xdef.GraphicsExpose, xproto.Window(e.Drawable)),
			X:         int32(e.X),
			Y:         int32(e.Y),
			Width:     int32(e.Width),
			Height:    int32(e.Height),
			Count:     int32(e.Count),
			MajorCode: int32(e.MajorOpcode),
			MinorCode: int32(e.MinorOpcode),
		}, sequence(e.Sequence), true
	case xproto.NoExposureEvent:
		return &xevent.NoExposeEvent{
			Header:    header(xdef.NoExpose, xproto.Window(e.Drawable)),
			MajorCode: int32(e.MajorOpcode),
			MinorCode: int32(e.MinorOpcode),
		}, sequence(e.Sequence), true
	case xproto.VisibilityNotifyEvent:
		return &xevent.VisibilityEvent{
			Header: header(xdef.VisibilityNotify, e.Window),
			State:  int32(e.State),
		}, sequence(e.Sequence), true
	case xproto.CreateNotifyEvent:
		return &xevent.CreateWindowEvent{
			Header:           header(xdef.CreateNotify, e.Parent),
			Window:           xdef.Window(e.Window),
			X:                int32(e.X),
			Y:                int32(e.Y),
			Width:            int32(e.Width),
			Height:           int32(e.Height),
			BorderWidth:      int32(e.BorderWidth),
			OverrideRedirect: e.OverrideRedirect,
		}, sequence(e.Sequence), true
	case xproto.DestroyNotifyEvent:
		return &xevent.DestroyWindowEvent{
			Header: header(xdef.DestroyNotify, e.Event),
			Window: xdef.Window(e.Window),
		}, sequence(e.Sequence), true
	case xproto.UnmapNotifyEvent:
		return &xevent.UnmapEvent{
			Header:        header(xdef.UnmapNotify, e.Event),
			Window:        xdef.Window(e.Window),
			FromConfigure: e.FromConfigure,
		}, sequence(e.Sequence), true
	case xproto.MapNotifyEvent:
		return &xevent.MapEvent{
			Header:           header(xdef.MapNotify, e.Event),
			Window:           xdef.Window(e.Window),
			OverrideRedirect: e.OverrideRedirect,
		}, sequence(e.Sequence), true
	case xproto.MapRequestEvent:
		return &xevent.MapRequestEvent{
			Header: header(xdef.MapRequest, e.Parent),
			Window: xdef.Window(e.Window),
		}, sequence(e.Sequence), true
	case xproto.ReparentNotifyEvent:
		return &xevent.ReparentEvent{
			Header:           header(xdef.ReparentNotify, e.Event),
			Window:           xdef.Window(e.Window),
			Parent:           xdef.Window(e.Parent),
			X:                int32(e.X),
			Y:                int32(e.Y),
			OverrideRedirect: e.OverrideRedirect,
		}, sequence(e.Sequence), true
	case xproto.ConfigureNotifyEvent:
		return &xevent.ConfigureEvent{
			Header:           header(xdef.ConfigureNotify, e.Event),
			Window:           xdef.Window(e.Window),
			X:                int32(e.X),
			Y:                int32(e.Y),
			Width:            int32(e.Width),
			Height:           int32(e.Height),
			BorderWidth:      int32(e.BorderWidth),
			Above:            xdef.Window(e.AboveSibling),
			OverrideRedirect: e.OverrideRedirect,
		}, sequence(e.Sequence), true
	case xproto.ConfigureRequestEvent:
		return &xevent.ConfigureRequestEvent{
			Header:      header(xdef.ConfigureRequest, e.Parent),
			Window:      xdef.Window(e.Window),
			X:           int32(e.X),
			Y:           int32(e.Y),
			Width:       int32(e.Width),
			Height:      int32(e.Height),
			BorderWidth: int32(e.BorderWidth),
			Above:       xdef.Window(e.Sibling),
			Detail:      int32(e.StackMode),
			ValueMask:   uint64(e.ValueMask),
		}, sequence(e.Sequence), true
	case xproto.GravityNotifyEvent:
		return &xevent.GravityEvent{
			Header: header(xdef.GravityNotify, e.Event),
			Window: xdef.Window(e.Window),
			X:      int32(e.X),
			Y:      int32(e.Y),
		}, sequence(e.Sequence), true
	case xproto.ResizeRequestEvent:
		return &xevent.ResizeRequestEvent{
			Header: header(xdef.ResizeRequest, e.Window),
			Width:  int32(e.Width),
			Height: int32(e.Height),
		}, sequence(e.Sequence), true
	case xproto.CirculateNotifyEvent:
		return &xevent.CirculateEvent{
			Header: header(xdef.CirculateNotify, e.Event),
			Window: xdef.Window(e.Window),
			Place:  int32(e.Place),
		}, sequence(e.Sequence), true
	case xproto.CirculateRequestEvent:
		return &xevent.CirculateRequestEvent{
			Header: header(xdef.CirculateRequest, e.Event),
			Window: xdef.Window(e.Window),
			Place:  int32(e.Place),
		}, sequence(e.Sequence), true
	case xproto.PropertyNotifyEvent:
		return &xevent.PropertyEvent{
			Header: header(xdef.PropertyNotify, e.Window),
			Atom:   xdef.Atom(e.Atom),
			Time:   xdef.Time(e.Time),
			State:  int32(e.State),
		}, sequence(e.Sequence), true
	case xproto.SelectionClearEvent:
		return &xevent.SelectionClearEvent{
			Header:    header(xdef.SelectionClear, e.Owner),
			Selection: xdef.Atom(e.Selection),
			Time:      xdef.Time(e.Time),
		}, sequence(e.Sequence), true
	case xproto.SelectionRequestEvent:
		return &xevent.SelectionRequestEvent{
			Header:    header(xdef.SelectionRequest, e.Owner),
			Requestor: xdef.Window(e.Requestor),
			Selection: xdef.Atom(e.Selection),
			Target:    xdef.Atom(e.Target),
			Property:  xdef.Atom(e.Property),
			Time:      xdef.Time(e.Time),
		}, sequence(e.Sequence), true
	case xproto.SelectionNotifyEvent:
		return &xevent.SelectionEvent{
			Header:    header(xdef.SelectionNotify, e.Requestor),
			Selection: xdef.Atom(e.Selection),
			Target:    xdef.Atom(e.Target),
			Property:  xdef.Atom(e.Property),
			Time:      xdef.Time(e.Time),
		}, sequence(e.Sequence), true
	case xproto.ColormapNotifyEvent:
		return &xevent.ColormapEvent{
			Header:   header(xdef.ColormapNotify, e.Window),
			Colormap: xdef.Colormap(e.Colormap),
			New:      e.New,
			State:    int32(e.State),
		}, sequence(e.Sequence), true
	case xproto.ClientMessageEvent:
		return clientMessage(e), sequence(e.Sequence), true
	case xproto.MappingNotifyEvent:
		return &xevent.MappingEvent{
			Header:       xevent.Header{Type: xdef.MappingNotify},
			Request:      int32(e.Request),
			FirstKeycode: int32(e.FirstKeycode),
			Count:        int32(e.Count),
		}, sequence(e.Sequence), true
	case xfixes.SelectionNotifyEvent:
		if fixesBase < 0 {
			return nil, noSequence, false
		}
		return &xevent.Generic{
			Header: header(xdef.EventType(fixesBase+xfixes.SelectionNotify), e.Window),
		}, sequence(e.Sequence), true
	}
	return nil, noSequence, false
}

func header(t xdef.EventType, w xproto.Window) xevent.Header {
	return xevent.Header{Type: t, Window: xdef.Window(w)}
}

func keyEvent(t xdef.EventType, e xproto.KeyPressEvent) *xevent.KeyEvent {
	return &xevent.KeyEvent{
		Header:     header(t, e.Event),
		Root:       xdef.Window(e.Root),
		Subwindow:  xdef.Window(e.Child),
		Time:       xdef.Time(e.Time),
		X:          int32(e.EventX),
		Y:          int32(e.EventY),
		XRoot:      int32(e.RootX),
		YRoot:      int32(e.RootY),
		State:      xdef.ModMask(e.State),
		Keycode:    uint32(e.Detail),
		SameScreen: e.SameScreen,
	}
}

func buttonEvent(t xdef.EventType, e xproto.ButtonPressEvent) *xevent.ButtonEvent {
	return &xevent.ButtonEvent{
		Header:     header(t, e.Event),
		Root:       xdef.Window(e.Root),
		Subwindow:  xdef.Window(e.Child),
		Time:       xdef.Time(e.Time),
		X:          int32(e.EventX),
		Y:          int32(e.EventY),
		XRoot:      int32(e.RootX),
		YRoot:      int32(e.RootY),
		State:      xdef.ModMask(e.State),
		Button:     uint32(e.Detail),
		SameScreen: e.SameScreen,
	}
}

func crossingEvent(t xdef.EventType, e xproto.EnterNotifyEvent) *xevent.CrossingEvent {
	return &xevent.CrossingEvent{
		Header:     header(t, e.Event),
		Root:       xdef.Window(e.Root),
		Subwindow:  xdef.Window(e.Child),
		Time:       xdef.Time(e.Time),
		X:          int32(e.EventX),
		Y:          int32(e.EventY),
		XRoot:      int32(e.RootX),
		YRoot:      int32(e.RootY),
		Mode:       int32(e.Mode),
		Detail:     int32(e.Detail),
		SameScreen: e.SameScreenFocus&flagSameScreen != 0,
		Focus:      e.SameScreenFocus&flagFocus != 0,
		State:      xdef.ModMask(e.State),
	}
}

func focusEvent(t xdef.EventType, e xproto.FocusInEvent) *xevent.FocusChangeEvent {
	return &xevent.FocusChangeEvent{
		Header: header(t, e.Event),
		Mode:   int32(e.Mode),
		Detail: int32(e.Detail),
	}
}

// clientMessage copies the union through the view format selects. Longs are
// sign-extended from the 32-bit wire value.
func clientMessage(e xproto.ClientMessageEvent) *xevent.ClientMessageEvent {
	out := &xevent.ClientMessageEvent{
		Header:      header(xdef.ClientMessage, e.Window),
		MessageType: xdef.Atom(e.Type),
		Format:      int32(e.Format),
		Data:        xevent.NewClientData(xevent.Native),
	}
	switch e.Format {
	case 8:
		var b [20]byte
		copy(b[:], e.Data.Data8)
		out.Data.SetBytes(b)
	case 16:
		var s [10]int16
		for i := 0; i < min(len(s), len(e.Data.Data16)); i++ {
			s[i] = int16(e.Data.Data16[i])
		}
		out.Data.SetShorts(s)
	default:
		var l [5]int64
		for i := 0; i < min(len(l), len(e.Data.Data32)); i++ {
			l[i] = int64(int32(e.Data.Data32[i]))
		}
		out.Data.SetLongs(l)
	}
	return out
}

// toWire builds the 32-byte core event for the shapes SendEvent accepts.
func toWire(ev xevent.Event) ([]byte, error) {
	switch e := ev.(type) {
	case *xevent.ClientMessageEvent:
		return clientMessageWire(e), nil
	case *xevent.SelectionEvent:
		return xproto.SelectionNotifyEvent{
			Time:      xproto.Timestamp(e.Time),
			Requestor: xproto.Window(e.Requestor()),
			Selection: xproto.Atom(e.Selection),
			Target:    xproto.Atom(e.Target),
			Property:  xproto.Atom(e.Property),
		}.Bytes(), nil
	case *xevent.ConfigureEvent:
		return xproto.ConfigureNotifyEvent{
			Event:            xproto.Window(e.Event()),
			Window:           xproto.Window(e.Window),
			AboveSibling:     xproto.Window(e.Above),
			X:                int16(e.X),
			Y:                int16(e.Y),
			Width:            uint16(e.Width),
			Height:           uint16(e.Height),
			BorderWidth:      uint16(e.BorderWidth),
			OverrideRedirect: e.OverrideRedirect,
		}.Bytes(), nil
	case *xevent.PropertyEvent:
		return xproto.PropertyNotifyEvent{
			Window: xproto.Window(e.Header.Window),
			Atom:   xproto.Atom(e.Atom),
			Time:   xproto.Timestamp(e.Time),
			State:  byte(e.State),
		}.Bytes(), nil
	case *xevent.KeyEvent:
		wire := xproto.KeyPressEvent{
			Detail:     xproto.Keycode(e.Keycode),
			Time:       xproto.Timestamp(e.Time),
			Root:       xproto.Window(e.Root),
			Event:      xproto.Window(e.Header.Window),
			Child:      xproto.Window(e.Subwindow),
			RootX:      int16(e.XRoot),
			RootY:      int16(e.YRoot),
			EventX:     int16(e.X),
			EventY:     int16(e.Y),
			State:      uint16(e.State),
			SameScreen: e.SameScreen,
		}
		if e.Type == xdef.KeyRelease {
			return xproto.KeyReleaseEvent(wire).Bytes(), nil
		}
		return wire.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, xevent.ShapeOf(ev))
}

func clientMessageWire(e *xevent.ClientMessageEvent) []byte {
	var data xproto.ClientMessageDataUnion
	switch e.Format {
	case 8:
		b := e.Data.Bytes()
		data = xproto.ClientMessageDataUnionData8New(b[:])
	case 16:
		var s []uint16
		for _, v := range e.Data.Shorts() {
			s = append(s, uint16(v))
		}
		data = xproto.ClientMessageDataUnionData16New(s)
	default:
		var l []uint32
		for _, v := range e.Data.Longs() {
			l = append(l, uint32(v))
		}
		data = xproto.ClientMessageDataUnionData32New(l)
	}
	return xproto.ClientMessageEvent{
		Format: byte(e.Format),
		Window: xproto.Window(e.Header.Window),
		Type:   xproto.Atom(e.MessageType),
		Data:   data,
	}.Bytes()
}
