package xdef

import (
	"fmt"
	"strings"
)

// EventMask selects events on a window (XSelectInput, CWEventMask).
type EventMask int64

const (
	NoEventMask              EventMask = 0
	KeyPressMask             EventMask = 1 << 0
	KeyReleaseMask           EventMask = 1 << 1
	ButtonPressMask          EventMask = 1 << 2
	ButtonReleaseMask        EventMask = 1 << 3
	EnterWindowMask          EventMask = 1 << 4
	LeaveWindowMask          EventMask = 1 << 5
	PointerMotionMask        EventMask = 1 << 6
	PointerMotionHintMask    EventMask = 1 << 7
	Button1MotionMask        EventMask = 1 << 8
	Button2MotionMask        EventMask = 1 << 9
	Button3MotionMask        EventMask = 1 << 10
	Button4MotionMask        EventMask = 1 << 11
	Button5MotionMask        EventMask = 1 << 12
	ButtonMotionMask         EventMask = 1 << 13
	KeymapStateMask          EventMask = 1 << 14
	ExposureMask             EventMask = 1 << 15
	VisibilityChangeMask     EventMask = 1 << 16
	StructureNotifyMask      EventMask = 1 << 17
	ResizeRedirectMask       EventMask = 1 << 18
	SubstructureNotifyMask   EventMask = 1 << 19
	SubstructureRedirectMask EventMask = 1 << 20
	FocusChangeMask          EventMask = 1 << 21
	PropertyChangeMask       EventMask = 1 << 22
	ColormapChangeMask       EventMask = 1 << 23
	OwnerGrabButtonMask      EventMask = 1 << 24
)

// ModMask is the key/button state carried by input events.
type ModMask uint32

const (
	ShiftMask   ModMask = 1 << 0
	LockMask    ModMask = 1 << 1
	ControlMask ModMask = 1 << 2
	Mod1Mask    ModMask = 1 << 3
	Mod2Mask    ModMask = 1 << 4
	Mod3Mask    ModMask = 1 << 5
	Mod4Mask    ModMask = 1 << 6
	Mod5Mask    ModMask = 1 << 7
	Button1Mask ModMask = 1 << 8
	Button2Mask ModMask = 1 << 9
	Button3Mask ModMask = 1 << 10
	Button4Mask ModMask = 1 << 11
	Button5Mask ModMask = 1 << 12
	AnyModifier ModMask = 1 << 15
)

// Window attribute value mask (XCreateWindow, XChangeWindowAttributes).
const (
	CWBackPixmap       = 1 << 0
	CWBackPixel        = 1 << 1
	CWBorderPixmap     = 1 << 2
	CWBorderPixel      = 1 << 3
	CWBitGravity       = 1 << 4
	CWWinGravity       = 1 << 5
	CWBackingStore     = 1 << 6
	CWBackingPlanes    = 1 << 7
	CWBackingPixel     = 1 << 8
	CWOverrideRedirect = 1 << 9
	CWSaveUnder        = 1 << 10
	CWEventMask        = 1 << 11
	CWDontPropagate    = 1 << 12
	CWColormap         = 1 << 13
	CWCursor           = 1 << 14
)

// ConfigureWindow value mask; also the value_mask of ConfigureRequest events.
const (
	CWX           = 1 << 0
	CWY           = 1 << 1
	CWWidth       = 1 << 2
	CWHeight      = 1 << 3
	CWBorderWidth = 1 << 4
	CWSibling     = 1 << 5
	CWStackMode   = 1 << 6
)

// Graphics context value mask.
const (
	GCFunction          = 1 << 0
	GCPlaneMask         = 1 << 1
	GCForeground        = 1 << 2
	GCBackground        = 1 << 3
	GCLineWidth         = 1 << 4
	GCLineStyle         = 1 << 5
	GCCapStyle          = 1 << 6
	GCJoinStyle         = 1 << 7
	GCFillStyle         = 1 << 8
	GCFillRule          = 1 << 9
	GCTile              = 1 << 10
	GCStipple           = 1 << 11
	GCTileStipXOrigin   = 1 << 12
	GCTileStipYOrigin   = 1 << 13
	GCFont              = 1 << 14
	GCSubwindowMode     = 1 << 15
	GCGraphicsExposures = 1 << 16
	GCClipXOrigin       = 1 << 17
	GCClipYOrigin       = 1 << 18
	GCClipMask          = 1 << 19
	GCDashOffset        = 1 << 20
	GCDashList          = 1 << 21
	GCArcMode           = 1 << 22
	GCLastBit           = 22
)

// WM_HINTS flags.
const (
	InputHint        = 1 << 0
	StateHint        = 1 << 1
	IconPixmapHint   = 1 << 2
	IconWindowHint   = 1 << 3
	IconPositionHint = 1 << 4
	IconMaskHint     = 1 << 5
	WindowGroupHint  = 1 << 6
	XUrgencyHint     = 1 << 8
	AllHints         = InputHint | StateHint | IconPixmapHint | IconWindowHint |
		IconPositionHint | IconMaskHint | WindowGroupHint
)

// WM_NORMAL_HINTS flags.
const (
	USPosition  = 1 << 0
	USSize      = 1 << 1
	PPosition   = 1 << 2
	PSize       = 1 << 3
	PMinSize    = 1 << 4
	PMaxSize    = 1 << 5
	PResizeInc  = 1 << 6
	PAspect     = 1 << 7
	PBaseSize   = 1 << 8
	PWinGravity = 1 << 9
)

// WM_STATE values.
const (
	WithdrawnState = 0
	NormalState    = 1
	IconicState    = 3
)

type maskName[T ~int64 | ~uint32] struct {
	bit  T
	name string
}

var eventMaskNames = []maskName[EventMask]{
	{KeyPressMask, "KeyPress"},
	{KeyReleaseMask, "KeyRelease"},
	{ButtonPressMask, "ButtonPress"},
	{ButtonReleaseMask, "ButtonRelease"},
	{EnterWindowMask, "EnterWindow"},
	{LeaveWindowMask, "LeaveWindow"},
	{PointerMotionMask, "PointerMotion"},
	{PointerMotionHintMask, "PointerMotionHint"},
	{Button1MotionMask, "Button1Motion"},
	{Button2MotionMask, "Button2Motion"},
	{Button3MotionMask, "Button3Motion"},
	{Button4MotionMask, "Button4Motion"},
	{Button5MotionMask, "Button5Motion"},
	{ButtonMotionMask, "ButtonMotion"},
	{KeymapStateMask, "KeymapState"},
	{ExposureMask, "Exposure"},
	{VisibilityChangeMask, "VisibilityChange"},
	{StructureNotifyMask, "StructureNotify"},
	{ResizeRedirectMask, "ResizeRedirect"},
	{SubstructureNotifyMask, "SubstructureNotify"},
	{SubstructureRedirectMask, "SubstructureRedirect"},
	{FocusChangeMask, "FocusChange"},
	{PropertyChangeMask, "PropertyChange"},
	{ColormapChangeMask, "ColormapChange"},
	{OwnerGrabButtonMask, "OwnerGrabButton"},
}

var modMaskNames = []maskName[ModMask]{
	{ShiftMask, "Shift"},
	{LockMask, "Lock"},
	{ControlMask, "Control"},
	{Mod1Mask, "Mod1"},
	{Mod2Mask, "Mod2"},
	{Mod3Mask, "Mod3"},
	{Mod4Mask, "Mod4"},
	{Mod5Mask, "Mod5"},
	{Button1Mask, "Button1"},
	{Button2Mask, "Button2"},
	{Button3Mask, "Button3"},
	{Button4Mask, "Button4"},
	{Button5Mask, "Button5"},
	{AnyModifier, "Any"},
}

func (m EventMask) String() string {
	return formatMask(m, eventMaskNames)
}

func (m ModMask) String() string {
	return formatMask(m, modMaskNames)
}

// ParseEventMask ORs together mask names. Names are matched case-insensitively
// with or without the "Mask" suffix ("PropertyChange", "propertychangemask").
func ParseEventMask(names []string) (EventMask, error) {
	return parseMask(names, eventMaskNames)
}

// ParseModMask is ParseEventMask for modifier names; "ctrl" and "alt" are
// accepted as Control and Mod1.
func ParseModMask(names []string) (ModMask, error) {
	aliased := make([]string, len(names))
	for i, n := range names {
		switch strings.ToLower(n) {
		case "ctrl":
			n = "Control"
		case "alt":
			n = "Mod1"
		case "super":
			n = "Mod4"
		}
		aliased[i] = n
	}
	return parseMask(aliased, modMaskNames)
}

func formatMask[T ~int64 | ~uint32](m T, names []maskName[T]) string {
	if m == 0 {
		return "0"
	}
	var (
		parts []string
		rest  = m
	)
	for _, n := range names {
		if m&n.bit != 0 {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(rest)))
	}
	return strings.Join(parts, "|")
}

func parseMask[T ~int64 | ~uint32](in []string, names []maskName[T]) (T, error) {
	var m T
	for _, raw := range in {
		s := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "mask")
		if s == "" {
			continue
		}
		found := false
		for _, n := range names {
			if strings.ToLower(n.name) == s {
				m |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown mask name %q", raw)
		}
	}
	return m, nil
}
