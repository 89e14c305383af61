package xdef

import (
	"fmt"
	"strconv"
	"strings"
)

// EventType is the discriminant stored in the first member of every XEvent.
type EventType int32

const (
	KeyPress         EventType = 2
	KeyRelease       EventType = 3
	ButtonPress      EventType = 4
	ButtonRelease    EventType = 5
	MotionNotify     EventType = 6
	EnterNotify      EventType = 7
	LeaveNotify      EventType = 8
	FocusIn          EventType = 9
	FocusOut         EventType = 10
	KeymapNotify     EventType = 11
	Expose           EventType = 12
	GraphicsExpose   EventType = 13
	NoExpose         EventType = 14
	VisibilityNotify EventType = 15
	CreateNotify     EventType = 16
	DestroyNotify    EventType = 17
	UnmapNotify      EventType = 18
	MapNotify        EventType = 19
	MapRequest       EventType = 20
	ReparentNotify   EventType = 21
	ConfigureNotify  EventType = 22
	ConfigureRequest EventType = 23
	GravityNotify    EventType = 24
	ResizeRequest    EventType = 25
	CirculateNotify  EventType = 26
	CirculateRequest EventType = 27
	PropertyNotify   EventType = 28
	SelectionClear   EventType = 29
	SelectionRequest EventType = 30
	SelectionNotify  EventType = 31
	ColormapNotify   EventType = 32
	ClientMessage    EventType = 33
	MappingNotify    EventType = 34
	GenericEvent     EventType = 35
	LASTEvent        EventType = 36
)

// SendEventBit marks a synthetic event in the 32-byte wire encoding. Xlib
// strips it into the separate send_event member.
const SendEventBit = 0x80

var eventTypeNames = [...]string{
	KeyPress:         "KeyPress",
	KeyRelease:       "KeyRelease",
	ButtonPress:      "ButtonPress",
	ButtonRelease:    "ButtonRelease",
	MotionNotify:     "MotionNotify",
	EnterNotify:      "EnterNotify",
	LeaveNotify:      "LeaveNotify",
	FocusIn:          "FocusIn",
	FocusOut:         "FocusOut",
	KeymapNotify:     "KeymapNotify",
	Expose:           "Expose",
	GraphicsExpose:   "GraphicsExpose",
	NoExpose:         "NoExpose",
	VisibilityNotify: "VisibilityNotify",
	CreateNotify:     "CreateNotify",
	DestroyNotify:    "DestroyNotify",
	UnmapNotify:      "UnmapNotify",
	MapNotify:        "MapNotify",
	MapRequest:       "MapRequest",
	ReparentNotify:   "ReparentNotify",
	ConfigureNotify:  "ConfigureNotify",
	ConfigureRequest: "ConfigureRequest",
	GravityNotify:    "GravityNotify",
	ResizeRequest:    "ResizeRequest",
	CirculateNotify:  "CirculateNotify",
	CirculateRequest: "CirculateRequest",
	PropertyNotify:   "PropertyNotify",
	SelectionClear:   "SelectionClear",
	SelectionRequest: "SelectionRequest",
	SelectionNotify:  "SelectionNotify",
	ColormapNotify:   "ColormapNotify",
	ClientMessage:    "ClientMessage",
	MappingNotify:    "MappingNotify",
	GenericEvent:     "GenericEvent",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) && eventTypeNames[t] != "" {
		return eventTypeNames[t]
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// ParseEventType finds a core event type by name, ignoring case.
func ParseEventType(name string) (EventType, error) {
	for t, n := range eventTypeNames {
		if n != "" && strings.EqualFold(n, strings.TrimSpace(name)) {
			return EventType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// Core reports whether t is one of the core protocol events (KeyPress through
// MappingNotify).
func (t EventType) Core() bool {
	return t >= KeyPress && t <= MappingNotify
}

// Notify modes for crossing and focus events.
const (
	NotifyNormal       = 0
	NotifyGrab         = 1
	NotifyUngrab       = 2
	NotifyWhileGrabbed = 3
)

const NotifyHint = 1

// Notify details for crossing and focus events.
const (
	NotifyAncestor         = 0
	NotifyVirtual          = 1
	NotifyInferior         = 2
	NotifyNonlinear        = 3
	NotifyNonlinearVirtual = 4
	NotifyPointer          = 5
	NotifyPointerRoot      = 6
	NotifyDetailNone       = 7
)

// Visibility states.
const (
	VisibilityUnobscured        = 0
	VisibilityPartiallyObscured = 1
	VisibilityFullyObscured     = 2
)

// Circulation places.
const (
	PlaceOnTop    = 0
	PlaceOnBottom = 1
)

// Property states.
const (
	PropertyNewValue = 0
	PropertyDelete   = 1
)

// Colormap states.
const (
	ColormapUninstalled = 0
	ColormapInstalled   = 1
)

// Mapping requests.
const (
	MappingModifier = 0
	MappingKeyboard = 1
	MappingPointer  = 2
)

// Stack modes.
const (
	Above    = 0
	Below    = 1
	TopIf    = 2
	BottomIf = 3
	Opposite = 4
)

// Window map states.
const (
	IsUnmapped   = 0
	IsUnviewable = 1
	IsViewable   = 2
)

// Pointer buttons.
const (
	Button1 = 1
	Button2 = 2
	Button3 = 3
	Button4 = 4
	Button5 = 5
)
