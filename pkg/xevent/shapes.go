package xevent

import "github.com/labi-le/xbind/pkg/xdef"

var shapes = map[xdef.EventType]func() Event{
	xdef.KeyPress:         func() Event { return new(KeyEvent) },
	xdef.KeyRelease:       func() Event { return new(KeyEvent) },
	xdef.ButtonPress:      func() Event { return new(ButtonEvent) },
	xdef.ButtonRelease:    func() Event { return new(ButtonEvent) },
	xdef.MotionNotify:     func() Event { return new(MotionEvent) },
	xdef.EnterNotify:      func() Event { return new(CrossingEvent) },
	xdef.LeaveNotify:      func() Event { return new(CrossingEvent) },
	xdef.FocusIn:          func() Event { return new(FocusChangeEvent) },
	xdef.FocusOut:         func() Event { return new(FocusChangeEvent) },
	xdef.KeymapNotify:     func() Event { return new(KeymapEvent) },
	xdef.Expose:           func() Event { return new(ExposeEvent) },
	xdef.GraphicsExpose:   func() Event { return new(GraphicsExposeEvent) },
	xdef.NoExpose:         func() Event { return new(NoExposeEvent) },
	xdef.VisibilityNotify: func() Event { return new(VisibilityEvent) },
	xdef.CreateNotify:     func() Event { return new(CreateWindowEvent) },
	xdef.DestroyNotify:    func() Event { return new(DestroyWindowEvent) },
	xdef.UnmapNotify:      func() Event { return new(UnmapEvent) },
	xdef.MapNotify:        func() Event { return new(MapEvent) },
	xdef.MapRequest:       func() Event { return new(MapRequestEvent) },
	xdef.ReparentNotify:   func() Event { return new(ReparentEvent) },
	xdef.ConfigureNotify:  func() Event { return new(ConfigureEvent) },
	xdef.ConfigureRequest: func() Event { return new(ConfigureRequestEvent) },
	xdef.GravityNotify:    func() Event { return new(GravityEvent) },
	xdef.ResizeRequest:    func() Event { return new(ResizeRequestEvent) },
	xdef.CirculateNotify:  func() Event { return new(CirculateEvent) },
	xdef.CirculateRequest: func() Event { return new(CirculateRequestEvent) },
	xdef.PropertyNotify:   func() Event { return new(PropertyEvent) },
	xdef.SelectionClear:   func() Event { return new(SelectionClearEvent) },
	xdef.SelectionRequest: func() Event { return new(SelectionRequestEvent) },
	xdef.SelectionNotify:  func() Event { return new(SelectionEvent) },
	xdef.ColormapNotify:   func() Event { return new(ColormapEvent) },
	xdef.ClientMessage:    func() Event { return new(ClientMessageEvent) },
	xdef.MappingNotify:    func() Event { return new(MappingEvent) },
}

func newShape(t xdef.EventType) Event {
	if f, ok := shapes[t]; ok {
		return f()
	}
	return new(Generic)
}

// KeyEvent is XKeyEvent (KeyPress, KeyRelease).
type KeyEvent struct {
	Header
	Root       xdef.Window
	Subwindow  xdef.Window
	Time       xdef.Time
	X, Y       int32
	XRoot      int32
	YRoot      int32
	State      xdef.ModMask
	Keycode    uint32
	SameScreen bool
}

func (e *KeyEvent) walk(c *codec) {
	c.begin("Key")
	e.Header.walk(c, "window")
	xid(c, "root", &e.Root)
	xid(c, "subwindow", &e.Subwindow)
	ulong(c, "time", &e.Time)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "x_root", &e.XRoot)
	integer(c, "y_root", &e.YRoot)
	unsigned(c, "state", &e.State)
	unsigned(c, "keycode", &e.Keycode)
	boolean(c, "same_screen", &e.SameScreen)
}

// ButtonEvent is XButtonEvent (ButtonPress, ButtonRelease).
type ButtonEvent struct {
	Header
	Root       xdef.Window
	Subwindow  xdef.Window
	Time       xdef.Time
	X, Y       int32
	XRoot      int32
	YRoot      int32
	State      xdef.ModMask
	Button     uint32
	SameScreen bool
}

func (e *ButtonEvent) walk(c *codec) {
	c.begin("Button")
	e.Header.walk(c, "window")
	xid(c, "root", &e.Root)
	xid(c, "subwindow", &e.Subwindow)
	ulong(c, "time", &e.Time)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "x_root", &e.XRoot)
	integer(c, "y_root", &e.YRoot)
	unsigned(c, "state", &e.State)
	unsigned(c, "button", &e.Button)
	boolean(c, "same_screen", &e.SameScreen)
}

// MotionEvent is XMotionEvent.
type MotionEvent struct {
	Header
	Root       xdef.Window
	Subwindow  xdef.Window
	Time       xdef.Time
	X, Y       int32
	XRoot      int32
	YRoot      int32
	State      xdef.ModMask
	IsHint     int8
	SameScreen bool
}

func (e *MotionEvent) walk(c *codec) {
	c.begin("Motion")
	e.Header.walk(c, "window")
	xid(c, "root", &e.Root)
	xid(c, "subwindow", &e.Subwindow)
	ulong(c, "time", &e.Time)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "x_root", &e.XRoot)
	integer(c, "y_root", &e.YRoot)
	unsigned(c, "state", &e.State)
	char(c, "is_hint", &e.IsHint)
	boolean(c, "same_screen", &e.SameScreen)
}

// CrossingEvent is XCrossingEvent (EnterNotify, LeaveNotify).
type CrossingEvent struct {
	Header
	Root       xdef.Window
	Subwindow  xdef.Window
	Time       xdef.Time
	X, Y       int32
	XRoot      int32
	YRoot      int32
	Mode       int32
	Detail     int32
	SameScreen bool
	Focus      bool
	State      xdef.ModMask
}

func (e *CrossingEvent) walk(c *codec) {
	c.begin("Crossing")
	e.Header.walk(c, "window")
	xid(c, "root", &e.Root)
	xid(c, "subwindow", &e.Subwindow)
	ulong(c, "time", &e.Time)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "x_root", &e.XRoot)
	integer(c, "y_root", &e.YRoot)
	integer(c, "mode", &e.Mode)
	integer(c, "detail", &e.Detail)
	boolean(c, "same_screen", &e.SameScreen)
	boolean(c, "focus", &e.Focus)
	unsigned(c, "state", &e.State)
}

// FocusChangeEvent is XFocusChangeEvent (FocusIn, FocusOut).
type FocusChangeEvent struct {
	Header
	Mode   int32
	Detail int32
}

func (e *FocusChangeEvent) walk(c *codec) {
	c.begin("FocusChange")
	e.Header.walk(c, "window")
	integer(c, "mode", &e.Mode)
	integer(c, "detail", &e.Detail)
}

// KeymapEvent is XKeymapEvent.
type KeymapEvent struct {
	Header
	KeyVector [32]byte
}

func (e *KeymapEvent) walk(c *codec) {
	c.begin("Keymap")
	e.Header.walk(c, "window")
	array(c, "key_vector", e.KeyVector[:])
}

// ExposeEvent is XExposeEvent.
type ExposeEvent struct {
	Header
	X, Y          int32
	Width, Height int32
	Count         int32
}

func (e *ExposeEvent) walk(c *codec) {
	c.begin("Expose")
	e.Header.walk(c, "window")
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "width", &e.Width)
	integer(c, "height", &e.Height)
	integer(c, "count", &e.Count)
}

// GraphicsExposeEvent is XGraphicsExposeEvent.
type GraphicsExposeEvent struct {
	Header
	X, Y          int32
	Width, Height int32
	Count         int32
	MajorCode     int32
	MinorCode     int32
}

func (e *GraphicsExposeEvent) Drawable() xdef.Drawable { return xdef.Drawable(e.Header.Window) }

func (e *GraphicsExposeEvent) walk(c *codec) {
	c.begin("GraphicsExpose")
	e.Header.walk(c, "drawable")
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "width", &e.Width)
	integer(c, "height", &e.Height)
	integer(c, "count", &e.Count)
	integer(c, "major_code", &e.MajorCode)
	integer(c, "minor_code", &e.MinorCode)
}

// NoExposeEvent is XNoExposeEvent.
type NoExposeEvent struct {
	Header
	MajorCode int32
	MinorCode int32
}

func (e *NoExposeEvent) Drawable() xdef.Drawable { return xdef.Drawable(e.Header.Window) }

func (e *NoExposeEvent) walk(c *codec) {
	c.begin("NoExpose")
	e.Header.walk(c, "drawable")
	integer(c, "major_code", &e.MajorCode)
	integer(c, "minor_code", &e.MinorCode)
}

// VisibilityEvent is XVisibilityEvent.
type VisibilityEvent struct {
	Header
	State int32
}

func (e *VisibilityEvent) walk(c *codec) {
	c.begin("Visibility")
	e.Header.walk(c, "window")
	integer(c, "state", &e.State)
}

// The structure events below carry two windows. Header.Window holds the one
// the event was reported on (parent or event in Xlib terms) and the shape's
// own Window field, which shadows it, holds the window that changed.

// CreateWindowEvent is XCreateWindowEvent.
type CreateWindowEvent struct {
	Header
	Window           xdef.Window
	X, Y             int32
	Width, Height    int32
	BorderWidth      int32
	OverrideRedirect bool
}

func (e *CreateWindowEvent) Parent() xdef.Window { return e.Header.Window }

func (e *CreateWindowEvent) walk(c *codec) {
	c.begin("CreateWindow")
	e.Header.walk(c, "parent")
	xid(c, "window", &e.Window)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "width", &e.Width)
	integer(c, "height", &e.Height)
	integer(c, "border_width", &e.BorderWidth)
	boolean(c, "override_redirect", &e.OverrideRedirect)
}

// DestroyWindowEvent is XDestroyWindowEvent.
type DestroyWindowEvent struct {
	Header
	Window xdef.Window
}

func (e *DestroyWindowEvent) Event() xdef.Window { return e.Header.Window }

func (e *DestroyWindowEvent) walk(c *codec) {
	c.begin("DestroyWindow")
	e.Header.walk(c, "event")
	xid(c, "window", &e.Window)
}

// UnmapEvent is XUnmapEvent.
type UnmapEvent struct {
	Header
	Window        xdef.Window
	FromConfigure bool
}

func (e *UnmapEvent) Event() xdef.Window { return e.Header.Window }

func (e *UnmapEvent) walk(c *codec) {
	c.begin("Unmap")
	e.Header.walk(c, "event")
	xid(c, "window", &e.Window)
	boolean(c, "from_configure", &e.FromConfigure)
}

// MapEvent is XMapEvent.
type MapEvent struct {
	Header
	Window           xdef.Window
	OverrideRedirect bool
}

func (e *MapEvent) Event() xdef.Window { return e.Header.Window }

func (e *MapEvent) walk(c *codec) {
	c.begin("Map")
	e.Header.walk(c, "event")
	xid(c, "window", &e.Window)
	boolean(c, "override_redirect", &e.OverrideRedirect)
}

// MapRequestEvent is XMapRequestEvent.
type MapRequestEvent struct {
	Header
	Window xdef.Window
}

func (e *MapRequestEvent) Parent() xdef.Window { return e.Header.Window }

func (e *MapRequestEvent) walk(c *codec) {
	c.begin("MapRequest")
	e.Header.walk(c, "parent")
	xid(c, "window", &e.Window)
}

// ReparentEvent is XReparentEvent.
type ReparentEvent struct {
	Header
	Window           xdef.Window
	Parent           xdef.Window
	X, Y             int32
	OverrideRedirect bool
}

func (e *ReparentEvent) Event() xdef.Window { return e.Header.Window }

func (e *ReparentEvent) walk(c *codec) {
	c.begin("Reparent")
	e.Header.walk(c, "event")
	xid(c, "window", &e.Window)
	xid(c, "parent", &e.Parent)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	boolean(c, "override_redirect", &e.OverrideRedirect)
}

// ConfigureEvent is XConfigureEvent.
type ConfigureEvent struct {
	Header
	Window           xdef.Window
	X, Y             int32
	Width, Height    int32
	BorderWidth      int32
	Above            xdef.Window
	OverrideRedirect bool
}

func (e *ConfigureEvent) Event() xdef.Window { return e.Header.Window }

func (e *ConfigureEvent) walk(c *codec) {
	c.begin("Configure")
	e.Header.walk(c, "event")
	xid(c, "window", &e.Window)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "width", &e.Width)
	integer(c, "height", &e.Height)
	integer(c, "border_width", &e.BorderWidth)
	xid(c, "above", &e.Above)
	boolean(c, "override_redirect", &e.OverrideRedirect)
}

// GravityEvent is XGravityEvent.
type GravityEvent struct {
	Header
	Window xdef.Window
	X, Y   int32
}

func (e *GravityEvent) Event() xdef.Window { return e.Header.Window }

func (e *GravityEvent) walk(c *codec) {
	c.begin("Gravity")
	e.Header.walk(c, "event")
	xid(c, "window", &e.Window)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
}

// ResizeRequestEvent is XResizeRequestEvent.
type ResizeRequestEvent struct {
	Header
	Width, Height int32
}

func (e *ResizeRequestEvent) walk(c *codec) {
	c.begin("ResizeRequest")
	e.Header.walk(c, "window")
	integer(c, "width", &e.Width)
	integer(c, "height", &e.Height)
}

// ConfigureRequestEvent is XConfigureRequestEvent. ValueMask holds CWX and
// friends from xdef.
type ConfigureRequestEvent struct {
	Header
	Window        xdef.Window
	X, Y          int32
	Width, Height int32
	BorderWidth   int32
	Above         xdef.Window
	Detail        int32
	ValueMask     uint64
}

func (e *ConfigureRequestEvent) Parent() xdef.Window { return e.Header.Window }

func (e *ConfigureRequestEvent) walk(c *codec) {
	c.begin("ConfigureRequest")
	e.Header.walk(c, "parent")
	xid(c, "window", &e.Window)
	integer(c, "x", &e.X)
	integer(c, "y", &e.Y)
	integer(c, "width", &e.Width)
	integer(c, "height", &e.Height)
	integer(c, "border_width", &e.BorderWidth)
	xid(c, "above", &e.Above)
	integer(c, "detail", &e.Detail)
	ulong(c, "value_mask", &e.ValueMask)
}

// CirculateEvent is XCirculateEvent.
type CirculateEvent struct {
	Header
	Window xdef.Window
	Place  int32
}

func (e *CirculateEvent) Event() xdef.Window { return e.Header.Window }

func (e *CirculateEvent) walk(c *codec) {
	c.begin("Circulate")
	e.Header.walk(c, "event")
	xid(c, "window", &e.Window)
	integer(c, "place", &e.Place)
}

// CirculateRequestEvent is XCirculateRequestEvent.
type CirculateRequestEvent struct {
	Header
	Window xdef.Window
	Place  int32
}

func (e *CirculateRequestEvent) Parent() xdef.Window { return e.Header.Window }

func (e *CirculateRequestEvent) walk(c *codec) {
	c.begin("CirculateRequest")
	e.Header.walk(c, "parent")
	xid(c, "window", &e.Window)
	integer(c, "place", &e.Place)
}

// PropertyEvent is XPropertyEvent.
type PropertyEvent struct {
	Header
	Atom  xdef.Atom
	Time  xdef.Time
	State int32
}

func (e *PropertyEvent) walk(c *codec) {
	c.begin("Property")
	e.Header.walk(c, "window")
	atom(c, "atom", &e.Atom)
	ulong(c, "time", &e.Time)
	integer(c, "state", &e.State)
}

// SelectionClearEvent is XSelectionClearEvent.
type SelectionClearEvent struct {
	Header
	Selection xdef.Atom
	Time      xdef.Time
}

func (e *SelectionClearEvent) walk(c *codec) {
	c.begin("SelectionClear")
	e.Header.walk(c, "window")
	atom(c, "selection", &e.Selection)
	ulong(c, "time", &e.Time)
}

// SelectionRequestEvent is XSelectionRequestEvent.
type SelectionRequestEvent struct {
	Header
	Requestor xdef.Window
	Selection xdef.Atom
	Target    xdef.Atom
	Property  xdef.Atom
	Time      xdef.Time
}

func (e *SelectionRequestEvent) Owner() xdef.Window { return e.Header.Window }

func (e *SelectionRequestEvent) walk(c *codec) {
	c.begin("SelectionRequest")
	e.Header.walk(c, "owner")
	xid(c, "requestor", &e.Requestor)
	atom(c, "selection", &e.Selection)
	atom(c, "target", &e.Target)
	atom(c, "property", &e.Property)
	ulong(c, "time", &e.Time)
}

// SelectionEvent is XSelectionEvent (SelectionNotify).
type SelectionEvent struct {
	Header
	Selection xdef.Atom
	Target    xdef.Atom
	Property  xdef.Atom
	Time      xdef.Time
}

func (e *SelectionEvent) Requestor() xdef.Window { return e.Header.Window }

func (e *SelectionEvent) walk(c *codec) {
	c.begin("Selection")
	e.Header.walk(c, "requestor")
	atom(c, "selection", &e.Selection)
	atom(c, "target", &e.Target)
	atom(c, "property", &e.Property)
	ulong(c, "time", &e.Time)
}

// ColormapEvent is XColormapEvent.
type ColormapEvent struct {
	Header
	Colormap xdef.Colormap
	New      bool
	State    int32
}

func (e *ColormapEvent) walk(c *codec) {
	c.begin("Colormap")
	e.Header.walk(c, "window")
	xid(c, "colormap", &e.Colormap)
	boolean(c, "new", &e.New)
	integer(c, "state", &e.State)
}

// ClientMessageEvent is XClientMessageEvent.
type ClientMessageEvent struct {
	Header
	MessageType xdef.Atom
	Format      int32
	Data        ClientData
}

func (e *ClientMessageEvent) walk(c *codec) {
	c.begin("ClientMessage")
	e.Header.walk(c, "window")
	atom(c, "message_type", &e.MessageType)
	integer(c, "format", &e.Format)
	clientData(c, "data", &e.Data, e.Format)
}

// MappingEvent is XMappingEvent.
type MappingEvent struct {
	Header
	Request      int32
	FirstKeycode int32
	Count        int32
}

func (e *MappingEvent) walk(c *codec) {
	c.begin("Mapping")
	e.Header.walk(c, "window")
	integer(c, "request", &e.Request)
	integer(c, "first_keycode", &e.FirstKeycode)
	integer(c, "count", &e.Count)
}
