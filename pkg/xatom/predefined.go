package xatom

import "github.com/labi-le/xbind/pkg/xdef"

// Atoms the core protocol defines up front (<X11/Xatom.h>). They are never
// interned.
const (
	Primary            xdef.Atom = 1
	Secondary          xdef.Atom = 2
	Arc                xdef.Atom = 3
	AtomAtom           xdef.Atom = 4
	Bitmap             xdef.Atom = 5
	Cardinal           xdef.Atom = 6
	ColormapAtom       xdef.Atom = 7
	CursorAtom         xdef.Atom = 8
	CutBuffer0         xdef.Atom = 9
	CutBuffer1         xdef.Atom = 10
	CutBuffer2         xdef.Atom = 11
	CutBuffer3         xdef.Atom = 12
	CutBuffer4         xdef.Atom = 13
	CutBuffer5         xdef.Atom = 14
	CutBuffer6         xdef.Atom = 15
	CutBuffer7         xdef.Atom = 16
	DrawableAtom       xdef.Atom = 17
	Font               xdef.Atom = 18
	Integer            xdef.Atom = 19
	PixmapAtom         xdef.Atom = 20
	Point              xdef.Atom = 21
	Rectangle          xdef.Atom = 22
	ResourceManager    xdef.Atom = 23
	RGBColorMap        xdef.Atom = 24
	RGBBestMap         xdef.Atom = 25
	RGBBlueMap         xdef.Atom = 26
	RGBDefaultMap      xdef.Atom = 27
	RGBGrayMap         xdef.Atom = 28
	RGBGreenMap        xdef.Atom = 29
	RGBRedMap          xdef.Atom = 30
	String             xdef.Atom = 31
	VisualID           xdef.Atom = 32
	WindowAtom         xdef.Atom = 33
	WMCommand          xdef.Atom = 34
	WMHints            xdef.Atom = 35
	WMClientMachine    xdef.Atom = 36
	WMIconName         xdef.Atom = 37
	WMIconSize         xdef.Atom = 38
	WMName             xdef.Atom = 39
	WMNormalHints      xdef.Atom = 40
	WMSizeHints        xdef.Atom = 41
	WMZoomHints        xdef.Atom = 42
	MinSpace           xdef.Atom = 43
	NormSpace          xdef.Atom = 44
	MaxSpace           xdef.Atom = 45
	EndSpace           xdef.Atom = 46
	SuperscriptX       xdef.Atom = 47
	SuperscriptY       xdef.Atom = 48
	SubscriptX         xdef.Atom = 49
	SubscriptY         xdef.Atom = 50
	UnderlinePosition  xdef.Atom = 51
	UnderlineThickness xdef.Atom = 52
	StrikeoutAscent    xdef.Atom = 53
	StrikeoutDescent   xdef.Atom = 54
	ItalicAngle        xdef.Atom = 55
	XHeight            xdef.Atom = 56
	QuadWidth          xdef.Atom = 57
	Weight             xdef.Atom = 58
	PointSize          xdef.Atom = 59
	Resolution         xdef.Atom = 60
	Copyright          xdef.Atom = 61
	Notice             xdef.Atom = 62
	FontName           xdef.Atom = 63
	FamilyName         xdef.Atom = 64
	FullName           xdef.Atom = 65
	CapHeight          xdef.Atom = 66
	WMClass            xdef.Atom = 67
	WMTransientFor     xdef.Atom = 68

	LastPredefined = WMTransientFor
)

var predefinedNames = [...]string{
	Primary: "PRIMARY", Secondary: "SECONDARY", Arc: "ARC", AtomAtom: "ATOM",
	Bitmap: "BITMAP", Cardinal: "CARDINAL", ColormapAtom: "COLORMAP",
	CursorAtom: "CURSOR", CutBuffer0: "CUT_BUFFER0", CutBuffer1: "CUT_BUFFER1",
	CutBuffer2: "CUT_BUFFER2", CutBuffer3: "CUT_BUFFER3",
	CutBuffer4: "CUT_BUFFER4", CutBuffer5: "CUT_BUFFER5",
	CutBuffer6: "CUT_BUFFER6", CutBuffer7: "CUT_BUFFER7",
	DrawableAtom: "DRAWABLE", Font: "FONT", Integer: "INTEGER",
	PixmapAtom: "PIXMAP", Point: "POINT", Rectangle: "RECTANGLE",
	ResourceManager: "RESOURCE_MANAGER", RGBColorMap: "RGB_COLOR_MAP",
	RGBBestMap: "RGB_BEST_MAP", RGBBlueMap: "RGB_BLUE_MAP",
	RGBDefaultMap: "RGB_DEFAULT_MAP", RGBGrayMap: "RGB_GRAY_MAP",
	RGBGreenMap: "RGB_GREEN_MAP", RGBRedMap: "RGB_RED_MAP", String: "STRING",
	VisualID: "VISUALID", WindowAtom: "WINDOW", WMCommand: "WM_COMMAND",
	WMHints: "WM_HINTS", WMClientMachine: "WM_CLIENT_MACHINE",
	WMIconName: "WM_ICON_NAME", WMIconSize: "WM_ICON_SIZE", WMName: "WM_NAME",
	WMNormalHints: "WM_NORMAL_HINTS", WMSizeHints: "WM_SIZE_HINTS",
	WMZoomHints: "WM_ZOOM_HINTS", MinSpace: "MIN_SPACE", NormSpace: "NORM_SPACE",
	MaxSpace: "MAX_SPACE", EndSpace: "END_SPACE", SuperscriptX: "SUPERSCRIPT_X",
	SuperscriptY: "SUPERSCRIPT_Y", SubscriptX: "SUBSCRIPT_X",
	SubscriptY: "SUBSCRIPT_Y", UnderlinePosition: "UNDERLINE_POSITION",
	UnderlineThickness: "UNDERLINE_THICKNESS",
	StrikeoutAscent: "STRIKEOUT_ASCENT", StrikeoutDescent: "STRIKEOUT_DESCENT",
	ItalicAngle: "ITALIC_ANGLE", XHeight: "X_HEIGHT", QuadWidth: "QUAD_WIDTH",
	Weight: "WEIGHT", PointSize: "POINT_SIZE", Resolution: "RESOLUTION",
	Copyright: "COPYRIGHT", Notice: "NOTICE", FontName: "FONT_NAME",
	FamilyName: "FAMILY_NAME", FullName: "FULL_NAME", CapHeight: "CAP_HEIGHT",
	WMClass: "WM_CLASS", WMTransientFor: "WM_TRANSIENT_FOR",
}

var predefinedByName = func() map[string]xdef.Atom {
	m := make(map[string]xdef.Atom, len(predefinedNames))
	for a, name := range predefinedNames {
		if name != "" {
			m[name] = xdef.Atom(a)
		}
	}
	return m
}()

// Predefined returns the fixed atom for name, if the protocol defines one.
func Predefined(name string) (xdef.Atom, bool) {
	a, ok := predefinedByName[name]
	return a, ok
}

func predefinedName(a xdef.Atom) (string, bool) {
	if a == xdef.None || a > LastPredefined {
		return "", false
	}
	return predefinedNames[a], true
}
