package xdef

import "strconv"

// ErrorCode is the error_code of a protocol error reply.
type ErrorCode uint8

const (
	Success           ErrorCode = 0
	BadRequest        ErrorCode = 1
	BadValue          ErrorCode = 2
	BadWindow         ErrorCode = 3
	BadPixmap         ErrorCode = 4
	BadAtom           ErrorCode = 5
	BadCursor         ErrorCode = 6
	BadFont           ErrorCode = 7
	BadMatch          ErrorCode = 8
	BadDrawable       ErrorCode = 9
	BadAccess         ErrorCode = 10
	BadAlloc          ErrorCode = 11
	BadColor          ErrorCode = 12
	BadGC             ErrorCode = 13
	BadIDChoice       ErrorCode = 14
	BadName           ErrorCode = 15
	BadLength         ErrorCode = 16
	BadImplementation ErrorCode = 17

	FirstExtensionError ErrorCode = 128
	LastExtensionError  ErrorCode = 255
)

var errorCodeNames = [...]string{
	"Success", "BadRequest", "BadValue", "BadWindow", "BadPixmap", "BadAtom",
	"BadCursor", "BadFont", "BadMatch", "BadDrawable", "BadAccess", "BadAlloc",
	"BadColor", "BadGC", "BadIDChoice", "BadName", "BadLength",
	"BadImplementation",
}

func (c ErrorCode) String() string {
	if int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// Grab status replies (GrabPointer, GrabKeyboard).
const (
	GrabSuccess     = 0
	AlreadyGrabbed  = 1
	GrabInvalidTime = 2
	GrabNotViewable = 3
	GrabFrozen      = 4
)

const (
	GrabModeSync  = 0
	GrabModeAsync = 1
)

// Opcode is a core protocol major request code.
type Opcode uint8

const (
	XCreateWindow            Opcode = 1
	XChangeWindowAttributes  Opcode = 2
	XGetWindowAttributes     Opcode = 3
	XDestroyWindow           Opcode = 4
	XDestroySubwindows       Opcode = 5
	XChangeSaveSet           Opcode = 6
	XReparentWindow          Opcode = 7
	XMapWindow               Opcode = 8
	XMapSubwindows           Opcode = 9
	XUnmapWindow             Opcode = 10
	XUnmapSubwindows         Opcode = 11
	XConfigureWindow         Opcode = 12
	XCirculateWindow         Opcode = 13
	XGetGeometry             Opcode = 14
	XQueryTree               Opcode = 15
	XInternAtom              Opcode = 16
	XGetAtomName             Opcode = 17
	XChangeProperty          Opcode = 18
	XDeleteProperty          Opcode = 19
	XGetProperty             Opcode = 20
	XListProperties          Opcode = 21
	XSetSelectionOwner       Opcode = 22
	XGetSelectionOwner       Opcode = 23
	XConvertSelection        Opcode = 24
	XSendEvent               Opcode = 25
	XGrabPointer             Opcode = 26
	XUngrabPointer           Opcode = 27
	XGrabButton              Opcode = 28
	XUngrabButton            Opcode = 29
	XChangeActivePointerGrab Opcode = 30
	XGrabKeyboard            Opcode = 31
	XUngrabKeyboard          Opcode = 32
	XGrabKey                 Opcode = 33
	XUngrabKey               Opcode = 34
	XAllowEvents             Opcode = 35
	XGrabServer              Opcode = 36
	XUngrabServer            Opcode = 37
	XQueryPointer            Opcode = 38
	XGetMotionEvents         Opcode = 39
	XTranslateCoords         Opcode = 40
	XWarpPointer             Opcode = 41
	XSetInputFocus           Opcode = 42
	XGetInputFocus           Opcode = 43
	XQueryKeymap             Opcode = 44
	XOpenFont                Opcode = 45
	XCloseFont               Opcode = 46
	XQueryFont               Opcode = 47
	XQueryTextExtents        Opcode = 48
	XListFonts               Opcode = 49
	XListFontsWithInfo       Opcode = 50
	XSetFontPath             Opcode = 51
	XGetFontPath             Opcode = 52
	XCreatePixmap            Opcode = 53
	XFreePixmap              Opcode = 54
	XCreateGC                Opcode = 55
	XChangeGC                Opcode = 56
	XCopyGC                  Opcode = 57
	XSetDashes               Opcode = 58
	XSetClipRectangles       Opcode = 59
	XFreeGC                  Opcode = 60
	XClearArea               Opcode = 61
	XCopyArea                Opcode = 62
	XCopyPlane               Opcode = 63
	XPolyPoint               Opcode = 64
	XPolyLine                Opcode = 65
	XPolySegment             Opcode = 66
	XPolyRectangle           Opcode = 67
	XPolyArc                 Opcode = 68
	XFillPoly                Opcode = 69
	XPolyFillRectangle       Opcode = 70
	XPolyFillArc             Opcode = 71
	XPutImage                Opcode = 72
	XGetImage                Opcode = 73
	XPolyText8               Opcode = 74
	XPolyText16              Opcode = 75
	XImageText8              Opcode = 76
	XImageText16             Opcode = 77
	XCreateColormap          Opcode = 78
	XFreeColormap            Opcode = 79
	XCopyColormapAndFree     Opcode = 80
	XInstallColormap         Opcode = 81
	XUninstallColormap       Opcode = 82
	XListInstalledColormaps  Opcode = 83
	XAllocColor              Opcode = 84
	XAllocNamedColor         Opcode = 85
	XAllocColorCells         Opcode = 86
	XAllocColorPlanes        Opcode = 87
	XFreeColors              Opcode = 88
	XStoreColors             Opcode = 89
	XStoreNamedColor         Opcode = 90
	XQueryColors             Opcode = 91
	XLookupColor             Opcode = 92
	XCreateCursor            Opcode = 93
	XCreateGlyphCursor       Opcode = 94
	XFreeCursor              Opcode = 95
	XRecolorCursor           Opcode = 96
	XQueryBestSize           Opcode = 97
	XQueryExtension          Opcode = 98
	XListExtensions          Opcode = 99
	XChangeKeyboardMapping   Opcode = 100
	XGetKeyboardMapping      Opcode = 101
	XChangeKeyboardControl   Opcode = 102
	XGetKeyboardControl      Opcode = 103
	XBell                    Opcode = 104
	XChangePointerControl    Opcode = 105
	XGetPointerControl       Opcode = 106
	XSetScreenSaver          Opcode = 107
	XGetScreenSaver          Opcode = 108
	XChangeHosts             Opcode = 109
	XListHosts               Opcode = 110
	XSetAccessControl        Opcode = 111
	XSetCloseDownMode        Opcode = 112
	XKillClient              Opcode = 113
	XRotateProperties        Opcode = 114
	XForceScreenSaver        Opcode = 115
	XSetPointerMapping       Opcode = 116
	XGetPointerMapping       Opcode = 117
	XSetModifierMapping      Opcode = 118
	XGetModifierMapping      Opcode = 119
	XNoOperation             Opcode = 127
)
