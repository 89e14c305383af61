package keysym

import (
	"strconv"
	"strings"
)

// NoSymbol is the empty slot of a keyboard mapping.
const NoSymbol Sym = 0

// Function and modifier keys.
const (
	BackSpace  Sym = 0xff08
	Tab        Sym = 0xff09
	Linefeed   Sym = 0xff0a
	Clear      Sym = 0xff0b
	Return     Sym = 0xff0d
	Pause      Sym = 0xff13
	ScrollLock Sym = 0xff14
	SysReq     Sym = 0xff15
	Escape     Sym = 0xff1b
	MultiKey   Sym = 0xff20
	Delete     Sym = 0xffff

	Home     Sym = 0xff50
	Left     Sym = 0xff51
	Up       Sym = 0xff52
	Right    Sym = 0xff53
	Down     Sym = 0xff54
	PageUp   Sym = 0xff55
	PageDown Sym = 0xff56
	End      Sym = 0xff57
	Begin    Sym = 0xff58

	Select     Sym = 0xff60
	Print      Sym = 0xff61
	Execute    Sym = 0xff62
	Insert     Sym = 0xff63
	Undo       Sym = 0xff65
	Redo       Sym = 0xff66
	Menu       Sym = 0xff67
	Find       Sym = 0xff68
	Cancel     Sym = 0xff69
	Help       Sym = 0xff6a
	Break      Sym = 0xff6b
	ModeSwitch Sym = 0xff7e
	NumLock    Sym = 0xff7f

	KPSpace     Sym = 0xff80
	KPTab       Sym = 0xff89
	KPEnter     Sym = 0xff8d
	KPF1        Sym = 0xff91
	KPF2        Sym = 0xff92
	KPF3        Sym = 0xff93
	KPF4        Sym = 0xff94
	KPHome      Sym = 0xff95
	KPLeft      Sym = 0xff96
	KPUp        Sym = 0xff97
	KPRight     Sym = 0xff98
	KPDown      Sym = 0xff99
	KPPageUp    Sym = 0xff9a
	KPPageDown  Sym = 0xff9b
	KPEnd       Sym = 0xff9c
	KPBegin     Sym = 0xff9d
	KPInsert    Sym = 0xff9e
	KPDelete    Sym = 0xff9f
	KPMultiply  Sym = 0xffaa
	KPAdd       Sym = 0xffab
	KPSeparator Sym = 0xffac
	KPSubtract  Sym = 0xffad
	KPDecimal   Sym = 0xffae
	KPDivide    Sym = 0xffaf
	KP0         Sym = 0xffb0
	KP9         Sym = 0xffb9
	KPEqual     Sym = 0xffbd

	F1  Sym = 0xffbe
	F12 Sym = 0xffc9
	F35 Sym = 0xffe0

	ShiftL    Sym = 0xffe1
	ShiftR    Sym = 0xffe2
	ControlL  Sym = 0xffe3
	ControlR  Sym = 0xffe4
	CapsLock  Sym = 0xffe5
	ShiftLock Sym = 0xffe6
	MetaL     Sym = 0xffe7
	MetaR     Sym = 0xffe8
	AltL      Sym = 0xffe9
	AltR      Sym = 0xffea
	SuperL    Sym = 0xffeb
	SuperR    Sym = 0xffec
	HyperL    Sym = 0xffed
	HyperR    Sym = 0xffee

	ISOLevel3Shift Sym = 0xfe03
	ISOLeftTab     Sym = 0xfe20

	EuroSign   Sym = 0x20ac
	VoidSymbol Sym = 0xffffff
)

type named struct {
	sym  Sym
	name string
}

// When a code has several names the first one listed is canonical.
var namedSyms = []named{
	{BackSpace, "BackSpace"}, {Tab, "Tab"}, {Linefeed, "Linefeed"},
	{Clear, "Clear"}, {Return, "Return"}, {Pause, "Pause"},
	{ScrollLock, "Scroll_Lock"}, {SysReq, "Sys_Req"}, {Escape, "Escape"},
	{MultiKey, "Multi_key"}, {Delete, "Delete"},

	{Home, "Home"}, {Left, "Left"}, {Up, "Up"}, {Right, "Right"},
	{Down, "Down"}, {PageUp, "Prior"}, {PageUp, "Page_Up"},
	{PageDown, "Next"}, {PageDown, "Page_Down"}, {End, "End"},
	{Begin, "Begin"},

	{Select, "Select"}, {Print, "Print"}, {Execute, "Execute"},
	{Insert, "Insert"}, {Undo, "Undo"}, {Redo, "Redo"}, {Menu, "Menu"},
	{Find, "Find"}, {Cancel, "Cancel"}, {Help, "Help"}, {Break, "Break"},
	{ModeSwitch, "Mode_switch"}, {NumLock, "Num_Lock"},

	{KPSpace, "KP_Space"}, {KPTab, "KP_Tab"}, {KPEnter, "KP_Enter"},
	{KPF1, "KP_F1"}, {KPF2, "KP_F2"}, {KPF3, "KP_F3"}, {KPF4, "KP_F4"},
	{KPHome, "KP_Home"}, {KPLeft, "KP_Left"}, {KPUp, "KP_Up"},
	{KPRight, "KP_Right"}, {KPDown, "KP_Down"}, {KPPageUp, "KP_Prior"},
	{KPPageUp, "KP_Page_Up"}, {KPPageDown, "KP_Next"},
	{KPPageDown, "KP_Page_Down"}, {KPEnd, "KP_End"}, {KPBegin, "KP_Begin"},
	{KPInsert, "KP_Insert"}, {KPDelete, "KP_Delete"}, {KPEqual, "KP_Equal"},
	{KPMultiply, "KP_Multiply"}, {KPAdd, "KP_Add"},
	{KPSeparator, "KP_Separator"}, {KPSubtract, "KP_Subtract"},
	{KPDecimal, "KP_Decimal"}, {KPDivide, "KP_Divide"},

	{ShiftL, "Shift_L"}, {ShiftR, "Shift_R"}, {ControlL, "Control_L"},
	{ControlR, "Control_R"}, {CapsLock, "Caps_Lock"},
	{ShiftLock, "Shift_Lock"}, {MetaL, "Meta_L"}, {MetaR, "Meta_R"},
	{AltL, "Alt_L"}, {AltR, "Alt_R"}, {SuperL, "Super_L"},
	{SuperR, "Super_R"}, {HyperL, "Hyper_L"}, {HyperR, "Hyper_R"},

	{ISOLevel3Shift, "ISO_Level3_Shift"}, {ISOLeftTab, "ISO_Left_Tab"},
	{0xfe50, "dead_grave"}, {0xfe51, "dead_acute"},
	{0xfe52, "dead_circumflex"}, {0xfe53, "dead_tilde"},
	{0xfe54, "dead_macron"}, {0xfe55, "dead_breve"},
	{0xfe56, "dead_abovedot"}, {0xfe57, "dead_diaeresis"},
	{0xfe58, "dead_abovering"}, {0xfe59, "dead_doubleacute"},
	{0xfe5a, "dead_caron"}, {0xfe5b, "dead_cedilla"},
	{0xfe5c, "dead_ogonek"},

	{EuroSign, "EuroSign"}, {VoidSymbol, "VoidSymbol"},
	{0x13bc, "OE"}, {0x13bd, "oe"}, {0x13be, "Ydiaeresis"},
	{0x6b0, "numerosign"}, {0xaa9, "emdash"}, {0xaaa, "endash"},
	{0xaae, "ellipsis"}, {0xac9, "trademark"}, {0xad0, "leftsinglequotemark"},
	{0xad1, "rightsinglequotemark"}, {0xad2, "leftdoublequotemark"},
	{0xad3, "rightdoublequotemark"}, {0xaf1, "dagger"},
	{0xaf2, "doubledagger"}, {0xaf3, "checkmark"}, {0xaf4, "ballotcross"},

	{0x1008ff02, "XF86MonBrightnessUp"}, {0x1008ff03, "XF86MonBrightnessDown"},
	{0x1008ff11, "XF86AudioLowerVolume"}, {0x1008ff12, "XF86AudioMute"},
	{0x1008ff13, "XF86AudioRaiseVolume"}, {0x1008ff14, "XF86AudioPlay"},
	{0x1008ff15, "XF86AudioStop"}, {0x1008ff16, "XF86AudioPrev"},
	{0x1008ff17, "XF86AudioNext"}, {0x1008ff18, "XF86HomePage"},
	{0x1008ff19, "XF86Mail"}, {0x1008ff1d, "XF86Calculator"},
	{0x1008ff2a, "XF86PowerOff"}, {0x1008ff2c, "XF86Eject"},
	{0x1008ff2f, "XF86Sleep"}, {0x1008ffb2, "XF86AudioMicMute"},
}

// Names for 0x20-0x7e and 0xa0-0xff in code order. Digits and letters are
// filled in by init.
const (
	asciiPunct = "space exclam quotedbl numbersign dollar percent ampersand " +
		"apostrophe parenleft parenright asterisk plus comma minus period slash"
	asciiMid  = "colon semicolon less equal greater question at"
	asciiHigh = "bracketleft backslash bracketright asciicircum underscore grave"
	asciiTail = "braceleft bar braceright asciitilde"

	latin1 = "nobreakspace exclamdown cent sterling currency yen brokenbar section " +
		"diaeresis copyright ordfeminine guillemotleft notsign hyphen registered macron " +
		"degree plusminus twosuperior threesuperior acute mu paragraph periodcentered " +
		"cedilla onesuperior masculine guillemotright onequarter onehalf threequarters questiondown " +
		"Agrave Aacute Acircumflex Atilde Adiaeresis Aring AE Ccedilla " +
		"Egrave Eacute Ecircumflex Ediaeresis Igrave Iacute Icircumflex Idiaeresis " +
		"ETH Ntilde Ograve Oacute Ocircumflex Otilde Odiaeresis multiply " +
		"Oslash Ugrave Uacute Ucircumflex Udiaeresis Yacute THORN ssharp " +
		"agrave aacute acircumflex atilde adiaeresis aring ae ccedilla " +
		"egrave eacute ecircumflex ediaeresis igrave iacute icircumflex idiaeresis " +
		"eth ntilde ograve oacute ocircumflex otilde odiaeresis division " +
		"oslash ugrave uacute ucircumflex udiaeresis yacute thorn ydiaeresis"
)

var (
	symNames = make(map[Sym]string, 512)
	nameSyms = make(map[string]Sym, 512)
)

func latin1Names() []string {
	names := strings.Fields(asciiPunct)
	for c := '0'; c <= '9'; c++ {
		names = append(names, string(c))
	}
	names = append(names, strings.Fields(asciiMid)...)
	for c := 'A'; c <= 'Z'; c++ {
		names = append(names, string(c))
	}
	names = append(names, strings.Fields(asciiHigh)...)
	for c := 'a'; c <= 'z'; c++ {
		names = append(names, string(c))
	}
	return append(names, strings.Fields(asciiTail)...)
}

func init() {
	for i, n := range latin1Names() {
		namedSyms = append(namedSyms, named{Sym(0x20 + i), n})
	}
	for i, n := range strings.Fields(latin1) {
		namedSyms = append(namedSyms, named{Sym(0xa0 + i), n})
	}
	for i := 0; i < 35; i++ {
		namedSyms = append(namedSyms, named{F1 + Sym(i), "F" + strconv.Itoa(i+1)})
	}
	for i := 0; i < 10; i++ {
		namedSyms = append(namedSyms, named{KP0 + Sym(i), "KP_" + strconv.Itoa(i)})
	}

	for _, n := range namedSyms {
		if _, dup := symNames[n.sym]; !dup {
			symNames[n.sym] = n.name
		}
		nameSyms[n.name] = n.sym
	}
}
