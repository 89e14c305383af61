package xatom

import "github.com/labi-le/xbind/pkg/xdef"

// Atoms holds every atom the binding knows by name. A field is either the
// server's handle or xdef.None when the server has never interned the name.
type Atoms struct {
	// ICCCM
	WMProtocols    xdef.Atom
	WMDeleteWindow xdef.Atom
	WMTakeFocus    xdef.Atom
	WMState        xdef.Atom
	WMChangeState  xdef.Atom
	WMClientLeader xdef.Atom
	WMWindowRole   xdef.Atom

	// EWMH root properties
	NetSupported             xdef.Atom
	NetClientList            xdef.Atom
	NetClientListStacking    xdef.Atom
	NetNumberOfDesktops      xdef.Atom
	NetDesktopGeometry       xdef.Atom
	NetDesktopViewport       xdef.Atom
	NetCurrentDesktop        xdef.Atom
	NetDesktopNames          xdef.Atom
	NetActiveWindow          xdef.Atom
	NetWorkarea              xdef.Atom
	NetSupportingWMCheck     xdef.Atom
	NetCloseWindow           xdef.Atom
	NetMoveresizeWindow      xdef.Atom
	NetWMMoveresize          xdef.Atom
	NetSystemTrayOpcode      xdef.Atom
	NetSystemTrayOrientation xdef.Atom

	// EWMH application properties
	NetWMName               xdef.Atom
	NetWMVisibleName        xdef.Atom
	NetWMIconName           xdef.Atom
	NetWMDesktop            xdef.Atom
	NetWMWindowType         xdef.Atom
	NetWMState              xdef.Atom
	NetWMAllowedActions     xdef.Atom
	NetWMStrut              xdef.Atom
	NetWMStrutPartial       xdef.Atom
	NetWMIcon               xdef.Atom
	NetWMPid                xdef.Atom
	NetWMPing               xdef.Atom
	NetWMSyncRequest        xdef.Atom
	NetWMSyncRequestCounter xdef.Atom
	NetWMUserTime           xdef.Atom
	NetWMUserTimeWindow     xdef.Atom
	NetFrameExtents         xdef.Atom
	NetWMBypassCompositor   xdef.Atom
	NetWMWindowOpacity      xdef.Atom

	NetWMWindowTypeNormal       xdef.Atom
	NetWMWindowTypeDialog       xdef.Atom
	NetWMWindowTypeUtility      xdef.Atom
	NetWMWindowTypeToolbar      xdef.Atom
	NetWMWindowTypeSplash       xdef.Atom
	NetWMWindowTypeMenu         xdef.Atom
	NetWMWindowTypeDropdownMenu xdef.Atom
	NetWMWindowTypePopupMenu    xdef.Atom
	NetWMWindowTypeTooltip      xdef.Atom
	NetWMWindowTypeNotification xdef.Atom
	NetWMWindowTypeDock         xdef.Atom
	NetWMWindowTypeDesktop      xdef.Atom

	NetWMStateModal            xdef.Atom
	NetWMStateSticky           xdef.Atom
	NetWMStateMaximizedVert    xdef.Atom
	NetWMStateMaximizedHorz    xdef.Atom
	NetWMStateShaded           xdef.Atom
	NetWMStateSkipTaskbar      xdef.Atom
	NetWMStateSkipPager        xdef.Atom
	NetWMStateHidden           xdef.Atom
	NetWMStateFullscreen       xdef.Atom
	NetWMStateAbove            xdef.Atom
	NetWMStateBelow            xdef.Atom
	NetWMStateDemandsAttention xdef.Atom
	NetWMStateFocused          xdef.Atom

	MotifWMHints xdef.Atom

	// Selections and targets
	UTF8String       xdef.Atom
	CompoundText     xdef.Atom
	Text             xdef.Atom
	Clipboard        xdef.Atom
	Targets          xdef.Atom
	Multiple         xdef.Atom
	Timestamp        xdef.Atom
	SaveTargets      xdef.Atom
	ClipboardManager xdef.Atom
	Incr             xdef.Atom
	Delete           xdef.Atom
	Null             xdef.Atom
	AtomPair         xdef.Atom
	TextPlainUTF8    xdef.Atom
	TextURIList      xdef.Atom
	ImagePNG         xdef.Atom

	// Drag and drop
	XdndAware      xdef.Atom
	XdndEnter      xdef.Atom
	XdndPosition   xdef.Atom
	XdndStatus     xdef.Atom
	XdndLeave      xdef.Atom
	XdndDrop       xdef.Atom
	XdndFinished   xdef.Atom
	XdndSelection  xdef.Atom
	XdndTypeList   xdef.Atom
	XdndActionCopy xdef.Atom

	// Embedding
	XEmbed     xdef.Atom
	XEmbedInfo xdef.Atom
	Manager    xdef.Atom
}

type binding struct {
	name string
	dst  *xdef.Atom
}

// schema lists each field next to the atom name it is resolved from, in the
// order the names go out on the wire.
func (a *Atoms) schema() []binding {
	return []binding{
		{"WM_PROTOCOLS", &a.WMProtocols},
		{"WM_DELETE_WINDOW", &a.WMDeleteWindow},
		{"WM_TAKE_FOCUS", &a.WMTakeFocus},
		{"WM_STATE", &a.WMState},
		{"WM_CHANGE_STATE", &a.WMChangeState},
		{"WM_CLIENT_LEADER", &a.WMClientLeader},
		{"WM_WINDOW_ROLE", &a.WMWindowRole},

		{"_NET_SUPPORTED", &a.NetSupported},
		{"_NET_CLIENT_LIST", &a.NetClientList},
		{"_NET_CLIENT_LIST_STACKING", &a.NetClientListStacking},
		{"_NET_NUMBER_OF_DESKTOPS", &a.NetNumberOfDesktops},
		{"_NET_DESKTOP_GEOMETRY", &a.NetDesktopGeometry},
		{"_NET_DESKTOP_VIEWPORT", &a.NetDesktopViewport},
		{"_NET_CURRENT_DESKTOP", &a.NetCurrentDesktop},
		{"_NET_DESKTOP_NAMES", &a.NetDesktopNames},
		{"_NET_ACTIVE_WINDOW", &a.NetActiveWindow},
		{"_NET_WORKAREA", &a.NetWorkarea},
		{"_NET_SUPPORTING_WM_CHECK", &a.NetSupportingWMCheck},
		{"_NET_CLOSE_WINDOW", &a.NetCloseWindow},
		{"_NET_MOVERESIZE_WINDOW", &a.NetMoveresizeWindow},
		{"_NET_WM_MOVERESIZE", &a.NetWMMoveresize},
		{"_NET_SYSTEM_TRAY_OPCODE", &a.NetSystemTrayOpcode},
		{"_NET_SYSTEM_TRAY_ORIENTATION", &a.NetSystemTrayOrientation},

		{"_NET_WM_NAME", &a.NetWMName},
		{"_NET_WM_VISIBLE_NAME", &a.NetWMVisibleName},
		{"_NET_WM_ICON_NAME", &a.NetWMIconName},
		{"_NET_WM_DESKTOP", &a.NetWMDesktop},
		{"_NET_WM_WINDOW_TYPE", &a.NetWMWindowType},
		{"_NET_WM_STATE", &a.NetWMState},
		{"_NET_WM_ALLOWED_ACTIONS", &a.NetWMAllowedActions},
		{"_NET_WM_STRUT", &a.NetWMStrut},
		{"_NET_WM_STRUT_PARTIAL", &a.NetWMStrutPartial},
		{"_NET_WM_ICON", &a.NetWMIcon},
		{"_NET_WM_PID", &a.NetWMPid},
		{"_NET_WM_PING", &a.NetWMPing},
		{"_NET_WM_SYNC_REQUEST", &a.NetWMSyncRequest},
		{"_NET_WM_SYNC_REQUEST_COUNTER", &a.NetWMSyncRequestCounter},
		{"_NET_WM_USER_TIME", &a.NetWMUserTime},
		{"_NET_WM_USER_TIME_WINDOW", &a.NetWMUserTimeWindow},
		{"_NET_FRAME_EXTENTS", &a.NetFrameExtents},
		{"_NET_WM_BYPASS_COMPOSITOR", &a.NetWMBypassCompositor},
		{"_NET_WM_WINDOW_OPACITY", &a.NetWMWindowOpacity},

		{"_NET_WM_WINDOW_TYPE_NORMAL", &a.NetWMWindowTypeNormal},
		{"_NET_WM_WINDOW_TYPE_DIALOG", &a.NetWMWindowTypeDialog},
		{"_NET_WM_WINDOW_TYPE_UTILITY", &a.NetWMWindowTypeUtility},
		{"_NET_WM_WINDOW_TYPE_TOOLBAR", &a.NetWMWindowTypeToolbar},
		{"_NET_WM_WINDOW_TYPE_SPLASH", &a.NetWMWindowTypeSplash},
		{"_NET_WM_WINDOW_TYPE_MENU", &a.NetWMWindowTypeMenu},
		{"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU", &a.NetWMWindowTypeDropdownMenu},
		{"_NET_WM_WINDOW_TYPE_POPUP_MENU", &a.NetWMWindowTypePopupMenu},
		{"_NET_WM_WINDOW_TYPE_TOOLTIP", &a.NetWMWindowTypeTooltip},
		{"_NET_WM_WINDOW_TYPE_NOTIFICATION", &a.NetWMWindowTypeNotification},
		{"_NET_WM_WINDOW_TYPE_DOCK", &a.NetWMWindowTypeDock},
		{"_NET_WM_WINDOW_TYPE_DESKTOP", &a.NetWMWindowTypeDesktop},

		{"_NET_WM_STATE_MODAL", &a.NetWMStateModal},
		{"_NET_WM_STATE_STICKY", &a.NetWMStateSticky},
		{"_NET_WM_STATE_MAXIMIZED_VERT", &a.NetWMStateMaximizedVert},
		{"_NET_WM_STATE_MAXIMIZED_HORZ", &a.NetWMStateMaximizedHorz},
		{"_NET_WM_STATE_SHADED", &a.NetWMStateShaded},
		{"_NET_WM_STATE_SKIP_TASKBAR", &a.NetWMStateSkipTaskbar},
		{"_NET_WM_STATE_SKIP_PAGER", &a.NetWMStateSkipPager},
		{"_NET_WM_STATE_HIDDEN", &a.NetWMStateHidden},
		{"_NET_WM_STATE_FULLSCREEN", &a.NetWMStateFullscreen},
		{"_NET_WM_STATE_ABOVE", &a.NetWMStateAbove},
		{"_NET_WM_STATE_BELOW", &a.NetWMStateBelow},
		{"_NET_WM_STATE_DEMANDS_ATTENTION", &a.NetWMStateDemandsAttention},
		{"_NET_WM_STATE_FOCUSED", &a.NetWMStateFocused},

		{"_MOTIF_WM_HINTS", &a.MotifWMHints},

		{"UTF8_STRING", &a.UTF8String},
		{"COMPOUND_TEXT", &a.CompoundText},
		{"TEXT", &a.Text},
		{"CLIPBOARD", &a.Clipboard},
		{"TARGETS", &a.Targets},
		{"MULTIPLE", &a.Multiple},
		{"TIMESTAMP", &a.Timestamp},
		{"SAVE_TARGETS", &a.SaveTargets},
		{"CLIPBOARD_MANAGER", &a.ClipboardManager},
		{"INCR", &a.Incr},
		{"DELETE", &a.Delete},
		{"NULL", &a.Null},
		{"ATOM_PAIR", &a.AtomPair},
		{"text/plain;charset=utf-8", &a.TextPlainUTF8},
		{"text/uri-list", &a.TextURIList},
		{"image/png", &a.ImagePNG},

		{"XdndAware", &a.XdndAware},
		{"XdndEnter", &a.XdndEnter},
		{"XdndPosition", &a.XdndPosition},
		{"XdndStatus", &a.XdndStatus},
		{"XdndLeave", &a.XdndLeave},
		{"XdndDrop", &a.XdndDrop},
		{"XdndFinished", &a.XdndFinished},
		{"XdndSelection", &a.XdndSelection},
		{"XdndTypeList", &a.XdndTypeList},
		{"XdndActionCopy", &a.XdndActionCopy},

		{"_XEMBED", &a.XEmbed},
		{"_XEMBED_INFO", &a.XEmbedInfo},
		{"MANAGER", &a.Manager},
	}
}

// SchemaNames returns the atom names Atoms is resolved from.
func SchemaNames() []string {
	var a Atoms
	s := a.schema()
	out := make([]string, len(s))
	for i, b := range s {
		out[i] = b.name
	}
	return out
}
