package xdef_test

import (
	"testing"

	"github.com/labi-le/xbind/pkg/xdef"
)

func TestEventMaskString(t *testing.T) {
	tests := []struct {
		mask xdef.EventMask
		want string
	}{
		{0, "0"},
		{xdef.KeyPressMask, "KeyPress"},
		{xdef.PropertyChangeMask | xdef.StructureNotifyMask, "StructureNotify|PropertyChange"},
		{xdef.ExposureMask | 1<<30, "Exposure|0x40000000"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("EventMask(%#x).String() = %q, want %q", int64(tt.mask), got, tt.want)
		}
	}
}

func TestParseEventMask(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    xdef.EventMask
		wantErr bool
	}{
		{"plain", []string{"KeyPress", "KeyRelease"}, xdef.KeyPressMask | xdef.KeyReleaseMask, false},
		{"suffix and case", []string{"propertychangemask"}, xdef.PropertyChangeMask, false},
		{"blank ignored", []string{"", " Exposure "}, xdef.ExposureMask, false},
		{"empty", nil, xdef.NoEventMask, false},
		{"unknown", []string{"Nope"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xdef.ParseEventMask(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEventMask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEventMask() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModMask(t *testing.T) {
	m, err := xdef.ParseModMask([]string{"ctrl", "Shift", "alt", "super"})
	if err != nil {
		t.Fatalf("ParseModMask: %v", err)
	}
	want := xdef.ControlMask | xdef.ShiftMask | xdef.Mod1Mask | xdef.Mod4Mask
	if m != want {
		t.Errorf("ParseModMask = %v, want %v", m, want)
	}
	if got := m.String(); got != "Shift|Control|Mod1|Mod4" {
		t.Errorf("String() = %q", got)
	}
	if got := (xdef.Button1Mask | xdef.AnyModifier).String(); got != "Button1|Any" {
		t.Errorf("String() = %q", got)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  xdef.EventType
		want string
		core bool
	}{
		{xdef.KeyPress, "KeyPress", true},
		{xdef.ConfigureNotify, "ConfigureNotify", true},
		{xdef.MappingNotify, "MappingNotify", true},
		{xdef.GenericEvent, "GenericEvent", false},
		{0, "EventType(0)", false},
		{1, "EventType(1)", false},
		{99, "EventType(99)", false},
		{-1, "EventType(-1)", false},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.typ.Core(); got != tt.core {
			t.Errorf("%v.Core() = %v, want %v", tt.typ, got, tt.core)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := xdef.BadWindow.String(); got != "BadWindow" {
		t.Errorf("String() = %q", got)
	}
	if got := xdef.ErrorCode(200).String(); got != "ErrorCode(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseEventType(t *testing.T) {
	tests := []struct {
		in      string
		want    xdef.EventType
		wantErr bool
	}{
		{"KeyPress", xdef.KeyPress, false},
		{"clientmessage", xdef.ClientMessage, false},
		{" PropertyNotify ", xdef.PropertyNotify, false},
		{"GenericEvent", xdef.GenericEvent, false},
		{"KeyPressed", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := xdef.ParseEventType(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseEventType(%q) = %v, %v", tt.in, got, err)
		}
	}
}
