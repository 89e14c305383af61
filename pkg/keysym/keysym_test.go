package keysym_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/xbind/pkg/keysym"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		code   keysym.Sym
		want   rune
		wantOK bool
	}{
		{"ascii letter", 0x61, 'a', true},
		{"ascii space", 0x20, ' ', true},
		{"latin1 eacute", 0xe9, 'é', true},
		{"nobreakspace", 0xa0, 0xa0, true},
		{"unicode euro", 0x010020ac, '€', true},
		{"unicode nul", 0x01000000, 0, true},
		{"unicode surrogate", 0x0100d800, 0, false},
		{"legacy euro", keysym.EuroSign, '€', true},
		{"latin2 Lstroke", 0x1a3, 'Ł', true},
		{"latin9 OE", 0x13bc, 'Œ', true},
		{"cyrillic ya", 0x6d1, 'я', true},
		{"cyrillic YA", 0x6f1, 'Я', true},
		{"cyrillic a", 0x6c1, 'а', true},
		{"greek alpha", 0x7e1, 'α', true},
		{"greek OMEGA", 0x7d9, 'Ω', true},
		{"greek final sigma", 0x7f3, 'ς', true},
		{"hebrew alef", 0xce0, 'א', true},
		{"thai digit zero", 0xdf0, '๐', true},
		{"arabic comma", 0x5ac, '،', true},
		{"katakana a", 0x4b1, 'ア', true},
		{"emdash", 0xaa9, '—', true},
		{"return", keysym.Return, '\r', true},
		{"keypad 7", keysym.KP0 + 7, '7', true},
		{"keypad divide", keysym.KPDivide, '/', true},
		{"shift has no char", keysym.ShiftL, 0, false},
		{"F1 has no char", keysym.F1, 0, false},
		{"control range", 0x1f, 0, false},
		{"void", keysym.VoidSymbol, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keysym.Lookup(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%#x) ok = %v, want %v", uint32(tt.code), ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Lookup(%#x) = %U, want %U", uint32(tt.code), got, tt.want)
			}
		})
	}
}

func TestLookupUnicodeRange(t *testing.T) {
	for _, r := range []rune{0x41, 0xe9, 0x3b1, 0x20ac, 0x1f600, 0x10ffff} {
		got, ok := keysym.Lookup(0x01000000 + keysym.Sym(r))
		if !ok || got != r {
			t.Errorf("Lookup(U+%04X) = %U, %v", r, got, ok)
		}
	}
}

func TestLatin1Identity(t *testing.T) {
	for c := keysym.Sym(0x20); c <= 0xff; c++ {
		got, ok := keysym.Lookup(c)
		if !ok || got != rune(c) {
			t.Errorf("Lookup(%#x) = %U, %v; want %U", uint32(c), got, ok, rune(c))
		}
		if back := keysym.FromRune(rune(c)); back != c {
			t.Errorf("FromRune(%U) = %#x", rune(c), uint32(back))
		}
		if c > 0x7e && c < 0xa0 {
			continue
		}
		if _, named := keysym.Name(c); !named {
			t.Errorf("Latin-1 code %#x has no name", uint32(c))
		}
	}
}

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want keysym.Sym
	}{
		{'a', 0x61},
		{'é', 0xe9},
		{'€', keysym.EuroSign},
		{'\t', keysym.Tab},
		{'\r', keysym.Return},
		{'я', 0x6d1},
		{'😀', 0x0101f600},
	}
	for _, tt := range tests {
		if got := keysym.FromRune(tt.r); got != tt.want {
			t.Errorf("FromRune(%U) = %#x, want %#x", tt.r, uint32(got), uint32(tt.want))
		}
	}
}

func TestRuneRoundTrip(t *testing.T) {
	for _, r := range []rune("aZ~éÿŁĦĸŒαΩşяЯאก€—…✓") {
		code := keysym.FromRune(r)
		got, ok := keysym.Lookup(code)
		if !ok || got != r {
			t.Errorf("Lookup(FromRune(%U)) = %U, %v", r, got, ok)
		}
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		code keysym.Sym
		name string
	}{
		{0x20, "space"},
		{0x30, "0"},
		{0x41, "A"},
		{0x7e, "asciitilde"},
		{0xdf, "ssharp"},
		{0xff, "ydiaeresis"},
		{keysym.BackSpace, "BackSpace"},
		{keysym.PageUp, "Prior"},
		{keysym.F12, "F12"},
		{keysym.F35, "F35"},
		{keysym.KP0 + 3, "KP_3"},
		{keysym.SuperL, "Super_L"},
		{0x1008ff12, "XF86AudioMute"},
		{0x0101f600, "U1F600"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keysym.Name(tt.code)
			if !ok || got != tt.name {
				t.Fatalf("Name(%#x) = %q, %v", uint32(tt.code), got, ok)
			}
			back, ok := keysym.FromName(tt.name)
			if !ok || back != tt.code {
				t.Errorf("FromName(%q) = %#x, %v", tt.name, uint32(back), ok)
			}
		})
	}
}

func TestFromNameForms(t *testing.T) {
	tests := []struct {
		in     string
		want   keysym.Sym
		wantOK bool
	}{
		{"Page_Up", keysym.PageUp, true},
		{"U0041", 0x41, true},
		{"U03B1", 0x7e1, true},
		{"0xff08", keysym.BackSpace, true},
		{"0X1008FF11", 0x1008ff11, true},
		{"UD800", 0, false},
		{"0xzz", 0, false},
		{"NoSuchKey", 0, false},
	}
	for _, tt := range tests {
		got, ok := keysym.FromName(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("FromName(%q) = %#x, %v; want %#x, %v", tt.in, uint32(got), ok, uint32(tt.want), tt.wantOK)
		}
	}
}

func TestSuggest(t *testing.T) {
	got := keysym.Suggest("Retrun", 1)
	if diff := cmp.Diff([]string{"Return"}, got); diff != "" {
		t.Errorf("Suggest mismatch (-want +got):\n%s", diff)
	}
	if got := keysym.Suggest("x", 0); got != nil {
		t.Errorf("Suggest(n=0) = %v, want nil", got)
	}
	if got := keysym.Suggest("Escpae", 3); len(got) != 3 || got[0] != "Escape" {
		t.Errorf("Suggest(Escpae) = %v", got)
	}
}

func TestString(t *testing.T) {
	if got := keysym.Return.String(); got != "Return" {
		t.Errorf("String() = %q", got)
	}
	if got := keysym.Sym(0x12345).String(); got != "0x12345" {
		t.Errorf("String() = %q", got)
	}
}
