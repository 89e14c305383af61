// Package keysym translates X keysym codes into Unicode and symbolic names.
//
// The keysym space is partitioned: 0x20-0xff is Latin-1 and maps onto itself,
// 0x01000000+U encodes Unicode scalar U directly, and everything else is a
// legacy or vendor code that only a static table can resolve. Control and
// function keys without a character legitimately have no mapping.
package keysym

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Sym is a keysym code.
type Sym uint32

const (
	unicodeOffset Sym = 0x01000000
	unicodeMax    Sym = unicodeOffset + utf8.MaxRune
)

// Lookup returns the Unicode scalar a keysym stands for. The boolean is false
// when the code has no character meaning; that is not an error.
func Lookup(code Sym) (rune, bool) {
	switch {
	case code >= 0x20 && code <= 0xff:
		return rune(code), true
	case code >= unicodeOffset && code <= unicodeMax:
		r := rune(code - unicodeOffset)
		if !utf8.ValidRune(r) {
			return 0, false
		}
		return r, true
	}
	r, ok := toUnicode[code]
	return r, ok
}

// FromRune is the inverse of Lookup: the legacy keysym where one exists,
// otherwise the Unicode-range encoding.
func FromRune(r rune) Sym {
	if r >= 0x20 && r <= 0xff {
		return Sym(r)
	}
	if s, ok := fromUnicode[r]; ok {
		return s
	}
	return unicodeOffset + Sym(r)
}

// Name returns the keysymdef name of code. Unicode-range codes are named in
// the "U20AC" form.
func Name(code Sym) (string, bool) {
	if n, ok := symNames[code]; ok {
		return n, true
	}
	if code >= unicodeOffset && code <= unicodeMax {
		if _, ok := Lookup(code); ok {
			return fmt.Sprintf("U%04X", uint32(code-unicodeOffset)), true
		}
	}
	return "", false
}

// FromName resolves a keysym name. Besides keysymdef names it accepts
// "U20AC" and "0xff08" forms.
func FromName(name string) (Sym, bool) {
	if s, ok := nameSyms[name]; ok {
		return s, true
	}
	switch {
	case len(name) > 1 && (name[0] == 'U' || name[0] == 'u'):
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return 0, false
		}
		return FromRune(rune(v)), true
	case strings.HasPrefix(name, "0x"), strings.HasPrefix(name, "0X"):
		v, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil {
			return 0, false
		}
		return Sym(v), true
	}
	return 0, false
}

// Suggest returns up to n known names closest to name by edit distance,
// nearest first.
func Suggest(name string, n int) []string {
	if n <= 0 {
		return nil
	}
	type candidate struct {
		name string
		dist int
	}
	lower := strings.ToLower(name)
	candidates := make([]candidate, 0, len(nameSyms))
	for known := range nameSyms {
		candidates = append(candidates, candidate{
			name: known,
			dist: levenshtein.ComputeDistance(lower, strings.ToLower(known)),
		})
	}
	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		return strings.Compare(a.name, b.name)
	})
	out := make([]string, 0, n)
	for _, c := range candidates[:min(n, len(candidates))] {
		out = append(out, c.name)
	}
	return out
}

func (s Sym) String() string {
	if n, ok := Name(s); ok {
		return n
	}
	return fmt.Sprintf("%#x", uint32(s))
}
