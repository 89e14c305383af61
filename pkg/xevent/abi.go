package xevent

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// ABI describes the C data model an event buffer was laid out under: the
// width of long, unsigned long and pointers, and the byte order.
type ABI struct {
	WordSize int
	Order    binary.ByteOrder
}

var (
	LP64  = ABI{WordSize: 8, Order: binary.LittleEndian}
	ILP32 = ABI{WordSize: 4, Order: binary.LittleEndian}

	// Native is the data model of the running process, the one libX11 uses
	// when it hands us an XEvent.
	Native = ABI{WordSize: bits.UintSize / 8, Order: nativeOrder()}
)

func nativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// xeventWords is the length of the pad member of the XEvent union.
const xeventWords = 24

// EventSize is sizeof(XEvent).
func (a ABI) EventSize() int {
	return xeventWords * a.resolve().WordSize
}

func (a ABI) String() string {
	a = a.resolve()
	order := "le"
	if a.bigEndian() {
		order = "be"
	}
	switch a.WordSize {
	case 8:
		return "lp64-" + order
	case 4:
		return "ilp32-" + order
	}
	return fmt.Sprintf("word%d-%s", a.WordSize, order)
}

// resolve maps the zero ABI onto Native.
func (a ABI) resolve() ABI {
	if a.WordSize == 0 || a.Order == nil {
		return Native
	}
	return a
}

func (a ABI) bigEndian() bool {
	return a.Order == binary.BigEndian
}

type abiKey struct {
	word int
	big  bool
}

func (a ABI) key() abiKey {
	a = a.resolve()
	return abiKey{word: a.WordSize, big: a.bigEndian()}
}

func (a ABI) valid() bool {
	a = a.resolve()
	return a.WordSize == 4 || a.WordSize == 8
}

// Kind is the C type of an event member.
type Kind uint8

const (
	KindInt     Kind = iota + 1 // int
	KindUint                    // unsigned int
	KindBool                    // Bool (an int)
	KindChar                    // char
	KindLong                    // long
	KindUlong                   // unsigned long
	KindXID                     // XID and its typedefs (Window, Atom, Time...)
	KindPointer                 // Display *
	KindBytes                   // char[n]
	KindData                    // client message union b[20]/s[10]/l[5]
)

var kindNames = [...]string{
	KindInt:     "int",
	KindUint:    "unsigned int",
	KindBool:    "Bool",
	KindChar:    "char",
	KindLong:    "long",
	KindUlong:   "unsigned long",
	KindXID:     "XID",
	KindPointer: "pointer",
	KindBytes:   "char[]",
	KindData:    "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// size is sizeof for scalar kinds. Arrays carry their own width.
func (k Kind) size(a ABI) int {
	switch k {
	case KindInt, KindUint, KindBool:
		return 4
	case KindChar, KindBytes:
		return 1
	default:
		return a.WordSize
	}
}

func (k Kind) align(a ABI) int {
	switch k {
	case KindBytes:
		return 1
	case KindData:
		return a.WordSize
	}
	return k.size(a)
}

func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}
