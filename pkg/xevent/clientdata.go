package xevent

import "fmt"

const (
	dataWords  = 5
	dataBytes  = 20
	dataShorts = 10
)

// ClientData is the data member of XClientMessageEvent, a union of char b[20],
// short s[10] and long l[5]. It keeps the union's bytes as laid out under one
// ABI; the zero value is an all-zero union under Native.
//
// The Format member of the enclosing event says which view is meaningful: 8,
// 16 or 32.
type ClientData struct {
	raw [dataWords * 8]byte
	abi ABI
}

func (d *ClientData) layout() ABI {
	return d.abi.resolve()
}

func (d *ClientData) size() int {
	return dataWords * d.layout().WordSize
}

// Bytes returns the b[20] view.
func (d *ClientData) Bytes() [dataBytes]byte {
	var out [dataBytes]byte
	copy(out[:], d.raw[:])
	return out
}

// Shorts returns the s[10] view.
func (d *ClientData) Shorts() [dataShorts]int16 {
	var (
		out   [dataShorts]int16
		order = d.layout().Order
	)
	for i := range out {
		out[i] = int16(order.Uint16(d.raw[2*i:]))
	}
	return out
}

// Longs returns the l[5] view. Longs are word-wide, so on ILP32 each value is
// sign-extended from 32 bits.
func (d *ClientData) Longs() [dataWords]int64 {
	var (
		out [dataWords]int64
		a   = d.layout()
	)
	for i := range out {
		at := i * a.WordSize
		if a.WordSize == 4 {
			out[i] = int64(int32(a.Order.Uint32(d.raw[at:])))
			continue
		}
		out[i] = int64(a.Order.Uint64(d.raw[at:]))
	}
	return out
}

func (d *ClientData) SetBytes(b [dataBytes]byte) {
	d.reset()
	copy(d.raw[:], b[:])
}

func (d *ClientData) SetShorts(s [dataShorts]int16) {
	d.reset()
	order := d.layout().Order
	for i, v := range s {
		order.PutUint16(d.raw[2*i:], uint16(v))
	}
}

func (d *ClientData) SetLongs(l [dataWords]int64) {
	d.reset()
	a := d.layout()
	for i, v := range l {
		at := i * a.WordSize
		if a.WordSize == 4 {
			a.Order.PutUint32(d.raw[at:], uint32(v))
			continue
		}
		a.Order.PutUint64(d.raw[at:], uint64(v))
	}
}

func (d *ClientData) reset() {
	clear(d.raw[:])
}

func (d *ClientData) load(a ABI, src []byte) {
	d.abi = a
	clear(d.raw[:])
	copy(d.raw[:], src)
}

// store writes the union under a. When d was built under a different ABI the
// view selected by format is carried over, since the raw bytes would not mean
// the same thing.
func (d *ClientData) store(a ABI, format int32, dst []byte) {
	if d.layout().key() == a.key() {
		copy(dst, d.raw[:d.size()])
		return
	}
	conv := ClientData{abi: a}
	switch format {
	case 8:
		conv.SetBytes(d.Bytes())
	case 16:
		conv.SetShorts(d.Shorts())
	default:
		conv.SetLongs(d.Longs())
	}
	copy(dst, conv.raw[:conv.size()])
}

func (d *ClientData) format(format int32) string {
	switch format {
	case 8:
		b := d.Bytes()
		return fmt.Sprintf("b:%x", b[:])
	case 16:
		return fmt.Sprintf("s:%v", d.Shorts())
	}
	return fmt.Sprintf("l:%v", d.Longs())
}

// NewClientData returns a zeroed union laid out under a, for building events
// that will be encoded with a Codec for a.
func NewClientData(a ABI) ClientData {
	return ClientData{abi: a.resolve()}
}
