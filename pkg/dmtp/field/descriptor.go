package field

import (
	"errors"
	"fmt"

	"github.com/bamiaux/iobit"
)

// Descriptor describes one payload field in wire order: its type, whether
// the hi-res (wider/finer-grained) representation applies, the array index
// for multi-instance fields, and the on-wire byte length (0 means "rest of
// payload" for string/binary types).
type Descriptor struct {
	Type   Type
	HiRes  bool
	Index  uint8
	Length uint8
}

// ErrBufferUnderflow and ErrBufferOverflow report iobit reader/writer
// exhaustion while (de)serializing a packed descriptor, mirroring the
// bit-level reader/writer error reporting idiom used for other packed
// 24-bit/32-bit wire structures.
var (
	ErrBufferUnderflow = errors.New("field: descriptor buffer underflow")
	ErrBufferOverflow  = errors.New("field: descriptor buffer overflow")
)

// Pack serializes d into its 24-bit wire form:
//
//	bit 23    : hiRes
//	bits 22-16: type (7 bits)
//	bits 15-8 : index
//	bits 7-0  : length
func (d Descriptor) Pack() [3]byte {
	buf := [3]byte{}
	iow := iobit.NewWriter(buf[:])
	iow.PutBit(d.HiRes)
	iow.PutUint32(7, uint32(d.Type))
	iow.PutUint32(8, uint32(d.Index))
	iow.PutUint32(8, uint32(d.Length))
	_ = iow.Flush() // fixed 24-bit layout into a 3-byte buffer never overflows
	return buf
}

// Unpack parses a 24-bit wire-form descriptor.
func Unpack(b [3]byte) (Descriptor, error) {
	r := iobit.NewReader(b[:])
	hiRes := r.Bit()
	typ := r.Uint32(7)
	idx := r.Uint32(8)
	length := r.Uint32(8)
	if err := readerError(r); err != nil {
		return Descriptor{}, fmt.Errorf("field: unpack descriptor: %w", err)
	}
	return Descriptor{
		Type:   Type(typ),
		HiRes:  hiRes,
		Index:  uint8(idx),
		Length: uint8(length),
	}, nil
}

func readerError(r iobit.Reader) error {
	if r.LeftBits() > 0 {
		return ErrBufferUnderflow
	}
	if errors.Is(r.Error(), iobit.ErrOverflow) {
		return ErrBufferOverflow
	}
	return nil
}

// PacketDescriptor is the ordered field list bound to a packet type, used
// both by the static table (§4.F) and the custom-format registry (§4.G).
type PacketDescriptor []Descriptor

// TotalLength sums the declared Length of every field, used to enforce the
// "descriptor total ≤ 255" invariant (§8 property 8).
func (pd PacketDescriptor) TotalLength() int {
	total := 0
	for _, d := range pd {
		total += int(d.Length)
	}
	return total
}
