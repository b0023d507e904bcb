// Package dmtp implements the OpenDMTP wire codec: a framing layer that
// reads and writes packets in three interchangeable encodings, a
// table-driven event decoder, and a custom-format registry that lets a
// client declare new packet layouts at runtime.
package dmtp

import (
	"strconv"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

// MaxPayloadLen is the largest payload a Packet may carry (one byte length
// field on the wire).
const MaxPayloadLen = 255

// Packet is a single protocol message: header, type, payload, and an
// optional format hint preserved when the packet was built via the binary
// formatter. Packet is a value type with no shared backing state — callers
// own their own Payload slice.
type Packet struct {
	Header  byte
	Type    protocol.PacketType
	Payload []byte
	// Format is the formatter directive string used to build Payload, when
	// the packet was constructed via NewPacket; empty when the packet came
	// from the framer's read path.
	Format string
}

// NewPacket constructs a Packet with protocol.Header and the given type and
// payload. It returns a *CodecError wrapping ErrOverflow if payload exceeds
// MaxPayloadLen.
func NewPacket(t protocol.PacketType, payload []byte, format string) (*Packet, error) {
	if len(payload) > MaxPayloadLen {
		return nil, NewFieldError(ErrKindOverflow, "payload", "payload exceeds 255 bytes")
	}
	return &Packet{
		Header:  protocol.Header,
		Type:    t,
		Payload: payload,
		Format:  format,
	}, nil
}

// Validate checks the packet's structural invariants (§3): header must be
// protocol.Header and the payload must not exceed MaxPayloadLen.
func (p *Packet) Validate() error {
	if p.Header != protocol.Header {
		return NewFieldError(ErrKindHeaderInvalid, "Header", "expected 0xE0")
	}
	if len(p.Payload) > MaxPayloadLen {
		return NewFieldError(ErrKindOverflow, "Payload", "payload exceeds 255 bytes")
	}
	return nil
}

// IsEventPacket reports whether t decodes to an Event: the fixed-format
// (0x30..0x3F), service-provider (0x50..0x5F), or custom (0x70..0x7F)
// ranges.
func IsEventPacket(t protocol.PacketType) bool {
	return t.IsEventType()
}

// String renders the packet for logging.
func (p *Packet) String() string {
	return "Packet{Type: " + p.Type.String() + ", Len: " + strconv.Itoa(len(p.Payload)) + "}"
}
