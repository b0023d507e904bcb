package dmtp

import (
	"github.com/opendmtp/dmtp-codec/internal/binfmt"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

// NewAckPacket builds a SERVER_ACK packet (§6, PKT_SERVER_ACK "%*u")
// acknowledging the given sequence number back to the client.
func NewAckPacket(sequence uint32) (*Packet, error) {
	payload, err := binfmt.Pack("%4u", sequence)
	if err != nil {
		return nil, err
	}
	return NewPacket(protocol.ServerAck, payload, "%4u")
}

// NewPropertyCmdPacket builds a SERVER_PROPERTY_CMD packet requesting the
// client report (or set) a property by its numeric ID.
func NewPropertyCmdPacket(propertyID uint16) (*Packet, error) {
	payload, err := binfmt.Pack("%2u", uint32(propertyID))
	if err != nil {
		return nil, err
	}
	return NewPacket(protocol.ServerPropertyCmd, payload, "%2u")
}

// ResponseBuilder provides a fluent interface for building server-to-client
// packets, generalizing the teacher's Encoder.ResponseBuilder from a fixed
// VL103M header/CRC/serial trailer to a plain DMTP envelope (§4.E).
type ResponseBuilder struct {
	typ      protocol.PacketType
	payload  []byte
	format   string
	buildErr error
}

// NewResponse starts a ResponseBuilder for a server-originated packet type.
func NewResponse(t protocol.PacketType) *ResponseBuilder {
	return &ResponseBuilder{typ: t}
}

// WithPayload sets the packet's raw payload bytes.
func (b *ResponseBuilder) WithPayload(payload []byte) *ResponseBuilder {
	b.payload = payload
	return b
}

// WithFormat packs args against format and uses the result as the payload.
func (b *ResponseBuilder) WithFormat(format string, args ...any) *ResponseBuilder {
	payload, err := binfmt.Pack(format, args...)
	if err != nil {
		// Recorded and surfaced from Build; WithFormat itself stays chainable.
		b.payload = nil
		b.format = ""
		b.buildErr = err
		return b
	}
	b.payload = payload
	b.format = format
	return b
}

// Build finalizes the packet.
func (b *ResponseBuilder) Build() (*Packet, error) {
	if b.buildErr != nil {
		return nil, b.buildErr
	}
	return NewPacket(b.typ, b.payload, b.format)
}
