package registry

import (
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/dmtperr"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/field"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

// InstallFromDefinition parses a 0xCF custom-format-definition payload
// (§6: target type, field count, then one 24-bit descriptor per field) and
// installs the resulting binding.
//
//	[target type: u8] [field count: u8] [descriptor: 24 bits] ...
func (r *Registry) InstallFromDefinition(payload []byte) error {
	if len(payload) < 2 {
		return dmtperr.NewCodecError(dmtperr.ErrKindUnderflow, "format definition payload too short")
	}
	target := protocol.PacketType(payload[0])
	count := int(payload[1])

	wantLen := 2 + count*3
	if len(payload) < wantLen {
		return dmtperr.NewCodecError(dmtperr.ErrKindUnderflow, "format definition payload shorter than declared field count")
	}

	desc := make(field.PacketDescriptor, 0, count)
	pos := 2
	for i := 0; i < count; i++ {
		var raw [3]byte
		copy(raw[:], payload[pos:pos+3])
		d, err := field.Unpack(raw)
		if err != nil {
			return dmtperr.NewOffsetError(dmtperr.ErrKindParseError, pos, err.Error())
		}
		desc = append(desc, d)
		pos += 3
	}

	return r.Register(target, desc)
}
