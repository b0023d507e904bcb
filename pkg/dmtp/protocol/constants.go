// Package protocol holds the DMTP wire constants: the packet header magic,
// client/server packet-type ranges, and the encoding-character set used by
// the text framing form. Values are pinned against the original OpenDMTP
// packet.h definitions.
package protocol

// Header is the fixed leading octet of every binary-framed packet.
const Header byte = 0xE0

// PacketType is a client (or server) packet type code, always paired with
// Header to form the 16-bit packet identifier.
type PacketType byte

// Client packet types, as defined by the original protocol.
const (
	ClientEOBDone          PacketType = 0x00
	ClientEOBSpeakFreely   PacketType = 0x01
	ClientUniqueID         PacketType = 0x11
	ClientAccountID        PacketType = 0x12
	ClientDeviceID         PacketType = 0x13
	ClientFixedFmtStd      PacketType = 0x30 // fixed low-resolution event
	ClientFixedFmtHigh     PacketType = 0x31 // fixed high-resolution event
	ClientFixedFmtReserved PacketType = 0x3F
	ClientPropertyValue    PacketType = 0xB0
	ClientFormatDefinition PacketType = 0xCF
	ClientDiagnostic       PacketType = 0xD0
	ClientError            PacketType = 0xE0
)

// Client packet-type range bounds.
const (
	ClientFixedFmtRangeLo PacketType = 0x30
	ClientFixedFmtRangeHi PacketType = 0x3F
	ClientServiceRangeLo  PacketType = 0x50
	ClientServiceRangeHi  PacketType = 0x5F
	ClientCustomRangeLo   PacketType = 0x70
	ClientCustomRangeHi   PacketType = 0x7F
)

// Server packet types (the mirror set sent from server to client).
const (
	ServerEOBDone        PacketType = 0x00
	ServerEOBSpeakFreely PacketType = 0x01
	ServerAck            PacketType = 0xA0
	ServerPropertyValue  PacketType = 0xB0
	ServerPropertyCmd    PacketType = 0xB1
	ServerFileUpload     PacketType = 0xC0
	ServerError          PacketType = 0xE0
	ServerEOT            PacketType = 0xFF
)

// InFixedFmtRange reports whether t is a fixed-format event type (0x30..0x3F).
func (t PacketType) InFixedFmtRange() bool {
	return t >= ClientFixedFmtRangeLo && t <= ClientFixedFmtRangeHi
}

// InServiceRange reports whether t is a service-provider format type (0x50..0x5F).
func (t PacketType) InServiceRange() bool {
	return t >= ClientServiceRangeLo && t <= ClientServiceRangeHi
}

// InCustomRange reports whether t is a custom format type (0x70..0x7F).
func (t PacketType) InCustomRange() bool {
	return t >= ClientCustomRangeLo && t <= ClientCustomRangeHi
}

// IsEventType reports whether t denotes a packet that decodes to an Event:
// the fixed-format, service-provider, or custom ranges.
func (t PacketType) IsEventType() bool {
	return t.InFixedFmtRange() || t.InServiceRange() || t.InCustomRange()
}

// String implements fmt.Stringer with a hex rendering; named types are
// called out explicitly to help log output stay readable.
func (t PacketType) String() string {
	switch t {
	case ClientEOBDone:
		return "EOBDone(0x00)"
	case ClientEOBSpeakFreely:
		return "EOBSpeakFreely(0x01)"
	case ClientUniqueID:
		return "UniqueID(0x11)"
	case ClientAccountID:
		return "AccountID(0x12)"
	case ClientDeviceID:
		return "DeviceID(0x13)"
	case ClientFixedFmtStd:
		return "FixedFmtStd(0x30)"
	case ClientFixedFmtHigh:
		return "FixedFmtHigh(0x31)"
	case ClientPropertyValue:
		return "PropertyValue(0xB0)"
	case ClientFormatDefinition:
		return "FormatDefinition(0xCF)"
	case ClientDiagnostic:
		return "Diagnostic(0xD0)"
	case ClientError:
		return "ClientError(0xE0)"
	default:
		switch {
		case t.InFixedFmtRange():
			return hexType("FixedFmt", byte(t))
		case t.InServiceRange():
			return hexType("Service", byte(t))
		case t.InCustomRange():
			return hexType("Custom", byte(t))
		default:
			return hexType("Type", byte(t))
		}
	}
}

func hexType(label string, b byte) string {
	const hexDigits = "0123456789ABCDEF"
	return label + "(0x" + string([]byte{hexDigits[b>>4], hexDigits[b&0xF]}) + ")"
}
