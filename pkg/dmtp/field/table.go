package field

import "github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"

// StaticTable maps the two fixed-format event types to their field lists
// (§4.F). These bindings never change at runtime; the custom-format
// registry (pkg/dmtp/registry) holds the runtime-extensible counterpart.
var StaticTable = map[protocol.PacketType]PacketDescriptor{
	protocol.ClientFixedFmtStd: {
		{Type: TypeStatusCode, Length: 2},
		{Type: TypeTimestamp, Length: 4},
		{Type: TypeGPSPoint, Length: 6},
		{Type: TypeSpeed, Length: 1},
		{Type: TypeHeading, Length: 1},
		{Type: TypeAltitude, Length: 2},
		{Type: TypeDistance, Length: 3},
		{Type: TypeSequence, Length: 1},
	},
	protocol.ClientFixedFmtHigh: {
		{Type: TypeStatusCode, Length: 2},
		{Type: TypeTimestamp, Length: 4},
		{Type: TypeGPSPoint, HiRes: true, Length: 8},
		{Type: TypeSpeed, HiRes: true, Length: 2},
		{Type: TypeHeading, HiRes: true, Length: 2},
		{Type: TypeAltitude, HiRes: true, Length: 3},
		{Type: TypeDistance, HiRes: true, Length: 3},
		{Type: TypeSequence, Length: 1},
	},
}

// Lookup returns the static PacketDescriptor for t, if any.
func Lookup(t protocol.PacketType) (PacketDescriptor, bool) {
	pd, ok := StaticTable[t]
	return pd, ok
}
