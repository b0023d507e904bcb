package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

func TestStaticTableTotalLengths(t *testing.T) {
	std, ok := Lookup(protocol.ClientFixedFmtStd)
	require.True(t, ok)
	assert.Equal(t, 20, std.TotalLength())

	high, ok := Lookup(protocol.ClientFixedFmtHigh)
	require.True(t, ok)
	assert.Equal(t, 25, high.TotalLength())
}

func TestLookupUnknownType(t *testing.T) {
	_, ok := Lookup(protocol.PacketType(0x99))
	assert.False(t, ok)
}

func TestStaticTableFieldsAreKnown(t *testing.T) {
	for _, typ := range []protocol.PacketType{protocol.ClientFixedFmtStd, protocol.ClientFixedFmtHigh} {
		pd, ok := Lookup(typ)
		require.True(t, ok)
		for _, d := range pd {
			assert.True(t, d.Type.Known(), "field type %v must be known", d.Type)
		}
	}
}
