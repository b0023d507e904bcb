package dmtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

func TestNewPacket(t *testing.T) {
	pkt, err := NewPacket(protocol.ClientFixedFmtStd, []byte{0x01, 0x02}, "")
	require.NoError(t, err)
	assert.Equal(t, protocol.Header, pkt.Header)
	assert.NoError(t, pkt.Validate())
}

func TestNewPacketRejectsOversizedPayload(t *testing.T) {
	_, err := NewPacket(protocol.ClientFixedFmtStd, make([]byte, 256), "")
	assert.Error(t, err)
}

func TestValidateRejectsBadHeader(t *testing.T) {
	pkt := &Packet{Header: 0x00, Type: protocol.ClientFixedFmtStd}
	assert.Error(t, pkt.Validate())
}

func TestIsEventPacket(t *testing.T) {
	assert.True(t, IsEventPacket(protocol.ClientFixedFmtStd))
	assert.False(t, IsEventPacket(protocol.ClientUniqueID))
}

func TestPacketString(t *testing.T) {
	pkt, err := NewPacket(protocol.ClientFixedFmtStd, []byte{0x01, 0x02, 0x03}, "")
	require.NoError(t, err)
	assert.Contains(t, pkt.String(), "Len: 3")
}
