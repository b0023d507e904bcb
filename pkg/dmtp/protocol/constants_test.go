package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeChecks(t *testing.T) {
	assert.True(t, ClientFixedFmtStd.InFixedFmtRange())
	assert.True(t, ClientFixedFmtHigh.InFixedFmtRange())
	assert.False(t, PacketType(0x40).InFixedFmtRange())

	assert.True(t, PacketType(0x55).InServiceRange())
	assert.True(t, PacketType(0x70).InCustomRange())
	assert.True(t, PacketType(0x7F).InCustomRange())
	assert.False(t, PacketType(0x80).InCustomRange())
}

func TestIsEventType(t *testing.T) {
	assert.True(t, ClientFixedFmtStd.IsEventType())
	assert.True(t, PacketType(0x55).IsEventType())
	assert.True(t, PacketType(0x70).IsEventType())
	assert.False(t, ClientUniqueID.IsEventType())
}

func TestPacketTypeString(t *testing.T) {
	assert.Contains(t, ClientFormatDefinition.String(), "0xCF")
	assert.Contains(t, PacketType(0x33).String(), "FixedFmt")
	assert.Contains(t, PacketType(0x72).String(), "Custom")
}
