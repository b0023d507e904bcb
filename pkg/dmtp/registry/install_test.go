package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp/field"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

func TestInstallFromDefinition(t *testing.T) {
	r := New()

	statusCode := field.Descriptor{Type: field.TypeStatusCode, Length: 2}
	gpsPoint := field.Descriptor{Type: field.TypeGPSPoint, Length: 6}
	sp := statusCode.Pack()
	gp := gpsPoint.Pack()

	payload := append([]byte{0x70, 0x02}, sp[:]...)
	payload = append(payload, gp[:]...)

	require.NoError(t, r.InstallFromDefinition(payload))

	desc, ok := r.Get(protocol.PacketType(0x70))
	require.True(t, ok)
	require.Len(t, desc, 2)
	assert.Equal(t, field.TypeStatusCode, desc[0].Type)
	assert.Equal(t, field.TypeGPSPoint, desc[1].Type)
}

func TestInstallFromDefinitionRejectsTruncatedPayload(t *testing.T) {
	r := New()
	err := r.InstallFromDefinition([]byte{0x70, 0x02, 0x00})
	assert.Error(t, err)
}

func TestInstallFromDefinitionRejectsEmptyPayload(t *testing.T) {
	r := New()
	err := r.InstallFromDefinition([]byte{0x70})
	assert.Error(t, err)
}

func TestInstallFromDefinitionRejectsHiResLengthMismatch(t *testing.T) {
	r := New()

	// Speed claimed hiRes but declared with the lo-res 1-byte width.
	badSpeed := field.Descriptor{Type: field.TypeSpeed, HiRes: true, Length: 1}
	bs := badSpeed.Pack()

	payload := append([]byte{0x70, 0x01}, bs[:]...)
	assert.Error(t, r.InstallFromDefinition(payload))
	_, ok := r.Get(protocol.PacketType(0x70))
	assert.False(t, ok)
}
