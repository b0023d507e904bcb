package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp/field"
)

func TestDecodeFixedFormatStd(t *testing.T) {
	desc := field.PacketDescriptor{
		{Type: field.TypeStatusCode, Length: 2},
		{Type: field.TypeTimestamp, Length: 4},
		{Type: field.TypeGPSPoint, Length: 6},
		{Type: field.TypeSpeed, Length: 1},
		{Type: field.TypeHeading, Length: 1},
		{Type: field.TypeAltitude, Length: 2},
		{Type: field.TypeDistance, Length: 3},
		{Type: field.TypeSequence, Length: 1},
	}

	payload := []byte{
		0x00, 0x01, // status code
		0x00, 0x00, 0x00, 0x00, // timestamp
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // GPS point
		0x32,       // speed = 50 kph
		0x80,       // heading = 180 deg
		0x00, 0x0A, // altitude = 10 m
		0x00, 0x00, 0x64, // distance = 100 km
		0x07, // sequence
	}

	ev, mask, err := Decode(payload, desc)
	require.NoError(t, err)
	require.NotNil(t, ev)

	assert.Equal(t, uint16(1), ev.StatusCode)
	assert.Equal(t, 50.0, ev.Speed)
	assert.Equal(t, 180.0, ev.Heading)
	assert.Equal(t, 10.0, ev.Altitude)
	assert.Equal(t, 100.0, ev.Distance)

	assert.True(t, mask.IsSet(field.TypeStatusCode, 0))
	assert.True(t, mask.IsSet(field.TypeGPSPoint, 0))
	assert.False(t, mask.IsSet(field.TypeGPSPoint, 1))
	assert.False(t, mask.HasUnknownFields())
}

func TestDecodeSkipsUnknownFieldType(t *testing.T) {
	desc := field.PacketDescriptor{
		{Type: field.Type(0xF0), Length: 3}, // not in the known enum
		{Type: field.TypeStatusCode, Length: 2},
	}
	payload := []byte{0xAA, 0xBB, 0xCC, 0x00, 0x05}

	ev, mask, err := Decode(payload, desc)
	require.NoError(t, err)
	assert.Equal(t, uint16(5), ev.StatusCode)
	assert.True(t, mask.HasUnknownFields())
}

func TestDecodeRejectsShortPayload(t *testing.T) {
	desc := field.PacketDescriptor{
		{Type: field.TypeStatusCode, Length: 2},
		{Type: field.TypeTimestamp, Length: 4},
	}
	_, _, err := Decode([]byte{0x00, 0x01}, desc)
	assert.Error(t, err)
}

func TestDecodeRejectsOversizedDescriptor(t *testing.T) {
	desc := make(field.PacketDescriptor, 0, 86)
	for i := 0; i < 86; i++ {
		desc = append(desc, field.Descriptor{Type: field.TypeCounter, Length: 3})
	}
	_, _, err := Decode(make([]byte, 258), desc)
	assert.Error(t, err)
}

func TestDecodeEntityField(t *testing.T) {
	desc := field.PacketDescriptor{
		{Type: field.TypeEntity, Length: 8},
	}
	payload := []byte("TRUCK-01")

	ev, mask, err := Decode(payload, desc)
	require.NoError(t, err)
	assert.Equal(t, "TRUCK-01", ev.Entity[0])
	assert.True(t, mask.IsSet(field.TypeEntity, 0))
}

func TestDecodeEntityRejectsInvalidCharacters(t *testing.T) {
	desc := field.PacketDescriptor{
		{Type: field.TypeEntity, Length: 4},
	}
	_, _, err := Decode([]byte{'A', 'B', 0x01, 'C'}, desc)
	assert.Error(t, err)
}
