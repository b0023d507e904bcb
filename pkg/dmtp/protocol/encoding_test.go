package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingCharRoundTrip(t *testing.T) {
	for _, enc := range []Encoding{EncodingBase64, EncodingHex, EncodingCSV} {
		got, ok := EncodingFromChar(enc.Char())
		assert.True(t, ok)
		assert.Equal(t, enc, got)
	}
	assert.Equal(t, byte(0), EncodingBinary.Char())
}

func TestEncodingFromCharUnknown(t *testing.T) {
	_, ok := EncodingFromChar('?')
	assert.False(t, ok)
}

func TestEncodingMaskAllows(t *testing.T) {
	mask := MaskBinary | MaskHex
	assert.True(t, mask.Allows(EncodingBinary))
	assert.True(t, mask.Allows(EncodingHex))
	assert.False(t, mask.Allows(EncodingBase64))
	assert.False(t, mask.Allows(EncodingCSV))
}

func TestEncodingMaskCheapest(t *testing.T) {
	assert.Equal(t, EncodingBinary, DefaultEncodingMask.Cheapest())
	assert.Equal(t, EncodingHex, (MaskHex | MaskBase64).Cheapest())
	assert.Equal(t, EncodingBase64, MaskBase64.Cheapest())
}
