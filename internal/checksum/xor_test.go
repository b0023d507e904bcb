package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateXOR(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{name: "empty", data: []byte{}, expected: 0x00},
		{name: "single byte", data: []byte{0x7F}, expected: 0x7F},
		{name: "two identical bytes cancel", data: []byte{0x3C, 0x3C}, expected: 0x00},
		{name: "header+type+encoding", data: []byte("E030="), expected: 'E' ^ '0' ^ '3' ^ '0' ^ '='},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateXOR(tt.data))
		})
	}
}

func TestAppendXOR(t *testing.T) {
	assert.Equal(t, "00", AppendXOR(0x00))
	assert.Equal(t, "FF", AppendXOR(0xFF))
	assert.Equal(t, "0A", AppendXOR(0x0A))
}

func TestValidateXOR(t *testing.T) {
	data := []byte("E030=AQID")
	sum := CalculateXOR(data)
	hh := AppendXOR(sum)

	assert.True(t, ValidateXOR(data, hh))
	assert.False(t, ValidateXOR(data, "FF"))
	assert.True(t, ValidateXOR(data, lower(hh)), "decode must accept lower-case hex")
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
