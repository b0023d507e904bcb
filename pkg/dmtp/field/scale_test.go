package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeedKPH(t *testing.T) {
	assert.Equal(t, 42.0, SpeedKPH(42, false))
	assert.Equal(t, 4.2, SpeedKPH(42, true))
}

func TestHeadingDegrees(t *testing.T) {
	assert.Equal(t, 180.0, HeadingDegrees(128, false))
	assert.Equal(t, 123.45, HeadingDegrees(12345, true))
}

func TestAltitudeMeters(t *testing.T) {
	assert.Equal(t, -15.0, AltitudeMeters(-15, false))
	assert.Equal(t, -1.5, AltitudeMeters(-15, true))
}

func TestDistanceKM(t *testing.T) {
	assert.Equal(t, 100.0, DistanceKM(100, false))
	assert.Equal(t, 10.0, DistanceKM(100, true))
}

func TestTemperatureC(t *testing.T) {
	v, oor := TemperatureC(25, false)
	assert.Equal(t, 25.0, v)
	assert.False(t, oor)

	v, oor = TemperatureC(TempOutOfRange, false)
	assert.Equal(t, 0.0, v)
	assert.True(t, oor)

	v, oor = TemperatureC(-TempOutOfRange, false)
	assert.True(t, oor)

	v, oor = TemperatureC(252, true) // hi-res never sentinels
	assert.Equal(t, 25.2, v)
	assert.False(t, oor)
}

func TestDOP(t *testing.T) {
	assert.Equal(t, 1.2, DOP(12, false))
	assert.Equal(t, 99.9, DOP(999, true))
}
