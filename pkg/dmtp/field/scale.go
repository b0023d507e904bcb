package field

// Scaling functions implement the hiRes semantics of §4.F: each field type
// has a low-resolution wire encoding and a wider, finer-grained high-
// resolution one, selected by the FieldDescriptor's HiRes bit.

// TempOutOfRange is the lo-res sentinel meaning "temperature out of range".
const TempOutOfRange = 126

// SpeedKPH converts a raw wire value to kilometers-per-hour.
// lo: wire value is kph directly. hi: wire value is kph*10.
func SpeedKPH(raw uint32, hiRes bool) float64 {
	if hiRes {
		return float64(raw) / 10.0
	}
	return float64(raw)
}

// HeadingDegrees converts a raw wire value to compass degrees.
// lo (1 byte, 0-255): degrees = raw*360/256. hi (2 bytes): degrees = raw/100.
func HeadingDegrees(raw uint32, hiRes bool) float64 {
	if hiRes {
		return float64(raw) / 100.0
	}
	return float64(raw) * 360.0 / 256.0
}

// AltitudeMeters converts a raw signed wire value to meters.
// lo: signed meters directly. hi: signed decimeters (value*10).
func AltitudeMeters(raw int32, hiRes bool) float64 {
	if hiRes {
		return float64(raw) / 10.0
	}
	return float64(raw)
}

// DistanceKM converts a raw wire value to kilometers.
// lo: integral km. hi: km*10.
func DistanceKM(raw uint32, hiRes bool) float64 {
	if hiRes {
		return float64(raw) / 10.0
	}
	return float64(raw)
}

// TemperatureC converts a raw signed wire value to degrees Celsius, and
// reports whether the lo-res sentinel (±126, "out of range") fired.
// lo: signed degrees C, sentinel ±126. hi: degrees C*10 in 2 bytes, no
// sentinel.
func TemperatureC(raw int32, hiRes bool) (value float64, outOfRange bool) {
	if hiRes {
		return float64(raw) / 10.0, false
	}
	if raw == TempOutOfRange || raw == -TempOutOfRange {
		return 0, true
	}
	return float64(raw), false
}

// DOP converts a raw wire value to a dilution-of-precision figure.
// lo: value*10 in 1 byte, range 0.0-25.5. hi: value*10 in 2 bytes, range
// 0.0-99.9.
func DOP(raw uint32, hiRes bool) float64 {
	return float64(raw) / 10.0
}
