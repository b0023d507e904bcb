// Package gps implements the DMTP GPS point packing scheme: a pair of
// scaled unsigned integers representing latitude+90 and longitude+180,
// packed into a 24-bit (6-byte form) or 32-bit (8-byte form) wire
// representation.
package gps

import (
	"errors"
	"fmt"

	"github.com/bamiaux/iobit"
	"github.com/paulmach/orb"
)

// ErrOutOfRange reports a latitude/longitude outside the valid domain.
var ErrOutOfRange = errors.New("gps: coordinate out of range")

// Scale returns the packing scale for a coordinate encoded in bits bits:
// scale = (2^(bits-1) - 1) / 180.
func Scale(bits int) float64 {
	return (float64(uint64(1)<<(bits-1)) - 1) / 180.0
}

// Pack encodes pt (orb's [lon, lat] ordering) into the wire form with the
// given per-coordinate bit width (24 for the 6-byte form, 32 for the
// 8-byte form).
func Pack(pt orb.Point, bits int) ([]byte, error) {
	lon, lat := pt[0], pt[1]
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: lat=%f", ErrOutOfRange, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: lon=%f", ErrOutOfRange, lon)
	}

	scale := Scale(bits)
	latScaled := uint32((lat + 90) * scale)
	lonScaled := uint32((lon + 180) * scale)

	buf := make([]byte, 2*bits/8)
	iow := iobit.NewWriter(buf)
	iow.PutUint32(bits, latScaled)
	iow.PutUint32(bits, lonScaled)
	if err := iow.Flush(); err != nil {
		return nil, fmt.Errorf("gps: pack: %w", err)
	}
	return buf, nil
}

// Unpack decodes a packed GPS point of the given per-coordinate bit width.
func Unpack(b []byte, bits int) (orb.Point, error) {
	r := iobit.NewReader(b)
	latScaled := r.Uint32(bits)
	lonScaled := r.Uint32(bits)
	if r.LeftBits() > 0 {
		return orb.Point{}, errors.New("gps: unpack: buffer underflow")
	}
	if errors.Is(r.Error(), iobit.ErrOverflow) {
		return orb.Point{}, errors.New("gps: unpack: buffer overflow")
	}

	scale := Scale(bits)
	lat := float64(latScaled)/scale - 90
	lon := float64(lonScaled)/scale - 180
	return orb.Point{lon, lat}, nil
}

// Resolution returns the maximum rounding error (in degrees) introduced by
// packing at the given per-coordinate bit width, per testable property 5:
// 360 / (2^(bits-1)-1), which is twice the inverse of Scale.
func Resolution(bits int) float64 {
	return 360.0 / (float64(uint64(1)<<(bits-1)) - 1)
}
