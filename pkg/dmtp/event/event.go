// Package event implements the descriptor-driven event decoder (§4.H): it
// walks a Packet's payload against a PacketDescriptor and populates a typed
// Event, tracking which fields were set in a FieldMask.
package event

import (
	"github.com/paulmach/orb"
)

// Event is the decoded record produced by Decode. Every attribute that can
// be absent is paired with an entry in the FieldMask returned
// alongside it — the zero value here never implies "unset" on its own.
type Event struct {
	StatusCode uint16
	Timestamp  [2]uint32 // up to 2 timestamps per §3

	Sequence    uint32
	SequenceLen uint8 // number of bytes the wire form used, for sequence stitching

	Index uint32

	GPSPoint [2]orb.Point
	GPSAge   uint32
	Speed    float64 // kph
	Heading  float64 // degrees
	Altitude float64 // meters
	Distance float64 // km
	Odometer float64 // km
	TopSpeed float64 // kph

	GeofenceID [2]uint32

	Entity [2]string
	String [2]string
	Binary []byte

	InputID     uint32
	InputState  uint32
	OutputID    uint32
	OutputState uint32

	ElapsedTime uint32
	Counter     uint32

	Sensor32Low, Sensor32High, Sensor32Aver uint32

	TempLow, TempHigh, TempAver          float64
	TempLowOOR, TempHighOOR, TempAverOOR bool // out-of-range sentinel fired

	GPSDGPSAge                uint32
	GPSHorzAccuracy           float64
	GPSVertAccuracy           float64
	GPSSatellites             uint8
	GPSMagVariation           float64
	GPSQuality                uint8
	GPSFixType                uint8
	GPSGeoidHeight            float64
	GPSPDOP, GPSHDOP, GPSVDOP float64

	// OBC / J1708 fields (0x50..0x5F).
	OBCValue        []byte // raw MID/PID-prefixed block (FIELD_OBC_VALUE)
	OBCGeneric      uint32
	OBCJ1708Fault   uint32
	OBCDistance     float64
	OBCEngineHours  float64
	OBCEngineRPM    uint32
	OBCCoolantTemp  float64
	OBCCoolantLevel float64
	OBCOilLevel     float64
	OBCOilPressure  float64
	OBCFuelLevel    float64
	OBCFuelEconomy  float64
	OBCFuelUsed     float64
}
