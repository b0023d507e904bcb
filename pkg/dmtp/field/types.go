// Package field implements FieldDescriptor and the static descriptor table
// for DMTP's fixed-format event types, plus the hiRes scaling functions
// that give each field type its low/high resolution wire semantics.
package field

import "fmt"

// Type is the 7-bit field-type enum carried by a FieldDescriptor, pinned
// against the exact EventFieldType_enum values in
// original_source/src/server/events.h — these values travel on the wire in
// every custom-format (0xCF) definition and every service-provider (0x50-
// 0x5F) descriptor, so they must match a real OpenDMTP device byte for
// byte, not just be internally distinct.
type Type byte

const (
	// Most common fields.
	TypeStatusCode Type = 0x01 // %2u
	TypeTimestamp  Type = 0x02 // %4u
	TypeIndex      Type = 0x03 // %4u 0 to 4294967295

	// Sequence number field.
	TypeSequence Type = 0x04 // %1u 0 to 255

	// GPS fields.
	TypeGPSPoint Type = 0x06 // %6g lo-res, %8g hi-res
	TypeGPSAge   Type = 0x07 // %2u 0 to 65535 sec
	TypeSpeed    Type = 0x08 // %1u 0 to 255 kph, %2u hi-res 0.0 to 6553.5 kph
	TypeHeading  Type = 0x09 // %1u 1.412 deg un., %2u hi-res 0.00 to 360.00 deg
	TypeAltitude Type = 0x0A // %2i m, %3i hi-res m
	TypeDistance Type = 0x0B // %3u km, %3u hi-res 0.1 km
	TypeOdometer Type = 0x0C // %3u km, %4u hi-res 0.1 km

	// Misc fields.
	TypeGeofenceID Type = 0x0E // %4u 0x00000000 to 0xFFFFFFFF
	TypeTopSpeed   Type = 0x0F // %1u kph, %2u hi-res 0.1 kph

	// String/ID fields.
	TypeString    Type = 0x11 // %*s 'A'-'Z','a'-'z','0'-'9','-','.'
	TypeStringPad Type = 0x12 // same charset, fixed-width NUL-padded

	// Entity string fields.
	TypeEntity    Type = 0x15 // %*s, same charset as TypeString
	TypeEntityPad Type = 0x16 // same charset, fixed-width NUL-padded

	// Generic binary field.
	TypeBinary Type = 0x1A // %*b

	// Digital I/O fields.
	TypeInputID     Type = 0x21 // %4u 0x00000000 to 0xFFFFFFFF
	TypeInputState  Type = 0x22 // %4u 0x00000000 to 0xFFFFFFFF
	TypeOutputID    Type = 0x24 // %4u 0x00000000 to 0xFFFFFFFF
	TypeOutputState Type = 0x25 // %4u 0x00000000 to 0xFFFFFFFF
	TypeElapsedTime Type = 0x27 // %3u 0 to 16777215 sec
	TypeCounter     Type = 0x28 // %4u 0 to 4294967295

	// Analog I/O fields.
	TypeSensor32Low  Type = 0x31 // %4u 0x00000000 to 0xFFFFFFFF
	TypeSensor32High Type = 0x32 // %4u 0x00000000 to 0xFFFFFFFF
	TypeSensor32Aver Type = 0x33 // %4u 0x00000000 to 0xFFFFFFFF

	// Temperature fields.
	TypeTempLow  Type = 0x3A // %1i -126 to +126 C, %2i hi-res 0.1 C
	TypeTempHigh Type = 0x3B // %1i -126 to +126 C, %2i hi-res 0.1 C
	TypeTempAver Type = 0x3C // %1i -126 to +126 C, %2i hi-res 0.1 C

	// GPS quality fields.
	TypeGPSDGPSUpdate  Type = 0x41 // %2u 0 to 65535 sec
	TypeGPSHorzAcc     Type = 0x42 // %1u m, %2u hi-res 0.1 m
	TypeGPSVertAcc     Type = 0x43 // %1u m, %2u hi-res 0.1 m
	TypeGPSSatellites  Type = 0x44 // %1u 0 to 12
	TypeGPSMagVar      Type = 0x45 // %2i -180.00 to 180.00 deg
	TypeGPSQuality     Type = 0x46 // %1u (0=None, 1=GPS, 2=DGPS, ...)
	TypeGPSFixType     Type = 0x47 // %1u (1=None, 2=2D, 3=3D, ...)
	TypeGPSGeoidHeight Type = 0x48 // %1i m, %2i hi-res 0.1 m
	TypeGPSPDOP        Type = 0x49 // %1u 0.1, %2u hi-res 0.1
	TypeGPSHDOP        Type = 0x4A // %1u 0.1, %2u hi-res 0.1
	TypeGPSVDOP        Type = 0x4B // %1u 0.1, %2u hi-res 0.1

	// OBC/J1708 fields, 0x50..0x5F.
	TypeOBCValue        Type = 0x50 // %*b raw MID/PID-prefixed block, at least 4 bytes
	TypeOBCGeneric      Type = 0x51 // %4u
	TypeOBCJ1708Fault   Type = 0x52 // %4u
	TypeOBCDistance     Type = 0x54 // %3u km, %4u hi-res 0.1 km
	TypeOBCEngineHours  Type = 0x57 // %3u 0.1 hours
	TypeOBCEngineRPM    Type = 0x58 // %2u rpm
	TypeOBCCoolantTemp  Type = 0x59 // %1i C, %2i hi-res 0.1 C
	TypeOBCCoolantLevel Type = 0x5A // %1u percent, %2u hi-res 0.1 percent
	TypeOBCOilLevel     Type = 0x5B // %1u percent, %2u hi-res 0.1 percent
	TypeOBCOilPressure  Type = 0x5C // %1u kPa, %2u hi-res 0.1 kPa
	TypeOBCFuelLevel    Type = 0x5D // %1u percent, %2u hi-res 0.1 percent
	TypeOBCFuelEconomy  Type = 0x5E // %1u kpl, %2u hi-res 0.1 kpl
	TypeOBCFuelUsed     Type = 0x5F // %3u liters, %4u hi-res 0.1 liters
)

var typeNames = map[Type]string{
	TypeStatusCode: "StatusCode", TypeTimestamp: "Timestamp", TypeIndex: "Index",
	TypeSequence: "Sequence", TypeGPSPoint: "GPSPoint",
	TypeGPSAge: "GPSAge", TypeSpeed: "Speed", TypeHeading: "Heading",
	TypeAltitude: "Altitude", TypeDistance: "Distance", TypeOdometer: "Odometer",
	TypeGeofenceID: "GeofenceID", TypeTopSpeed: "TopSpeed",
	TypeString: "String", TypeStringPad: "StringPad",
	TypeEntity: "Entity", TypeEntityPad: "EntityPad",
	TypeBinary:  "Binary",
	TypeInputID: "InputID", TypeInputState: "InputState",
	TypeOutputID: "OutputID", TypeOutputState: "OutputState",
	TypeElapsedTime: "ElapsedTime", TypeCounter: "Counter",
	TypeSensor32Low: "Sensor32Low", TypeSensor32High: "Sensor32High", TypeSensor32Aver: "Sensor32Aver",
	TypeTempLow: "TempLow", TypeTempHigh: "TempHigh", TypeTempAver: "TempAver",
	TypeGPSDGPSUpdate: "GPSDGPSUpdate", TypeGPSHorzAcc: "GPSHorzAcc", TypeGPSVertAcc: "GPSVertAcc",
	TypeGPSSatellites: "GPSSatellites", TypeGPSMagVar: "GPSMagVar", TypeGPSQuality: "GPSQuality",
	TypeGPSFixType: "GPSFixType", TypeGPSGeoidHeight: "GPSGeoidHeight",
	TypeGPSPDOP: "GPSPDOP", TypeGPSHDOP: "GPSHDOP", TypeGPSVDOP: "GPSVDOP",
	TypeOBCValue: "OBCValue", TypeOBCGeneric: "OBCGeneric", TypeOBCJ1708Fault: "OBCJ1708Fault",
	TypeOBCDistance: "OBCDistance", TypeOBCEngineHours: "OBCEngineHours", TypeOBCEngineRPM: "OBCEngineRPM",
	TypeOBCCoolantTemp: "OBCCoolantTemp", TypeOBCCoolantLevel: "OBCCoolantLevel",
	TypeOBCOilLevel: "OBCOilLevel", TypeOBCOilPressure: "OBCOilPressure",
	TypeOBCFuelLevel: "OBCFuelLevel", TypeOBCFuelEconomy: "OBCFuelEconomy", TypeOBCFuelUsed: "OBCFuelUsed",
}

// String implements fmt.Stringer; unrecognized types (custom-format bindings
// the registry doesn't know about) render as Unknown(0xNN).
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02X)", byte(t))
}

// Known reports whether t is one of the field types this module recognizes.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}
