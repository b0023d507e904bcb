package event

import (
	"strings"

	"github.com/opendmtp/dmtp-codec/internal/binfmt"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/dmtperr"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/field"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/gps"
)

// Decode walks payload against desc in order (§4.H), populating an Event
// and FieldMask. It never mutates payload. The decoder is pure and safe to
// call concurrently against a shared, read-only PacketDescriptor (§5).
func Decode(payload []byte, desc field.PacketDescriptor) (*Event, *FieldMask, error) {
	if desc.TotalLength() > 255 {
		return nil, nil, dmtperr.NewCodecError(dmtperr.ErrKindOverflow, "descriptor total length exceeds 255")
	}

	ev := &Event{}
	mask := NewFieldMask()
	pos := 0

	for _, d := range desc {
		length := int(d.Length)
		remaining := len(payload) - pos
		if d.Length == 0 && (d.Type == field.TypeBinary || d.Type == field.TypeString || d.Type == field.TypeEntity) {
			length = remaining // 0 means "rest of payload" for the variable-width fields
		}
		if length > remaining {
			return nil, nil, dmtperr.NewOffsetError(dmtperr.ErrKindUnderflow, pos, "payload shorter than descriptor demands")
		}
		raw := payload[pos : pos+length]

		if !d.Type.Known() {
			mask.markUnknown()
			pos += length
			continue
		}

		idx := d.Index
		switch d.Type {
		case field.TypeStatusCode:
			ev.StatusCode = uint16(binfmt.ReadUint(raw, length))
		case field.TypeTimestamp:
			if idx > 1 {
				idx = 1
			}
			ev.Timestamp[idx] = uint32(binfmt.ReadUint(raw, length))
		case field.TypeIndex:
			ev.Index = uint32(binfmt.ReadUint(raw, length))
		case field.TypeSequence:
			ev.Sequence = uint32(binfmt.ReadUint(raw, length))
			ev.SequenceLen = uint8(length)
		case field.TypeGPSPoint:
			if idx > 1 {
				idx = 1
			}
			pt, err := gps.Unpack(raw, length*8/2)
			if err != nil {
				return nil, nil, dmtperr.NewOffsetError(dmtperr.ErrKindParseError, pos, err.Error())
			}
			ev.GPSPoint[idx] = pt
		case field.TypeGPSAge:
			ev.GPSAge = uint32(binfmt.ReadUint(raw, length))
		case field.TypeSpeed:
			ev.Speed = field.SpeedKPH(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeHeading:
			ev.Heading = field.HeadingDegrees(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeAltitude:
			ev.Altitude = field.AltitudeMeters(int32(binfmt.ReadInt(raw, length)), d.HiRes)
		case field.TypeDistance:
			ev.Distance = field.DistanceKM(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeOdometer:
			ev.Odometer = field.DistanceKM(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeTopSpeed:
			ev.TopSpeed = field.SpeedKPH(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeGeofenceID:
			if idx > 1 {
				idx = 1
			}
			ev.GeofenceID[idx] = uint32(binfmt.ReadUint(raw, length))
		case field.TypeEntity, field.TypeEntityPad:
			if idx > 1 {
				idx = 1
			}
			s, err := decodeASCIIField(raw)
			if err != nil {
				return nil, nil, dmtperr.NewOffsetError(dmtperr.ErrKindParseError, pos, err.Error())
			}
			ev.Entity[idx] = s
		case field.TypeString, field.TypeStringPad:
			if idx > 1 {
				idx = 1
			}
			s, err := decodeASCIIField(raw)
			if err != nil {
				return nil, nil, dmtperr.NewOffsetError(dmtperr.ErrKindParseError, pos, err.Error())
			}
			ev.String[idx] = s
		case field.TypeBinary:
			cp := make([]byte, len(raw))
			copy(cp, raw)
			ev.Binary = cp
		case field.TypeInputID:
			ev.InputID = uint32(binfmt.ReadUint(raw, length))
		case field.TypeInputState:
			ev.InputState = uint32(binfmt.ReadUint(raw, length))
		case field.TypeOutputID:
			ev.OutputID = uint32(binfmt.ReadUint(raw, length))
		case field.TypeOutputState:
			ev.OutputState = uint32(binfmt.ReadUint(raw, length))
		case field.TypeElapsedTime:
			ev.ElapsedTime = uint32(binfmt.ReadUint(raw, length))
		case field.TypeCounter:
			ev.Counter = uint32(binfmt.ReadUint(raw, length))
		case field.TypeSensor32Low:
			ev.Sensor32Low = uint32(binfmt.ReadUint(raw, length))
		case field.TypeSensor32High:
			ev.Sensor32High = uint32(binfmt.ReadUint(raw, length))
		case field.TypeSensor32Aver:
			ev.Sensor32Aver = uint32(binfmt.ReadUint(raw, length))
		case field.TypeTempLow:
			ev.TempLow, ev.TempLowOOR = field.TemperatureC(int32(binfmt.ReadInt(raw, length)), d.HiRes)
		case field.TypeTempHigh:
			ev.TempHigh, ev.TempHighOOR = field.TemperatureC(int32(binfmt.ReadInt(raw, length)), d.HiRes)
		case field.TypeTempAver:
			ev.TempAver, ev.TempAverOOR = field.TemperatureC(int32(binfmt.ReadInt(raw, length)), d.HiRes)
		case field.TypeGPSDGPSUpdate:
			ev.GPSDGPSAge = uint32(binfmt.ReadUint(raw, length))
		case field.TypeGPSHorzAcc:
			ev.GPSHorzAccuracy = float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				ev.GPSHorzAccuracy /= 10.0
			}
		case field.TypeGPSVertAcc:
			ev.GPSVertAccuracy = float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				ev.GPSVertAccuracy /= 10.0
			}
		case field.TypeGPSSatellites:
			ev.GPSSatellites = uint8(binfmt.ReadUint(raw, length))
		case field.TypeGPSMagVar:
			ev.GPSMagVariation = float64(binfmt.ReadInt(raw, length)) / 100.0
		case field.TypeGPSQuality:
			ev.GPSQuality = uint8(binfmt.ReadUint(raw, length))
		case field.TypeGPSFixType:
			ev.GPSFixType = uint8(binfmt.ReadUint(raw, length))
		case field.TypeGPSGeoidHeight:
			ev.GPSGeoidHeight = float64(binfmt.ReadInt(raw, length))
			if d.HiRes {
				ev.GPSGeoidHeight /= 10.0
			}
		case field.TypeGPSPDOP:
			ev.GPSPDOP = field.DOP(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeGPSHDOP:
			ev.GPSHDOP = field.DOP(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeGPSVDOP:
			ev.GPSVDOP = field.DOP(uint32(binfmt.ReadUint(raw, length)), d.HiRes)
		case field.TypeOBCValue:
			cp := make([]byte, len(raw))
			copy(cp, raw)
			ev.OBCValue = cp
		case field.TypeOBCGeneric:
			ev.OBCGeneric = uint32(binfmt.ReadUint(raw, length))
		case field.TypeOBCJ1708Fault:
			ev.OBCJ1708Fault = uint32(binfmt.ReadUint(raw, length))
		case field.TypeOBCDistance:
			ev.OBCDistance = field.DistanceKM(uint32(binfmt.ReadUint(raw, length)), d.HiRes) // km, same lo/hi-res scaling as the core distance field
		case field.TypeOBCEngineHours:
			ev.OBCEngineHours = float64(binfmt.ReadUint(raw, length)) / 10.0
		case field.TypeOBCEngineRPM:
			ev.OBCEngineRPM = uint32(binfmt.ReadUint(raw, length))
		case field.TypeOBCCoolantTemp:
			temp, _ := field.TemperatureC(int32(binfmt.ReadInt(raw, length)), d.HiRes)
			ev.OBCCoolantTemp = temp
		case field.TypeOBCCoolantLevel:
			ev.OBCCoolantLevel = float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				ev.OBCCoolantLevel /= 10.0
			}
		case field.TypeOBCOilLevel:
			ev.OBCOilLevel = float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				ev.OBCOilLevel /= 10.0
			}
		case field.TypeOBCOilPressure:
			ev.OBCOilPressure = float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				ev.OBCOilPressure /= 10.0
			}
		case field.TypeOBCFuelLevel:
			ev.OBCFuelLevel = float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				ev.OBCFuelLevel /= 10.0
			}
		case field.TypeOBCFuelEconomy:
			ev.OBCFuelEconomy = float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				ev.OBCFuelEconomy /= 10.0
			}
		case field.TypeOBCFuelUsed:
			raw32 := float64(binfmt.ReadUint(raw, length))
			if d.HiRes {
				raw32 /= 10.0
			}
			ev.OBCFuelUsed = raw32
		}

		mask.mark(d.Type, idx)
		pos += length
	}

	return ev, mask, nil
}

// decodeASCIIField trims trailing NULs and validates the §4.H character
// set (A-Z, a-z, 0-9, '-', '.').
func decodeASCIIField(raw []byte) (string, error) {
	s := strings.TrimRight(string(raw), "\x00")
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			return "", dmtperr.NewCodecError(dmtperr.ErrKindParseError, "invalid character in string/entity field")
		}
	}
	return s, nil
}
