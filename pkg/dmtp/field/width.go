package field

// wireWidth holds a field type's expected wire length in bytes: [0] is the
// lo-res width, [1] the hi-res width, pinned against the per-field comments
// in original_source/src/server/events.h. Variable-width fields (string,
// entity, binary, the raw OBC value blob) have no entry — any length the
// sender declares is acceptable for those.
var wireWidth = map[Type][2]uint8{
	TypeStatusCode:      {2, 2},
	TypeTimestamp:       {4, 4},
	TypeIndex:           {4, 4},
	TypeSequence:        {1, 1},
	TypeGPSPoint:        {6, 8},
	TypeGPSAge:          {2, 2},
	TypeSpeed:           {1, 2},
	TypeHeading:         {1, 2},
	TypeAltitude:        {2, 3},
	TypeDistance:        {3, 3},
	TypeOdometer:        {3, 4},
	TypeGeofenceID:      {4, 4},
	TypeTopSpeed:        {1, 2},
	TypeInputID:         {4, 4},
	TypeInputState:      {4, 4},
	TypeOutputID:        {4, 4},
	TypeOutputState:     {4, 4},
	TypeElapsedTime:     {3, 3},
	TypeCounter:         {4, 4},
	TypeSensor32Low:     {4, 4},
	TypeSensor32High:    {4, 4},
	TypeSensor32Aver:    {4, 4},
	TypeTempLow:         {1, 2},
	TypeTempHigh:        {1, 2},
	TypeTempAver:        {1, 2},
	TypeGPSDGPSUpdate:   {2, 2},
	TypeGPSHorzAcc:      {1, 2},
	TypeGPSVertAcc:      {1, 2},
	TypeGPSSatellites:   {1, 1},
	TypeGPSMagVar:       {2, 2},
	TypeGPSQuality:      {1, 1},
	TypeGPSFixType:      {1, 1},
	TypeGPSGeoidHeight:  {1, 2},
	TypeGPSPDOP:         {1, 2},
	TypeGPSHDOP:         {1, 2},
	TypeGPSVDOP:         {1, 2},
	TypeOBCGeneric:      {4, 4},
	TypeOBCJ1708Fault:   {4, 4},
	TypeOBCDistance:     {3, 4},
	TypeOBCEngineHours:  {3, 3},
	TypeOBCEngineRPM:    {2, 2},
	TypeOBCCoolantTemp:  {1, 2},
	TypeOBCCoolantLevel: {1, 2},
	TypeOBCOilLevel:     {1, 2},
	TypeOBCOilPressure:  {1, 2},
	TypeOBCFuelLevel:    {1, 2},
	TypeOBCFuelEconomy:  {1, 2},
	TypeOBCFuelUsed:     {3, 4},
}

// ExpectedLength returns the wire length t must carry at the given hiRes
// setting, and whether t has a fixed width at all (ok is false for
// variable-width fields: string, entity, binary, and the raw OBC value).
func ExpectedLength(t Type, hiRes bool) (length uint8, ok bool) {
	widths, known := wireWidth[t]
	if !known {
		return 0, false
	}
	if hiRes {
		return widths[1], true
	}
	return widths[0], true
}
