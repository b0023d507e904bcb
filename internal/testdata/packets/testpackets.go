// Package packets holds wire-level fixtures for the testable-property
// scenarios (S1-S6): golden hex strings paired with the decoded values a
// correct implementation must produce. Kept as a package-level table
// rather than inline literals so the same fixture can be shared across
// framer, session, and registry tests without re-deriving checksums by
// hand in each _test.go file.
package packets

// DMTPPacket is a single scenario fixture: the wire bytes exactly as they
// would arrive on a byte stream, plus the fields a correct decode must
// produce. Mirrors the teacher's TestPacket{Name, Hex, Description, Valid}
// shape, generalized from "protocol number" to "decoded field values".
type DMTPPacket struct {
	Name        string
	Hex         string // wire bytes (binary framing) or wire text (text framing), hex-encoded for the binary case
	Description string
	Valid       bool // whether ReadFrame (or ReadFrame+Decode) should succeed
}

// FixedLoResPayload is the 20-byte §4.F static-table payload shared by
// S1-S4: statusCode=0xF123, timestamp=0x62D50000, speed=50kph (raw 0x32),
// heading=180.0deg (raw 0x80, since 128*360/256=180), sequence=7. GPS point
// and altitude/distance bytes are filler, not asserted by the scenarios.
const FixedLoResPayloadHex = "F12362D50000AABBCCDDEEFF3280000000000007"

// S1 is the binary fixed lo-res fixture (spec.md §8 scenario S1): header,
// type 0x30, 20-byte payload, no checksum (binary framing carries none).
var S1 = DMTPPacket{
	Name:        "s1_binary_fixed_lores",
	Hex:         "E03014" + FixedLoResPayloadHex,
	Description: "binary fixed lo-res event: statusCode=0xF123 timestamp=0x62D50000 speed=50kph heading=180deg sequence=7",
	Valid:       true,
}

// S2 is the text-hex equivalent of S1, XOR checksum computed over
// "E030:" + upper-case hex payload.
var S2 = DMTPPacket{
	Name:        "s2_text_hex_fixed_lores",
	Hex:         "$E030:" + FixedLoResPayloadHex + "*41\r",
	Description: "text hex equivalent of S1, same decoded Event",
	Valid:       true,
}

// S3 is the text base64 equivalent of S1.
var S3 = DMTPPacket{
	Name:        "s3_text_base64_fixed_lores",
	Hex:         "$E030=8SNi1QAAqrvM3e7/MoAAAAAAAAc=*6D\r",
	Description: "text base64 equivalent of S1, same decoded Event",
	Valid:       true,
}

// S4 flips one hex digit of S2's checksum, producing a ChecksumFailed read.
var S4 = DMTPPacket{
	Name:        "s4_text_hex_bad_checksum",
	Hex:         "$E030:" + FixedLoResPayloadHex + "*42\r",
	Description: "S2 with one checksum digit flipped: must fail with ChecksumFailed",
	Valid:       false,
}

// S5Install is the custom-format-definition packet (0xCF) that registers
// type 0x73 with two fields: status(2 bytes, index 0), timestamp(4 bytes,
// index 0).
var S5Install = DMTPPacket{
	Name:        "s5_custom_format_install",
	Hex:         "E0CF087302010002020004",
	Description: "installs custom type 0x73 as [status(2), timestamp(4)]",
	Valid:       true,
}

// S5Decode is a 0x73 event packet decoded against the format S5Install
// registers: statusCode=0x0015, timestamp=0x62D50000.
var S5Decode = DMTPPacket{
	Name:        "s5_custom_format_decode",
	Hex:         "E07306001562D50000",
	Description: "0x73 event decoding statusCode=0x0015 timestamp=0x62D50000 via the installed custom format",
	Valid:       true,
}

// FletcherRecord is a single record in the upload-complete checksum
// scenario (S6). The upload FSM itself is out of scope (an external
// collaborator per spec.md's Non-goals), but the Fletcher-16 primitive it
// relies on is in scope, so these fixtures exercise internal/checksum
// directly rather than a full upload session.
type FletcherRecord struct {
	Name        string
	Data        []byte // the 16-byte data block the Fletcher-16 accumulator folds over
	C0, C1      byte   // the accumulator pair a correct Update(Data) produces
	WrongC0     byte
	WrongC1     byte
	Description string
}

// S6 is the 16-byte data block (offset 0) from the upload-complete
// scenario, with its correct Fletcher-16 pair and a deliberately wrong
// pair standing in for a corrupted upload.
var S6 = FletcherRecord{
	Name:        "s6_upload_fletcher",
	Data:        []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F},
	C0:          0x78,
	C1:          0xA8,
	WrongC0:     0x78,
	WrongC1:     0xA9,
	Description: "16-byte data block from offset 0: correct Fletcher-16 pair accepted, wrong pair rejected",
}

// AllValid returns every scenario fixture that a correct ReadFrame (or
// ReadFrame+Decode) call must accept.
func AllValid() []DMTPPacket {
	return []DMTPPacket{S1, S2, S3, S5Install, S5Decode}
}

// AllInvalid returns every scenario fixture a correct implementation must
// reject.
func AllInvalid() []DMTPPacket {
	return []DMTPPacket{S4}
}
