package protocol

// Encoding identifies the wire representation chosen for a text-framed
// packet payload (binary framing carries no Encoding value of its own).
type Encoding byte

const (
	EncodingBinary Encoding = iota
	EncodingBase64
	EncodingHex
	EncodingCSV
)

// Char returns the single-character marker used in the text framing form
// for this encoding, or 0 for EncodingBinary (which has no text form).
func (e Encoding) Char() byte {
	switch e {
	case EncodingBase64:
		return '='
	case EncodingHex:
		return ':'
	case EncodingCSV:
		return ','
	default:
		return 0
	}
}

// EncodingFromChar maps a text-framing encoding character back to an
// Encoding, with ok=false for an unrecognized character.
func EncodingFromChar(c byte) (Encoding, bool) {
	switch c {
	case '=':
		return EncodingBase64, true
	case ':':
		return EncodingHex, true
	case ',':
		return EncodingCSV, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case EncodingBinary:
		return "binary"
	case EncodingBase64:
		return "base64"
	case EncodingHex:
		return "hex"
	case EncodingCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// EncodingMask is a bitset of supported/enabled encodings, negotiated per
// session (spec §4.D: "the encoding chooser honors a session-level mask").
type EncodingMask byte

const (
	MaskBinary EncodingMask = 1 << iota
	MaskBase64
	MaskHex
	MaskCSV
)

// DefaultEncodingMask supports binary, base64, and hex — the three
// encodings the framer must always be able to write.
const DefaultEncodingMask = MaskBinary | MaskBase64 | MaskHex

// Allows reports whether enc is enabled in the mask.
func (m EncodingMask) Allows(enc Encoding) bool {
	switch enc {
	case EncodingBinary:
		return m&MaskBinary != 0
	case EncodingBase64:
		return m&MaskBase64 != 0
	case EncodingHex:
		return m&MaskHex != 0
	case EncodingCSV:
		return m&MaskCSV != 0
	default:
		return false
	}
}

// Cheapest returns the cheapest encoding allowed by the mask, preferring
// binary, then hex, then base64 — used as the framer's fallback when the
// caller's requested encoding is masked off. Binary, base64, and hex must
// always be supported, so this never fails for those three.
func (m EncodingMask) Cheapest() Encoding {
	switch {
	case m.Allows(EncodingBinary):
		return EncodingBinary
	case m.Allows(EncodingHex):
		return EncodingHex
	case m.Allows(EncodingBase64):
		return EncodingBase64
	default:
		return EncodingBinary
	}
}
