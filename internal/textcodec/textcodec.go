// Package textcodec converts between the three text-framing encodings
// (base64, hex, CSV) and raw payload bytes (§4.C). CSV is emit-only: its
// Decode always fails, since the framer rejects CSV on ingress.
package textcodec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

// ErrCSVIngressUnsupported is returned by DecodeCSV: the protocol "retains
// the character" for CSV but never accepts it on the read path (see
// DESIGN.md's Open Question decision 1).
var ErrCSVIngressUnsupported = errors.New("textcodec: CSV ingress unsupported")

// EncodeBase64 encodes payload using the standard 6->8 alphabet with '='
// padding.
func EncodeBase64(payload []byte) string {
	return base64.StdEncoding.EncodeToString(payload)
}

// DecodeBase64 decodes a base64-encoded payload.
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// EncodeHex encodes payload as upper-case hex digits (the write-path
// requirement of §4.C).
func EncodeHex(payload []byte) string {
	return strings.ToUpper(hex.EncodeToString(payload))
}

// DecodeHex decodes a hex-encoded payload; encoding/hex already accepts
// mixed-case digits, satisfying the case-insensitive read requirement.
func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// EncodeCSV renders payload as a comma-separated sequence of decimal
// tokens, one per byte — the simplest faithful token-per-directive mapping
// when no format string is available to choose hex vs. decimal per field.
func EncodeCSV(payload []byte) string {
	tokens := make([]string, len(payload))
	for i, b := range payload {
		tokens[i] = strconv.Itoa(int(b))
	}
	return strings.Join(tokens, ",")
}

// DecodeCSV always fails: CSV ingress is unsupported in this revision.
func DecodeCSV(_ string) ([]byte, error) {
	return nil, ErrCSVIngressUnsupported
}
