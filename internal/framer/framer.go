// Package framer implements the packet framer (§4.D): reading one packet
// from a byte stream in either the binary or text framing form, and
// writing a packet back out in a chosen encoding. It operates on raw wire
// tuples (header, type, payload) rather than pkg/dmtp.Packet, so that
// pkg/dmtp can depend on framer without an import cycle.
package framer

import (
	"bufio"
	"io"
	"strings"

	"github.com/opendmtp/dmtp-codec/internal/checksum"
	"github.com/opendmtp/dmtp-codec/internal/textcodec"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/dmtperr"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

// MaxTextFrameLen is the text-frame overflow bound (§4.D: "> 600 bytes
// before '\r'").
const MaxTextFrameLen = 600

// Frame is a decoded wire tuple: protocol header octet, packet type, and
// payload bytes.
type Frame struct {
	Header  byte
	Type    protocol.PacketType
	Payload []byte
}

// Framer reads and writes DMTP frames against a session-level encoding
// mask (§4.D: "the encoding chooser honors a session-level mask").
type Framer struct {
	Mask       protocol.EncodingMask
	RequireXOR bool // if true, a text frame with no '*HH' suffix is rejected
}

// New returns a Framer with the default encoding mask (binary, base64, hex).
func New() *Framer {
	return &Framer{Mask: protocol.DefaultEncodingMask}
}

// ReadFrame implements the read-path state diagram of §4.D.
func (f *Framer) ReadFrame(r *bufio.Reader) (*Frame, error) {
	first, err := r.ReadByte()
	if err != nil {
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindTimeout, "stream ended before header")
	}

	switch {
	case first == '$':
		return f.readTextFrame(r)
	case first == protocol.Header:
		return f.readBinaryFrame(r)
	default:
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindHeaderInvalid, "leading octet is neither 0xE0 nor '$'")
	}
}

func (f *Framer) readBinaryFrame(r *bufio.Reader) (*Frame, error) {
	typ, err := r.ReadByte()
	if err != nil {
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindTransportError, "short read: missing type octet")
	}
	length, err := r.ReadByte()
	if err != nil {
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindTransportError, "short read: missing length octet")
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindTransportError, "short read: payload truncated")
	}

	return &Frame{Header: protocol.Header, Type: protocol.PacketType(typ), Payload: payload}, nil
}

func (f *Framer) readTextFrame(r *bufio.Reader) (*Frame, error) {
	var line strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, dmtperr.NewCodecError(dmtperr.ErrKindTimeout, "stream ended before text frame terminator")
		}
		if b == '\r' {
			break
		}
		if line.Len() >= MaxTextFrameLen {
			return nil, dmtperr.NewCodecError(dmtperr.ErrKindPacketTooLong, "text frame exceeded 600 bytes without '\\r'")
		}
		line.WriteByte(b)
	}

	return f.parseTextLine(line.String())
}

func (f *Framer) parseTextLine(s string) (*Frame, error) {
	body := s
	if idx := strings.LastIndexByte(s, '*'); idx >= 0 {
		checksumHex := s[idx+1:]
		body = s[:idx]
		if !checksum.ValidateXOR([]byte(body), checksumHex) {
			return nil, dmtperr.NewCodecError(dmtperr.ErrKindChecksumFailed, "XOR checksum mismatch")
		}
	} else if f.RequireXOR {
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindChecksumFailed, "text frame missing required '*HH' checksum")
	}

	if len(body) < 5 {
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindParseError, "text frame shorter than header+type+encoding")
	}

	headerType := body[0:4]
	var headerByte, typeByte byte
	if !parseHexByte(headerType[0:2], &headerByte) || !parseHexByte(headerType[2:4], &typeByte) {
		return nil, dmtperr.NewCodecError(dmtperr.ErrKindParseError, "malformed 4 hex digit header/type")
	}

	var payload []byte
	if len(body) > 4 {
		encChar := body[4]
		rest := body[5:]
		switch encChar {
		case '=':
			p, err := textcodec.DecodeBase64(rest)
			if err != nil {
				return nil, dmtperr.NewCodecError(dmtperr.ErrKindParseError, "invalid base64 payload")
			}
			payload = p
		case ':':
			p, err := textcodec.DecodeHex(rest)
			if err != nil {
				return nil, dmtperr.NewCodecError(dmtperr.ErrKindParseError, "invalid hex payload")
			}
			payload = p
		case ',':
			return nil, dmtperr.NewCodecError(dmtperr.ErrKindParseError, "CSV ingress unsupported")
		default:
			return nil, dmtperr.NewCodecError(dmtperr.ErrKindParseError, "unrecognized encoding character")
		}
	}

	return &Frame{Header: headerByte, Type: protocol.PacketType(typeByte), Payload: payload}, nil
}

// WriteFrame writes payload under typ in enc, falling back to the
// mask's cheapest allowed encoding if enc is disabled (§4.D). Binary
// framing is checksum-free; every text framing form appends an ASCII
// XOR checksum (`*HH`).
func (f *Framer) WriteFrame(w io.Writer, typ protocol.PacketType, payload []byte, enc protocol.Encoding) error {
	if len(payload) > 255 {
		return dmtperr.NewCodecError(dmtperr.ErrKindPacketTooLong, "payload exceeds 255 bytes")
	}
	if !f.Mask.Allows(enc) {
		enc = f.Mask.Cheapest()
	}

	if enc == protocol.EncodingBinary {
		frame := make([]byte, 0, 3+len(payload))
		frame = append(frame, protocol.Header, byte(typ), byte(len(payload)))
		frame = append(frame, payload...)
		_, err := w.Write(frame)
		return err
	}

	var body strings.Builder
	body.WriteString(hexByte(protocol.Header))
	body.WriteString(hexByte(byte(typ)))
	body.WriteByte(enc.Char())

	switch enc {
	case protocol.EncodingBase64:
		body.WriteString(textcodec.EncodeBase64(payload))
	case protocol.EncodingHex:
		body.WriteString(textcodec.EncodeHex(payload))
	case protocol.EncodingCSV:
		body.WriteString(textcodec.EncodeCSV(payload))
	default:
		return dmtperr.NewCodecError(dmtperr.ErrKindParseError, "unsupported text encoding")
	}

	bodyStr := body.String()
	sum := checksum.CalculateXOR([]byte(bodyStr))
	_, err := io.WriteString(w, "$"+bodyStr+"*"+checksum.AppendXOR(sum)+"\r")
	return err
}

const hexDigits = "0123456789ABCDEF"

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0F]})
}

func parseHexByte(s string, out *byte) bool {
	var v byte
	for i := 0; i < 2; i++ {
		c := s[i]
		var digit byte
		switch {
		case c >= '0' && c <= '9':
			digit = c - '0'
		case c >= 'A' && c <= 'F':
			digit = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			digit = c - 'a' + 10
		default:
			return false
		}
		v = v<<4 | digit
	}
	*out = v
	return true
}
