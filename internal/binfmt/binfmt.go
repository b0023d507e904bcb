// Package binfmt implements the binary printf/scanf-style formatter (§4.A):
// a format-string-driven pack/unpack between a typed argument list and raw
// payload bytes, including the GPS point directive.
package binfmt

import (
	"strconv"
	"strings"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp/dmtperr"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/gps"
	"github.com/paulmach/orb"
)

// Directive verbs, one character each, matching §4.A's format grammar.
const (
	VerbUint   = 'u'
	VerbInt    = 'i'
	VerbHex    = 'x'
	VerbGPS    = 'g'
	VerbString = 's'
	VerbBytes  = 'b'
)

// Directive is one parsed "%N<verb>" (or "%*<verb>") token.
type Directive struct {
	Width   int  // declared byte width; 0 for s/b directives whose width comes from an argument
	FromArg bool // true when '*' stood in for N
	Verb    byte
}

// Parse splits format into its directive sequence, validating widths per
// verb (1..4 for u/i/x, 6 or 8 for g; s/b accept any width including 0/
// FromArg). An unrecognized verb reports ErrKindFmtChar; a missing or
// invalid width reports ErrKindFmtDigit.
func Parse(format string) ([]Directive, error) {
	var dirs []Directive
	i := 0
	for i < len(format) {
		if format[i] != '%' {
			return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtChar, i, "expected '%' directive marker")
		}
		i++
		if i >= len(format) {
			return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtChar, i, "truncated directive")
		}

		fromArg := false
		width := 0
		if format[i] == '*' {
			fromArg = true
			i++
		} else {
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			if i == start {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtDigit, i, "missing width digit")
			}
			n, err := strconv.Atoi(format[start:i])
			if err != nil {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtDigit, i, "malformed width")
			}
			width = n
		}

		if i >= len(format) {
			return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtChar, i, "directive missing verb")
		}
		verb := format[i]
		i++

		switch verb {
		case VerbUint, VerbInt, VerbHex:
			if fromArg {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtChar, i, "scalar directives cannot take '*' width")
			}
			if width < 1 || width > 4 {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtDigit, i, "integer width must be 1..4")
			}
		case VerbGPS:
			if fromArg {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtChar, i, "GPS directive cannot take '*' width")
			}
			if width != 6 && width != 8 {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtDigit, i, "GPS width must be 6 or 8")
			}
		case VerbString, VerbBytes:
			// width 0 / FromArg both mean "supplied at pack/unpack time".
		default:
			return nil, dmtperr.NewOffsetError(dmtperr.ErrKindFmtChar, i-1, "unrecognized directive verb "+string(verb))
		}

		dirs = append(dirs, Directive{Width: width, FromArg: fromArg, Verb: verb})
	}
	return dirs, nil
}

// ReadUint reads an n-byte big-endian unsigned integer from buf[:n],
// exposed for callers (the event decoder) that dispatch on a field type
// rather than a format string.
func ReadUint(buf []byte, n int) uint64 {
	return getUintBE(buf, n)
}

// ReadInt reads an n-byte big-endian two's-complement signed integer from
// buf[:n].
func ReadInt(buf []byte, n int) int64 {
	return getIntBE(buf, n)
}

func putUintBE(buf []byte, n int, v uint64) {
	for i := 0; i < n; i++ {
		shift := uint((n - 1 - i) * 8)
		buf[i] = byte(v >> shift)
	}
}

func getUintBE(buf []byte, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v = v<<8 | uint64(buf[i])
	}
	return v
}

func getIntBE(buf []byte, n int) int64 {
	u := getUintBE(buf, n)
	bits := uint(n * 8)
	signBit := uint64(1) << (bits - 1)
	if u&signBit != 0 {
		return int64(u) - int64(uint64(1)<<bits)
	}
	return int64(u)
}

// validASCIIField reports whether s contains only the character set §4.H
// allows for entity/string fields: A-Z, a-z, 0-9, '-', '.'.
func validASCIIField(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '.':
		default:
			return false
		}
	}
	return true
}

// Pack serializes args against format into a freshly allocated payload.
// args must supply one value per directive, in order: for '*'-width
// string/bytes directives, the preceding argument must be the int width.
// GPS directives expect an orb.Point; string directives expect a string
// restricted to the §4.H character set; bytes directives expect []byte.
func Pack(format string, args ...any) ([]byte, error) {
	dirs, err := Parse(format)
	if err != nil {
		return nil, err
	}

	var buf []byte
	argi := 0
	next := func() (any, error) {
		if argi >= len(args) {
			return nil, dmtperr.NewCodecError(dmtperr.ErrKindOverflow, "not enough arguments for format")
		}
		v := args[argi]
		argi++
		return v, nil
	}

	for _, d := range dirs {
		switch d.Verb {
		case VerbUint, VerbHex:
			v, err := next()
			if err != nil {
				return nil, err
			}
			u, ok := toUint64(v)
			if !ok {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindFmtChar, string(d.Verb), "argument is not an unsigned integer")
			}
			field := make([]byte, d.Width)
			putUintBE(field, d.Width, u)
			buf = append(buf, field...)

		case VerbInt:
			v, err := next()
			if err != nil {
				return nil, err
			}
			sv, ok := toInt64(v)
			if !ok {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindFmtChar, string(d.Verb), "argument is not a signed integer")
			}
			field := make([]byte, d.Width)
			putUintBE(field, d.Width, uint64(sv)&maskForWidth(d.Width))
			buf = append(buf, field...)

		case VerbGPS:
			v, err := next()
			if err != nil {
				return nil, err
			}
			pt, ok := v.(orb.Point)
			if !ok {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindFmtChar, "g", "argument is not an orb.Point")
			}
			packed, err := gps.Pack(pt, d.Width*8/2)
			if err != nil {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindOverflow, "g", err.Error())
			}
			buf = append(buf, packed...)

		case VerbString:
			width, err := resolveWidth(d, &argi, args)
			if err != nil {
				return nil, err
			}
			v, err := next()
			if err != nil {
				return nil, err
			}
			s, ok := v.(string)
			if !ok {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindFmtChar, "s", "argument is not a string")
			}
			if !validASCIIField(s) {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindFmtChar, "s", "string contains characters outside A-Z a-z 0-9 - .")
			}
			if len(s) > width {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindOverflow, "s", "string longer than declared width")
			}
			field := make([]byte, width)
			copy(field, s)
			buf = append(buf, field...)

		case VerbBytes:
			width, err := resolveWidth(d, &argi, args)
			if err != nil {
				return nil, err
			}
			v, err := next()
			if err != nil {
				return nil, err
			}
			data, ok := v.([]byte)
			if !ok {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindFmtChar, "b", "argument is not []byte")
			}
			if len(data) > width {
				return nil, dmtperr.NewFieldError(dmtperr.ErrKindOverflow, "b", "bytes longer than declared width")
			}
			field := make([]byte, width)
			copy(field, data)
			buf = append(buf, field...)
		}
	}
	return buf, nil
}

// Unpack walks buffer against format, returning one decoded value per
// directive in the same order Pack expects them as arguments. It reports
// ErrKindUnderflow when buffer ends before a directive is satisfied.
func Unpack(buffer []byte, format string) ([]any, error) {
	dirs, err := Parse(format)
	if err != nil {
		return nil, err
	}

	var out []any
	pos := 0
	// pendingWidth holds a width consumed from a decoded int value, for the
	// directive immediately following a FromArg s/b directive's width source.
	var pendingWidth *int

	for _, d := range dirs {
		switch d.Verb {
		case VerbUint, VerbHex:
			if pos+d.Width > len(buffer) {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindUnderflow, pos, "buffer too short for scalar field")
			}
			u := getUintBE(buffer[pos:pos+d.Width], d.Width)
			out = append(out, u)
			w := int(u)
			pendingWidth = &w
			pos += d.Width

		case VerbInt:
			if pos+d.Width > len(buffer) {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindUnderflow, pos, "buffer too short for scalar field")
			}
			out = append(out, getIntBE(buffer[pos:pos+d.Width], d.Width))
			pos += d.Width

		case VerbGPS:
			if pos+d.Width > len(buffer) {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindUnderflow, pos, "buffer too short for GPS field")
			}
			pt, err := gps.Unpack(buffer[pos:pos+d.Width], d.Width*8/2)
			if err != nil {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindParseError, pos, err.Error())
			}
			out = append(out, pt)
			pos += d.Width

		case VerbString, VerbBytes:
			width := d.Width
			if d.FromArg {
				if pendingWidth == nil {
					return nil, dmtperr.NewFieldError(dmtperr.ErrKindFmtChar, string(d.Verb), "'*' width directive requires a preceding width argument")
				}
				width = *pendingWidth
				pendingWidth = nil
			}
			if width == 0 {
				width = len(buffer) - pos // "0 means rest of payload"
			}
			if pos+width > len(buffer) {
				return nil, dmtperr.NewOffsetError(dmtperr.ErrKindUnderflow, pos, "buffer too short for variable field")
			}
			raw := buffer[pos : pos+width]
			pos += width
			if d.Verb == VerbString {
				s := strings.TrimRight(string(raw), "\x00")
				if !validASCIIField(s) {
					return nil, dmtperr.NewOffsetError(dmtperr.ErrKindParseError, pos-width, "string contains invalid characters")
				}
				out = append(out, s)
			} else {
				cp := make([]byte, len(raw))
				copy(cp, raw)
				out = append(out, cp)
			}
		}
	}
	return out, nil
}

func resolveWidth(d Directive, argi *int, args []any) (int, error) {
	if !d.FromArg {
		return d.Width, nil
	}
	if *argi >= len(args) {
		return 0, dmtperr.NewCodecError(dmtperr.ErrKindOverflow, "missing width argument for '*' directive")
	}
	w, ok := args[*argi].(int)
	if !ok {
		return 0, dmtperr.NewFieldError(dmtperr.ErrKindFmtDigit, string(d.Verb), "'*' width argument must be int")
	}
	*argi++
	return w, nil
}

func maskForWidth(n int) uint64 {
	if n >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (uint(n) * 8)) - 1
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint64:
		return x, true
	case uint32:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case int:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	default:
		return 0, false
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case int16:
		return int64(x), true
	case int8:
		return int64(x), true
	case int:
		return int64(x), true
	default:
		return 0, false
	}
}
