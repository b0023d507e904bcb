package dmtp

import "github.com/opendmtp/dmtp-codec/pkg/dmtp/dmtperr"

// ErrorKind, CodecError, and the sentinel errors live in dmtperr so that
// internal packages (binfmt, checksum, textcodec, framer) can report
// codec errors without importing this package and creating an import
// cycle. They are re-exported here as the public, caller-facing names.
type ErrorKind = dmtperr.ErrorKind

const (
	ErrKindUnknown        = dmtperr.ErrKindUnknown
	ErrKindHeaderInvalid  = dmtperr.ErrKindHeaderInvalid
	ErrKindTimeout        = dmtperr.ErrKindTimeout
	ErrKindTransportError = dmtperr.ErrKindTransportError
	ErrKindPacketTooLong  = dmtperr.ErrKindPacketTooLong
	ErrKindChecksumFailed = dmtperr.ErrKindChecksumFailed
	ErrKindParseError     = dmtperr.ErrKindParseError
	ErrKindOverflow       = dmtperr.ErrKindOverflow
	ErrKindUnderflow      = dmtperr.ErrKindUnderflow
	ErrKindFmtDigit       = dmtperr.ErrKindFmtDigit
	ErrKindFmtChar        = dmtperr.ErrKindFmtChar
)

type CodecError = dmtperr.CodecError

var (
	ErrHeaderInvalid  = dmtperr.ErrHeaderInvalid
	ErrTimeout        = dmtperr.ErrTimeout
	ErrTransportError = dmtperr.ErrTransportError
	ErrPacketTooLong  = dmtperr.ErrPacketTooLong
	ErrChecksumFailed = dmtperr.ErrChecksumFailed
	ErrParseError     = dmtperr.ErrParseError
	ErrOverflow       = dmtperr.ErrOverflow
	ErrUnderflow      = dmtperr.ErrUnderflow
	ErrFmtDigit       = dmtperr.ErrFmtDigit
	ErrFmtChar        = dmtperr.ErrFmtChar

	NewCodecError  = dmtperr.NewCodecError
	NewFieldError  = dmtperr.NewFieldError
	NewOffsetError = dmtperr.NewOffsetError
)
