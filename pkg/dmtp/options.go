package dmtp

import "github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"

// Options configures a Session's framing and decode behavior.
type Options struct {
	// EncodingMask restricts which encodings WritePacket may choose from
	// (§4.D), binary included: a requested encoding the mask does not allow
	// is replaced by the mask's cheapest allowed one.
	EncodingMask protocol.EncodingMask

	// RequireXOR rejects an inbound text frame that carries no '*HH'
	// checksum suffix, rather than trusting it unchecked.
	RequireXOR bool

	// StrictUnknownFields fails Decode with ErrParseError when the completed
	// field walk skipped a descriptor entry of an unknown field type, instead
	// of returning the Event with the skip recorded in the FieldMask. The
	// walk itself still runs to the end, so an error the walk reports further
	// along (such as ErrUnderflow) is returned instead.
	StrictUnknownFields bool
}

// Option is a functional option for configuring a Session.
type Option func(*Options)

// DefaultOptions returns the default session options: the three
// always-on encodings, checksum optional on read, unknown fields skipped
// rather than fatal.
func DefaultOptions() Options {
	return Options{
		EncodingMask:        protocol.DefaultEncodingMask,
		RequireXOR:          false,
		StrictUnknownFields: false,
	}
}

// WithEncodingMask restricts WritePacket to the given set of encodings.
func WithEncodingMask(mask protocol.EncodingMask) Option {
	return func(o *Options) {
		o.EncodingMask = mask
	}
}

// WithRequireXOR rejects inbound text frames lacking a checksum suffix.
func WithRequireXOR() Option {
	return func(o *Options) {
		o.RequireXOR = true
	}
}

// WithStrictUnknownFields fails decoding on the first unrecognized field
// type instead of skipping it.
func WithStrictUnknownFields() Option {
	return func(o *Options) {
		o.StrictUnknownFields = true
	}
}
