package dmtp

import (
	"bufio"
	"io"

	"github.com/google/uuid"

	"github.com/opendmtp/dmtp-codec/internal/framer"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/dmtperr"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/event"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/field"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/registry"
)

// Session holds the per-connection state a client or server side of the
// protocol needs across many packets: a unique ID for log correlation, a
// custom-format registry overlay, and the framing options that govern how
// packets are read and written (§5).
type Session struct {
	ID       uuid.UUID
	Registry *registry.Registry
	Options  Options

	framer *framer.Framer
}

// NewSession creates a Session with a fresh ID and its own registry
// overlay cloned from the process-wide default (§5: "a session that needs
// an isolated overlay can Clone it").
func NewSession(opts ...Option) *Session {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return &Session{
		ID:       uuid.New(),
		Registry: registry.Default().Clone(),
		Options:  o,
		framer:   &framer.Framer{Mask: o.EncodingMask, RequireXOR: o.RequireXOR},
	}
}

// ReadPacket reads exactly one framed packet from r, in either framing
// form, and returns it as a Packet.
func (s *Session) ReadPacket(r io.Reader) (*Packet, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	f, err := s.framer.ReadFrame(br)
	if err != nil {
		return nil, err
	}
	return &Packet{Header: f.Header, Type: f.Type, Payload: f.Payload}, nil
}

// WritePacket writes pkt to w in enc, falling back to the session's
// cheapest allowed encoding when enc is masked off.
func (s *Session) WritePacket(w io.Writer, pkt *Packet, enc protocol.Encoding) error {
	if err := pkt.Validate(); err != nil {
		return err
	}
	return s.framer.WriteFrame(w, pkt.Type, pkt.Payload, enc)
}

// descriptorFor resolves the PacketDescriptor governing t: the session's
// custom-format registry for 0x70..0x7F, the static table for every other
// type. The static table binds only 0x30 and 0x31, so other types
// (service-provider types included) resolve to no descriptor.
func (s *Session) descriptorFor(t protocol.PacketType) (field.PacketDescriptor, bool) {
	if t.InCustomRange() {
		return s.Registry.Get(t)
	}
	return field.Lookup(t)
}

// Decode resolves pkt's field descriptor and runs the event field walk
// (§4.H). A custom-format-definition packet (0xCF) is handled specially:
// it installs a binding into the session's registry rather than decoding
// to an Event.
func (s *Session) Decode(pkt *Packet) (*event.Event, *event.FieldMask, error) {
	if pkt.Type == protocol.ClientFormatDefinition {
		if err := s.Registry.InstallFromDefinition(pkt.Payload); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	}

	desc, ok := s.descriptorFor(pkt.Type)
	if !ok {
		return nil, nil, dmtperr.NewFieldError(dmtperr.ErrKindParseError, "Type", "no descriptor registered for packet type")
	}

	ev, mask, err := event.Decode(pkt.Payload, desc)
	if err != nil {
		return nil, nil, err
	}
	if s.Options.StrictUnknownFields && mask.HasUnknownFields() {
		return nil, nil, dmtperr.NewCodecError(dmtperr.ErrKindParseError, "descriptor contains unknown field type")
	}
	return ev, mask, nil
}

// InstallFormat installs a 0xCF custom-format-definition payload directly,
// bypassing Decode — useful when a definition arrives out of band.
func (s *Session) InstallFormat(payload []byte) error {
	return s.Registry.InstallFromDefinition(payload)
}
