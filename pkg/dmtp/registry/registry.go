// Package registry implements the runtime custom-format registry (§4.G): a
// map from custom packet type (0x70..0x7F) to PacketDescriptor, populated
// by a client's 0xCF format-definition packet.
package registry

import (
	"sync"

	"github.com/opendmtp/dmtp-codec/pkg/dmtp/dmtperr"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/field"
	"github.com/opendmtp/dmtp-codec/pkg/dmtp/protocol"
)

// Registry maintains a mapping of custom packet types to their
// descriptors, guarded by a reader-writer lock so concurrent decode always
// sees a consistent descriptor list or its predecessor, never a torn one
// (§5). Registry swaps are atomic at the per-type granularity: a decode
// call that has already obtained a PacketDescriptor value from Get
// continues to use that value even if a later Register call replaces the
// binding mid-decode — Register swaps the map entry for a new slice and
// never writes into the slice a previous Get returned.
type Registry struct {
	mu    sync.RWMutex
	types map[protocol.PacketType]field.PacketDescriptor
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{types: make(map[protocol.PacketType]field.PacketDescriptor)}
}

// Register installs or replaces the descriptor bound to t. t must fall in
// the custom range (0x70..0x7F); otherwise Register reports ErrParseError.
func (r *Registry) Register(t protocol.PacketType, desc field.PacketDescriptor) error {
	if !t.InCustomRange() {
		return dmtperr.NewFieldError(dmtperr.ErrKindParseError, "type", "target type outside custom range 0x70..0x7F")
	}
	if desc.TotalLength() > 255 {
		return dmtperr.NewFieldError(dmtperr.ErrKindOverflow, "descriptor", "total field length exceeds 255")
	}
	for _, d := range desc {
		if !d.Type.Known() {
			return dmtperr.NewFieldError(dmtperr.ErrKindParseError, "descriptor", "unknown field type in custom descriptor")
		}
		if want, ok := field.ExpectedLength(d.Type, d.HiRes); ok && d.Length != want {
			return dmtperr.NewFieldError(dmtperr.ErrKindParseError, d.Type.String(),
				"declared length does not match the field type's hiRes-dependent wire width")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t] = desc
	return nil
}

// Unregister removes the binding for t, if any.
func (r *Registry) Unregister(t protocol.PacketType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.types, t)
}

// Get returns the descriptor bound to t, if any. The returned slice is not
// copied: it shares the backing array stored in the registry (Descriptor values are small
// and immutable once built), but callers must not mutate it; Register
// always installs a brand-new slice rather than mutating in place.
func (r *Registry) Get(t protocol.PacketType) (field.PacketDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pd, ok := r.types[t]
	return pd, ok
}

// Has reports whether t has a registered binding.
func (r *Registry) Has(t protocol.PacketType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[t]
	return ok
}

// List returns every registered custom packet type.
func (r *Registry) List() []protocol.PacketType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]protocol.PacketType, 0, len(r.types))
	for t := range r.types {
		out = append(out, t)
	}
	return out
}

// Count returns the number of registered bindings.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Clone returns a Registry holding the same bindings, used when a Session
// wants its own overlay seeded from a shared default registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := New()
	for t, pd := range r.types {
		c.types[t] = pd
	}
	return c
}

// Global default registry, mirroring the package-level
// default-registry-with-override pattern: most sessions share it, and a
// session that needs an isolated overlay can Clone it.
var defaultRegistry = New()

// Default returns the process-wide default registry.
func Default() *Registry {
	return defaultRegistry
}
