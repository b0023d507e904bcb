package event

import "github.com/opendmtp/dmtp-codec/pkg/dmtp/field"

// fieldKey identifies one (type, index) slot in the mask; most field types
// only ever appear at index 0, but §3 allows a few (timestamp, GPS point,
// geofence ID, entity, string) to appear twice.
type fieldKey struct {
	Type  field.Type
	Index uint8
}

// FieldMask records which fields a Decode call actually populated, so
// callers can distinguish an explicit zero from an absent field (§8
// property 9).
type FieldMask struct {
	set             map[fieldKey]bool
	hasUnknownField bool
}

// NewFieldMask returns an empty mask.
func NewFieldMask() *FieldMask {
	return &FieldMask{set: make(map[fieldKey]bool)}
}

// mark records that (t, index) was populated during the walk.
func (m *FieldMask) mark(t field.Type, index uint8) {
	m.set[fieldKey{Type: t, Index: index}] = true
}

// IsSet reports whether (t, index) was populated.
func (m *FieldMask) IsSet(t field.Type, index uint8) bool {
	return m.set[fieldKey{Type: t, Index: index}]
}

// HasUnknownFields reports whether the walk encountered a descriptor type
// it did not recognize (forward-compatibility skip, §4.H step 3).
func (m *FieldMask) HasUnknownFields() bool {
	return m.hasUnknownField
}

func (m *FieldMask) markUnknown() {
	m.hasUnknownField = true
}
