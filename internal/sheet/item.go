// Package sheet implements the authoritative state machine for a stack of
// overlay sheets. The Store owns the ordered stack and the operations that
// mutate it; a presentation layer consumes snapshots and renders them.
package sheet

// Item is one entry in the sheet stack. ID is unique within the stack at
// any instant; Type identifies the content provider that renders the item;
// Data is an opaque payload forwarded verbatim to that provider.
type Item struct {
	ID   string
	Type string
	Data map[string]any
}

// Provider is an opaque reference to a content renderer supplied ad hoc
// instead of via a registered type name. The store never calls into it; it
// only uses the reference's identity, so values must be comparable
// (typically a pointer to the renderer). Register providers once, not per
// frame, or Navigate's same-type detection breaks.
type Provider any

// Type is the union of the two ways to address sheet content: a registered
// type name, or an ad-hoc provider reference.
type Type struct {
	name     string
	provider Provider
}

// Kind addresses content by its registered type name.
func Kind(name string) Type {
	return Type{name: name}
}

// Adhoc addresses content by provider reference. The store assigns the
// provider a generated type key on first use.
func Adhoc(p Provider) Type {
	return Type{provider: p}
}

// IsAdhoc reports whether the type addresses an ad-hoc provider.
func (t Type) IsAdhoc() bool {
	return t.provider != nil
}

// Name returns the type name for named types; empty for ad-hoc types.
func (t Type) Name() string {
	return t.name
}
