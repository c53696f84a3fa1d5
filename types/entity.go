package types

// EntityID indexes into the world's entity table. IDs are recycled when an
// entity is destroyed, so an EntityID on its own is not a safe reference.
// Use a Handle, which pairs the ID with the generation it was issued under.
type EntityID int32

// Generation counts how many times an entity table slot has been recycled.
// A handle is live only while its generation matches the slot's current one.
type Generation uint16

// Handle is a lightweight, non-owning reference to an entity. The zero value
// is the canonical null handle and never refers to a live entity. Two handles
// are equal iff both fields match, so Handle supports == directly.
type Handle struct {
	ID  EntityID   `json:"id"`
	Gen Generation `json:"gen"`
}

// Nil is the null handle.
var Nil = Handle{}

// IsNil reports whether h is the null handle.
func (h Handle) IsNil() bool {
	return h == Nil
}
