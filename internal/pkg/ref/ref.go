// Package ref models references that may or may not be hydrated.
//
// A repository can return an entity holding only the foreign key, or the
// joined row as well. Ref keeps both shapes behind one narrowing accessor so
// callers never type-probe.
package ref

// Ref is a reference to an entity of type T: always an ID, optionally the
// hydrated entity.
type Ref[T any] struct {
	id     string
	entity *T
}

// ID returns a bare reference.
func ID[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// Populated returns a hydrated reference.
func Populated[T any](id string, entity *T) Ref[T] {
	return Ref[T]{id: id, entity: entity}
}

// ID returns the referenced entity's id, hydrated or not.
func (r Ref[T]) ID() string {
	return r.id
}

// Entity narrows to the hydrated entity. ok is false for bare references.
func (r Ref[T]) Entity() (entity *T, ok bool) {
	return r.entity, r.entity != nil
}

// IsZero reports whether the reference is unset.
func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.entity == nil
}
