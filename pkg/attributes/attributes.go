// Package attributes provides the typed attribute containers the connector
// exposes to the framework: a named value with an owning parent object and a
// tag set marking who is allowed to write it.
//
// Attributes are always held by pointer. A nil attribute pointer means the
// field was never present on its entity, which is how an origin instance
// from an earlier epoch can lack fields a newer schema declares.
package attributes

import (
	"time"

	"github.com/carconnectivity/connector-skoda/pkg/objects"
)

// Tag classifies who owns an attribute value.
type Tag string

const (
	// TagConnector marks values supplied by the connector from the vehicle API.
	TagConnector Tag = "connector_custom"

	// TagUser marks values the user may write through the framework.
	TagUser Tag = "user"
)

// Attribute is a single named, typed value owned by an entity in the object
// tree. The zero value is not usable; construct with New or Adopt.
type Attribute[T any] struct {
	name   string
	parent objects.Object
	tags   []Tag
	value  *T
}

// New allocates an unset attribute owned by parent.
func New[T any](name string, parent objects.Object, tags ...Tag) *Attribute[T] {
	return &Attribute[T]{name: name, parent: parent, tags: tags}
}

func (a *Attribute[T]) Name() string { return a.name }

func (a *Attribute[T]) Parent() objects.Object { return a.parent }

// SetParent re-parents the attribute onto a new owner. After migration the
// attribute must be reachable from exactly one live entity.
func (a *Attribute[T]) SetParent(parent objects.Object) { a.parent = parent }

// IsSet reports whether a value was ever assigned.
func (a *Attribute[T]) IsSet() bool { return a.value != nil }

// Value returns the stored value and whether one is present.
func (a *Attribute[T]) Value() (T, bool) {
	if a.value == nil {
		var zero T
		return zero, false
	}
	return *a.value, true
}

// Get returns the stored value, or the zero value when unset.
func (a *Attribute[T]) Get() T {
	v, _ := a.Value()
	return v
}

// SetValue stores a value on behalf of the connector.
func (a *Attribute[T]) SetValue(v T) { a.value = &v }

// Clear resets the attribute to its unset state.
func (a *Attribute[T]) Clear() { a.value = nil }

// HasTag reports whether the attribute carries the given tag.
func (a *Attribute[T]) HasTag(tag Tag) bool {
	for _, t := range a.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Adopt implements the re-parenting half of the origin-copy protocol: when
// origin holds the attribute, the same attribute object is re-parented onto
// the new owner; when origin lacks it, a fresh default attribute is
// allocated. Adoption never fails.
func Adopt[T any](origin *Attribute[T], name string, parent objects.Object, tags ...Tag) *Attribute[T] {
	if origin == nil {
		return New[T](name, parent, tags...)
	}
	origin.SetParent(parent)
	return origin
}

// CopyValue implements the value-copy variant of the protocol: a fresh
// attribute is allocated on the new owner and only the scalar value is
// carried over, leaving the origin's attribute object untouched. Used where
// a retained snapshot must not be mutated through the old reference.
func CopyValue[T any](origin *Attribute[T], name string, parent objects.Object, tags ...Tag) *Attribute[T] {
	fresh := New[T](name, parent, tags...)
	if origin != nil {
		if v, ok := origin.Value(); ok {
			fresh.SetValue(v)
		}
	}
	return fresh
}

// Convenience aliases for the attribute kinds the framework consumes.
type (
	StringAttribute  = Attribute[string]
	BooleanAttribute = Attribute[bool]
	DateAttribute    = Attribute[time.Time]
	LevelAttribute   = Attribute[float64]
)

// EnumAttribute holds a value from a closed set of string-backed constants.
type EnumAttribute[E ~string] = Attribute[E]
