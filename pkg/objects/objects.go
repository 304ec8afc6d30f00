// Package objects provides the ownership tree that all connector data
// hangs off: every attribute and sub-entity has exactly one parent object,
// and the tree is rooted at the garage.
package objects

// Object is a node in the ownership tree.
type Object interface {
	// ID returns the object identifier, unique among its siblings.
	ID() string

	// Parent returns the owning object, or nil for the tree root.
	Parent() Object

	// SetParent re-parents the object. Used during origin migration when an
	// existing sub-entity is adopted by a newly constructed owner.
	SetParent(parent Object)
}

// GenericObject is the base implementation of Object, meant to be embedded
// by concrete entities.
type GenericObject struct {
	id     string
	parent Object
}

// NewGenericObject creates an object node with the given id and parent.
func NewGenericObject(id string, parent Object) GenericObject {
	return GenericObject{id: id, parent: parent}
}

func (o *GenericObject) ID() string { return o.id }

func (o *GenericObject) Parent() Object { return o.parent }

func (o *GenericObject) SetParent(parent Object) { o.parent = parent }

// Path returns the slash-joined ids from the root down to this object.
func (o *GenericObject) Path() string {
	if o.parent == nil {
		return "/" + o.id
	}
	if p, ok := o.parent.(interface{ Path() string }); ok {
		return p.Path() + "/" + o.id
	}
	return "/" + o.parent.ID() + "/" + o.id
}
