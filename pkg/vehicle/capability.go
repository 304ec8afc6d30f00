package vehicle

import (
	"sort"

	"github.com/carconnectivity/connector-skoda/pkg/attributes"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
)

// Capability is a single detected vehicle feature as reported by the API,
// e.g. "CHARGING" or "AIR_CONDITIONING".
type Capability struct {
	objects.GenericObject

	// Status carries the raw capability status string from the API.
	Status *attributes.StringAttribute
}

// NewCapability creates a capability entry owned by parent.
func NewCapability(id string, parent objects.Object) *Capability {
	c := &Capability{GenericObject: objects.NewGenericObject(id, parent)}
	c.Status = attributes.New[string]("status", c, attributes.TagConnector)
	return c
}

// Capabilities is the registry of detected features for one vehicle. It
// determines which vehicle kind the connector instantiates.
type Capabilities struct {
	objects.GenericObject

	caps map[string]*Capability
}

// NewCapabilities creates an empty capability registry owned by parent.
func NewCapabilities(parent objects.Object) *Capabilities {
	return &Capabilities{
		GenericObject: objects.NewGenericObject("capabilities", parent),
		caps:          make(map[string]*Capability),
	}
}

// Add registers a capability by id, returning the existing entry when the
// id was already known.
func (c *Capabilities) Add(id string) *Capability {
	if existing, ok := c.caps[id]; ok {
		return existing
	}
	entry := NewCapability(id, c)
	c.caps[id] = entry
	return entry
}

// Has reports whether the capability id is registered.
func (c *Capabilities) Has(id string) bool {
	_, ok := c.caps[id]
	return ok
}

// Get returns the capability with the given id, or nil.
func (c *Capabilities) Get(id string) *Capability {
	return c.caps[id]
}

// IDs returns the registered capability ids in sorted order.
func (c *Capabilities) IDs() []string {
	ids := make([]string, 0, len(c.caps))
	for id := range c.caps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
