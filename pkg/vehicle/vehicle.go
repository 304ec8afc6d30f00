// Package vehicle provides the framework-level vehicle core that
// brand-specific connector layers build on: the kind tag, the base
// attributes shared by every vehicle, and the capability registry together
// with the charging and climatization sub-entities.
package vehicle

import (
	"github.com/carconnectivity/connector-skoda/pkg/attributes"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
)

// Kind distinguishes the concrete drive-train variant of a vehicle.
// It replaces subclass dispatch: one vehicle struct carries a Kind tag and
// a conditional charging extension instead of a type hierarchy.
type Kind string

const (
	KindGeneric    Kind = "generic"
	KindElectric   Kind = "electric"
	KindCombustion Kind = "combustion"
	KindHybrid     Kind = "hybrid"
)

// ChargingCapable reports whether vehicles of this kind carry a charging
// sub-entity.
func (k Kind) ChargingCapable() bool {
	return k == KindElectric || k == KindHybrid
}

// SteeringPosition is the side the steering wheel is mounted on.
type SteeringPosition string

const (
	SteeringPositionLeft    SteeringPosition = "LEFT"
	SteeringPositionRight   SteeringPosition = "RIGHT"
	SteeringPositionUnknown SteeringPosition = "UNKNOWN"
)

// Connector identifies the managing connector a vehicle belongs to.
type Connector interface {
	ConnectorID() string
}

// Generic is the type-independent vehicle core. Concrete brand vehicles
// embed it; its attributes are parented to the embedding entity, not to the
// Generic value itself.
type Generic struct {
	objects.GenericObject

	kind      Kind
	connector Connector

	vin          *attributes.StringAttribute
	manufacturer *attributes.StringAttribute
	model        *attributes.StringAttribute
}

// NewGeneric builds a fresh vehicle core. owner is the embedding entity all
// attributes are parented to, parent is the owning registry node.
func NewGeneric(owner objects.Object, vin string, parent objects.Object, connector Connector, kind Kind) Generic {
	g := Generic{
		GenericObject: objects.NewGenericObject(vin, parent),
		kind:          kind,
		connector:     connector,
	}
	g.vin = attributes.New[string]("vin", owner, attributes.TagConnector)
	if vin != "" {
		g.vin.SetValue(vin)
	}
	g.manufacturer = attributes.New[string]("manufacturer", owner, attributes.TagConnector)
	g.model = attributes.New[string]("model", owner, attributes.TagConnector)
	return g
}

// MigrateGeneric builds a vehicle core from a prior-epoch origin, adopting
// the base attributes onto owner. The origin keeps its registry parent and
// managing connector; only the kind may change.
func MigrateGeneric(owner objects.Object, origin *Generic, kind Kind) Generic {
	g := Generic{
		GenericObject: objects.NewGenericObject(origin.ID(), origin.Parent()),
		kind:          kind,
		connector:     origin.connector,
	}
	g.vin = attributes.Adopt(origin.vin, "vin", owner, attributes.TagConnector)
	g.manufacturer = attributes.Adopt(origin.manufacturer, "manufacturer", owner, attributes.TagConnector)
	g.model = attributes.Adopt(origin.model, "model", owner, attributes.TagConnector)
	return g
}

// Kind returns the drive-train variant this vehicle was constructed as.
func (g *Generic) Kind() Kind { return g.kind }

// Connector returns the managing connector, or nil.
func (g *Generic) Connector() Connector { return g.connector }

// VIN returns the vehicle identification number attribute.
func (g *Generic) VIN() *attributes.StringAttribute { return g.vin }

// Manufacturer returns the manufacturer attribute.
func (g *Generic) Manufacturer() *attributes.StringAttribute { return g.manufacturer }

// Model returns the model name attribute.
func (g *Generic) Model() *attributes.StringAttribute { return g.model }
