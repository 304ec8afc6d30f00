// Package skoda implements the Škoda brand layer of the carconnectivity
// framework: vehicle entities with their nested specification, service
// partner, capability, climatization and charging sub-entities, populated
// from the MySkoda garage API.
//
// Every entity supports two construction modes. Fresh construction
// allocates all attributes defaulted and parented to the new entity.
// Migration construction adopts an existing instance from an earlier data
// epoch ("origin"): attributes present on the origin are re-parented onto
// the new instance, missing ones are defaulted individually, and nested
// entities recurse through their own migration constructors. The registry
// uses migration to swap a vehicle for a more specific kind once its
// capabilities are known (e.g. generic to electric), without losing any
// previously observed value. Migration never fails; the origin must be
// discarded afterwards.
package skoda

import (
	"github.com/carconnectivity/connector-skoda/pkg/attributes"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

// Brand is the manufacturer string force-set on every Škoda vehicle,
// whatever the origin held.
const Brand = "Škoda"

// Vehicle represents a Škoda vehicle of any drive-train kind. The kind tag
// on the embedded core replaces subclassing; Charging is attached only on
// charging-capable kinds and is non-nil exactly then.
type Vehicle struct {
	vehicle.Generic

	Capabilities *vehicle.Capabilities

	InMotion            *attributes.BooleanAttribute
	WorkshopModeEnabled *attributes.BooleanAttribute

	Title          *attributes.StringAttribute
	SystemModelID  *attributes.StringAttribute
	Priority       *attributes.StringAttribute
	DevicePlatform *attributes.StringAttribute
	State          *attributes.StringAttribute

	// RawAPI keeps the last raw garage API payload for debugging; Extras
	// aggregates fields the schema does not model.
	RawAPI *attributes.StringAttribute
	Extras *attributes.StringAttribute

	Renders             *attributes.StringAttribute
	CompositeRenders    *attributes.StringAttribute
	CompositeRenderURLs *attributes.StringAttribute

	Specification  *Specification
	ServicePartner *ServicePartner
	Climatization  *vehicle.Climatization

	// Charging is non-nil iff Kind().ChargingCapable().
	Charging *vehicle.Charging
}

// NewVehicle builds a fresh generic Škoda vehicle.
func NewVehicle(vin string, parent objects.Object, connector vehicle.Connector) *Vehicle {
	return newVehicle(vin, parent, connector, vehicle.KindGeneric)
}

// NewElectricVehicle builds a fresh electric Škoda vehicle with a defaulted
// charging sub-entity attached.
func NewElectricVehicle(vin string, parent objects.Object, connector vehicle.Connector) *Vehicle {
	return newVehicle(vin, parent, connector, vehicle.KindElectric)
}

// NewCombustionVehicle builds a fresh combustion Škoda vehicle.
func NewCombustionVehicle(vin string, parent objects.Object, connector vehicle.Connector) *Vehicle {
	return newVehicle(vin, parent, connector, vehicle.KindCombustion)
}

// NewHybridVehicle builds a fresh hybrid Škoda vehicle.
func NewHybridVehicle(vin string, parent objects.Object, connector vehicle.Connector) *Vehicle {
	return newVehicle(vin, parent, connector, vehicle.KindHybrid)
}

func newVehicle(vin string, parent objects.Object, connector vehicle.Connector, kind vehicle.Kind) *Vehicle {
	v := &Vehicle{}
	v.Generic = vehicle.NewGeneric(v, vin, parent, connector, kind)

	v.Capabilities = vehicle.NewCapabilities(v)

	v.InMotion = attributes.New[bool]("in_motion", v, attributes.TagConnector)
	v.WorkshopModeEnabled = attributes.New[bool]("workshop_mode_enabled", v, attributes.TagConnector)

	v.Title = attributes.New[string]("title", v, attributes.TagConnector)
	v.SystemModelID = attributes.New[string]("system_model_id", v, attributes.TagConnector)
	v.Priority = attributes.New[string]("priority", v, attributes.TagConnector)
	v.DevicePlatform = attributes.New[string]("device_platform", v, attributes.TagConnector)
	v.State = attributes.New[string]("skoda_state", v, attributes.TagConnector)

	v.RawAPI = attributes.New[string]("raw_api", v, attributes.TagConnector)
	v.Extras = attributes.New[string]("extras", v, attributes.TagConnector)

	v.Renders = attributes.New[string]("renders", v, attributes.TagConnector)
	v.CompositeRenders = attributes.New[string]("composite_renders", v, attributes.TagConnector)
	v.CompositeRenderURLs = attributes.New[string]("composite_render_urls", v, attributes.TagConnector)

	v.Specification = NewSpecification(v, nil)
	v.ServicePartner = NewServicePartner(v, nil)
	v.Climatization = vehicle.NewClimatization(v, nil)

	if kind.ChargingCapable() {
		v.Charging = vehicle.NewCharging(v, nil)
	}

	v.Manufacturer().SetValue(Brand)
	return v
}

// Migrate builds a vehicle of the requested kind from an origin of any
// kind, preserving every observed attribute value and the tree wiring. The
// origin's attributes are transferred, not duplicated (except for the
// service-partner value copy performed inside NewServicePartner when a
// fresh partner is needed), so the origin must not be used afterwards.
//
// When the target kind is charging-capable but the origin was not, a valid
// defaulted charging sub-entity is attached; the charging field is never
// nil after migrating to electric or hybrid.
func Migrate(origin *Vehicle, kind vehicle.Kind) *Vehicle {
	v := &Vehicle{}
	v.Generic = vehicle.MigrateGeneric(v, &origin.Generic, kind)

	if origin.Capabilities != nil {
		v.Capabilities = origin.Capabilities
		v.Capabilities.SetParent(v)
	} else {
		v.Capabilities = vehicle.NewCapabilities(v)
	}

	v.InMotion = attributes.Adopt(origin.InMotion, "in_motion", v, attributes.TagConnector)
	v.WorkshopModeEnabled = attributes.Adopt(origin.WorkshopModeEnabled, "workshop_mode_enabled", v, attributes.TagConnector)

	v.Title = attributes.Adopt(origin.Title, "title", v, attributes.TagConnector)
	v.SystemModelID = attributes.Adopt(origin.SystemModelID, "system_model_id", v, attributes.TagConnector)
	v.Priority = attributes.Adopt(origin.Priority, "priority", v, attributes.TagConnector)
	v.DevicePlatform = attributes.Adopt(origin.DevicePlatform, "device_platform", v, attributes.TagConnector)
	v.State = attributes.Adopt(origin.State, "skoda_state", v, attributes.TagConnector)

	v.RawAPI = attributes.Adopt(origin.RawAPI, "raw_api", v, attributes.TagConnector)
	v.Extras = attributes.Adopt(origin.Extras, "extras", v, attributes.TagConnector)

	v.Renders = attributes.Adopt(origin.Renders, "renders", v, attributes.TagConnector)
	v.CompositeRenders = attributes.Adopt(origin.CompositeRenders, "composite_renders", v, attributes.TagConnector)
	v.CompositeRenderURLs = attributes.Adopt(origin.CompositeRenderURLs, "composite_render_urls", v, attributes.TagConnector)

	// Nested entities migrate through their own constructors.
	v.Specification = NewSpecification(v, origin.Specification)
	v.Climatization = vehicle.NewClimatization(v, origin.Climatization)

	// The service partner object is adopted wholesale here; the value-copy
	// path inside NewServicePartner applies when the API layer rebuilds a
	// partner from a retained origin.
	if origin.ServicePartner != nil {
		v.ServicePartner = origin.ServicePartner
		v.ServicePartner.SetParent(v)
	} else {
		v.ServicePartner = NewServicePartner(v, nil)
	}

	if kind.ChargingCapable() {
		// origin.Charging is nil when the origin was a different, non
		// charging-capable kind; NewCharging then defaults every field.
		v.Charging = vehicle.NewCharging(v, origin.Charging)
	}

	v.Manufacturer().SetValue(Brand)
	return v
}
