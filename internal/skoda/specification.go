package skoda

import (
	"time"

	"github.com/carconnectivity/connector-skoda/pkg/attributes"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

// Engine holds the engine details of a Škoda vehicle. All values arrive as
// strings from the garage API (e.g. type "TSI", powerInKW "110").
type Engine struct {
	objects.GenericObject

	Type             *attributes.StringAttribute
	PowerInKW        *attributes.StringAttribute
	CapacityInLiters *attributes.StringAttribute
}

// NewEngine builds an engine entity, migrating from origin when given.
func NewEngine(parent objects.Object, origin *Engine) *Engine {
	e := &Engine{GenericObject: objects.NewGenericObject("engine", parent)}
	if origin != nil {
		e.Type = attributes.Adopt(origin.Type, "type", e, attributes.TagConnector)
		e.PowerInKW = attributes.Adopt(origin.PowerInKW, "powerInKW", e, attributes.TagConnector)
		e.CapacityInLiters = attributes.Adopt(origin.CapacityInLiters, "capacityInLiters", e, attributes.TagConnector)
		return e
	}
	e.Type = attributes.New[string]("type", e, attributes.TagConnector)
	e.PowerInKW = attributes.New[string]("powerInKW", e, attributes.TagConnector)
	e.CapacityInLiters = attributes.New[string]("capacityInLiters", e, attributes.TagConnector)
	return e
}

// ExteriorDimensions holds the exterior dimensions in millimeters.
type ExteriorDimensions struct {
	objects.GenericObject

	LengthInMm *attributes.StringAttribute
	WidthInMm  *attributes.StringAttribute
	HeightInMm *attributes.StringAttribute
}

// NewExteriorDimensions builds a dimensions entity, migrating from origin
// when given.
func NewExteriorDimensions(parent objects.Object, origin *ExteriorDimensions) *ExteriorDimensions {
	d := &ExteriorDimensions{GenericObject: objects.NewGenericObject("exteriorDimensions", parent)}
	if origin != nil {
		d.LengthInMm = attributes.Adopt(origin.LengthInMm, "lengthInMm", d, attributes.TagConnector)
		d.WidthInMm = attributes.Adopt(origin.WidthInMm, "widthInMm", d, attributes.TagConnector)
		d.HeightInMm = attributes.Adopt(origin.HeightInMm, "heightInMm", d, attributes.TagConnector)
		return d
	}
	d.LengthInMm = attributes.New[string]("lengthInMm", d, attributes.TagConnector)
	d.WidthInMm = attributes.New[string]("widthInMm", d, attributes.TagConnector)
	d.HeightInMm = attributes.New[string]("heightInMm", d, attributes.TagConnector)
	return d
}

// Gearbox holds the gearbox type code (e.g. "A7F", "M6F").
type Gearbox struct {
	objects.GenericObject

	Type *attributes.StringAttribute
}

// NewGearbox builds a gearbox entity, migrating from origin when given.
func NewGearbox(parent objects.Object, origin *Gearbox) *Gearbox {
	g := &Gearbox{GenericObject: objects.NewGenericObject("gearbox", parent)}
	if origin != nil {
		g.Type = attributes.Adopt(origin.Type, "type", g, attributes.TagConnector)
		return g
	}
	g.Type = attributes.New[string]("type", g, attributes.TagConnector)
	return g
}

// Specification is the structured vehicle specification mirroring the garage
// API JSON: flat fields plus nested engine, exterior dimension and gearbox
// entities.
type Specification struct {
	objects.GenericObject

	Title                 *attributes.StringAttribute
	ManufacturingDate     *attributes.DateAttribute
	TrimLevel             *attributes.StringAttribute
	SystemCode            *attributes.StringAttribute
	SystemModelID         *attributes.StringAttribute
	Body                  *attributes.StringAttribute
	ExteriorColour        *attributes.StringAttribute
	ModelYear             *attributes.StringAttribute
	SteeringWheelPosition *attributes.EnumAttribute[vehicle.SteeringPosition]

	ExteriorDimensions *ExteriorDimensions
	Engine             *Engine
	Gearbox            *Gearbox
}

// NewSpecification builds the specification tree. With a non-nil origin the
// flat attributes are re-parented and the nested entities are migrated
// recursively through their own constructors, never shallow-copied. A nested
// entity missing on origin is defaulted on its own; the rest of the tree
// still migrates.
func NewSpecification(parent objects.Object, origin *Specification) *Specification {
	s := &Specification{GenericObject: objects.NewGenericObject("specification", parent)}
	if origin != nil {
		s.Title = attributes.Adopt(origin.Title, "title", s, attributes.TagConnector)
		s.ManufacturingDate = attributes.Adopt(origin.ManufacturingDate, "manufacturing_date", s, attributes.TagConnector)
		s.TrimLevel = attributes.Adopt(origin.TrimLevel, "trim_level", s, attributes.TagConnector)
		s.SystemCode = attributes.Adopt(origin.SystemCode, "system_code", s, attributes.TagConnector)
		s.SystemModelID = attributes.Adopt(origin.SystemModelID, "system_model_id", s, attributes.TagConnector)
		s.Body = attributes.Adopt(origin.Body, "body", s, attributes.TagConnector)
		s.ExteriorColour = attributes.Adopt(origin.ExteriorColour, "exterior_colour", s, attributes.TagConnector)
		s.ModelYear = attributes.Adopt(origin.ModelYear, "model_year", s, attributes.TagConnector)
		s.SteeringWheelPosition = attributes.Adopt(origin.SteeringWheelPosition, "steering_wheel_position", s, attributes.TagConnector)

		s.ExteriorDimensions = NewExteriorDimensions(s, origin.ExteriorDimensions)
		s.Engine = NewEngine(s, origin.Engine)
		s.Gearbox = NewGearbox(s, origin.Gearbox)
		return s
	}

	s.Title = attributes.New[string]("title", s, attributes.TagConnector)
	s.ManufacturingDate = attributes.New[time.Time]("manufacturing_date", s, attributes.TagConnector)
	s.TrimLevel = attributes.New[string]("trim_level", s, attributes.TagConnector)
	s.SystemCode = attributes.New[string]("system_code", s, attributes.TagConnector)
	s.SystemModelID = attributes.New[string]("system_model_id", s, attributes.TagConnector)
	s.Body = attributes.New[string]("body", s, attributes.TagConnector)
	s.ExteriorColour = attributes.New[string]("exterior_colour", s, attributes.TagConnector)
	s.ModelYear = attributes.New[string]("model_year", s, attributes.TagConnector)
	s.SteeringWheelPosition = attributes.New[vehicle.SteeringPosition]("steering_wheel_position", s, attributes.TagConnector)

	s.ExteriorDimensions = NewExteriorDimensions(s, nil)
	s.Engine = NewEngine(s, nil)
	s.Gearbox = NewGearbox(s, nil)
	return s
}
