package vehicle

import (
	"github.com/carconnectivity/connector-skoda/pkg/attributes"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
)

// ClimatizationState is the reported state of the air conditioning.
type ClimatizationState string

const (
	ClimatizationStateOff     ClimatizationState = "OFF"
	ClimatizationStateHeating ClimatizationState = "HEATING"
	ClimatizationStateCooling ClimatizationState = "COOLING"
	ClimatizationStateUnknown ClimatizationState = "UNKNOWN"
)

// Climatization is the air-conditioning sub-entity present on every vehicle.
type Climatization struct {
	objects.GenericObject

	State *attributes.EnumAttribute[ClimatizationState]

	// TargetTemperature is the requested cabin temperature in degrees Celsius.
	TargetTemperature *attributes.LevelAttribute
}

// NewClimatization builds a climatization sub-entity, migrating from origin
// when one is given.
func NewClimatization(parent objects.Object, origin *Climatization) *Climatization {
	c := &Climatization{GenericObject: objects.NewGenericObject("climatization", parent)}
	if origin != nil {
		c.State = attributes.Adopt(origin.State, "state", c, attributes.TagConnector)
		c.TargetTemperature = attributes.Adopt(origin.TargetTemperature, "target_temperature", c, attributes.TagConnector)
		return c
	}
	c.State = attributes.New[ClimatizationState]("state", c, attributes.TagConnector)
	c.TargetTemperature = attributes.New[float64]("target_temperature", c, attributes.TagConnector)
	return c
}
