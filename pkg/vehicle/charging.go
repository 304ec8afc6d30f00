package vehicle

import (
	"github.com/carconnectivity/connector-skoda/pkg/attributes"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
)

// ChargingState is the reported state of the charging process.
type ChargingState string

const (
	ChargingStateOff      ChargingState = "OFF"
	ChargingStateReady    ChargingState = "READY_FOR_CHARGING"
	ChargingStateCharging ChargingState = "CHARGING"
	ChargingStateError    ChargingState = "ERROR"
	ChargingStateUnknown  ChargingState = "UNKNOWN"
)

// Charging is the charging sub-entity attached to electric and hybrid
// vehicles. It is never nil on a charging-capable vehicle.
type Charging struct {
	objects.GenericObject

	State *attributes.EnumAttribute[ChargingState]

	// Level is the battery state of charge in percent.
	Level *attributes.LevelAttribute

	// PowerInKW is the momentary charging power.
	PowerInKW *attributes.LevelAttribute
}

// NewCharging builds a charging sub-entity. A non-nil origin is migrated via
// the origin-copy protocol: every attribute present on origin is re-parented,
// missing ones are defaulted. A nil origin (including the subtype-swap case
// where the origin vehicle had no charging data) yields a fully defaulted,
// valid entity.
func NewCharging(parent objects.Object, origin *Charging) *Charging {
	c := &Charging{GenericObject: objects.NewGenericObject("charging", parent)}
	if origin != nil {
		c.State = attributes.Adopt(origin.State, "state", c, attributes.TagConnector)
		c.Level = attributes.Adopt(origin.Level, "level", c, attributes.TagConnector)
		c.PowerInKW = attributes.Adopt(origin.PowerInKW, "power_in_kw", c, attributes.TagConnector)
		return c
	}
	c.State = attributes.New[ChargingState]("state", c, attributes.TagConnector)
	c.Level = attributes.New[float64]("level", c, attributes.TagConnector)
	c.PowerInKW = attributes.New[float64]("power_in_kw", c, attributes.TagConnector)
	return c
}
