package skoda

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/carconnectivity/connector-skoda/internal/pkg/metrics"
	fsmutil "github.com/carconnectivity/connector-skoda/internal/pkg/util/fsm"
	"github.com/carconnectivity/connector-skoda/pkg/garage"
	"github.com/carconnectivity/connector-skoda/pkg/log"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

// Capability ids relevant for kind detection.
const (
	CapabilityCharging   = "CHARGING"
	CapabilityFuelStatus = "FUEL_STATUS"
)

const (
	// EventDetectElectric promotes a generic vehicle once charging
	// capability is confirmed.
	EventDetectElectric = "detect_electric"
	// EventDetectCombustion promotes a generic vehicle once a fuel-burning
	// engine is confirmed.
	EventDetectCombustion = "detect_combustion"
	// EventDetectHybrid promotes when both charging and fuel are present.
	EventDetectHybrid = "detect_hybrid"
)

// newPromotionFSM builds the state machine governing which kind changes the
// registry performs. States are vehicle kinds. A kind never regresses: once
// electric or combustion, only the hybrid promotion remains, and hybrid is
// terminal.
func newPromotionFSM(v *Vehicle) *fsm.FSM {
	events := fsm.Events{
		{Name: EventDetectElectric, Src: []string{string(vehicle.KindGeneric)}, Dst: string(vehicle.KindElectric)},
		{Name: EventDetectCombustion, Src: []string{string(vehicle.KindGeneric)}, Dst: string(vehicle.KindCombustion)},
		{Name: EventDetectHybrid, Src: []string{
			string(vehicle.KindGeneric),
			string(vehicle.KindElectric),
			string(vehicle.KindCombustion),
		}, Dst: string(vehicle.KindHybrid)},
	}

	callbacks := fsm.Callbacks{
		// Guards: a promotion without the backing capability is cancelled.
		"before_" + EventDetectElectric: fsmutil.WrapEvent(func(ctx context.Context, e *fsm.Event) error {
			if !v.Capabilities.Has(CapabilityCharging) {
				e.Cancel(fsm.NoTransitionError{})
			}
			return nil
		}),
		"before_" + EventDetectHybrid: fsmutil.WrapEvent(func(ctx context.Context, e *fsm.Event) error {
			if !v.Capabilities.Has(CapabilityCharging) || !v.Capabilities.Has(CapabilityFuelStatus) {
				e.Cancel(fsm.NoTransitionError{})
			}
			return nil
		}),
	}

	return fsm.NewFSM(string(v.Kind()), events, callbacks)
}

// isRealFSMError filters out the benign outcomes of an Event call: a guard
// cancelling the transition or the current state not accepting the event.
func isRealFSMError(err error) bool {
	if err == nil {
		return false
	}

	var noTransition fsm.NoTransitionError
	var canceled fsm.CanceledError
	var invalidEvent fsm.InvalidEventError

	if errors.As(err, &noTransition) || errors.As(err, &canceled) || errors.As(err, &invalidEvent) {
		return false
	}

	return true
}

func promotionEvent(kind vehicle.Kind) (string, bool) {
	switch kind {
	case vehicle.KindElectric:
		return EventDetectElectric, true
	case vehicle.KindCombustion:
		return EventDetectCombustion, true
	case vehicle.KindHybrid:
		return EventDetectHybrid, true
	default:
		return "", false
	}
}

// Promote migrates v to the given kind and swaps it into the garage,
// returning the live vehicle for the VIN. Disallowed or redundant
// transitions (wrong current kind, missing capability, same kind) are
// no-ops returning the original vehicle; only genuinely invalid requests
// (unknown target kind) are errors.
func Promote(ctx context.Context, g *garage.Garage, v *Vehicle, kind vehicle.Kind, logger log.Logger) (*Vehicle, error) {
	if logger == nil {
		logger = log.Std()
	}
	if kind == v.Kind() {
		return v, nil
	}

	event, ok := promotionEvent(kind)
	if !ok {
		return nil, fmt.Errorf("no promotion path to kind %q", kind)
	}

	machine := newPromotionFSM(v)
	if err := machine.Event(ctx, event); err != nil {
		if !isRealFSMError(err) {
			logger.Debug("vehicle promotion skipped",
				"vin", v.ID(), "from", string(v.Kind()), "to", string(kind), "reason", err.Error())
			return v, nil
		}
		return nil, fmt.Errorf("promotion of %s to %s: %w", v.ID(), kind, err)
	}

	migrated := Migrate(v, kind)
	g.Replace(migrated)
	metrics.VehicleMigrationsTotal.WithLabelValues(string(v.Kind()), string(kind)).Inc()
	logger.Info("vehicle promoted", "vin", migrated.ID(), "from", string(v.Kind()), "to", string(kind))
	return migrated, nil
}
