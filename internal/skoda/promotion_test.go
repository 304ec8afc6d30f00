package skoda

import (
	"context"
	"testing"

	"github.com/carconnectivity/connector-skoda/pkg/garage"
	"github.com/carconnectivity/connector-skoda/pkg/log"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

func registeredVehicle(t *testing.T, g *garage.Garage, caps ...string) *Vehicle {
	t.Helper()
	v := NewVehicle(testVIN, g, nil)
	for _, id := range caps {
		v.Capabilities.Add(id)
	}
	if err := g.Add(v); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return v
}

func TestPromoteGenericToElectric(t *testing.T) {
	g := garage.New()
	v := registeredVehicle(t, g, CapabilityCharging)

	promoted, err := Promote(context.Background(), g, v, vehicle.KindElectric, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if promoted == v {
		t.Fatal("promotion returned the origin instead of a migrated vehicle")
	}
	if promoted.Kind() != vehicle.KindElectric {
		t.Errorf("kind = %s", promoted.Kind())
	}
	if promoted.Charging == nil {
		t.Error("promoted electric vehicle has nil charging")
	}

	live, _ := g.Get(testVIN)
	if live != garage.Vehicle(promoted) {
		t.Error("garage still holds the origin after promotion")
	}
}

func TestPromoteWithoutCapabilityIsNoop(t *testing.T) {
	g := garage.New()
	v := registeredVehicle(t, g) // no CHARGING capability

	promoted, err := Promote(context.Background(), g, v, vehicle.KindElectric, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if promoted != v {
		t.Error("guard did not block the promotion")
	}
	if promoted.Kind() != vehicle.KindGeneric {
		t.Errorf("kind = %s, want generic", promoted.Kind())
	}
}

func TestPromoteElectricToCombustionRejected(t *testing.T) {
	g := garage.New()
	v := registeredVehicle(t, g, CapabilityCharging)

	electric, err := Promote(context.Background(), g, v, vehicle.KindElectric, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote to electric: %v", err)
	}

	same, err := Promote(context.Background(), g, electric, vehicle.KindCombustion, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote to combustion: %v", err)
	}
	if same != electric {
		t.Error("kind regressed from electric to combustion")
	}
}

func TestPromoteToHybridNeedsBothCapabilities(t *testing.T) {
	g := garage.New()
	v := registeredVehicle(t, g, CapabilityCharging)

	same, err := Promote(context.Background(), g, v, vehicle.KindHybrid, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if same != v {
		t.Error("hybrid promotion succeeded without fuel status capability")
	}

	v.Capabilities.Add(CapabilityFuelStatus)
	hybrid, err := Promote(context.Background(), g, v, vehicle.KindHybrid, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if hybrid.Kind() != vehicle.KindHybrid {
		t.Errorf("kind = %s", hybrid.Kind())
	}
	if hybrid.Charging == nil {
		t.Error("hybrid has nil charging")
	}
}

func TestPromoteElectricToHybridKeepsChargingData(t *testing.T) {
	g := garage.New()
	v := registeredVehicle(t, g, CapabilityCharging, CapabilityFuelStatus)

	electric, err := Promote(context.Background(), g, v, vehicle.KindElectric, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote to electric: %v", err)
	}
	electric.Charging.Level.SetValue(63)

	hybrid, err := Promote(context.Background(), g, electric, vehicle.KindHybrid, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote to hybrid: %v", err)
	}
	if got := hybrid.Charging.Level.Get(); got != 63 {
		t.Errorf("charging level = %v after hybrid promotion", got)
	}
}

func TestPromoteSameKindIsNoop(t *testing.T) {
	g := garage.New()
	v := registeredVehicle(t, g)

	same, err := Promote(context.Background(), g, v, vehicle.KindGeneric, log.NewNopLogger())
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if same != v {
		t.Error("same-kind promotion rebuilt the vehicle")
	}
}

func TestPromoteUnknownKindErrors(t *testing.T) {
	g := garage.New()
	v := registeredVehicle(t, g)

	if _, err := Promote(context.Background(), g, v, vehicle.Kind("amphibious"), log.NewNopLogger()); err == nil {
		t.Error("expected error for unknown target kind")
	}
}
