package vehicle

import (
	"testing"

	"github.com/carconnectivity/connector-skoda/pkg/objects"
)

type testOwner struct {
	objects.GenericObject
}

func newTestOwner(id string) *testOwner {
	return &testOwner{GenericObject: objects.NewGenericObject(id, nil)}
}

func TestKindChargingCapable(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindGeneric, false},
		{KindCombustion, false},
		{KindElectric, true},
		{KindHybrid, true},
	}
	for _, tt := range tests {
		if got := tt.kind.ChargingCapable(); got != tt.want {
			t.Errorf("%s.ChargingCapable() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestNewGenericDefaults(t *testing.T) {
	owner := newTestOwner("TMBJJ7NX5MY000001")
	g := NewGeneric(owner, "TMBJJ7NX5MY000001", nil, nil, KindGeneric)

	if g.Kind() != KindGeneric {
		t.Errorf("kind = %s", g.Kind())
	}
	if got := g.VIN().Get(); got != "TMBJJ7NX5MY000001" {
		t.Errorf("vin = %q", got)
	}
	if g.Manufacturer().IsSet() {
		t.Error("manufacturer set on fresh core")
	}
	for _, attr := range []interface{ Parent() objects.Object }{g.VIN(), g.Manufacturer(), g.Model()} {
		if attr.Parent() != objects.Object(owner) {
			t.Error("core attribute not parented to owner")
		}
	}
}

func TestMigrateGenericAdoptsAttributes(t *testing.T) {
	oldOwner := newTestOwner("TMBJJ7NX5MY000001")
	origin := NewGeneric(oldOwner, "TMBJJ7NX5MY000001", nil, nil, KindGeneric)
	origin.Manufacturer().SetValue("Škoda")
	origin.Model().SetValue("Enyaq")

	newOwner := newTestOwner("TMBJJ7NX5MY000001")
	migrated := MigrateGeneric(newOwner, &origin, KindElectric)

	if migrated.Kind() != KindElectric {
		t.Errorf("kind = %s, want electric", migrated.Kind())
	}
	if migrated.VIN() != origin.VIN() {
		t.Error("vin attribute duplicated instead of transferred")
	}
	if migrated.VIN().Parent() != objects.Object(newOwner) {
		t.Error("vin not re-parented onto new owner")
	}
	if got := migrated.Model().Get(); got != "Enyaq" {
		t.Errorf("model = %q after migration", got)
	}
}

func TestNewChargingFromOrigin(t *testing.T) {
	oldOwner := newTestOwner("old")
	origin := NewCharging(oldOwner, nil)
	origin.State.SetValue(ChargingStateCharging)
	origin.Level.SetValue(74)

	newOwner := newTestOwner("new")
	migrated := NewCharging(newOwner, origin)

	if migrated.State != origin.State {
		t.Error("state attribute duplicated instead of transferred")
	}
	if got := migrated.Level.Get(); got != 74 {
		t.Errorf("level = %v after migration", got)
	}
	if migrated.State.Parent() != objects.Object(migrated) {
		t.Error("state not parented to migrated charging entity")
	}
}

func TestNewChargingNilOrigin(t *testing.T) {
	owner := newTestOwner("owner")
	c := NewCharging(owner, nil)

	if c.State == nil || c.Level == nil || c.PowerInKW == nil {
		t.Fatal("defaulted charging entity has nil attributes")
	}
	if c.State.IsSet() {
		t.Error("fresh charging state reports a value")
	}
	if c.Parent() != objects.Object(owner) {
		t.Error("charging entity not parented to owner")
	}
}

func TestCapabilitiesRegistry(t *testing.T) {
	owner := newTestOwner("owner")
	caps := NewCapabilities(owner)

	first := caps.Add("CHARGING")
	again := caps.Add("CHARGING")
	if first != again {
		t.Error("Add allocated a second entry for a known id")
	}
	caps.Add("AIR_CONDITIONING")

	if !caps.Has("CHARGING") || caps.Has("FUEL_STATUS") {
		t.Error("Has gave wrong answer")
	}
	if caps.Get("AIR_CONDITIONING") == nil {
		t.Error("Get returned nil for registered capability")
	}

	ids := caps.IDs()
	if len(ids) != 2 || ids[0] != "AIR_CONDITIONING" || ids[1] != "CHARGING" {
		t.Errorf("IDs = %v, want sorted pair", ids)
	}

	if first.Parent() != objects.Object(caps) {
		t.Error("capability not parented to registry")
	}
}
