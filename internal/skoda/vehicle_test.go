package skoda

import (
	"testing"
	"time"

	"github.com/carconnectivity/connector-skoda/pkg/garage"
	"github.com/carconnectivity/connector-skoda/pkg/objects"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

const testVIN = "TMBJJ7NX5MY000001"

func TestNewVehicleDefaults(t *testing.T) {
	g := garage.New()
	v := NewVehicle(testVIN, g, nil)

	if v.Kind() != vehicle.KindGeneric {
		t.Errorf("kind = %s, want generic", v.Kind())
	}
	if v.Parent() != objects.Object(g) {
		t.Error("vehicle not parented to garage")
	}

	flat := map[string]interface {
		Parent() objects.Object
		IsSet() bool
	}{
		"in_motion":             v.InMotion,
		"workshop_mode_enabled": v.WorkshopModeEnabled,
		"title":                 v.Title,
		"system_model_id":       v.SystemModelID,
		"priority":              v.Priority,
		"device_platform":       v.DevicePlatform,
		"skoda_state":           v.State,
		"raw_api":               v.RawAPI,
		"extras":                v.Extras,
		"renders":               v.Renders,
		"composite_renders":     v.CompositeRenders,
		"composite_render_urls": v.CompositeRenderURLs,
	}
	for name, attr := range flat {
		if attr == nil {
			t.Fatalf("attribute %s is nil on fresh vehicle", name)
		}
		if attr.Parent() != objects.Object(v) {
			t.Errorf("attribute %s not parented to vehicle", name)
		}
		if attr.IsSet() {
			t.Errorf("attribute %s has a value on fresh vehicle", name)
		}
	}

	if v.Capabilities == nil || v.Capabilities.Parent() != objects.Object(v) {
		t.Error("capabilities missing or mis-parented")
	}
	if v.Specification == nil || v.Specification.Parent() != objects.Object(v) {
		t.Error("specification missing or mis-parented")
	}
	if v.ServicePartner == nil || v.ServicePartner.Parent() != objects.Object(v) {
		t.Error("service partner missing or mis-parented")
	}
	if v.Climatization == nil || v.Climatization.Parent() != objects.Object(v) {
		t.Error("climatization missing or mis-parented")
	}
	if v.Charging != nil {
		t.Error("generic vehicle carries a charging entity")
	}

	if got := v.Manufacturer().Get(); got != Brand {
		t.Errorf("manufacturer = %q, want %q", got, Brand)
	}
}

func TestNewElectricVehicleHasCharging(t *testing.T) {
	g := garage.New()
	v := NewElectricVehicle(testVIN, g, nil)

	if v.Kind() != vehicle.KindElectric {
		t.Errorf("kind = %s", v.Kind())
	}
	if v.Charging == nil {
		t.Fatal("electric vehicle without charging entity")
	}
	if v.Charging.Parent() != objects.Object(v) {
		t.Error("charging not parented to vehicle")
	}
}

func TestMigrateRoundTrip(t *testing.T) {
	g := garage.New()
	origin := NewVehicle(testVIN, g, nil)
	origin.Title.SetValue("Škoda Octavia Combi")
	origin.State.SetValue("ACTIVATED")
	origin.WorkshopModeEnabled.SetValue(true)
	origin.InMotion.SetValue(false)
	origin.Specification.ModelYear.SetValue("2023")
	origin.Specification.Engine.PowerInKW.SetValue("110")
	origin.Capabilities.Add(CapabilityCharging)

	titleAttr := origin.Title
	capsObj := origin.Capabilities
	partnerObj := origin.ServicePartner

	migrated := Migrate(origin, vehicle.KindElectric)

	if migrated.Kind() != vehicle.KindElectric {
		t.Errorf("kind = %s, want electric", migrated.Kind())
	}

	// Re-parenting, not duplication.
	if migrated.Title != titleAttr {
		t.Error("title attribute duplicated instead of transferred")
	}
	if migrated.Title.Parent() != objects.Object(migrated) {
		t.Error("title still parented to origin")
	}
	if migrated.Capabilities != capsObj {
		t.Error("capabilities duplicated instead of transferred")
	}
	if migrated.Capabilities.Parent() != objects.Object(migrated) {
		t.Error("capabilities still parented to origin")
	}
	if migrated.ServicePartner != partnerObj {
		t.Error("service partner object not adopted during vehicle migration")
	}
	if migrated.ServicePartner.Parent() != objects.Object(migrated) {
		t.Error("service partner still parented to origin")
	}

	// Values survive.
	if got := migrated.Title.Get(); got != "Škoda Octavia Combi" {
		t.Errorf("title = %q", got)
	}
	if got := migrated.State.Get(); got != "ACTIVATED" {
		t.Errorf("state = %q", got)
	}
	if got := migrated.WorkshopModeEnabled.Get(); got != true {
		t.Error("workshop mode lost")
	}
	if got := migrated.Specification.ModelYear.Get(); got != "2023" {
		t.Errorf("model year = %q", got)
	}
	if got := migrated.Specification.Engine.PowerInKW.Get(); got != "110" {
		t.Errorf("engine power = %q", got)
	}
	if !migrated.Capabilities.Has(CapabilityCharging) {
		t.Error("capability lost during migration")
	}
}

func TestMigratePartialOriginTolerated(t *testing.T) {
	g := garage.New()
	origin := NewVehicle(testVIN, g, nil)

	// Simulate an origin from an older epoch lacking several fields.
	origin.Title = nil
	origin.WorkshopModeEnabled = nil
	origin.CompositeRenderURLs = nil
	origin.Specification = nil
	origin.ServicePartner = nil
	origin.Climatization = nil
	origin.Capabilities = nil

	migrated := Migrate(origin, vehicle.KindCombustion)

	if migrated.Title == nil || migrated.Title.IsSet() {
		t.Error("missing title not defaulted")
	}
	if migrated.WorkshopModeEnabled == nil || migrated.WorkshopModeEnabled.IsSet() {
		t.Error("missing workshop mode not defaulted")
	}
	if migrated.CompositeRenderURLs == nil {
		t.Error("missing composite render urls not defaulted")
	}
	if migrated.Specification == nil || migrated.Specification.Engine == nil {
		t.Error("missing specification tree not defaulted")
	}
	if migrated.ServicePartner == nil || migrated.ServicePartner.PartnerID == nil {
		t.Error("missing service partner not defaulted")
	}
	if migrated.Climatization == nil {
		t.Error("missing climatization not defaulted")
	}
	if migrated.Capabilities == nil {
		t.Error("missing capabilities not defaulted")
	}
}

func TestMigrateSubtypeSwapDefaultsCharging(t *testing.T) {
	g := garage.New()
	origin := NewVehicle(testVIN, g, nil)
	if origin.Charging != nil {
		t.Fatal("precondition: generic origin must not carry charging")
	}

	migrated := Migrate(origin, vehicle.KindElectric)

	if migrated.Charging == nil {
		t.Fatal("electric vehicle migrated from generic origin has nil charging")
	}
	if migrated.Charging.State == nil || migrated.Charging.State.IsSet() {
		t.Error("defaulted charging state wrong")
	}
	if migrated.Charging.Parent() != objects.Object(migrated) {
		t.Error("charging not parented to migrated vehicle")
	}
}

func TestMigratePreservesChargingAcrossKinds(t *testing.T) {
	g := garage.New()
	origin := NewElectricVehicle(testVIN, g, nil)
	origin.Charging.Level.SetValue(42)
	stateAttr := origin.Charging.State

	migrated := Migrate(origin, vehicle.KindHybrid)

	if migrated.Charging == nil {
		t.Fatal("hybrid lost charging entity")
	}
	if migrated.Charging.State != stateAttr {
		t.Error("charging attributes duplicated instead of transferred")
	}
	if got := migrated.Charging.Level.Get(); got != 42 {
		t.Errorf("charging level = %v", got)
	}
}

func TestMigrateDropsChargingForCombustion(t *testing.T) {
	g := garage.New()
	origin := NewElectricVehicle(testVIN, g, nil)

	migrated := Migrate(origin, vehicle.KindCombustion)

	if migrated.Charging != nil {
		t.Error("combustion vehicle carries a charging entity")
	}
}

func TestBrandInvariant(t *testing.T) {
	g := garage.New()

	fresh := NewCombustionVehicle(testVIN, g, nil)
	if got := fresh.Manufacturer().Get(); got != Brand {
		t.Errorf("fresh manufacturer = %q", got)
	}

	origin := NewVehicle(testVIN, g, nil)
	origin.Manufacturer().SetValue("Volkswagen")

	migrated := Migrate(origin, vehicle.KindElectric)
	if got := migrated.Manufacturer().Get(); got != Brand {
		t.Errorf("migrated manufacturer = %q, want forced %q", got, Brand)
	}
}

func TestMigratePreservesDates(t *testing.T) {
	g := garage.New()
	origin := NewVehicle(testVIN, g, nil)
	made := time.Date(2023, 5, 12, 0, 0, 0, 0, time.UTC)
	origin.Specification.ManufacturingDate.SetValue(made)

	migrated := Migrate(origin, vehicle.KindHybrid)

	if got, ok := migrated.Specification.ManufacturingDate.Value(); !ok || !got.Equal(made) {
		t.Errorf("manufacturing date = %v, %v", got, ok)
	}
}
