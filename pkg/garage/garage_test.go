package garage

import (
	"testing"

	"github.com/carconnectivity/connector-skoda/pkg/objects"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

type stubVehicle struct {
	objects.GenericObject
	kind vehicle.Kind
}

func newStub(vin string, parent objects.Object, kind vehicle.Kind) *stubVehicle {
	return &stubVehicle{GenericObject: objects.NewGenericObject(vin, parent), kind: kind}
}

func (s *stubVehicle) Kind() vehicle.Kind { return s.kind }

func TestAddAndGet(t *testing.T) {
	g := New()
	v := newStub("TMBJJ7NX5MY000001", g, vehicle.KindGeneric)

	if err := g.Add(v); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := g.Add(v); err == nil {
		t.Error("duplicate Add succeeded")
	}

	got, ok := g.Get("TMBJJ7NX5MY000001")
	if !ok || got != Vehicle(v) {
		t.Errorf("Get returned %v, %v", got, ok)
	}
	if _, ok := g.Get("unknown"); ok {
		t.Error("Get found an unregistered VIN")
	}
}

func TestReplaceReturnsDiscardedOrigin(t *testing.T) {
	g := New()
	origin := newStub("TMBJJ7NX5MY000001", g, vehicle.KindGeneric)
	if err := g.Add(origin); err != nil {
		t.Fatalf("Add: %v", err)
	}

	migrated := newStub("TMBJJ7NX5MY000001", g, vehicle.KindElectric)
	old := g.Replace(migrated)

	if old != Vehicle(origin) {
		t.Errorf("Replace returned %v, want the discarded origin", old)
	}
	live, _ := g.Get("TMBJJ7NX5MY000001")
	if live != Vehicle(migrated) {
		t.Error("Replace did not install the migrated vehicle")
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d after replace, want 1", g.Len())
	}
}

func TestReplaceUnknownVIN(t *testing.T) {
	g := New()
	v := newStub("TMBJJ7NX5MY000002", g, vehicle.KindGeneric)

	if old := g.Replace(v); old != nil {
		t.Errorf("Replace of unknown VIN returned %v, want nil", old)
	}
	if g.Len() != 1 {
		t.Error("Replace did not register the vehicle")
	}
}

func TestListSortedAndRemove(t *testing.T) {
	g := New()
	for _, vin := range []string{"VINC", "VINA", "VINB"} {
		if err := g.Add(newStub(vin, g, vehicle.KindGeneric)); err != nil {
			t.Fatalf("Add %s: %v", vin, err)
		}
	}

	list := g.List()
	if len(list) != 3 {
		t.Fatalf("List returned %d vehicles, want 3", len(list))
	}
	for i, want := range []string{"VINA", "VINB", "VINC"} {
		if list[i].ID() != want {
			t.Errorf("List[%d] = %s, want %s", i, list[i].ID(), want)
		}
	}

	g.Remove("VINB")
	if _, ok := g.Get("VINB"); ok {
		t.Error("vehicle still present after Remove")
	}
}
