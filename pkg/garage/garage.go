// Package garage implements the in-memory vehicle registry. The garage is
// the root of the ownership tree; it holds exactly one live vehicle object
// per VIN and is the swap point for subtype migration: when a more specific
// vehicle is constructed from an origin, Replace installs it and the origin
// is discarded.
package garage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/carconnectivity/connector-skoda/pkg/objects"
	"github.com/carconnectivity/connector-skoda/pkg/vehicle"
)

// Vehicle is the contract the garage requires from registered vehicles.
// The object id doubles as the VIN.
type Vehicle interface {
	objects.Object
	Kind() vehicle.Kind
}

// Garage is the registry of known vehicles keyed by VIN.
//
// The mutex guards only the map. Migration itself is not performed under the
// garage lock; callers must not mutate an origin vehicle concurrently with
// migrating it.
type Garage struct {
	objects.GenericObject

	mu       sync.RWMutex
	vehicles map[string]Vehicle
}

// New creates an empty garage rooting the object tree.
func New() *Garage {
	return &Garage{
		GenericObject: objects.NewGenericObject("garage", nil),
		vehicles:      make(map[string]Vehicle),
	}
}

// Add registers a new vehicle. Registering a VIN twice is an error; use
// Replace to swap in a migrated instance.
func (g *Garage) Add(v Vehicle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vehicles[v.ID()]; ok {
		return fmt.Errorf("vehicle %s already registered", v.ID())
	}
	g.vehicles[v.ID()] = v
	return nil
}

// Get returns the live vehicle for a VIN.
func (g *Garage) Get(vin string) (Vehicle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vehicles[vin]
	return v, ok
}

// Replace installs a (typically migrated) vehicle under its VIN and returns
// the discarded predecessor, or nil when the VIN was unknown. After Replace
// the predecessor must be treated as dead; its attributes have been adopted
// by the replacement.
func (g *Garage) Replace(v Vehicle) Vehicle {
	g.mu.Lock()
	defer g.mu.Unlock()
	old := g.vehicles[v.ID()]
	g.vehicles[v.ID()] = v
	return old
}

// Remove drops a vehicle from the registry.
func (g *Garage) Remove(vin string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.vehicles, vin)
}

// List returns the registered vehicles ordered by VIN.
func (g *Garage) List() []Vehicle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vehicle, 0, len(g.vehicles))
	for _, v := range g.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Len returns the number of registered vehicles.
func (g *Garage) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vehicles)
}
