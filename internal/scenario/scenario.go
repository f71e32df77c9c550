// Package scenario provides scripted world setups that seed the grid and
// optionally inject per-tick effects through the world's tick hooks. All
// mutation goes through the Cell and Grid contracts between ticks.
package scenario

import (
	"sort"

	"gritgrid/internal/world"
)

// Scenario seeds a world before the first tick and may script per-tick
// effects.
type Scenario interface {
	Name() string
	Setup(w *world.World)
	Tick(w *world.World, tick uint64)
}

// Factory constructs a Scenario using an optional configuration map.
type Factory func(cfg map[string]string) Scenario

var scenarios = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenarios[name] = f
}

// Get resolves a registered factory by name.
func Get(name string) (Factory, bool) {
	f, ok := scenarios[name]
	return f, ok
}

// Names lists the registered scenario names in sorted order.
func Names() []string {
	out := make([]string, 0, len(scenarios))
	for name := range scenarios {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Install seeds the world and wires the scenario's Tick as the before-tick
// hook.
func Install(s Scenario, w *world.World) {
	s.Setup(w)
	w.SetTickHooks(func(w *world.World, tick uint64) { s.Tick(w, tick) }, nil)
}
