package scenario

import (
	"gritgrid/internal/material"
	"gritgrid/internal/world"
)

// Buoy submerges a single wood cell at the bottom of a water column; the
// density difference floats it to the surface cell by cell.
type Buoy struct{}

// Name returns the scenario identifier.
func (s *Buoy) Name() string { return "buoy" }

// Setup fills the lower half with water and sinks the wood cell.
func (s *Buoy) Setup(w *world.World) {
	g := w.Grid()
	top := g.H / 2
	for y := top; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			c.Clear()
			c.AddMaterial(material.Water, 1)
		}
	}
	wood := g.At(g.W/2, g.H-2)
	wood.Clear()
	wood.AddMaterial(material.Wood, 1)
}

// Tick is a no-op; buoyancy comes from the pressure field alone.
func (s *Buoy) Tick(w *world.World, tick uint64) {}

func init() {
	Register("buoy", func(cfg map[string]string) Scenario {
		return &Buoy{}
	})
}
