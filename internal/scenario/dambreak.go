package scenario

import (
	"strconv"

	"gritgrid/internal/material"
	"gritgrid/internal/world"
)

// DamBreak holds a water column behind a full-height wall and breaches the
// wall's bottom cell at a configured tick.
type DamBreak struct {
	breachTick uint64
	wallX      int
}

// NewDamBreak returns a dam-break scenario with the default breach tick.
func NewDamBreak() *DamBreak {
	return &DamBreak{breachTick: 60}
}

// Name returns the scenario identifier.
func (s *DamBreak) Name() string { return "dambreak" }

// Setup fills the left third with water and raises the dam wall beside it.
func (s *DamBreak) Setup(w *world.World) {
	g := w.Grid()
	s.wallX = g.W / 3
	for y := 0; y < g.H; y++ {
		for x := 0; x < s.wallX; x++ {
			c := g.At(x, y)
			c.Clear()
			c.AddMaterial(material.Water, 1)
		}
		wall := g.At(s.wallX, y)
		wall.Clear()
		wall.AddMaterial(material.Wall, 1)
	}
}

// Tick breaches the dam once the configured tick is reached.
func (s *DamBreak) Tick(w *world.World, tick uint64) {
	if tick != s.breachTick {
		return
	}
	g := w.Grid()
	g.At(s.wallX, g.H-1).Clear()
}

func init() {
	Register("dambreak", func(cfg map[string]string) Scenario {
		s := NewDamBreak()
		if v, ok := cfg["breach_tick"]; ok {
			if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
				s.breachTick = parsed
			}
		}
		return s
	})
}
