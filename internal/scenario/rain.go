package scenario

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/material"
	"gritgrid/internal/world"
)

// Rain drops water into random top-row columns every tick.
type Rain struct {
	dropChance float64
	dropFill   float64
	dropSpeed  float64
}

// NewRain returns a rain scenario with default drop parameters.
func NewRain() *Rain {
	return &Rain{dropChance: 0.15, dropFill: 0.6, dropSpeed: 3}
}

// Name returns the scenario identifier.
func (s *Rain) Name() string { return "rain" }

// Setup raises a wall floor so the rain pools.
func (s *Rain) Setup(w *world.World) {
	g := w.Grid()
	for x := 0; x < g.W; x++ {
		floor := g.At(x, g.H-1)
		floor.Clear()
		floor.AddMaterial(material.Wall, 1)
	}
}

// Tick seeds new droplets along the top row.
func (s *Rain) Tick(w *world.World, tick uint64) {
	g := w.Grid()
	rng := w.RNG()
	for x := 0; x < g.W; x++ {
		if rng.Float64() >= s.dropChance {
			continue
		}
		c := g.At(x, 0)
		if !c.Material.IsEmpty() {
			continue
		}
		if c.AddMaterial(material.Water, s.dropFill) > 0 {
			c.Velocity = mgl64.Vec2{0, s.dropSpeed}
		}
	}
}

func init() {
	Register("rain", func(cfg map[string]string) Scenario {
		s := NewRain()
		if v, ok := cfg["drop_chance"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				s.dropChance = parsed
			}
		}
		if v, ok := cfg["drop_fill"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
				s.dropFill = parsed
			}
		}
		if v, ok := cfg["drop_speed"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				s.dropSpeed = parsed
			}
		}
		return s
	})
}
