package scenario

import (
	"strconv"

	"github.com/aquilax/go-perlin"

	"gritgrid/internal/material"
	"gritgrid/internal/world"
)

const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Sandbox seeds a perlin-noise terrain of dirt capped with sand, carves a
// pond, and drops an owned wood block to exercise rigid structures.
type Sandbox struct {
	seed       int64
	noiseScale float64
	relief     float64
}

// NewSandbox returns a sandbox scenario with default terrain shaping.
func NewSandbox() *Sandbox {
	return &Sandbox{seed: 1337, noiseScale: 0.04, relief: 0.35}
}

// Name returns the scenario identifier.
func (s *Sandbox) Name() string { return "sandbox" }

// Setup rasterizes the heightfield and places the pond and the wood block.
func (s *Sandbox) Setup(w *world.World) {
	g := w.Grid()
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, s.seed)

	base := float64(g.H) * 0.65
	minSurface := g.H
	for x := 0; x < g.W; x++ {
		n := noise.Noise1D(float64(x) * s.noiseScale)
		surface := int(base + n*s.relief*float64(g.H))
		if surface < 1 {
			surface = 1
		}
		if surface >= g.H {
			surface = g.H - 1
		}
		if surface < minSurface {
			minSurface = surface
		}
		for y := surface; y < g.H; y++ {
			c := g.At(x, y)
			c.Clear()
			if y-surface < 2 {
				c.AddMaterial(material.Sand, 1)
			} else {
				c.AddMaterial(material.Dirt, 1)
			}
		}
	}

	s.carvePond(w, minSurface)
	s.placeWoodBlock(w, minSurface)
}

// Tick is a no-op; the sandbox only seeds initial state.
func (s *Sandbox) Tick(w *world.World, tick uint64) {}

func (s *Sandbox) carvePond(w *world.World, surface int) {
	g := w.Grid()
	cx := g.W / 4
	halfW := g.W / 10
	depth := g.H / 12
	if halfW < 2 {
		halfW = 2
	}
	if depth < 2 {
		depth = 2
	}
	for x := cx - halfW; x <= cx+halfW; x++ {
		if x < 0 || x >= g.W {
			continue
		}
		for y := surface; y < surface+depth && y < g.H; y++ {
			c := g.At(x, y)
			c.Clear()
			c.AddMaterial(material.Water, 1)
		}
	}
}

func (s *Sandbox) placeWoodBlock(w *world.World, surface int) {
	g := w.Grid()
	x0 := g.W * 3 / 4
	y0 := surface - g.H/4
	if y0 < 0 {
		y0 = 0
	}
	const ownerID = 1
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 3; dx++ {
			x, y := x0+dx, y0+dy
			if !g.InBounds(x, y) {
				continue
			}
			c := g.At(x, y)
			c.Clear()
			c.AddMaterial(material.Wood, 1)
			g.SetOwner(x, y, ownerID)
		}
	}
}

func init() {
	Register("sandbox", func(cfg map[string]string) Scenario {
		s := NewSandbox()
		if v, ok := cfg["seed"]; ok {
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				s.seed = parsed
			}
		}
		if v, ok := cfg["noise_scale"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				s.noiseScale = parsed
			}
		}
		if v, ok := cfg["relief"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				s.relief = parsed
			}
		}
		return s
	})
}
