package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/material"
)

// AdhesionSample reports the net adhesion pull on one cell plus diagnostics:
// the strongest-attracting neighbor material and the unlike-material contact
// count.
type AdhesionSample struct {
	Force     mgl64.Vec2
	Strongest material.Material
	Contacts  int
}

var adhesionNeighbors = []struct {
	dx, dy int
	weight float64
	dir    mgl64.Vec2
}{
	{1, 0, 1, mgl64.Vec2{1, 0}},
	{-1, 0, 1, mgl64.Vec2{-1, 0}},
	{0, 1, 1, mgl64.Vec2{0, 1}},
	{0, -1, 1, mgl64.Vec2{0, -1}},
	{1, 1, 0.707, mgl64.Vec2{0.707, 0.707}},
	{-1, 1, 0.707, mgl64.Vec2{-0.707, 0.707}},
	{1, -1, 0.707, mgl64.Vec2{0.707, -0.707}},
	{-1, -1, 0.707, mgl64.Vec2{-0.707, -0.707}},
}

// adhesionAt scans all 8 neighbors of (x, y) for unlike, non-air materials.
// Mutual adhesion is the geometric mean of the two coefficients; force
// magnitude scales with both fills and the cardinal/diagonal distance
// weight; direction is the unit vector toward the neighbor.
func adhesionAt(g *Grid, x, y int) AdhesionSample {
	var out AdhesionSample
	c := g.At(x, y)
	if c.Material.IsEmpty() {
		return out
	}
	pa := material.Props(c.Material)
	best := 0.0
	for _, n := range adhesionNeighbors {
		nx, ny := x+n.dx, y+n.dy
		if !g.InBounds(nx, ny) {
			continue
		}
		nc := &g.cells[ny*g.W+nx]
		if nc.Material.IsEmpty() || nc.Material == c.Material {
			continue
		}
		mutual := math.Sqrt(pa.Adhesion * material.Props(nc.Material).Adhesion)
		mag := mutual * c.Fill * nc.Fill * n.weight
		if mag <= epsilon {
			continue
		}
		out.Force = out.Force.Add(n.dir.Mul(mag))
		out.Contacts++
		if mag > best {
			best = mag
			out.Strongest = nc.Material
		}
	}
	return out
}

// cohesionAt is the same-material analogue of adhesionAt: neighbors of the
// cell's own material pull with the material's own adhesion coefficient,
// which keeps droplets and granular piles together.
func cohesionAt(g *Grid, x, y int) mgl64.Vec2 {
	var force mgl64.Vec2
	c := g.At(x, y)
	if c.Material.IsEmpty() {
		return force
	}
	coeff := material.Props(c.Material).Adhesion
	if coeff <= epsilon {
		return force
	}
	for _, n := range adhesionNeighbors {
		nx, ny := x+n.dx, y+n.dy
		if !g.InBounds(nx, ny) {
			continue
		}
		nc := &g.cells[ny*g.W+nx]
		if nc.Material != c.Material {
			continue
		}
		mag := coeff * c.Fill * nc.Fill * n.weight
		if mag <= epsilon {
			continue
		}
		force = force.Add(n.dir.Mul(mag))
	}
	return force
}

// applyAdhesion adds the scaled adhesion and cohesion pulls to every
// non-empty, non-wall cell's pending force.
func applyAdhesion(g *Grid, prm *Params) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := &g.cells[y*g.W+x]
			if c.Material.IsEmpty() || c.Material.IsWall() {
				continue
			}
			sample := adhesionAt(g, x, y)
			force := sample.Force.Mul(prm.AdhesionStrength)
			if prm.CohesionStrength > 0 {
				force = force.Add(cohesionAt(g, x, y).Mul(prm.CohesionStrength))
			}
			c.Force = c.Force.Add(force)
		}
	}
}
