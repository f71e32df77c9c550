package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/material"
)

// applyViscosity drags each viscous cell toward the fill-and-distance
// weighted average velocity of its same-material 8-neighborhood. Isolated
// cells couple weakly: effective viscosity scales with neighbor count.
func applyViscosity(g *Grid, prm *Params) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := &g.cells[y*g.W+x]
			if c.Material.IsEmpty() || c.Material.IsWall() {
				continue
			}
			visc := material.Props(c.Material).Viscosity
			if visc <= epsilon {
				continue
			}

			var sum mgl64.Vec2
			var weight float64
			count := 0
			for _, n := range adhesionNeighbors {
				nx, ny := x+n.dx, y+n.dy
				if !g.InBounds(nx, ny) {
					continue
				}
				nc := &g.cells[ny*g.W+nx]
				if nc.Material != c.Material {
					continue
				}
				w := nc.Fill * n.weight
				sum = sum.Add(nc.Velocity.Mul(w))
				weight += w
				count++
			}
			if count == 0 || weight <= epsilon {
				continue
			}

			avg := sum.Mul(1 / weight)
			effective := visc * float64(count) / 8 * prm.ViscosityStrength
			c.Force = c.Force.Add(avg.Sub(c.Velocity).Mul(effective * c.Fill))
		}
	}
}
