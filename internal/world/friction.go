package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/core"
	"gritgrid/internal/material"
)

const (
	// frictionAidFraction caps friction components that point along the
	// cell's own velocity at this fraction of current momentum.
	frictionAidFraction = 0.1
	frictionRestSpeed   = 1e-6
)

// frictionSolver accumulates contact friction into a scratch buffer so a
// post-pass can constrain aiding forces before they reach the cells.
type frictionSolver struct {
	forces []mgl64.Vec2
}

// apply evaluates every cardinal contact between two non-empty, non-fluid
// cells exactly once: right and down neighbors of each cell.
func (f *frictionSolver) apply(g *Grid, prm *Params) {
	n := g.W * g.H
	if len(f.forces) != n {
		f.forces = make([]mgl64.Vec2, n)
	}
	for i := range f.forces {
		f.forces[i] = mgl64.Vec2{}
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := y*g.W + x
			if !frictionCandidate(&g.cells[i]) {
				continue
			}
			if x+1 < g.W && frictionCandidate(&g.cells[i+1]) {
				f.contact(g, prm, i, i+1, false)
			}
			if y+1 < g.H && frictionCandidate(&g.cells[i+g.W]) {
				f.contact(g, prm, i, i+g.W, true)
			}
		}
	}

	for i := range g.cells {
		c := &g.cells[i]
		if c.Material.IsEmpty() || c.Material.IsWall() {
			continue
		}
		fr := f.constrain(c, f.forces[i])
		c.Force = c.Force.Add(fr)
	}
}

func frictionCandidate(c *Cell) bool {
	return !c.Material.IsEmpty() && !c.Material.IsFluid()
}

// contact computes the friction pair force between cell a and its right or
// lower neighbor b. vertical is true when b sits below a.
func (f *frictionSolver) contact(g *Grid, prm *Params, ai, bi int, vertical bool) {
	a := &g.cells[ai]
	b := &g.cells[bi]
	pa := material.Props(a.Material)
	pb := material.Props(b.Material)

	normalForce := 0.0
	if a.Pressure > b.Pressure {
		normalForce += a.Pressure - b.Pressure
	}
	if vertical {
		normalForce += a.Mass() * math.Abs(prm.Gravity)
	}
	if normalForce <= epsilon {
		return
	}

	// Tangential axis runs along the interface: x for stacked pairs, y for
	// side-by-side pairs.
	tangAxis := 0
	if !vertical {
		tangAxis = 1
	}
	rel := b.Velocity[tangAxis] - a.Velocity[tangAxis]
	tangSpeed := math.Abs(rel)

	stick := (pa.StickVelocity + pb.StickVelocity) / 2
	width := (pa.FrictionTransition + pb.FrictionTransition) / 2
	if width <= epsilon {
		width = epsilon
	}
	static := math.Sqrt(pa.StaticFriction * pb.StaticFriction)
	kinetic := math.Sqrt(pa.KineticFriction * pb.KineticFriction)
	blend := core.Smoothstep((tangSpeed - stick) / width)
	mu := static + (kinetic-static)*blend

	mag := mu * normalForce
	if tangSpeed <= frictionRestSpeed {
		return
	}
	dir := 1.0
	if rel < 0 {
		dir = -1
	}

	// Friction drags a toward b's tangential motion and vice versa.
	f.forces[ai][tangAxis] += dir * mag
	f.forces[bi][tangAxis] -= dir * mag
}

// constrain keeps friction from aiding motion: a component along the cell's
// own velocity is capped at a small fraction of current momentum, and a
// resting cell receives no friction at all.
func (f *frictionSolver) constrain(c *Cell, fr mgl64.Vec2) mgl64.Vec2 {
	speed := c.Velocity.Len()
	if speed < frictionRestSpeed {
		return mgl64.Vec2{}
	}
	if fr.Dot(c.Velocity) <= 0 {
		return fr
	}
	limit := frictionAidFraction * speed * c.Mass()
	if mag := fr.Len(); mag > limit && mag > epsilon {
		return fr.Mul(limit / mag)
	}
	return fr
}
