package world

import (
	"math"
	"runtime"
	"sync"

	"gritgrid/internal/material"
)

// pressureField owns the double-buffered scratch space for Jacobi diffusion
// and implements the per-tick pressure sub-pipeline: hydrostatic injection,
// blocked-transfer conversion, diffusion, decay, gradient recompute.
type pressureField struct {
	curr []float64
	next []float64
}

func newPressureField(n int) *pressureField {
	return &pressureField{curr: make([]float64, n), next: make([]float64, n)}
}

func (p *pressureField) resize(n int) {
	if len(p.curr) != n {
		p.curr = make([]float64, n)
		p.next = make([]float64, n)
	}
}

func (p *pressureField) update(g *Grid, blocked []blockedTransfer, prm *Params, dt float64) {
	p.resize(g.W * g.H)
	p.injectHydrostatic(g, prm, dt)
	p.applyBlocked(g, blocked)
	p.diffuse(g, prm)
	p.decay(g, prm, dt)
	p.gradient(g)
	p.applyGradientForce(g, prm)
}

// injectHydrostatic walks each column top to bottom so pressure accumulates
// with depth: every contiguous run of material builds a head, and each cell
// pushes the head above it (density*g*weight*dt per contributing cell) into
// the cell directly below. Walls and air gaps reset the head.
func (p *pressureField) injectHydrostatic(g *Grid, prm *Params, dt float64) {
	for x := 0; x < g.W; x++ {
		var head float64
		for y := 0; y < g.H; y++ {
			c := &g.cells[y*g.W+x]
			if c.Material.IsEmpty() || c.Material.IsWall() {
				head = 0
				continue
			}
			pr := material.Props(c.Material)
			head += c.Fill * pr.Density * math.Abs(prm.Gravity) * pr.InjectionWeight * prm.HydrostaticStrength * dt
			if y+1 >= g.H {
				continue
			}
			below := &g.cells[(y+1)*g.W+x]
			if below.Material.IsEmpty() || below.Material.IsWall() {
				continue
			}
			below.Pressure += head
		}
	}
}

// applyBlocked converts each queued blocked transfer's kinetic energy into
// pressure on the destination, weighted by the destination material's
// dynamic-pressure weight. A wall destination reflects the energy back onto
// the source with energy-dependent damping.
func (p *pressureField) applyBlocked(g *Grid, blocked []blockedTransfer) {
	for i := range blocked {
		b := &blocked[i]
		energy := b.energy()
		if energy <= epsilon {
			continue
		}
		if !g.InBounds(b.srcX, b.srcY) {
			continue
		}
		src := g.At(b.srcX, b.srcY)
		if !b.inBounds || g.At(b.dstX, b.dstY).Material.IsWall() {
			reflection := math.Sqrt(material.Props(b.mat).Elasticity*material.Props(material.Wall).Elasticity) *
				(1 - 0.1*math.Min(1, energy/10))
			if !src.Material.IsEmpty() {
				src.Pressure += energy * reflection
			}
			continue
		}
		dst := g.At(b.dstX, b.dstY)
		dst.Pressure += energy * material.Props(dst.Material).DynamicWeight
	}
}

type diffNeighbor struct {
	dx, dy int
	weight float64
}

var cardinalNeighbors = []diffNeighbor{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
}

// airDiffusion is the coefficient air uses when DiffuseIntoAir makes empty
// cells full diffusion participants.
const airDiffusion = 0.9

func diffusionCoeff(m material.Material) float64 {
	if m.IsEmpty() {
		return airDiffusion
	}
	return material.Props(m).PressureDiffusion
}

var mooreNeighbors = []diffNeighbor{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, 0.707}, {-1, 1, 0.707}, {1, -1, 0.707}, {-1, -1, 0.707},
}

// diffuse runs the configured number of explicit Jacobi iterations. The
// interface rate between two cells is the harmonic mean of their diffusion
// coefficients, halved by 0.707 across diagonals. Walls and out-of-bounds
// mirror pressure back (no flux); air cells participate only when
// DiffuseIntoAir is set. Values clamp to >= 0 after each iteration.
func (p *pressureField) diffuse(g *Grid, prm *Params) {
	iters := prm.DiffusionIterations
	if iters <= 0 {
		return
	}
	neighbors := cardinalNeighbors
	scale := 0.25
	if prm.DiffuseDiagonal {
		neighbors = mooreNeighbors
		scale = 0.125
	}

	for i := range g.cells {
		p.curr[i] = g.cells[i].Pressure
	}

	for it := 0; it < iters; it++ {
		p.iterate(g, prm, neighbors, scale)
		p.curr, p.next = p.next, p.curr
	}

	for i := range g.cells {
		if g.cells[i].Material.IsWall() {
			continue
		}
		g.cells[i].Pressure = p.curr[i]
	}
}

func (p *pressureField) iterate(g *Grid, prm *Params, neighbors []diffNeighbor, scale float64) {
	total := g.W * g.H
	if total >= prm.ParallelCells {
		workers := runtime.NumCPU()
		if workers > g.H {
			workers = g.H
		}
		var wg sync.WaitGroup
		rows := (g.H + workers - 1) / workers
		for w := 0; w < workers; w++ {
			y0 := w * rows
			y1 := y0 + rows
			if y1 > g.H {
				y1 = g.H
			}
			if y0 >= y1 {
				continue
			}
			wg.Add(1)
			go func(y0, y1 int) {
				defer wg.Done()
				p.iterateRows(g, prm, neighbors, scale, y0, y1)
			}(y0, y1)
		}
		wg.Wait()
		return
	}
	p.iterateRows(g, prm, neighbors, scale, 0, g.H)
}

// iterateRows computes one Jacobi step for rows [y0,y1). Each output index
// is written by exactly one worker and inputs come from the read-only
// snapshot buffer, so concurrent workers share no mutable state.
func (p *pressureField) iterateRows(g *Grid, prm *Params, neighbors []diffNeighbor, scale float64, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.W; x++ {
			i := y*g.W + x
			c := &g.cells[i]
			if c.Material.IsWall() || (c.Material.IsEmpty() && !prm.DiffuseIntoAir) {
				p.next[i] = p.curr[i]
				continue
			}
			da := diffusionCoeff(c.Material)
			val := p.curr[i]
			var delta float64
			for _, n := range neighbors {
				nx, ny := x+n.dx, y+n.dy
				if !g.InBounds(nx, ny) {
					continue
				}
				nc := &g.cells[ny*g.W+nx]
				if nc.Material.IsWall() || (nc.Material.IsEmpty() && !prm.DiffuseIntoAir) {
					continue
				}
				db := diffusionCoeff(nc.Material)
				if da+db <= epsilon {
					continue
				}
				rate := 2 * da * db / (da + db)
				delta += rate * n.weight * (p.curr[ny*g.W+nx] - val)
			}
			out := val + delta*scale
			if out < 0 {
				out = 0
			}
			p.next[i] = out
		}
	}
}

// decay applies exponential per-tick decay above the minimum-pressure
// threshold.
func (p *pressureField) decay(g *Grid, prm *Params, dt float64) {
	factor := 1 - prm.PressureDecay*dt
	if factor < 0 {
		factor = 0
	}
	for i := range g.cells {
		c := &g.cells[i]
		if c.Pressure > prm.MinPressure {
			c.Pressure *= factor
		}
	}
}

// gradient recomputes the per-cell pressure gradient by component-wise
// central difference over axis-aligned neighbors, falling back to one-sided
// differences at walls and domain edges. The sign convention points from
// high to low pressure.
func (p *pressureField) gradient(g *Grid) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := &g.cells[y*g.W+x]
			if c.Material.IsWall() {
				c.Gradient[0], c.Gradient[1] = 0, 0
				continue
			}
			c.Gradient[0] = axisGradient(g, x, y, 1, 0)
			c.Gradient[1] = axisGradient(g, x, y, 0, 1)
		}
	}
}

func axisGradient(g *Grid, x, y, dx, dy int) float64 {
	center := g.cells[y*g.W+x].Pressure
	lo, hasLo := neighborPressure(g, x-dx, y-dy)
	hi, hasHi := neighborPressure(g, x+dx, y+dy)
	switch {
	case hasLo && hasHi:
		return (lo - hi) / 2
	case hasLo:
		return lo - center
	case hasHi:
		return center - hi
	default:
		return 0
	}
}

func neighborPressure(g *Grid, x, y int) (float64, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	c := &g.cells[y*g.W+x]
	if c.Material.IsWall() {
		return 0, false
	}
	return c.Pressure, true
}

// applyGradientForce turns the recomputed gradient into a pending force so
// pressure differences drive material toward low pressure.
func (p *pressureField) applyGradientForce(g *Grid, prm *Params) {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Material.IsEmpty() || c.Material.IsWall() {
			continue
		}
		c.Force = c.Force.Add(c.Gradient.Mul(prm.PressureForce * c.Fill))
	}
}
