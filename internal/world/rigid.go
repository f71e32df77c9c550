package world

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Structure is a 4-connected group of cells sharing one owner id, moved as a
// single rigid body each tick.
type Structure struct {
	ID       uint32
	Cells    []int
	Mass     float64
	COM      mgl64.Vec2
	Velocity mgl64.Vec2
}

// rigidSolver re-detects owned structures each tick and unifies their
// velocities, and prunes cells that lost their 4-connected path to the rest
// of their structure.
type rigidSolver struct {
	visited []bool
	queue   []int
}

var cardinalOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Structures flood-fills (BFS, 4-connected) every maximal owned component.
// A single owner id split into several components yields several structures.
func (r *rigidSolver) Structures(g *Grid) []Structure {
	n := g.W * g.H
	if len(r.visited) != n {
		r.visited = make([]bool, n)
	} else {
		for i := range r.visited {
			r.visited[i] = false
		}
	}

	var out []Structure
	for start := 0; start < n; start++ {
		if r.visited[start] || g.owners[start] == 0 {
			continue
		}
		out = append(out, r.fill(g, start))
	}
	return out
}

func (r *rigidSolver) fill(g *Grid, start int) Structure {
	id := g.owners[start]
	s := Structure{ID: id}
	r.queue = r.queue[:0]
	r.queue = append(r.queue, start)
	r.visited[start] = true

	var momentum mgl64.Vec2
	var weighted mgl64.Vec2
	for len(r.queue) > 0 {
		i := r.queue[0]
		r.queue = r.queue[1:]
		s.Cells = append(s.Cells, i)

		c := &g.cells[i]
		m := c.Mass()
		s.Mass += m
		x, y := i%g.W, i/g.W
		pos := mgl64.Vec2{float64(x) + 0.5 + c.COM[0]*0.5, float64(y) + 0.5 + c.COM[1]*0.5}
		weighted = weighted.Add(pos.Mul(m))
		momentum = momentum.Add(c.Velocity.Mul(m))

		for _, d := range cardinalOffsets {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := ny*g.W + nx
			if r.visited[ni] || g.owners[ni] != id {
				continue
			}
			r.visited[ni] = true
			r.queue = append(r.queue, ni)
		}
	}

	if s.Mass > epsilon {
		s.COM = weighted.Mul(1 / s.Mass)
		s.Velocity = momentum.Mul(1 / s.Mass)
	}
	return s
}

// Solve integrates each structure as one rigid body: the summed member
// forces accelerate the aggregate velocity, which is then written back onto
// every member bit-identically.
func (r *rigidSolver) Solve(g *Grid, dt float64) {
	for _, s := range r.Structures(g) {
		if s.Mass <= epsilon {
			continue
		}
		var force mgl64.Vec2
		for _, i := range s.Cells {
			force = force.Add(g.cells[i].Force)
		}
		v := s.Velocity.Add(force.Mul(dt / s.Mass))
		for _, i := range s.Cells {
			g.cells[i].Velocity = v
		}
	}
}

// Prune removes ownership from fragments: for each owner id only the largest
// 4-connected component keeps the id (scan-order first on ties), so breaking
// the connecting cell physically detaches a branch.
func (r *rigidSolver) Prune(g *Grid) {
	structs := r.Structures(g)
	largest := make(map[uint32]int)
	for si, s := range structs {
		best, ok := largest[s.ID]
		if !ok || len(s.Cells) > len(structs[best].Cells) {
			largest[s.ID] = si
		}
	}
	for si, s := range structs {
		if largest[s.ID] == si {
			continue
		}
		for _, i := range s.Cells {
			g.owners[i] = 0
		}
	}
}
