package world

import (
	"fmt"

	"gritgrid/internal/material"
)

// Grid stores a 2D field of cells in row-major order plus a parallel array
// of owner ids. Owner id 0 means unowned; the owner array is the single
// source of truth for structure membership.
type Grid struct {
	W, H   int
	cells  []Cell
	owners []uint32
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h), owners: make([]uint32, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Out-of-bounds access is a precondition
// violation and panics; callers are responsible for InBounds checks.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid access out of bounds: (%d,%d) in %dx%d", x, y, g.W, g.H))
	}
	return &g.cells[y*g.W+x]
}

// Cells exposes the backing cell slice for direct iteration.
func (g *Grid) Cells() []Cell { return g.cells }

// Owners exposes the backing owner-id slice.
func (g *Grid) Owners() []uint32 { return g.owners }

// Owner returns the owner id at (x, y).
func (g *Grid) Owner(x, y int) uint32 {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("owner access out of bounds: (%d,%d) in %dx%d", x, y, g.W, g.H))
	}
	return g.owners[y*g.W+x]
}

// SetOwner assigns the owner id at (x, y).
func (g *Grid) SetOwner(x, y int, id uint32) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("owner access out of bounds: (%d,%d) in %dx%d", x, y, g.W, g.H))
	}
	g.owners[y*g.W+x] = id
}

// OwnedCells returns the linear indices of all cells with the given owner.
func (g *Grid) OwnedCells(id uint32) []int {
	if id == 0 {
		return nil
	}
	var out []int
	for i, o := range g.owners {
		if o == id {
			out = append(out, i)
		}
	}
	return out
}

// Clear resets every cell to air and every owner to 0.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	for i := range g.owners {
		g.owners[i] = 0
	}
}

// TotalMass sums fill*density over the whole grid, walls excluded.
func (g *Grid) TotalMass() float64 {
	var total float64
	for i := range g.cells {
		if g.cells[i].Material.IsWall() {
			continue
		}
		total += g.cells[i].Mass()
	}
	return total
}

// MassOf sums fill*density over cells holding the given material.
func (g *Grid) MassOf(m material.Material) float64 {
	var total float64
	for i := range g.cells {
		if g.cells[i].Material == m {
			total += g.cells[i].Mass()
		}
	}
	return total
}

// Resize re-maps the grid content proportionally (nearest neighbor) onto new
// dimensions. The owner array stays in lock-step with the cell array.
func (g *Grid) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w == g.W && h == g.H {
		return
	}
	cells := make([]Cell, w*h)
	owners := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		sy := y * g.H / h
		for x := 0; x < w; x++ {
			sx := x * g.W / w
			cells[y*w+x] = g.cells[sy*g.W+sx]
			owners[y*w+x] = g.owners[sy*g.W+sx]
		}
	}
	g.W, g.H = w, h
	g.cells = cells
	g.owners = owners
}
