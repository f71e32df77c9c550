package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/material"
)

// materialMove is the transient record of one boundary-crossing transfer,
// produced by move computation and consumed by move execution within the
// same tick.
type materialMove struct {
	srcX, srcY int
	dstX, dstY int
	amount     float64
	normal     mgl64.Vec2
}

// blockedTransfer records a move that could not complete. Its kinetic energy
// is converted to pressure by the next tick's pressure stage.
type blockedTransfer struct {
	srcX, srcY int
	dstX, dstY int
	inBounds   bool
	mat        material.Material
	mass       float64
	velocity   mgl64.Vec2
}

func (b *blockedTransfer) energy() float64 {
	v := b.velocity.Len()
	return 0.5 * b.mass * v * v
}

// computeMoves scans the grid for cells whose COM reached a boundary and
// emits one move per such cell. Bottom-up scan order lets settling stacks
// resolve within a single tick.
func (w *World) computeMoves() []materialMove {
	moves := w.moveBuf[:0]
	g := w.grid
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			c := &g.cells[y*g.W+x]
			if !c.ShouldTransfer() {
				continue
			}
			dx, dy := c.TransferDirection()
			moves = append(moves, materialMove{
				srcX: x, srcY: y,
				dstX: x + dx, dstY: y + dy,
				amount: c.Fill,
				normal: mgl64.Vec2{float64(dx), float64(dy)},
			})
		}
	}
	w.moveBuf = moves
	return moves
}

// executeMoves applies the computed moves. Destination full, wall, or a
// different organism blocks the move; blocked moves are queued for the next
// tick's pressure conversion. A destination holding a different material
// executes as a density displacement swap when gravitationally favored.
func (w *World) executeMoves(moves []materialMove) {
	g := w.grid
	for i := range moves {
		mv := &moves[i]
		src := g.At(mv.srcX, mv.srcY)
		if src.Material.IsEmpty() || !src.ShouldTransfer() {
			continue
		}

		if !g.InBounds(mv.dstX, mv.dstY) {
			w.block(mv, src, false)
			continue
		}

		dst := g.At(mv.dstX, mv.dstY)
		srcOwner := g.owners[g.Index(mv.srcX, mv.srcY)]
		dstOwner := g.owners[g.Index(mv.dstX, mv.dstY)]
		if dst.Material.IsWall() {
			w.block(mv, src, true)
			continue
		}
		if dstOwner != 0 && dstOwner != srcOwner {
			w.block(mv, src, true)
			continue
		}

		if dst.Material.IsEmpty() || dst.Material == src.Material {
			accepted := src.TransferToPhysics(dst, math.Min(mv.amount, src.Fill), mv.normal)
			if accepted <= 0 {
				w.block(mv, src, true)
			} else if src.Material.IsEmpty() {
				// The payload moved wholesale; ownership follows it.
				if srcOwner != 0 {
					g.owners[g.Index(mv.dstX, mv.dstY)] = srcOwner
					g.owners[g.Index(mv.srcX, mv.srcY)] = 0
				}
			} else {
				// Partial transfer: the remainder re-enters from the boundary.
				retainCOM(src, mv.normal)
			}
			continue
		}

		if swapFavored(src, dst, mv.normal) {
			swapCells(src, dst, mv.normal)
			si, di := g.Index(mv.srcX, mv.srcY), g.Index(mv.dstX, mv.dstY)
			g.owners[si], g.owners[di] = g.owners[di], g.owners[si]
			continue
		}
		w.block(mv, src, true)
	}
}

// block queues the failed move for pressure conversion and bounces the
// outgoing velocity component off the boundary.
func (w *World) block(mv *materialMove, src *Cell, inBounds bool) {
	w.blocked = append(w.blocked, blockedTransfer{
		srcX: mv.srcX, srcY: mv.srcY,
		dstX: mv.dstX, dstY: mv.dstY,
		inBounds: inBounds,
		mat:      src.Material,
		mass:     src.Mass(),
		velocity: src.Velocity,
	})
	elast := material.Props(src.Material).Elasticity
	for axis := 0; axis < 2; axis++ {
		if mv.normal[axis] != 0 && src.Velocity[axis]*mv.normal[axis] > 0 {
			src.Velocity[axis] = -src.Velocity[axis] * elast
		}
	}
	retainCOM(src, mv.normal)
}

// retainCOM pulls the COM back just inside the blocked boundary so the cell
// does not jitter across it.
func retainCOM(c *Cell, normal mgl64.Vec2) {
	for axis := 0; axis < 2; axis++ {
		if normal[axis] > 0 {
			c.COM[axis] = landingInset
		} else if normal[axis] < 0 {
			c.COM[axis] = -landingInset
		}
	}
}

// swapFavored reports whether exchanging src and dst contents is driven by
// gravity: denser matter sinks below lighter matter, lighter matter rises
// above denser matter. At least one side must be a fluid.
func swapFavored(src, dst *Cell, normal mgl64.Vec2) bool {
	if !src.Material.IsFluid() && !dst.Material.IsFluid() {
		return false
	}
	sd := src.Material.Density()
	dd := dst.Material.Density()
	if normal[1] > 0 {
		return sd > dd
	}
	if normal[1] < 0 {
		return sd < dd
	}
	return false
}

// swapCells exchanges the material payloads of two cells. Pressure stays
// with the location; each payload lands with a trajectory-projected COM.
func swapCells(src, dst *Cell, normal mgl64.Vec2) {
	back := normal.Mul(-1)
	srcLanding := trajectoryLanding(src.COM, src.Velocity, normal)
	dstLanding := trajectoryLanding(dst.COM, dst.Velocity, back)

	src.Material, dst.Material = dst.Material, src.Material
	src.Fill, dst.Fill = dst.Fill, src.Fill
	src.Velocity, dst.Velocity = dst.Velocity, src.Velocity
	src.RenderAs, dst.RenderAs = dst.RenderAs, src.RenderAs

	// The moving payload now sits in dst, the displaced payload in src.
	dst.COM = srcLanding
	src.COM = dstLanding
	dst.ClampCOM()
	src.ClampCOM()
}
