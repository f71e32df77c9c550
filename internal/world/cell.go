package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/core"
	"gritgrid/internal/material"
)

const (
	// MinFill is the smallest amount of matter a cell can hold. Below it the
	// cell resets to air.
	MinFill = 0.001

	// landingInset places a landed COM just inside the opposite edge so the
	// transfer does not re-trigger on the next tick.
	landingInset = 0.99

	epsilon = 1e-9
)

// Cell is a single grid unit holding at most one material with a continuous
// fill ratio, a sub-cell center of mass in [-1,1]^2, a velocity, and scalar
// pressure. Pending force accumulates over a tick and is consumed by
// velocity integration.
type Cell struct {
	Material material.Material
	Fill     float64
	COM      mgl64.Vec2
	Velocity mgl64.Vec2
	Pressure float64
	Gradient mgl64.Vec2
	Force    mgl64.Vec2

	// RenderAs overrides the displayed material without physical effect.
	// Air means no override.
	RenderAs material.Material
}

// Clear resets the cell to empty air.
func (c *Cell) Clear() {
	*c = Cell{}
}

// Mass returns fill times material density.
func (c *Cell) Mass() float64 {
	return c.Fill * c.Material.Density()
}

// SetFill clamps r to [0,1] and stores it. A fill below MinFill resets the
// cell to air with zero velocity, COM and pressure.
func (c *Cell) SetFill(r float64) {
	r = core.Clamp(r, 0, 1)
	if r < MinFill {
		c.Clear()
		return
	}
	c.Fill = r
}

// ClampCOM limits both COM axes to [-1,1]. Called on every COM write.
func (c *Cell) ClampCOM() {
	c.COM[0] = core.Clamp(c.COM[0], -1, 1)
	c.COM[1] = core.Clamp(c.COM[1], -1, 1)
}

// AddMaterial absorbs up to amount of m and returns how much was absorbed.
// An empty cell adopts m; a cell holding a different material rejects the
// add and returns 0.
func (c *Cell) AddMaterial(m material.Material, amount float64) float64 {
	if m.IsEmpty() || amount <= 0 {
		return 0
	}
	if c.Material.IsEmpty() {
		absorbed := math.Min(amount, 1)
		if absorbed < MinFill {
			return 0
		}
		c.Material = m
		c.Fill = absorbed
		return absorbed
	}
	if c.Material != m {
		return 0
	}
	absorbed := math.Min(amount, 1-c.Fill)
	if absorbed <= 0 {
		return 0
	}
	c.Fill += absorbed
	return absorbed
}

// AddMaterialPhysics absorbs material carrying momentum. The landing COM is
// projected along the incoming trajectory across the crossed boundary; a
// merge into existing matter conserves momentum and mass-weighted COM.
func (c *Cell) AddMaterialPhysics(m material.Material, amount float64, srcCOM, vel, normal mgl64.Vec2) float64 {
	if m.IsEmpty() || amount <= 0 {
		return 0
	}
	landing := trajectoryLanding(srcCOM, vel, normal)
	if c.Material.IsEmpty() {
		absorbed := c.AddMaterial(m, amount)
		if absorbed > 0 {
			c.COM = landing
			c.ClampCOM()
			c.Velocity = vel
		}
		return absorbed
	}
	if c.Material != m {
		return 0
	}
	m1 := c.Fill
	absorbed := c.AddMaterial(m, amount)
	if absorbed <= 0 {
		return 0
	}
	total := m1 + absorbed
	c.COM = c.COM.Mul(m1 / total).Add(landing.Mul(absorbed / total))
	c.ClampCOM()
	c.Velocity = c.Velocity.Mul(m1 / total).Add(vel.Mul(absorbed / total))
	return absorbed
}

// RemoveMaterial subtracts up to amount of fill and returns how much was
// removed. The cell clears to air when the remainder drops below MinFill.
func (c *Cell) RemoveMaterial(amount float64) float64 {
	if amount <= 0 || c.Material.IsEmpty() {
		return 0
	}
	removed := math.Min(amount, c.Fill)
	c.SetFill(c.Fill - removed)
	return removed
}

// TransferTo moves up to amount into target. The net transferred amount is
// whatever the target accepted.
func (c *Cell) TransferTo(target *Cell, amount float64) float64 {
	if c.Material.IsEmpty() {
		return 0
	}
	accepted := target.AddMaterial(c.Material, math.Min(amount, c.Fill))
	if accepted > 0 {
		c.RemoveMaterial(accepted)
	}
	return accepted
}

// TransferToPhysics moves up to amount into target across the boundary
// identified by normal, carrying velocity and trajectory-projected COM.
func (c *Cell) TransferToPhysics(target *Cell, amount float64, normal mgl64.Vec2) float64 {
	if c.Material.IsEmpty() {
		return 0
	}
	accepted := target.AddMaterialPhysics(c.Material, math.Min(amount, c.Fill), c.COM, c.Velocity, normal)
	if accepted > 0 {
		c.RemoveMaterial(accepted)
	}
	return accepted
}

// ShouldTransfer reports whether the sub-cell mass center has reached the
// cell boundary on either axis. Walls never transfer.
func (c *Cell) ShouldTransfer() bool {
	if c.Material.IsEmpty() || c.Material.IsWall() {
		return false
	}
	return math.Abs(c.COM[0]) >= 1 || math.Abs(c.COM[1]) >= 1
}

// TransferDirection returns ±1 on each axis whose COM reached the boundary,
// 0 otherwise. Both axes may saturate simultaneously (diagonal transfer).
func (c *Cell) TransferDirection() (dx, dy int) {
	if c.COM[0] >= 1 {
		dx = 1
	} else if c.COM[0] <= -1 {
		dx = -1
	}
	if c.COM[1] >= 1 {
		dy = 1
	} else if c.COM[1] <= -1 {
		dy = -1
	}
	return dx, dy
}

// trajectoryLanding computes where material entering across the boundary
// identified by normal lands in the destination cell's local frame. The
// crossed axis wraps to just inside the opposite edge; the carried axis is
// extrapolated linearly along the velocity and clamped.
func trajectoryLanding(src, vel, normal mgl64.Vec2) mgl64.Vec2 {
	landing := src
	for axis := 0; axis < 2; axis++ {
		n := normal[axis]
		if n == 0 {
			landing[axis] = core.Clamp(landing[axis], -1, 1)
			continue
		}
		s := 1.0
		if n < 0 {
			s = -1
		}
		other := 1 - axis
		if normal[other] == 0 && math.Abs(vel[axis]) > epsilon {
			t := (s - src[axis]) / vel[axis]
			if t > 0 {
				landing[other] = core.Clamp(src[other]+vel[other]*t, -1, 1)
			}
		}
		landing[axis] = -s * landingInset
	}
	return landing
}
