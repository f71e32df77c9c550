package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/material"
)

func TestSetFillClampsAndResets(t *testing.T) {
	var c Cell
	c.AddMaterial(material.Water, 1)
	c.SetFill(1.5)
	if c.Fill != 1 {
		t.Fatalf("fill must clamp to 1, got %f", c.Fill)
	}
	c.SetFill(-0.3)
	if !c.Material.IsEmpty() {
		t.Fatal("negative fill must reset the cell to air")
	}

	c = Cell{}
	c.AddMaterial(material.Water, 0.5)
	c.Velocity = mgl64.Vec2{1, 2}
	c.COM = mgl64.Vec2{0.5, -0.5}
	c.Pressure = 3
	c.SetFill(MinFill / 2)
	if !c.Material.IsEmpty() || c.Fill != 0 || c.Velocity != (mgl64.Vec2{}) || c.COM != (mgl64.Vec2{}) || c.Pressure != 0 {
		t.Fatal("sub-threshold fill must reset material, velocity, COM and pressure")
	}
}

func TestAddMaterialSemantics(t *testing.T) {
	var c Cell
	if got := c.AddMaterial(material.Sand, 0.4); got != 0.4 {
		t.Fatalf("empty cell must absorb 0.4, got %f", got)
	}
	if c.Material != material.Sand || c.Fill != 0.4 {
		t.Fatalf("cell must adopt sand at 0.4, got %v %f", c.Material, c.Fill)
	}

	if got := c.AddMaterial(material.Water, 0.5); got != 0 {
		t.Fatalf("different material must be rejected, got %f", got)
	}
	if c.Material != material.Sand || c.Fill != 0.4 {
		t.Fatal("rejected add must not change state")
	}

	if got := c.AddMaterial(material.Sand, 1); got != 0.6 {
		t.Fatalf("same material must fill remaining capacity 0.6, got %f", got)
	}
	if c.Fill != 1 {
		t.Fatalf("fill must cap at 1, got %f", c.Fill)
	}
	if got := c.AddMaterial(material.Sand, 0.1); got != 0 {
		t.Fatalf("full cell must absorb nothing, got %f", got)
	}
}

func TestAddMaterialOverflowClamps(t *testing.T) {
	var c Cell
	if got := c.AddMaterial(material.Dirt, 2.5); got != 1 {
		t.Fatalf("empty cell must absorb at most 1, got %f", got)
	}
}

func TestRemoveMaterial(t *testing.T) {
	var c Cell
	c.AddMaterial(material.Dirt, 0.8)
	if got := c.RemoveMaterial(0.3); math.Abs(got-0.3) > 1e-12 {
		t.Fatalf("expected removal of 0.3, got %f", got)
	}
	if got := c.RemoveMaterial(5); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("removal must clamp to remaining fill, got %f", got)
	}
	if !c.Material.IsEmpty() {
		t.Fatal("cell must clear once fill is gone")
	}
}

func TestTransferConservesMass(t *testing.T) {
	var a, b Cell
	a.AddMaterial(material.Water, 0.9)
	b.AddMaterial(material.Water, 0.7)

	before := a.Fill + b.Fill
	moved := a.TransferTo(&b, 0.6)
	if math.Abs(moved-0.3) > 1e-12 {
		t.Fatalf("target capacity is 0.3, moved %f", moved)
	}
	after := a.Fill + b.Fill
	if math.Abs(before-after) > 1e-9 {
		t.Fatalf("transfer changed total mass: %f -> %f", before, after)
	}
	if a.Fill < 0 {
		t.Fatal("source fill must never go negative")
	}
}

func TestTransferIntoForeignMaterialMovesNothing(t *testing.T) {
	var a, b Cell
	a.AddMaterial(material.Water, 0.5)
	b.AddMaterial(material.Sand, 0.5)
	if moved := a.TransferTo(&b, 0.5); moved != 0 {
		t.Fatalf("foreign-material transfer must move 0, got %f", moved)
	}
	if a.Fill != 0.5 || b.Fill != 0.5 {
		t.Fatal("blocked transfer must leave both cells unchanged")
	}
}

func TestShouldTransferAndDirection(t *testing.T) {
	var c Cell
	c.AddMaterial(material.Sand, 1)
	if c.ShouldTransfer() {
		t.Fatal("centered COM must not transfer")
	}
	c.COM = mgl64.Vec2{1, 0}
	if !c.ShouldTransfer() {
		t.Fatal("saturated x axis must transfer")
	}
	dx, dy := c.TransferDirection()
	if dx != 1 || dy != 0 {
		t.Fatalf("expected direction (1,0), got (%d,%d)", dx, dy)
	}

	c.COM = mgl64.Vec2{-1, 1}
	dx, dy = c.TransferDirection()
	if dx != -1 || dy != 1 {
		t.Fatalf("expected diagonal direction (-1,1), got (%d,%d)", dx, dy)
	}

	var wall Cell
	wall.AddMaterial(material.Wall, 1)
	wall.COM = mgl64.Vec2{1, 1}
	if wall.ShouldTransfer() {
		t.Fatal("walls must never transfer")
	}
}

func TestTrajectoryLanding(t *testing.T) {
	// Crossing the +x boundary wraps x just inside the destination's left
	// edge and carries y along the velocity.
	landing := trajectoryLanding(mgl64.Vec2{0.5, 0}, mgl64.Vec2{2, 1}, mgl64.Vec2{1, 0})
	if landing[0] != -landingInset {
		t.Fatalf("crossed axis must wrap to %f, got %f", -landingInset, landing[0])
	}
	want := 0.25 // (1-0.5)/2 * 1
	if math.Abs(landing[1]-want) > 1e-9 {
		t.Fatalf("carried axis must project to %f, got %f", want, landing[1])
	}

	// Near-zero velocity on the crossed axis still wraps, carrying the other
	// axis through unchanged.
	landing = trajectoryLanding(mgl64.Vec2{-1, 0.4}, mgl64.Vec2{0, 0}, mgl64.Vec2{-1, 0})
	if landing[0] != landingInset {
		t.Fatalf("crossing -x must land at +%f, got %f", landingInset, landing[0])
	}
	if landing[1] != 0.4 {
		t.Fatalf("uncrossed axis must carry through, got %f", landing[1])
	}

	// Diagonal crossings wrap both axes.
	landing = trajectoryLanding(mgl64.Vec2{1, 1}, mgl64.Vec2{3, 3}, mgl64.Vec2{1, 1})
	if landing[0] != -landingInset || landing[1] != -landingInset {
		t.Fatalf("diagonal landing must wrap both axes, got %v", landing)
	}
}

func TestAddMaterialPhysicsMerge(t *testing.T) {
	var c Cell
	c.AddMaterial(material.Water, 0.5)
	c.Velocity = mgl64.Vec2{1, 0}
	c.COM = mgl64.Vec2{0, 0}

	absorbed := c.AddMaterialPhysics(material.Water, 0.5, mgl64.Vec2{0.5, 0}, mgl64.Vec2{3, 0}, mgl64.Vec2{0, -1})
	if math.Abs(absorbed-0.5) > 1e-12 {
		t.Fatalf("expected to absorb 0.5, got %f", absorbed)
	}
	// Equal masses: merged velocity is the average.
	if math.Abs(c.Velocity[0]-2) > 1e-9 {
		t.Fatalf("momentum-conserving merge expects vx=2, got %f", c.Velocity[0])
	}
	if math.Abs(c.COM[0]-0.25) > 1e-2 {
		t.Fatalf("mass-weighted COM expects x near 0.25, got %f", c.COM[0])
	}
	if c.COM[0] < -1 || c.COM[0] > 1 || c.COM[1] < -1 || c.COM[1] > 1 {
		t.Fatal("COM must stay clamped to [-1,1]")
	}
}

func TestAddMaterialPhysicsIntoForeignMaterial(t *testing.T) {
	var c Cell
	c.AddMaterial(material.Sand, 0.5)
	got := c.AddMaterialPhysics(material.Water, 0.5, mgl64.Vec2{}, mgl64.Vec2{1, 1}, mgl64.Vec2{1, 0})
	if got != 0 {
		t.Fatalf("foreign material must be rejected, got %f", got)
	}
}
