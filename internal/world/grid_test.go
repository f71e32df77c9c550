package world

import (
	"math"
	"testing"

	"gritgrid/internal/material"
)

func TestGridBoundsPanic(t *testing.T) {
	g := NewGrid(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-bounds access must panic")
		}
	}()
	g.At(4, 0)
}

func TestGridOwnerBoundsPanic(t *testing.T) {
	g := NewGrid(4, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-bounds owner access must panic")
		}
	}()
	g.SetOwner(0, -1, 1)
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(3, 2)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {2, 1, true}, {3, 0, false}, {0, 2, false}, {-1, 0, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestOwnedCells(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetOwner(1, 1, 7)
	g.SetOwner(2, 1, 7)
	g.SetOwner(3, 3, 9)

	cells := g.OwnedCells(7)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells owned by 7, got %d", len(cells))
	}
	if cells[0] != g.Index(1, 1) || cells[1] != g.Index(2, 1) {
		t.Fatalf("unexpected owned indices %v", cells)
	}
	if got := g.OwnedCells(0); got != nil {
		t.Fatal("owner 0 means unowned and must yield no cells")
	}
}

func TestTotalMassExcludesWalls(t *testing.T) {
	g := NewGrid(3, 1)
	g.At(0, 0).AddMaterial(material.Water, 1)
	g.At(1, 0).AddMaterial(material.Wall, 1)
	g.At(2, 0).AddMaterial(material.Sand, 0.5)

	want := 1*1.0 + 0.5*1.5
	if got := g.TotalMass(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("total mass %f, want %f", got, want)
	}
	if got := g.MassOf(material.Sand); math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("sand mass %f, want 0.75", got)
	}
}

func TestResizeKeepsOwnersInLockStep(t *testing.T) {
	g := NewGrid(4, 4)
	g.At(2, 2).AddMaterial(material.Metal, 1)
	g.SetOwner(2, 2, 3)

	g.Resize(8, 8)
	if g.W != 8 || g.H != 8 {
		t.Fatalf("resize to 8x8 failed, got %dx%d", g.W, g.H)
	}
	found := false
	for i := range g.cells {
		if g.cells[i].Material == material.Metal {
			found = true
			if g.owners[i] != 3 {
				t.Fatalf("owner did not follow cell at index %d", i)
			}
		} else if g.owners[i] != 0 {
			t.Fatalf("stray owner id at index %d", i)
		}
	}
	if !found {
		t.Fatal("metal cell lost during resize")
	}

	g.Resize(8, 8) // no-op path
	if g.W != 8 || g.H != 8 {
		t.Fatal("same-size resize must be a no-op")
	}
}

func TestClear(t *testing.T) {
	g := NewGrid(2, 2)
	g.At(0, 0).AddMaterial(material.Dirt, 1)
	g.SetOwner(0, 0, 5)
	g.Clear()
	if g.TotalMass() != 0 {
		t.Fatal("clear must remove all material")
	}
	if g.Owner(0, 0) != 0 {
		t.Fatal("clear must remove all owners")
	}
}
