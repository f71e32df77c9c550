package world

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"gritgrid/internal/material"
)

func snapshotFixture() *Grid {
	g := NewGrid(4, 3)
	c := g.At(1, 1)
	c.AddMaterial(material.Water, 0.75)
	c.COM = mgl64.Vec2{0.25, -0.5}
	c.Velocity = mgl64.Vec2{1.5, -2}
	c.Pressure = 3.25
	g.At(2, 2).AddMaterial(material.Wall, 1)
	g.At(0, 0).AddMaterial(material.Wood, 1)
	g.SetOwner(0, 0, 11)
	return g
}

func sameGrid(t *testing.T, a, b *Grid) {
	t.Helper()
	if a.W != b.W || a.H != b.H {
		t.Fatalf("dimensions differ: %dx%d vs %dx%d", a.W, a.H, b.W, b.H)
	}
	for i := range a.cells {
		ca, cb := &a.cells[i], &b.cells[i]
		if ca.Material != cb.Material || ca.Fill != cb.Fill ||
			ca.COM != cb.COM || ca.Velocity != cb.Velocity || ca.Pressure != cb.Pressure {
			t.Fatalf("cell %d differs: %+v vs %+v", i, ca, cb)
		}
	}
	for i := range a.owners {
		if a.owners[i] != b.owners[i] {
			t.Fatalf("owner %d differs: %d vs %d", i, a.owners[i], b.owners[i])
		}
	}
}

func TestBinarySnapshotRoundTrip(t *testing.T) {
	g := snapshotFixture()
	var buf bytes.Buffer
	if err := g.WriteSnapshot(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	restored, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	sameGrid(t, g, restored)
}

func TestTextSnapshotRoundTrip(t *testing.T) {
	g := snapshotFixture()
	var buf bytes.Buffer
	if err := g.WriteSnapshotText(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	restored, err := ReadSnapshotText(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	sameGrid(t, g, restored)
}

func TestSnapshotRejectsBadMagic(t *testing.T) {
	if _, err := ReadSnapshot(bytes.NewReader([]byte("XXXX\x01\x00\x00\x00\x01\x00\x00\x00"))); err == nil {
		t.Fatal("bad magic must be rejected")
	}
}

func TestSnapshotRejectsTruncatedInput(t *testing.T) {
	g := snapshotFixture()
	var buf bytes.Buffer
	if err := g.WriteSnapshot(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw := buf.Bytes()
	if _, err := ReadSnapshot(bytes.NewReader(raw[:len(raw)/2])); err == nil {
		t.Fatal("truncated snapshot must be rejected")
	}
}

func TestTextSnapshotRejectsMismatchedLengths(t *testing.T) {
	bad := []byte(`{"width":2,"height":2,"cells":[{"m":0,"f":0,"com":[0,0],"vel":[0,0],"p":0}],"owners":[0]}`)
	if _, err := ReadSnapshotText(bytes.NewReader(bad)); err == nil {
		t.Fatal("length mismatch must be rejected")
	}
}

func TestSetGridAdoptsDimensions(t *testing.T) {
	w := New(8, 8)
	g := snapshotFixture()
	w.SetGrid(g)

	if w.Grid() != g {
		t.Fatal("world must adopt the restored grid")
	}
	if size := w.Size(); size.W != 4 || size.H != 3 {
		t.Fatalf("world size must follow the grid, got %dx%d", size.W, size.H)
	}
	// The adopted grid must tick without disturbing immovable content.
	w.Step()
	if !w.Grid().At(2, 2).Material.IsWall() {
		t.Fatal("restored wall must survive a tick")
	}
}
