package world

import (
	"testing"

	"gritgrid/internal/material"
)

func TestDisplayEncodesMaterialAndDepth(t *testing.T) {
	w := New(2, 1)
	deep := w.Grid().At(0, 0)
	deep.AddMaterial(material.Water, 1)
	shallow := w.Grid().At(1, 0)
	shallow.AddMaterial(material.Water, 0.3)
	w.displayDirty = true

	cells := w.Cells()
	if cells[0] != uint8(material.Water) {
		t.Fatalf("deep water encodes as the bare material tag, got %#x", cells[0])
	}
	if cells[1] != uint8(material.Water)|displayShallowBit {
		t.Fatalf("shallow water must carry the shallow bit, got %#x", cells[1])
	}
	if int(cells[0]) >= len(w.Palette()) || int(cells[1]) >= len(w.Palette()) {
		t.Fatal("every display value must index into the palette")
	}
}

func TestDisplayRenderOverride(t *testing.T) {
	w := New(1, 1)
	c := w.Grid().At(0, 0)
	c.AddMaterial(material.Water, 1)
	c.RenderAs = material.Leaf
	w.displayDirty = true

	if got := w.Cells()[0]; got != uint8(material.Leaf) {
		t.Fatalf("RenderAs must override the displayed material, got %#x", got)
	}
}

func TestDisplayCacheInvalidation(t *testing.T) {
	w := New(1, 1)
	if w.Cells()[0] != uint8(material.Air) {
		t.Fatal("empty world must display air")
	}

	// Mutations without a tick are invisible until the next tick dirties the
	// cache.
	w.Grid().At(0, 0).AddMaterial(material.Sand, 1)
	if w.Cells()[0] != uint8(material.Air) {
		t.Fatal("display cache must hold until invalidated")
	}
	w.Step()
	if w.Cells()[0]&displayMaterialMask != uint8(material.Sand) {
		t.Fatalf("display must refresh after a tick, got %#x", w.Cells()[0])
	}
}

func TestParameterRoundTrip(t *testing.T) {
	w := New(4, 4)
	if !w.SetFloatParameter("gravity", 3.5) {
		t.Fatal("gravity must be settable")
	}
	if got := w.Config().Params.Gravity; got != 3.5 {
		t.Fatalf("gravity = %f, want 3.5", got)
	}
	if !w.SetFloatParameter("gravity", 500) {
		t.Fatal("out-of-range set must still be recognized")
	}
	if got := w.Config().Params.Gravity; got != 50 {
		t.Fatalf("gravity must clamp to 50, got %f", got)
	}
	if w.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if !w.SetIntParameter("diffusion_iterations", 12) {
		t.Fatal("diffusion iterations must be settable")
	}
	if got := w.Config().Params.DiffusionIterations; got != 12 {
		t.Fatalf("diffusion iterations = %d, want 12", got)
	}
}

func TestParameterSnapshotCoversControls(t *testing.T) {
	w := New(4, 4)
	snap := w.Parameters()
	keys := map[string]bool{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			keys[p.Key] = true
		}
	}
	for _, ctl := range w.ParameterControls() {
		if !keys[ctl.Key] {
			t.Fatalf("control %q has no matching snapshot parameter", ctl.Key)
		}
	}
}
