package world

import (
	"image/color"

	"gritgrid/internal/material"
)

const (
	displayMaterialMask = 0x0f
	displayShallowBit   = 0x10
)

var worldPalette = buildWorldPalette()

// Palette exposes the color palette used for rendering the world.
func (w *World) Palette() []color.RGBA {
	return worldPalette
}

// Cells returns the display buffer, rebuilding it if the last tick
// invalidated the cache. One byte per cell: material tag plus a shallow-fill
// bit.
func (w *World) Cells() []uint8 {
	if w.displayDirty {
		w.rebuildDisplay()
		w.displayDirty = false
	}
	return w.display
}

func (w *World) rebuildDisplay() {
	if len(w.display) != len(w.grid.cells) {
		w.display = make([]uint8, len(w.grid.cells))
	}
	for i := range w.grid.cells {
		c := &w.grid.cells[i]
		m := c.Material
		if c.RenderAs != material.Air {
			m = c.RenderAs
		}
		w.display[i] = encodeDisplayValue(m, c.Fill)
	}
}

func encodeDisplayValue(m material.Material, fill float64) uint8 {
	value := uint8(m) & displayMaterialMask
	if !m.IsEmpty() && fill < 0.5 {
		value |= displayShallowBit
	}
	return value
}

func buildWorldPalette() []color.RGBA {
	palette := make([]color.RGBA, 32)
	for i := range palette {
		m := material.Material(uint8(i) & displayMaterialMask)
		shallow := (i & displayShallowBit) != 0
		palette[i] = toRGBA(paletteColorFor(m, shallow))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func paletteColorFor(m material.Material, shallow bool) color.NRGBA {
	base := materialColor(m)
	if shallow && !m.IsEmpty() {
		return blendColors(base, materialColor(material.Air), 0.35)
	}
	return base
}

func materialColor(m material.Material) color.NRGBA {
	switch m {
	case material.Dirt:
		return color.NRGBA{R: 110, G: 76, B: 44, A: 255}
	case material.Water:
		return color.NRGBA{R: 46, G: 110, B: 210, A: 255}
	case material.Wood:
		return color.NRGBA{R: 160, G: 120, B: 70, A: 255}
	case material.Sand:
		return color.NRGBA{R: 214, G: 190, B: 110, A: 255}
	case material.Metal:
		return color.NRGBA{R: 150, G: 155, B: 165, A: 255}
	case material.Leaf:
		return color.NRGBA{R: 70, G: 150, B: 70, A: 255}
	case material.Wall:
		return color.NRGBA{R: 90, G: 90, B: 95, A: 255}
	case material.Root:
		return color.NRGBA{R: 120, G: 90, B: 55, A: 255}
	case material.Seed:
		return color.NRGBA{R: 170, G: 170, B: 80, A: 255}
	default:
		return color.NRGBA{R: 16, G: 16, B: 22, A: 255}
	}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
