//go:build ebiten

package ui

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gritgrid/internal/core"
)

// Tunable is the surface the HUD adjusts: parameter controls plus setters
// and a snapshot for reading current values.
type Tunable interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
	Parameters() core.ParameterSnapshot
}

// HUD renders a status line and one selected parameter control, adjustable
// from the keyboard.
type HUD struct {
	target   Tunable
	controls []core.ParameterControl
	selected int
	visible  bool
}

// NewHUD builds a HUD over the target's parameter controls.
func NewHUD(target Tunable) *HUD {
	return &HUD{
		target:   target,
		controls: target.ParameterControls(),
		visible:  true,
	}
}

// Update handles HUD keys: toggle visibility, cycle the selected control,
// and nudge its value by the control's step.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		h.adjust(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		h.adjust(-1)
	}
}

func (h *HUD) adjust(direction float64) {
	ctl := h.controls[h.selected]
	value, ok := h.currentValue(ctl.Key)
	if !ok {
		return
	}
	value += ctl.Step * direction
	if ctl.HasMin && value < ctl.Min {
		value = ctl.Min
	}
	if ctl.HasMax && value > ctl.Max {
		value = ctl.Max
	}
	switch ctl.Type {
	case core.ParamTypeInt:
		h.target.SetIntParameter(ctl.Key, int(value))
	default:
		h.target.SetFloatParameter(ctl.Key, value)
	}
}

func (h *HUD) currentValue(key string) (float64, bool) {
	snap := h.target.Parameters()
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

// Draw renders the status line and the selected control.
func (h *HUD) Draw(screen *ebiten.Image, status string) {
	if !h.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
	if len(h.controls) == 0 {
		return
	}
	ctl := h.controls[h.selected]
	value, _ := h.currentValue(ctl.Key)
	line := fmt.Sprintf("[%s] %s = %.3g  ([/] select, -/= adjust, h hide)", ctl.Key, ctl.Label, value)
	ebitenutil.DebugPrintAt(screen, line, 4, 20)
}
