//go:build ebiten

package app

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gritgrid/internal/core"
	"gritgrid/internal/material"
	"gritgrid/internal/render"
	"gritgrid/internal/scenario"
	"gritgrid/internal/ui"
	"gritgrid/internal/world"
)

var brushes = []material.Material{
	material.Sand,
	material.Water,
	material.Dirt,
	material.Wood,
	material.Wall,
	material.Metal,
	material.Leaf,
}

// Game adapts a world plus scenario to the ebiten.Game interface.
type Game struct {
	world    *world.World
	scenario scenario.Scenario
	painter  *render.GridPainter
	hud      *ui.HUD
	timer    *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	brush    int
}

// New constructs a Game for the provided world and scenario.
func New(w *world.World, s scenario.Scenario, scale, tps int, seed int64) *Game {
	size := w.Size()
	g := &Game{
		world:    w,
		scenario: s,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(w),
		timer:    core.NewFixedStep(tps),
		scale:    scale,
		seed:     seed,
	}
	return g
}

// Reset reinitializes the world and re-seeds the scenario.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	scenario.Install(g.scenario, g.world)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at the fixed
// tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.brush = (g.brush + 1) % len(brushes)
	}

	g.hud.Update()
	g.paint()

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		g.world.AdvanceTime(g.timer.DT())
		g.tickOnce = false
	}
	return nil
}

// paint writes the brush material (left button) or clears cells (right
// button) under the cursor. Painting happens between ticks by construction:
// Update never overlaps AdvanceTime.
func (g *Game) paint() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := cx/g.scale, cy/g.scale
	grid := g.world.Grid()
	if !grid.InBounds(x, y) {
		return
	}
	c := grid.At(x, y)
	if right {
		c.Clear()
		grid.SetOwner(x, y, 0)
		return
	}
	if c.Material.IsEmpty() {
		c.AddMaterial(brushes[g.brush], 1)
	}
}

// Draw renders the current world state and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	status := fmt.Sprintf("%s  tick %d  brush %s", g.scenario.Name(), g.world.Tick(), brushes[g.brush])
	if g.paused {
		status += "  [paused]"
	}
	g.hud.Draw(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}
