package world

import (
	"gritgrid/internal/core"
)

const (
	dtEpsilon = 1e-6

	// DefaultDT is the tick length Step uses, matching a 60 TPS main loop.
	DefaultDT = 1.0 / 60
)

// TickHook runs inside AdvanceTime, before or after the physics pipeline.
// Hooks may mutate cells and owners through the normal contracts; they must
// never run concurrently with a tick.
type TickHook func(w *World, tick uint64)

// World owns the grid and sequences the force calculators, integration,
// rigid-body resolution, and material transport every tick. The tick is
// single-threaded; the only internal parallelism is the data-parallel
// diffusion loop.
type World struct {
	cfg  Config
	grid *Grid

	pressure *pressureField
	friction frictionSolver
	rigid    rigidSolver

	// blocked carries failed moves from one tick's move execution into the
	// next tick's pressure conversion (one-tick lag by design).
	blocked []blockedTransfer
	moveBuf []materialMove

	rng *core.RNG

	display      []uint8
	displayDirty bool

	tick       uint64
	beforeTick TickHook
	afterTick  TickHook
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	g := NewGrid(cfg.Width, cfg.Height)
	return &World{
		cfg:          cfg,
		grid:         g,
		pressure:     newPressureField(g.W * g.H),
		rng:          core.NewRNG(cfg.Seed),
		display:      make([]uint8, g.W*g.H),
		displayDirty: true,
	}
}

// Grid exposes the cell storage. External actors may mutate cells and owner
// ids through it strictly between ticks.
func (w *World) Grid() *Grid { return w.grid }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// RNG exposes the world's deterministic random source for scenario use.
func (w *World) RNG() *core.RNG { return w.rng }

// Tick reports how many ticks have been advanced since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// SetTickHooks installs scenario hooks that run inside AdvanceTime before
// and after the physics pipeline. Either may be nil.
func (w *World) SetTickHooks(before, after TickHook) {
	w.beforeTick = before
	w.afterTick = after
}

// Reset clears all material, ownership and queued state and reseeds the
// random source. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	w.grid.Clear()
	w.blocked = w.blocked[:0]
	w.tick = 0
	w.displayDirty = true
}

// Step advances the world by the default fixed tick.
func (w *World) Step() { w.AdvanceTime(DefaultDT) }

// AdvanceTime advances the physical state by dt seconds through the fixed
// pipeline. A dt below epsilon is a no-op.
func (w *World) AdvanceTime(dt float64) {
	if dt < dtEpsilon {
		return
	}
	if w.beforeTick != nil {
		w.beforeTick(w, w.tick)
	}

	prm := &w.cfg.Params
	w.clearForces()
	w.applyGravity(prm)
	w.applyAirResistance(prm)
	if prm.AdhesionEnabled {
		applyAdhesion(w.grid, prm)
	}
	if prm.PressureEnabled {
		queued := w.blocked
		w.pressure.update(w.grid, queued, prm, dt)
		w.blocked = w.blocked[:0]
	} else {
		w.blocked = w.blocked[:0]
	}
	if prm.ViscosityEnabled {
		applyViscosity(w.grid, prm)
	}
	if prm.FrictionEnabled {
		w.friction.apply(w.grid, prm)
	}
	w.integrate(dt)
	w.rigid.Solve(w.grid, dt)
	w.rigid.Prune(w.grid)
	w.clampVelocities(prm)
	moves := w.computeMoves()
	w.executeMoves(moves)
	w.displayDirty = true

	if w.afterTick != nil {
		w.afterTick(w, w.tick)
	}
	w.tick++
}

func (w *World) clearForces() {
	for i := range w.grid.cells {
		w.grid.cells[i].Force[0] = 0
		w.grid.cells[i].Force[1] = 0
	}
}

// applyGravity adds (0, g)*mass to every non-empty, non-wall cell. Gravity
// is uniform per mass; material injection weights play no part here.
func (w *World) applyGravity(prm *Params) {
	for i := range w.grid.cells {
		c := &w.grid.cells[i]
		if c.Material.IsEmpty() || c.Material.IsWall() {
			continue
		}
		c.Force[1] += prm.Gravity * c.Mass()
	}
}

// applyAirResistance opposes the velocity of low-density material.
func (w *World) applyAirResistance(prm *Params) {
	if prm.AirResistance <= 0 {
		return
	}
	for i := range w.grid.cells {
		c := &w.grid.cells[i]
		if c.Material.IsEmpty() || c.Material.IsWall() {
			continue
		}
		density := c.Material.Density()
		if density >= prm.AirDensityCutoff {
			continue
		}
		c.Force = c.Force.Sub(c.Velocity.Mul(prm.AirResistance * c.Mass()))
	}
}

// integrate consumes the accumulated pending force (v += F/m*dt) and
// advances the COM by velocity. COM axes clamp to [-1,1]; a saturated axis
// marks the cell for transfer. Structure members keep their velocity here:
// the rigid solver applies their summed force once, in aggregate.
func (w *World) integrate(dt float64) {
	for i := range w.grid.cells {
		c := &w.grid.cells[i]
		if c.Material.IsEmpty() || c.Material.IsWall() {
			continue
		}
		if w.grid.owners[i] == 0 {
			m := c.Mass()
			if m > epsilon {
				c.Velocity = c.Velocity.Add(c.Force.Mul(dt / m))
			}
		}
		c.COM[0] += c.Velocity[0] * dt
		c.COM[1] += c.Velocity[1] * dt
		c.ClampCOM()
	}
}

// clampVelocities enforces the stability ceiling on velocity magnitude.
func (w *World) clampVelocities(prm *Params) {
	max := prm.MaxVelocity
	if max <= 0 {
		return
	}
	for i := range w.grid.cells {
		c := &w.grid.cells[i]
		if speed := c.Velocity.Len(); speed > max {
			c.Velocity = c.Velocity.Mul(max / speed)
		}
	}
}

// MaxPressure reports the highest cell pressure on the grid.
func (w *World) MaxPressure() float64 {
	var max float64
	for i := range w.grid.cells {
		if p := w.grid.cells[i].Pressure; p > max {
			max = p
		}
	}
	return max
}

// BlockedTransfers reports how many failed moves are queued for the next
// tick's pressure conversion.
func (w *World) BlockedTransfers() int { return len(w.blocked) }
