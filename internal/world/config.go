package world

import "strconv"

// Params holds the tunable physics settings read by the tick pipeline. The
// pipeline never mutates them.
type Params struct {
	Gravity          float64
	AirResistance    float64
	AirDensityCutoff float64

	AdhesionEnabled  bool
	AdhesionStrength float64
	CohesionStrength float64

	ViscosityEnabled  bool
	ViscosityStrength float64

	FrictionEnabled bool

	PressureEnabled     bool
	HydrostaticStrength float64
	DiffusionIterations int
	DiffuseDiagonal     bool
	DiffuseIntoAir      bool
	PressureDecay       float64
	MinPressure         float64
	PressureForce       float64

	MaxVelocity float64

	// ParallelCells gates the data-parallel diffusion loop by problem size.
	ParallelCells int
}

// Config controls the world dimensions and physics settings.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  192,
		Height: 128,
		Seed:   1337,
		Params: Params{
			Gravity:          10,
			AirResistance:    0.12,
			AirDensityCutoff: 0.5,

			AdhesionEnabled:  true,
			AdhesionStrength: 1.0,
			CohesionStrength: 0.6,

			ViscosityEnabled:  true,
			ViscosityStrength: 1.0,

			FrictionEnabled: true,

			PressureEnabled:     true,
			HydrostaticStrength: 1.0,
			DiffusionIterations: 6,
			DiffuseDiagonal:     true,
			DiffuseIntoAir:      false,
			PressureDecay:       0.4,
			MinPressure:         0.001,
			PressureForce:       0.4,

			MaxVelocity: 8,

			ParallelCells: 16384,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Gravity = parsed
		}
	}
	if v, ok := cfg["air_resistance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AirResistance = parsed
		}
	}
	if v, ok := cfg["adhesion_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AdhesionStrength = parsed
		}
	}
	if v, ok := cfg["cohesion_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CohesionStrength = parsed
		}
	}
	if v, ok := cfg["viscosity_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ViscosityStrength = parsed
		}
	}
	if v, ok := cfg["hydrostatic_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.HydrostaticStrength = parsed
		}
	}
	if v, ok := cfg["diffusion_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.DiffusionIterations = parsed
		}
	}
	if v, ok := cfg["pressure_decay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.PressureDecay = parsed
		}
	}
	if v, ok := cfg["pressure_force"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.PressureForce = parsed
		}
	}
	if v, ok := cfg["max_velocity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.MaxVelocity = parsed
		}
	}
	if v, ok := cfg["diffuse_diagonal"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DiffuseDiagonal = parsed
		}
	}
	if v, ok := cfg["diffuse_into_air"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.DiffuseIntoAir = parsed
		}
	}
	if v, ok := cfg["friction"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.FrictionEnabled = parsed
		}
	}
	if v, ok := cfg["adhesion"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.AdhesionEnabled = parsed
		}
	}
	if v, ok := cfg["viscosity"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.ViscosityEnabled = parsed
		}
	}
	if v, ok := cfg["pressure"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.PressureEnabled = parsed
		}
	}
	return c
}
