package world

import (
	"strconv"

	"gritgrid/internal/core"
)

// Parameters captures the current tunables for HUD presentation.
func (w *World) Parameters() core.ParameterSnapshot {
	prm := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Forces",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", prm.Gravity),
				floatParam("air_resistance", "Air resistance", prm.AirResistance),
				floatParam("adhesion_strength", "Adhesion strength", prm.AdhesionStrength),
				floatParam("cohesion_strength", "Cohesion strength", prm.CohesionStrength),
				floatParam("viscosity_strength", "Viscosity strength", prm.ViscosityStrength),
				floatParam("max_velocity", "Velocity ceiling", prm.MaxVelocity),
			},
		},
		{
			Name: "Pressure",
			Params: []core.Parameter{
				floatParam("hydrostatic_strength", "Hydrostatic strength", prm.HydrostaticStrength),
				intParam("diffusion_iterations", "Diffusion iterations", prm.DiffusionIterations),
				floatParam("pressure_decay", "Pressure decay", prm.PressureDecay),
				floatParam("pressure_force", "Gradient force", prm.PressureForce),
				floatParam("min_pressure", "Minimum pressure", prm.MinPressure),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 50, HasMin: true, HasMax: true},
		{Key: "air_resistance", Label: "Air resistance", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "adhesion_strength", Label: "Adhesion", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 5, HasMin: true, HasMax: true},
		{Key: "cohesion_strength", Label: "Cohesion", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 5, HasMin: true, HasMax: true},
		{Key: "viscosity_strength", Label: "Viscosity", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 5, HasMin: true, HasMax: true},
		{Key: "pressure_force", Label: "Gradient force", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "diffusion_iterations", Label: "Diffusion iters", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "max_velocity", Label: "Velocity ceiling", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a floating point tunable by key, clamping to its
// valid range. It reports whether the key was recognized.
func (w *World) SetFloatParameter(key string, value float64) bool {
	prm := &w.cfg.Params
	switch key {
	case "gravity":
		prm.Gravity = core.Clamp(value, 0, 50)
	case "air_resistance":
		prm.AirResistance = core.Clamp(value, 0, 2)
	case "adhesion_strength":
		prm.AdhesionStrength = core.Clamp(value, 0, 5)
	case "cohesion_strength":
		prm.CohesionStrength = core.Clamp(value, 0, 5)
	case "viscosity_strength":
		prm.ViscosityStrength = core.Clamp(value, 0, 5)
	case "hydrostatic_strength":
		prm.HydrostaticStrength = core.Clamp(value, 0, 5)
	case "pressure_decay":
		prm.PressureDecay = core.Clamp(value, 0, 10)
	case "pressure_force":
		prm.PressureForce = core.Clamp(value, 0, 10)
	case "min_pressure":
		prm.MinPressure = core.Clamp(value, 0, 1)
	case "max_velocity":
		prm.MaxVelocity = core.Clamp(value, 0.5, 64)
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable by key. It reports whether the
// key was recognized.
func (w *World) SetIntParameter(key string, value int) bool {
	prm := &w.cfg.Params
	switch key {
	case "diffusion_iterations":
		if value < 0 {
			value = 0
		}
		if value > 32 {
			value = 32
		}
		prm.DiffusionIterations = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
