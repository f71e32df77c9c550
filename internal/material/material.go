package material

// Material enumerates the substances a cell can hold. Air is the canonical
// empty state.
type Material uint8

const (
	Air Material = iota
	Dirt
	Water
	Wood
	Sand
	Metal
	Leaf
	Wall
	Root
	Seed

	Count
)

var names = [Count]string{
	Air:   "air",
	Dirt:  "dirt",
	Water: "water",
	Wood:  "wood",
	Sand:  "sand",
	Metal: "metal",
	Leaf:  "leaf",
	Wall:  "wall",
	Root:  "root",
	Seed:  "seed",
}

// String returns the lower-case material name.
func (m Material) String() string {
	if m >= Count {
		return "unknown"
	}
	return names[m]
}

// IsEmpty reports whether the material is the empty (air) state.
func (m Material) IsEmpty() bool { return m == Air }

// IsWall reports whether the material is immovable boundary matter.
func (m Material) IsWall() bool { return m == Wall }

// IsFluid reports whether the material flows freely.
func (m Material) IsFluid() bool { return props[clampTag(m)].Fluid }

// Properties holds the static per-material physical coefficients. The table
// is read-only at simulation time.
type Properties struct {
	Density   float64
	Viscosity float64
	Adhesion  float64

	StaticFriction     float64
	KineticFriction    float64
	FrictionTransition float64
	StickVelocity      float64

	Elasticity float64

	PressureDiffusion float64
	InjectionWeight   float64
	DynamicWeight     float64

	Fluid bool
}

var props = [Count]Properties{
	Air: {},
	Dirt: {
		Density: 1.6, Viscosity: 0.05, Adhesion: 0.35,
		StaticFriction: 0.8, KineticFriction: 0.55, FrictionTransition: 0.3, StickVelocity: 0.05,
		Elasticity:        0.1,
		PressureDiffusion: 0.15, InjectionWeight: 1.0, DynamicWeight: 0.6,
	},
	Water: {
		Density: 1.0, Viscosity: 0.5, Adhesion: 0.12,
		StaticFriction: 0, KineticFriction: 0, FrictionTransition: 0.1, StickVelocity: 0,
		Elasticity:        0.05,
		PressureDiffusion: 0.8, InjectionWeight: 1.0, DynamicWeight: 1.0,
		Fluid: true,
	},
	Wood: {
		Density: 0.3, Viscosity: 0, Adhesion: 0.45,
		StaticFriction: 0.6, KineticFriction: 0.45, FrictionTransition: 0.25, StickVelocity: 0.04,
		Elasticity:        0.35,
		PressureDiffusion: 0.05, InjectionWeight: 0.4, DynamicWeight: 0.4,
	},
	Sand: {
		Density: 1.5, Viscosity: 0.08, Adhesion: 0.05,
		StaticFriction: 0.5, KineticFriction: 0.35, FrictionTransition: 0.2, StickVelocity: 0.03,
		Elasticity:        0.15,
		PressureDiffusion: 0.25, InjectionWeight: 0.9, DynamicWeight: 0.7,
	},
	Metal: {
		Density: 7.8, Viscosity: 0, Adhesion: 0.25,
		StaticFriction: 0.7, KineticFriction: 0.5, FrictionTransition: 0.15, StickVelocity: 0.02,
		Elasticity:        0.6,
		PressureDiffusion: 0.02, InjectionWeight: 1.0, DynamicWeight: 0.3,
	},
	Leaf: {
		Density: 0.2, Viscosity: 0, Adhesion: 0.4,
		StaticFriction: 0.55, KineticFriction: 0.4, FrictionTransition: 0.3, StickVelocity: 0.06,
		Elasticity:        0.2,
		PressureDiffusion: 0.05, InjectionWeight: 0.3, DynamicWeight: 0.3,
	},
	Wall: {
		Density: 10, Viscosity: 0, Adhesion: 0.3,
		StaticFriction: 0.9, KineticFriction: 0.7, FrictionTransition: 0.1, StickVelocity: 0.02,
		Elasticity:        0.5,
		PressureDiffusion: 0, InjectionWeight: 0, DynamicWeight: 0,
	},
	Root: {
		Density: 0.4, Viscosity: 0, Adhesion: 0.5,
		StaticFriction: 0.65, KineticFriction: 0.5, FrictionTransition: 0.25, StickVelocity: 0.05,
		Elasticity:        0.25,
		PressureDiffusion: 0.05, InjectionWeight: 0.4, DynamicWeight: 0.4,
	},
	Seed: {
		Density: 0.5, Viscosity: 0, Adhesion: 0.2,
		StaticFriction: 0.45, KineticFriction: 0.35, FrictionTransition: 0.2, StickVelocity: 0.04,
		Elasticity:        0.3,
		PressureDiffusion: 0.05, InjectionWeight: 0.5, DynamicWeight: 0.5,
	},
}

func clampTag(m Material) Material {
	if m >= Count {
		return Air
	}
	return m
}

// Props returns the property entry for the material. Unknown tags map to Air.
func Props(m Material) *Properties {
	return &props[clampTag(m)]
}

// Density is a shorthand for Props(m).Density.
func (m Material) Density() float64 { return props[clampTag(m)].Density }

// ByName resolves a material from its lower-case name. The boolean reports
// whether the name was recognized.
func ByName(name string) (Material, bool) {
	for i, n := range names {
		if n == name {
			return Material(i), true
		}
	}
	return Air, false
}
