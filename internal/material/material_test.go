package material

import "testing"

func TestByNameRoundTrip(t *testing.T) {
	for m := Air; m < Count; m++ {
		got, ok := ByName(m.String())
		if !ok {
			t.Fatalf("name %q not recognized", m.String())
		}
		if got != m {
			t.Fatalf("name %q resolved to %v, want %v", m.String(), got, m)
		}
	}
	if _, ok := ByName("plasma"); ok {
		t.Fatal("unknown name must not resolve")
	}
}

func TestAirIsInert(t *testing.T) {
	p := Props(Air)
	if p.Density != 0 || p.Viscosity != 0 || p.Adhesion != 0 {
		t.Fatal("air must carry zero physical coefficients")
	}
	if !Air.IsEmpty() {
		t.Fatal("air must be the empty state")
	}
}

func TestFluidFlags(t *testing.T) {
	if !Water.IsFluid() {
		t.Fatal("water must be a fluid")
	}
	for _, m := range []Material{Dirt, Wood, Sand, Metal, Wall} {
		if m.IsFluid() {
			t.Fatalf("%v must not be a fluid", m)
		}
	}
}

func TestWallIsImmovable(t *testing.T) {
	if !Wall.IsWall() {
		t.Fatal("wall flag missing")
	}
	if Props(Wall).InjectionWeight != 0 {
		t.Fatal("walls must not inject hydrostatic pressure")
	}
}

func TestUnknownTagMapsToAir(t *testing.T) {
	if Props(Material(250)) != Props(Air) {
		t.Fatal("out-of-range tag must fall back to air properties")
	}
}
