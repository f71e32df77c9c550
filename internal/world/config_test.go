package world

import "testing"

func TestFromMapDefaults(t *testing.T) {
	c := FromMap(nil)
	d := DefaultConfig()
	if c != d {
		t.Fatalf("nil map must yield defaults, got %+v", c)
	}
}

func TestFromMapParsesKeys(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                 "32",
		"h":                 "24",
		"seed":              "42",
		"gravity":           "4.5",
		"pressure_decay":    "0.2",
		"pressure_force":    "0.2",
		"diffuse_diagonal":  "false",
		"friction":          "false",
		"max_velocity":      "3",
		"adhesion_strength": "2.5",
	})
	if c.Width != 32 || c.Height != 24 || c.Seed != 42 {
		t.Fatalf("dimensions or seed wrong: %+v", c)
	}
	if c.Params.Gravity != 4.5 || c.Params.PressureDecay != 0.2 || c.Params.PressureForce != 0.2 {
		t.Fatalf("float params wrong: %+v", c.Params)
	}
	if c.Params.DiffuseDiagonal || c.Params.FrictionEnabled {
		t.Fatal("boolean params must parse")
	}
	if c.Params.MaxVelocity != 3 || c.Params.AdhesionStrength != 2.5 {
		t.Fatalf("remaining params wrong: %+v", c.Params)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "not-a-number",
		"h":       "-5",
		"gravity": "-1",
	})
	d := DefaultConfig()
	if c.Width != d.Width || c.Height != d.Height || c.Params.Gravity != d.Params.Gravity {
		t.Fatal("invalid values must fall back to defaults")
	}
}
