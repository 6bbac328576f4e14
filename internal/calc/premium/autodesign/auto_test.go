package autodesign

import (
	"math"
	"testing"

	egg "Ovoid/internal/calc/egg"
)

func TestEggHitsTargetMass(t *testing.T) {
	in := EggAutoInput{
		Egg:         egg.Input{LengthMM: 58, WidthMM: 40, DiameterL4MM: 25, ShapeN: 2},
		DensityGCM3: 1.031,
		TargetMassG: 60,
	}
	res, err := Egg(in)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.MassG-60)/60 > 1e-4 {
		t.Errorf("mass = %g g, want 60", res.MassG)
	}
	ratio := res.Egg.LengthMM / in.Egg.LengthMM
	if math.Abs(res.Egg.WidthMM/in.Egg.WidthMM-ratio) > 1e-12 {
		t.Error("scaling changed the proportions")
	}
	if res.Egg.ShapeN != in.Egg.ShapeN {
		t.Error("shape exponent must not scale")
	}
}

func TestEggInvalidTarget(t *testing.T) {
	in := EggAutoInput{
		Egg:         egg.Input{LengthMM: 58, WidthMM: 40, DiameterL4MM: 25, ShapeN: 2},
		TargetMassG: 0,
	}
	if _, err := Egg(in); err == nil {
		t.Error("expected error for zero target mass")
	}
}
