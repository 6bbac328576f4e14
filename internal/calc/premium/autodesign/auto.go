package autodesign

import (
	"fmt"
	"math"

	egg "Ovoid/internal/calc/egg"
)

type EggAutoInput struct {
	Egg         egg.Input `json:"egg"`
	DensityGCM3 float64   `json:"density_g_cm3"`
	TargetMassG float64   `json:"target_mass_g"`
}

type EggAutoResult struct {
	Egg         egg.Input `json:"egg"`
	ScaleFactor float64   `json:"scale_factor"`
	VolumeCM3   float64   `json:"volume_cm3"`
	MassG       float64   `json:"mass_g"`
	Notes       string    `json:"notes"`
}

// Egg scales the base shape uniformly so its mass at the given density hits
// the target. Volume grows with the cube of the linear scale, so the factor
// is the cube root of the mass ratio; proportions are untouched.
func Egg(in EggAutoInput) (EggAutoResult, error) {
	if in.TargetMassG <= 0 {
		return EggAutoResult{}, fmt.Errorf("target mass must be positive")
	}
	if in.DensityGCM3 <= 0 {
		in.DensityGCM3 = 1.031
	}
	baseMass, err := egg.Mass(in.Egg, in.DensityGCM3)
	if err != nil {
		return EggAutoResult{}, err
	}
	factor := math.Cbrt(in.TargetMassG / baseMass)
	scaled := egg.Input{
		LengthMM:     in.Egg.LengthMM * factor,
		WidthMM:      in.Egg.WidthMM * factor,
		DiameterL4MM: in.Egg.DiameterL4MM * factor,
		ShapeN:       in.Egg.ShapeN,
	}
	v, err := egg.VolumeCM3(scaled)
	if err != nil {
		return EggAutoResult{}, err
	}
	return EggAutoResult{
		Egg:         scaled,
		ScaleFactor: factor,
		VolumeCM3:   v,
		MassG:       v * in.DensityGCM3,
		Notes:       "Uniformly scaled to reach the target mass.",
	}, nil
}
