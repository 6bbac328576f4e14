package recommend

import (
	"fmt"
	"math"

	egg "Ovoid/internal/calc/egg"
)

type PrintRecommendInput struct {
	Egg         egg.Input `json:"egg"`
	NozzleMM    float64   `json:"nozzle_mm"`
	DensityGCM3 float64   `json:"density_g_cm3"`
}

type PrintRecommendResult struct {
	WallCount     int     `json:"wall_count"`
	WallMM        float64 `json:"wall_mm"`
	InfillPercent float64 `json:"infill_percent"`
	MassG         float64 `json:"mass_g"`
	Notes         string  `json:"notes"`
}

// Print suggests slicer settings for the egg: wall thickness grows with the
// width so large shells stay rigid, and infill drops as volume grows.
func Print(in PrintRecommendInput) (PrintRecommendResult, error) {
	if in.NozzleMM <= 0 {
		in.NozzleMM = 0.4
	}
	if in.DensityGCM3 <= 0 {
		in.DensityGCM3 = 1.24 // PLA
	}
	mass, err := egg.Mass(in.Egg, in.DensityGCM3)
	if err != nil {
		return PrintRecommendResult{}, err
	}
	wall := math.Max(0.8, in.Egg.WidthMM/50)
	walls := int(math.Ceil(wall / in.NozzleMM))
	if walls < 2 {
		walls = 2
	}
	infill := 20 - in.Egg.WidthMM/10
	if infill < 5 {
		infill = 5
	}
	return PrintRecommendResult{
		WallCount:     walls,
		WallMM:        float64(walls) * in.NozzleMM,
		InfillPercent: infill,
		MassG:         mass,
		Notes:         fmt.Sprintf("For a %.1f mm nozzle; solid mass shown, slicer infill reduces it.", in.NozzleMM),
	}, nil
}
