package batch

import (
	"fmt"

	egg "Ovoid/internal/calc/egg"
)

type EggBatchInput struct {
	DensityGCM3 float64     `json:"density_g_cm3"`
	Items       []egg.Input `json:"items"`
}

type EggBatchItem struct {
	Egg       egg.Input `json:"egg"`
	VolumeCM3 float64   `json:"volume_cm3"`
	MassG     float64   `json:"mass_g"`
}

type EggBatchResult struct {
	Results []EggBatchItem `json:"results"`
}

func CalculateEggs(in EggBatchInput) (EggBatchResult, error) {
	if len(in.Items) == 0 {
		return EggBatchResult{}, fmt.Errorf("no items")
	}
	if in.DensityGCM3 <= 0 {
		in.DensityGCM3 = 1.031
	}
	out := EggBatchResult{Results: make([]EggBatchItem, 0, len(in.Items))}
	for _, item := range in.Items {
		v, err := egg.VolumeCM3(item)
		if err != nil {
			return EggBatchResult{}, err
		}
		out.Results = append(out.Results, EggBatchItem{
			Egg:       item,
			VolumeCM3: v,
			MassG:     v * in.DensityGCM3,
		})
	}
	return out, nil
}
