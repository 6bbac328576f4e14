package batch

import (
	"math"
	"testing"

	egg "Ovoid/internal/calc/egg"
)

func TestCalculateEggs(t *testing.T) {
	in := EggBatchInput{
		DensityGCM3: 1.031,
		Items: []egg.Input{
			{LengthMM: 58, WidthMM: 40, DiameterL4MM: 25, ShapeN: 2},
			{LengthMM: 30, WidthMM: 24, DiameterL4MM: 15, ShapeN: 1.8},
		},
	}
	res, err := CalculateEggs(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(res.Results))
	}
	for i, r := range res.Results {
		if r.VolumeCM3 <= 0 {
			t.Errorf("item %d: volume %g", i, r.VolumeCM3)
		}
		if math.Abs(r.MassG-r.VolumeCM3*1.031) > 1e-9 {
			t.Errorf("item %d: mass %g inconsistent with volume %g", i, r.MassG, r.VolumeCM3)
		}
	}
	if res.Results[0].VolumeCM3 <= res.Results[1].VolumeCM3 {
		t.Error("chicken egg should be larger than quail egg")
	}
}

func TestCalculateEggsEmpty(t *testing.T) {
	if _, err := CalculateEggs(EggBatchInput{}); err == nil {
		t.Error("expected error for empty batch")
	}
}

func TestCalculateEggsBadItem(t *testing.T) {
	in := EggBatchInput{Items: []egg.Input{{LengthMM: 0, WidthMM: 40}}}
	if _, err := CalculateEggs(in); err == nil {
		t.Error("expected error for invalid item")
	}
}
