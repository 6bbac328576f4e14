package egg

import (
	"math"
	"testing"
)

func TestSampleCurveDefaults(t *testing.T) {
	c, err := SampleCurve(chicken, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.X) != DefaultPreviewPoints || len(c.Upper) != DefaultPreviewPoints || len(c.Lower) != DefaultPreviewPoints {
		t.Fatalf("point counts = %d/%d/%d, want %d", len(c.X), len(c.Upper), len(c.Lower), DefaultPreviewPoints)
	}
	a := chicken.LengthMM / 2
	if c.X[0] != -a || c.X[len(c.X)-1] != a {
		t.Errorf("axial range [%g, %g], want [%g, %g]", c.X[0], c.X[len(c.X)-1], -a, a)
	}
}

func TestSampleCurveRescaledToWidth(t *testing.T) {
	c, err := SampleCurve(chicken, 500)
	if err != nil {
		t.Fatal(err)
	}
	maxY := 0.0
	for _, y := range c.Upper {
		maxY = math.Max(maxY, y)
	}
	if !relNearly(2*maxY, chicken.WidthMM, 1e-6) {
		t.Errorf("rescaled max diameter = %g, want %g", 2*maxY, chicken.WidthMM)
	}
}

func TestSampleCurveLowerMirrorsUpper(t *testing.T) {
	c, err := SampleCurve(chicken, 200)
	if err != nil {
		t.Fatal(err)
	}
	for i := range c.Upper {
		if c.Lower[i] != -c.Upper[i] {
			t.Fatalf("lower[%d] = %g, want %g", i, c.Lower[i], -c.Upper[i])
		}
	}
}

func TestSampleCurveInvalidInput(t *testing.T) {
	if _, err := SampleCurve(Input{LengthMM: -1, WidthMM: 1}, 0); err == nil {
		t.Error("expected error for L<0")
	}
}
