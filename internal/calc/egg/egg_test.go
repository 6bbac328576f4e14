package egg

import (
	"math"
	"testing"
)

func nearly(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func relNearly(a, b, rel float64) bool {
	if b == 0 {
		return math.Abs(a) <= rel
	}
	return math.Abs(a-b) <= rel*math.Abs(b)
}

var chicken = Input{LengthMM: 58, WidthMM: 40, DiameterL4MM: 25, ShapeN: 2}

func TestRadiusClosesAtPoles(t *testing.T) {
	cases := []Input{
		chicken,
		{LengthMM: 30, WidthMM: 24, DiameterL4MM: 15, ShapeN: 1.8},
		{LengthMM: 1, WidthMM: 1, DiameterL4MM: 0.5, ShapeN: 0},
		{LengthMM: 155, WidthMM: 130, DiameterL4MM: 83, ShapeN: 1.5},
	}
	for _, in := range cases {
		a := in.LengthMM / 2
		for _, x := range []float64{-a, a} {
			r, err := Radius(x, in)
			if err != nil {
				t.Fatalf("Radius(%g, %+v): %v", x, in, err)
			}
			if !nearly(r, 0, 1e-12) {
				t.Errorf("Radius(%g, %+v) = %g, want 0", x, in, r)
			}
		}
	}
}

func TestRadiusSymmetricWhenShapeZero(t *testing.T) {
	in := Input{LengthMM: 58, WidthMM: 40, DiameterL4MM: 25, ShapeN: 0}
	a := in.LengthMM / 2
	for i := 0; i <= 100; i++ {
		x := a * float64(i) / 100
		rp, err := Radius(x, in)
		if err != nil {
			t.Fatal(err)
		}
		rn, err := Radius(-x, in)
		if err != nil {
			t.Fatal(err)
		}
		if !nearly(rp, rn, 1e-12) {
			t.Fatalf("n=0 profile asymmetric at x=%g: %g vs %g", x, rp, rn)
		}
	}
}

func TestRadiusOutsideDomain(t *testing.T) {
	if _, err := Radius(29.5, chicken); err == nil {
		t.Error("expected error for x beyond L/2")
	}
	if _, err := Radius(-29.5, chicken); err == nil {
		t.Error("expected error for x before -L/2")
	}
}

func TestRadiusInvalidInput(t *testing.T) {
	bad := []Input{
		{LengthMM: 0, WidthMM: 40},
		{LengthMM: -58, WidthMM: 40},
		{LengthMM: 58, WidthMM: 0},
		{LengthMM: 58, WidthMM: -40},
	}
	for _, in := range bad {
		if _, err := Radius(0, in); err == nil {
			t.Errorf("expected error for %+v", in)
		}
	}
}

// D_L4 beyond the nominal bound of B is unusual but must stay well-defined.
func TestRadiusPermissiveParameters(t *testing.T) {
	in := Input{LengthMM: 58, WidthMM: 40, DiameterL4MM: 55, ShapeN: -3}
	a := in.LengthMM / 2
	for i := 0; i <= 50; i++ {
		x := -a + in.LengthMM*float64(i)/50
		r, err := Radius(x, in)
		if err != nil {
			t.Fatal(err)
		}
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Fatalf("non-finite radius %g at x=%g", r, x)
		}
	}
}
