package egg

import (
	"math"
	"testing"
)

// closedFormVolume expands the integrand analytically. With u = x/a the
// volume is πab²·∫(1-u²)(1+cu+ku²)²du over [-1,1], whose even part gives
// 4/3 + (c²+2k)·4/15 + k²·4/35.
func closedFormVolume(in Input) float64 {
	a := in.LengthMM / 2
	b := in.WidthMM / 2
	k := in.DiameterL4MM/in.LengthMM - 0.5
	c := in.ShapeN / 10
	return math.Pi * a * b * b * (4.0/3.0 + (c*c+2*k)*4.0/15.0 + k*k*4.0/35.0)
}

func TestVolumeProlateSpheroid(t *testing.T) {
	// D_L4 = L/2 and n = 0 degenerate to a perfect prolate spheroid.
	in := Input{LengthMM: 58, WidthMM: 40, DiameterL4MM: 29, ShapeN: 0}
	want := 4.0 / 3.0 * math.Pi * (in.LengthMM / 2) * (in.WidthMM / 2) * (in.WidthMM / 2)
	got, err := Volume(in)
	if err != nil {
		t.Fatal(err)
	}
	if !relNearly(got, want, 1e-6) {
		t.Errorf("spheroid volume = %g mm³, want %g", got, want)
	}
}

func TestVolumeMatchesClosedForm(t *testing.T) {
	cases := []Input{
		chicken,
		{LengthMM: 30, WidthMM: 24, DiameterL4MM: 15, ShapeN: 1.8},
		{LengthMM: 155, WidthMM: 130, DiameterL4MM: 83, ShapeN: 1.5},
		{LengthMM: 58, WidthMM: 40, DiameterL4MM: 55, ShapeN: -3},
	}
	for _, in := range cases {
		got, err := Volume(in)
		if err != nil {
			t.Fatal(err)
		}
		if !relNearly(got, closedFormVolume(in), 1e-6) {
			t.Errorf("%+v: volume = %g, closed form %g", in, got, closedFormVolume(in))
		}
	}
}

func TestVolumeChickenEgg(t *testing.T) {
	v, err := VolumeCM3(chicken)
	if err != nil {
		t.Fatal(err)
	}
	// a 58×40 mm egg encloses just under the 48.6 cm³ of its bounding spheroid
	if v < 45 || v > 50 {
		t.Errorf("chicken egg volume = %g cm³, want 45–50", v)
	}
	m, err := Mass(chicken, 1.031)
	if err != nil {
		t.Fatal(err)
	}
	if !relNearly(m, v*1.031, 1e-12) {
		t.Errorf("mass = %g g, want %g", m, v*1.031)
	}
}

func TestVolumeInvalidInput(t *testing.T) {
	if _, err := Volume(Input{LengthMM: 0, WidthMM: 40}); err == nil {
		t.Error("expected error for L=0")
	}
	if _, err := Mass(chicken, 0); err == nil {
		t.Error("expected error for zero density")
	}
	if _, err := Mass(chicken, -1); err == nil {
		t.Error("expected error for negative density")
	}
}
