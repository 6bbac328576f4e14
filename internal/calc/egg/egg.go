package egg

import (
	"fmt"
	"math"
)

// Input holds the four shape parameters of an egg profile.
// All linear dimensions are millimeters.
type Input struct {
	LengthMM     float64 `json:"length_mm"` // L, tip-to-tip length
	WidthMM      float64 `json:"width_mm"`  // B, maximum diameter
	DiameterL4MM float64 `json:"d_l4_mm"`   // diameter at the quarter-length point
	ShapeN       float64 `json:"n"`         // free shape exponent
}

func (in Input) validate() error {
	if in.LengthMM <= 0 {
		return fmt.Errorf("length must be positive, got %g", in.LengthMM)
	}
	if in.WidthMM <= 0 {
		return fmt.Errorf("width must be positive, got %g", in.WidthMM)
	}
	return nil
}

// Radius returns the profile half-width at axial position x, for x in
// [-L/2, L/2]. The profile is a half-ellipse envelope modulated by a
// quadratic, so the radius is exactly zero at both poles. D_L4 and n are
// deliberately unrestricted: out-of-nominal values give unusual but
// well-defined shapes.
func Radius(x float64, in Input) (float64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	a := in.LengthMM / 2
	if math.Abs(x) > a {
		return 0, fmt.Errorf("x=%g outside profile domain [%g, %g]", x, -a, a)
	}
	return radius(x, in), nil
}

// radius assumes a validated Input and x within [-L/2, L/2].
func radius(x float64, in Input) float64 {
	a := in.LengthMM / 2
	b := in.WidthMM / 2
	k := in.DiameterL4MM/in.LengthMM - 0.5
	c := in.ShapeN / 10
	u := x / a
	env := 1 - u*u
	if env < 0 {
		// rounding can push the radicand just below zero at the poles
		env = 0
	}
	return b * math.Sqrt(env) * (1 + c*u + k*u*u)
}
