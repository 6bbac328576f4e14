package egg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// relative agreement between successive quadrature refinements
const volumeRelTol = 1e-6

// Volume returns the enclosed volume in mm³ using the disk method:
// V = ∫ π r(x)² dx over [-L/2, L/2]. The raw profile is integrated, not the
// display-rescaled one; rescaling is a rendering concern.
func Volume(in Input) (float64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	a := in.LengthMM / 2
	f := func(x float64) float64 {
		r := radius(x, in)
		return math.Pi * r * r
	}
	n := 16
	prev := quad.Fixed(f, -a, a, n, nil, 0)
	for i := 0; i < 12; i++ {
		n *= 2
		v := quad.Fixed(f, -a, a, n, nil, 0)
		if math.Abs(v-prev) <= volumeRelTol*math.Abs(v) {
			return v, nil
		}
		prev = v
	}
	return prev, nil
}

// VolumeCM3 is Volume converted from mm³ to cm³.
func VolumeCM3(in Input) (float64, error) {
	v, err := Volume(in)
	if err != nil {
		return 0, err
	}
	return v / 1000, nil
}

// Mass returns the mass in grams for a homogeneous fill of the given
// density (g/cm³).
func Mass(in Input, densityGCM3 float64) (float64, error) {
	if densityGCM3 <= 0 {
		return 0, fmt.Errorf("density must be positive, got %g", densityGCM3)
	}
	v, err := VolumeCM3(in)
	if err != nil {
		return 0, err
	}
	return v * densityGCM3, nil
}
