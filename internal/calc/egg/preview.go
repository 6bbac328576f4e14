package egg

import "fmt"

// DefaultPreviewPoints is the axial sample count used when the caller does
// not ask for a specific resolution.
const DefaultPreviewPoints = 1000

// Curve is the 2D cross-section preview: upper and lower profile halves on a
// uniform axial grid, rescaled so max(Upper)*2 equals the requested width.
type Curve struct {
	X     []float64 `json:"x"`
	Upper []float64 `json:"upper"`
	Lower []float64 `json:"lower"`
	Scale float64   `json:"scale"`
}

// SampleCurve evaluates the profile on nPoints uniform axial samples.
// nPoints <= 1 selects DefaultPreviewPoints. The rescale is computed from
// this sampling's own maximum, independent of any mesh build.
func SampleCurve(in Input, nPoints int) (Curve, error) {
	if err := in.validate(); err != nil {
		return Curve{}, err
	}
	if nPoints <= 1 {
		nPoints = DefaultPreviewPoints
	}
	a := in.LengthMM / 2
	xs := make([]float64, nPoints)
	ys := make([]float64, nPoints)
	maxY := 0.0
	for i := 0; i < nPoints; i++ {
		xs[i] = -a + in.LengthMM*float64(i)/float64(nPoints-1)
		ys[i] = radius(xs[i], in)
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}
	if maxY <= 0 {
		return Curve{}, fmt.Errorf("profile collapsed to the axis")
	}
	scale := in.WidthMM / (2 * maxY)
	lower := make([]float64, nPoints)
	for i := range ys {
		ys[i] *= scale
		lower[i] = -ys[i]
	}
	return Curve{X: xs, Upper: ys, Lower: lower, Scale: scale}, nil
}
