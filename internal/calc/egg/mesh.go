package egg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a closed triangulated surface of revolution. Vertices form an
// NTheta×NX grid flattened row-by-row (vertex i*NX+j sits at angular ring i,
// axial station j). The first and last angular rings coincide: the seam is
// closed by duplicate coordinates, not by shared indices.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
	NX       int
	NTheta   int
}

func (m *Mesh) VertexCount() int { return len(m.Vertices) }

func (m *Mesh) FaceCount() int { return len(m.Faces) }

// MaxDiameter returns twice the largest radial distance from the axis of
// revolution. After rescaling this equals the requested width.
func (m *Mesh) MaxDiameter() float64 {
	max := 0.0
	for _, v := range m.Vertices {
		r := math.Hypot(v.Y, v.Z)
		if r > max {
			max = r
		}
	}
	return 2 * max
}

// BuildMesh samples the profile on a cosine-spaced axial grid and a uniform
// angular grid, rescales so the mesh's maximum diameter equals the requested
// width exactly, revolves the profile about the x axis and splits every grid
// quad into two triangles with consistent winding.
//
// Sample counts grow with physical size: n_x = round(B*1.16)+50,
// n_theta = round(L*1.16)+50. Cosine spacing clusters axial stations at the
// poles, where the envelope's slope is infinite and uniform spacing would
// facet the tips.
func BuildMesh(in Input) (*Mesh, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	nx := int(math.Round(in.WidthMM*1.16)) + 50
	ntheta := int(math.Round(in.LengthMM*1.16)) + 50
	a := in.LengthMM / 2

	xs := make([]float64, nx)
	rs := make([]float64, nx)
	maxR := 0.0
	for j := 0; j < nx; j++ {
		t := math.Pi * float64(j) / float64(nx-1)
		xs[j] = a * math.Cos(t)
		rs[j] = radius(xs[j], in)
		if rs[j] > maxR {
			maxR = rs[j]
		}
	}
	if maxR <= 0 {
		return nil, fmt.Errorf("profile collapsed to the axis, nothing to revolve")
	}

	// The raw maximum diameter is not guaranteed to equal B; one uniform
	// rescale makes the output width exact. Length is exact by construction.
	scale := in.WidthMM / (2 * maxR)
	for j := range rs {
		rs[j] *= scale
	}

	verts := make([]r3.Vec, 0, ntheta*nx)
	for i := 0; i < ntheta; i++ {
		theta := 2 * math.Pi * float64(i) / float64(ntheta-1)
		sin, cos := math.Sincos(theta)
		for j := 0; j < nx; j++ {
			verts = append(verts, r3.Vec{X: xs[j], Y: rs[j] * cos, Z: rs[j] * sin})
		}
	}

	faces := make([][3]int, 0, 2*(ntheta-1)*(nx-1))
	for i := 0; i < ntheta-1; i++ {
		for j := 0; j < nx-1; j++ {
			v0 := i*nx + j
			v1 := v0 + 1
			v2 := (i+1)*nx + j
			v3 := v2 + 1
			faces = append(faces, [3]int{v0, v1, v2}, [3]int{v1, v3, v2})
		}
	}

	return &Mesh{Vertices: verts, Faces: faces, NX: nx, NTheta: ntheta}, nil
}
