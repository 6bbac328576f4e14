package egg

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestWriteSTLLayout(t *testing.T) {
	in := Input{LengthMM: 10, WidthMM: 8, DiameterL4MM: 5, ShapeN: 1}
	m, err := BuildMesh(in)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteSTL(&buf, m); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	wantLen := 84 + 50*m.FaceCount()
	if len(data) != wantLen {
		t.Fatalf("encoded length = %d, want %d", len(data), wantLen)
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	if int(count) != m.FaceCount() {
		t.Errorf("triangle count field = %d, want %d", count, m.FaceCount())
	}

	// first facet: zeroed normal, then the face's three vertices
	for i := 0; i < 12; i++ {
		if data[84+i] != 0 {
			t.Fatalf("normal byte %d nonzero", i)
		}
	}
	x0 := math.Float32frombits(binary.LittleEndian.Uint32(data[96:100]))
	if !nearly(float64(x0), m.Vertices[m.Faces[0][0]].X, 1e-6) {
		t.Errorf("first vertex x = %g, want %g", x0, m.Vertices[m.Faces[0][0]].X)
	}
	attr := binary.LittleEndian.Uint16(data[84+48 : 84+50])
	if attr != 0 {
		t.Errorf("attribute field = %d, want 0", attr)
	}
}

func TestWriteSTLDeterministic(t *testing.T) {
	in := Input{LengthMM: 10, WidthMM: 8, DiameterL4MM: 5, ShapeN: 1}
	var a, b bytes.Buffer
	m1, err := BuildMesh(in)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := BuildMesh(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteSTL(&a, m1); err != nil {
		t.Fatal(err)
	}
	if err := WriteSTL(&b, m2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical parameters produced different STL bytes")
	}
}

func TestWriteSTLEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, nil); err == nil {
		t.Error("expected error for nil mesh")
	}
	if err := WriteSTL(&buf, &Mesh{}); err == nil {
		t.Error("expected error for empty mesh")
	}
}
