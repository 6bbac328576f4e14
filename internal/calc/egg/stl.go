package egg

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const stlHeaderTag = "Ovoid parametric egg"

// stlFacet is one 50-byte binary STL record: normal, three vertices, and a
// two-byte attribute field.
type stlFacet struct {
	Normal [3]float32
	Verts  [3][3]float32
	Attr   uint16
}

// WriteSTL encodes the mesh as binary little-endian STL: an 80-byte header,
// a uint32 triangle count and one facet record per face, in face order.
// Normals are left zeroed; slicers derive orientation from the consistent
// vertex winding.
func WriteSTL(w io.Writer, m *Mesh) error {
	if m == nil || len(m.Faces) == 0 {
		return fmt.Errorf("empty mesh")
	}
	bw := bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], stlHeaderTag)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Faces))); err != nil {
		return err
	}
	for _, f := range m.Faces {
		var rec stlFacet
		for i, idx := range f {
			v := m.Vertices[idx]
			rec.Verts[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}
