package navmesh

import (
	"fmt"

	"github.com/Faultbox/midgard-nav/pkg/formats"
	"github.com/Faultbox/midgard-nav/pkg/math"
)

// CreateFromBuffer decodes a NAVM buffer and builds a mesh from it.
func CreateFromBuffer(data []byte) (*NavigationMesh, error) {
	navm, err := formats.ParseNAVM(data)
	if err != nil {
		return nil, fmt.Errorf("parsing navigation mesh: %w", err)
	}
	return FromNAVM(navm)
}

// CreateFromFile loads a NAVM file from disk and builds a mesh from it.
func CreateFromFile(path string) (*NavigationMesh, error) {
	navm, err := formats.ParseNAVMFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading navigation mesh %s: %w", path, err)
	}
	return FromNAVM(navm)
}

// FromNAVM converts decoded file records into a validated mesh.
func FromNAVM(navm *formats.NAVM) (*NavigationMesh, error) {
	data := Data{
		Vertices: make([]Vertex, len(navm.Vertices)),
		Edges:    make([]Edge, len(navm.Edges)),
		Faces:    make([]Face, len(navm.Faces)),
		Gravity:  math.Vec3FromArray(navm.Gravity),
	}
	for i, v := range navm.Vertices {
		data.Vertices[i] = math.Vec3FromArray(v.Position)
	}
	for i, e := range navm.Edges {
		data.Edges[i] = Edge{Vertex: e.Vertices, Face: e.Faces}
	}
	for i, f := range navm.Faces {
		data.Faces[i] = Face{
			Vertex: f.Vertices,
			Edge:   f.Edges,
			Normal: math.Vec3FromArray(f.Normal),
			Center: math.Vec3FromArray(f.Center),
		}
	}
	return New(data)
}

// NAVM converts the mesh back into file records, ready for Encode.
func (m *NavigationMesh) NAVM() *formats.NAVM {
	navm := &formats.NAVM{
		Version:  formats.NAVMVersion10,
		Gravity:  m.gravity.Array(),
		Vertices: make([]formats.NAVMVertex, len(m.vertices)),
		Edges:    make([]formats.NAVMEdge, len(m.edges)),
		Faces:    make([]formats.NAVMFace, len(m.faces)),
	}
	for i, v := range m.vertices {
		navm.Vertices[i] = formats.NAVMVertex{Position: v.Array()}
	}
	for i, e := range m.edges {
		navm.Edges[i] = formats.NAVMEdge{Vertices: e.Vertex, Faces: e.Face}
	}
	for i, f := range m.faces {
		navm.Faces[i] = formats.NAVMFace{
			Vertices: f.Vertex,
			Edges:    f.Edge,
			Normal:   f.Normal.Array(),
			Center:   f.Center.Array(),
		}
	}
	return navm
}
