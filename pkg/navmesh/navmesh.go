// Package navmesh holds a baked navigation mesh and answers floor queries
// against it.
//
// The mesh is an arena of vertices, edges and triangular faces referenced
// by uint16 index. NullFace and NullEdge mark absent references. All
// geometry lives in the mesh's local space (the space it was exported in);
// SetSceneTransform places the mesh into a larger scene and every query
// that takes or returns a position works in that scene space.
//
// A NavigationMesh is immutable after construction except for the scene
// transform. Concurrent queries are safe as long as no goroutine calls
// SetSceneTransform at the same time.
package navmesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-nav/pkg/math"
)

// Reserved index values.
const (
	NullFace uint16 = 0xffff // Represents an absent face
	NullEdge uint16 = 0xffff // Represents an absent edge
)

// Mesh construction errors.
var (
	ErrInvalidMesh     = errors.New("invalid navigation mesh")
	ErrNonManifoldEdge = errors.New("edge shared by more than two faces")
)

// Vertex is a point in mesh local space.
type Vertex = math.Vec3

// Edge connects two vertices and records the faces on each side.
// A boundary edge has NullFace in one slot.
type Edge struct {
	Vertex [2]uint16
	Face   [2]uint16
}

// Other returns the face on the opposite side of the edge from face,
// or NullFace for a boundary edge.
func (e *Edge) Other(face uint16) uint16 {
	if e.Face[0] == face {
		return e.Face[1]
	}
	return e.Face[0]
}

// Face is a triangle. Edge[i] connects Vertex[i] and Vertex[(i+1)%3].
type Face struct {
	Vertex [3]uint16
	Edge   [3]uint16
	Normal math.Vec3 // Unit normal
	Center math.Vec3 // Centroid of the three vertices
}

// Data is the decoded content of a navigation mesh, as supplied by a loader.
type Data struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
	Gravity  math.Vec3 // Points down, in local space
}

// NavigationMesh is a set of connected triangular faces.
type NavigationMesh struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face
	gravity  math.Vec3

	transform        math.Mat4
	inverseTransform math.Mat4
}

// New validates data and builds a mesh from a copy of it. The scene
// transform starts as identity.
func New(data Data) (*NavigationMesh, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	m := &NavigationMesh{
		vertices:         append([]Vertex(nil), data.Vertices...),
		edges:            append([]Edge(nil), data.Edges...),
		faces:            append([]Face(nil), data.Faces...),
		gravity:          data.Gravity,
		transform:        math.Identity(),
		inverseTransform: math.Identity(),
	}
	return m, nil
}

// validate checks index ranges and face/edge adjacency symmetry.
func validate(data Data) error {
	vertexCount := len(data.Vertices)
	edgeCount := len(data.Edges)
	faceCount := len(data.Faces)

	if vertexCount >= int(NullFace) || edgeCount >= int(NullEdge) || faceCount >= int(NullFace) {
		return fmt.Errorf("%w: %d vertices, %d edges, %d faces exceeds index range",
			ErrInvalidMesh, vertexCount, edgeCount, faceCount)
	}

	for i, e := range data.Edges {
		for _, v := range e.Vertex {
			if int(v) >= vertexCount {
				return fmt.Errorf("%w: edge %d references vertex %d of %d", ErrInvalidMesh, i, v, vertexCount)
			}
		}
		for _, f := range e.Face {
			if f != NullFace && int(f) >= faceCount {
				return fmt.Errorf("%w: edge %d references face %d of %d", ErrInvalidMesh, i, f, faceCount)
			}
		}
	}

	for i, f := range data.Faces {
		for _, v := range f.Vertex {
			if int(v) >= vertexCount {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, v, vertexCount)
			}
		}
		for _, ei := range f.Edge {
			if int(ei) >= edgeCount {
				return fmt.Errorf("%w: face %d references edge %d of %d", ErrInvalidMesh, i, ei, edgeCount)
			}
			e := data.Edges[ei]
			if e.Face[0] != uint16(i) && e.Face[1] != uint16(i) {
				return fmt.Errorf("%w: edge %d does not list face %d", ErrInvalidMesh, ei, i)
			}
		}
	}
	return nil
}

// FaceCount returns the total number of faces.
func (m *NavigationMesh) FaceCount() uint32 {
	return uint32(len(m.faces))
}

// EdgeCount returns the total number of edges.
func (m *NavigationMesh) EdgeCount() uint32 {
	return uint32(len(m.edges))
}

// VertexCount returns the total number of vertices.
func (m *NavigationMesh) VertexCount() uint32 {
	return uint32(len(m.vertices))
}

// GetFace returns the face at index, or nil if out of range.
// The returned face must not be modified.
func (m *NavigationMesh) GetFace(index int) *Face {
	if index < 0 || index >= len(m.faces) {
		return nil
	}
	return &m.faces[index]
}

// GetEdge returns the edge at index, or nil if out of range.
// The returned edge must not be modified.
func (m *NavigationMesh) GetEdge(index int) *Edge {
	if index < 0 || index >= len(m.edges) {
		return nil
	}
	return &m.edges[index]
}

// GetVertex returns the vertex at index, or nil if out of range.
// The returned vertex must not be modified.
func (m *NavigationMesh) GetVertex(index int) *Vertex {
	if index < 0 || index >= len(m.vertices) {
		return nil
	}
	return &m.vertices[index]
}

// GravityVector returns the down direction in local space. It is not
// affected by the scene transform.
func (m *NavigationMesh) GravityVector() math.Vec3 {
	return m.gravity
}

// Bounds returns the local-space bounding box of all vertices.
func (m *NavigationMesh) Bounds() math.AABB {
	box := math.EmptyAABB()
	for _, v := range m.vertices {
		box = box.Extend(v)
	}
	return box
}

// faceVertices returns the three corner positions of f in local space.
func (m *NavigationMesh) faceVertices(f *Face) (a, b, c math.Vec3) {
	return m.vertices[f.Vertex[0]], m.vertices[f.Vertex[1]], m.vertices[f.Vertex[2]]
}
