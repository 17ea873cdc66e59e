package navmesh

import (
	"fmt"

	"github.com/Faultbox/midgard-nav/pkg/math"
)

// edgeKey identifies an undirected edge by its sorted vertex pair.
type edgeKey struct {
	a, b uint16
}

func makeEdgeKey(a, b uint16) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// FromTriangles builds a mesh from an indexed triangle list, deriving edges,
// face adjacency, unit normals and centroids. Edge i of each face runs from
// its vertex i to vertex (i+1)%3. Edges are numbered in order of first use.
// A triangle with a repeated vertex, or an edge claimed by a third face, is
// rejected.
func FromTriangles(vertices []Vertex, triangles [][3]uint16, gravity math.Vec3) (*NavigationMesh, error) {
	if len(triangles) >= int(NullFace) {
		return nil, fmt.Errorf("%w: %d triangles exceeds index range", ErrInvalidMesh, len(triangles))
	}

	edges := make([]Edge, 0, len(triangles)*3/2+1)
	faces := make([]Face, len(triangles))
	lookup := make(map[edgeKey]uint16, cap(edges))

	for fi, tri := range triangles {
		for _, v := range tri {
			if int(v) >= len(vertices) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrInvalidMesh, fi, v, len(vertices))
			}
		}

		face := &faces[fi]
		face.Vertex = tri

		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a == b {
				return nil, fmt.Errorf("%w: triangle %d repeats vertex %d", ErrInvalidMesh, fi, a)
			}

			key := makeEdgeKey(a, b)
			ei, ok := lookup[key]
			if !ok {
				if len(edges) >= int(NullEdge) {
					return nil, fmt.Errorf("%w: edge count exceeds index range", ErrInvalidMesh)
				}
				ei = uint16(len(edges))
				edges = append(edges, Edge{
					Vertex: [2]uint16{a, b},
					Face:   [2]uint16{uint16(fi), NullFace},
				})
				lookup[key] = ei
			} else {
				e := &edges[ei]
				if e.Face[1] != NullFace {
					return nil, fmt.Errorf("%w: vertices %d-%d", ErrNonManifoldEdge, a, b)
				}
				e.Face[1] = uint16(fi)
			}
			face.Edge[i] = ei
		}

		pa, pb, pc := vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]
		face.Normal = pb.Sub(pa).Cross(pc.Sub(pa)).Normalize()
		face.Center = pa.Add(pb).Add(pc).Scale(1.0 / 3.0)
	}

	return New(Data{
		Vertices: vertices,
		Edges:    edges,
		Faces:    faces,
		Gravity:  gravity,
	})
}
