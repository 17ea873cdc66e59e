// Package pathfinding finds routes across a navigation mesh.
//
// A PathFinder turns the faces of a navmesh.NavigationMesh into a graph
// (faces are nodes, shared edges are connections weighted by the distance
// between face centroids) and answers shortest-path queries on it. Results
// are lists of WayPoint values that an agent can follow.
//
// The graph is built once by New and never changes, so a PathFinder may be
// queried from several goroutines as long as the mesh's scene transform is
// not being changed concurrently.
package pathfinding

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-nav/pkg/math"
	"github.com/Faultbox/midgard-nav/pkg/navmesh"
)

// Construction errors.
var (
	ErrUnknownAlgorithm = errors.New("unknown path finding algorithm")
	ErrNilMesh          = errors.New("nil navigation mesh")
)

// PathFinder answers shortest-path queries over one navigation mesh.
type PathFinder struct {
	mesh      *navmesh.NavigationMesh
	graph     *graph
	algorithm Algorithm
	search    searchFunc
}

// New creates a path finder for mesh using the given algorithm.
// The mesh is referenced, not copied, and must outlive the path finder.
func New(mesh *navmesh.NavigationMesh, algorithm Algorithm) (*PathFinder, error) {
	if mesh == nil {
		return nil, ErrNilMesh
	}

	var search searchFunc
	switch algorithm {
	case Dijkstra:
		search = dijkstra
	case SPFA:
		search = spfa
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algorithm)
	}

	return &PathFinder{
		mesh:      mesh,
		graph:     buildGraph(mesh),
		algorithm: algorithm,
		search:    search,
	}, nil
}

// Algorithm returns the strategy the path finder was created with.
func (pf *PathFinder) Algorithm() Algorithm {
	return pf.algorithm
}

// Mesh returns the mesh the path finder routes over.
func (pf *PathFinder) Mesh() *navmesh.NavigationMesh {
	return pf.mesh
}

// FindRoute returns the face sequence of the shortest path from start to
// end together with its length (sum of centroid distances, local space).
// ok is false when either index is out of range or end is unreachable.
func (pf *PathFinder) FindRoute(start, end uint32) (faces []uint32, length float32, ok bool) {
	n := uint32(pf.graph.size())
	if start >= n || end >= n {
		return nil, 0, false
	}

	result := pf.search(pf.graph, start, end)
	faces = result.route(start, end)
	if faces == nil {
		return nil, 0, false
	}
	return faces, result.dist[end], true
}

// FindPath returns the shortest path between two faces as waypoints placed
// at each face's centroid. Start and end are included; when they are equal
// the path holds that single face. An empty result means no path exists.
func (pf *PathFinder) FindPath(start, end uint32) []WayPoint {
	faces, _, ok := pf.FindRoute(start, end)
	if !ok {
		return nil
	}

	path := make([]WayPoint, len(faces))
	for i, f := range faces {
		center, _ := pf.mesh.FaceCenter(f)
		path[i] = WayPoint{
			FaceIndex:         f,
			ScenePosition:     center,
			FaceLocalPosition: pf.mesh.FaceCenterLocalPosition(f),
		}
	}
	return path
}

// FindPathBetweenPoints resolves both scene-space points to the floor with
// NavigationMesh.FindFloor and returns the path between their faces. The
// first and last waypoints carry the floor positions themselves instead of
// face centroids. If both points land on the same face the single waypoint
// carries the end position. An empty result means either point has no floor
// beneath it or no path exists.
func (pf *PathFinder) FindPathBetweenPoints(from, to math.Vec3) []WayPoint {
	fromPos, fromFace, ok := pf.mesh.FindFloor(from)
	if !ok {
		return nil
	}
	toPos, toFace, ok := pf.mesh.FindFloor(to)
	if !ok {
		return nil
	}

	path := pf.FindPath(fromFace, toFace)
	if len(path) == 0 {
		return nil
	}

	first := &path[0]
	first.ScenePosition = fromPos
	first.FaceLocalPosition = pf.mesh.FaceLocalPosition(fromFace, fromPos)

	last := &path[len(path)-1]
	last.ScenePosition = toPos
	last.FaceLocalPosition = pf.mesh.FaceLocalPosition(toFace, toPos)

	return path
}
