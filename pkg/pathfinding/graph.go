package pathfinding

import "github.com/Faultbox/midgard-nav/pkg/navmesh"

// noFace marks an unset predecessor.
const noFace = uint32(navmesh.NullFace)

// link is a directed half of an undirected face-to-face connection.
type link struct {
	to     uint32
	weight float32
}

// graph is the face adjacency graph: one node per face, one undirected
// connection per mesh edge with a face on both sides.
type graph struct {
	nodes [][]link
}

// buildGraph walks the mesh edges in index order. Weights are centroid
// distances in mesh local space.
func buildGraph(mesh *navmesh.NavigationMesh) *graph {
	g := &graph{nodes: make([][]link, mesh.FaceCount())}

	for i := 0; i < int(mesh.EdgeCount()); i++ {
		e := mesh.GetEdge(i)
		a, b := e.Face[0], e.Face[1]
		if a == navmesh.NullFace || b == navmesh.NullFace || a == b {
			continue
		}
		w := mesh.GetFace(int(a)).Center.Distance(mesh.GetFace(int(b)).Center)
		g.nodes[a] = append(g.nodes[a], link{to: uint32(b), weight: w})
		g.nodes[b] = append(g.nodes[b], link{to: uint32(a), weight: w})
	}
	return g
}

func (g *graph) size() int {
	return len(g.nodes)
}

// searchResult holds the shortest-path tree produced by a strategy.
type searchResult struct {
	dist []float32
	prev []uint32
}

// newSearchResult allocates a result with every node unreached.
func newSearchResult(n int) *searchResult {
	r := &searchResult{
		dist: make([]float32, n),
		prev: make([]uint32, n),
	}
	for i := range r.prev {
		r.dist[i] = infinity
		r.prev[i] = noFace
	}
	return r
}

// route reconstructs the face sequence from start to end by walking the
// predecessor links backwards.
func (r *searchResult) route(start, end uint32) []uint32 {
	if r.dist[end] == infinity {
		return nil
	}
	var faces []uint32
	for f := end; f != noFace; f = r.prev[f] {
		faces = append(faces, f)
		if f == start {
			break
		}
	}
	// Reverse (it's built from end to start)
	for i, j := 0, len(faces)-1; i < j; i, j = i+1, j-1 {
		faces[i], faces[j] = faces[j], faces[i]
	}
	return faces
}

// searchFunc computes shortest paths from start. It may stop early once end
// is settled.
type searchFunc func(g *graph, start, end uint32) *searchResult
