package pathfinding

// spfa runs the queue-based Bellman-Ford variant from start. Weights are
// never negative, so it converges to the same distances as dijkstra but
// cannot stop early; end is ignored.
func spfa(g *graph, start, _ uint32) *searchResult {
	r := newSearchResult(g.size())
	queued := make([]bool, g.size())

	r.dist[start] = 0
	queue := []uint32{start}
	queued[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		queued[current] = false

		for _, l := range g.nodes[current] {
			d := r.dist[current] + l.weight
			if d < r.dist[l.to] {
				r.dist[l.to] = d
				r.prev[l.to] = current
				if !queued[l.to] {
					queued[l.to] = true
					queue = append(queue, l.to)
				}
			}
		}
	}
	return r
}
