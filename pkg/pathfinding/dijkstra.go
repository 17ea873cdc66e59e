package pathfinding

import (
	"container/heap"
	"math"
)

var infinity = float32(math.Inf(1))

// queueItem is a pending face in the Dijkstra frontier.
type queueItem struct {
	face uint32
	dist float32
	seq  int // Insertion order, breaks distance ties
}

// distanceQueue implements a min-priority queue for Dijkstra.
type distanceQueue []queueItem

func (q distanceQueue) Len() int { return len(q) }
func (q distanceQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].seq < q[j].seq
}
func (q distanceQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *distanceQueue) Push(x interface{}) {
	*q = append(*q, x.(queueItem))
}

func (q *distanceQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// dijkstra runs Dijkstra's algorithm from start. Stale queue entries are
// skipped instead of being decreased in place. The search stops as soon as
// end is popped.
func dijkstra(g *graph, start, end uint32) *searchResult {
	r := newSearchResult(g.size())
	settled := make([]bool, g.size())

	r.dist[start] = 0
	seq := 0
	open := &distanceQueue{{face: start}}

	for open.Len() > 0 {
		current := heap.Pop(open).(queueItem)
		if settled[current.face] {
			continue
		}
		settled[current.face] = true

		if current.face == end {
			break
		}

		for _, l := range g.nodes[current.face] {
			if settled[l.to] {
				continue
			}
			d := current.dist + l.weight
			// Strict comparison keeps the first predecessor found on ties
			if d < r.dist[l.to] {
				r.dist[l.to] = d
				r.prev[l.to] = current.face
				seq++
				heap.Push(open, queueItem{face: l.to, dist: d, seq: seq})
			}
		}
	}
	return r
}
