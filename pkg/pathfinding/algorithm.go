package pathfinding

import (
	"fmt"
	"strings"
)

// Algorithm selects the shortest-path strategy used by a PathFinder.
type Algorithm int

// Supported algorithms.
const (
	Dijkstra Algorithm = iota // Binary-heap Dijkstra
	SPFA                      // Queue-based Bellman-Ford

	Default = Dijkstra
)

var algorithmNames = [...]string{
	Dijkstra: "dijkstra",
	SPFA:     "spfa",
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm converts a configuration name into an Algorithm.
// Matching is case-insensitive and "default" maps to Default.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return Default, nil
	}
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
