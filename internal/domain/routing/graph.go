// Package routing finds delivery routes between the hospital and the
// pharmacies over a small fixed graph of named nodes.
//
// Path selection is deliberately by hop count: among all simple paths the
// one visiting the fewest nodes wins, and among equal hop counts the first
// one discovered in neighbor order wins. Edge weights only report the total
// distance of the chosen path. A minimum-weight (Dijkstra-style) mode is a
// possible extension point but is not what callers of this package expect
// today.
package routing

import (
	"errors"
	"sync"
)

// ErrNodeNotFound reports a route endpoint that is not part of the graph.
var ErrNodeNotFound = errors.New("route node not found")

// Route is the outcome of a shortest-path query. An empty Nodes slice means
// the endpoints are not connected; callers treat that as "unreachable", not
// as an error.
type Route struct {
	Nodes      []string `json:"nodes"`
	DistanceKm float64  `json:"distance_km"`
}

// Graph is a small weighted undirected graph. Nodes are fixed at
// construction; edges are stored symmetrically in an adjacency matrix where
// a weight of 0 means "no edge". Negative weights are accepted as edges,
// degenerate as they are, because hop-count selection keeps them inert.
type Graph struct {
	mu      sync.RWMutex
	nodes   []string
	index   map[string]int
	weights [][]float64
}

// NewGraph creates a graph over the given node names, edgeless until
// SetEdgeWeight is called.
func NewGraph(nodes ...string) *Graph {
	g := &Graph{
		nodes: append([]string(nil), nodes...),
		index: make(map[string]int, len(nodes)),
	}
	for i, n := range g.nodes {
		g.index[n] = i
	}
	g.weights = make([][]float64, len(g.nodes))
	for i := range g.weights {
		g.weights[i] = make([]float64, len(g.nodes))
	}
	return g
}

// Nodes returns the node names in configuration order.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.nodes...)
}

// SetEdgeWeight writes the symmetric weight between two nodes. Re-setting an
// edge overwrites the previous weight, last write wins; a weight of 0
// removes the edge.
func (g *Graph) SetEdgeWeight(a, b string, weightKm float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ai, ok := g.index[a]
	if !ok {
		return ErrNodeNotFound
	}
	bi, ok := g.index[b]
	if !ok {
		return ErrNodeNotFound
	}
	g.weights[ai][bi] = weightKm
	g.weights[bi][ai] = weightKm
	return nil
}

// EdgeWeight returns the weight between two nodes, 0 when no edge exists.
func (g *Graph) EdgeWeight(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ai, ok := g.index[a]
	if !ok {
		return 0, ErrNodeNotFound
	}
	bi, ok := g.index[b]
	if !ok {
		return 0, ErrNodeNotFound
	}
	return g.weights[ai][bi], nil
}

// ShortestPath enumerates every simple path from start to end and returns
// the one with the fewest nodes, ties broken by discovery order. start ==
// end yields a single-node route of distance 0; unconnected endpoints yield
// an empty route.
func (g *Graph) ShortestPath(start, end string) (Route, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	si, ok := g.index[start]
	if !ok {
		return Route{}, ErrNodeNotFound
	}
	ei, ok := g.index[end]
	if !ok {
		return Route{}, ErrNodeNotFound
	}

	if si == ei {
		return Route{Nodes: []string{start}}, nil
	}

	visited := make([]bool, len(g.nodes))
	visited[si] = true
	var best []int
	g.enumerate(si, ei, []int{si}, visited, &best)

	if best == nil {
		return Route{Nodes: []string{}}, nil
	}

	route := Route{Nodes: make([]string, len(best))}
	for i, idx := range best {
		route.Nodes[i] = g.nodes[idx]
		if i > 0 {
			route.DistanceKm += g.weights[best[i-1]][idx]
		}
	}
	return route, nil
}

// enumerate walks all simple paths depth-first, neighbors in index order.
// The strict < comparison keeps the first-discovered path on hop-count ties.
func (g *Graph) enumerate(current, end int, path []int, visited []bool, best *[]int) {
	if current == end {
		if *best == nil || len(path) < len(*best) {
			*best = append([]int(nil), path...)
		}
		return
	}
	for next := range g.nodes {
		if visited[next] || g.weights[current][next] == 0 {
			continue
		}
		visited[next] = true
		g.enumerate(next, end, append(path, next), visited, best)
		visited[next] = false
	}
}
