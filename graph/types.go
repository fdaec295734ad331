// Package graph provides the in-memory directed-multigraph type and the
// primitive operations the controllability core (packages matching, liu,
// sbd, nullmodel, analysis) consumes: vertex/edge counts, neighbor and
// incident-edge queries, edge-list enumeration, weak/strong components,
// maximum bipartite matching, and random-graph generation.
//
// Graph is directed by contract, permits parallel edges and self-loops,
// and indexes vertices 0..n-1 (see spec's data model). It is adapted from
// lvlath/core's nested adjacency-map Graph, narrowed to the int-indexed,
// always-directed shape this domain needs, and extended with the
// graph-theoretic queries (components, matching, random generation) the
// controllability solvers require.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeVertexCount indicates New was asked to build with n < 0.
	ErrNegativeVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VCount()).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, ECount()).
	ErrEdgeOutOfRange = errors.New("graph: edge index out of range")

	// ErrDegreeSequenceMismatch indicates out/in degree slices disagree in
	// length or sum, so no directed graph can realize them.
	ErrDegreeSequenceMismatch = errors.New("graph: degree sequence invalid")

	// ErrConstructFailed indicates a stub-matching generator exhausted its
	// retry budget without producing a valid pairing.
	ErrConstructFailed = errors.New("graph: construction failed")
)

// Direction selects which incidence a query considers.
type Direction int

const (
	// Out selects edges leaving a vertex.
	Out Direction = iota
	// In selects edges entering a vertex.
	In
	// All selects both directions.
	All
)

// edge is the internal representation; callers see it through EdgeList,
// Incident, and the attribute accessors rather than directly.
type edge struct {
	from, to int
	attrs    map[string]interface{}
}

// Graph is a directed multigraph over vertices {0, ..., n-1}. Parallel
// edges and self-loops are always permitted; there is no undirected mode,
// since every graph the controllability core consumes is directed by
// contract (spec's data model).
//
// Graph is safe for concurrent readers; mutation (AddEdges, attribute
// setters) must not race with reads. The solver packages built on top of
// Graph are themselves single-threaded.
type Graph struct {
	mu sync.RWMutex

	n     int
	names []string
	vattr []map[string]interface{}

	edges []edge
	out   [][]int // out[v] = indices into edges, in append order
	in    [][]int // in[v] = indices into edges, in append order
}

// New returns an edgeless directed graph over n vertices.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	g := &Graph{
		n:     n,
		names: make([]string, n),
		vattr: make([]map[string]interface{}, n),
		out:   make([][]int, n),
		in:    make([][]int, n),
	}
	return g, nil
}

// VCount returns the number of vertices.
func (g *Graph) VCount() int {
	return g.n
}

// ECount returns the number of edges.
func (g *Graph) ECount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// IsDirected always reports true: every graph in this package is directed.
func (g *Graph) IsDirected() bool { return true }

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}
	return nil
}

// AddEdges appends the given (from, to) pairs as new edges, in order, and
// returns their assigned edge indices. Parallel edges and self-loops are
// always accepted.
func (g *Graph) AddEdges(pairs [][2]int) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]int, 0, len(pairs))
	for _, p := range pairs {
		u, v := p[0], p[1]
		if u < 0 || u >= g.n || v < 0 || v >= g.n {
			return nil, ErrVertexOutOfRange
		}
		idx := len(g.edges)
		g.edges = append(g.edges, edge{from: u, to: v})
		g.out[u] = append(g.out[u], idx)
		g.in[v] = append(g.in[v], idx)
		ids = append(ids, idx)
	}
	return ids, nil
}

// EdgeList returns the (source, target) pairs in edge-index order.
func (g *Graph) EdgeList() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([][2]int, len(g.edges))
	for i, e := range g.edges {
		out[i] = [2]int{e.from, e.to}
	}
	return out
}

// EID returns the index of an edge u->v, or -1 if none exists. When
// parallel edges exist, the lowest-indexed one is returned — the
// "lowest edge index first" tie-break spec.md asks for throughout.
func (g *Graph) EID(u, v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if u < 0 || u >= g.n {
		return -1
	}
	for _, idx := range g.out[u] {
		if g.edges[idx].to == v {
			return idx
		}
	}
	return -1
}

// Degree returns the in/out/all degree of v. A self-loop counts once
// toward Out and once toward In (so twice toward All).
func (g *Graph) Degree(v int, dir Direction) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.checkVertex(v) != nil {
		return 0
	}
	switch dir {
	case Out:
		return len(g.out[v])
	case In:
		return len(g.in[v])
	default:
		return len(g.out[v]) + len(g.in[v])
	}
}

// Neighbors returns neighbor vertex indices reachable via edges in the
// given direction, in edge-index order (parallel edges yield repeated
// entries).
func (g *Graph) Neighbors(v int, dir Direction) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.checkVertex(v) != nil {
		return nil
	}
	var out []int
	if dir == Out || dir == All {
		for _, idx := range g.out[v] {
			out = append(out, g.edges[idx].to)
		}
	}
	if dir == In || dir == All {
		for _, idx := range g.in[v] {
			out = append(out, g.edges[idx].from)
		}
	}
	return out
}

// Incident returns edge indices touching v in the given direction, in
// edge-index order.
func (g *Graph) Incident(v int, dir Direction) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.checkVertex(v) != nil {
		return nil
	}
	switch dir {
	case Out:
		return append([]int(nil), g.out[v]...)
	case In:
		return append([]int(nil), g.in[v]...)
	default:
		out := append([]int(nil), g.out[v]...)
		return append(out, g.in[v]...)
	}
}

// Name returns the optional name attached to vertex v, or "" if unset.
func (g *Graph) Name(v int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.checkVertex(v) != nil {
		return ""
	}
	return g.names[v]
}

// SetName attaches a name to vertex v.
func (g *Graph) SetName(v int, name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.names[v] = name
	return nil
}

// VertexAttr returns a vertex attribute and whether it was set.
func (g *Graph) VertexAttr(v int, key string) (interface{}, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.checkVertex(v) != nil || g.vattr[v] == nil {
		return nil, false
	}
	val, ok := g.vattr[v][key]
	return val, ok
}

// SetVertexAttr sets a vertex attribute.
func (g *Graph) SetVertexAttr(v int, key string, val interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if g.vattr[v] == nil {
		g.vattr[v] = make(map[string]interface{})
	}
	g.vattr[v][key] = val
	return nil
}

// EdgeAttr returns an edge attribute and whether it was set.
func (g *Graph) EdgeAttr(e int, key string) (interface{}, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e < 0 || e >= len(g.edges) || g.edges[e].attrs == nil {
		return nil, false
	}
	val, ok := g.edges[e].attrs[key]
	return val, ok
}

// SetEdgeAttr sets an edge attribute.
func (g *Graph) SetEdgeAttr(e int, key string, val interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e < 0 || e >= len(g.edges) {
		return ErrEdgeOutOfRange
	}
	if g.edges[e].attrs == nil {
		g.edges[e].attrs = make(map[string]interface{})
	}
	g.edges[e].attrs[key] = val
	return nil
}
