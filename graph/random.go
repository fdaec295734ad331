package graph

import "math/rand"

// ErdosRenyiGNM builds a directed Erdos-Renyi G(n, m) graph: n vertices,
// exactly m edges chosen uniformly at random without replacement from the
// n*n ordered-pair space (self-loops included, since the controllability
// core treats self-loops as legal edges).
//
// Adapted from lvlath/builder's RandomSparse, which samples G(n, p) via a
// per-pair Bernoulli trial in a fixed (i asc, j asc) order; changed WHAT:
// this generator fixes the edge *count* m rather than a probability, via
// a partial Fisher-Yates shuffle of the n*n index space, since
// spec.md's §4.G.1 null model is G(n, m), not G(n, p).
//
// Contract: 0 <= m <= n*n; rng must be non-nil unless m is 0.
//
// Complexity: O(m) expected time and space beyond the returned graph.
func ErdosRenyiGNM(n, m int, rng *rand.Rand) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	total := n * n
	if m < 0 || m > total {
		return nil, ErrDegreeSequenceMismatch
	}
	if m == 0 {
		return g, nil
	}

	// Partial Fisher-Yates over the index space [0, total): draw m distinct
	// indices in O(m) using a sparse "swap record" map instead of
	// materializing the full permutation array (total can be n^2).
	perm := make(map[int]int, m)
	draw := func(i int) int {
		if v, ok := perm[i]; ok {
			return v
		}
		return i
	}
	pairs := make([][2]int, 0, m)
	last := total - 1
	for k := 0; k < m; k++ {
		j := k + rng.Intn(last-k+1)
		vi := draw(k)
		vj := draw(j)
		perm[k] = vj
		perm[j] = vi
		idx := vj
		pairs = append(pairs, [2]int{idx / n, idx % n})
	}

	if _, err := g.AddEdges(pairs); err != nil {
		return nil, err
	}
	return g, nil
}

// ConfigurationModel builds a directed graph realizing the given
// out-degree and in-degree sequences exactly, via stub-matching: each
// vertex v contributes outDeg[v] "out-stubs" and inDeg[v] "in-stubs",
// out-stubs are shuffled, and stub i is paired with in-stub i.
//
// Adapted from lvlath/builder's RandomRegular, which pairs undirected
// stubs for a single regular degree d with bounded-retry reshuffling;
// changed WHAT: directed stubs from two independent degree sequences
// instead of one undirected regular degree, so the output preserves the
// joint (out, in) degree distribution spec.md's §4.G.2 null model needs.
// Self-loops and parallel edges are accepted (the controllability core
// treats both as legal), so no retries are needed: any stub pairing is a
// valid realization.
//
// Complexity: O(m) where m = sum(outDeg).
func ConfigurationModel(outDeg, inDeg []int, rng *rand.Rand) (*Graph, error) {
	n := len(outDeg)
	if len(inDeg) != n {
		return nil, ErrDegreeSequenceMismatch
	}
	var outSum, inSum int
	for i := 0; i < n; i++ {
		if outDeg[i] < 0 || inDeg[i] < 0 {
			return nil, ErrDegreeSequenceMismatch
		}
		outSum += outDeg[i]
		inSum += inDeg[i]
	}
	if outSum != inSum {
		return nil, ErrDegreeSequenceMismatch
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}
	if outSum == 0 {
		return g, nil
	}

	outStubs := make([]int, 0, outSum)
	for v, d := range outDeg {
		for k := 0; k < d; k++ {
			outStubs = append(outStubs, v)
		}
	}
	inStubs := make([]int, 0, inSum)
	for v, d := range inDeg {
		for k := 0; k < d; k++ {
			inStubs = append(inStubs, v)
		}
	}

	if rng != nil {
		rng.Shuffle(len(outStubs), func(i, j int) {
			outStubs[i], outStubs[j] = outStubs[j], outStubs[i]
		})
	}

	pairs := make([][2]int, len(outStubs))
	for i := range outStubs {
		pairs[i] = [2]int{outStubs[i], inStubs[i]}
	}
	if _, err := g.AddEdges(pairs); err != nil {
		return nil, err
	}
	return g, nil
}

// ConfigurationModelShuffled builds a directed graph whose marginal
// out-degree and in-degree sequences match outDeg/inDeg, but whose joint
// per-vertex (out, in) pairing has been permuted first — so a vertex that
// was divergent in the observed graph may not be in the generated one.
// This is spec.md's "Configuration model with shuffled degree vectors"
// null model (§4.G.3): it destroys the joint distribution while
// preserving both marginals.
//
// Complexity: O(n + m).
func ConfigurationModelShuffled(outDeg, inDeg []int, rng *rand.Rand) (*Graph, error) {
	n := len(outDeg)
	if len(inDeg) != n {
		return nil, ErrDegreeSequenceMismatch
	}
	shuffledIn := make([]int, n)
	perm := rng.Perm(n)
	for i, p := range perm {
		shuffledIn[i] = inDeg[p]
	}
	return ConfigurationModel(outDeg, shuffledIn, rng)
}
