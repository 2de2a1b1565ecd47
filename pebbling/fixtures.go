// Package pebbling — fixtures.go: deterministic benchmark-DAG generators,
// adapted from the teacher's builder package (impl_path.go, impl_grid.go,
// impl_random_sparse.go, impl_complete.go) to dag.Graph's narrower vertex
// model (string IDs, no payloads).
package pebbling

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ipdr/dag"
)

// Path returns a chain of n vertices v0 -> v1 -> ... -> v(n-1). n must be >= 1.
func Path(n int) *dag.Graph {
	if n < 1 {
		panic(fmt.Sprintf("pebbling: Path: n must be >= 1, got %d", n))
	}
	g := dag.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("v%d", i)
		mustAddVertex(g, ids[i])
	}
	for i := 0; i < n-1; i++ {
		mustAddEdge(g, ids[i], ids[i+1])
	}
	return g
}

// Grid returns a rows x cols grid DAG where each cell depends on its cell
// to the right and the cell below (edges point toward higher row/col
// indices), a standard pebbling benchmark shape. rows and cols must both
// be >= 1.
func Grid(rows, cols int) *dag.Graph {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("pebbling: Grid: rows and cols must be >= 1, got %dx%d", rows, cols))
	}
	g := dag.New()
	id := func(r, c int) string { return fmt.Sprintf("r%dc%d", r, c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			mustAddVertex(g, id(r, c))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r+1 < rows {
				mustAddEdge(g, id(r, c), id(r+1, c))
			}
			if c+1 < cols {
				mustAddEdge(g, id(r, c), id(r, c+1))
			}
		}
	}
	return g
}

// RandomSparse returns a random DAG over n vertices (topologically named
// v0..v(n-1), every edge going from a lower to a higher index so the
// result is acyclic by construction) where each potential forward edge is
// included independently with probability p. seed makes the result
// reproducible.
func RandomSparse(n int, p float64, seed int64) *dag.Graph {
	if n < 1 {
		panic(fmt.Sprintf("pebbling: RandomSparse: n must be >= 1, got %d", n))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("pebbling: RandomSparse: p must be in [0,1], got %f", p))
	}
	g := dag.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("v%d", i)
		mustAddVertex(g, ids[i])
	}
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rnd.Float64() < p {
				mustAddEdge(g, ids[i], ids[j])
			}
		}
	}
	return g
}

// Complete returns the transitive-tournament DAG on n vertices: every
// lower-indexed vertex has an edge to every higher-indexed vertex. This is
// the densest possible DAG on n vertices and the hardest pebbling instance
// for a given n.
func Complete(n int) *dag.Graph {
	if n < 1 {
		panic(fmt.Sprintf("pebbling: Complete: n must be >= 1, got %d", n))
	}
	g := dag.New()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("v%d", i)
		mustAddVertex(g, ids[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mustAddEdge(g, ids[i], ids[j])
		}
	}
	return g
}

func mustAddVertex(g *dag.Graph, id string) {
	if err := g.AddVertex(id); err != nil {
		panic(fmt.Sprintf("pebbling: fixture: %v", err))
	}
}

func mustAddEdge(g *dag.Graph, from, to string) {
	if err := g.AddEdge(from, to); err != nil {
		panic(fmt.Sprintf("pebbling: fixture: %v", err))
	}
}
