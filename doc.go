// Package ensmallen is an in-memory engine for large, immutable graphs:
// a compressed adjacency store plus the parallel algorithms that read it.
//
// What is in the box?
//
//	• Storage: compressed sparse rows with optional weights, node and edge types
//	• Vocabularies: name <-> id mapping, numeric fast path
//	• Builders: edge records, id pairs and synthetic generators
//	• Walks: first-order and node2vec second-order random walks
//	• Components: Tarjan SCC, Kruskal and parallel spanning arborescences
//	• Shortest paths: BFS and Dijkstra with a decrease-key queue
//	• Centralities: degree, betweenness, stress, closeness, harmonic, eigenvector
//
// Every graph is built once and never mutated, so all read operations are
// safe for concurrent use. Properties such as degree bounds and the hash are
// computed on first use and cached.
//
// The subpackages:
//
//	core/         id types, sentinels and the error taxonomy
//	vocabulary/   name vocabularies
//	graph/        the Graph type, checked and unchecked accessors, guards
//	builder/      graph construction and generators
//	parallel/     bounded fan-out and the shared disjoint slice
//	walks/        random walk sequences
//	scc/          strongly connected components
//	spanning/     spanning arborescences and connected components
//	bfs/          unweighted traversal and diameter
//	dijkstra/     weighted single-source shortest paths
//	centrality/   node centralities
//
// Quick example:
//
//	g, _ := builder.Chain(4)
//	path, dist, _ := dijkstra.ShortestPath(g, 0, 3)
//	// path = [0 1 2 3], dist = 3
//
// The ensmallen command (cmd/ensmallen) runs the same algorithms over
// generated graphs described by a TOML run file.
package ensmallen
