// Package bfs runs unweighted breadth-first search over a graph.
//
// What
//
//   - BFS(g, src, opts...) explores nodes in non-decreasing hop distance from
//     src and returns a Result with:
//   - Distances: hops from src, core.NodeNotPresent when unreached
//   - Predecessors: BFS tree parents (with WithPredecessors)
//   - Order: visit sequence
//   - Eccentricity, MostDistantNode, TotalDistance, HarmonicDistance
//   - Diameter(ctx, g, opts...) runs a BFS from every node in parallel.
//
// Determinism
//
//	Neighbours are expanded in ascending destination order, which is the
//	storage order, so the visit sequence is reproducible.
//
// Complexity (N = nodes, M = directed edges)
//
//   - BFS:      O(N + M) time, O(N) memory.
//   - Diameter: O(N·(N + M)) time spread over the workers, O(N) per worker.
//
// Options
//
//   - WithContext(ctx)         cancellation for BFS.
//   - WithDestination(dst)     stop once dst is visited.
//   - WithPredecessors()       record the BFS tree.
//   - WithMaxDepth(d)          do not expand beyond d hops (d > 0).
//   - WithOnVisit(fn)          hook called on every visit; errors abort.
//   - WithFilterNeighbor(fn)   skip edges for which fn returns false.
//   - WithWorkers(n)           parallelism of Diameter.
//
// Errors
//
//   - core.ErrNodeOutOfRange  src or destination outside the graph.
//   - ErrOptionViolation      negative depth or worker count.
//   - context errors and hook errors.
package bfs
