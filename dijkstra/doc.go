// Package dijkstra computes single-source shortest paths over a graph.Graph.
//
// The search keeps its frontier in Queue, a binary min-heap with an
// auxiliary node -> heap position index. A shorter distance to a queued node
// moves that node up in place (decrease-key) instead of pushing a duplicate,
// so the heap never holds more than N entries and no stale entry is popped.
//
// Cost models:
//
//   - Weighted (default on weighted graphs): the cost of an edge is its
//     weight. Every weight must be strictly positive.
//   - Unit (default on unweighted graphs, or WithUnitWeights): every edge
//     costs 1.
//   - Probability (WithProbabilities): weights must lie in (0, 1]. The search
//     adds -ln(w) internally and reports each distance as exp(-cost), the
//     probability of the most probable path. Unreached nodes report 0.
//
// Complexity:
//
//   - Time:  O((N + M) log N).
//   - Space: O(N).
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithPredecessors())
//	if err != nil {
//	    return err
//	}
//	path, _ := res.PathTo(7)
package dijkstra
