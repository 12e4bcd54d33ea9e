// Package centrality scores the nodes of a graph.Graph.
//
// Every function returns one float64 per node, indexed by node id.
//
//   - Degree and WeightedDegree divide each (weighted) degree by the
//     largest one.
//   - Betweenness and Stress run Brandes's accumulation from every source
//     in parallel. Contributions of different sources land on the same
//     node, so they are summed through parallel.AtomicFloat64s. On
//     undirected graphs every pair is seen from both ends and the totals
//     are halved.
//   - Closeness and Harmonic run one breadth-first search per node; their
//     weighted twins run one Dijkstra per node.
//   - Eigenvector and WeightedEigenvector iterate x <- normalize(x + Aᵀx)
//     until the L1 change drops below the tolerance. The added identity
//     keeps the iteration convergent on bipartite graphs.
//
// Long computations accept WithLogger and report their elapsed time at
// debug level.
package centrality
