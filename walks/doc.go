// Package walks samples biased, second-order random walks over a graph.
//
// A walk is a Markov chain over node ids. From the current node c, reached
// from the previous node p, a candidate n in c's neighbour slice receives the
// unnormalised weight
//
//	w(n) = edge weight (1 when unweighted)
//	       / degree(n)             when NormalizeByDegree
//	       * ReturnWeight          when n == p
//	       * ExploreWeight         when n != p and n is not a neighbour of p
//	       * ChangeNodeTypeWeight  when type(n) != type(c)
//	       * ChangeEdgeTypeWeight  when type(c -> n) != type(p -> c)
//
// The first step has no previous node, so only the edge weight, degree and
// node type factors apply. A walk with all weights equal to one on an
// unweighted graph is first order and uses a plain uniform draw.
//
// When MaxNeighbours is positive and the current node has more neighbours,
// the candidate set is a seeded uniform sample of MaxNeighbours of them,
// weighted afterwards. This is an approximation with no correction factor.
//
// # Determinism
//
// Every walk owns a random stream seeded by Splitmix64(RandomState ^ index),
// where index is the walk's position in the sequence. Output therefore does
// not depend on how walks are partitioned across goroutines.
//
// # Traps
//
// A node with no outbound edge ends the walk; the trap node is kept. Walks
// shorter than MinLength after truncation are dropped.
package walks
