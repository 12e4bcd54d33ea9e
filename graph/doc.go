// Package graph provides the immutable graph value of the engine: a CSR edge
// store wrapped together with its node vocabulary and the optional parallel
// arrays (node types, edge types, edge weights).
//
// Immutability
//
//	A Graph never changes after New returns. Operations that look like
//	modifications (WithoutWeights, WithoutEdgeTypes, Transposed, ...) return
//	a new Graph. The one exception is EnableSources, which materialises a
//	reverse lookup cache and never changes any query result.
//
// Checked and unchecked queries
//
//	Every query exists twice. The checked form validates its ids and returns
//	an error from the core taxonomy. The Unchecked form assumes the caller
//	already proved the ids are in range, typically because it is iterating
//	over [0, NumberOfNodes()); it never returns an error and misuse is a
//	caller bug.
//
// Guards
//
//	MustHaveWeights, MustBeUndirected and friends are composable
//	precondition checks meant to be called at the top of an algorithm so
//	that missing features surface before any work starts.
//
// Cached properties
//
//	Degree statistics, singleton/trap counts, self-loop and multigraph
//	detection and weight statistics are computed on first use and memoised.
//	Because the graph is immutable the cache is never invalidated.
//
// Iteration
//
//	NodeIDs, Edges, EdgeWeights, ... return iter.Seq values for sequential
//	use. ParNodeIDs, ParEdges, ParLowerTriangularEdges and
//	ParUpperTriangularEdges return parallel.Producer values for
//	parallel.Drive. Undirected graphs store both directions of every edge;
//	undirected edge iteration yields each edge once with Src <= Dst.
//
// Concurrency
//
//	All methods are safe for concurrent use.
package graph
