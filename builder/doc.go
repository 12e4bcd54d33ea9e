// SPDX-License-Identifier: MIT
// Package builder is the validated entry point that turns edge and node
// streams into immutable graphs, plus a set of deterministic generators.
//
// Streams
//
//	Build consumes an edge iterator of EdgeRecord values and an optional node
//	iterator of NodeRecord values, both as iter.Seq2[record, error] so that a
//	parser can surface per-line failures. The builder interns names, checks
//	weights, mirrors undirected edges, sorts (unless told the stream is
//	already grouped by source), rejects parallel edges unless the multigraph
//	option is set, and fills the compressed store with parallel writes.
//
// Generators
//
//	Chain, Circle, Star, Wheel, Complete, Barbell, ErdosRenyi,
//	RandomSpanningTree and RandomConnected emit records in a stable order
//	and build them with the same pipeline. Stochastic generators draw from
//	a math/rand source seeded by WithSeed; the same seed and options always
//	produce the same graph.
//
// Errors
//
//	Validation errors wrap the core taxonomy (core.ErrInvalidWeight,
//	core.ErrUnknownName, core.ErrDuplicateEdge, ...) and carry the line
//	number of the offending record. Generator parameter errors wrap
//	ErrTooFewVertices or ErrInvalidProbability.
package builder
