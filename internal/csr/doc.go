// Package csr implements the compressed sparse row edge store.
//
// Layout
//
//   - outbounds: prefix sums of per-source out-degrees, length N+1,
//     outbounds[0] == 0 and outbounds[N] == number of directed edges.
//   - destinations: one entry per directed edge, grouped by source and
//     sorted ascending inside each source's slice
//     destinations[outbounds[s]:outbounds[s+1]].
//   - sources (optional): sources[e] is the source of edge e. It is either
//     fully materialised or absent.
//
// An edge id is an index into destinations and is only meaningful for the
// store instance that produced it. Parallel edges of a multigraph occupy a
// contiguous run; lookups return the first id of the run.
//
// Checked and unchecked access
//
//	Methods prefixed with Unchecked take ids the caller has already
//	validated and never return errors; passing an out-of-range id panics
//	with an index error or returns garbage. The package lives under
//	internal/ so that only the graph engine itself can reach these fast
//	paths; public callers go through the validated graph API.
//
// Producers
//
//	EdgesProducer and RestrictedProducer implement parallel.Producer over
//	the whole edge array and over its lower (dst <= src) or upper
//	(dst >= src) triangle.
package csr
