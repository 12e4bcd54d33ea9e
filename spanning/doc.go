// Package spanning builds spanning arborescences and connected components.
//
// Two builders return the same Result shape:
//
//   - Kruskal scans the edges once in a fixed order (edge id order, or a
//     rotation of it chosen by WithRandomState) and keeps every edge that
//     joins two different union-find sets. It accepts directed graphs and
//     then reports weakly connected components.
//   - Parallel hooks the roots of a lock-free union-find from many
//     goroutines at once. Roots are always hooked under the smaller root, so
//     every parent pointer decreases and the root of a component is its
//     smallest node. It requires an undirected graph.
//
// Both label components densely in ascending order of their smallest node,
// so on the same graph they agree on Components, Count, MinSize and MaxSize.
// Their edge sets may differ; each is a spanning forest with N - Count edges.
//
// Self-loops never enter a forest. A node whose only edges are self-loops is
// a component of size one.
package spanning
