// Package scc computes strongly connected components with an iterative
// Tarjan traversal.
//
// The traversal keeps an explicit work stack of (node, next edge) frames
// instead of recursing, so long chains cannot overflow the goroutine stack.
// A node closes a component exactly when its low link equals its index; the
// component stack is then popped down to and including that node.
//
// Complexity:
//
//   - Time:   O(N + M).
//   - Memory: O(N) for index, low link, on-stack flags and the two stacks.
//
// Options:
//
//   - WithLogger(l)  progress logging at debug level.
//
// Errors:
//
//   - context errors when ctx is cancelled mid-traversal.
package scc
