// Package matrixpool holds the three parallel collections of Boolean
// sparse matrices a Graph maintains — one adjacency matrix, a growable
// array of relation matrices, a growable array of label matrices — and
// implements a lazy-resize policy: a matrix is resized to the current
// node count only when next handed out, under double-checked locking
// against a single coarse mutex shared by every matrix in the pool.
package matrixpool
