// Package boolmx is graphcore's concrete Boolean sparse-matrix kernel
// adapter: create, resize, nrows, nvals, set-element, extract-element,
// row/column extract and row/column assign, all implemented over a real
// sparse backing store rather than an abstract interface. There is no
// free operation; an unreferenced Matrix is left to the garbage collector.
//
// Matrix wraps a github.com/james-bowman/sparse dictionary-of-keys matrix,
// the same family of sparse formats used throughout the Go sparse-linear-
// algebra ecosystem (gonum.org/v1/gonum/mat defines the Matrix interface
// sparse.DOK implements). graphcore and matrixpool depend only on this
// package's narrow Matrix surface, never on sparse/gonum directly.
package boolmx
