// SPDX-License-Identifier: MIT

// Package partition holds the output value of the solver: a Partition of the
// universe 0..M-1 into Parts, each tagged with its objective value.
//
// Parts carry their elements sorted ascending. Parts produced from a product
// lattice also carry Components, the per-dimension element lists whose
// cross-product the part is.
//
// Equality is structural and ignores part order and values: two partitions
// are Equal when they group the elements the same way. Refines reports
// whether one grouping is finer than another.
package partition
