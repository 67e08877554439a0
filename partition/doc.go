// SPDX-License-Identifier: MIT

// Package partition provides index-set partitions and connected components
// of boolean adjacency relations over finite index sets {0..n-1}.
//
// It is the grouping workhorse of the isotypic pipeline: eigenvalue runs,
// component merging and fiber bookkeeping are all expressed as partitions
// produced by ConnectedComponents.
//
// Determinism: ConnectedComponents scans roots in ascending index order and
// lists members of every component in ascending order, so identical inputs
// always yield identical partitions. Partition values are immutable after
// construction; accessors return copies.
package partition
