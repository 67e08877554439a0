// SPDX-License-Identifier: MIT
// Package partition: the Partition value type.

package partition

import "sort"

const (
	opNewPartition = "NewPartition"
)

// Partition is an immutable partition of {0..n-1} into disjoint non-empty
// blocks. Blocks keep the order in which they were supplied; indices inside
// every block are stored in ascending order.
type Partition struct {
	n       int
	blocks  [][]int
	blockOf []int // index → owning block position
}

// NewPartition validates blocks as a partition of {0..n-1} and returns an
// immutable Partition. Input slices are copied and each block is sorted
// ascending; block order is preserved.
//
// Errors: ErrInvalidPartition when any block is empty, any index is out of
// range or repeated, or the blocks fail to cover {0..n-1}.
func NewPartition(n int, blocks [][]int) (*Partition, error) {
	if n <= 0 {
		return nil, partitionErrorf(opNewPartition, ErrInvalidPartition)
	}
	p := &Partition{
		n:       n,
		blocks:  make([][]int, len(blocks)),
		blockOf: make([]int, n),
	}
	for i := range p.blockOf {
		p.blockOf[i] = -1
	}

	covered := 0
	for b, block := range blocks {
		if len(block) == 0 {
			return nil, partitionErrorf(opNewPartition, ErrInvalidPartition)
		}
		own := append([]int(nil), block...)
		sort.Ints(own)
		for _, idx := range own {
			if idx < 0 || idx >= n || p.blockOf[idx] != -1 {
				return nil, partitionErrorf(opNewPartition, ErrInvalidPartition)
			}
			p.blockOf[idx] = b
			covered++
		}
		p.blocks[b] = own
	}
	if covered != n {
		return nil, partitionErrorf(opNewPartition, ErrInvalidPartition)
	}

	return p, nil
}

// N returns the size of the underlying index set.
func (p *Partition) N() int { return p.n }

// NumBlocks returns the number of blocks.
func (p *Partition) NumBlocks() int { return len(p.blocks) }

// Block returns a copy of the i-th block (ascending indices).
// Out-of-range i returns nil.
func (p *Partition) Block(i int) []int {
	if i < 0 || i >= len(p.blocks) {
		return nil
	}

	return append([]int(nil), p.blocks[i]...)
}

// BlockOf returns the position of the block containing index idx,
// or -1 when idx is out of range.
func (p *Partition) BlockOf(idx int) int {
	if idx < 0 || idx >= p.n {
		return -1
	}

	return p.blockOf[idx]
}

// Sizes returns the block sizes in block order.
func (p *Partition) Sizes() []int {
	sizes := make([]int, len(p.blocks))
	for i, b := range p.blocks {
		sizes[i] = len(b)
	}

	return sizes
}
