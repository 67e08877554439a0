// SPDX-License-Identifier: MIT
// Package algebra: the representation adapter.

package algebra

import "github.com/katalvlaran/isotypic/matrix"

const opNewGeneratorRep = "NewGeneratorRep"

// Field identifies the base field a representation is defined over.
type Field int

const (
	// Real marks a representation over the real numbers.
	Real Field = iota
	// Complex marks a representation over the complex numbers.
	Complex
)

// String implements fmt.Stringer.
func (f Field) String() string {
	switch f {
	case Real:
		return "Real"
	case Complex:
		return "Complex"
	default:
		return "Field(?)"
	}
}

// Rep is the adapter a caller implements to feed a matrix representation
// into ForRep. Only the generator images are needed; the group itself is
// never enumerated.
type Rep interface {
	// Dimension returns the size n of the representation space.
	Dimension() int
	// Field returns the base field.
	Field() Field
	// NumGenerators returns the number of group generators.
	NumGenerators() int
	// Generator returns the matrix image of the i-th generator.
	Generator(i int) *matrix.Dense
}

// GeneratorRep is the ready-made Rep backed by an explicit generator list.
type GeneratorRep struct {
	field Field
	dim   int
	gens  []*matrix.Dense
}

// NewGeneratorRep validates and wraps a generator list as a Rep. Generators
// must be non-nil square matrices of one shared dimension, and at least one
// generator is required. The matrices are cloned, so later mutation of the
// inputs does not leak in.
//
// Errors: ErrInvalidRep.
func NewGeneratorRep(field Field, gens []*matrix.Dense) (*GeneratorRep, error) {
	if len(gens) == 0 {
		return nil, algebraErrorf(opNewGeneratorRep, ErrInvalidRep)
	}
	dim := 0
	owned := make([]*matrix.Dense, len(gens))
	for i, g := range gens {
		if g == nil || g.Rows() != g.Cols() {
			return nil, algebraErrorf(opNewGeneratorRep, ErrInvalidRep)
		}
		if i == 0 {
			dim = g.Rows()
		} else if g.Rows() != dim {
			return nil, algebraErrorf(opNewGeneratorRep, ErrInvalidRep)
		}
		owned[i] = g.Clone()
	}

	return &GeneratorRep{field: field, dim: dim, gens: owned}, nil
}

// Dimension implements Rep.
func (r *GeneratorRep) Dimension() int { return r.dim }

// Field implements Rep.
func (r *GeneratorRep) Field() Field { return r.field }

// NumGenerators implements Rep.
func (r *GeneratorRep) NumGenerators() int { return len(r.gens) }

// Generator implements Rep; it returns a clone so callers cannot mutate
// the stored image. Out-of-range i returns nil.
func (r *GeneratorRep) Generator(i int) *matrix.Dense {
	if i < 0 || i >= len(r.gens) {
		return nil
	}

	return r.gens[i].Clone()
}
