// Package noise provides seeded coherent noise for procedural motion
package noise

import "github.com/ojrac/opensimplex-go"

// Source is a deterministic 3D coherent noise field
type Source interface {
	Noise3D(x, y, z float64) float64
}

// Simplex is a seeded OpenSimplex field with output in [-1, 1]
type Simplex struct {
	seed  uint64
	field opensimplex.Noise
}

// New builds a noise field; equal seeds produce equal fields
func New(seed uint64) *Simplex {
	return &Simplex{
		seed:  seed,
		field: opensimplex.New(int64(seed)),
	}
}

// Seed returns the seed the field was built from
func (s *Simplex) Seed() uint64 {
	return s.seed
}

// Noise3D samples the field, identical coordinates always return identical values
func (s *Simplex) Noise3D(x, y, z float64) float64 {
	return s.field.Eval3(x, y, z)
}
