// Package vector implements a fixed-dimension numeric point with the
// handful of operations the color and clustering layers need: pointwise
// add/sub, scalar mul/div, a zero element and axis access by index.
package vector

import "github.com/AnyUserName/autopalette/internal/numeric"

// Point is a fixed-dimension vector. Its dimension is set at construction
// and never changes; all arithmetic is pointwise.
type Point[F numeric.Float] struct {
	components []F
}

// New builds a point from its components.
func New[F numeric.Float](components ...F) Point[F] {
	cp := make([]F, len(components))
	copy(cp, components)
	return Point[F]{components: cp}
}

// Zero returns the additive identity of the given dimension.
func Zero[F numeric.Float](dim int) Point[F] {
	return Point[F]{components: make([]F, dim)}
}

// Dim reports the number of components.
func (p Point[F]) Dim() int { return len(p.components) }

// At returns the component on the given axis. Out-of-range axis is a
// precondition violation (the caller controls dimensionality throughout
// this module) and panics like a slice index would.
func (p Point[F]) At(axis int) F { return p.components[axis] }

// ToSlice materializes the point as a flat, independent slice.
func (p Point[F]) ToSlice() []F {
	out := make([]F, len(p.components))
	copy(out, p.components)
	return out
}

// Add returns the pointwise sum of p and other.
func (p Point[F]) Add(other Point[F]) Point[F] {
	out := make([]F, len(p.components))
	for i := range p.components {
		out[i] = p.components[i] + other.components[i]
	}
	return Point[F]{components: out}
}

// AddAssign adds other into p in place.
func (p *Point[F]) AddAssign(other Point[F]) {
	for i := range p.components {
		p.components[i] += other.components[i]
	}
}

// Sub returns the pointwise difference p - other.
func (p Point[F]) Sub(other Point[F]) Point[F] {
	out := make([]F, len(p.components))
	for i := range p.components {
		out[i] = p.components[i] - other.components[i]
	}
	return Point[F]{components: out}
}

// Scale returns p multiplied by a scalar.
func (p Point[F]) Scale(scalar F) Point[F] {
	out := make([]F, len(p.components))
	for i, c := range p.components {
		out[i] = c * scalar
	}
	return Point[F]{components: out}
}

// Div returns p divided by a scalar. Division by zero is a precondition
// violation and must fail loudly, per spec — we panic rather than produce
// silent Inf/NaN that would poison downstream clustering.
func (p Point[F]) Div(scalar F) Point[F] {
	if scalar == 0 {
		panic("vector: division by zero")
	}
	out := make([]F, len(p.components))
	for i, c := range p.components {
		out[i] = c / scalar
	}
	return Point[F]{components: out}
}

// DivAssign divides p by a scalar in place.
func (p *Point[F]) DivAssign(scalar F) {
	if scalar == 0 {
		panic("vector: division by zero")
	}
	for i := range p.components {
		p.components[i] /= scalar
	}
}

// New2, New3 and New5 are convenience constructors: 2-D for k-d tree and
// DBSCAN fixtures, 3-D for plain RGB/XYZ-style triples (no caller in this
// module), and 5-D for the clustering feature space.
func New2[F numeric.Float](x, y F) Point[F]          { return New(x, y) }
func New3[F numeric.Float](x, y, z F) Point[F]       { return New(x, y, z) }
func New5[F numeric.Float](a, b, c, d, e F) Point[F] { return New(a, b, c, d, e) }
