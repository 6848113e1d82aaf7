// Package curve implements affine point arithmetic on the short-Weierstrass
// curve y^2 = x^3 + 3 over the BN254 scalar field, matching the in-circuit
// curve the generated vectors are checked against.
package curve

import (
	"github.com/holiman/uint256"

	"github.com/smallyu/go-zk-vectorgen/internal/crypto/field"
)

// curveOrder is the order of the group used for scalar arithmetic. As in the
// circuit, it coincides with the field modulus.
var curveOrder = field.Modulus()

// Order returns a copy of the group order.
func Order() *uint256.Int {
	return new(uint256.Int).Set(curveOrder)
}

// Point is an affine curve point. The point at infinity is represented
// out-of-band via the inf flag, never as a coordinate pair.
type Point struct {
	X, Y field.Element
	inf  bool
}

// Infinity is the group identity.
var Infinity = Point{inf: true}

// NewPoint returns the affine point (x, y). The caller is responsible for
// (x, y) satisfying the curve equation; this is not checked at runtime.
func NewPoint(x, y field.Element) Point {
	return Point{X: x, Y: y}
}

// Generator returns the fixed base point G1 = (1, 2).
func Generator() Point {
	return NewPoint(field.New(1), field.New(2))
}

// IsInfinity reports whether p is the group identity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Neg returns -p, the reflection (x, -y).
func (p Point) Neg() Point {
	if p.inf {
		return Infinity
	}
	return NewPoint(p.X, field.New(0).Sub(p.Y))
}

// Double returns 2p. The vertical-tangent case (y = 0) returns infinity,
// which also guards the slope division below against a zero denominator.
func (p Point) Double() Point {
	if p.inf || p.Y.IsZero() {
		return Infinity
	}
	// lambda = 3x^2 / 2y
	num := field.New(3).Mul(p.X).Mul(p.X)
	den := field.New(2).Mul(p.Y)
	lambda, err := num.Div(den)
	if err != nil {
		return Infinity
	}
	x := lambda.Mul(lambda).Sub(field.New(2).Mul(p.X))
	y := lambda.Mul(p.X.Sub(x)).Sub(p.Y)
	return NewPoint(x, y)
}

// Add returns p + q under the chord-and-tangent group law.
func (p Point) Add(q Point) Point {
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.Double()
		}
		// Inverse points: same x, opposite y.
		return Infinity
	}
	// lambda = (y2 - y1) / (x2 - x1)
	lambda, err := q.Y.Sub(p.Y).Div(q.X.Sub(p.X))
	if err != nil {
		return Infinity
	}
	x := lambda.Mul(lambda).Sub(p.X).Sub(q.X)
	y := lambda.Mul(p.X.Sub(x)).Sub(p.Y)
	return NewPoint(x, y)
}

// ScalarMult returns n * p by double-and-add over exactly 256 iterations,
// scanning n's bits from most significant to least significant. The fixed
// iteration count and scan order mirror the circuit's bit-indexing
// convention and must not change.
func (p Point) ScalarMult(n *uint256.Int) Point {
	if n == nil || n.IsZero() || p.inf {
		return Infinity
	}
	acc := Infinity
	for i := 255; i >= 0; i-- {
		acc = acc.Double()
		if bit(n, i) == 1 {
			acc = acc.Add(p)
		}
	}
	return acc
}

func bit(x *uint256.Int, i int) uint64 {
	return (x[i/64] >> (uint(i) % 64)) & 1
}
