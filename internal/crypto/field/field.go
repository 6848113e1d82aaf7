// Package field implements arithmetic over the BN254 scalar field, the
// native field of the target ZoKrates circuit. Elements are backed by a
// fixed-width 256-bit integer rather than arbitrary-precision arithmetic.
package field

import (
	"errors"

	"github.com/holiman/uint256"
)

// ErrDivisionByZero is returned when a multiplicative inverse is requested
// for a value congruent to 0 mod the field modulus.
var ErrDivisionByZero = errors.New("field: division by zero")

// qModulus is the BN254 (ALT_BN128) scalar-field prime.
var qModulus = uint256.MustFromDecimal("21888242871839275222246405745257275088548364400416034343698204186575808495617")

// qMinusTwo is the Fermat inversion exponent q-2.
var qMinusTwo = new(uint256.Int).Sub(qModulus, uint256.NewInt(2))

// Modulus returns a copy of the field modulus.
func Modulus() *uint256.Int {
	return new(uint256.Int).Set(qModulus)
}

// Element is an integer normalized into [0, Modulus).
// The zero value is the field's zero element and ready to use.
type Element struct {
	v uint256.Int
}

// New returns the field element for a small constant.
func New(v uint64) Element {
	var e Element
	e.v.SetUint64(v)
	return e
}

// FromUint256 reduces v modulo the field modulus.
func FromUint256(v *uint256.Int) Element {
	var e Element
	e.v.Mod(v, qModulus)
	return e
}

// MustFromDecimal parses a decimal constant and reduces it into the field.
// It panics on malformed input and is intended for package-level constants.
func MustFromDecimal(s string) Element {
	return FromUint256(uint256.MustFromDecimal(s))
}

// Uint256 returns a copy of the canonical representative in [0, q).
func (a Element) Uint256() *uint256.Int {
	return new(uint256.Int).Set(&a.v)
}

// IsZero reports whether a is the zero element.
func (a Element) IsZero() bool {
	return a.v.IsZero()
}

// Equal reports whether a and b are the same field element.
func (a Element) Equal(b Element) bool {
	return a.v.Eq(&b.v)
}

// String returns the decimal representation of the canonical representative.
func (a Element) String() string {
	return a.v.Dec()
}

// Add returns a + b mod q.
func (a Element) Add(b Element) Element {
	var out Element
	out.v.AddMod(&a.v, &b.v, qModulus)
	return out
}

// Sub returns a - b mod q.
func (a Element) Sub(b Element) Element {
	var out Element
	if a.v.Lt(&b.v) {
		qMinusB := new(uint256.Int).Sub(qModulus, &b.v)
		out.v.AddMod(&a.v, qMinusB, qModulus)
		return out
	}
	out.v.Sub(&a.v, &b.v)
	return out
}

// Mul returns a * b mod q. The 512-bit intermediate product is handled by
// the backing store's modular multiplication.
func (a Element) Mul(b Element) Element {
	var out Element
	out.v.MulMod(&a.v, &b.v, qModulus)
	return out
}

// Inverse returns a^-1 mod q via Fermat's little theorem (a^(q-2)).
// It fails with ErrDivisionByZero when a is zero.
func (a Element) Inverse() (Element, error) {
	if a.v.IsZero() {
		return Element{}, ErrDivisionByZero
	}
	return a.Exp(qMinusTwo), nil
}

// Div returns a / b mod q, defined as a * b^-1.
// It fails with ErrDivisionByZero when b is zero.
func (a Element) Div(b Element) (Element, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Element{}, err
	}
	return a.Mul(inv), nil
}

// Exp returns a^e mod q.
func (a Element) Exp(e *uint256.Int) Element {
	var out Element
	out.v.Set(ExpMod(&a.v, e, qModulus))
	return out
}

// ExpMod computes base^exp mod m by square-and-multiply over exp's bits,
// most significant first. m must be nonzero. It is the modulus-override
// form of exponentiation; Element.Exp fixes m to the field modulus.
func ExpMod(base, exp, m *uint256.Int) *uint256.Int {
	result := uint256.NewInt(1)
	result.Mod(result, m)
	b := new(uint256.Int).Mod(base, m)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.MulMod(result, result, m)
		if bit(exp, i) == 1 {
			result.MulMod(result, b, m)
		}
	}
	return result
}

// bit extracts bit i (0 = least significant) of x.
func bit(x *uint256.Int, i int) uint64 {
	if i < 0 || i > 255 {
		return 0
	}
	return (x[i/64] >> (uint(i) % 64)) & 1
}
