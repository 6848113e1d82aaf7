package field

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func elem(a, b, c, d uint64) Element {
	v := uint256.Int{a, b, c, d}
	return FromUint256(&v)
}

func TestModulusWidth(t *testing.T) {
	require.Equal(t, 254, Modulus().BitLen())
}

func TestAddWrapsAtModulus(t *testing.T) {
	qMinusOne := MustFromDecimal("21888242871839275222246405745257275088548364400416034343698204186575808495616")
	require.True(t, qMinusOne.Add(New(1)).IsZero())
	require.True(t, New(0).Sub(New(1)).Equal(qMinusOne))
}

func TestInverseOfZeroFails(t *testing.T) {
	_, err := New(0).Inverse()
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = New(7).Div(New(0))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivSmallValues(t *testing.T) {
	// 6 / 2 == 3
	got, err := New(6).Div(New(2))
	require.NoError(t, err)
	require.True(t, got.Equal(New(3)))
}

func TestExpMod(t *testing.T) {
	// 5^3 mod 7 == 6, exercising the modulus override.
	got := ExpMod(uint256.NewInt(5), uint256.NewInt(3), uint256.NewInt(7))
	require.Equal(t, uint64(6), got.Uint64())

	// a^0 == 1 and a^1 == a in the field.
	a := New(12345)
	require.True(t, a.Exp(uint256.NewInt(0)).Equal(New(1)))
	require.True(t, a.Exp(uint256.NewInt(1)).Equal(a))
}

func TestFieldProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a * a^-1 == 1 for a != 0", prop.ForAll(
		func(a, b, c, d uint64) bool {
			e := elem(a, b, c, d)
			if e.IsZero() {
				return true
			}
			inv, err := e.Inverse()
			if err != nil {
				return false
			}
			return e.Mul(inv).Equal(New(1))
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("(a - b) + b == a", prop.ForAll(
		func(a, b uint64) bool {
			x := elem(a, b, a^b, a&b)
			y := elem(b, a, a|b, a+b)
			return x.Sub(y).Add(y).Equal(x)
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("Mul matches big.Int reference", prop.ForAll(
		func(a, b, c, d uint64) bool {
			x := elem(a, b, c, d)
			y := elem(d, c, b, a)
			want := new(big.Int).Mul(x.Uint256().ToBig(), y.Uint256().ToBig())
			want.Mod(want, Modulus().ToBig())
			return x.Mul(y).Uint256().ToBig().Cmp(want) == 0
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("ExpMod matches big.Int reference", prop.ForAll(
		func(base, exp uint64) bool {
			got := ExpMod(uint256.NewInt(base), uint256.NewInt(exp), Modulus())
			want := new(big.Int).Exp(new(big.Int).SetUint64(base), new(big.Int).SetUint64(exp), Modulus().ToBig())
			return got.ToBig().Cmp(want) == 0
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
