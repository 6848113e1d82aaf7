// Package vector samples the secret scalars, derives the curve points and
// digest representations, and assembles the complete proof-input vector.
package vector

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"

	"github.com/smallyu/go-zk-vectorgen/internal/crypto/bitpack"
	"github.com/smallyu/go-zk-vectorgen/internal/crypto/curve"
	"github.com/smallyu/go-zk-vectorgen/internal/crypto/field"
	"github.com/smallyu/go-zk-vectorgen/internal/crypto/hashing"
	"github.com/smallyu/go-zk-vectorgen/logger"
)

var (
	// ErrDegenerateSample is returned when scalar sampling keeps producing
	// a degenerate (all-zero packed) encoding past the retry bound.
	ErrDegenerateSample = errors.New("vector: degenerate scalar sample after retry bound")

	// ErrZeroGamma is returned when gamma is congruent to 0 mod the group
	// order, which would make the derived scalar undefined.
	ErrZeroGamma = errors.New("vector: gamma is zero mod the group order")
)

// ScalarBits is the fixed bit width of every emitted scalar encoding.
const ScalarBits = 256

// defaultMaxAttempts bounds the resampling loop. One iteration succeeds
// with overwhelming probability; the bound turns the residual risk into an
// explicit failure instead of an infinite loop.
const defaultMaxAttempts = 64

// Record is one complete test vector. It is immutable after construction:
// built once per run, emitted, and discarded.
type Record struct {
	Gamma *uint256.Int
	Beta  *uint256.Int
	BG    *uint256.Int // beta * gamma^-1 mod order

	GammaBits []bool
	BetaBits  []bool
	BGBits    []bool

	HashGamma hashing.Digest

	Gen   curve.Point
	GG    curve.Point // gen^gamma
	GB    curve.Point // gen^beta
	CStar curve.Point // gen^(beta/gamma)
}

// Generator produces Records from a randomness source.
type Generator struct {
	rand        io.Reader
	maxAttempts int
	log         zerolog.Logger
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return NewWithRand(crand.Reader)
}

// NewWithRand returns a Generator reading randomness from r. Tests use this
// to make generation deterministic.
func NewWithRand(r io.Reader) *Generator {
	return &Generator{
		rand:        r,
		maxAttempts: defaultMaxAttempts,
		log:         logger.Logger().With().Str("component", "vector").Logger(),
	}
}

// Generate samples gamma and beta and assembles the full Record.
func (g *Generator) Generate() (*Record, error) {
	// 1. Sample the two secret scalars independently.
	gamma, err := g.sampleScalar()
	if err != nil {
		return nil, fmt.Errorf("sampling gamma: %w", err)
	}
	beta, err := g.sampleScalar()
	if err != nil {
		return nil, fmt.Errorf("sampling beta: %w", err)
	}
	g.log.Debug().Msg("scalars sampled")

	rec, err := build(gamma, beta)
	if err != nil {
		return nil, err
	}
	g.log.Info().Msg("vector record assembled")
	return rec, nil
}

// sampleScalar draws uniformly from [1, order-1] and rejects samples whose
// packed bit encoding is zero. The rejection is defensive: the range already
// excludes zero, so exhausting the bound indicates a broken randomness
// source.
func (g *Generator) sampleScalar() (*uint256.Int, error) {
	bound := new(big.Int).Sub(curve.Order().ToBig(), big.NewInt(2))
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		k, err := crand.Int(g.rand, bound)
		if err != nil {
			return nil, err
		}
		k.Add(k, big.NewInt(1))
		scalar, overflow := uint256.FromBig(k)
		if overflow {
			return nil, fmt.Errorf("vector: sampled scalar exceeds 256 bits")
		}
		bits, err := bitpack.IntToBits(scalar, ScalarBits)
		if err != nil {
			return nil, err
		}
		if !bitpack.PackBits(bits).IsZero() {
			return scalar, nil
		}
		g.log.Debug().Int("attempt", attempt+1).Msg("degenerate scalar encoding, resampling")
	}
	return nil, ErrDegenerateSample
}

// build derives every Record field from the two sampled scalars.
func build(gamma, beta *uint256.Int) (*Record, error) {
	// 2. Bit-encode the scalars, most significant bit first.
	gammaBits, err := bitpack.IntToBits(gamma, ScalarBits)
	if err != nil {
		return nil, fmt.Errorf("encoding gamma: %w", err)
	}
	betaBits, err := bitpack.IntToBits(beta, ScalarBits)
	if err != nil {
		return nil, fmt.Errorf("encoding beta: %w", err)
	}

	// 3. Digest gamma's 32-byte canonical form.
	hashGamma, err := hashing.Sum(gamma, 32)
	if err != nil {
		return nil, fmt.Errorf("hashing gamma: %w", err)
	}

	// 4. Base-point multiplications.
	gen := curve.Generator()
	gg := gen.ScalarMult(gamma)
	gb := gen.ScalarMult(beta)

	// 5. Derived scalar b_g = beta * gamma^-1 mod order, and its point.
	bg, err := derivedScalar(gamma, beta)
	if err != nil {
		return nil, err
	}
	bgBits, err := bitpack.IntToBits(bg, ScalarBits)
	if err != nil {
		return nil, fmt.Errorf("encoding b_g: %w", err)
	}
	cStar := gen.ScalarMult(bg)

	// 6. Assemble.
	return &Record{
		Gamma:     gamma,
		Beta:      beta,
		BG:        bg,
		GammaBits: gammaBits,
		BetaBits:  betaBits,
		BGBits:    bgBits,
		HashGamma: hashGamma,
		Gen:       gen,
		GG:        gg,
		GB:        gb,
		CStar:     cStar,
	}, nil
}

// derivedScalar computes beta * gamma^-1 mod the group order. The order is
// prime, so the inverse is gamma^(order-2).
func derivedScalar(gamma, beta *uint256.Int) (*uint256.Int, error) {
	order := curve.Order()
	g := new(uint256.Int).Mod(gamma, order)
	if g.IsZero() {
		return nil, ErrZeroGamma
	}
	orderMinusTwo := new(uint256.Int).Sub(order, uint256.NewInt(2))
	gammaInv := field.ExpMod(g, orderMinusTwo, order)
	b := new(uint256.Int).Mod(beta, order)
	return b.MulMod(b, gammaInv, order), nil
}
