// Package hashing produces the SHA-256 digest of a scalar's canonical byte
// encoding, in the word and packed-field forms the circuit reads.
package hashing

import (
	"crypto/sha256"
	"errors"

	"github.com/holiman/uint256"

	"github.com/smallyu/go-zk-vectorgen/internal/crypto/bitpack"
	"github.com/smallyu/go-zk-vectorgen/internal/crypto/field"
)

// ErrUnsupportedWidth is returned for encoding widths other than 32 or 64
// bytes.
var ErrUnsupportedWidth = errors.New("hashing: encoding width must be 32 or 64 bytes")

// Digest is a 256-bit hash in the circuit's two representations: eight
// big-endian 32-bit words, and those words regrouped 4-per-element into
// packed field elements.
type Digest struct {
	Words  []uint32
	Fields []field.Element
}

// Encode returns the canonical big-endian encoding of v, zero-padded on the
// left to width bytes. width must be 32 or 64.
func Encode(v *uint256.Int, width int) ([]byte, error) {
	if width != 32 && width != 64 {
		return nil, ErrUnsupportedWidth
	}
	out := make([]byte, width)
	b := v.Bytes32()
	copy(out[width-32:], b[:])
	return out, nil
}

// Sum hashes the width-byte canonical encoding of v with SHA-256 and splits
// the digest into words and packed fields. Identical input always yields an
// identical Digest.
func Sum(v *uint256.Int, width int) (Digest, error) {
	enc, err := Encode(v, width)
	if err != nil {
		return Digest{}, err
	}
	sum := sha256.Sum256(enc)
	words, err := bitpack.BytesToWords(sum[:])
	if err != nil {
		return Digest{}, err
	}
	fields, err := bitpack.PackWords(words)
	if err != nil {
		return Digest{}, err
	}
	return Digest{Words: words, Fields: fields}, nil
}
