// Package bitpack converts between the integer, boolean-sequence, 32-bit
// word, and packed-field representations the circuit loader consumes.
//
// Bit sequences are most-significant-bit first throughout.
package bitpack

import (
	"encoding/binary"
	"errors"

	"github.com/holiman/uint256"

	"github.com/smallyu/go-zk-vectorgen/internal/crypto/field"
)

var (
	// ErrValueTooWide is returned when an integer does not fit the
	// requested bit width.
	ErrValueTooWide = errors.New("bitpack: value exceeds bit width")

	// ErrUnalignedBuffer is returned when a byte buffer is not a whole
	// number of 32-bit words.
	ErrUnalignedBuffer = errors.New("bitpack: buffer length not a multiple of 4")
)

// WordsPerField is the number of 32-bit words packed into one field element.
const WordsPerField = 4

// IntToBits returns the width-bit binary expansion of n, most significant
// bit first, zero-padded on the left. width must not exceed 256.
func IntToBits(n *uint256.Int, width int) ([]bool, error) {
	if width > 256 || n.BitLen() > width {
		return nil, ErrValueTooWide
	}
	bits := make([]bool, width)
	for i := range bits {
		bits[i] = bit(n, width-1-i) == 1
	}
	return bits, nil
}

// PackBits reconstructs the integer from a most-significant-first boolean
// sequence, the inverse of IntToBits at the same width. len(bits) must not
// exceed 256.
func PackBits(bits []bool) *uint256.Int {
	out := new(uint256.Int)
	width := len(bits)
	for i, b := range bits {
		if b {
			setBit(out, width-1-i)
		}
	}
	return out
}

// BytesToWords splits buf into big-endian unsigned 32-bit words.
func BytesToWords(buf []byte) ([]uint32, error) {
	if len(buf)%4 != 0 {
		return nil, ErrUnalignedBuffer
	}
	words := make([]uint32, len(buf)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[4*i:])
	}
	return words, nil
}

// WordsToField packs 4 consecutive 32-bit words into one field element with
// big-endian significance: words[0] lands in bits 96..127, words[3] in bits
// 0..31. The 128-bit result is reduced modulo the field modulus.
func WordsToField(words [WordsPerField]uint32) field.Element {
	var v uint256.Int
	v[1] = uint64(words[0])<<32 | uint64(words[1])
	v[0] = uint64(words[2])<<32 | uint64(words[3])
	return field.FromUint256(&v)
}

// FieldToWords splits the low 128 bits of e back into 4 big-endian 32-bit
// words, the inverse of WordsToField for elements below 2^128.
func FieldToWords(e field.Element) [WordsPerField]uint32 {
	v := e.Uint256()
	return [WordsPerField]uint32{
		uint32(v[1] >> 32),
		uint32(v[1]),
		uint32(v[0] >> 32),
		uint32(v[0]),
	}
}

// PackWords groups words 4 at a time into field elements: a 512-bit value
// becomes exactly 4 elements, a 256-bit digest exactly 2.
func PackWords(words []uint32) ([]field.Element, error) {
	if len(words)%WordsPerField != 0 {
		return nil, ErrUnalignedBuffer
	}
	fields := make([]field.Element, len(words)/WordsPerField)
	for i := range fields {
		var chunk [WordsPerField]uint32
		copy(chunk[:], words[WordsPerField*i:])
		fields[i] = WordsToField(chunk)
	}
	return fields, nil
}

func bit(x *uint256.Int, i int) uint64 {
	return (x[i/64] >> (uint(i) % 64)) & 1
}

func setBit(x *uint256.Int, i int) {
	x[i/64] |= 1 << (uint(i) % 64)
}
