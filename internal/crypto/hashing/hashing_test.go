package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-zk-vectorgen/internal/crypto/bitpack"
)

func TestEncodeWidths(t *testing.T) {
	v := uint256.NewInt(0xABCD)

	enc32, err := Encode(v, 32)
	require.NoError(t, err)
	require.Len(t, enc32, 32)
	require.Equal(t, byte(0xAB), enc32[30])
	require.Equal(t, byte(0xCD), enc32[31])

	enc64, err := Encode(v, 64)
	require.NoError(t, err)
	require.Len(t, enc64, 64)
	require.Equal(t, enc32, enc64[32:])
	require.Equal(t, make([]byte, 32), enc64[:32])

	_, err = Encode(v, 16)
	require.ErrorIs(t, err, ErrUnsupportedWidth)
}

func TestSumKnownVectors(t *testing.T) {
	// SHA-256 of 32 and 64 zero bytes.
	cases := []struct {
		width int
		hex   string
	}{
		{32, "66687aadf862bd776c8fc18b8e9f8e20089714856ee233b3902a591d0d5f2925"},
		{64, "f5a5fd42d16a20302798ef6ed309979b43003d2320d9f0e8ea9831a92759fb4b"},
	}
	for _, tc := range cases {
		d, err := Sum(uint256.NewInt(0), tc.width)
		require.NoError(t, err)

		raw, err := hex.DecodeString(tc.hex)
		require.NoError(t, err)
		wantWords, err := bitpack.BytesToWords(raw)
		require.NoError(t, err)
		require.Equal(t, wantWords, d.Words)
	}
}

func TestSumMatchesDirectDigest(t *testing.T) {
	v := uint256.NewInt(123456789)
	enc, err := Encode(v, 32)
	require.NoError(t, err)
	sum := sha256.Sum256(enc)

	d, err := Sum(v, 32)
	require.NoError(t, err)

	wantWords, err := bitpack.BytesToWords(sum[:])
	require.NoError(t, err)
	require.Equal(t, wantWords, d.Words)
	require.Len(t, d.Fields, 2)

	wantFields, err := bitpack.PackWords(wantWords)
	require.NoError(t, err)
	require.Equal(t, wantFields, d.Fields)
}

func TestSumDeterministic(t *testing.T) {
	v := uint256.MustFromDecimal("987654321987654321987654321")
	a, err := Sum(v, 32)
	require.NoError(t, err)
	b, err := Sum(v, 32)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSumRejectsBadWidth(t *testing.T) {
	_, err := Sum(uint256.NewInt(1), 48)
	require.ErrorIs(t, err, ErrUnsupportedWidth)
}
