package vector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/smallyu/go-zk-vectorgen/internal/crypto/curve"
	"github.com/smallyu/go-zk-vectorgen/internal/crypto/field"
)

// PointFields returns the 2-element field representation of a point.
// Infinity is conventionally encoded as [0, 0].
func PointFields(p curve.Point) [2]field.Element {
	if p.IsInfinity() {
		return [2]field.Element{field.New(0), field.New(0)}
	}
	return [2]field.Element{p.X, p.Y}
}

// FormatFieldArray renders field elements as `["<decimal>", "<decimal>"]`.
func FormatFieldArray(elems []field.Element) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.Quote(e.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatWordArray renders 32-bit words as `["<decimal>", "<decimal>"]`.
func FormatWordArray(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = strconv.Quote(strconv.FormatUint(uint64(w), 10))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatBoolArray renders a bit sequence as `[true, false, ...]` in its
// stored most-significant-bit-first order. This is the canonical convention
// for everything the circuit loader reads.
func FormatBoolArray(bits []bool) string {
	parts := make([]string, len(bits))
	for i, b := range bits {
		parts[i] = strconv.FormatBool(b)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatBoolArrayLE renders the sequence reversed, least significant bit
// first, for circuits that index bit arrays little-endian. Not used by the
// default console path.
func FormatBoolArrayLE(bits []bool) string {
	rev := make([]bool, len(bits))
	for i, b := range bits {
		rev[len(bits)-1-i] = b
	}
	return FormatBoolArray(rev)
}

// FormatPoint renders a point as its 2-element field pair.
func FormatPoint(p curve.Point) string {
	pair := PointFields(p)
	return FormatFieldArray(pair[:])
}

// WriteConsole writes the labeled blocks of the vector in the loader's
// canonical order.
func (r *Record) WriteConsole(w io.Writer) error {
	lines := []string{
		"// gamma as bool[256]:",
		FormatBoolArray(r.GammaBits),
		"// beta as bool[256]:",
		FormatBoolArray(r.BetaBits),
		"// b_g_scalar as bool[256]:",
		FormatBoolArray(r.BGBits),
		"// hash_gamma as u32[8]:",
		FormatWordArray(r.HashGamma.Words),
		"// gen as field[2]:",
		FormatPoint(r.Gen),
		"// gg as field[2]:",
		FormatPoint(r.GG),
		"// gb as field[2]:",
		FormatPoint(r.GB),
		"// c_star as field[2]:",
		FormatPoint(r.CStar),
		"gamma int: " + r.Gamma.Dec(),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteInput writes the vector in the loader's file layout, one numeric
// value per line: gamma's 256 bits, beta's 256 bits, b_g's 256 bits, the 8
// digest words, then the four field pairs (gen, gg, gb, c_star) as 2 lines
// each. The line order and count are a hard external interface.
func (r *Record) WriteInput(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, bits := range [][]bool{r.GammaBits, r.BetaBits, r.BGBits} {
		for _, b := range bits {
			v := 0
			if b {
				v = 1
			}
			if _, err := fmt.Fprintln(bw, v); err != nil {
				return err
			}
		}
	}
	for _, word := range r.HashGamma.Words {
		if _, err := fmt.Fprintln(bw, word); err != nil {
			return err
		}
	}
	for _, p := range []curve.Point{r.Gen, r.GG, r.GB, r.CStar} {
		for _, e := range PointFields(p) {
			if _, err := fmt.Fprintln(bw, e.String()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteInputFile writes the loader file at path. The file is created only
// once the Record is fully computed, and is closed on every exit path with
// the close error propagated.
func (r *Record) WriteInputFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return r.WriteInput(f)
}
