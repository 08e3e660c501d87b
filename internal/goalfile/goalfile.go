// Package goalfile reads and writes the ASCII 0/1 matrix file format used to
// pass a goal matrix to the CLI. The format is the one original_source's
// matrix.h read (and, implicitly, wrote via pretty_matrix): N*N characters,
// each '0' or '1', with arbitrary whitespace (space, tab, CR, LF) permitted
// between them and at either end.
package goalfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/boolmat/cnotbfs/internal/bitmatrix"
)

// Read parses the goal matrix out of the file at path for dimension n.
func Read(path string, n int) (bitmatrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrGoalFile, path, err)
	}
	defer f.Close()

	m, err := Parse(f, n)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrGoalFile, path, err)
	}

	return m, nil
}

// Parse reads exactly n*n 0/1 digits from r, skipping whitespace runs
// between them, and packs them row-major into a Matrix. Any other
// character, or running out of input early, is a format error.
func Parse(r io.Reader, n int) (bitmatrix.Matrix, error) {
	br := bufio.NewReader(r)

	var m bitmatrix.Matrix

	idx := 0

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c, err := nextDigit(br)
			if err != nil {
				return 0, fmt.Errorf("reading bit %d (row %d, col %d): %w", idx, i, j, err)
			}

			switch c {
			case '1':
				m |= 1 << uint(idx)
			case '0':
				// no-op: bit already 0
			}

			idx++
		}
	}

	return m, nil
}

func nextDigit(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, ErrUnexpectedEOF
			}

			return 0, err
		}

		switch c {
		case ' ', '\n', '\t', '\r':
			continue
		case '0', '1':
			return c, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}
	}
}

// Format renders m as n*n 0/1 digits, one row per line, no separators
// within a row — the inverse of Parse, suitable for round-tripping a goal
// file.
func Format(m bitmatrix.Matrix, n int) string {
	buf := make([]byte, 0, n*(n+1))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bitmatrix.Bit(m, i, j, n) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}

		buf = append(buf, '\n')
	}

	return string(buf)
}
