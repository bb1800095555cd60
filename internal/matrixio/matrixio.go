// Package matrixio reads and writes module grids as plain text, one row per
// line.
package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Davincible/qrmeta/pkg/mask"
)

const (
	DefaultDark  = "#1X"
	DefaultLight = ".0_ "
)

var (
	ErrEmpty       = errors.New("matrixio: no rows")
	ErrNotSquare   = errors.New("matrixio: matrix is not square")
	ErrUnknownRune = errors.New("matrixio: unknown module character")
)

// Parse reads a square grid. Characters in dark mark dark modules and those
// in light mark light ones; anything else is an error. Lines that are empty
// after trimming trailing whitespace are skipped, so light must not rely on
// trailing spaces.
func Parse(r io.Reader, dark, light string) (mask.Grid, error) {
	var rows [][]bool
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), 1<<20)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if text == "" {
			continue
		}

		row := make([]bool, 0, len(text))
		for col, ch := range []rune(text) {
			switch {
			case strings.ContainsRune(dark, ch):
				row = append(row, true)
			case strings.ContainsRune(light, ch):
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrUnknownRune, ch, line, col+1)
			}
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d modules, expected %d", ErrNotSquare, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matrix: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if len(rows) != len(rows[0]) {
		return nil, fmt.Errorf("%w: %d rows of %d modules", ErrNotSquare, len(rows), len(rows[0]))
	}
	return mask.Grid(rows), nil
}

// Format writes m using one rune per module.
func Format(w io.Writer, m mask.Matrix, dark, light rune) error {
	bw := bufio.NewWriter(w)
	n := m.ModuleCount()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			ch := light
			if m.IsDark(row, col) {
				ch = dark
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
