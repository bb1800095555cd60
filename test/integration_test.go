package test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/Davincible/qrmeta/pkg/bch"
	"github.com/Davincible/qrmeta/pkg/mask"
	"github.com/Davincible/qrmeta/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSymbol is a stand-in for an encoder's matrix: finder patterns,
// separators, timing patterns and random data modules.
type testSymbol struct {
	size     int
	modules  [][]bool
	function [][]bool
}

func newTestSymbol(t *testing.T, version int, seed int64) *testSymbol {
	t.Helper()
	size, err := symbol.SymbolSize(version)
	require.NoError(t, err)

	s := &testSymbol{size: size, modules: mask.NewGrid(size), function: mask.NewGrid(size)}

	finder := func(r, c int) {
		for i := -1; i <= 7; i++ {
			for j := -1; j <= 7; j++ {
				row, col := r+i, c+j
				if row < 0 || col < 0 || row >= size || col >= size {
					continue
				}
				s.function[row][col] = true
				ring := i == 0 || i == 6 || j == 0 || j == 6
				core := i >= 2 && i <= 4 && j >= 2 && j <= 4
				s.modules[row][col] = i >= 0 && i <= 6 && j >= 0 && j <= 6 && (ring || core)
			}
		}
	}
	finder(0, 0)
	finder(0, size-7)
	finder(size-7, 0)

	for i := 8; i < size-8; i++ {
		s.function[6][i], s.modules[6][i] = true, i%2 == 0
		s.function[i][6], s.modules[i][6] = true, i%2 == 0
	}

	// format information areas
	for i := 0; i < 9; i++ {
		s.function[8][i] = true
		s.function[i][8] = true
	}
	for i := 0; i < 8; i++ {
		s.function[8][size-1-i] = true
		s.function[size-1-i][8] = true
	}

	rng := rand.New(rand.NewSource(seed))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !s.function[row][col] {
				s.modules[row][col] = rng.Intn(2) == 1
			}
		}
	}

	return s
}

func (s *testSymbol) ModuleCount() int          { return s.size }
func (s *testSymbol) IsDark(row, col int) bool { return s.modules[row][col] }
func (s *testSymbol) reserved(row, col int) bool {
	return s.function[row][col]
}

// formatPositions lists the primary format information cells, bit 0 first.
func formatPositions() [][2]int {
	return [][2]int{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}
}

func embedFormat(g mask.Grid, word uint32) {
	for i, p := range formatPositions() {
		g[p[0]][p[1]] = (word>>i)&1 == 1
	}
}

func readFormat(m mask.Matrix) uint32 {
	var word uint32
	for i, p := range formatPositions() {
		if m.IsDark(p[0], p[1]) {
			word |= 1 << i
		}
	}
	return word
}

func TestPipeline_MaskSelectionAndFormatInfo(t *testing.T) {
	for _, version := range []int{1, 2, 5} {
		sym := newTestSymbol(t, version, int64(version))
		candidates := mask.Candidates(sym, sym.reserved)

		best, score, err := mask.Select(candidates)
		require.NoError(t, err)
		require.GreaterOrEqual(t, best, 0)

		scores, err := mask.EvaluateAll(context.Background(), candidates, 4)
		require.NoError(t, err)
		parBest, parScore := mask.Best(scores)
		assert.Equal(t, best, parBest)
		assert.Equal(t, score, parScore)

		chosen := mask.Grid(make([][]bool, sym.size))
		for row := range chosen {
			chosen[row] = make([]bool, sym.size)
			for col := range chosen[row] {
				chosen[row][col] = candidates[best].IsDark(row, col)
			}
		}

		data, err := bch.FormatData(bch.LevelQ, best)
		require.NoError(t, err)
		embedFormat(chosen, bch.EncodeFormatInfo(data))

		// A reader flips two format modules by mistake and still recovers it.
		chosen[8][0] = !chosen[8][0]
		chosen[3][8] = !chosen[3][8]

		decoded, dist, err := bch.DecodeFormatInfo(readFormat(chosen))
		require.NoError(t, err)
		assert.Equal(t, 2, dist)

		level, pattern := bch.SplitFormatData(decoded)
		assert.Equal(t, bch.LevelQ, level)
		assert.Equal(t, best, pattern, "version %d", version)
	}
}

func TestPipeline_CapacityPlanning(t *testing.T) {
	for v := symbol.MinVersion; v <= symbol.MaxVersion; v++ {
		size, err := symbol.SymbolSize(v)
		require.NoError(t, err)

		// Every codeword needs 8 modules, which must fit in the symbol.
		assert.Less(t, symbol.TotalCodewords(v)*8, size*size, "version %d", v)

		if symbol.HasVersionInfo(v) {
			info := bch.EncodeVersionInfo(uint32(v))
			assert.True(t, bch.VerifyVersionInfo(info))
			got, _, err := bch.DecodeVersionInfo(info)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}
