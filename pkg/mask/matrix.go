// Package mask scores candidate QR Code matrices so the pipeline that builds
// them can keep the mask pattern with the lowest penalty.
//
// The scorer only reads its input through the Matrix interface. Any symbol
// builder can expose its own storage through a small adapter; Grid and Bitmap
// are provided for callers that hold plain module data.
package mask

// Matrix is a read-only view of a square module grid.
type Matrix interface {
	// ModuleCount returns the side length of the grid.
	ModuleCount() int
	// IsDark reports whether the module at (row, col) is dark.
	// Both coordinates are in [0, ModuleCount()).
	IsDark(row, col int) bool
}

// Grid adapts a row-major slice of rows. It must be square.
type Grid [][]bool

func (g Grid) ModuleCount() int { return len(g) }

func (g Grid) IsDark(row, col int) bool { return g[row][col] }

// NewGrid allocates an all-light grid of side n.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	cells := make([]bool, n*n)
	for i := range g {
		g[i], cells = cells[:n:n], cells[n:]
	}
	return g
}

// Bitmap is a bit-packed square grid, one uint64 word slice per row.
type Bitmap struct {
	n     int
	words int
	bits  []uint64
}

// NewBitmap allocates an all-light bitmap of side n.
func NewBitmap(n int) *Bitmap {
	words := (n + 63) / 64
	return &Bitmap{n: n, words: words, bits: make([]uint64, n*words)}
}

// BitmapOf copies any Matrix into a Bitmap.
func BitmapOf(m Matrix) *Bitmap {
	n := m.ModuleCount()
	b := NewBitmap(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if m.IsDark(row, col) {
				b.Set(row, col, true)
			}
		}
	}
	return b
}

func (b *Bitmap) ModuleCount() int { return b.n }

func (b *Bitmap) IsDark(row, col int) bool {
	return b.bits[row*b.words+col/64]&(1<<(col%64)) != 0
}

// Set colours the module at (row, col).
func (b *Bitmap) Set(row, col int, dark bool) {
	i := row*b.words + col/64
	if dark {
		b.bits[i] |= 1 << (col % 64)
	} else {
		b.bits[i] &^= 1 << (col % 64)
	}
}
