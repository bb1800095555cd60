package mask

// PatternFunc reports whether the module at (row, col) is inverted by a data
// mask.
type PatternFunc func(row, col int) bool

// Patterns holds the eight standard data mask conditions, indexed by the
// mask pattern reference written into the format information.
var Patterns = [8]PatternFunc{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)%2 == 0 },
	func(i, j int) bool { return ((i*j)%3+(i+j)%2)%2 == 0 },
}

// Masked is a view of Base with a mask pattern applied. Modules for which
// Reserved returns true (function patterns, format and version areas) are
// passed through unchanged. A nil Reserved masks every module.
type Masked struct {
	Base     Matrix
	Pattern  PatternFunc
	Reserved func(row, col int) bool
}

func (m Masked) ModuleCount() int { return m.Base.ModuleCount() }

func (m Masked) IsDark(row, col int) bool {
	dark := m.Base.IsDark(row, col)
	if m.Reserved != nil && m.Reserved(row, col) {
		return dark
	}
	return dark != m.Pattern(row, col)
}

// Candidates returns one Masked view of base per standard pattern.
func Candidates(base Matrix, reserved func(row, col int) bool) []Matrix {
	out := make([]Matrix, len(Patterns))
	for i, p := range Patterns {
		out[i] = Masked{Base: base, Pattern: p, Reserved: reserved}
	}
	return out
}
