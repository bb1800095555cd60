package mask

import "math"

const (
	adjacentBase      = 3
	adjacentThreshold = 5
	blockWeight       = 3
	finderWeight      = 40
	balanceWeight     = 10
	finderWidth       = 7
)

// Penalty holds the contribution of each scoring rule.
type Penalty struct {
	// Adjacent penalises modules with more than five same-coloured neighbours.
	Adjacent float64 `json:"adjacent"`
	// Blocks penalises 2x2 blocks of one colour.
	Blocks float64 `json:"blocks"`
	// FinderLike penalises 1:1:3:1:1 dark-light runs in rows and columns.
	FinderLike float64 `json:"finder_like"`
	// Balance penalises deviation of the dark ratio from one half.
	Balance float64 `json:"balance"`
}

// Total sums the rules in the order Evaluate accumulates them.
func (p Penalty) Total() float64 {
	return p.Adjacent + p.Blocks + p.FinderLike + p.Balance
}

// Evaluate returns the penalty score of m. Lower is better. The score is not
// necessarily integral and is only meaningful relative to other candidates of
// the same symbol.
//
// m is assumed to be square and non-empty; it is not validated.
func Evaluate(m Matrix) float64 {
	return Breakdown(m).Total()
}

// Breakdown scores m rule by rule.
func Breakdown(m Matrix) Penalty {
	n := m.ModuleCount()
	return Penalty{
		Adjacent:   float64(adjacentPenalty(m, n)),
		Blocks:     float64(blockPenalty(m, n)),
		FinderLike: float64(finderPenalty(m, n)),
		Balance:    balancePenalty(m, n),
	}
}

// adjacentPenalty counts, for every module, the neighbours of the same colour
// in its clipped 3x3 neighbourhood. This is a density rule, not the run
// length rule of ISO/IEC 18004, and must stay that way: mask selection
// depends on its exact output.
func adjacentPenalty(m Matrix, n int) int {
	penalty := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			dark := m.IsDark(row, col)
			same := 0
			for r := row - 1; r <= row+1; r++ {
				if r < 0 || r >= n {
					continue
				}
				for c := col - 1; c <= col+1; c++ {
					if c < 0 || c >= n || (r == row && c == col) {
						continue
					}
					if m.IsDark(r, c) == dark {
						same++
					}
				}
			}
			if same > adjacentThreshold {
				penalty += adjacentBase + same - adjacentThreshold
			}
		}
	}
	return penalty
}

func blockPenalty(m Matrix, n int) int {
	penalty := 0
	for row := 0; row < n-1; row++ {
		for col := 0; col < n-1; col++ {
			count := 0
			for _, dark := range [4]bool{
				m.IsDark(row, col),
				m.IsDark(row+1, col),
				m.IsDark(row, col+1),
				m.IsDark(row+1, col+1),
			} {
				if dark {
					count++
				}
			}
			if count == 0 || count == 4 {
				penalty += blockWeight
			}
		}
	}
	return penalty
}

// finderPattern is dark, light, dark, dark, dark, light, dark.
var finderPattern = [finderWidth]bool{true, false, true, true, true, false, true}

func finderPenalty(m Matrix, n int) int {
	penalty := 0
	horizontal := func(row, col int) bool { return m.IsDark(row, col) }
	vertical := func(col, row int) bool { return m.IsDark(row, col) }
	for _, at := range []func(line, pos int) bool{horizontal, vertical} {
		for line := 0; line < n; line++ {
			for start := 0; start < n-finderWidth+1; start++ {
				if finderAt(at, line, start) {
					penalty += finderWeight
				}
			}
		}
	}
	return penalty
}

func finderAt(at func(line, pos int) bool, line, start int) bool {
	for i, dark := range finderPattern {
		if at(line, start+i) != dark {
			return false
		}
	}
	return true
}

func balancePenalty(m Matrix, n int) float64 {
	dark := 0
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			if m.IsDark(row, col) {
				dark++
			}
		}
	}
	ratio := math.Abs(float64(100*dark)/float64(n)/float64(n)-50) / 5
	return ratio * balanceWeight
}
