package bch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLevel       = errors.New("bch: invalid error correction level")
	ErrInvalidMaskPattern = errors.New("bch: invalid mask pattern")
)

// Level is an error correction level as it appears in the format information.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15%
	LevelQ              // ~25%
	LevelH              // ~30%
)

// MaskPatterns is the number of standard data mask patterns.
const MaskPatterns = 8

// FormatBits returns the two-bit indicator written into the format
// information. The encoding is not in level order.
func (l Level) FormatBits() uint32 {
	switch l {
	case LevelL:
		return 0b01
	case LevelM:
		return 0b00
	case LevelQ:
		return 0b11
	case LevelH:
		return 0b10
	default:
		panic(fmt.Sprintf("bch: unknown level %d", int(l)))
	}
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel accepts the one-letter level names, or the long names low,
// medium, quartile and high, in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return LevelL, nil
	case "m", "medium":
		return LevelM, nil
	case "q", "quartile":
		return LevelQ, nil
	case "h", "high":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// FormatData packs a level and mask pattern into the 5-bit format data
// accepted by EncodeFormatInfo.
func FormatData(level Level, pattern int) (uint32, error) {
	if level < LevelL || level > LevelH {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	if pattern < 0 || pattern >= MaskPatterns {
		return 0, fmt.Errorf("%w: %d is not in range 0 to %d", ErrInvalidMaskPattern, pattern, MaskPatterns-1)
	}
	return level.FormatBits()<<3 | uint32(pattern), nil
}

// SplitFormatData is the inverse of FormatData.
func SplitFormatData(data uint32) (Level, int) {
	var level Level
	switch (data >> 3) & 0b11 {
	case 0b01:
		level = LevelL
	case 0b00:
		level = LevelM
	case 0b11:
		level = LevelQ
	case 0b10:
		level = LevelH
	}
	return level, int(data & 0b111)
}
