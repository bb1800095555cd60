package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Davincible/qrmeta/pkg/bch"
	"github.com/Davincible/qrmeta/pkg/symbol"
)

var (
	hexPattern    = regexp.MustCompile(`^(0[xX])?[0-9a-fA-F]+$`)
	binaryPattern = regexp.MustCompile(`^0[bB][01]+$`)
)

func ValidateVersion(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("version cannot be empty")
	}

	version, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("version must be a number (got %q)", input)
	}

	if !symbol.ValidVersion(version) {
		return 0, fmt.Errorf("version must be between %d and %d (got %d)", symbol.MinVersion, symbol.MaxVersion, version)
	}

	return version, nil
}

func ValidateInfoVersion(input string) (int, error) {
	version, err := ValidateVersion(input)
	if err != nil {
		return 0, err
	}

	if !symbol.HasVersionInfo(version) {
		return 0, fmt.Errorf("version %d carries no version information (versions 7 and up do)", version)
	}

	return version, nil
}

func ValidateMaskPattern(input string) (int, error) {
	input = strings.TrimSpace(input)

	pattern, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("mask pattern must be a number (got %q)", input)
	}

	if pattern < 0 || pattern >= bch.MaskPatterns {
		return 0, fmt.Errorf("mask pattern must be between 0 and %d (got %d)", bch.MaskPatterns-1, pattern)
	}

	return pattern, nil
}

// ValidateWord parses a hex (optionally 0x-prefixed) or 0b-prefixed binary
// word of at most bits significant bits.
func ValidateWord(input string, bits int) (uint32, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("word cannot be empty")
	}

	var (
		value uint64
		err   error
	)
	switch {
	case binaryPattern.MatchString(input):
		value, err = strconv.ParseUint(input[2:], 2, 32)
	case hexPattern.MatchString(input):
		value, err = strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X"), 16, 32)
	default:
		return 0, fmt.Errorf("word must be hex or 0b-prefixed binary (got %q)", input)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid word: %w", err)
	}

	if value>>bits != 0 {
		return 0, fmt.Errorf("word %#x is wider than %d bits", value, bits)
	}

	return uint32(value), nil
}
