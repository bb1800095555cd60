// Package symbol maps a QR Code version to its physical dimensions and
// codeword capacity.
package symbol

import (
	"errors"
	"fmt"
)

const (
	MinVersion = 1
	MaxVersion = 40

	// First version that carries the 18-bit version information blocks
	versionInfoFrom = 7
)

// ErrInvalidVersion is returned when a version is missing or outside [1,40].
var ErrInvalidVersion = errors.New("symbol: invalid version")

// Total number of data and EC codewords per version. Index 0 is unused.
var totalCodewords = [MaxVersion + 1]int{
	0,
	26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// ValidVersion reports whether version lies in [MinVersion, MaxVersion].
func ValidVersion(version int) bool {
	return version >= MinVersion && version <= MaxVersion
}

// SymbolSize returns the side length in modules of a symbol of the given
// version. A zero version is treated as missing.
func SymbolSize(version int) (int, error) {
	if version == 0 {
		return 0, fmt.Errorf("%w: version is required", ErrInvalidVersion)
	}
	if !ValidVersion(version) {
		return 0, fmt.Errorf("%w: %d is not in range %d to %d", ErrInvalidVersion, version, MinVersion, MaxVersion)
	}
	return version*4 + 17, nil
}

// TotalCodewords returns the number of codewords used to store data and EC
// information. The version is not checked: callers validate it first, and an
// index outside [0,40] panics.
func TotalCodewords(version int) int {
	return totalCodewords[version]
}

// HasVersionInfo reports whether symbols of this version embed version
// information.
func HasVersionInfo(version int) bool {
	return version >= versionInfoFrom
}
