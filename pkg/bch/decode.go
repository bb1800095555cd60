package bch

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrUncorrectable is returned when a read word is too far from every valid
// codeword to be corrected.
var ErrUncorrectable = errors.New("bch: too many bit errors")

// Both codes have minimum distance 7 and so correct up to three bit errors.
const maxCorrectable = 3

// Version information exists for versions 7 to 40.
const (
	minInfoVersion = 7
	maxInfoVersion = 40
)

// DecodeFormatInfo finds the 5-bit format data whose codeword is nearest to v
// in Hamming distance. The distance is returned alongside; ties resolve to
// the lowest data value.
func DecodeFormatInfo(v uint32) (data uint32, distance int, err error) {
	distance = FormatInfoBits + 1
	for d := uint32(0); d < 1<<5; d++ {
		dist := bits.OnesCount32(EncodeFormatInfo(d) ^ v)
		if dist < distance {
			data, distance = d, dist
		}
	}
	if distance > maxCorrectable {
		return 0, distance, fmt.Errorf("%w: format word 0x%04x is %d bits from the nearest codeword", ErrUncorrectable, v, distance)
	}
	return data, distance, nil
}

// DecodeVersionInfo finds the version in [7,40] whose version information is
// nearest to v in Hamming distance.
func DecodeVersionInfo(v uint32) (version int, distance int, err error) {
	distance = VersionInfoBits + 1
	for ver := minInfoVersion; ver <= maxInfoVersion; ver++ {
		dist := bits.OnesCount32(EncodeVersionInfo(uint32(ver)) ^ v)
		if dist < distance {
			version, distance = ver, dist
		}
	}
	if distance > maxCorrectable {
		return 0, distance, fmt.Errorf("%w: version word 0x%05x is %d bits from the nearest codeword", ErrUncorrectable, v, distance)
	}
	return version, distance, nil
}
