// Package bch computes the BCH parity that protects the QR Code format and
// version information fields.
//
// Both codes are systematic: the data bits are shifted left to make room for
// the remainder of a GF(2) polynomial division by a fixed generator, and the
// remainder is appended. The format information is additionally XORed with a
// fixed mask so that it is never all zero.
package bch

const (
	// G15 is x^10 + x^8 + x^5 + x^4 + x^2 + x + 1, the (15,5) format generator.
	G15 uint32 = 1<<10 | 1<<8 | 1<<5 | 1<<4 | 1<<2 | 1<<1 | 1<<0

	// G18 is x^12 + x^11 + x^10 + x^9 + x^8 + x^5 + x^2 + 1, the (18,6)
	// version generator.
	G18 uint32 = 1<<12 | 1<<11 | 1<<10 | 1<<9 | 1<<8 | 1<<5 | 1<<2 | 1<<0

	// G15Mask is XORed over the encoded format information.
	G15Mask uint32 = 1<<14 | 1<<12 | 1<<10 | 1<<4 | 1<<1

	formatParityBits  = 10
	versionParityBits = 12

	FormatInfoBits  = 15
	VersionInfoBits = 18
)

// BitLength returns the 1-indexed position of the most significant set bit,
// or 0 for 0. It is the degree of v plus one when v is read as a polynomial.
func BitLength(v uint32) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}

// remainder divides data by gen over GF(2) and returns the remainder.
// Every step clears the leading bit, so the loop runs at most BitLength(data)
// times.
func remainder(data, gen uint32) uint32 {
	genLen := BitLength(gen)
	d := data
	for BitLength(d)-genLen >= 0 {
		d ^= gen << (BitLength(d) - genLen)
	}
	return d
}

// EncodeFormatInfo returns the 15-bit format information for 5 bits of
// format data (EC level bits followed by the mask pattern index).
// Bits above the low five are not rejected.
func EncodeFormatInfo(data uint32) uint32 {
	d := data << formatParityBits
	return (d | remainder(d, G15)) ^ G15Mask
}

// EncodeVersionInfo returns the 18-bit version information for a 6-bit
// version number. It is only meaningful for versions 7 to 40; the range is
// the caller's responsibility.
func EncodeVersionInfo(data uint32) uint32 {
	d := data << versionParityBits
	return d | remainder(d, G18)
}

// VerifyFormatInfo reports whether v is a well-formed format information word.
func VerifyFormatInfo(v uint32) bool {
	if v>>FormatInfoBits != 0 {
		return false
	}
	data := (v ^ G15Mask) >> formatParityBits
	return EncodeFormatInfo(data) == v
}

// VerifyVersionInfo reports whether v is a well-formed version information
// word. The data bits themselves are not range checked.
func VerifyVersionInfo(v uint32) bool {
	if v>>VersionInfoBits != 0 {
		return false
	}
	return EncodeVersionInfo(v>>versionParityBits) == v
}
