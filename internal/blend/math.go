package blend

// div255 divides x by 255, rounding to nearest, without a division.
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula; it is exact for all products of two
// bytes (0 to 65025).
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// divRound divides num by den rounding to nearest. den must be non-zero.
func divRound(num, den uint32) uint32 {
	return (num + den/2) / den
}

// clamp255 clamps a uint32 to byte range [0, 255].
func clamp255(x uint32) byte {
	if x > 255 {
		return 255
	}
	return byte(x)
}
