// Package blend implements source-over compositing on non-premultiplied
// RGBA8 pixels.
//
// Pixels are stored straight (non-premultiplied) because both the target
// image and the working canvas are compared channel by channel. The
// arithmetic runs in premultiplied integer form and is converted back, so
// the blend matches the Porter-Duff operator S + D*(1-Sa).
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites a straight-alpha source color over a straight-alpha
// destination color and returns the straight-alpha result.
//
// Formula (premultiplied): out = S*Sa + D*Da*(1-Sa), outA = Sa + Da*(1-Sa)
//
// A fully opaque source replaces the destination exactly; a fully
// transparent source leaves it unchanged.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch sa {
	case 255:
		return sr, sg, sb, 255
	case 0:
		return dr, dg, db, da
	}

	if da == 255 {
		// Opaque destination stays opaque: a plain lerp per channel.
		inv := inv255(sa)
		return lerp(sr, dr, sa, inv), lerp(sg, dg, sa, inv), lerp(sb, db, sa, inv), 255
	}

	// Weights scaled by 255: source weight Sa*255, destination Da*(255-Sa).
	ws := uint32(sa) * 255
	wd := uint32(da) * uint32(inv255(sa))
	outA := ws + wd
	if outA == 0 {
		return 0, 0, 0, 0
	}
	r = clamp255(divRound(uint32(sr)*ws+uint32(dr)*wd, outA))
	g = clamp255(divRound(uint32(sg)*ws+uint32(dg)*wd, outA))
	b = clamp255(divRound(uint32(sb)*ws+uint32(db)*wd, outA))
	a = clamp255(divRound(outA, 255))
	return r, g, b, a
}

// lerp blends s over an opaque d with weight sa (inv = 255 - sa).
func lerp(s, d, sa, inv byte) byte {
	return byte(div255(uint32(s)*uint32(sa) + uint32(d)*uint32(inv)))
}

// FillSpan composites one color over n consecutive RGBA8 pixels of dst.
// dst must hold at least n*4 bytes.
func FillSpan(dst []byte, n int, r, g, b, a byte) {
	if n <= 0 || a == 0 {
		return
	}
	dst = dst[:n*4]

	if a == 255 {
		for i := 0; i < len(dst); i += 4 {
			dst[i+0] = r
			dst[i+1] = g
			dst[i+2] = b
			dst[i+3] = 255
		}
		return
	}

	for i := 0; i < len(dst); i += 4 {
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = SourceOver(
			r, g, b, a,
			dst[i+0], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}

// SquaredDiff returns the sum of squared byte differences of two equally
// sized spans.
func SquaredDiff(a, b []byte) uint64 {
	b = b[:len(a)]
	var sum uint64
	for i := range a {
		d := int32(a[i]) - int32(b[i])
		sum += uint64(d * d)
	}
	return sum
}
