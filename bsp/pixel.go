package bsp

// rgb565 packs 8-bit channels into a native RGB565 pixel.
func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands an RGB565 pixel back to 8-bit channels.
func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8((p >> 11) & 0x1F)
	g = uint8((p >> 5) & 0x3F)
	b = uint8(p & 0x1F)
	return uint8(uint16(r) * 255 / 31), uint8(uint16(g) * 255 / 63), uint8(uint16(b) * 255 / 31)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
