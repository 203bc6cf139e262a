package simon

// rotl rotates the low `width` bits of x left by r. Callers guarantee
// 0 < r < width.
func rotl(x uint64, r, width int) uint64 {
	return ((x << uint(r)) | (x >> uint(width-r))) & wordMask(width)
}

// rotr rotates the low `width` bits of x right by r.
func rotr(x uint64, r, width int) uint64 {
	return ((x >> uint(r)) | (x << uint(width-r))) & wordMask(width)
}

// feistel is SIMON's round function f(x) = (x<<<1 & x<<<8) ^ x<<<2.
func feistel(x uint64, width int) uint64 {
	return (rotl(x, 1, width) & rotl(x, 8, width)) ^ rotl(x, 2, width)
}

// roundStep applies one Feistel round to the text state. The halves
// exchange roles every step.
func roundStep(x, y, roundKey uint64, width int) (uint64, uint64) {
	return (y ^ feistel(x, width) ^ roundKey) & wordMask(width), x
}
