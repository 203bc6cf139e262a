package simon

// keyScheduleWord computes the fresh trailing word of the key window. The
// window is ordered oldest first; during decryption it holds round keys in
// descending index order, which is why the rotate/XOR source positions are
// mirrored there. roundConstant is (2^n - 4) XOR the sequence bit.
func keyScheduleWord(cfg *Config, window []uint64, dir Direction, roundConstant uint64) uint64 {
	width := cfg.WordWidth
	var t uint64
	switch cfg.KeyWords {
	case 2:
		t = rotr(window[1], 3, width)
	case 3:
		src := window[2]
		if dir == Decrypt {
			src = window[1]
		}
		t = rotr(src, 3, width)
	case 4:
		rotSrc, xorSrc := window[3], window[1]
		if dir == Decrypt {
			rotSrc, xorSrc = window[1], window[3]
		}
		t = rotr(rotSrc, 3, width) ^ xorSrc
	}
	return (t ^ window[0] ^ rotr(t, 1, width) ^ roundConstant) & cfg.mask
}
