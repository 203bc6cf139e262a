package simon

import "testing"

// applySchedule runs one schedule step against a copy of the window and
// returns the fresh trailing word, shifting like the engine does.
func applySchedule(cfg *Config, window []uint64, dir Direction, zIndex int) uint64 {
	next := keyScheduleWord(cfg, window, dir, cfg.constBase^zBit(cfg.ZClass, zIndex))
	copy(window, window[1:])
	window[len(window)-1] = next
	return next
}

// Expected round keys derive from the published SIMON128 key-schedule
// vectors (key words lowest first).
func TestKeyScheduleForwardTwoWords(t *testing.T) {
	cfg, err := Lookup(64, 2)
	if err != nil {
		t.Fatal(err)
	}
	window := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}
	want := []uint64{0x79e8db8abd2c1f4c, 0xb852643a0882b4e9, 0x2a984eb1a34b9d62}
	for i, w := range want {
		if got := applySchedule(cfg, window, Encrypt, i); got != w {
			t.Fatalf("rk[%d] = %#016x, want %#016x", i+2, got, w)
		}
	}
}

func TestKeyScheduleForwardThreeWords(t *testing.T) {
	cfg, err := Lookup(64, 3)
	if err != nil {
		t.Fatal(err)
	}
	window := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110}
	want := []uint64{0xfb6a59083fae9dce, 0xc02a1c4270facc90, 0xfcee08a785fd1bb7}
	for i, w := range want {
		if got := applySchedule(cfg, window, Encrypt, i); got != w {
			t.Fatalf("rk[%d] = %#016x, want %#016x", i+3, got, w)
		}
	}
}

func TestKeyScheduleForwardFourWords(t *testing.T) {
	cfg, err := Lookup(64, 4)
	if err != nil {
		t.Fatal(err)
	}
	window := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110, 0x1f1e1d1c1b1a1918}
	want := []uint64{0x7262d303b0a011c3, 0xb5069a3da370ec49, 0x5588439d9423e835}
	for i, w := range want {
		if got := applySchedule(cfg, window, Encrypt, i); got != w {
			t.Fatalf("rk[%d] = %#016x, want %#016x", i+4, got, w)
		}
	}
}

// The decrypt variant must invert the forward recurrence: feeding the
// produced round keys back in descending order recovers the original key.
func TestKeyScheduleDecryptInvertsForward(t *testing.T) {
	for _, pair := range [][2]int{{64, 2}, {64, 3}, {64, 4}, {32, 3}, {32, 4}, {16, 4}} {
		cfg, err := Lookup(pair[0], pair[1])
		if err != nil {
			t.Fatal(err)
		}
		m := cfg.KeyWords
		// expand a few forward steps from an arbitrary key
		rk := make([]uint64, m+8)
		for i := 0; i < m; i++ {
			rk[i] = (0x0123456789abcdef >> uint(i)) & cfg.mask
		}
		for i := m; i < len(rk); i++ {
			window := append([]uint64(nil), rk[i-m:i]...)
			rk[i] = applySchedule(cfg, window, Encrypt, i-m)
		}
		// now walk back: window holds rk descending from the top
		top := len(rk) - 1
		window := make([]uint64, m)
		for i := range window {
			window[i] = rk[top-i]
		}
		for i := top - m; i >= 0; i-- {
			got := keyScheduleWord(cfg, window, Decrypt, cfg.constBase^zBit(cfg.ZClass, i))
			if got != rk[i] {
				t.Fatalf("SIMON%d/%d: recovered rk[%d] = %#x, want %#x",
					2*cfg.WordWidth, m*cfg.WordWidth, i, got, rk[i])
			}
			copy(window, window[1:])
			window[m-1] = got
		}
	}
}
