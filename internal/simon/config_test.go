package simon

import (
	"errors"
	"testing"
)

func TestLookupLegalPairs(t *testing.T) {
	legal := []struct {
		width, words, rounds, zClass int
	}{
		{16, 4, 32, 0},
		{24, 3, 36, 0},
		{32, 3, 42, 2},
		{32, 4, 44, 3},
		{48, 2, 52, 2},
		{48, 3, 54, 3},
		{64, 2, 68, 2},
		{64, 3, 69, 3},
		{64, 4, 72, 4},
	}
	for _, tc := range legal {
		cfg, err := Lookup(tc.width, tc.words)
		if err != nil {
			t.Fatalf("Lookup(%d,%d): %v", tc.width, tc.words, err)
		}
		if cfg.Rounds != tc.rounds || cfg.ZClass != tc.zClass {
			t.Errorf("Lookup(%d,%d) = T=%d z%d, want T=%d z%d",
				tc.width, tc.words, cfg.Rounds, cfg.ZClass, tc.rounds, tc.zClass)
		}
		if cfg.constBase != cfg.mask^3 {
			t.Errorf("Lookup(%d,%d): constBase %#x, want mask^3", tc.width, tc.words, cfg.constBase)
		}
	}
}

func TestLookupRejectsUnknownPairs(t *testing.T) {
	for _, tc := range [][2]int{{16, 2}, {16, 3}, {24, 2}, {32, 2}, {48, 4}, {96, 2}, {8, 4}, {64, 5}} {
		_, err := Lookup(tc[0], tc[1])
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("Lookup(%d,%d): err = %v, want ConfigurationError", tc[0], tc[1], err)
		}
	}
}

func TestLookupRejectsUnverifiedSimon4896(t *testing.T) {
	_, err := Lookup(24, 4)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Lookup(24,4): err = %v, want ConfigurationError", err)
	}
	if cfgErr.WordWidth != 24 || cfgErr.KeyWords != 4 {
		t.Errorf("ConfigurationError carries (%d,%d), want (24,4)", cfgErr.WordWidth, cfgErr.KeyWords)
	}
}

func TestConfigurationsCatalogue(t *testing.T) {
	infos := Configurations()
	if len(infos) != 10 {
		t.Fatalf("catalogue has %d entries, want 10", len(infos))
	}
	verified := 0
	for _, info := range infos {
		if info.BlockBits != 2*info.WordWidth || info.KeyBits != info.KeyWords*info.WordWidth {
			t.Errorf("%s: inconsistent derived sizes", info.Name)
		}
		if info.Verified {
			verified++
		} else if info.Name != "SIMON48/96" {
			t.Errorf("unexpected unverified entry %s", info.Name)
		}
	}
	if verified != 9 {
		t.Errorf("%d verified entries, want 9", verified)
	}
}

func TestWordMask(t *testing.T) {
	if wordMask(16) != 0xffff || wordMask(24) != 0xffffff || wordMask(64) != ^uint64(0) {
		t.Fatal("wordMask broken")
	}
}
