package simonref

import (
	"bytes"
	"testing"
)

// All ten published single-block vectors from the SIMON/SPECK paper, key
// lowest word first, text word 0 first.
var katVectors = []struct {
	width  int
	key    []uint64
	pt, ct [2]uint64
}{
	{16, []uint64{0x0100, 0x0908, 0x1110, 0x1918}, [2]uint64{0x6877, 0x6565}, [2]uint64{0xe9bb, 0xc69b}},
	{24, []uint64{0x020100, 0x0a0908, 0x121110}, [2]uint64{0x6e696c, 0x612067}, [2]uint64{0x292cac, 0xdae5ac}},
	{24, []uint64{0x020100, 0x0a0908, 0x121110, 0x1a1918}, [2]uint64{0x20646e, 0x726963}, [2]uint64{0xacf156, 0x6e06a5}},
	{32, []uint64{0x03020100, 0x0b0a0908, 0x13121110}, [2]uint64{0x6e696c63, 0x6f722067}, [2]uint64{0x111a8fc8, 0x5ca2e27f}},
	{32, []uint64{0x03020100, 0x0b0a0908, 0x13121110, 0x1b1a1918}, [2]uint64{0x20646e75, 0x656b696c}, [2]uint64{0xb9dfa07a, 0x44c8fc20}},
	{48, []uint64{0x050403020100, 0x0d0c0b0a0908}, [2]uint64{0x702065687420, 0x2072616c6c69}, [2]uint64{0x69063d8ff082, 0x602807a462b4}},
	{48, []uint64{0x050403020100, 0x0d0c0b0a0908, 0x151413121110}, [2]uint64{0x73756420666f, 0x746168742074}, [2]uint64{0x3f59c5db1ae9, 0xecad1c6c451e}},
	{64, []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}, [2]uint64{0x6c6c657661727420, 0x6373656420737265}, [2]uint64{0x65aa832af84e0bbc, 0x49681b1e1e54fe3f}},
	{64, []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110}, [2]uint64{0x6568772065626972, 0x206572656874206e}, [2]uint64{0x6c9c8d6e2597b85b, 0xc4ac61effcdc0d4f}},
	{64, []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110, 0x1f1e1d1c1b1a1918}, [2]uint64{0x6d69732061207369, 0x74206e69206d6f6f}, [2]uint64{0x3bf72a87efe7b868, 0x8d2b5579afc8a3a0}},
}

func TestKnownAnswerVectors(t *testing.T) {
	for _, kat := range katVectors {
		c, err := New(kat.width, kat.key)
		if err != nil {
			t.Fatal(err)
		}
		if ct := c.EncryptWords(kat.pt); ct != kat.ct {
			t.Errorf("SIMON%d/%d encrypt = %#x, want %#x", 2*kat.width, len(kat.key)*kat.width, ct, kat.ct)
		}
		if pt := c.DecryptWords(kat.ct); pt != kat.pt {
			t.Errorf("SIMON%d/%d decrypt = %#x, want %#x", 2*kat.width, len(kat.key)*kat.width, pt, kat.pt)
		}
	}
}

func TestRejectsUnknownGeometry(t *testing.T) {
	if _, err := New(16, []uint64{1, 2}); err == nil {
		t.Error("Simon32/32 does not exist")
	}
	if _, err := New(96, []uint64{1, 2}); err == nil {
		t.Error("96-bit words are out of scope")
	}
}

func TestByteInterface(t *testing.T) {
	// SIMON64/128 with the published byte strings (little-endian words).
	key := []byte{
		0x00, 0x01, 0x02, 0x03, 0x08, 0x09, 0x0a, 0x0b,
		0x10, 0x11, 0x12, 0x13, 0x18, 0x19, 0x1a, 0x1b,
	}
	pt := []byte{0x75, 0x6e, 0x64, 0x20, 0x6c, 0x69, 0x6b, 0x65}
	wantCT := []byte{0x7a, 0xa0, 0xdf, 0xb9, 0x20, 0xfc, 0xc8, 0x44}

	c, err := NewFromBytes(64, key)
	if err != nil {
		t.Fatal(err)
	}
	if c.BlockSize() != 8 {
		t.Fatalf("BlockSize = %d, want 8", c.BlockSize())
	}
	ct := make([]byte, 8)
	c.Encrypt(ct, pt)
	if !bytes.Equal(ct, wantCT) {
		t.Fatalf("Encrypt = %x, want %x", ct, wantCT)
	}
	back := make([]byte, 8)
	c.Decrypt(back, ct)
	if !bytes.Equal(back, pt) {
		t.Fatalf("Decrypt = %x, want %x", back, pt)
	}
}

func TestByteInterfaceOddWordSize(t *testing.T) {
	// 24-bit words pack into 3-byte lanes; round-trip must hold.
	key := []byte{0, 1, 2, 8, 9, 10, 16, 17, 18}
	c, err := NewFromBytes(48, key)
	if err != nil {
		t.Fatal(err)
	}
	pt := []byte{0x6c, 0x69, 0x6e, 0x67, 0x20, 0x61}
	ct := make([]byte, 6)
	back := make([]byte, 6)
	c.Encrypt(ct, pt)
	c.Decrypt(back, ct)
	if !bytes.Equal(back, pt) {
		t.Fatalf("48-bit block round trip failed: %x", back)
	}
}

func TestWordPackingRoundTrip(t *testing.T) {
	words := []uint64{0x030201, 0x0b0a09}
	b := WordsToBytes(words, 3)
	if !bytes.Equal(b, []byte{1, 2, 3, 9, 10, 11}) {
		t.Fatalf("WordsToBytes = %x", b)
	}
	got := BytesToWords(b, 3)
	if got[0] != words[0] || got[1] != words[1] {
		t.Fatalf("BytesToWords = %#x", got)
	}
}

func TestKeyByteLengths(t *testing.T) {
	if _, err := NewFromBytes(64, make([]byte, 15)); err == nil {
		t.Error("ragged key length accepted")
	}
	if _, err := NewFromBytes(64, make([]byte, 20)); err == nil {
		t.Error("five key words accepted")
	}
}
