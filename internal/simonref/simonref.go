// Package simonref is a plain table-driven software implementation of the
// SIMON family, used to produce golden vectors for the step-wise engine and
// the vector service. It expands the whole round-key table up front and is
// never called by the engine itself.
package simonref

import (
	"errors"
	"fmt"
)

// The five constant sequences, packed LSB-first over their 62-bit period.
var zSequences = [5]uint64{
	0x19c3522fb386a45f, // z0
	0x16864fb8ad0c9f71, // z1
	0x3369f885192c0ef5, // z2
	0x3c2ce51207a635db, // z3
	0x3dc94c3a046d678b, // z4
}

type params struct {
	wordWidth int
	keyWords  int
	rounds    int
	zClass    int
}

var paramTable = []params{
	{16, 4, 32, 0},
	{24, 3, 36, 0},
	{24, 4, 36, 1},
	{32, 3, 42, 2},
	{32, 4, 44, 3},
	{48, 2, 52, 2},
	{48, 3, 54, 3},
	{64, 2, 68, 2},
	{64, 3, 69, 3},
	{64, 4, 72, 4},
}

// Cipher is one expanded-key SIMON instance.
type Cipher struct {
	p    params
	mask uint64
	rk   []uint64
}

// New builds a cipher from key words (lowest word first). All ten published
// configurations for word widths up to 64 bits are accepted, including the
// experimental Simon48/96.
func New(wordWidth int, key []uint64) (*Cipher, error) {
	var p params
	found := false
	for _, cand := range paramTable {
		if cand.wordWidth == wordWidth && cand.keyWords == len(key) {
			p, found = cand, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("simonref: no SIMON configuration for %d-bit words and %d key words", wordWidth, len(key))
	}
	c := &Cipher{p: p, mask: mask(wordWidth)}
	c.expand(key)
	return c, nil
}

// NewFromBytes builds a cipher from little-endian key bytes for the given
// block size in bits (2x the word width).
func NewFromBytes(blockBits int, key []byte) (*Cipher, error) {
	if blockBits%16 != 0 {
		return nil, errors.New("simonref: block size must cover two whole-byte words")
	}
	wordBytes := blockBits / 16
	if len(key) == 0 || len(key)%wordBytes != 0 {
		return nil, fmt.Errorf("simonref: key length %d is not a multiple of the %d-byte word", len(key), wordBytes)
	}
	return New(blockBits/2, bytesToWords(key, wordBytes))
}

func (c *Cipher) expand(key []uint64) {
	p := c.p
	c.rk = make([]uint64, p.rounds)
	copy(c.rk, key)
	for i := range key {
		c.rk[i] &= c.mask
	}
	constBase := c.mask ^ 3
	for i := p.keyWords; i < p.rounds; i++ {
		t := rotr(c.rk[i-1], 3, p.wordWidth)
		if p.keyWords == 4 {
			t ^= c.rk[i-3]
		}
		t ^= rotr(t, 1, p.wordWidth)
		z := (zSequences[p.zClass] >> uint((i-p.keyWords)%62)) & 1
		c.rk[i] = (constBase ^ z ^ c.rk[i-p.keyWords] ^ t) & c.mask
	}
}

// WordWidth returns the configured word width in bits.
func (c *Cipher) WordWidth() int { return c.p.wordWidth }

// Rounds returns the round count T.
func (c *Cipher) Rounds() int { return c.p.rounds }

// RoundKeys exposes the expanded key table (rk[0..T-1]).
func (c *Cipher) RoundKeys() []uint64 { return c.rk }

// EncryptWords encrypts one block given as (pt[0], pt[1]).
func (c *Cipher) EncryptWords(pt [2]uint64) [2]uint64 {
	x, y := pt[1]&c.mask, pt[0]&c.mask
	for i := 0; i < c.p.rounds; i++ {
		x, y = y^f(x, c.p.wordWidth)^c.rk[i], x
		x &= c.mask
	}
	return [2]uint64{y, x}
}

// DecryptWords decrypts one block given as (ct[0], ct[1]).
func (c *Cipher) DecryptWords(ct [2]uint64) [2]uint64 {
	x, y := ct[0]&c.mask, ct[1]&c.mask
	for i := c.p.rounds - 1; i >= 0; i-- {
		x, y = y^f(x, c.p.wordWidth)^c.rk[i], x
		x &= c.mask
	}
	return [2]uint64{x, y}
}

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int { return c.p.wordWidth / 4 }

// Encrypt encrypts one little-endian block; src and dst must be full blocks.
func (c *Cipher) Encrypt(dst, src []byte) {
	bs := c.BlockSize()
	if len(src) < bs || len(dst) < bs {
		panic("simonref: input not a full block")
	}
	wb := c.p.wordWidth / 8
	in := bytesToWords(src[:bs], wb)
	out := c.EncryptWords([2]uint64{in[0], in[1]})
	wordsToBytes(out[:], dst[:bs], wb)
}

// Decrypt decrypts one little-endian block; src and dst must be full blocks.
func (c *Cipher) Decrypt(dst, src []byte) {
	bs := c.BlockSize()
	if len(src) < bs || len(dst) < bs {
		panic("simonref: input not a full block")
	}
	wb := c.p.wordWidth / 8
	in := bytesToWords(src[:bs], wb)
	out := c.DecryptWords([2]uint64{in[0], in[1]})
	wordsToBytes(out[:], dst[:bs], wb)
}

func f(x uint64, width int) uint64 {
	return (rotl(x, 1, width) & rotl(x, 8, width)) ^ rotl(x, 2, width)
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

func rotl(x uint64, r, width int) uint64 {
	return ((x << uint(r)) | (x >> uint(width-r))) & mask(width)
}

func rotr(x uint64, r, width int) uint64 {
	return ((x >> uint(r)) | (x << uint(width-r))) & mask(width)
}

// bytesToWords unpacks little-endian words of wordBytes bytes each.
func bytesToWords(b []byte, wordBytes int) []uint64 {
	words := make([]uint64, len(b)/wordBytes)
	for i := range words {
		var w uint64
		for j := wordBytes - 1; j >= 0; j-- {
			w = w<<8 | uint64(b[i*wordBytes+j])
		}
		words[i] = w
	}
	return words
}

// wordsToBytes packs words into little-endian bytes.
func wordsToBytes(words []uint64, b []byte, wordBytes int) {
	for i, w := range words {
		for j := 0; j < wordBytes; j++ {
			b[i*wordBytes+j] = byte(w >> uint(8*j))
		}
	}
}

// BytesToWords exposes the packing used throughout the vector service.
func BytesToWords(b []byte, wordBytes int) []uint64 { return bytesToWords(b, wordBytes) }

// WordsToBytes is the inverse of BytesToWords.
func WordsToBytes(words []uint64, wordBytes int) []byte {
	b := make([]byte, len(words)*wordBytes)
	wordsToBytes(words, b, wordBytes)
	return b
}
