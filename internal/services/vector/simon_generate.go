package vector

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"simoncore/internal/simon"
	"simoncore/internal/simonref"
)

type SimonTestMode string

const (
	SIMON_KAT SimonTestMode = "KAT"
	SIMON_MCT SimonTestMode = "MCT"
)

type SimonGenParams struct {
	BlockBits       int  `json:"block_bits"`
	KeyBits         int  `json:"key_bits"`
	Count           int  `json:"count"`
	IncludeExpected bool `json:"include_expected"`
	// Only used when test_mode == KAT. Allowed: RANDOM | KEYSBOX | VARKEY | VARTXT
	KatVariant string `json:"kat_variant,omitempty"`
}

type SimonEncRecord struct {
	Count      int    `json:"count"`
	KeyHex     string `json:"key"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext,omitempty"`
}

type SimonDecRecord struct {
	Count      int    `json:"count"`
	KeyHex     string `json:"key"`
	Ciphertext string `json:"ciphertext"`
	Plaintext  string `json:"plaintext,omitempty"`
}

type SimonTestVector struct {
	Algorithm string           `json:"algorithm"`
	TestMode  string           `json:"test_mode"`
	BlockBits int              `json:"block_bits"`
	KeyBits   int              `json:"key_bits"`
	Rounds    int              `json:"rounds"`
	Encrypt   []SimonEncRecord `json:"encrypt"`
	Decrypt   []SimonDecRecord `json:"decrypt"`
}

// --- helpers ---

func randBytesSimon(n int) []byte {
	b := make([]byte, n)
	_, _ = io.ReadFull(rand.Reader, b)
	return b
}

func fmtIntSimon(i int) string { return strconv.Itoa(i) }

// setLeftmostBitsSimon returns nBytes bytes whose leftmost "bits" are 1.
func setLeftmostBitsSimon(nBytes, bits int) []byte {
	if bits <= 0 {
		return make([]byte, nBytes)
	}
	if bits > nBytes*8 {
		bits = nBytes * 8
	}
	b := make([]byte, nBytes)
	full := bits / 8
	rem := bits % 8
	for i := 0; i < full; i++ {
		b[i] = 0xFF
	}
	if rem > 0 {
		b[full] = ^byte(0xFF >> rem)
	}
	return b
}

// simonGeometry maps block/key sizes in bits to the engine's word geometry.
func simonGeometry(blockBits, keyBits int) (wordWidth, keyWords int, err error) {
	if blockBits <= 0 || blockBits%16 != 0 {
		return 0, 0, fmt.Errorf("block_bits %d is not two whole-byte words", blockBits)
	}
	wordWidth = blockBits / 2
	if keyBits <= 0 || keyBits%wordWidth != 0 {
		return 0, 0, fmt.Errorf("key_bits %d is not a multiple of the %d-bit word", keyBits, wordWidth)
	}
	return wordWidth, keyBits / wordWidth, nil
}

// simonBlock runs one block through the step engine and cross-checks the
// result against the software reference. A disagreement means a broken
// build, not bad input, so it is surfaced as an error rather than a panic.
func simonBlock(front *simon.Front, dir simon.Direction, key, text []byte) ([]byte, error) {
	cfg := front.Engine().Config()
	wordBytes := cfg.WordWidth / 8
	keyWords := simonref.BytesToWords(key, wordBytes)
	textWords := simonref.BytesToWords(text, wordBytes)

	resp, err := front.Run(simon.Request{
		Direction: dir,
		Key:       keyWords,
		Text:      [2]uint64{textWords[0], textWords[1]},
	})
	if err != nil {
		return nil, err
	}

	ref, err := simonref.New(cfg.WordWidth, keyWords)
	if err != nil {
		return nil, err
	}
	want := ref.EncryptWords([2]uint64{textWords[0], textWords[1]})
	if dir == simon.Decrypt {
		want = ref.DecryptWords([2]uint64{textWords[0], textWords[1]})
	}
	if resp.Text != want {
		return nil, fmt.Errorf("engine/reference mismatch: %#x vs %#x", resp.Text, want)
	}
	return simonref.WordsToBytes(resp.Text[:], wordBytes), nil
}

// --- generator ---

func GenerateSimonTestVectors(test string, p SimonGenParams) (SimonTestVector, error) {
	wordWidth, keyWords, err := simonGeometry(p.BlockBits, p.KeyBits)
	if err != nil {
		return SimonTestVector{}, err
	}
	front, err := simon.NewFront(wordWidth, keyWords)
	if err != nil {
		return SimonTestVector{}, err
	}
	cfg := front.Engine().Config()

	var tmode SimonTestMode
	switch strings.ToUpper(strings.TrimSpace(test)) {
	case "KAT":
		tmode = SIMON_KAT
	case "MCT":
		tmode = SIMON_MCT
	default:
		return SimonTestVector{}, fmt.Errorf("unsupported test_mode %q", test)
	}

	keyLen := p.KeyBits / 8
	blockLen := p.BlockBits / 8

	out := SimonTestVector{
		Algorithm: fmt.Sprintf("SIMON%d/%d", p.BlockBits, p.KeyBits),
		TestMode:  string(tmode),
		BlockBits: p.BlockBits,
		KeyBits:   p.KeyBits,
		Rounds:    cfg.Rounds,
	}

	appendPair := func(i int, key, pt, ct []byte) {
		enc := SimonEncRecord{Count: i, KeyHex: hex.EncodeToString(key), Plaintext: hex.EncodeToString(pt)}
		dec := SimonDecRecord{Count: i, KeyHex: enc.KeyHex, Ciphertext: hex.EncodeToString(ct)}
		if p.IncludeExpected {
			enc.Ciphertext = hex.EncodeToString(ct)
			dec.Plaintext = hex.EncodeToString(pt)
		}
		out.Encrypt = append(out.Encrypt, enc)
		out.Decrypt = append(out.Decrypt, dec)
	}

	switch tmode {
	case SIMON_KAT:
		variant := strings.ToUpper(strings.TrimSpace(p.KatVariant))
		if variant == "" {
			variant = "RANDOM"
		}
		switch variant {
		case "RANDOM":
			for i := 0; i < p.Count; i++ {
				key := randBytesSimon(keyLen)
				pt := randBytesSimon(blockLen)
				ct, err := simonBlock(front, simon.Encrypt, key, pt)
				if err != nil {
					return SimonTestVector{}, err
				}
				appendPair(i, key, pt, ct)
			}

		case "KEYSBOX":
			pt := make([]byte, blockLen)
			for i := 0; i < p.Count; i++ {
				key := randBytesSimon(keyLen)
				ct, err := simonBlock(front, simon.Encrypt, key, pt)
				if err != nil {
					return SimonTestVector{}, err
				}
				appendPair(i, key, pt, ct)
			}

		case "VARKEY":
			pt := make([]byte, blockLen)
			limit := min(p.Count, p.KeyBits)
			for i := 0; i < limit; i++ {
				key := setLeftmostBitsSimon(keyLen, i+1)
				ct, err := simonBlock(front, simon.Encrypt, key, pt)
				if err != nil {
					return SimonTestVector{}, err
				}
				appendPair(i, key, pt, ct)
			}

		case "VARTXT":
			key := make([]byte, keyLen)
			limit := min(p.Count, p.BlockBits)
			for i := 0; i < limit; i++ {
				pt := setLeftmostBitsSimon(blockLen, i+1)
				ct, err := simonBlock(front, simon.Encrypt, key, pt)
				if err != nil {
					return SimonTestVector{}, err
				}
				appendPair(i, key, pt, ct)
			}

		default:
			return SimonTestVector{}, fmt.Errorf("unsupported SIMON KAT variant %q", variant)
		}

	case SIMON_MCT:
		const inner = 1000

		key := randBytesSimon(keyLen)
		pt0 := randBytesSimon(blockLen)

		for i := 0; i < p.Count; i++ {
			keyRec := append([]byte(nil), key...)
			ptRec := append([]byte(nil), pt0...)

			pt := append([]byte(nil), pt0...)
			var lastCT []byte
			for j := 0; j < inner; j++ {
				ct, err := simonBlock(front, simon.Encrypt, key, pt)
				if err != nil {
					return SimonTestVector{}, err
				}
				lastCT = ct
				pt = ct // PT[j+1] = CT[j]
			}

			appendPair(i, keyRec, ptRec, lastCT)

			for k := 0; k < keyLen; k++ {
				key[k] ^= lastCT[k%blockLen]
			}
			copy(pt0, lastCT)
		}
	}

	return out, nil
}

// ToTXT renders the vector set in NIST .rsp style, the same format the
// validator parses back.
func (v SimonTestVector) ToTXT() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s, %d rounds\n\n", v.Algorithm, v.Rounds)
	b.WriteString("[ENCRYPT]\n\n")
	for _, r := range v.Encrypt {
		b.WriteString("COUNT = " + fmtIntSimon(r.Count) + "\n")
		b.WriteString("KEY = " + strings.ToLower(r.KeyHex) + "\n")
		b.WriteString("PLAINTEXT = " + strings.ToLower(r.Plaintext) + "\n")
		if r.Ciphertext != "" {
			b.WriteString("CIPHERTEXT = " + strings.ToLower(r.Ciphertext) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("[DECRYPT]\n\n")
	for _, r := range v.Decrypt {
		b.WriteString("COUNT = " + fmtIntSimon(r.Count) + "\n")
		b.WriteString("KEY = " + strings.ToLower(r.KeyHex) + "\n")
		b.WriteString("CIPHERTEXT = " + strings.ToLower(r.Ciphertext) + "\n")
		if r.Plaintext != "" {
			b.WriteString("PLAINTEXT = " + strings.ToLower(r.Plaintext) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
