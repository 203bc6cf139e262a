package vector

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"simoncore/internal/simon"
	"simoncore/internal/simonref"
)

type SimonRecord struct {
	Count int
	Key   []byte
	PT    []byte
	CT    []byte
	Mode  string // ENCRYPT or DECRYPT
}

type SimonMismatch struct {
	Count    int    `json:"count"`
	Mode     string `json:"mode"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

type SimonValidationResult struct {
	Algorithm string          `json:"algorithm"`
	Total     int             `json:"total"`
	Passed    int             `json:"passed"`
	Failed    int             `json:"failed"`
	Failures  []SimonMismatch `json:"failures,omitempty"`
}

// ParseSimonVectorFile reads the .rsp-style format emitted by ToTXT:
// [ENCRYPT]/[DECRYPT] sections with COUNT/KEY/PLAINTEXT/CIPHERTEXT lines.
func ParseSimonVectorFile(r io.Reader) ([]SimonRecord, error) {
	var recs []SimonRecord
	sc := bufio.NewScanner(r)
	section := ""
	var cur SimonRecord

	flush := func() {
		if cur.Key != nil || cur.PT != nil || cur.CT != nil {
			cur.Mode = strings.ToUpper(section)
			recs = append(recs, cur)
			cur = SimonRecord{}
		}
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flush()
			section = strings.ToUpper(strings.Trim(line, "[]"))
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		k := strings.TrimSpace(parts[0])
		v := strings.TrimSpace(parts[1])

		switch k {
		case "COUNT":
			flush()
			fmt.Sscanf(v, "%d", &cur.Count)
		case "KEY":
			cur.Key, _ = hex.DecodeString(v)
		case "PLAINTEXT":
			cur.PT, _ = hex.DecodeString(v)
		case "CIPHERTEXT":
			cur.CT, _ = hex.DecodeString(v)
		}
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ValidateSimon re-runs every record through the step engine and compares
// against the expected column. blockBits fixes the geometry; the key length
// of each record determines the key size.
func ValidateSimon(blockBits int, recs []SimonRecord) (SimonValidationResult, error) {
	res := SimonValidationResult{
		Algorithm: fmt.Sprintf("SIMON%d", blockBits),
		Total:     len(recs),
	}
	if blockBits%16 != 0 {
		return res, fmt.Errorf("block size %d is not two whole-byte words", blockBits)
	}
	blockLen := blockBits / 8
	fronts := map[int]*simon.Front{}

	frontFor := func(keyLen int) (*simon.Front, error) {
		if f, ok := fronts[keyLen]; ok {
			return f, nil
		}
		wordWidth, keyWords, err := simonGeometry(blockBits, keyLen*8)
		if err != nil {
			return nil, err
		}
		f, err := simon.NewFront(wordWidth, keyWords)
		if err != nil {
			return nil, err
		}
		fronts[keyLen] = f
		return f, nil
	}

	for _, r := range recs {
		front, err := frontFor(len(r.Key))
		if err != nil {
			return res, fmt.Errorf("COUNT=%d: %w", r.Count, err)
		}

		switch strings.ToUpper(r.Mode) {
		case "ENCRYPT":
			if len(r.PT) != blockLen || len(r.CT) != blockLen {
				return res, fmt.Errorf("bad block length at COUNT=%d", r.Count)
			}
			out, err := runSimonRecord(front, simon.Encrypt, r.Key, r.PT)
			if err != nil {
				return res, err
			}
			if bytes.Equal(out, r.CT) {
				res.Passed++
			} else {
				res.Failed++
				res.Failures = append(res.Failures, SimonMismatch{
					Count:    r.Count,
					Mode:     "ENCRYPT",
					Expected: hex.EncodeToString(r.CT),
					Got:      hex.EncodeToString(out),
				})
			}

		case "DECRYPT":
			if len(r.PT) != blockLen || len(r.CT) != blockLen {
				return res, fmt.Errorf("bad block length at COUNT=%d", r.Count)
			}
			out, err := runSimonRecord(front, simon.Decrypt, r.Key, r.CT)
			if err != nil {
				return res, err
			}
			if bytes.Equal(out, r.PT) {
				res.Passed++
			} else {
				res.Failed++
				res.Failures = append(res.Failures, SimonMismatch{
					Count:    r.Count,
					Mode:     "DECRYPT",
					Expected: hex.EncodeToString(r.PT),
					Got:      hex.EncodeToString(out),
				})
			}

		default:
			return res, fmt.Errorf("unknown section/mode at COUNT=%d", r.Count)
		}
	}
	return res, nil
}

// runSimonRecord drives the engine without the reference cross-check:
// validation compares against the uploaded expectation instead.
func runSimonRecord(front *simon.Front, dir simon.Direction, key, text []byte) ([]byte, error) {
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
	return simonref.WordsToBytes(resp.Text[:], wordBytes), nil
}
