package handlers

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"simoncore/internal/auth"
	"simoncore/internal/models"
	"simoncore/internal/simon"
	"simoncore/internal/simonref"
	"simoncore/internal/util"
)

type simonBlockReq struct {
	BlockBits int    `json:"block_bits"`
	KeyBits   int    `json:"key_bits"`
	Key       string `json:"key"`  // hex or ASCII
	Text      string `json:"text"` // hex or ASCII, one block
}

// POST /v1/simon/encrypt and /v1/simon/decrypt: one block through the step
// engine. The response includes the round count and steps consumed so
// clients can sanity-check against the published parameters.
func SimonBlock(db *gorm.DB, lg *zap.SugaredLogger, dir simon.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req simonBlockReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		keyHex, err := util.ToHex(req.Key)
		if err != nil {
			http.Error(w, "bad key", http.StatusBadRequest)
			return
		}
		textHex, err := util.ToHex(req.Text)
		if err != nil {
			http.Error(w, "bad text", http.StatusBadRequest)
			return
		}
		key, _ := hex.DecodeString(keyHex)
		text, _ := hex.DecodeString(textHex)

		if req.KeyBits != 0 && req.KeyBits != len(key)*8 {
			http.Error(w, "key_bits does not match key length", http.StatusBadRequest)
			return
		}
		if req.BlockBits%16 != 0 || req.BlockBits <= 0 {
			http.Error(w, "block_bits must be two whole-byte words", http.StatusBadRequest)
			return
		}
		if len(text)*8 != req.BlockBits {
			http.Error(w, fmt.Sprintf("text must be exactly %d bits", req.BlockBits), http.StatusBadRequest)
			return
		}
		wordWidth := req.BlockBits / 2
		wordBytes := wordWidth / 8
		if len(key)%wordBytes != 0 {
			http.Error(w, "key length is not a whole number of words", http.StatusBadRequest)
			return
		}

		front, err := simon.NewFront(wordWidth, len(key)/wordBytes)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		keyWords := simonref.BytesToWords(key, wordBytes)
		textWords := simonref.BytesToWords(text, wordBytes)
		resp, err := front.Run(simon.Request{
			Direction: dir,
			Key:       keyWords,
			Text:      [2]uint64{textWords[0], textWords[1]},
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out := simonref.WordsToBytes(resp.Text[:], wordBytes)

		uid := auth.Subject(r.Context())
		md, _ := json.Marshal(map[string]any{
			"algorithm": fmt.Sprintf("SIMON%d/%d", req.BlockBits, len(key)*8),
			"direction": dir.String(),
		})
		_ = db.Create(&models.AuditLog{UserID: &uid, Action: "SIMON_BLOCK", Metadata: models.JSONB(md)}).Error

		respondJSON(w, map[string]any{
			"algorithm": fmt.Sprintf("SIMON%d/%d", req.BlockBits, len(key)*8),
			"direction": dir.String(),
			"rounds":    front.Engine().Config().Rounds,
			"input":     textHex,
			"output":    hex.EncodeToString(out),
		})
	}
}
