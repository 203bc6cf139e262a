package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"simoncore/internal/auth"
	"simoncore/internal/models"
	"simoncore/internal/services/vector"
)

type genVectorsReq struct {
	Algorithm string `json:"algorithm"` // SIMON | HIGHT | CAMELLIA
	TestMode  string `json:"test_mode"` // KAT | MCT

	// SIMON KAT subtype: RANDOM | KEYSBOX | VARKEY | VARTXT
	InputMode       string `json:"input_mode,omitempty"`
	BlockBits       int    `json:"block_bits"`
	KeyBits         int    `json:"key_bits"`
	Count           int    `json:"count"`
	IncludeExpected bool   `json:"include_expected"`
	Format          string `json:"format"` // json (default) | txt
}

// POST /v1/clients/{client_id}/vectors/generate
func GenerateVectors(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := chi.URLParam(r, "client_id")
		uid := auth.Subject(r.Context())

		var req genVectorsReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		alg := strings.ToUpper(strings.TrimSpace(req.Algorithm))
		tmode := strings.ToUpper(strings.TrimSpace(req.TestMode))
		if alg == "" || tmode == "" {
			http.Error(w, "algorithm and test_mode are required", http.StatusBadRequest)
			return
		}
		if req.Count <= 0 || req.Count > 1000 {
			http.Error(w, "count must be between 1 and 1000", http.StatusBadRequest)
			return
		}

		var exists bool
		if err := db.Model(&models.Client{}).
			Select("count(*) > 0").Where("id = ?", clientID).Find(&exists).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !exists {
			http.Error(w, "client not found", http.StatusUnprocessableEntity)
			return
		}

		// The catalogue carries the allowed test modes per geometry.
		name := fmt.Sprintf("%s%d/%d", alg, req.BlockBits, req.KeyBits)
		if alg != "SIMON" {
			name = fmt.Sprintf("%s-%d", alg, req.KeyBits)
		}
		var profile models.CipherProfile
		if err := db.Where("upper(algorithm) = ?", strings.ToUpper(name)).First(&profile).Error; err != nil {
			http.Error(w, "algorithm not found in catalogue: "+name, http.StatusBadRequest)
			return
		}
		var testModes []string
		_ = json.Unmarshal(profile.TestModes, &testModes)
		allowed := false
		for _, m := range testModes {
			if strings.EqualFold(m, tmode) {
				allowed = true
				break
			}
		}
		if !allowed {
			http.Error(w, fmt.Sprintf("invalid test_mode for %s. allowed: %v", profile.Algorithm, testModes), http.StatusBadRequest)
			return
		}

		var payload any
		var txt string
		switch alg {
		case "SIMON":
			vec, err := vector.GenerateSimonTestVectors(tmode, vector.SimonGenParams{
				BlockBits:       req.BlockBits,
				KeyBits:         req.KeyBits,
				Count:           req.Count,
				IncludeExpected: req.IncludeExpected,
				KatVariant:      req.InputMode,
			})
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			payload = vec
			txt = vec.ToTXT()

		case "HIGHT", "CAMELLIA":
			if tmode != "KAT" {
				http.Error(w, alg+" supports KAT only", http.StatusBadRequest)
				return
			}
			vec, err := vector.GenerateCompanionTestVectors(vector.CompanionGenParams{
				Algorithm:       alg,
				KeyBits:         req.KeyBits,
				Count:           req.Count,
				IncludeExpected: req.IncludeExpected,
			})
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			payload = vec

		default:
			http.Error(w, "unsupported algorithm", http.StatusNotImplemented)
			return
		}

		records, _ := json.Marshal(payload)
		params, _ := json.Marshal(req)
		v := models.Vector{
			UserID:    uid,
			ClientID:  clientID,
			Algorithm: profile.Algorithm,
			TestMode:  tmode,
			Params:    models.JSONB(params),
			Records:   models.JSONB(records),
			Status:    "ready",
		}
		if err := db.Create(&v).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		md, _ := json.Marshal(map[string]any{"vector_id": v.ID, "algorithm": v.Algorithm, "test_mode": tmode, "count": req.Count})
		_ = db.Create(&models.AuditLog{UserID: &uid, ClientID: &clientID, Action: "VECTOR_GENERATE", Metadata: models.JSONB(md)}).Error

		if strings.EqualFold(req.Format, "txt") && txt != "" {
			w.Header().Set("Content-Type", "text/plain")
			w.Header().Set("Content-Disposition",
				fmt.Sprintf("attachment; filename=simon%d_%d_%s.rsp",
					req.BlockBits, req.KeyBits, strings.ToLower(tmode)))
			_, _ = w.Write([]byte(txt))
			return
		}
		respondJSON(w, map[string]any{"vector_id": v.ID, "vectors": payload})
	}
}

// POST /v1/clients/{client_id}/vectors/validate/simon
//
// Accepts a multipart upload of a .rsp file plus a block_bits form field and
// re-runs every record through the engine.
func ValidateSimonVectors(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := auth.Subject(r.Context())
		clientID := chi.URLParam(r, "client_id")
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "multipart parse error", http.StatusBadRequest)
			return
		}
		blockBits, err := strconv.Atoi(r.FormValue("block_bits"))
		if err != nil || blockBits <= 0 {
			http.Error(w, "block_bits form field required", http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		recs, err := vector.ParseSimonVectorFile(file)
		if err != nil {
			http.Error(w, "parse error: "+err.Error(), http.StatusBadRequest)
			return
		}
		result, err := vector.ValidateSimon(blockBits, recs)
		if err != nil {
			http.Error(w, "validate error: "+err.Error(), http.StatusBadRequest)
			return
		}
		md, _ := json.Marshal(map[string]any{"algorithm": result.Algorithm, "passed": result.Passed, "failed": result.Failed})
		_ = db.Create(&models.AuditLog{UserID: &uid, ClientID: &clientID, Action: "VECTOR_VALIDATE_SIMON", Metadata: models.JSONB(md)}).Error
		respondJSON(w, result)
	}
}
