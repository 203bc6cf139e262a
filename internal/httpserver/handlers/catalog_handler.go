package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"simoncore/internal/models"
	"simoncore/internal/simon"
)

// GET /v1/ciphers
func ListCipherProfiles(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rows []models.CipherProfile
		if err := db.Order("family, block_bits, key_bits").Find(&rows).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"data": rows, "count": len(rows)})
	}
}

// GET /v1/ciphers/simon
//
// Reports the engine's own parameter table rather than the DB catalogue, so
// the response always matches what the engine will actually accept.
func SimonCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, map[string]any{"data": simon.Configurations()})
	}
}
