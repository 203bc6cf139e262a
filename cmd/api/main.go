package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"simoncore/internal/auth"
	"simoncore/internal/httpserver"
	"simoncore/internal/logger"
	"simoncore/internal/models"
	"simoncore/internal/simon"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		lg.Fatalw("DATABASE_URL is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.Client{}, &models.Vector{}, &models.AuditLog{}, &models.Session{}, &models.CipherProfile{}); err != nil {
		lg.Fatalw("automigrate failed", "error", err)
	}
	seedDefaultAdmin(db, lg)
	seedCipherProfiles(db, lg)
	router := httpserver.NewRouter(db, lg)
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	lg.Infow("listening", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}

func seedDefaultAdmin(db *gorm.DB, lg *zap.SugaredLogger) {
	db.Exec("INSERT INTO roles(name) VALUES ('Administrator') ON CONFLICT DO NOTHING")
	db.Exec("INSERT INTO roles(name) VALUES ('User') ON CONFLICT DO NOTHING")
	var count int64
	db.Model(&models.User{}).Where("LOWER(email)=?", "admin@simoncore.local").Count(&count)
	if count > 0 {
		return
	}
	hash, _ := auth.HashPassword("1234")
	u := models.User{Email: strings.ToLower("admin@simoncore.local"), PasswordHash: hash, IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	if err := db.Create(&u).Error; err == nil {
		var adminRole models.Role
		if err := db.First(&adminRole, "name = 'Administrator'").Error; err == nil {
			_ = db.Model(&u).Association("Roles").Append(&adminRole)
		}
	}
	lg.Infow("seeded default admin", "email", "admin@simoncore.local")
}

// seedCipherProfiles fills the catalogue from the engine's own parameter
// table plus the companion ciphers, so the DB can never disagree with what
// the engine accepts.
func seedCipherProfiles(db *gorm.DB, lg *zap.SugaredLogger) {
	simonModes, _ := json.Marshal([]string{"KAT", "MCT"})
	katOnly, _ := json.Marshal([]string{"KAT"})
	ref := "Beaulieu et al., The SIMON and SPECK Families of Lightweight Block Ciphers"

	for _, info := range simon.Configurations() {
		row := models.CipherProfile{
			Algorithm:   info.Name,
			Family:      "SIMON",
			BlockBits:   info.BlockBits,
			KeyBits:     info.KeyBits,
			Rounds:      info.Rounds,
			TestModes:   models.JSONB(simonModes),
			Verified:    info.Verified,
			StandardRef: &ref,
		}
		if !info.Verified {
			note := "constants unverified; generation is disabled for this geometry"
			row.Notes = &note
			row.TestModes = models.JSONB([]byte("[]"))
		}
		db.Where("algorithm = ?", row.Algorithm).FirstOrCreate(&row)
	}

	companions := []models.CipherProfile{
		{Algorithm: "HIGHT-128", Family: "HIGHT", BlockBits: 64, KeyBits: 128, Rounds: 32, TestModes: models.JSONB(katOnly)},
		{Algorithm: "CAMELLIA-128", Family: "CAMELLIA", BlockBits: 128, KeyBits: 128, Rounds: 18, TestModes: models.JSONB(katOnly)},
		{Algorithm: "CAMELLIA-192", Family: "CAMELLIA", BlockBits: 128, KeyBits: 192, Rounds: 24, TestModes: models.JSONB(katOnly)},
		{Algorithm: "CAMELLIA-256", Family: "CAMELLIA", BlockBits: 128, KeyBits: 256, Rounds: 24, TestModes: models.JSONB(katOnly)},
	}
	for _, row := range companions {
		row.Verified = true
		db.Where("algorithm = ?", row.Algorithm).FirstOrCreate(&row)
	}
	lg.Infow("seeded cipher catalogue", "simon_configs", len(simon.Configurations()), "companions", len(companions))
}
