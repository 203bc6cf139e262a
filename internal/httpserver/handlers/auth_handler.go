package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"simoncore/internal/auth"
	"simoncore/internal/models"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var u models.User
		if err := db.Preload("Roles").First(&u, "email = ?", strings.ToLower(req.Email)).Error; err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if !u.IsActive {
			http.Error(w, "account disabled", http.StatusUnauthorized)
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		var roleNames []string
		for _, role := range u.Roles {
			roleNames = append(roleNames, role.Name)
		}
		tok, jti, exp, err := auth.Sign(u.ID, roleNames)
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}
		sess := models.Session{JTI: jti, UserID: u.ID, ExpiresAt: exp, CreatedAt: time.Now()}
		if err := db.Create(&sess).Error; err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
		lg.Infow("login", "user_id", u.ID)
		respondJSON(w, map[string]any{"token": tok, "expires_at": exp})
	}
}

func Logout(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jti := auth.FromContext(r.Context()).JWTID
		now := time.Now()
		if err := db.Model(&models.Session{}).Where("jti = ?", jti).Update("revoked_at", &now).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"revoked": true})
	}
}

func ChangePassword(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Current string `json:"current_password"`
			New     string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.New == "" {
			http.Error(w, "new_password required", http.StatusBadRequest)
			return
		}
		uid := auth.Subject(r.Context())
		var u models.User
		if err := db.First(&u, "id = ?", uid).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.Current); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		hash, err := auth.HashPassword(req.New)
		if err != nil {
			http.Error(w, "hash error", http.StatusInternalServerError)
			return
		}
		u.PasswordHash = hash
		u.UpdatedAt = time.Now()
		if err := db.Save(&u).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		lg.Infow("password changed", "user_id", uid)
		respondJSON(w, map[string]any{"updated": true})
	}
}

func Me(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := auth.Subject(r.Context())
		var u models.User
		if err := db.Preload("Roles").First(&u, "id = ?", sub).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, map[string]any{
			"id": u.ID, "email": u.Email, "roles": u.Roles, "is_active": u.IsActive,
		})
	}
}
