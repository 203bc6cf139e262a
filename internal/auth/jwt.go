package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func parseTTL() time.Duration {
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return 24 * time.Hour
}

// Sign issues a token with a fresh jti so the session can be revoked
// server-side. Returns the token, its jti and its expiry.
func Sign(userID string, roles []string) (string, string, time.Time, error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	jti := uuid.NewString()
	exp := time.Now().Add(parseTTL())
	claims := jwt.MapClaims{
		"sub":   userID,
		"jti":   jti,
		"roles": roles,
		"exp":   exp.Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(key)
	return signed, jti, exp, err
}

func Verify(tokenStr string) (Claims, error) {
	key := []byte(os.Getenv("JWT_SECRET"))
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return Claims{}, errors.New("invalid token")
	}
	mapc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid claims")
	}
	sub, _ := mapc["sub"].(string)
	jti, _ := mapc["jti"].(string)
	var roles []string
	if arr, ok := mapc["roles"].([]interface{}); ok {
		for _, v := range arr {
			if s, ok := v.(string); ok {
				roles = append(roles, s)
			}
		}
	}
	return Claims{Subject: sub, JWTID: jti, Roles: roles}, nil
}
