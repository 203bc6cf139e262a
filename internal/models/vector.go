package models

import "time"

// Vector is one generated vector set: the request parameters plus the
// rendered records, kept so a client can re-download or re-validate later.
type Vector struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    string `gorm:"type:uuid;not null" json:"user_id"`
	ClientID  string `gorm:"type:uuid;not null" json:"client_id"`
	Algorithm string `gorm:"not null" json:"algorithm"`
	TestMode  string `json:"test_mode"` // KAT or MCT

	Params  JSONB `gorm:"type:jsonb" json:"params"`
	Records JSONB `gorm:"type:jsonb" json:"records"`

	Status    string    `json:"status"` // ready, failed
	CreatedAt time.Time `json:"created_at"`
}

func (Vector) TableName() string { return "vectors" }
