package models

import "time"

// CipherProfile is one row of the algorithm catalogue: a cipher geometry a
// client can request vectors for. SIMON rows are seeded from the engine's
// parameter table at startup; companion ciphers are seeded statically.
type CipherProfile struct {
	ID          string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Algorithm   string    `gorm:"uniqueIndex;not null" json:"algorithm"`
	Family      string    `gorm:"not null" json:"family"`
	BlockBits   int       `gorm:"not null" json:"block_bits"`
	KeyBits     int       `gorm:"not null" json:"key_bits"`
	Rounds      int       `json:"rounds"`
	TestModes   JSONB     `gorm:"type:jsonb;not null;default:'[]'::jsonb" json:"test_modes"`
	Verified    bool      `gorm:"not null;default:true" json:"verified"`
	StandardRef *string   `json:"standard_ref,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
