package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// RefreshToken is an opaque, server-side session token. The ID itself is the
// secret handed to the client; every use rotates it, revoking the old row.
type RefreshToken struct {
	ID        string    `gorm:"primaryKey;size:70" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshToken mints an unsaved token for the user, valid for ttl.
func NewRefreshToken(userID uint, ttl time.Duration) (*RefreshToken, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return &RefreshToken{
		ID:        "rt_" + hex.EncodeToString(b),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
