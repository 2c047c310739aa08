package domain

import "time"

// RefreshToken stores refresh tokens for admin sessions.
//
// Only the SHA-256 hash of a token is persisted; refresh rotates the
// token, revoking the old row and linking it to its replacement.
type RefreshToken struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	AdminID int64 `json:"admin_id" gorm:"index;not null"`
	Admin   Admin `json:"-" gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`

	TokenHash string `json:"-" gorm:"size:64;uniqueIndex;not null"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"index"`

	ReplacedByID *int64 `json:"replaced_by_id" gorm:"index"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
