package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PlatformToken is an OAuth credential a user granted for one account on an ad platform.
// Tokens are stored encrypted and never serialized to API responses.
type PlatformToken struct {
	UserID       uuid.UUID              `json:"user_id" gorm:"type:uuid;primaryKey;not null"`
	Platform     string                 `json:"platform" gorm:"size:32;primaryKey;not null"`
	AccountID    string                 `json:"account_id" gorm:"size:128;primaryKey;not null"`
	AccessToken  string                 `json:"-" gorm:"type:text;not null"`
	RefreshToken string                 `json:"-" gorm:"type:text"`
	ExpiresAt    *time.Time             `json:"expires_at,omitempty"`
	Scope        pq.StringArray         `json:"scope" gorm:"type:text[]"`
	Meta         map[string]interface{} `json:"meta,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// TableName returns the table name for PlatformToken
func (PlatformToken) TableName() string {
	return "platform_tokens"
}

// IsExpired reports whether the access token is past its expiry. A nil expiry never expires.
func (t *PlatformToken) IsExpired(now time.Time) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Before(*t.ExpiresAt)
}

// NeedsRefresh reports whether the access token is expired or within window of expiring
func (t *PlatformToken) NeedsRefresh(now time.Time, window time.Duration) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return !now.Add(window).Before(*t.ExpiresAt)
}

// HasRefreshToken reports whether a refresh token is stored
func (t *PlatformToken) HasRefreshToken() bool {
	return t.RefreshToken != ""
}
