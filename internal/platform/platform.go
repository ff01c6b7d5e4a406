package platform

import (
	"context"
	"strings"
	"time"

	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"
)

// Platform identifies a supported advertising or analytics service
type Platform string

const (
	Facebook        Platform = "facebook"
	GoogleAdSense   Platform = "google_adsense"
	GoogleAnalytics Platform = "google_analytics"
	TikTok          Platform = "tiktok"
	Kwai            Platform = "kwai"
)

// All lists the supported platforms in display order
func All() []Platform {
	return []Platform{Facebook, GoogleAdSense, GoogleAnalytics, TikTok, Kwai}
}

// Parse validates a platform identifier taken from a request
func Parse(s string) (Platform, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "", apperrors.ErrPlatformMissing
	}
	for _, p := range All() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", apperrors.ErrUnsupportedPlatform
}

func (p Platform) String() string {
	return string(p)
}

// Grant is the result of an authorization code exchange or a refresh.
// Empty fields mean the platform did not send a new value.
type Grant struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
	Scope        []string
	AccountID    string
	Meta         map[string]interface{}
}

// Provider is the OAuth surface of one platform
type Provider interface {
	Platform() Platform
	// RefreshWindow is how long before expiry a token is treated as stale
	RefreshWindow() time.Duration
	// SupportsRefresh reports whether the stored credential can mint a new access token
	SupportsRefresh(token *models.PlatformToken) bool
	AuthCodeURL(state, redirectURL string) string
	Exchange(ctx context.Context, code, redirectURL string) (*Grant, error)
	Refresh(ctx context.Context, token *models.PlatformToken) (*Grant, error)
}

func expiresIn(now time.Time, seconds int64) *time.Time {
	if seconds <= 0 {
		return nil
	}
	t := now.Add(time.Duration(seconds) * time.Second).UTC()
	return &t
}
