package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlatformToken_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		ts := now.Add(d)
		return &ts
	}

	tests := []struct {
		name         string
		expiresAt    *time.Time
		window       time.Duration
		expired      bool
		needsRefresh bool
	}{
		{name: "no expiry", expiresAt: nil, window: time.Hour, expired: false, needsRefresh: false},
		{name: "in the past", expiresAt: at(-time.Second), window: 0, expired: true, needsRefresh: true},
		{name: "exactly now", expiresAt: at(0), window: 0, expired: true, needsRefresh: true},
		{name: "inside window", expiresAt: at(5 * time.Minute), window: 10 * time.Minute, expired: false, needsRefresh: true},
		{name: "outside window", expiresAt: at(8 * 24 * time.Hour), window: 7 * 24 * time.Hour, expired: false, needsRefresh: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &PlatformToken{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expired, tok.IsExpired(now))
			assert.Equal(t, tt.needsRefresh, tok.NeedsRefresh(now, tt.window))
		})
	}
}

func TestPlatformToken_ExpiredAlwaysNeedsRefresh(t *testing.T) {
	now := time.Now()
	for _, age := range []time.Duration{time.Nanosecond, time.Minute, 24 * time.Hour, 365 * 24 * time.Hour} {
		expiresAt := now.Add(-age)
		tok := &PlatformToken{ExpiresAt: &expiresAt}
		for _, window := range []time.Duration{0, 10 * time.Minute, 7 * 24 * time.Hour} {
			assert.True(t, tok.NeedsRefresh(now, window), "age %s window %s", age, window)
		}
	}
}

func TestPlatformToken_HasRefreshToken(t *testing.T) {
	assert.False(t, (&PlatformToken{}).HasRefreshToken())
	assert.True(t, (&PlatformToken{RefreshToken: "enc:v1:x"}).HasRefreshToken())
}
