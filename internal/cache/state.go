package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "bleck-backend/internal/errors"

	"github.com/google/uuid"
)

// OAuthStateTTL bounds how long a user has to finish the platform consent screen
const OAuthStateTTL = 10 * time.Minute

// OAuthState is what a pending authorization remembers about who started it
type OAuthState struct {
	UserID    uuid.UUID `json:"user_id"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"created_at"`
}

// OAuthStateStore issues single-use OAuth state values
type OAuthStateStore struct {
	store *CacheWrapper
	ttl   time.Duration
}

// NewOAuthStateStore creates a store on top of any CacheService
func NewOAuthStateStore(c CacheService, ttl time.Duration) *OAuthStateStore {
	if ttl <= 0 {
		ttl = OAuthStateTTL
	}
	return &OAuthStateStore{store: NewCacheWrapper(c, ttl), ttl: ttl}
}

// Issue records a pending authorization and returns its opaque state value
func (s *OAuthStateStore) Issue(ctx context.Context, userID uuid.UUID, platform string) (string, error) {
	state := uuid.NewString()
	entry := OAuthState{UserID: userID, Platform: platform, CreatedAt: time.Now().UTC()}
	if err := s.store.SetJSON(ctx, OAuthStateKey(state), entry, s.ttl); err != nil {
		return "", fmt.Errorf("store oauth state: %w", err)
	}
	return state, nil
}

// Consume resolves a state value and deletes it. A state works once, and only for the platform it was issued for.
func (s *OAuthStateStore) Consume(ctx context.Context, state, platform string) (*OAuthState, error) {
	if state == "" {
		return nil, apperrors.ErrInvalidOAuthState
	}
	var entry OAuthState
	if err := s.store.TakeJSON(ctx, OAuthStateKey(state), &entry); err != nil {
		if errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrInvalidValue) {
			return nil, apperrors.ErrInvalidOAuthState
		}
		return nil, fmt.Errorf("load oauth state: %w", err)
	}
	if entry.Platform != platform {
		return nil, apperrors.ErrInvalidOAuthState
	}
	return &entry, nil
}
