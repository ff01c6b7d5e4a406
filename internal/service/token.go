package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bleck-backend/internal/auth"
	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/logger"
	"bleck-backend/internal/metrics"
	"bleck-backend/internal/platform"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TokenState is the verdict of a credential lookup
type TokenState string

const (
	TokenValid        TokenState = "valid"
	TokenNeedsRefresh TokenState = "needs_refresh"
)

// TokenLookup is a stored credential and whether it can be used as is
type TokenLookup struct {
	State      TokenState
	Credential *models.PlatformToken
}

// Connection describes a linked platform account. It never carries tokens.
type Connection struct {
	Platform  string                 `json:"platform"`
	AccountID string                 `json:"account_id"`
	ExpiresAt *time.Time             `json:"expires_at,omitempty"`
	Expired   bool                   `json:"expired"`
	Scope     []string               `json:"scope"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// TokenService owns the credential lifecycle: connect, read, refresh, disconnect
type TokenService struct {
	store     CredentialStore
	providers ProviderResolver
	states    StateStore
	config    *auth.AuthConfig
	now       func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(store CredentialStore, providers ProviderResolver, states StateStore, config *auth.AuthConfig) *TokenService {
	return &TokenService{
		store:     store,
		providers: providers,
		states:    states,
		config:    config,
		now:       time.Now,
	}
}

// Lookup reads the current credential of a user for a platform. It has no side effects.
func (s *TokenService) Lookup(ctx context.Context, userID uuid.UUID, p platform.Platform) (*TokenLookup, error) {
	if err := validateTarget(userID, p); err != nil {
		return nil, err
	}
	provider, err := s.providers.Get(p)
	if err != nil {
		return nil, err
	}

	cred, err := s.store.GetLatest(ctx, userID, string(p))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrNotConnected
		}
		return nil, err
	}

	state := TokenValid
	if cred.NeedsRefresh(s.now(), provider.RefreshWindow()) {
		state = TokenNeedsRefresh
	}
	return &TokenLookup{State: state, Credential: cred}, nil
}

// Refresh makes one refresh call to the platform and, on success, one upsert.
// On failure the stored row is left as it was and a *RefreshError is returned. Nothing is retried.
func (s *TokenService) Refresh(ctx context.Context, cred *models.PlatformToken) (*models.PlatformToken, error) {
	p := platform.Platform(cred.Platform)
	provider, err := s.providers.Get(p)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).WithFields(map[string]interface{}{
		"platform":              p,
		"account_id":            cred.AccountID,
		"refresh_token_present": cred.HasRefreshToken(),
	})

	grant, err := provider.Refresh(ctx, cred)
	if err != nil {
		outcome := metrics.OutcomeError
		if _, rejected := apperrors.AsPlatformError(err); rejected || errors.Is(err, apperrors.ErrNoRefreshToken) {
			outcome = metrics.OutcomeRejected
		}
		metrics.RecordRefresh(string(p), outcome)
		log.WithError(err).Warn("Platform token refresh failed")
		return nil, &apperrors.RefreshError{Platform: string(p), Cause: err}
	}

	updated := applyGrant(cred, grant)
	if err := s.store.Upsert(ctx, updated); err != nil {
		metrics.RecordRefresh(string(p), metrics.OutcomeError)
		log.WithError(err).Error("Failed to store refreshed platform token")
		return nil, fmt.Errorf("store refreshed token: %w", err)
	}

	metrics.RecordRefresh(string(p), metrics.OutcomeSuccess)
	log.Info("Platform token refreshed")
	return updated, nil
}

// ValidToken returns a credential that can be used for a platform call, refreshing it once if needed
func (s *TokenService) ValidToken(ctx context.Context, userID uuid.UUID, p platform.Platform) (*models.PlatformToken, error) {
	lookup, err := s.Lookup(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	if lookup.State == TokenValid {
		return lookup.Credential, nil
	}
	return s.Refresh(ctx, lookup.Credential)
}

// AuthorizeURL starts a connection: it records who is connecting and returns the platform consent URL
func (s *TokenService) AuthorizeURL(ctx context.Context, userID uuid.UUID, p platform.Platform) (string, error) {
	if err := validateTarget(userID, p); err != nil {
		return "", err
	}
	provider, err := s.providers.Get(p)
	if err != nil {
		return "", err
	}

	state, err := s.states.Issue(ctx, userID, string(p))
	if err != nil {
		return "", err
	}
	return provider.AuthCodeURL(state, s.config.CallbackURL(string(p))), nil
}

// Connect completes an authorization: the state resolves the user, the code is exchanged
// and the credential is upserted
func (s *TokenService) Connect(ctx context.Context, p platform.Platform, state, code string) (*Connection, error) {
	if code == "" {
		return nil, apperrors.ErrAuthorizationCodeEmpty
	}
	provider, err := s.providers.Get(p)
	if err != nil {
		return nil, err
	}
	pending, err := s.states.Consume(ctx, state, string(p))
	if err != nil {
		return nil, err
	}

	grant, err := provider.Exchange(ctx, code, s.config.CallbackURL(string(p)))
	if err != nil {
		logger.FromContext(ctx).WithFields(map[string]interface{}{
			"platform":     p,
			"user_id":      pending.UserID,
			"code_present": true,
		}).WithError(err).Warn("Authorization code exchange failed")
		return nil, err
	}

	token := &models.PlatformToken{
		UserID:       pending.UserID,
		Platform:     string(p),
		AccountID:    grant.AccountID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresAt:    grant.ExpiresAt,
		Scope:        pq.StringArray(grant.Scope),
		Meta:         grant.Meta,
	}
	if err := s.store.Upsert(ctx, token); err != nil {
		return nil, fmt.Errorf("store platform token: %w", err)
	}

	logger.FromContext(ctx).WithFields(map[string]interface{}{
		"platform":              p,
		"user_id":               pending.UserID,
		"account_id":            token.AccountID,
		"refresh_token_present": token.HasRefreshToken(),
	}).Info("Platform account connected")

	conn := s.connection(token)
	return &conn, nil
}

// Connections lists the linked accounts of a user
func (s *TokenService) Connections(ctx context.Context, userID uuid.UUID) ([]Connection, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUserIDMissing
	}
	tokens, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Connection, 0, len(tokens))
	for i := range tokens {
		out = append(out, s.connection(&tokens[i]))
	}
	return out, nil
}

// Disconnect removes a linked account. An empty accountID removes every account of the platform.
func (s *TokenService) Disconnect(ctx context.Context, userID uuid.UUID, p platform.Platform, accountID string) error {
	if err := validateTarget(userID, p); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, userID, string(p), accountID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrNotConnected
		}
		return err
	}
	logger.FromContext(ctx).WithFields(map[string]interface{}{
		"platform":   p,
		"user_id":    userID,
		"account_id": accountID,
	}).Info("Platform account disconnected")
	return nil
}

func (s *TokenService) connection(t *models.PlatformToken) Connection {
	scope := []string(t.Scope)
	if scope == nil {
		scope = []string{}
	}
	return Connection{
		Platform:  t.Platform,
		AccountID: t.AccountID,
		ExpiresAt: t.ExpiresAt,
		Expired:   t.IsExpired(s.now()),
		Scope:     scope,
		Meta:      t.Meta,
		UpdatedAt: t.UpdatedAt,
	}
}

func validateTarget(userID uuid.UUID, p platform.Platform) error {
	if userID == uuid.Nil {
		return apperrors.ErrUserIDMissing
	}
	_, err := platform.Parse(string(p))
	return err
}

// applyGrant builds the row written after a refresh. The account and, unless the platform
// sent new values, the refresh token, scope and meta of the prior row are kept.
func applyGrant(cred *models.PlatformToken, g *platform.Grant) *models.PlatformToken {
	updated := *cred
	updated.AccessToken = g.AccessToken
	updated.ExpiresAt = g.ExpiresAt
	if g.RefreshToken != "" {
		updated.RefreshToken = g.RefreshToken
	}
	if len(g.Scope) > 0 {
		updated.Scope = pq.StringArray(g.Scope)
	}
	if len(g.Meta) > 0 {
		meta := make(map[string]interface{}, len(cred.Meta)+len(g.Meta))
		for k, v := range cred.Meta {
			meta[k] = v
		}
		for k, v := range g.Meta {
			meta[k] = v
		}
		updated.Meta = meta
	}
	return &updated
}
