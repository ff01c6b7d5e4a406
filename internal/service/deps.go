package service

import (
	"context"

	"bleck-backend/internal/cache"
	"bleck-backend/internal/client"
	"bleck-backend/internal/database/models"
	"bleck-backend/internal/platform"

	"github.com/google/uuid"
)

// CredentialStore is the persistence the token lifecycle needs
type CredentialStore interface {
	Upsert(ctx context.Context, token *models.PlatformToken) error
	GetLatest(ctx context.Context, userID uuid.UUID, platform string) (*models.PlatformToken, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PlatformToken, error)
	Delete(ctx context.Context, userID uuid.UUID, platform, accountID string) error
}

// ProviderResolver dispatches a platform to its OAuth provider
type ProviderResolver interface {
	Get(p platform.Platform) (platform.Provider, error)
}

// ClientResolver dispatches a platform to its ads client
type ClientResolver interface {
	Get(p platform.Platform) (client.AdsClient, error)
}

// StateStore keeps pending OAuth authorizations
type StateStore interface {
	Issue(ctx context.Context, userID uuid.UUID, platform string) (string, error)
	Consume(ctx context.Context, state, platform string) (*cache.OAuthState, error)
}
