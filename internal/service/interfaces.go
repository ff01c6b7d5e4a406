package service

import (
	"context"

	"bleck-backend/internal/client"
	"bleck-backend/internal/database/models"
	"bleck-backend/internal/platform"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TokenServiceInterface reads, refreshes and manages platform credentials
type TokenServiceInterface interface {
	Lookup(ctx context.Context, userID uuid.UUID, p platform.Platform) (*TokenLookup, error)
	Refresh(ctx context.Context, cred *models.PlatformToken) (*models.PlatformToken, error)
	ValidToken(ctx context.Context, userID uuid.UUID, p platform.Platform) (*models.PlatformToken, error)
	AuthorizeURL(ctx context.Context, userID uuid.UUID, p platform.Platform) (string, error)
	Connect(ctx context.Context, p platform.Platform, state, code string) (*Connection, error)
	Connections(ctx context.Context, userID uuid.UUID) ([]Connection, error)
	Disconnect(ctx context.Context, userID uuid.UUID, p platform.Platform, accountID string) error
}

// AdsServiceInterface runs one platform API operation on behalf of a user
type AdsServiceInterface interface {
	ListAccounts(ctx context.Context, userID uuid.UUID, platformID string) ([]client.Account, error)
	ListCampaigns(ctx context.Context, userID uuid.UUID, platformID string, req ListCampaignsRequest) ([]client.Campaign, error)
	SetCampaignStatus(ctx context.Context, userID uuid.UUID, platformID string, req CampaignStatusRequest) (*client.MutationResult, error)
	RenameCampaign(ctx context.Context, userID uuid.UUID, platformID string, req RenameCampaignRequest) (*client.MutationResult, error)
	SetDailyBudget(ctx context.Context, userID uuid.UUID, platformID string, req DailyBudgetRequest) (*client.MutationResult, error)
	SetAccountStatus(ctx context.Context, userID uuid.UUID, platformID string, req AccountStatusRequest) (*client.MutationResult, error)
}
