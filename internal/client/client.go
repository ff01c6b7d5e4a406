package client

import (
	"context"
	"regexp"

	"bleck-backend/internal/platform"
)

// Campaign and account status values exposed by the API
const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

// Operation names one platform API operation
type Operation string

const (
	OpListAccounts      Operation = "list_accounts"
	OpListCampaigns     Operation = "list_campaigns"
	OpSetCampaignStatus Operation = "set_campaign_status"
	OpRenameCampaign    Operation = "rename_campaign"
	OpSetDailyBudget    Operation = "set_daily_budget"
	OpSetAccountStatus  Operation = "set_account_status"
)

var adAccountIDPattern = regexp.MustCompile(`^(act_)?[0-9]{1,64}$`)

// ValidAdAccountID reports whether id is a numeric ad account id, optionally prefixed with act_
func ValidAdAccountID(id string) bool {
	return adAccountIDPattern.MatchString(id)
}

// Account is an ad account (or publisher/analytics account) visible to the connected user
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	Currency string `json:"currency,omitempty"`
	TimeZone string `json:"timezone,omitempty"`
}

// Campaign is an advertising campaign. DailyBudget is in minor currency units.
type Campaign struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Objective   string `json:"objective,omitempty"`
	DailyBudget *int64 `json:"daily_budget,omitempty"`
}

// CampaignMutation carries the target and new value of a single campaign change
type CampaignMutation struct {
	AdAccountID string
	CampaignID  string
	Status      string
	Name        string
	DailyBudget int64
}

// MutationResult is returned by every successful mutation
type MutationResult struct {
	ID          string `json:"id"`
	Success     bool   `json:"success"`
	Status      string `json:"status,omitempty"`
	Name        string `json:"name,omitempty"`
	DailyBudget *int64 `json:"daily_budget,omitempty"`
}

// AdsClient issues exactly one platform API call per operation.
// Platform rejections come back as *errors.PlatformError, transport failures as ErrUpstreamUnavailable.
type AdsClient interface {
	Platform() platform.Platform
	// Supports reports whether the platform offers op at all
	Supports(op Operation) bool
	ListAccounts(ctx context.Context, accessToken string) ([]Account, error)
	ListCampaigns(ctx context.Context, accessToken, adAccountID string) ([]Campaign, error)
	SetCampaignStatus(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error)
	RenameCampaign(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error)
	SetDailyBudget(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error)
	SetAccountStatus(ctx context.Context, accessToken, accountID, status string) (*MutationResult, error)
}
