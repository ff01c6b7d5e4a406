package client

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/platform"

	"github.com/carlmjohnson/requests"
)

// TikTokClient calls the TikTok Business API
type TikTokClient struct {
	*caller
	apiURL string
	appID  string
	secret string
}

// NewTikTokClient creates a Business API client
func NewTikTokClient(cfg auth.ProviderConfig, httpClient *http.Client, settings BreakerSettings) *TikTokClient {
	return &TikTokClient{
		caller: newCaller(platform.TikTok, httpClient, settings),
		apiURL: platform.TikTokAPIURL(cfg),
		appID:  cfg.ClientID,
		secret: cfg.ClientSecret,
	}
}

func (c *TikTokClient) Platform() platform.Platform {
	return platform.TikTok
}

func (c *TikTokClient) Supports(op Operation) bool {
	return op != OpSetAccountStatus
}

// ListAccounts lists the advertisers the token was authorized for
func (c *TikTokClient) ListAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	var data struct {
		List []struct {
			AdvertiserID   string `json:"advertiser_id"`
			AdvertiserName string `json:"advertiser_name"`
		} `json:"list"`
	}
	rb := requests.URL(c.apiURL+"/oauth2/advertiser/get/").
		Param("app_id", c.appID).
		Param("secret", c.secret)
	if err := c.do(ctx, "list_accounts", accessToken, rb, &data); err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(data.List))
	for _, a := range data.List {
		accounts = append(accounts, Account{ID: a.AdvertiserID, Name: a.AdvertiserName})
	}
	return accounts, nil
}

// ListCampaigns lists the campaigns of an advertiser
func (c *TikTokClient) ListCampaigns(ctx context.Context, accessToken, adAccountID string) ([]Campaign, error) {
	if adAccountID == "" {
		return nil, apperrors.ErrAdAccountIDMissing
	}
	var data struct {
		List []struct {
			CampaignID      string  `json:"campaign_id"`
			AdvertiserID    string  `json:"advertiser_id"`
			CampaignName    string  `json:"campaign_name"`
			OperationStatus string  `json:"operation_status"`
			ObjectiveType   string  `json:"objective_type"`
			BudgetMode      string  `json:"budget_mode"`
			Budget          float64 `json:"budget"`
		} `json:"list"`
	}
	rb := requests.URL(c.apiURL+"/campaign/get/").
		Param("advertiser_id", adAccountID).
		Param("page_size", "100")
	if err := c.do(ctx, "list_campaigns", accessToken, rb, &data); err != nil {
		return nil, err
	}

	campaigns := make([]Campaign, 0, len(data.List))
	for _, cp := range data.List {
		campaign := Campaign{
			ID:        cp.CampaignID,
			AccountID: cp.AdvertiserID,
			Name:      cp.CampaignName,
			Status:    fromTikTokStatus(cp.OperationStatus),
			Objective: cp.ObjectiveType,
		}
		if cp.BudgetMode == "BUDGET_MODE_DAY" {
			budget := toMinorUnits(cp.Budget)
			campaign.DailyBudget = &budget
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

// SetCampaignStatus enables or disables a campaign
func (c *TikTokClient) SetCampaignStatus(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error) {
	body := map[string]interface{}{
		"advertiser_id":    m.AdAccountID,
		"campaign_ids":     []string{m.CampaignID},
		"operation_status": toTikTokStatus(m.Status),
	}
	if err := c.post(ctx, "set_campaign_status", "/campaign/status/update/", accessToken, m, body); err != nil {
		return nil, err
	}
	return &MutationResult{ID: m.CampaignID, Success: true, Status: m.Status}, nil
}

// RenameCampaign changes the campaign name
func (c *TikTokClient) RenameCampaign(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error) {
	body := map[string]interface{}{
		"advertiser_id": m.AdAccountID,
		"campaign_id":   m.CampaignID,
		"campaign_name": m.Name,
	}
	if err := c.post(ctx, "rename_campaign", "/campaign/update/", accessToken, m, body); err != nil {
		return nil, err
	}
	return &MutationResult{ID: m.CampaignID, Success: true, Name: m.Name}, nil
}

// SetDailyBudget sets the campaign budget. The Business API takes major currency units.
func (c *TikTokClient) SetDailyBudget(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error) {
	body := map[string]interface{}{
		"advertiser_id": m.AdAccountID,
		"campaign_id":   m.CampaignID,
		"budget":        float64(m.DailyBudget) / 100,
	}
	if err := c.post(ctx, "set_daily_budget", "/campaign/update/", accessToken, m, body); err != nil {
		return nil, err
	}
	budget := m.DailyBudget
	return &MutationResult{ID: m.CampaignID, Success: true, DailyBudget: &budget}, nil
}

// SetAccountStatus is not available to advertisers through the Business API
func (c *TikTokClient) SetAccountStatus(context.Context, string, string, string) (*MutationResult, error) {
	return nil, apperrors.ErrOperationNotSupported
}

func (c *TikTokClient) post(ctx context.Context, operation, path, accessToken string, m CampaignMutation, body map[string]interface{}) error {
	if m.CampaignID == "" {
		return apperrors.ErrCampaignIDMissing
	}
	if m.AdAccountID == "" {
		return apperrors.ErrAdAccountIDMissing
	}
	return c.do(ctx, operation, accessToken, requests.URL(c.apiURL+path).BodyJSON(body), nil)
}

func (c *TikTokClient) do(ctx context.Context, operation, accessToken string, rb *requests.Builder, out interface{}) error {
	res, err := c.call(ctx, operation, rb.Header("Access-Token", accessToken))
	if err != nil {
		return err
	}
	return platform.DecodeTikTok(res, out)
}

func toTikTokStatus(status string) string {
	if status == StatusActive {
		return "ENABLE"
	}
	return "DISABLE"
}

func fromTikTokStatus(status string) string {
	switch status {
	case "ENABLE":
		return StatusActive
	case "DISABLE":
		return StatusPaused
	default:
		return status
	}
}

func toMinorUnits(amount float64) int64 {
	v, _ := strconv.ParseInt(strconv.FormatFloat(math.Round(amount*100), 'f', 0, 64), 10, 64)
	return v
}
