package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/platform"

	"github.com/carlmjohnson/requests"
)

// Graph ad account status codes
var facebookAccountStatus = map[int]string{
	1:   "ACTIVE",
	2:   "DISABLED",
	3:   "UNSETTLED",
	7:   "PENDING_RISK_REVIEW",
	8:   "PENDING_SETTLEMENT",
	9:   "IN_GRACE_PERIOD",
	100: "PENDING_CLOSURE",
	101: "CLOSED",
	201: "ANY_ACTIVE",
	202: "ANY_CLOSED",
}

// GraphClient calls the Facebook Marketing API
type GraphClient struct {
	*caller
	graphURL string
}

// NewGraphClient creates a Marketing API client
func NewGraphClient(cfg auth.ProviderConfig, httpClient *http.Client, settings BreakerSettings) *GraphClient {
	return &GraphClient{
		caller:   newCaller(platform.Facebook, httpClient, settings),
		graphURL: platform.FacebookGraphURL(cfg),
	}
}

func (c *GraphClient) Platform() platform.Platform {
	return platform.Facebook
}

// Supports reports every operation except ad account status changes
func (c *GraphClient) Supports(op Operation) bool {
	return op != OpSetAccountStatus
}

type graphAccount struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

type graphCampaign struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Objective   string `json:"objective"`
	DailyBudget string `json:"daily_budget"`
}

// ListAccounts lists the ad accounts of the token owner
func (c *GraphClient) ListAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	var body struct {
		Data []graphAccount `json:"data"`
	}
	if err := c.get(ctx, "list_accounts", "/me/adaccounts", accessToken, url.Values{
		"fields": {"id,account_id,name,account_status,currency,timezone_name"},
		"limit":  {"100"},
	}, &body); err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(body.Data))
	for _, a := range body.Data {
		status, ok := facebookAccountStatus[a.AccountStatus]
		if !ok {
			status = strconv.Itoa(a.AccountStatus)
		}
		accounts = append(accounts, Account{
			ID:       a.ID,
			Name:     a.Name,
			Status:   status,
			Currency: a.Currency,
			TimeZone: a.TimezoneName,
		})
	}
	return accounts, nil
}

// ListCampaigns lists the campaigns of an ad account
func (c *GraphClient) ListCampaigns(ctx context.Context, accessToken, adAccountID string) ([]Campaign, error) {
	if adAccountID == "" {
		return nil, apperrors.ErrAdAccountIDMissing
	}
	if !ValidAdAccountID(adAccountID) {
		return nil, apperrors.ErrAdAccountIDInvalid
	}
	var body struct {
		Data []graphCampaign `json:"data"`
	}
	if err := c.get(ctx, "list_campaigns", "/"+actID(adAccountID)+"/campaigns", accessToken, url.Values{
		"fields": {"id,account_id,name,status,objective,daily_budget"},
		"limit":  {"200"},
	}, &body); err != nil {
		return nil, err
	}

	campaigns := make([]Campaign, 0, len(body.Data))
	for _, cp := range body.Data {
		campaign := Campaign{
			ID:        cp.ID,
			AccountID: actID(cp.AccountID),
			Name:      cp.Name,
			Status:    cp.Status,
			Objective: cp.Objective,
		}
		if budget, err := strconv.ParseInt(cp.DailyBudget, 10, 64); err == nil {
			campaign.DailyBudget = &budget
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}

// SetCampaignStatus sets a campaign to ACTIVE or PAUSED
func (c *GraphClient) SetCampaignStatus(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error) {
	if err := c.update(ctx, "set_campaign_status", m.CampaignID, accessToken, url.Values{"status": {m.Status}}); err != nil {
		return nil, err
	}
	return &MutationResult{ID: m.CampaignID, Success: true, Status: m.Status}, nil
}

// RenameCampaign changes the campaign name
func (c *GraphClient) RenameCampaign(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error) {
	if err := c.update(ctx, "rename_campaign", m.CampaignID, accessToken, url.Values{"name": {m.Name}}); err != nil {
		return nil, err
	}
	return &MutationResult{ID: m.CampaignID, Success: true, Name: m.Name}, nil
}

// SetDailyBudget sets the campaign daily budget. Graph takes minor units as well.
func (c *GraphClient) SetDailyBudget(ctx context.Context, accessToken string, m CampaignMutation) (*MutationResult, error) {
	values := url.Values{"daily_budget": {strconv.FormatInt(m.DailyBudget, 10)}}
	if err := c.update(ctx, "set_daily_budget", m.CampaignID, accessToken, values); err != nil {
		return nil, err
	}
	budget := m.DailyBudget
	return &MutationResult{ID: m.CampaignID, Success: true, DailyBudget: &budget}, nil
}

// SetAccountStatus is not offered by the Marketing API for ad accounts and is intentionally unimplemented
func (c *GraphClient) SetAccountStatus(context.Context, string, string, string) (*MutationResult, error) {
	return nil, apperrors.ErrOperationNotSupported
}

func (c *GraphClient) get(ctx context.Context, operation, path, accessToken string, params url.Values, out interface{}) error {
	rb := requests.URL(c.graphURL + path).Param("access_token", accessToken)
	for key, values := range params {
		rb.Param(key, values...)
	}
	res, err := c.call(ctx, operation, rb)
	if err != nil {
		return err
	}
	if err := platform.GraphError(res); err != nil {
		return err
	}
	if err := res.Decode(out); err != nil {
		return apperrors.NewUpstreamError(string(platform.Facebook), operation, err)
	}
	return nil
}

func (c *GraphClient) update(ctx context.Context, operation, objectID, accessToken string, values url.Values) error {
	if objectID == "" {
		return apperrors.ErrCampaignIDMissing
	}
	res, err := c.call(ctx, operation, requests.
		URL(c.graphURL+"/"+url.PathEscape(objectID)).
		Param("access_token", accessToken).
		BodyForm(values).
		Method(http.MethodPost))
	if err != nil {
		return err
	}
	if err := platform.GraphError(res); err != nil {
		return err
	}

	var body struct {
		Success bool `json:"success"`
	}
	if err := res.Decode(&body); err != nil {
		return apperrors.NewUpstreamError(string(platform.Facebook), operation, err)
	}
	if !body.Success {
		return &apperrors.PlatformError{
			Platform:   string(platform.Facebook),
			StatusCode: http.StatusBadGateway,
			Message:    "update was not applied",
		}
	}
	return nil
}

// actID normalizes an ad account id to the act_<id> form Graph expects
func actID(id string) string {
	if id == "" || strings.HasPrefix(id, "act_") {
		return id
	}
	return "act_" + id
}
