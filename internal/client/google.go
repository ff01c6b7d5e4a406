package client

import (
	"context"
	"net/http"
	"strings"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/platform"

	"github.com/carlmjohnson/requests"
)

const (
	adsenseAPIURL   = "https://adsense.googleapis.com/v2"
	analyticsAPIURL = "https://analyticsadmin.googleapis.com/v1beta"
)

// GoogleClient lists AdSense publisher accounts or Analytics accounts.
// Neither API manages campaigns.
type GoogleClient struct {
	*caller
	unsupportedCampaigns
	apiURL string
}

// NewGoogleClient creates the client for google_adsense or google_analytics
func NewGoogleClient(p platform.Platform, cfg auth.ProviderConfig, httpClient *http.Client, settings BreakerSettings) *GoogleClient {
	apiURL := strings.TrimSuffix(cfg.APIBaseURL, "/")
	if apiURL == "" {
		apiURL = adsenseAPIURL
		if p == platform.GoogleAnalytics {
			apiURL = analyticsAPIURL
		}
	}
	return &GoogleClient{
		caller: newCaller(p, httpClient, settings),
		apiURL: apiURL,
	}
}

func (c *GoogleClient) Platform() platform.Platform {
	return c.platform
}

// ListAccounts returns the accounts the Google user can access
func (c *GoogleClient) ListAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	if c.platform == platform.GoogleAnalytics {
		return c.listAnalyticsAccounts(ctx, accessToken)
	}
	return c.listAdSenseAccounts(ctx, accessToken)
}

func (c *GoogleClient) listAdSenseAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	var body struct {
		Accounts []struct {
			Name        string `json:"name"`
			DisplayName string `json:"displayName"`
			State       string `json:"state"`
			TimeZone    struct {
				ID string `json:"id"`
			} `json:"timeZone"`
		} `json:"accounts"`
	}
	if err := c.get(ctx, "list_accounts", "/accounts", accessToken, &body); err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(body.Accounts))
	for _, a := range body.Accounts {
		accounts = append(accounts, Account{
			ID:       strings.TrimPrefix(a.Name, "accounts/"),
			Name:     a.DisplayName,
			Status:   a.State,
			TimeZone: a.TimeZone.ID,
		})
	}
	return accounts, nil
}

func (c *GoogleClient) listAnalyticsAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	var body struct {
		AccountSummaries []struct {
			Account     string `json:"account"`
			DisplayName string `json:"displayName"`
		} `json:"accountSummaries"`
	}
	if err := c.get(ctx, "list_accounts", "/accountSummaries", accessToken, &body); err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(body.AccountSummaries))
	for _, a := range body.AccountSummaries {
		accounts = append(accounts, Account{
			ID:   strings.TrimPrefix(a.Account, "accounts/"),
			Name: a.DisplayName,
		})
	}
	return accounts, nil
}

func (c *GoogleClient) get(ctx context.Context, operation, path, accessToken string, out interface{}) error {
	res, err := c.call(ctx, operation, requests.URL(c.apiURL+path).Bearer(accessToken))
	if err != nil {
		return err
	}
	if err := platform.GoogleError(c.platform, res); err != nil {
		return err
	}
	if err := res.Decode(out); err != nil {
		return apperrors.NewUpstreamError(string(c.platform), operation, err)
	}
	return nil
}
