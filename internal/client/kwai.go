package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/platform"

	"github.com/carlmjohnson/requests"
)

const kwaiAPIURL = "https://open.kwai.com/openapi"

// KwaiClient reads the Kwai user profile. Campaign management is not exposed to third parties.
type KwaiClient struct {
	*caller
	unsupportedCampaigns
	apiURL string
	appID  string
}

// NewKwaiClient creates the Kwai open API client
func NewKwaiClient(cfg auth.ProviderConfig, httpClient *http.Client, settings BreakerSettings) *KwaiClient {
	apiURL := strings.TrimSuffix(cfg.APIBaseURL, "/")
	if apiURL == "" {
		apiURL = kwaiAPIURL
	}
	return &KwaiClient{
		caller: newCaller(platform.Kwai, httpClient, settings),
		apiURL: apiURL,
		appID:  cfg.ClientID,
	}
}

func (c *KwaiClient) Platform() platform.Platform {
	return platform.Kwai
}

// ListAccounts returns the authorized Kwai user as the single account
func (c *KwaiClient) ListAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	res, err := c.call(ctx, "list_accounts", requests.
		URL(c.apiURL+"/user_info").
		Param("app_id", c.appID).
		Param("access_token", accessToken))
	if err != nil {
		return nil, err
	}

	var body struct {
		Result   int    `json:"result"`
		ErrorMsg string `json:"error_msg"`
		UserInfo struct {
			OpenID string `json:"open_id"`
			Name   string `json:"name"`
		} `json:"user_info"`
	}
	if err := res.Decode(&body); err != nil {
		if res.IsClientError() {
			return nil, &apperrors.PlatformError{Platform: string(platform.Kwai), StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}
		return nil, apperrors.NewUpstreamError(string(platform.Kwai), "list_accounts", err)
	}
	if body.Result != 1 || res.IsClientError() {
		status := res.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadRequest
		}
		msg := body.ErrorMsg
		if msg == "" {
			msg = fmt.Sprintf("result %d", body.Result)
		}
		return nil, &apperrors.PlatformError{
			Platform:     string(platform.Kwai),
			StatusCode:   status,
			Code:         body.Result,
			Message:      msg,
			TokenInvalid: kwaiTokenInvalid(body.Result),
		}
	}

	return []Account{{ID: body.UserInfo.OpenID, Name: body.UserInfo.Name}}, nil
}

// 100200100 access token invalid, 100200101 access token expired
func kwaiTokenInvalid(result int) bool {
	return result == 100200100 || result == 100200101
}
