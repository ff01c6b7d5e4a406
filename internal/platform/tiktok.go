package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bleck-backend/internal/auth"
	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"

	"github.com/carlmjohnson/requests"
)

const (
	tiktokAuthURL       = "https://business-api.tiktok.com/portal/auth"
	tiktokAPIURL        = "https://business-api.tiktok.com/open_api/v1.3"
	tiktokRefreshWindow = 10 * time.Minute
)

// Business API codes for a missing, invalid, expired or revoked access token
var tiktokTokenInvalidCodes = map[int]bool{
	40100: true,
	40101: true,
	40102: true,
	40104: true,
	40105: true,
}

// TikTokEnvelope is the response wrapper of every Business API endpoint
type TikTokEnvelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

// TikTokProvider implements the TikTok for Business advertiser authorization
type TikTokProvider struct {
	appID   string
	secret  string
	authURL string
	apiURL  string
	client  *http.Client
	now     func() time.Time
}

// NewTikTokProvider creates the provider from its configuration
func NewTikTokProvider(cfg auth.ProviderConfig, client *http.Client) *TikTokProvider {
	if client == nil {
		client = DefaultHTTPClient
	}
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = tiktokAuthURL
	}
	return &TikTokProvider{
		appID:   cfg.ClientID,
		secret:  cfg.ClientSecret,
		authURL: authURL,
		apiURL:  TikTokAPIURL(cfg),
		client:  client,
		now:     time.Now,
	}
}

// TikTokAPIURL returns the Business API base URL
func TikTokAPIURL(cfg auth.ProviderConfig) string {
	if cfg.APIBaseURL != "" {
		return strings.TrimSuffix(cfg.APIBaseURL, "/")
	}
	return tiktokAPIURL
}

func (p *TikTokProvider) Platform() Platform {
	return TikTok
}

func (p *TikTokProvider) RefreshWindow() time.Duration {
	return tiktokRefreshWindow
}

func (p *TikTokProvider) SupportsRefresh(token *models.PlatformToken) bool {
	return token != nil && token.HasRefreshToken()
}

func (p *TikTokProvider) AuthCodeURL(state, redirectURL string) string {
	q := url.Values{}
	q.Set("app_id", p.appID)
	q.Set("state", state)
	q.Set("redirect_uri", redirectURL)
	return p.authURL + "?" + q.Encode()
}

type tiktokTokenData struct {
	AccessToken          string        `json:"access_token"`
	RefreshToken         string        `json:"refresh_token"`
	AccessTokenExpireIn  int64         `json:"access_token_expire_in"`
	RefreshTokenExpireIn int64         `json:"refresh_token_expire_in"`
	AdvertiserIDs        []string      `json:"advertiser_ids"`
	Scope                []interface{} `json:"scope"`
}

// Exchange trades the auth_code for an access token. The first authorized advertiser becomes the account.
func (p *TikTokProvider) Exchange(ctx context.Context, code, redirectURL string) (*Grant, error) {
	data, err := p.tokenCall(ctx, "exchange code", "/oauth2/access_token/", map[string]string{
		"app_id":    p.appID,
		"secret":    p.secret,
		"auth_code": code,
	})
	if err != nil {
		return nil, err
	}
	if len(data.AdvertiserIDs) == 0 {
		return nil, &apperrors.PlatformError{
			Platform:   string(TikTok),
			StatusCode: http.StatusBadRequest,
			Message:    "no advertiser account was authorized",
		}
	}

	grant := p.grant(data)
	grant.AccountID = data.AdvertiserIDs[0]
	grant.Meta = map[string]interface{}{"advertiser_ids": data.AdvertiserIDs}
	return grant, nil
}

// Refresh performs one refresh_token call
func (p *TikTokProvider) Refresh(ctx context.Context, token *models.PlatformToken) (*Grant, error) {
	if !p.SupportsRefresh(token) {
		return nil, apperrors.ErrNoRefreshToken
	}
	data, err := p.tokenCall(ctx, "refresh token", "/oauth2/refresh_token/", map[string]string{
		"app_id":        p.appID,
		"secret":        p.secret,
		"refresh_token": token.RefreshToken,
		"grant_type":    "refresh_token",
	})
	if err != nil {
		return nil, err
	}
	return p.grant(data), nil
}

func (p *TikTokProvider) grant(data *tiktokTokenData) *Grant {
	g := &Grant{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    expiresIn(p.now(), data.AccessTokenExpireIn),
	}
	for _, s := range data.Scope {
		g.Scope = append(g.Scope, fmt.Sprint(s))
	}
	return g
}

func (p *TikTokProvider) tokenCall(ctx context.Context, operation, path string, body map[string]string) (*tiktokTokenData, error) {
	res, err := Send(ctx, TikTok, operation, requests.
		URL(p.apiURL+path).
		Client(p.client).
		BodyJSON(body))
	if err != nil {
		return nil, err
	}
	var data tiktokTokenData
	if err := DecodeTikTok(res, &data); err != nil {
		return nil, err
	}
	if data.AccessToken == "" {
		return nil, apperrors.NewUpstreamError(string(TikTok), operation, fmt.Errorf("response has no access_token"))
	}
	return &data, nil
}

// DecodeTikTok checks the HTTP status and the envelope code, then decodes data into v
func DecodeTikTok(res *Response, v interface{}) error {
	if res.IsServerError() {
		return apperrors.NewUpstreamError(string(TikTok), "business api request", fmt.Errorf("status %d", res.StatusCode))
	}

	var env TikTokEnvelope
	if err := res.Decode(&env); err != nil {
		if res.IsClientError() {
			return &apperrors.PlatformError{Platform: string(TikTok), StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}
		return apperrors.NewUpstreamError(string(TikTok), "business api request", err)
	}
	if env.Code != 0 || res.IsClientError() {
		status := res.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadRequest
		}
		return &apperrors.PlatformError{
			Platform:     string(TikTok),
			StatusCode:   status,
			Code:         env.Code,
			Message:      env.Message,
			TokenInvalid: tiktokTokenInvalidCodes[env.Code],
		}
	}
	if v == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return apperrors.NewUpstreamError(string(TikTok), "business api request", err)
	}
	return nil
}
