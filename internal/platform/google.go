package platform

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"

	"github.com/carlmjohnson/requests"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleUserinfoURL   = "https://openidconnect.googleapis.com/v1/userinfo"
	googleRefreshWindow = 10 * time.Minute
)

var googleDefaultScopes = map[Platform][]string{
	GoogleAdSense:   {"openid", "email", "https://www.googleapis.com/auth/adsense.readonly"},
	GoogleAnalytics: {"openid", "email", "https://www.googleapis.com/auth/analytics.readonly"},
}

// GoogleProvider implements Google OAuth for AdSense and Analytics.
// Both platforms share the OAuth client and differ in scopes.
type GoogleProvider struct {
	*standardProvider
	userinfoURL string
}

// NewGoogleProvider creates the provider for google_adsense or google_analytics
func NewGoogleProvider(p Platform, cfg auth.ProviderConfig, client *http.Client) *GoogleProvider {
	if client == nil {
		client = DefaultHTTPClient
	}
	endpoint := google.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = googleDefaultScopes[p]
	}
	userinfoURL := cfg.ProfileURL
	if userinfoURL == "" {
		userinfoURL = googleUserinfoURL
	}

	return &GoogleProvider{
		standardProvider: &standardProvider{
			platform: p,
			conf: oauth2.Config{
				ClientID:     cfg.ClientID,
				ClientSecret: cfg.ClientSecret,
				Scopes:       scopes,
				Endpoint:     endpoint,
			},
			window: googleRefreshWindow,
			client: client,
			// offline access plus consent so that Google issues a refresh token every time
			authParams: []oauth2.AuthCodeOption{
				oauth2.AccessTypeOffline,
				oauth2.SetAuthURLParam("prompt", "consent"),
				oauth2.SetAuthURLParam("include_granted_scopes", "true"),
			},
		},
		userinfoURL: userinfoURL,
	}
}

// Exchange trades the code for tokens and resolves the Google account subject
func (p *GoogleProvider) Exchange(ctx context.Context, code, redirectURL string) (*Grant, error) {
	tok, err := p.exchange(ctx, code, redirectURL)
	if err != nil {
		return nil, err
	}
	grant := grantFromOAuthToken(tok)
	if len(grant.Scope) == 0 {
		grant.Scope = p.conf.Scopes
	}

	var profile struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	res, err := Send(ctx, p.platform, "get userinfo", requests.
		URL(p.userinfoURL).
		Client(p.client).
		Bearer(tok.AccessToken))
	if err != nil {
		return nil, err
	}
	if err := GoogleError(p.platform, res); err != nil {
		return nil, err
	}
	if err := res.Decode(&profile); err != nil {
		return nil, apperrors.NewUpstreamError(string(p.platform), "get userinfo", err)
	}
	if profile.Sub == "" {
		return nil, apperrors.NewUpstreamError(string(p.platform), "get userinfo", fmt.Errorf("userinfo has no subject"))
	}

	grant.AccountID = profile.Sub
	grant.Meta = map[string]interface{}{"email": profile.Email, "name": profile.Name}
	return grant, nil
}

// GoogleError maps a Google API response to an error, or nil for a 2xx response
func GoogleError(p Platform, res *Response) error {
	if res.StatusCode < http.StatusBadRequest {
		return nil
	}
	if res.IsServerError() {
		return apperrors.NewUpstreamError(string(p), "google request", fmt.Errorf("status %d", res.StatusCode))
	}

	var body struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	platformErr := &apperrors.PlatformError{
		Platform:     string(p),
		StatusCode:   res.StatusCode,
		Message:      http.StatusText(res.StatusCode),
		TokenInvalid: res.StatusCode == http.StatusUnauthorized,
	}
	if err := res.Decode(&body); err == nil && body.Error.Message != "" {
		platformErr.Message = body.Error.Message
	}
	return platformErr
}
