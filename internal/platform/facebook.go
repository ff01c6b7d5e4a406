package platform

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bleck-backend/internal/auth"
	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"

	"github.com/carlmjohnson/requests"
	"golang.org/x/oauth2"
)

const (
	// FacebookDefaultAPIVersion is the Graph API version used when none is configured
	FacebookDefaultAPIVersion = "v19.0"
	facebookGraphURL          = "https://graph.facebook.com"
	facebookDialogURL         = "https://www.facebook.com"
	facebookRefreshWindow     = 7 * 24 * time.Hour
)

// Graph API error codes for an invalid or expired access token
var facebookTokenInvalidCodes = map[int]bool{
	190: true,
	104: true,
}

var facebookDefaultScopes = []string{"ads_management", "ads_read", "business_management"}

// FacebookProvider implements the Facebook Login flow with long-lived token exchange
type FacebookProvider struct {
	conf     oauth2.Config
	graphURL string
	client   *http.Client
	now      func() time.Time
}

// NewFacebookProvider creates the provider from its configuration
func NewFacebookProvider(cfg auth.ProviderConfig, client *http.Client) *FacebookProvider {
	if client == nil {
		client = DefaultHTTPClient
	}
	graphURL := FacebookGraphURL(cfg)

	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = fmt.Sprintf("%s/%s/dialog/oauth", facebookDialogURL, facebookVersion(cfg))
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = graphURL + "/oauth/access_token"
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = facebookDefaultScopes
	}

	return &FacebookProvider{
		conf: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		graphURL: graphURL,
		client:   client,
		now:      time.Now,
	}
}

// FacebookGraphURL returns the versioned Graph API base URL
func FacebookGraphURL(cfg auth.ProviderConfig) string {
	base := strings.TrimSuffix(cfg.APIBaseURL, "/")
	if base == "" {
		base = facebookGraphURL
	}
	return base + "/" + facebookVersion(cfg)
}

func facebookVersion(cfg auth.ProviderConfig) string {
	if cfg.APIVersion != "" {
		return cfg.APIVersion
	}
	return FacebookDefaultAPIVersion
}

func (p *FacebookProvider) Platform() Platform {
	return Facebook
}

func (p *FacebookProvider) RefreshWindow() time.Duration {
	return facebookRefreshWindow
}

// SupportsRefresh reports whether there is a token to extend.
// Facebook has no refresh tokens; a long-lived token is extended by exchanging it again.
func (p *FacebookProvider) SupportsRefresh(token *models.PlatformToken) bool {
	return token != nil && token.AccessToken != ""
}

func (p *FacebookProvider) AuthCodeURL(state, redirectURL string) string {
	conf := p.conf
	conf.RedirectURL = redirectURL
	return conf.AuthCodeURL(state)
}

// Exchange trades the authorization code for a long-lived token and resolves the Facebook user id
func (p *FacebookProvider) Exchange(ctx context.Context, code, redirectURL string) (*Grant, error) {
	conf := p.conf
	conf.RedirectURL = redirectURL

	short, err := conf.Exchange(withHTTPClient(ctx, p.client), code)
	if err != nil {
		return nil, translateOAuthError(Facebook, "exchange code", err)
	}

	grant, err := p.exchangeLongLived(ctx, short.AccessToken)
	if err != nil {
		return nil, err
	}

	var me struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	res, err := Send(ctx, Facebook, "get profile", requests.
		URL(p.graphURL+"/me").
		Client(p.client).
		Param("fields", "id,name").
		Param("access_token", grant.AccessToken))
	if err != nil {
		return nil, err
	}
	if err := GraphError(res); err != nil {
		return nil, err
	}
	if err := res.Decode(&me); err != nil {
		return nil, apperrors.NewUpstreamError(string(Facebook), "get profile", err)
	}

	grant.AccountID = me.ID
	grant.Scope = p.conf.Scopes
	grant.Meta = map[string]interface{}{"name": me.Name}
	return grant, nil
}

// Refresh extends the current token with another long-lived exchange
func (p *FacebookProvider) Refresh(ctx context.Context, token *models.PlatformToken) (*Grant, error) {
	if !p.SupportsRefresh(token) {
		return nil, apperrors.ErrNoRefreshToken
	}
	return p.exchangeLongLived(ctx, token.AccessToken)
}

func (p *FacebookProvider) exchangeLongLived(ctx context.Context, accessToken string) (*Grant, error) {
	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	res, err := Send(ctx, Facebook, "exchange long-lived token", requests.
		URL(p.conf.Endpoint.TokenURL).
		Client(p.client).
		Param("grant_type", "fb_exchange_token").
		Param("client_id", p.conf.ClientID).
		Param("client_secret", p.conf.ClientSecret).
		Param("fb_exchange_token", accessToken))
	if err != nil {
		return nil, err
	}
	if err := GraphError(res); err != nil {
		return nil, err
	}
	if err := res.Decode(&body); err != nil {
		return nil, apperrors.NewUpstreamError(string(Facebook), "exchange long-lived token", err)
	}
	if body.AccessToken == "" {
		return nil, apperrors.NewUpstreamError(string(Facebook), "exchange long-lived token", fmt.Errorf("response has no access_token"))
	}

	return &Grant{
		AccessToken: body.AccessToken,
		ExpiresAt:   expiresIn(p.now(), body.ExpiresIn),
	}, nil
}

// GraphError maps a Graph API response to an error, or nil for a 2xx response.
// Codes 190 and 104 are reported as an invalid token.
func GraphError(res *Response) error {
	if res.StatusCode < http.StatusBadRequest {
		return nil
	}
	if res.IsServerError() {
		return apperrors.NewUpstreamError(string(Facebook), "graph request", fmt.Errorf("status %d", res.StatusCode))
	}

	var body struct {
		Error struct {
			Message      string `json:"message"`
			Type         string `json:"type"`
			Code         int    `json:"code"`
			ErrorSubcode int    `json:"error_subcode"`
		} `json:"error"`
	}
	platformErr := &apperrors.PlatformError{
		Platform:   string(Facebook),
		StatusCode: res.StatusCode,
		Message:    http.StatusText(res.StatusCode),
	}
	if err := res.Decode(&body); err == nil && body.Error.Message != "" {
		platformErr.Code = body.Error.Code
		platformErr.Message = body.Error.Message
		platformErr.TokenInvalid = facebookTokenInvalidCodes[body.Error.Code]
	}
	return platformErr
}
