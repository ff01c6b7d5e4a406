package platform

import (
	"context"
	"net/http"
	"time"

	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"

	"golang.org/x/oauth2"
)

// standardProvider covers platforms that follow RFC 6749 for both the
// authorization code grant and the refresh token grant.
type standardProvider struct {
	platform   Platform
	conf       oauth2.Config
	window     time.Duration
	client     *http.Client
	authParams []oauth2.AuthCodeOption
}

func (p *standardProvider) Platform() Platform {
	return p.platform
}

func (p *standardProvider) RefreshWindow() time.Duration {
	return p.window
}

func (p *standardProvider) SupportsRefresh(token *models.PlatformToken) bool {
	return token != nil && token.HasRefreshToken()
}

func (p *standardProvider) AuthCodeURL(state, redirectURL string) string {
	conf := p.conf
	conf.RedirectURL = redirectURL
	return conf.AuthCodeURL(state, p.authParams...)
}

func (p *standardProvider) exchange(ctx context.Context, code, redirectURL string) (*oauth2.Token, error) {
	conf := p.conf
	conf.RedirectURL = redirectURL
	tok, err := conf.Exchange(withHTTPClient(ctx, p.client), code)
	if err != nil {
		return nil, translateOAuthError(p.platform, "exchange code", err)
	}
	return tok, nil
}

// Refresh performs one refresh_token grant
func (p *standardProvider) Refresh(ctx context.Context, token *models.PlatformToken) (*Grant, error) {
	if !p.SupportsRefresh(token) {
		return nil, apperrors.ErrNoRefreshToken
	}

	// no access token, so the source always calls the token endpoint
	source := p.conf.TokenSource(withHTTPClient(ctx, p.client), &oauth2.Token{RefreshToken: token.RefreshToken})
	tok, err := source.Token()
	if err != nil {
		return nil, translateOAuthError(p.platform, "refresh token", err)
	}
	return grantFromOAuthToken(tok), nil
}
