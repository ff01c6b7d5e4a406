package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"bleck-backend/internal/auth"
	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGraph struct {
	server        *httptest.Server
	codeExchanges atomic.Int32
	longLived     atomic.Int32
	rejectToken   bool
}

func newFakeGraph(t *testing.T) *fakeGraph {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fg := &fakeGraph{}

	r := gin.New()
	r.Any("/v19.0/oauth/access_token", func(c *gin.Context) {
		switch c.Request.FormValue("grant_type") {
		case "fb_exchange_token":
			fg.longLived.Add(1)
			if fg.rejectToken {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
					"message": "Error validating access token: Session has expired",
					"type":    "OAuthException",
					"code":    190,
				}})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"access_token": "long-lived-" + c.Request.FormValue("fb_exchange_token"),
				"token_type":   "bearer",
				"expires_in":   5183944,
			})
		default:
			fg.codeExchanges.Add(1)
			if c.Request.FormValue("code") != "good-code" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_grant", "error_description": "code was already used"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"access_token": "short", "token_type": "bearer", "expires_in": 3600})
		}
	})
	r.GET("/v19.0/me", func(c *gin.Context) {
		if c.Query("access_token") != "long-lived-short" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid OAuth access token.", "code": 190}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": "10158000000000001", "name": "Ana Marketer"})
	})

	fg.server = httptest.NewServer(r)
	t.Cleanup(fg.server.Close)
	return fg
}

func (fg *fakeGraph) provider() *FacebookProvider {
	p := NewFacebookProvider(auth.ProviderConfig{
		ClientID:     "fb-app",
		ClientSecret: "fb-secret",
		APIBaseURL:   fg.server.URL,
	}, fg.server.Client())
	p.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return p
}

func TestFacebookProvider_AuthCodeURL(t *testing.T) {
	p := NewFacebookProvider(auth.ProviderConfig{ClientID: "fb-app", ClientSecret: "s"}, nil)

	raw := p.AuthCodeURL("state-1", "https://app.bleck.io/api/auth/facebook/callback")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "www.facebook.com", u.Host)
	assert.Equal(t, "/v19.0/dialog/oauth", u.Path)
	assert.Equal(t, "fb-app", u.Query().Get("client_id"))
	assert.Equal(t, "state-1", u.Query().Get("state"))
	assert.Equal(t, "https://app.bleck.io/api/auth/facebook/callback", u.Query().Get("redirect_uri"))
	assert.Equal(t, "ads_management ads_read business_management", u.Query().Get("scope"))
}

func TestFacebookProvider_Exchange(t *testing.T) {
	fg := newFakeGraph(t)
	p := fg.provider()

	grant, err := p.Exchange(context.Background(), "good-code", "https://app.bleck.io/cb")
	require.NoError(t, err)

	assert.Equal(t, "long-lived-short", grant.AccessToken)
	assert.Equal(t, "10158000000000001", grant.AccountID)
	assert.Equal(t, "Ana Marketer", grant.Meta["name"])
	require.NotNil(t, grant.ExpiresAt)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(5183944*time.Second), *grant.ExpiresAt)
	assert.Equal(t, int32(1), fg.codeExchanges.Load())
	assert.Equal(t, int32(1), fg.longLived.Load())
}

func TestFacebookProvider_ExchangeRejectedCode(t *testing.T) {
	fg := newFakeGraph(t)

	_, err := fg.provider().Exchange(context.Background(), "reused", "https://app.bleck.io/cb")
	require.Error(t, err)

	platformErr, ok := apperrors.AsPlatformError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, platformErr.StatusCode)
	assert.True(t, platformErr.TokenInvalid)
	assert.Equal(t, int32(0), fg.longLived.Load())
}

func TestFacebookProvider_Refresh(t *testing.T) {
	fg := newFakeGraph(t)

	grant, err := fg.provider().Refresh(context.Background(), &models.PlatformToken{AccessToken: "current"})
	require.NoError(t, err)
	assert.Equal(t, "long-lived-current", grant.AccessToken)
	assert.Equal(t, int32(1), fg.longLived.Load())
}

func TestFacebookProvider_RefreshRejected(t *testing.T) {
	fg := newFakeGraph(t)
	fg.rejectToken = true

	_, err := fg.provider().Refresh(context.Background(), &models.PlatformToken{AccessToken: "revoked"})
	require.Error(t, err)
	assert.True(t, apperrors.IsTokenInvalid(err))
}

func TestFacebookProvider_RefreshWithoutToken(t *testing.T) {
	p := NewFacebookProvider(auth.ProviderConfig{ClientID: "a", ClientSecret: "b"}, nil)

	_, err := p.Refresh(context.Background(), &models.PlatformToken{})
	assert.ErrorIs(t, err, apperrors.ErrNoRefreshToken)
	assert.Equal(t, 7*24*time.Hour, p.RefreshWindow())
}

func TestGraphError(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantNil      bool
		wantUpstream bool
		tokenInvalid bool
		code         int
	}{
		{name: "success", status: 200, body: `{"data":[]}`, wantNil: true},
		{name: "invalid token 190", status: 400, body: `{"error":{"message":"Invalid OAuth access token.","code":190}}`, tokenInvalid: true, code: 190},
		{name: "session invalidated 104", status: 401, body: `{"error":{"message":"An access token is required","code":104}}`, tokenInvalid: true, code: 104},
		{name: "invalid parameter", status: 400, body: `{"error":{"message":"Invalid parameter","code":100}}`, code: 100},
		{name: "non JSON 4xx", status: 403, body: `forbidden`},
		{name: "server error", status: 503, body: `oops`, wantUpstream: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GraphError(&Response{StatusCode: tt.status, Body: []byte(tt.body)})
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantUpstream {
				assert.True(t, errors.Is(err, apperrors.ErrUpstreamUnavailable))
				return
			}
			platformErr, ok := apperrors.AsPlatformError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, platformErr.StatusCode)
			assert.Equal(t, tt.code, platformErr.Code)
			assert.Equal(t, tt.tokenInvalid, platformErr.TokenInvalid)
		})
	}
}
