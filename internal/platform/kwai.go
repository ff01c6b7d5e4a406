package platform

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"

	"golang.org/x/oauth2"
)

const (
	kwaiAuthURL       = "https://open.kwai.com/oauth2/authorize"
	kwaiTokenURL      = "https://open.kwai.com/oauth2/access_token"
	kwaiRefreshWindow = 10 * time.Minute
)

// KwaiProvider implements Kwai OAuth. The account is the open_id returned with the token.
type KwaiProvider struct {
	*standardProvider
}

// NewKwaiProvider creates the provider from its configuration
func NewKwaiProvider(cfg auth.ProviderConfig, client *http.Client) *KwaiProvider {
	if client == nil {
		client = DefaultHTTPClient
	}
	endpoint := oauth2.Endpoint{AuthURL: kwaiAuthURL, TokenURL: kwaiTokenURL, AuthStyle: oauth2.AuthStyleInParams}
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{"user_info", "ad_query"}
	}

	return &KwaiProvider{standardProvider: &standardProvider{
		platform: Kwai,
		conf: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		window: kwaiRefreshWindow,
		client: client,
	}}
}

// Exchange trades the code for tokens
func (p *KwaiProvider) Exchange(ctx context.Context, code, redirectURL string) (*Grant, error) {
	tok, err := p.exchange(ctx, code, redirectURL)
	if err != nil {
		return nil, err
	}
	grant := grantFromOAuthToken(tok)
	if len(grant.Scope) == 0 {
		grant.Scope = p.conf.Scopes
	}

	openID := extraString(tok.Extra("open_id"))
	if openID == "" {
		return nil, apperrors.NewUpstreamError(string(Kwai), "exchange code", fmt.Errorf("token response has no open_id"))
	}
	grant.AccountID = openID
	return grant, nil
}

// extraString formats a token response field. JSON numbers arrive as float64 and must keep every digit.
func extraString(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
