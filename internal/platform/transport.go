package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "bleck-backend/internal/errors"

	"github.com/carlmjohnson/requests"
	"golang.org/x/oauth2"
)

// DefaultHTTPClient is used for platform calls when no client is injected
var DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Response is a raw platform response. Status validation is left to the caller
// because every platform reports errors differently.
type Response struct {
	StatusCode int
	Body       []byte
}

// IsServerError reports a 5xx status
func (r *Response) IsServerError() bool {
	return r.StatusCode >= http.StatusInternalServerError
}

// IsClientError reports a 4xx status
func (r *Response) IsClientError() bool {
	return r.StatusCode >= http.StatusBadRequest && r.StatusCode < http.StatusInternalServerError
}

// Decode unmarshals the body into v
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidJSON, err)
	}
	return nil
}

// Send issues exactly one request and returns the response whatever its status.
// Only transport failures are returned as errors, wrapped as ErrUpstreamUnavailable.
func Send(ctx context.Context, p Platform, operation string, rb *requests.Builder) (*Response, error) {
	res := &Response{}
	err := rb.
		AddValidator(nil).
		Handle(func(r *http.Response) error {
			res.StatusCode = r.StatusCode
			body, err := io.ReadAll(r.Body)
			res.Body = body
			return err
		}).
		Fetch(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamError(string(p), operation, err)
	}
	return res, nil
}

// withHTTPClient makes oauth2 use the injected client
func withHTTPClient(ctx context.Context, client *http.Client) context.Context {
	if client == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}

// translateOAuthError maps token endpoint failures. Rejections (4xx) become a PlatformError
// flagged TokenInvalid for invalid_grant; everything else is an upstream failure.
func translateOAuthError(p Platform, operation string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		status := retrieveErr.Response.StatusCode
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			msg := retrieveErr.ErrorDescription
			if msg == "" {
				msg = retrieveErr.ErrorCode
			}
			if msg == "" {
				msg = string(retrieveErr.Body)
			}
			return &apperrors.PlatformError{
				Platform:     string(p),
				StatusCode:   status,
				Message:      msg,
				TokenInvalid: retrieveErr.ErrorCode == "invalid_grant",
			}
		}
	}
	return apperrors.NewUpstreamError(string(p), operation, err)
}

func grantFromOAuthToken(tok *oauth2.Token) *Grant {
	g := &Grant{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry.UTC()
		g.ExpiresAt = &expiry
	}
	if scope, ok := tok.Extra("scope").(string); ok && scope != "" {
		g.Scope = splitScope(scope)
	}
	return g
}

func splitScope(scope string) []string {
	return strings.FieldsFunc(scope, func(r rune) bool { return r == ' ' || r == ',' })
}
