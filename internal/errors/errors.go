package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PlatformError is a request rejected by a third-party platform API.
// TokenInvalid is set when the platform reported the access token itself as
// invalid or expired, so callers can send the user through reconnect instead of retrying.
type PlatformError struct {
	Platform     string
	StatusCode   int
	Code         int
	Message      string
	TokenInvalid bool
}

func (e *PlatformError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s API error (status %d, code %d): %s", e.Platform, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Platform, e.StatusCode, e.Message)
}

// RefreshError is returned when a platform refused or failed to mint a new access token.
// The stored credential is left untouched.
type RefreshError struct {
	Platform string
	Cause    error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("failed to refresh %s token: %v", e.Platform, e.Cause)
}

func (e *RefreshError) Unwrap() error {
	return e.Cause
}

// Is makes every refresh failure match ErrReconnectRequired
func (e *RefreshError) Is(target error) bool {
	return target == ErrReconnectRequired
}

// Entity Not Found Errors
var (
	ErrCredentialNotFound = &NotFoundError{Entity: "platform credential"}
)

// Platform Errors
var (
	ErrNotConnected          = errors.New("platform account not connected")
	ErrUpstreamUnavailable   = errors.New("platform API unavailable")
	ErrOperationNotSupported = errors.New("operation not supported for this platform")
	ErrNoRefreshToken        = errors.New("no refresh token stored for credential")
	ErrInvalidJSON           = errors.New("invalid JSON")
)

// Authentication Errors
var (
	ErrAuthenticationInvalidClaims = &AuthenticationError{Message: "invalid authentication claims"}
	ErrReconnectRequired           = &AuthenticationError{Message: "platform session expired, please reconnect your account"}
	ErrInvalidOAuthState           = &AuthenticationError{Message: "invalid or expired OAuth state"}
)

// Configuration Errors
var (
	ErrSessionSecretMissing = &ConfigurationError{Message: "SUPABASE_JWT_SECRET is not configured"}
	ErrTokenSecretMissing   = &ConfigurationError{Message: "TOKEN_SECRET env var is empty"}
	ErrSiteURLMissing       = &ConfigurationError{Message: "SITE_URL is not configured"}
)

// Validation Errors
var (
	ErrUserIDMissing          = &ValidationError{Field: "userId", Message: "userId cannot be empty"}
	ErrPlatformMissing        = &ValidationError{Field: "platform", Message: "platform cannot be empty"}
	ErrUnsupportedPlatform    = &ValidationError{Field: "platform", Message: "unsupported platform"}
	ErrAdAccountIDMissing     = &ValidationError{Field: "ad_account_id", Message: "ad_account_id is required"}
	ErrAdAccountIDInvalid     = &ValidationError{Field: "ad_account_id", Message: "ad_account_id must be numeric, optionally prefixed with act_"}
	ErrCampaignIDMissing      = &ValidationError{Field: "id", Message: "campaign id is required"}
	ErrAuthorizationCodeEmpty = &ValidationError{Field: "code", Message: "authorization code is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// AsPlatformError extracts a PlatformError from the chain
func AsPlatformError(err error) (*PlatformError, bool) {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr, true
	}
	return nil, false
}

// IsTokenInvalid reports whether a platform rejected the access token
func IsTokenInvalid(err error) bool {
	platformErr, ok := AsPlatformError(err)
	return ok && platformErr.TokenInvalid
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewPlatformNotConfiguredError reports missing OAuth client credentials for a platform
func NewPlatformNotConfiguredError(platform string) error {
	return &ConfigurationError{Message: fmt.Sprintf("%s is not configured: client_id and client_secret are required", platform)}
}

// NewUpstreamError wraps a transport-level failure talking to a platform
func NewUpstreamError(platform, operation string, cause error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrUpstreamUnavailable, platform, operation, cause)
}
