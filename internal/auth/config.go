package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	apperrors "bleck-backend/internal/errors"

	"github.com/spf13/viper"
)

// AuthConfig holds session verification settings and the OAuth clients of every ad platform
type AuthConfig struct {
	SessionSecret string                    `mapstructure:"session_secret" yaml:"session_secret" json:"-"`
	TokenSecret   string                    `mapstructure:"token_secret" yaml:"token_secret" json:"-"`
	SiteURL       string                    `mapstructure:"site_url" yaml:"site_url" json:"site_url"`
	SessionCookie string                    `mapstructure:"session_cookie" yaml:"session_cookie" json:"session_cookie"`
	Providers     map[string]ProviderConfig `mapstructure:"providers" yaml:"providers" json:"providers"`
}

// ProviderConfig holds the OAuth client and API endpoints for one platform.
// Endpoint fields are optional; platform implementations supply production defaults.
type ProviderConfig struct {
	ClientID     string   `mapstructure:"client_id" yaml:"client_id" json:"client_id"`
	ClientSecret string   `mapstructure:"client_secret" yaml:"client_secret" json:"-"`
	AuthURL      string   `mapstructure:"auth_url" yaml:"auth_url,omitempty" json:"auth_url,omitempty"`
	TokenURL     string   `mapstructure:"token_url" yaml:"token_url,omitempty" json:"token_url,omitempty"`
	APIBaseURL   string   `mapstructure:"api_base_url" yaml:"api_base_url,omitempty" json:"api_base_url,omitempty"`
	APIVersion   string   `mapstructure:"api_version" yaml:"api_version,omitempty" json:"api_version,omitempty"`
	ProfileURL   string   `mapstructure:"profile_url" yaml:"profile_url,omitempty" json:"profile_url,omitempty"`
	Scopes       []string `mapstructure:"scopes" yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

// providerEnv maps a platform to the environment variables carrying its client credentials.
// Both Google platforms share one OAuth client.
var providerEnv = map[string][2]string{
	"facebook":         {"FACEBOOK_APP_ID", "FACEBOOK_APP_SECRET"},
	"google_adsense":   {"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET"},
	"google_analytics": {"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET"},
	"tiktok":           {"TIKTOK_APP_ID", "TIKTOK_APP_SECRET"},
	"kwai":             {"KWAI_CLIENT_ID", "KWAI_CLIENT_SECRET"},
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// no file: defaults and environment only
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}
	if config.Providers == nil {
		config.Providers = make(map[string]ProviderConfig)
	}

	if secret := os.Getenv("SUPABASE_JWT_SECRET"); secret != "" {
		config.SessionSecret = secret
	}
	if secret := os.Getenv("TOKEN_SECRET"); secret != "" {
		config.TokenSecret = secret
	}
	if siteURL := os.Getenv("SITE_URL"); siteURL != "" {
		config.SiteURL = siteURL
	}
	config.SiteURL = strings.TrimSuffix(config.SiteURL, "/")

	config = overrideFromEnvironment(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfig validates the settings every request depends on.
// Platform credentials are not required here: a platform without credentials
// fails on its own routes with a configuration error.
func (c *AuthConfig) ValidateConfig() error {
	if c.SessionSecret == "" {
		return apperrors.ErrSessionSecretMissing
	}
	if c.SiteURL == "" {
		return apperrors.ErrSiteURLMissing
	}
	if c.SessionCookie == "" {
		c.SessionCookie = "sb-access-token"
	}
	return nil
}

// GetProvider returns the configuration for a platform, or a ConfigurationError
// when its client credentials are missing.
func (c *AuthConfig) GetProvider(platform string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[platform]
	if !exists || providerConfig.ClientID == "" || providerConfig.ClientSecret == "" {
		return nil, apperrors.NewPlatformNotConfiguredError(platform)
	}
	return &providerConfig, nil
}

// CallbackURL is the OAuth redirect URI registered with a platform
func (c *AuthConfig) CallbackURL(platform string) string {
	return fmt.Sprintf("%s/api/auth/%s/callback", c.SiteURL, platform)
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("site_url", "http://localhost:3000")
	v.SetDefault("session_cookie", "sb-access-token")
}

// overrideFromEnvironment fills client credentials from the environment and expands ${VAR} references
func overrideFromEnvironment(config AuthConfig) AuthConfig {
	for platform, names := range providerEnv {
		provider := config.Providers[platform]
		if id := os.Getenv(names[0]); id != "" {
			provider.ClientID = id
		}
		if secret := os.Getenv(names[1]); secret != "" {
			provider.ClientSecret = secret
		}
		provider.ClientID = expandEnvRef(provider.ClientID)
		provider.ClientSecret = expandEnvRef(provider.ClientSecret)

		if provider.ClientID != "" || provider.ClientSecret != "" || hasEndpointOverride(provider) {
			config.Providers[platform] = provider
		}
	}
	return config
}

func hasEndpointOverride(p ProviderConfig) bool {
	return p.AuthURL != "" || p.TokenURL != "" || p.APIBaseURL != "" || p.APIVersion != "" || p.ProfileURL != "" || len(p.Scopes) > 0
}

func expandEnvRef(value string) string {
	if len(value) > 3 && strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		if envValue := os.Getenv(value[2 : len(value)-1]); envValue != "" {
			return envValue
		}
	}
	return value
}
