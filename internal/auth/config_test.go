package auth

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "bleck-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthConfigTestSuite struct {
	suite.Suite
	dir string
}

func (suite *AuthConfigTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	for _, name := range []string{
		"SUPABASE_JWT_SECRET", "TOKEN_SECRET", "SITE_URL",
		"FACEBOOK_APP_ID", "FACEBOOK_APP_SECRET",
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
		"TIKTOK_APP_ID", "TIKTOK_APP_SECRET",
		"KWAI_CLIENT_ID", "KWAI_CLIENT_SECRET",
	} {
		suite.T().Setenv(name, "")
	}
}

func (suite *AuthConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(suite.dir, "auth.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *AuthConfigTestSuite) TestLoadFromYAML() {
	path := suite.writeConfig(`
session_secret: yaml-secret
site_url: https://app.bleck.io/
providers:
  facebook:
    client_id: fb-id
    client_secret: fb-secret
    api_version: v19.0
  kwai:
    client_id: ${KWAI_REF_ID}
    client_secret: kwai-secret
    token_url: https://kwai.example.com/oauth2/token
`)
	suite.T().Setenv("KWAI_REF_ID", "kwai-from-env")

	config, err := LoadAuthConfig(path)
	suite.Require().NoError(err)

	suite.Equal("yaml-secret", config.SessionSecret)
	suite.Equal("https://app.bleck.io", config.SiteURL)
	suite.Equal("sb-access-token", config.SessionCookie)
	suite.Equal("v19.0", config.Providers["facebook"].APIVersion)
	suite.Equal("kwai-from-env", config.Providers["kwai"].ClientID)
	suite.Equal("https://kwai.example.com/oauth2/token", config.Providers["kwai"].TokenURL)
	suite.Equal("https://app.bleck.io/api/auth/facebook/callback", config.CallbackURL("facebook"))
}

func (suite *AuthConfigTestSuite) TestEnvironmentOverrides() {
	path := suite.writeConfig("session_secret: yaml-secret\n")
	suite.T().Setenv("SUPABASE_JWT_SECRET", "env-secret")
	suite.T().Setenv("SITE_URL", "https://env.bleck.io")
	suite.T().Setenv("GOOGLE_CLIENT_ID", "g-id")
	suite.T().Setenv("GOOGLE_CLIENT_SECRET", "g-secret")

	config, err := LoadAuthConfig(path)
	suite.Require().NoError(err)

	suite.Equal("env-secret", config.SessionSecret)
	suite.Equal("https://env.bleck.io", config.SiteURL)

	for _, platform := range []string{"google_adsense", "google_analytics"} {
		provider, err := config.GetProvider(platform)
		suite.Require().NoError(err, platform)
		suite.Equal("g-id", provider.ClientID)
		suite.Equal("g-secret", provider.ClientSecret)
	}
}

func (suite *AuthConfigTestSuite) TestMissingFileUsesEnvironment() {
	suite.T().Setenv("SUPABASE_JWT_SECRET", "env-secret")

	config, err := LoadAuthConfig(filepath.Join(suite.dir, "missing.yaml"))
	suite.Require().NoError(err)
	suite.Equal("http://localhost:3000", config.SiteURL)
}

func (suite *AuthConfigTestSuite) TestMissingSessionSecret() {
	path := suite.writeConfig("site_url: https://app.bleck.io\n")

	_, err := LoadAuthConfig(path)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrSessionSecretMissing)
}

func (suite *AuthConfigTestSuite) TestUnconfiguredPlatformIsConfigurationError() {
	path := suite.writeConfig(`
session_secret: s
providers:
  tiktok:
    client_id: only-id
`)
	config, err := LoadAuthConfig(path)
	suite.Require().NoError(err)

	_, err = config.GetProvider("tiktok")
	suite.True(apperrors.IsConfiguration(err))
	suite.Contains(err.Error(), "tiktok is not configured")

	_, err = config.GetProvider("facebook")
	suite.True(apperrors.IsConfiguration(err))
}

func TestAuthConfigTestSuite(t *testing.T) {
	suite.Run(t, new(AuthConfigTestSuite))
}

func TestValidateConfig_DefaultsCookie(t *testing.T) {
	config := &AuthConfig{SessionSecret: "s", SiteURL: "http://localhost:3000"}
	require.NoError(t, config.ValidateConfig())
	assert.Equal(t, "sb-access-token", config.SessionCookie)

	config.SiteURL = ""
	assert.ErrorIs(t, config.ValidateConfig(), apperrors.ErrSiteURLMissing)
}
