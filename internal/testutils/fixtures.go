package testutils

import (
	_ "embed"
	"fmt"
	"time"

	"bleck-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/credentials.yaml
var credentialFixtures []byte

type credentialFixture struct {
	Name         string                 `yaml:"name"`
	Platform     string                 `yaml:"platform"`
	AccountID    string                 `yaml:"account_id"`
	AccessToken  string                 `yaml:"access_token"`
	RefreshToken string                 `yaml:"refresh_token"`
	ExpiresIn    string                 `yaml:"expires_in"`
	Scope        []string               `yaml:"scope"`
	Meta         map[string]interface{} `yaml:"meta"`
}

// FactorySet builds plaintext PlatformToken values for tests
type FactorySet struct {
	fixtures map[string]credentialFixture
	now      func() time.Time
}

// NewFactorySet loads the embedded credential fixtures
func NewFactorySet() *FactorySet {
	var doc struct {
		Credentials []credentialFixture `yaml:"credentials"`
	}
	if err := yaml.Unmarshal(credentialFixtures, &doc); err != nil {
		panic(fmt.Sprintf("testutils: invalid credential fixtures: %v", err))
	}
	fs := &FactorySet{fixtures: make(map[string]credentialFixture, len(doc.Credentials)), now: time.Now}
	for _, f := range doc.Credentials {
		fs.fixtures[f.Name] = f
	}
	return fs
}

// WithClock fixes the time expiry offsets are computed from
func (fs *FactorySet) WithClock(now func() time.Time) *FactorySet {
	fs.now = now
	return fs
}

// Credential returns the named fixture owned by userID
func (fs *FactorySet) Credential(name string, userID uuid.UUID) *models.PlatformToken {
	f, ok := fs.fixtures[name]
	if !ok {
		panic(fmt.Sprintf("testutils: unknown credential fixture %q", name))
	}

	token := &models.PlatformToken{
		UserID:       userID,
		Platform:     f.Platform,
		AccountID:    f.AccountID,
		AccessToken:  f.AccessToken,
		RefreshToken: f.RefreshToken,
		Scope:        pq.StringArray(f.Scope),
		Meta:         f.Meta,
	}
	if f.ExpiresIn != "" {
		d, err := time.ParseDuration(f.ExpiresIn)
		if err != nil {
			panic(fmt.Sprintf("testutils: fixture %q: %v", name, err))
		}
		expiresAt := fs.now().Add(d).UTC().Truncate(time.Microsecond)
		token.ExpiresAt = &expiresAt
	}
	return token
}
