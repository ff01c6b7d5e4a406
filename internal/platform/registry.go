package platform

import (
	"net/http"
	"sync"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"
)

// Registry is the single dispatch point from a platform identifier to its Provider
type Registry struct {
	mu        sync.RWMutex
	providers map[Platform]Provider
	configs   map[Platform]auth.ProviderConfig
}

// NewRegistry builds a provider for every platform that has client credentials.
// Platforms without credentials stay unregistered and fail with a ConfigurationError on Get.
func NewRegistry(config *auth.AuthConfig, client *http.Client) *Registry {
	r := &Registry{
		providers: make(map[Platform]Provider),
		configs:   make(map[Platform]auth.ProviderConfig),
	}
	if config == nil {
		return r
	}

	for _, p := range All() {
		cfg, err := config.GetProvider(string(p))
		if err != nil {
			continue
		}
		r.configs[p] = *cfg
		switch p {
		case Facebook:
			r.providers[p] = NewFacebookProvider(*cfg, client)
		case GoogleAdSense, GoogleAnalytics:
			r.providers[p] = NewGoogleProvider(p, *cfg, client)
		case TikTok:
			r.providers[p] = NewTikTokProvider(*cfg, client)
		case Kwai:
			r.providers[p] = NewKwaiProvider(*cfg, client)
		}
	}
	return r
}

// Register adds or replaces a provider
func (r *Registry) Register(provider Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Platform()] = provider
}

// Get returns the provider of a platform
func (r *Registry) Get(p Platform) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[p]
	if !ok {
		return nil, apperrors.NewPlatformNotConfiguredError(string(p))
	}
	return provider, nil
}

// Config returns the configuration a provider was built from
func (r *Registry) Config(p Platform) (auth.ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[p]
	if !ok {
		return auth.ProviderConfig{}, apperrors.NewPlatformNotConfiguredError(string(p))
	}
	return cfg, nil
}

// Configured lists the platforms with a registered provider
func (r *Registry) Configured() []Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Platform
	for _, p := range All() {
		if _, ok := r.providers[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
