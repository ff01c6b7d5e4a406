package client

import (
	"net/http"

	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/platform"
)

// Registry maps a platform to its ads client
type Registry struct {
	clients map[platform.Platform]AdsClient
}

// NewRegistry builds a client for every platform configured in the provider registry.
// Each client gets its own circuit breaker.
func NewRegistry(providers *platform.Registry, httpClient *http.Client, settings BreakerSettings) *Registry {
	r := &Registry{clients: make(map[platform.Platform]AdsClient)}
	if providers == nil {
		return r
	}

	for _, p := range providers.Configured() {
		cfg, err := providers.Config(p)
		if err != nil {
			continue
		}
		switch p {
		case platform.Facebook:
			r.clients[p] = NewGraphClient(cfg, httpClient, settings)
		case platform.GoogleAdSense, platform.GoogleAnalytics:
			r.clients[p] = NewGoogleClient(p, cfg, httpClient, settings)
		case platform.TikTok:
			r.clients[p] = NewTikTokClient(cfg, httpClient, settings)
		case platform.Kwai:
			r.clients[p] = NewKwaiClient(cfg, httpClient, settings)
		}
	}
	return r
}

// Get returns the client of a platform
func (r *Registry) Get(p platform.Platform) (AdsClient, error) {
	c, ok := r.clients[p]
	if !ok {
		return nil, apperrors.NewPlatformNotConfiguredError(string(p))
	}
	return c, nil
}
