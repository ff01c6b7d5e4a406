package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/logger"
	"bleck-backend/internal/metrics"
	"bleck-backend/internal/platform"

	"github.com/carlmjohnson/requests"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerSettings configures the per-platform circuit breaker
type BreakerSettings struct {
	FailureThreshold uint32
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
}

// DefaultBreakerSettings opens after five consecutive transport failures and lets a trial request through after 30s
var DefaultBreakerSettings = BreakerSettings{
	FailureThreshold: 5,
	MaxRequests:      1,
	Interval:         time.Minute,
	Timeout:          30 * time.Second,
}

// caller sends platform requests through a circuit breaker.
// Only transport failures and 5xx responses count against the breaker;
// a platform rejecting a request is a healthy platform, and neither is a request the caller cancelled.
type caller struct {
	platform platform.Platform
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[*platform.Response]
}

func newCaller(p platform.Platform, httpClient *http.Client, settings BreakerSettings) *caller {
	if httpClient == nil {
		httpClient = platform.DefaultHTTPClient
	}
	if settings.FailureThreshold == 0 {
		settings = DefaultBreakerSettings
	}

	cb := gobreaker.NewCircuitBreaker[*platform.Response](gobreaker.Settings{
		Name:        string(p),
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.New().WithFields(map[string]interface{}{
				"platform": name,
				"from":     from.String(),
				"to":       to.String(),
			}).Warn("Platform circuit breaker changed state")
			metrics.SetBreakerState(name, breakerStateValue(to))
		},
	})
	metrics.SetBreakerState(string(p), 0)

	return &caller{platform: p, http: httpClient, breaker: cb}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// call sends one request. The returned response is never a 5xx.
func (c *caller) call(ctx context.Context, operation string, rb *requests.Builder) (*platform.Response, error) {
	start := time.Now()
	res, err := c.breaker.Execute(func() (*platform.Response, error) {
		res, err := platform.Send(ctx, c.platform, operation, rb.Client(c.http))
		if err != nil {
			// cancelled by the caller, not a platform failure
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%w: %w", ctxErr, err)
			}
			return nil, err
		}
		if res.IsServerError() {
			return nil, apperrors.NewUpstreamError(string(c.platform), operation, fmt.Errorf("status %d", res.StatusCode))
		}
		return res, nil
	})
	elapsed := time.Since(start)

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.OutcomeOpen
			err = apperrors.NewUpstreamError(string(c.platform), operation, err)
		}
		metrics.RecordAPICall(string(c.platform), operation, outcome, elapsed)
		logger.FromContext(ctx).WithFields(map[string]interface{}{
			"platform":  c.platform,
			"operation": operation,
		}).WithError(err).Error("Platform API call failed")
		return nil, err
	}

	outcome := metrics.OutcomeSuccess
	if res.IsClientError() {
		outcome = metrics.OutcomeRejected
	}
	metrics.RecordAPICall(string(c.platform), operation, outcome, elapsed)
	return res, nil
}

// unsupportedCampaigns is embedded by clients of platforms without campaign management
type unsupportedCampaigns struct{}

func (unsupportedCampaigns) Supports(op Operation) bool {
	return op == OpListAccounts
}

func (unsupportedCampaigns) ListCampaigns(context.Context, string, string) ([]Campaign, error) {
	return nil, apperrors.ErrOperationNotSupported
}

func (unsupportedCampaigns) SetCampaignStatus(context.Context, string, CampaignMutation) (*MutationResult, error) {
	return nil, apperrors.ErrOperationNotSupported
}

func (unsupportedCampaigns) RenameCampaign(context.Context, string, CampaignMutation) (*MutationResult, error) {
	return nil, apperrors.ErrOperationNotSupported
}

func (unsupportedCampaigns) SetDailyBudget(context.Context, string, CampaignMutation) (*MutationResult, error) {
	return nil, apperrors.ErrOperationNotSupported
}

func (unsupportedCampaigns) SetAccountStatus(context.Context, string, string, string) (*MutationResult, error) {
	return nil, apperrors.ErrOperationNotSupported
}
