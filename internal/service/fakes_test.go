package service

import (
	"context"
	"net/url"
	"sync"
	"time"

	"bleck-backend/internal/client"
	"bleck-backend/internal/database/models"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/platform"

	"github.com/google/uuid"
)

// callLog records the order of collaborator calls across fakes
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type fakeStore struct {
	log       *callLog
	rows      map[string]models.PlatformToken
	upsertErr error
}

func newFakeStore(log *callLog) *fakeStore {
	return &fakeStore{log: log, rows: make(map[string]models.PlatformToken)}
}

func rowKey(userID uuid.UUID, platform, accountID string) string {
	return userID.String() + "|" + platform + "|" + accountID
}

func (s *fakeStore) put(t models.PlatformToken) {
	s.rows[rowKey(t.UserID, t.Platform, t.AccountID)] = t
}

func (s *fakeStore) Upsert(_ context.Context, token *models.PlatformToken) error {
	s.log.add("upsert")
	if s.upsertErr != nil {
		return s.upsertErr
	}
	row := *token
	row.UpdatedAt = time.Now()
	s.put(row)
	return nil
}

func (s *fakeStore) GetLatest(_ context.Context, userID uuid.UUID, platform string) (*models.PlatformToken, error) {
	s.log.add("get_latest")
	for _, row := range s.rows {
		if row.UserID == userID && row.Platform == platform {
			r := row
			return &r, nil
		}
	}
	return nil, apperrors.ErrCredentialNotFound
}

func (s *fakeStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.PlatformToken, error) {
	s.log.add("list")
	var out []models.PlatformToken
	for _, row := range s.rows {
		if row.UserID == userID {
			row.AccessToken = ""
			row.RefreshToken = ""
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *fakeStore) Delete(_ context.Context, userID uuid.UUID, platform, accountID string) error {
	s.log.add("delete")
	deleted := false
	for key, row := range s.rows {
		if row.UserID == userID && row.Platform == platform && (accountID == "" || row.AccountID == accountID) {
			delete(s.rows, key)
			deleted = true
		}
	}
	if !deleted {
		return apperrors.ErrCredentialNotFound
	}
	return nil
}

type fakeProvider struct {
	log           *callLog
	platform      platform.Platform
	window        time.Duration
	refreshGrant  *platform.Grant
	refreshErr    error
	exchangeGrant *platform.Grant
	exchangeErr   error
	refreshedWith *models.PlatformToken
}

func (p *fakeProvider) Platform() platform.Platform { return p.platform }
func (p *fakeProvider) RefreshWindow() time.Duration { return p.window }

func (p *fakeProvider) SupportsRefresh(token *models.PlatformToken) bool {
	return token.HasRefreshToken()
}

func (p *fakeProvider) AuthCodeURL(state, redirectURL string) string {
	q := url.Values{"state": {state}, "redirect_uri": {redirectURL}}
	return "https://consent.example.com/" + string(p.platform) + "?" + q.Encode()
}

func (p *fakeProvider) Exchange(_ context.Context, code, _ string) (*platform.Grant, error) {
	p.log.add("exchange")
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	return p.exchangeGrant, nil
}

func (p *fakeProvider) Refresh(_ context.Context, token *models.PlatformToken) (*platform.Grant, error) {
	p.log.add("refresh")
	p.refreshedWith = token
	if p.refreshErr != nil {
		return nil, p.refreshErr
	}
	return p.refreshGrant, nil
}

type fakeProviders map[platform.Platform]platform.Provider

func (f fakeProviders) Get(p platform.Platform) (platform.Provider, error) {
	provider, ok := f[p]
	if !ok {
		return nil, apperrors.NewPlatformNotConfiguredError(string(p))
	}
	return provider, nil
}

type fakeClient struct {
	log        *callLog
	platform   platform.Platform
	accounts   []client.Account
	err        error
	lastToken  string
	lastChange client.CampaignMutation
	listOnly   bool
}

func (c *fakeClient) Platform() platform.Platform { return c.platform }

func (c *fakeClient) Supports(op client.Operation) bool {
	if c.listOnly {
		return op == client.OpListAccounts
	}
	return op != client.OpSetAccountStatus
}

func (c *fakeClient) ListAccounts(_ context.Context, accessToken string) ([]client.Account, error) {
	c.log.add("list_accounts")
	c.lastToken = accessToken
	if c.err != nil {
		return nil, c.err
	}
	return c.accounts, nil
}

func (c *fakeClient) ListCampaigns(_ context.Context, accessToken, adAccountID string) ([]client.Campaign, error) {
	c.log.add("list_campaigns")
	c.lastToken = accessToken
	c.lastChange = client.CampaignMutation{AdAccountID: adAccountID}
	if c.err != nil {
		return nil, c.err
	}
	return []client.Campaign{{ID: "c1", AccountID: adAccountID, Name: "Launch", Status: client.StatusActive}}, nil
}

func (c *fakeClient) mutate(call, accessToken string, m client.CampaignMutation) (*client.MutationResult, error) {
	c.log.add(call)
	c.lastToken = accessToken
	c.lastChange = m
	if c.err != nil {
		return nil, c.err
	}
	return &client.MutationResult{ID: m.CampaignID, Success: true, Status: m.Status, Name: m.Name}, nil
}

func (c *fakeClient) SetCampaignStatus(_ context.Context, accessToken string, m client.CampaignMutation) (*client.MutationResult, error) {
	return c.mutate("set_campaign_status", accessToken, m)
}

func (c *fakeClient) RenameCampaign(_ context.Context, accessToken string, m client.CampaignMutation) (*client.MutationResult, error) {
	return c.mutate("rename_campaign", accessToken, m)
}

func (c *fakeClient) SetDailyBudget(_ context.Context, accessToken string, m client.CampaignMutation) (*client.MutationResult, error) {
	return c.mutate("set_daily_budget", accessToken, m)
}

func (c *fakeClient) SetAccountStatus(context.Context, string, string, string) (*client.MutationResult, error) {
	c.log.add("set_account_status")
	return nil, apperrors.ErrOperationNotSupported
}

type fakeClients map[platform.Platform]client.AdsClient

func (f fakeClients) Get(p platform.Platform) (client.AdsClient, error) {
	c, ok := f[p]
	if !ok {
		return nil, apperrors.NewPlatformNotConfiguredError(string(p))
	}
	return c, nil
}
