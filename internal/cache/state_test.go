package cache

import (
	"context"
	"testing"
	"time"

	apperrors "bleck-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OAuthStateStoreTestSuite struct {
	suite.Suite
	cache *InMemoryCache
	store *OAuthStateStore
	ctx   context.Context
}

func (s *OAuthStateStoreTestSuite) SetupTest() {
	s.cache = NewInMemoryCache(time.Minute, time.Minute)
	s.store = NewOAuthStateStore(s.cache, 0)
	s.ctx = context.Background()
}

func (s *OAuthStateStoreTestSuite) TestIssueAndConsume() {
	userID := uuid.New()

	state, err := s.store.Issue(s.ctx, userID, "facebook")
	s.Require().NoError(err)
	s.NotEmpty(state)

	entry, err := s.store.Consume(s.ctx, state, "facebook")
	s.Require().NoError(err)
	s.Equal(userID, entry.UserID)
	s.Equal("facebook", entry.Platform)
}

func (s *OAuthStateStoreTestSuite) TestConsumeIsSingleUse() {
	state, err := s.store.Issue(s.ctx, uuid.New(), "tiktok")
	s.Require().NoError(err)

	_, err = s.store.Consume(s.ctx, state, "tiktok")
	s.Require().NoError(err)

	_, err = s.store.Consume(s.ctx, state, "tiktok")
	s.ErrorIs(err, apperrors.ErrInvalidOAuthState)
}

func (s *OAuthStateStoreTestSuite) TestConsumeRejectsOtherPlatform() {
	state, err := s.store.Issue(s.ctx, uuid.New(), "google_adsense")
	s.Require().NoError(err)

	_, err = s.store.Consume(s.ctx, state, "google_analytics")
	s.ErrorIs(err, apperrors.ErrInvalidOAuthState)
}

func (s *OAuthStateStoreTestSuite) TestConsumeUnknownState() {
	_, err := s.store.Consume(s.ctx, "", "kwai")
	s.ErrorIs(err, apperrors.ErrInvalidOAuthState)

	_, err = s.store.Consume(s.ctx, "never-issued", "kwai")
	s.ErrorIs(err, apperrors.ErrInvalidOAuthState)
}

func (s *OAuthStateStoreTestSuite) TestCorruptedEntry() {
	s.Require().NoError(s.cache.Set(s.ctx, OAuthStateKey("bad"), []byte("{not json"), time.Minute))

	_, err := s.store.Consume(s.ctx, "bad", "kwai")
	s.ErrorIs(err, apperrors.ErrInvalidOAuthState)
}

func (s *OAuthStateStoreTestSuite) TestStateExpires() {
	store := NewOAuthStateStore(s.cache, 50*time.Millisecond)
	state, err := store.Issue(s.ctx, uuid.New(), "facebook")
	s.Require().NoError(err)

	time.Sleep(100 * time.Millisecond)

	_, err = store.Consume(s.ctx, state, "facebook")
	s.ErrorIs(err, apperrors.ErrInvalidOAuthState)
}

func TestOAuthStateStoreTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthStateStoreTestSuite))
}

func TestCacheWrapper_SetJSONDefaultTTL(t *testing.T) {
	c := NewInMemoryCache(time.Minute, time.Minute)
	w := NewCacheWrapper(c, time.Minute)
	ctx := context.Background()

	require.NoError(t, w.SetJSON(ctx, "k", map[string]int{"n": 1}, 0))
	var out map[string]int
	require.NoError(t, w.GetJSON(ctx, "k", &out))
	assert.Equal(t, 1, out["n"])
	assert.True(t, w.Exists(ctx, "k"))

	require.NoError(t, w.Delete(ctx, "k"))
	assert.ErrorIs(t, w.GetJSON(ctx, "k", &out), ErrKeyNotFound)
}
