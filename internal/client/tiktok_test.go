package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessAPI struct {
	server   *httptest.Server
	lastBody map[string]interface{}
	lastPath string
	code     int
}

func newFakeBusinessAPI(t *testing.T) *fakeBusinessAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	f := &fakeBusinessAPI{}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		f.lastPath = c.Request.URL.Path
		if c.GetHeader("Access-Token") != "tt-token" || f.code != 0 {
			code := f.code
			if code == 0 {
				code = 40104
			}
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"code": code, "message": "Access token is invalid", "request_id": "r1"})
			return
		}
		c.Next()
	})
	r.GET("/oauth2/advertiser/get/", func(c *gin.Context) {
		if c.Query("app_id") != "tt-app" || c.Query("secret") != "tt-secret" {
			c.JSON(http.StatusOK, gin.H{"code": 40001, "message": "bad app"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "OK", "data": gin.H{"list": []gin.H{
			{"advertiser_id": "7001", "advertiser_name": "Bleck TikTok"},
		}}})
	})
	r.GET("/campaign/get/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "OK", "data": gin.H{"list": []gin.H{
			{"campaign_id": "cmp1", "advertiser_id": c.Query("advertiser_id"), "campaign_name": "Launch", "operation_status": "ENABLE", "objective_type": "TRAFFIC", "budget_mode": "BUDGET_MODE_DAY", "budget": 50.25},
			{"campaign_id": "cmp2", "advertiser_id": c.Query("advertiser_id"), "campaign_name": "Evergreen", "operation_status": "DISABLE", "budget_mode": "BUDGET_MODE_INFINITE"},
		}}})
	})
	update := func(c *gin.Context) {
		f.lastBody = map[string]interface{}{}
		_ = c.ShouldBindJSON(&f.lastBody)
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "OK", "data": gin.H{}})
	}
	r.POST("/campaign/status/update/", update)
	r.POST("/campaign/update/", update)

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeBusinessAPI) client() *TikTokClient {
	return NewTikTokClient(auth.ProviderConfig{
		ClientID:     "tt-app",
		ClientSecret: "tt-secret",
		APIBaseURL:   f.server.URL,
	}, f.server.Client(), DefaultBreakerSettings)
}

func TestTikTokClient_ListAccounts(t *testing.T) {
	f := newFakeBusinessAPI(t)

	accounts, err := f.client().ListAccounts(context.Background(), "tt-token")
	require.NoError(t, err)
	assert.Equal(t, []Account{{ID: "7001", Name: "Bleck TikTok"}}, accounts)
}

func TestTikTokClient_ListCampaignsMapsStatusAndBudget(t *testing.T) {
	f := newFakeBusinessAPI(t)

	campaigns, err := f.client().ListCampaigns(context.Background(), "tt-token", "7001")
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.Equal(t, StatusActive, campaigns[0].Status)
	assert.Equal(t, "7001", campaigns[0].AccountID)
	require.NotNil(t, campaigns[0].DailyBudget)
	assert.Equal(t, int64(5025), *campaigns[0].DailyBudget)

	assert.Equal(t, StatusPaused, campaigns[1].Status)
	assert.Nil(t, campaigns[1].DailyBudget)
}

func TestTikTokClient_SetCampaignStatus(t *testing.T) {
	f := newFakeBusinessAPI(t)

	res, err := f.client().SetCampaignStatus(context.Background(), "tt-token", CampaignMutation{
		AdAccountID: "7001",
		CampaignID:  "cmp1",
		Status:      StatusPaused,
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "/campaign/status/update/", f.lastPath)
	assert.Equal(t, "DISABLE", f.lastBody["operation_status"])
	assert.Equal(t, []interface{}{"cmp1"}, f.lastBody["campaign_ids"])
}

func TestTikTokClient_SetDailyBudgetUsesMajorUnits(t *testing.T) {
	f := newFakeBusinessAPI(t)

	res, err := f.client().SetDailyBudget(context.Background(), "tt-token", CampaignMutation{
		AdAccountID: "7001",
		CampaignID:  "cmp1",
		DailyBudget: 12050,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12050), *res.DailyBudget)
	assert.Equal(t, "/campaign/update/", f.lastPath)
	assert.Equal(t, 120.5, f.lastBody["budget"])
}

func TestTikTokClient_MutationRequiresAdvertiser(t *testing.T) {
	f := newFakeBusinessAPI(t)

	_, err := f.client().RenameCampaign(context.Background(), "tt-token", CampaignMutation{CampaignID: "cmp1", Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrAdAccountIDMissing)
	assert.Empty(t, f.lastPath)
}

func TestTikTokClient_InvalidToken(t *testing.T) {
	f := newFakeBusinessAPI(t)

	_, err := f.client().ListAccounts(context.Background(), "revoked")
	require.Error(t, err)
	assert.True(t, apperrors.IsTokenInvalid(err))

	f.code = 40002
	_, err = f.client().ListAccounts(context.Background(), "tt-token")
	require.Error(t, err)
	platformErr, ok := apperrors.AsPlatformError(err)
	require.True(t, ok)
	assert.Equal(t, 40002, platformErr.Code)
	assert.False(t, platformErr.TokenInvalid)
}

func TestTikTokStatusMapping(t *testing.T) {
	assert.Equal(t, "ENABLE", toTikTokStatus(StatusActive))
	assert.Equal(t, "DISABLE", toTikTokStatus(StatusPaused))
	assert.Equal(t, StatusActive, fromTikTokStatus("ENABLE"))
	assert.Equal(t, "DELETE", fromTikTokStatus("DELETE"))
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
}
