package handlers

import (
	"net/http"

	"bleck-backend/internal/client"
	"bleck-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountListResponse wraps the accounts of a platform
type AccountListResponse struct {
	Accounts []client.Account `json:"accounts"`
}

// CampaignListResponse wraps the campaigns of an ad account
type CampaignListResponse struct {
	Campaigns []client.Campaign `json:"campaigns"`
}

// AdsHandler handles HTTP requests for platform accounts and campaigns
type AdsHandler struct {
	adsService service.AdsServiceInterface
}

// NewAdsHandler creates a new ads handler
func NewAdsHandler(adsService service.AdsServiceInterface) *AdsHandler {
	return &AdsHandler{adsService: adsService}
}

// ListAccounts handles GET /platforms/:platform/accounts
// @Summary List platform accounts
// @Description Lists the ad, publisher or analytics accounts visible to the connected user. An expired token is refreshed once before the call.
// @Tags platforms
// @Produce json
// @Param platform path string true "Platform" Enums(facebook, google_adsense, google_analytics, tiktok, kwai)
// @Success 200 {object} AccountListResponse
// @Failure 400 {object} ErrorResponse "Unsupported platform or account not connected"
// @Failure 401 {object} ErrorResponse "Session missing or platform reconnect required"
// @Failure 500 {object} ErrorResponse "Platform not configured or unavailable"
// @Security BearerAuth
// @Router /api/v1/platforms/{platform}/accounts [get]
func (h *AdsHandler) ListAccounts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	accounts, err := h.adsService.ListAccounts(c.Request.Context(), userID, c.Param("platform"))
	if err != nil {
		respondError(c, err)
		return
	}
	if accounts == nil {
		accounts = []client.Account{}
	}
	c.JSON(http.StatusOK, AccountListResponse{Accounts: accounts})
}

// ListCampaigns handles GET /platforms/:platform/campaigns
// @Summary List campaigns
// @Description Lists the campaigns of an ad account. TikTok defaults to the advertiser the credential was issued for.
// @Tags platforms
// @Produce json
// @Param platform path string true "Platform"
// @Param ad_account_id query string false "Ad account id (required except for TikTok)"
// @Success 200 {object} CampaignListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse "Platform has no campaigns"
// @Security BearerAuth
// @Router /api/v1/platforms/{platform}/campaigns [get]
func (h *AdsHandler) ListCampaigns(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req service.ListCampaignsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	campaigns, err := h.adsService.ListCampaigns(c.Request.Context(), userID, c.Param("platform"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if campaigns == nil {
		campaigns = []client.Campaign{}
	}
	c.JSON(http.StatusOK, CampaignListResponse{Campaigns: campaigns})
}

// SetCampaignStatus handles POST /platforms/:platform/campaigns/:id/status
// @Summary Activate or pause a campaign
// @Tags platforms
// @Accept json
// @Produce json
// @Param platform path string true "Platform"
// @Param id path string true "Campaign id"
// @Param request body service.CampaignStatusRequest true "New status"
// @Success 200 {object} client.MutationResult
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/platforms/{platform}/campaigns/{id}/status [post]
func (h *AdsHandler) SetCampaignStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req service.CampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.CampaignID = c.Param("id")

	res, err := h.adsService.SetCampaignStatus(c.Request.Context(), userID, c.Param("platform"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetDailyBudget handles POST /platforms/:platform/campaigns/:id/budget
// @Summary Set a campaign daily budget
// @Description dailyBudget is in minor currency units of the ad account currency.
// @Tags platforms
// @Accept json
// @Produce json
// @Param platform path string true "Platform"
// @Param id path string true "Campaign id"
// @Param request body service.DailyBudgetRequest true "New daily budget"
// @Success 200 {object} client.MutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/platforms/{platform}/campaigns/{id}/budget [post]
func (h *AdsHandler) SetDailyBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req service.DailyBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.CampaignID = c.Param("id")

	res, err := h.adsService.SetDailyBudget(c.Request.Context(), userID, c.Param("platform"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RenameCampaign handles POST /platforms/:platform/campaigns/:id/rename
// @Summary Rename a campaign
// @Tags platforms
// @Accept json
// @Produce json
// @Param platform path string true "Platform"
// @Param id path string true "Campaign id"
// @Param request body service.RenameCampaignRequest true "New name"
// @Success 200 {object} client.MutationResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/platforms/{platform}/campaigns/{id}/rename [post]
func (h *AdsHandler) RenameCampaign(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req service.RenameCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.CampaignID = c.Param("id")

	res, err := h.adsService.RenameCampaign(c.Request.Context(), userID, c.Param("platform"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// SetAccountStatus handles POST /platforms/:platform/accounts/:id/status
// @Summary Change an ad account status
// @Description Not offered by any supported platform API; always answers 501 once the request is valid.
// @Tags platforms
// @Accept json
// @Produce json
// @Param platform path string true "Platform"
// @Param id path string true "Account id"
// @Param request body service.AccountStatusRequest true "New status"
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/platforms/{platform}/accounts/{id}/status [post]
func (h *AdsHandler) SetAccountStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req service.AccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.AccountID = c.Param("id")

	res, err := h.adsService.SetAccountStatus(c.Request.Context(), userID, c.Param("platform"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
