package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/logger"
	"bleck-backend/internal/platform"
	"bleck-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConnectReturnPath is where the browser lands after the OAuth callback, relative to SITE_URL
const ConnectReturnPath = "/dashboard/connections"

// ConnectionListResponse wraps the linked accounts of the session user
type ConnectionListResponse struct {
	Connections []service.Connection `json:"connections"`
}

// ConnectionHandler handles account linking: OAuth start and callback, listing and disconnecting
type ConnectionHandler struct {
	tokenService service.TokenServiceInterface
	siteURL      string
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(tokenService service.TokenServiceInterface, siteURL string) *ConnectionHandler {
	return &ConnectionHandler{
		tokenService: tokenService,
		siteURL:      strings.TrimSuffix(siteURL, "/"),
	}
}

// Start handles GET /api/auth/:platform/start
// @Summary Start linking a platform account
// @Description Redirects to the platform consent screen. The OAuth state is bound to the session user for ten minutes.
// @Tags auth
// @Param platform path string true "Platform"
// @Success 302 "Redirect to the platform"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Platform not configured"
// @Security BearerAuth
// @Router /api/auth/{platform}/start [get]
func (h *ConnectionHandler) Start(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	p, err := platform.Parse(c.Param("platform"))
	if err != nil {
		respondError(c, err)
		return
	}

	authURL, err := h.tokenService.AuthorizeURL(c.Request.Context(), userID, p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /api/auth/:platform/callback
// @Summary OAuth callback
// @Description Exchanges the authorization code, stores the credential and redirects back to the site.
// @Description Failures redirect too, with a connect_error query parameter.
// @Tags auth
// @Param platform path string true "Platform"
// @Param code query string false "Authorization code"
// @Param state query string true "OAuth state"
// @Param error query string false "Error reported by the platform"
// @Success 302 "Redirect to the site"
// @Router /api/auth/{platform}/callback [get]
func (h *ConnectionHandler) Callback(c *gin.Context) {
	log := logger.FromGinContext(c)
	rawPlatform := c.Param("platform")

	p, err := platform.Parse(rawPlatform)
	if err != nil {
		h.redirectBack(c, rawPlatform, "unsupported_platform")
		return
	}

	if denied := c.Query("error"); denied != "" {
		log.WithField("platform", p).WithField("reason", denied).Info("Platform consent not granted")
		h.redirectBack(c, string(p), "access_denied")
		return
	}

	conn, err := h.tokenService.Connect(c.Request.Context(), p, c.Query("state"), c.Query("code"))
	if err != nil {
		log.WithField("platform", p).WithField("code_present", c.Query("code") != "").
			WithError(err).Warn("Platform connect failed")
		h.redirectBack(c, string(p), connectErrorCode(err))
		return
	}

	q := url.Values{"connected": {string(p)}, "account_id": {conn.AccountID}}
	c.Redirect(http.StatusFound, h.siteURL+ConnectReturnPath+"?"+q.Encode())
}

// List handles GET /api/v1/connections
// @Summary List linked platform accounts
// @Description Never returns tokens.
// @Tags connections
// @Produce json
// @Success 200 {object} ConnectionListResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/connections [get]
func (h *ConnectionHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	conns, err := h.tokenService.Connections(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if conns == nil {
		conns = []service.Connection{}
	}
	c.JSON(http.StatusOK, ConnectionListResponse{Connections: conns})
}

// Disconnect handles DELETE /api/v1/connections/:platform
// @Summary Disconnect a platform account
// @Description Without account_id every account of the platform is removed.
// @Tags connections
// @Param platform path string true "Platform"
// @Param account_id query string false "Account id"
// @Success 204 "Disconnected"
// @Failure 400 {object} ErrorResponse "Not connected"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/connections/{platform} [delete]
func (h *ConnectionHandler) Disconnect(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	p, err := platform.Parse(c.Param("platform"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.tokenService.Disconnect(c.Request.Context(), userID, p, strings.TrimSpace(c.Query("account_id"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ConnectionHandler) redirectBack(c *gin.Context, p, code string) {
	q := url.Values{"connect_error": {code}}
	if p != "" {
		q.Set("platform", p)
	}
	c.Redirect(http.StatusFound, h.siteURL+ConnectReturnPath+"?"+q.Encode())
}

func connectErrorCode(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidOAuthState):
		return "invalid_state"
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		return "platform_unavailable"
	case apperrors.IsConfiguration(err):
		return "not_configured"
	case apperrors.IsValidation(err):
		return "invalid_request"
	default:
		return "connect_failed"
	}
}
