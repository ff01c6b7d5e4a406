package auth

import (
	"net/http"
	"strings"

	"bleck-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionClaimsKey = "session_claims"

// PublicPath is an allow-list entry. Prefix entries match any path below them.
type PublicPath struct {
	Path   string
	Prefix bool
	// Suffix narrows a prefix match, e.g. "/callback" under "/api/auth/".
	Suffix string
}

// DefaultPublicPaths are reachable without a session
var DefaultPublicPaths = []PublicPath{
	{Path: "/health", Prefix: true},
	{Path: "/metrics"},
	{Path: "/swagger/", Prefix: true},
	{Path: "/api/auth/", Prefix: true, Suffix: "/callback"},
}

// SessionGuard authenticates every request once, except the allow-listed public paths
type SessionGuard struct {
	verifier    *SessionVerifier
	cookieName  string
	publicPaths []PublicPath
}

// NewSessionGuard creates the guard. A nil publicPaths uses DefaultPublicPaths.
func NewSessionGuard(verifier *SessionVerifier, cookieName string, publicPaths []PublicPath) *SessionGuard {
	if publicPaths == nil {
		publicPaths = DefaultPublicPaths
	}
	if cookieName == "" {
		cookieName = "sb-access-token"
	}
	return &SessionGuard{verifier: verifier, cookieName: cookieName, publicPaths: publicPaths}
}

// IsPublic reports whether a path is on the allow-list
func (g *SessionGuard) IsPublic(path string) bool {
	for _, p := range g.publicPaths {
		if !p.Prefix {
			if path == p.Path {
				return true
			}
			continue
		}
		if path == strings.TrimSuffix(p.Path, "/") || strings.HasPrefix(path, p.Path) {
			if p.Suffix == "" || strings.HasSuffix(path, p.Suffix) {
				return true
			}
		}
	}
	return false
}

// Middleware returns the gin handler installed on the engine
func (g *SessionGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || g.IsPublic(c.Request.URL.Path) {
			c.Next()
			return
		}

		log := logger.FromGinContext(c)

		token := g.extractToken(c)
		if token == "" {
			log.Debug("Request without session token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := g.verifier.Verify(token)
		if err != nil {
			log.WithError(err).Warn("Session token rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		SetSessionClaims(c, claims)
		c.Next()
	}
}

func (g *SessionGuard) extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(g.cookieName); err == nil {
		return cookie
	}
	return ""
}

// SetSessionClaims places verified claims on the gin context
func SetSessionClaims(c *gin.Context, claims *SessionClaims) {
	c.Set(sessionClaimsKey, claims)
	c.Set("user_id", claims.Subject)
}

// GetSessionClaims returns the claims placed by the guard
func GetSessionClaims(c *gin.Context) (*SessionClaims, bool) {
	v, exists := c.Get(sessionClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*SessionClaims)
	return claims, ok
}

// GetUserID returns the authenticated user id
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := GetSessionClaims(c)
	if !ok || claims == nil {
		return uuid.Nil, false
	}
	id, err := claims.UserID()
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
