package auth

import (
	"fmt"

	apperrors "bleck-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims of a Supabase access token. The subject is the user id.
type SessionClaims struct {
	Email                string `json:"email"`
	Role                 string `json:"role"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID returns the subject as a UUID
func (c *SessionClaims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, apperrors.ErrAuthenticationInvalidClaims
	}
	return id, nil
}

// SessionVerifier validates session tokens issued by the identity backend
type SessionVerifier struct {
	secret []byte
}

// NewSessionVerifier creates a verifier for HS256 tokens signed with the given secret
func NewSessionVerifier(secret string) (*SessionVerifier, error) {
	if secret == "" {
		return nil, apperrors.ErrSessionSecretMissing
	}
	return &SessionVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates a session token
func (v *SessionVerifier) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, &apperrors.AuthenticationError{Message: fmt.Sprintf("invalid session: %v", err)}
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrAuthenticationInvalidClaims
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}
