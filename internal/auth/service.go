// Package auth implements login for the single demo account and the token
// validation the session gate uses. Guest users can browse and scan; the
// compare, rewards and community surfaces require a session.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"packport/internal/auth/secrets"
	"packport/internal/auth/token"
	"packport/internal/platform/middleware"
	id "packport/pkg/domain"
	dErrors "packport/pkg/domain-errors"
)

// SessionTTL is how long an issued session token stays valid.
const SessionTTL = 24 * time.Hour

// Service authenticates logins against the demo account.
type Service struct {
	tokens       *token.Service
	email        string
	passwordHash string
}

// NewService hashes the demo password once at startup.
func NewService(tokens *token.Service, email, password string) (*Service, error) {
	hash, err := secrets.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing demo password: %w", err)
	}
	return &Service{tokens: tokens, email: email, passwordHash: hash}, nil
}

// LoginResult is a successful authentication.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
}

// Login verifies the credentials and mints a session token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(_ context.Context, email, password string) (LoginResult, error) {
	if email != s.email {
		return LoginResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if err := secrets.Verify(password, s.passwordHash); err != nil {
		return LoginResult{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	sessionID := id.SessionID(uuid.New())
	accessToken, err := s.tokens.GenerateSessionToken(email, sessionID, SessionTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generating session token: %w", err)
	}
	return LoginResult{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(SessionTTL.Seconds()),
		UserID:      email,
	}, nil
}

// SessionValidator adapts the token service to the middleware's interface.
type SessionValidator struct {
	Tokens *token.Service
}

func (v SessionValidator) ValidateToken(tokenString string) (*middleware.SessionClaims, error) {
	claims, err := v.Tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.SessionClaims{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
	}, nil
}
