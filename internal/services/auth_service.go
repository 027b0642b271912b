package services

import (
	"context"
	"time"

	"payadmin-backend/internal/session"
	"payadmin-backend/internal/utils"
)

// TokenConfig signs the browser tokens handed out after a remote login.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// LoginAdmin validates the credentials against the remote API and issues a
// browser token for the new session.
func LoginAdmin(ctx context.Context, mgr *session.Manager, tc TokenConfig, username, password string, meta session.ClientMeta) (string, error) {
	sessionID, err := mgr.Login(ctx, username, password, meta)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateToken(tc.Secret, username, sessionID, tc.TTL)
	if err != nil {
		// The remote session is useless without a browser token.
		_ = mgr.EndSession(ctx, sessionID)
		return "", err
	}
	return token, nil
}

// LogoutAdmin revokes tokenString and ends the remote session it was issued
// for. Missing, invalid or already revoked tokens end nothing, so the call
// succeeds whether or not anyone is logged in.
func LogoutAdmin(ctx context.Context, mgr *session.Manager, tc TokenConfig, tokenString string) error {
	if tokenString == "" {
		return nil
	}
	claims, err := utils.ValidateToken(tc.Secret, tokenString)
	if err != nil {
		return nil
	}
	revoked, err := IsDenylisted(ctx, tokenString)
	if err != nil {
		return err
	}
	if revoked {
		return nil
	}

	remaining := tc.TTL
	if exp, ok := utils.TokenExpiry(claims); ok {
		remaining = exp
	}
	if err := AddToDenylist(ctx, tokenString, remaining); err != nil {
		return err
	}

	sessionID, _ := claims["sid"].(string)
	return mgr.EndSession(ctx, sessionID)
}
