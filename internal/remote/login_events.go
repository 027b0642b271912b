package remote

import (
	"context"
	"net/http"

	"payadmin-backend/internal/models"
)

func (c *Client) LoginEvents(ctx context.Context, cred Credential) ([]models.LoginEvent, error) {
	var events []models.LoginEvent
	if err := c.Do(ctx, cred, http.MethodGet, "/admin/login", nil, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// VerifyCredential succeeds when the API answers the login history with any
// 2xx. The body is not decoded.
func (c *Client) VerifyCredential(ctx context.Context, cred Credential) error {
	return c.Do(ctx, cred, http.MethodGet, "/admin/login", nil, nil, nil)
}

func (c *Client) RecordLogin(ctx context.Context, cred Credential, rec models.LoginRecord) error {
	return c.Do(ctx, cred, http.MethodPost, "/admin/login-info", nil, rec, nil)
}
