package remote

import (
	"context"
	"net/http"

	"payadmin-backend/internal/models"
)

func (c *Client) SendBroadcast(ctx context.Context, cred Credential, b models.Broadcast) error {
	return c.Do(ctx, cred, http.MethodPost, "/broadcast/send", nil, b, nil)
}
