package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"payadmin-backend/internal/models"
)

func (c *Client) ListFeatures(ctx context.Context, cred Credential) ([]models.Feature, error) {
	var features []models.Feature
	if err := c.Do(ctx, cred, http.MethodGet, "/features", nil, nil, &features); err != nil {
		return nil, err
	}
	return features, nil
}

func (c *Client) SetFeature(ctx context.Context, cred Credential, name string, enabled bool) error {
	q := url.Values{"enabled": {strconv.FormatBool(enabled)}}
	return c.Do(ctx, cred, http.MethodPut, "/features/"+url.PathEscape(name), q, nil, nil)
}
