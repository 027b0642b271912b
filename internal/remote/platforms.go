package remote

import (
	"context"
	"net/http"

	"payadmin-backend/internal/models"
)

const platformsPath = "/platforms"

func (c *Client) ListPlatforms(ctx context.Context, cred Credential) ([]models.Platform, error) {
	var platforms []models.Platform
	if err := c.Do(ctx, cred, http.MethodGet, platformsPath, nil, nil, &platforms); err != nil {
		return nil, err
	}
	return platforms, nil
}

func (c *Client) GetPlatform(ctx context.Context, cred Credential, id int64) (*models.Platform, error) {
	var platform models.Platform
	if err := c.Do(ctx, cred, http.MethodGet, platformsPath+"/"+pathID(id), nil, nil, &platform); err != nil {
		return nil, err
	}
	return &platform, nil
}

func (c *Client) CreatePlatform(ctx context.Context, cred Credential, in models.PlatformInput) (*models.Platform, error) {
	var platform models.Platform
	if err := c.Do(ctx, cred, http.MethodPost, platformsPath, nil, in, &platform); err != nil {
		return nil, err
	}
	return &platform, nil
}

func (c *Client) UpdatePlatform(ctx context.Context, cred Credential, id int64, in models.PlatformInput) (*models.Platform, error) {
	var platform models.Platform
	if err := c.Do(ctx, cred, http.MethodPut, platformsPath+"/"+pathID(id), nil, in, &platform); err != nil {
		return nil, err
	}
	return &platform, nil
}

func (c *Client) DeletePlatform(ctx context.Context, cred Credential, id int64) error {
	return c.Do(ctx, cred, http.MethodDelete, platformsPath+"/"+pathID(id), nil, nil, nil)
}
