package remote

import (
	"context"
	"net/http"

	"payadmin-backend/internal/models"
)

const osonConfigPath = "/oson/config"

func (c *Client) ListOsonConfigs(ctx context.Context, cred Credential) ([]models.OsonConfig, error) {
	var configs []models.OsonConfig
	if err := c.Do(ctx, cred, http.MethodGet, osonConfigPath, nil, nil, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func (c *Client) GetOsonConfig(ctx context.Context, cred Credential, id int64) (*models.OsonConfig, error) {
	var cfg models.OsonConfig
	if err := c.Do(ctx, cred, http.MethodGet, osonConfigPath+"/"+pathID(id), nil, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) CreateOsonConfig(ctx context.Context, cred Credential, in models.OsonConfig) (*models.OsonConfig, error) {
	var cfg models.OsonConfig
	if err := c.Do(ctx, cred, http.MethodPost, osonConfigPath, nil, in, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) UpdateOsonConfig(ctx context.Context, cred Credential, id int64, in models.OsonConfig) (*models.OsonConfig, error) {
	var cfg models.OsonConfig
	if err := c.Do(ctx, cred, http.MethodPut, osonConfigPath+"/"+pathID(id), nil, in, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) DeleteOsonConfig(ctx context.Context, cred Credential, id int64) error {
	return c.Do(ctx, cred, http.MethodDelete, osonConfigPath+"/"+pathID(id), nil, nil, nil)
}

// SetPrimaryOsonConfig makes id the default config.
func (c *Client) SetPrimaryOsonConfig(ctx context.Context, cred Credential, id int64) error {
	return c.Do(ctx, cred, http.MethodPut, osonConfigPath+"/"+pathID(id)+"/primary", nil, nil, nil)
}
