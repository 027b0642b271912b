package remote

import (
	"context"
	"net/http"

	"payadmin-backend/internal/models"
)

const exchangeRatesPath = "/exchange-rates"

func (c *Client) LatestRate(ctx context.Context, cred Credential) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	if err := c.Do(ctx, cred, http.MethodGet, exchangeRatesPath+"/latest", nil, nil, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// UpdateRate stores a new rate which becomes the latest one.
func (c *Client) UpdateRate(ctx context.Context, cred Credential, in models.ExchangeRateInput) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	if err := c.Do(ctx, cred, http.MethodPost, exchangeRatesPath+"/update", nil, in, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}
