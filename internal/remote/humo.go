package remote

import (
	"context"
	"net/http"
	"net/url"

	"payadmin-backend/internal/models"
)

const humoPath = "/humo"

func (c *Client) HumoNewNumber(ctx context.Context, cred Credential, in models.HumoPhone) (*models.HumoStepResult, error) {
	var res models.HumoStepResult
	if err := c.Do(ctx, cred, http.MethodPost, humoPath+"/newNumber", nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) HumoSMSCode(ctx context.Context, cred Credential, in models.HumoSMSCode) (*models.HumoStepResult, error) {
	var res models.HumoStepResult
	if err := c.Do(ctx, cred, http.MethodPost, humoPath+"/smscode", nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) HumoTwoStep(ctx context.Context, cred Credential, in models.HumoTwoStep) (*models.HumoStepResult, error) {
	var res models.HumoStepResult
	if err := c.Do(ctx, cred, http.MethodPost, humoPath+"/twostep", nil, in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) HumoActive(ctx context.Context, cred Credential) ([]models.HumoAccount, error) {
	var accounts []models.HumoAccount
	q := url.Values{"include_photo": {"true"}}
	if err := c.Do(ctx, cred, http.MethodGet, humoPath+"/active", q, nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) HumoDelete(ctx context.Context, cred Credential, phone string) error {
	q := url.Values{"phone": {phone}}
	return c.Do(ctx, cred, http.MethodDelete, humoPath+"/delete", q, nil, nil)
}
