package remote

import (
	"context"
	"net/http"

	"payadmin-backend/internal/models"
)

const cardsPath = "/admin/cards"

func (c *Client) ListCards(ctx context.Context, cred Credential) ([]models.Card, error) {
	var cards []models.Card
	if err := c.Do(ctx, cred, http.MethodGet, cardsPath, nil, nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *Client) GetCard(ctx context.Context, cred Credential, id int64) (*models.Card, error) {
	var card models.Card
	if err := c.Do(ctx, cred, http.MethodGet, cardsPath+"/"+pathID(id), nil, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) CreateCard(ctx context.Context, cred Credential, in models.CardInput) (*models.Card, error) {
	var card models.Card
	if err := c.Do(ctx, cred, http.MethodPost, cardsPath, nil, in, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) UpdateCard(ctx context.Context, cred Credential, id int64, in models.CardInput) (*models.Card, error) {
	var card models.Card
	if err := c.Do(ctx, cred, http.MethodPut, cardsPath+"/"+pathID(id), nil, in, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *Client) DeleteCard(ctx context.Context, cred Credential, id int64) error {
	return c.Do(ctx, cred, http.MethodDelete, cardsPath+"/"+pathID(id), nil, nil, nil)
}

func (c *Client) SetMainCard(ctx context.Context, cred Credential, id int64) error {
	return c.Do(ctx, cred, http.MethodPut, cardsPath+"/"+pathID(id)+"/set-main", nil, nil, nil)
}

// SyncCards makes the API pull cards and the wallet balance from Oson.
func (c *Client) SyncCards(ctx context.Context, cred Credential) (*models.CardSyncResult, error) {
	var result models.CardSyncResult
	if err := c.Do(ctx, cred, http.MethodGet, "/admin/cards-and-wallet", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
