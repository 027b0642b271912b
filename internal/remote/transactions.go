package remote

import (
	"context"
	"net/http"
	"net/url"

	"payadmin-backend/internal/models"
)

const transactionsPath = "/transactions"

// FilterQuery drops empty filter values before they reach the API.
func FilterQuery(f models.TransactionFilter) url.Values {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("cardId", f.CardID)
	set("platformId", f.PlatformID)
	set("status", string(f.Status))
	set("type", string(f.Type))
	return q
}

func (c *Client) ListTransactions(ctx context.Context, cred Credential, f models.TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.Do(ctx, cred, http.MethodGet, transactionsPath, FilterQuery(f), nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, cred Credential, id int64) error {
	return c.Do(ctx, cred, http.MethodDelete, transactionsPath+"/"+pathID(id), nil, nil, nil)
}

// DeleteTransactions removes all ids in a single request.
func (c *Client) DeleteTransactions(ctx context.Context, cred Credential, ids []int64) error {
	return c.Do(ctx, cred, http.MethodDelete, transactionsPath+"/bulk", nil, ids, nil)
}
