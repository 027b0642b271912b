package remote

import (
	"context"
	"net/http"
	"net/url"

	"payadmin-backend/internal/models"
)

// DashboardStats fetches aggregated statistics; empty bounds are omitted.
func (c *Client) DashboardStats(ctx context.Context, cred Credential, startDate, endDate string) (*models.DashboardStats, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	var stats models.DashboardStats
	if err := c.Do(ctx, cred, http.MethodGet, "/dashboard/stats", q, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
