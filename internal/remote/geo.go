package remote

import (
	"context"
	"net/http"
)

// GeoInfo is the subset of the public IP-geolocation answer used for
// login auditing.
type GeoInfo struct {
	IP          string `json:"ip"`
	City        string `json:"city"`
	CountryName string `json:"country_name"`
}

// Geolocate queries an unauthenticated absolute lookup URL.
func (c *Client) Geolocate(ctx context.Context, lookupURL string) (*GeoInfo, error) {
	var info GeoInfo
	if err := c.do(ctx, "", http.MethodGet, lookupURL, lookupURL, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
