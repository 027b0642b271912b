package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"payadmin-backend/internal/models"
	"payadmin-backend/internal/remote"
	"payadmin-backend/pkg/logger"
)

const auditTimeout = 15 * time.Second

// recordLogin posts the login audit record. It never affects the session;
// failures are only logged.
func (m *Manager) recordLogin(username string, cred remote.Credential, meta ClientMeta) {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	rec := models.LoginRecord{
		Username:   username,
		UserAgent:  meta.UserAgent,
		IPAddress:  meta.IPAddress,
		DeviceName: DeviceName(meta.UserAgent),
	}

	if m.opts.GeoLookupURL != "" {
		geo, err := m.client.Geolocate(ctx, m.opts.GeoLookupURL)
		if err != nil {
			logger.Log.Warn("Geolocation lookup failed, recording login without it", zap.Error(err))
		} else {
			if geo.IP != "" {
				rec.IPAddress = geo.IP
			}
			rec.City = geo.City
			rec.Country = geo.CountryName
		}
	}

	if err := m.client.RecordLogin(ctx, cred, rec); err != nil {
		logger.Log.Error("Failed to record login event, but login is successful", zap.Error(err))
	}
}
