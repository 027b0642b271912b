package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"payadmin-backend/internal/database"
	"payadmin-backend/internal/models"
	"payadmin-backend/pkg/logger"
)

// Action describes one successful mutation made through the panel.
type Action struct {
	Action     string
	Resource   string
	ResourceID string
	Payload    interface{}
	RequestID  string
}

// ActivityFilter narrows ListActions; zero values match everything.
type ActivityFilter struct {
	Resource string
	Action   string
	Page     int
	Limit    int
}

// RecordAction appends to the local activity log. Failures are logged and
// never reach the caller's response.
func RecordAction(ctx context.Context, a Action) {
	if database.DB == nil {
		return
	}

	entry := models.ActionLog{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Action:     a.Action,
		Resource:   a.Resource,
		ResourceID: a.ResourceID,
		RequestID:  a.RequestID,
	}
	if a.Payload != nil {
		raw, err := json.Marshal(a.Payload)
		if err != nil {
			logger.Log.Warn("Failed to encode action payload", zap.String("action", a.Action), zap.Error(err))
		} else {
			entry.Payload = datatypes.JSON(raw)
		}
	}

	if err := database.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		logger.Log.Error("Failed to record action",
			zap.String("action", a.Action),
			zap.String("resource", a.Resource),
			zap.Error(err),
		)
	}
}

// ListActions returns a page of the activity log, newest first.
func ListActions(ctx context.Context, filter ActivityFilter) ([]models.ActionLog, int64, error) {
	var logs []models.ActionLog
	var total int64

	query := database.DB.WithContext(ctx).Model(&models.ActionLog{})
	if filter.Resource != "" {
		query = query.Where("resource = ?", filter.Resource)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count actions: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list actions: %w", err)
	}

	return logs, total, nil
}
