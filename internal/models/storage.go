package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorageEntry is a durable key/value pair kept by the sqlite credential store.
type StorageEntry struct {
	Key       string `gorm:"primarykey;type:varchar(64)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// ActionLog records a mutation performed through the panel.
type ActionLog struct {
	ID         string         `gorm:"primarykey;type:varchar(36)" json:"id"`
	CreatedAt  time.Time      `gorm:"index" json:"createdAt"`
	Action     string         `gorm:"type:varchar(50);index;not null" json:"action"`
	Resource   string         `gorm:"type:varchar(50);index;not null" json:"resource"`
	ResourceID string         `gorm:"type:varchar(64)" json:"resourceId"`
	Payload    datatypes.JSON `gorm:"type:json" json:"payload"`
	RequestID  string         `gorm:"type:varchar(36)" json:"requestId"`
}
