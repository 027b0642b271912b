package models

import (
	"encoding/json"
	"strings"
	"time"
)

// LoginEvent is a recorded panel login.
type LoginEvent struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	UserAgent  string  `json:"userAgent"`
	IPAddress  string  `json:"ipAddress"`
	DeviceName string  `json:"deviceName"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	LoginTime  UTCTime `json:"loginTime"`
}

// LoginRecord is the audit payload posted after a successful login.
type LoginRecord struct {
	Username   string `json:"username"`
	UserAgent  string `json:"userAgent"`
	IPAddress  string `json:"ipAddress"`
	DeviceName string `json:"deviceName"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// UTCTime decodes timestamps the API sends without a zone as UTC.
type UTCTime struct {
	time.Time
}

var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func ParseUTCTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range utcLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (t *UTCTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseUTCTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}
