// Package quickpaste fills Oson config forms from the key=value blob found
// in device logs, e.g. "phone=998901234567&password=x&dev_id=abc&device_name=Pixel".
package quickpaste

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"payadmin-backend/internal/models"
)

// Fields holds the recognised values of a quick-paste string. Nil means the
// key was absent.
type Fields struct {
	Phone      *string `json:"phone,omitempty"`
	Password   *string `json:"password,omitempty"`
	DeviceID   *string `json:"deviceId,omitempty"`
	DeviceName *string `json:"deviceName,omitempty"`
}

func (f Fields) Empty() bool {
	return f.Phone == nil && f.Password == nil && f.DeviceID == nil && f.DeviceName == nil
}

// Parse never fails: segments without exactly one '=' and unknown keys are
// skipped, and a repeated key keeps its last value.
func Parse(s string) Fields {
	var f Fields
	for _, segment := range strings.Split(s, "&") {
		parts := strings.Split(segment, "=")
		if len(parts) != 2 {
			continue
		}

		key := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, parts[0])
		value := decode(strings.TrimSpace(parts[1]))

		switch key {
		case "phone":
			f.Phone = &value
		case "password":
			f.Password = &value
		case "dev_id":
			f.DeviceID = &value
		case "device_name":
			f.DeviceName = &value
		}
	}
	return f
}

// decode percent-decodes v, keeping '+' literal. Input that is malformed or
// decodes to invalid UTF-8 is returned unchanged.
func decode(v string) string {
	decoded, err := url.PathUnescape(v)
	if err != nil || !utf8.ValidString(decoded) {
		return v
	}
	return decoded
}

// Apply copies the present fields into cfg.
func Apply(cfg *models.OsonConfig, f Fields) {
	if f.Phone != nil {
		cfg.Phone = *f.Phone
	}
	if f.Password != nil {
		cfg.Password = *f.Password
	}
	if f.DeviceID != nil {
		cfg.DeviceID = *f.DeviceID
	}
	if f.DeviceName != nil {
		cfg.DeviceName = *f.DeviceName
	}
}
