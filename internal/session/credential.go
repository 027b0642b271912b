package session

import (
	"encoding/base64"
	"errors"
	"strings"

	"payadmin-backend/internal/remote"
)

var errMalformedCredential = errors.New("malformed basic credential")

// EncodeBasic builds the Basic credential for username and password.
func EncodeBasic(username, password string) remote.Credential {
	return remote.Credential(base64.StdEncoding.EncodeToString([]byte(username + ":" + password)))
}

// Username recovers the user part of a Basic credential.
func Username(cred remote.Credential) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(string(cred))
	if err != nil {
		return "", err
	}
	user, _, ok := strings.Cut(string(raw), ":")
	if !ok {
		return "", errMalformedCredential
	}
	return user, nil
}

// DeviceName maps a user agent to the label shown in the login devices page.
func DeviceName(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "windows"):
		return "Windows PC"
	case strings.Contains(ua, "macintosh"):
		return "Mac"
	case strings.Contains(ua, "linux"):
		return "Linux PC"
	case strings.Contains(ua, "iphone"):
		return "iPhone"
	case strings.Contains(ua, "ipad"):
		return "iPad"
	case strings.Contains(ua, "android"):
		return "Android Device"
	default:
		return "Unknown Device"
	}
}
