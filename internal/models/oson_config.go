package models

// OsonConfig is a stored Oson wallet account configuration. The primary
// config is used when no explicit selection is made.
type OsonConfig struct {
	ID         int64  `json:"id,omitempty"`
	APIURL     string `json:"apiUrl"`
	APIKey     string `json:"apiKey"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
	Primary    bool   `json:"primary"`
}
