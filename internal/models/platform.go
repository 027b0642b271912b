package models

type Currency string

const (
	CurrencyUZS Currency = "UZS"
	CurrencyRUB Currency = "RUB"
)

type Platform struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Currency    Currency `json:"currency"`
	APIKey      string   `json:"apiKey"`
	Login       string   `json:"login"`
	WorkplaceID string   `json:"workplaceId"`
}

// PlatformInput carries the write-only password. An empty password on
// update keeps the current one.
type PlatformInput struct {
	Name        string   `json:"name" binding:"required"`
	Currency    Currency `json:"currency" binding:"omitempty,oneof=UZS RUB"`
	APIKey      string   `json:"apiKey" binding:"required"`
	Login       string   `json:"login" binding:"required"`
	Password    string   `json:"password,omitempty"`
	WorkplaceID string   `json:"workplaceId" binding:"required"`
}
