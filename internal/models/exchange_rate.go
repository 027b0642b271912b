package models

type ExchangeRate struct {
	ID        int64   `json:"id"`
	UzsToRub  float64 `json:"uzsToRub"`
	RubToUzs  float64 `json:"rubToUzs"`
	CreatedAt UTCTime `json:"createdAt"`
}

type ExchangeRateInput struct {
	UzsToRub float64 `json:"uzsToRub" binding:"required,gt=0"`
	RubToUzs float64 `json:"rubToUzs" binding:"required,gt=0"`
}
