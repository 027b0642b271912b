package models

type Prize struct {
	ID            int64   `json:"id"`
	Amount        float64 `json:"amount"`
	NumberOfPrize int     `json:"numberOfPrize"`
}

type PrizeInput struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	NumberOfPrize int     `json:"numberOfPrize" binding:"required,gt=0"`
}

// UserBalance is a bot user's lottery balance and ticket count.
type UserBalance struct {
	ChatID  int64   `json:"chatId"`
	Balance float64 `json:"balance"`
	Tickets int     `json:"tickets"`
}

type RandomAward struct {
	TotalUsers  int     `json:"totalUsers" binding:"required,gt=0"`
	RandomUsers int     `json:"randomUsers" binding:"required,gt=0,ltefield=TotalUsers"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}
