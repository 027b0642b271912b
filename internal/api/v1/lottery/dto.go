package lottery

import (
	"payadmin-backend/internal/format"
	"payadmin-backend/internal/models"
)

type PrizeView struct {
	models.Prize
	AmountDisplay string `json:"amountDisplay"`
}

type BalanceView struct {
	models.UserBalance
	BalanceDisplay string `json:"balanceDisplay"`
}

type TicketsRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

func newPrizeViews(prizes []models.Prize) []PrizeView {
	views := make([]PrizeView, 0, len(prizes))
	for _, p := range prizes {
		views = append(views, PrizeView{Prize: p, AmountDisplay: format.Amount(p.Amount)})
	}
	return views
}
