package cards

import (
	"payadmin-backend/internal/format"
	"payadmin-backend/internal/models"
)

// CardView is a card with its display strings.
type CardView struct {
	models.Card
	BalanceDisplay    string `json:"balanceDisplay"`
	CardNumberDisplay string `json:"cardNumberDisplay"`
}

type SyncResponse struct {
	Cards                []CardView `json:"cards"`
	WalletBalance        int64      `json:"walletBalance"`
	WalletBalanceDisplay string     `json:"walletBalanceDisplay"`
}

func newCardView(c models.Card) CardView {
	return CardView{
		Card:              c,
		BalanceDisplay:    format.CardBalance(c.Balance),
		CardNumberDisplay: format.CardNumber(c.CardNumber),
	}
}

func newCardViews(cards []models.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, newCardView(c))
	}
	return views
}
