package models

// Card is a payment card managed by the platform. Balance is in minor units.
type Card struct {
	ID         int64  `json:"id"`
	CardNumber string `json:"cardNumber"`
	OwnerName  string `json:"ownerName"`
	ExpireDate string `json:"expireDate"`
	Balance    int64  `json:"balance"`
	ConfigID   *int64 `json:"configId,omitempty"`
	Main       bool   `json:"main"`
}

type CardInput struct {
	CardNumber string `json:"cardNumber" binding:"required"`
	OwnerName  string `json:"ownerName" binding:"required"`
}

// CardSyncResult is returned by the Oson card and wallet sync.
type CardSyncResult struct {
	Cards         []Card `json:"cards"`
	WalletBalance int64  `json:"walletBalance"`
}
