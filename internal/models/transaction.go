package models

type TransactionType string

const (
	TransactionTypeTopUp      TransactionType = "TOP_UP"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

type TransactionStatus string

const (
	TransactionStatusPending        TransactionStatus = "PENDING"
	TransactionStatusPendingSMS     TransactionStatus = "PENDING_SMS"
	TransactionStatusPendingAdmin   TransactionStatus = "PENDING_ADMIN"
	TransactionStatusBonusApproved  TransactionStatus = "BONUS_APPROVED"
	TransactionStatusApproved       TransactionStatus = "APPROVED"
	TransactionStatusCanceled       TransactionStatus = "CANCELED"
	TransactionStatusPendingPayment TransactionStatus = "PENDING_PAYMENT"
	TransactionStatusFailed         TransactionStatus = "FAILED"
)

var TransactionTypes = []TransactionType{TransactionTypeTopUp, TransactionTypeWithdrawal}

var TransactionStatuses = []TransactionStatus{
	TransactionStatusPending,
	TransactionStatusPendingSMS,
	TransactionStatusPendingAdmin,
	TransactionStatusBonusApproved,
	TransactionStatusApproved,
	TransactionStatusCanceled,
	TransactionStatusPendingPayment,
	TransactionStatusFailed,
}

func (t TransactionType) Valid() bool {
	for _, v := range TransactionTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (s TransactionStatus) Valid() bool {
	for _, v := range TransactionStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Transaction is a top-up or withdrawal request as the remote API reports it.
type Transaction struct {
	ID           int64             `json:"id"`
	Platform     string            `json:"platform"`
	ChatID       int64             `json:"chatId"`
	FullName     string            `json:"fullName"`
	CardNumber   string            `json:"cardNumber"`
	Amount       float64           `json:"amount"`
	UniqueAmount float64           `json:"uniqueAmount"`
	Type         TransactionType   `json:"type"`
	Status       TransactionStatus `json:"status"`
	CreatedAt    UTCTime           `json:"createdAt"`
}

// TransactionFilter holds the list filters; zero values are not sent.
type TransactionFilter struct {
	CardID     string            `form:"cardId" json:"cardId"`
	PlatformID string            `form:"platformId" json:"platformId"`
	Status     TransactionStatus `form:"status" json:"status"`
	Type       TransactionType   `form:"type" json:"type"`
}
