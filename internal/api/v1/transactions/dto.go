package transactions

import "payadmin-backend/internal/models"

// BulkDeleteRequest selects the transactions to delete. The filter is used
// to refetch the list afterwards.
type BulkDeleteRequest struct {
	IDs    []int64                  `json:"ids" binding:"required,min=1"`
	Filter models.TransactionFilter `json:"filter"`
}

type BulkDeleteResponse struct {
	Deleted      int                  `json:"deleted"`
	Transactions []models.Transaction `json:"transactions"`
}
