package transactions

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"payadmin-backend/internal/api/v1/common"
	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/services"
	"payadmin-backend/internal/utils"
)

const (
	resource     = "transactions"
	listFailed   = "Tranzaksiyalarni yuklashda xatolik yuz berdi"
	deleteFailed = "Tranzaksiyani o'chirishda xatolik"
)

type Handler struct {
	api *remote.Client
}

func NewHandler(api *remote.Client) *Handler {
	return &Handler{api: api}
}

func validFilter(c *gin.Context, f models.TransactionFilter) bool {
	if f.Status != "" && !f.Status.Valid() {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid status"))
		return false
	}
	if f.Type != "" && !f.Type.Valid() {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid type"))
		return false
	}
	return true
}

func bindFilter(c *gin.Context) (models.TransactionFilter, bool) {
	var filter models.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid filter"))
		return filter, false
	}
	return filter, validFilter(c, filter)
}

func (h *Handler) list(c *gin.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	txs, err := h.api.ListTransactions(c.Request.Context(), middleware.Credential(c), filter)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// ListTransactions godoc
// @Summary List transactions
// @Description Empty filters are not forwarded.
// @Tags transactions
// @Produce json
// @Security Bearer
// @Param cardId query string false "Filter by card"
// @Param platformId query string false "Filter by platform"
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Success 200 {object} utils.Response{data=[]models.Transaction}
// @Failure 400 {object} utils.Response
// @Router /transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	txs, err := h.list(c, filter)
	if err != nil {
		apperr.Respond(c, err, listFailed)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", txs))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Security Bearer
// @Param id path int true "Transaction ID"
// @Success 200 {object} utils.Response
// @Router /transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.api.DeleteTransaction(c.Request.Context(), middleware.Credential(c), id); err != nil {
		apperr.Respond(c, err, deleteFailed)
		return
	}
	common.RecordAction(c, "delete", resource, common.FormatID(id), nil)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction deleted successfully", nil))
}

// BulkDeleteTransactions godoc
// @Summary Delete several transactions
// @Description Issues one bulk request, then returns the refetched list.
// @Tags transactions
// @Accept json
// @Produce json
// @Security Bearer
// @Param input body BulkDeleteRequest true "Selection"
// @Success 200 {object} utils.Response{data=BulkDeleteResponse}
// @Router /transactions/bulk-delete [post]
func (h *Handler) BulkDeleteTransactions(c *gin.Context) {
	var req BulkDeleteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if !validFilter(c, req.Filter) {
		return
	}

	ids := uniqueIDs(req.IDs)
	if err := h.api.DeleteTransactions(c.Request.Context(), middleware.Credential(c), ids); err != nil {
		apperr.Respond(c, err, deleteFailed)
		return
	}
	common.RecordAction(c, "bulk-delete", resource, "", ids)

	txs, err := h.list(c, req.Filter)
	if err != nil {
		apperr.Respond(c, err, listFailed)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions deleted successfully", BulkDeleteResponse{
		Deleted:      len(ids),
		Transactions: txs,
	}))
}

// ExportTransactions godoc
// @Summary Export transactions as CSV
// @Tags transactions
// @Produce text/csv
// @Security Bearer
// @Success 200 {file} file
// @Router /transactions/export [get]
func (h *Handler) ExportTransactions(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	txs, err := h.list(c, filter)
	if err != nil {
		apperr.Respond(c, err, listFailed)
		return
	}

	data, err := services.GenerateTransactionCSV(txs)
	if err != nil {
		apperr.Respond(c, apperr.Local(err), "Failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
