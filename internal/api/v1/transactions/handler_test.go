package transactions_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payadmin-backend/internal/api/v1/transactions"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/testutil"
)

// fakeLedger is an in-memory transaction list behind the remote API.
type fakeLedger struct {
	mu           sync.Mutex
	txs          []models.Transaction
	bulkRequests [][]int64
	lastQuery    string
}

func (l *fakeLedger) mux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transactions", func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.lastQuery = r.URL.RawQuery
		status := r.URL.Query().Get("status")
		out := []models.Transaction{}
		for _, tx := range l.txs {
			if status == "" || string(tx.Status) == status {
				out = append(out, tx)
			}
		}
		testutil.JSON(w, http.StatusOK, out)
	})
	mux.HandleFunc("DELETE /api/transactions/bulk", func(w http.ResponseWriter, r *http.Request) {
		var ids []int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		l.mu.Lock()
		defer l.mu.Unlock()
		l.bulkRequests = append(l.bulkRequests, ids)
		drop := map[int64]bool{}
		for _, id := range ids {
			drop[id] = true
		}
		kept := l.txs[:0]
		for _, tx := range l.txs {
			if !drop[tx.ID] {
				kept = append(kept, tx)
			}
		}
		l.txs = kept
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("DELETE /api/transactions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func (l *fakeLedger) query() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastQuery
}

func (l *fakeLedger) resetQuery() {
	l.mu.Lock()
	l.lastQuery = "unset"
	l.mu.Unlock()
}

func (l *fakeLedger) bulk() [][]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bulkRequests
}

func newLedger() *fakeLedger {
	return &fakeLedger{txs: []models.Transaction{
		{ID: 1, Platform: "mostbet", Amount: 10000, Type: models.TransactionTypeTopUp, Status: models.TransactionStatusApproved},
		{ID: 2, Platform: "mostbet", Amount: 20000, Type: models.TransactionTypeWithdrawal, Status: models.TransactionStatusPending},
		{ID: 3, Platform: "1xbet", Amount: 30000, Type: models.TransactionTypeTopUp, Status: models.TransactionStatusFailed},
		{ID: 4, Platform: "1xbet", Amount: 40000, Type: models.TransactionTypeTopUp, Status: models.TransactionStatusApproved},
	}}
}

func setupRouter(t *testing.T, ledger *fakeLedger) (*gin.Engine, string) {
	h := transactions.NewHandler(testutil.NewRemote(t, ledger.mux(t)))
	return testutil.Router(t, func(rg *gin.RouterGroup) {
		transactions.RegisterRoutes(rg, h)
	})
}

func TestBulkDeleteSendsOneRequestAndRefetches(t *testing.T) {
	ledger := newLedger()
	r, token := setupRouter(t, ledger)

	w := testutil.Do(t, r, http.MethodPost, "/api/v1/transactions/bulk-delete", token, transactions.BulkDeleteRequest{
		IDs: []int64{1, 2, 3, 2},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, ledger.bulk(), 1)
	assert.Equal(t, []int64{1, 2, 3}, ledger.bulk()[0])

	var resp transactions.BulkDeleteResponse
	testutil.Decode(t, w, &resp)
	assert.Equal(t, 3, resp.Deleted)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, int64(4), resp.Transactions[0].ID)

	actions := testutil.Actions(t)
	require.Len(t, actions, 1)
	assert.Equal(t, "bulk-delete", actions[0].Action)
	assert.JSONEq(t, `[1,2,3]`, string(actions[0].Payload))
}

func TestBulkDeleteRefetchKeepsFilter(t *testing.T) {
	ledger := newLedger()
	r, token := setupRouter(t, ledger)

	w := testutil.Do(t, r, http.MethodPost, "/api/v1/transactions/bulk-delete", token,
		`{"ids":[2],"filter":{"status":"APPROVED","cardId":""}}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "status=APPROVED", ledger.query())
	var resp transactions.BulkDeleteResponse
	testutil.Decode(t, w, &resp)
	require.Len(t, resp.Transactions, 2)
	for _, tx := range resp.Transactions {
		assert.Equal(t, models.TransactionStatusApproved, tx.Status)
	}
}

func TestBulkDeleteValidation(t *testing.T) {
	ledger := newLedger()
	r, token := setupRouter(t, ledger)

	tests := []struct {
		name string
		body string
	}{
		{name: "no ids", body: `{"ids":[]}`},
		{name: "missing ids", body: `{}`},
		{name: "bad filter", body: `{"ids":[1],"filter":{"status":"DONE"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(t, r, http.MethodPost, "/api/v1/transactions/bulk-delete", token, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Empty(t, ledger.bulk())
}

func TestListTransactionsFilters(t *testing.T) {
	ledger := newLedger()
	r, token := setupRouter(t, ledger)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedQuery  string
		expectedCount  int
	}{
		{name: "no filter", query: "", expectedStatus: http.StatusOK, expectedQuery: "", expectedCount: 4},
		{name: "empty values dropped", query: "?status=&type=&cardId=", expectedStatus: http.StatusOK, expectedQuery: "", expectedCount: 4},
		{name: "status", query: "?status=FAILED&platformId=2", expectedStatus: http.StatusOK, expectedQuery: "platformId=2&status=FAILED", expectedCount: 1},
		{name: "unknown status", query: "?status=DONE", expectedStatus: http.StatusBadRequest},
		{name: "unknown type", query: "?type=REFUND", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger.resetQuery()
			w := testutil.Do(t, r, http.MethodGet, "/api/v1/transactions"+tt.query, token, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, "unset", ledger.query())
				return
			}
			assert.Equal(t, tt.expectedQuery, ledger.query())
			var list []models.Transaction
			testutil.Decode(t, w, &list)
			assert.Len(t, list, tt.expectedCount)
		})
	}
}

func TestExportTransactions(t *testing.T) {
	ledger := newLedger()
	r, token := setupRouter(t, ledger)

	w := testutil.Do(t, r, http.MethodGet, "/api/v1/transactions/export?status=APPROVED", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=transactions_")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 3)
}

func TestDeleteTransaction(t *testing.T) {
	ledger := newLedger()
	r, token := setupRouter(t, ledger)

	w := testutil.Do(t, r, http.MethodDelete, "/api/v1/transactions/2", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	actions := testutil.Actions(t)
	require.Len(t, actions, 1)
	assert.Equal(t, "2", actions[0].ResourceID)
}

func TestTransactionsRequireToken(t *testing.T) {
	ledger := newLedger()
	r, _ := setupRouter(t, ledger)

	w := testutil.Do(t, r, http.MethodGet, "/api/v1/transactions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
