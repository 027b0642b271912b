package lottery_test

import (
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payadmin-backend/internal/api/v1/lottery"
	"payadmin-backend/internal/format"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/testutil"
)

type recorder struct {
	mu       sync.Mutex
	requests []string
}

func (r *recorder) add(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	target := req.Method + " " + req.URL.Path
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}
	r.requests = append(r.requests, target)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.requests...)
}

func setupRouter(t *testing.T) (*gin.Engine, string, *recorder) {
	rec := &recorder{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/lottery/prizes", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, []models.Prize{{ID: 1, Amount: 50000, NumberOfPrize: 3}})
	})
	mux.HandleFunc("GET /api/lottery/balance/{chatId}", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, models.UserBalance{ChatID: 42, Balance: 125000, Tickets: 4})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		w.WriteHeader(http.StatusOK)
	})

	h := lottery.NewHandler(testutil.NewRemote(t, mux))
	r, token := testutil.Router(t, func(rg *gin.RouterGroup) {
		lottery.RegisterRoutes(rg, h)
	})
	return r, token, rec
}

func TestListPrizesAndBalance(t *testing.T) {
	r, token, _ := setupRouter(t)

	w := testutil.Do(t, r, http.MethodGet, "/api/v1/lottery/prizes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var prizes []lottery.PrizeView
	testutil.Decode(t, w, &prizes)
	require.Len(t, prizes, 1)
	assert.Equal(t, format.Amount(50000), prizes[0].AmountDisplay)

	w = testutil.Do(t, r, http.MethodGet, "/api/v1/lottery/users/42/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var balance lottery.BalanceView
	testutil.Decode(t, w, &balance)
	assert.Equal(t, 4, balance.Tickets)
	assert.Equal(t, format.Amount(125000), balance.BalanceDisplay)
}

func TestLotteryMutations(t *testing.T) {
	r, token, rec := setupRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		expectedStatus int
		expectedCall   string
	}{
		{
			name:           "add tickets",
			method:         http.MethodPost,
			path:           "/api/v1/lottery/users/42/tickets",
			body:           lottery.TicketsRequest{Amount: 5},
			expectedStatus: http.StatusOK,
			expectedCall:   "POST /api/lottery/tickets/42?amount=5",
		},
		{
			name:           "reset tickets",
			method:         http.MethodDelete,
			path:           "/api/v1/lottery/users/42/tickets",
			expectedStatus: http.StatusOK,
			expectedCall:   "DELETE /api/lottery/tickets/42",
		},
		{
			name:           "reset balance",
			method:         http.MethodDelete,
			path:           "/api/v1/lottery/users/42/balance",
			expectedStatus: http.StatusOK,
			expectedCall:   "DELETE /api/lottery/balance/42",
		},
		{
			name:           "delete prize",
			method:         http.MethodDelete,
			path:           "/api/v1/lottery/prizes/7",
			expectedStatus: http.StatusOK,
			expectedCall:   "DELETE /api/lottery/prizes/7",
		},
		{
			name:           "award random users",
			method:         http.MethodPost,
			path:           "/api/v1/lottery/award-random",
			body:           models.RandomAward{TotalUsers: 10, RandomUsers: 3, Amount: 5000},
			expectedStatus: http.StatusOK,
			expectedCall: "POST /api/lottery/award-random-users?" + url.Values{
				"totalUsers": {"10"}, "randomUsers": {"3"}, "amount": {"5000"},
			}.Encode(),
		},
		{
			name:           "more winners than users",
			method:         http.MethodPost,
			path:           "/api/v1/lottery/award-random",
			body:           models.RandomAward{TotalUsers: 2, RandomUsers: 3, Amount: 5000},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero tickets",
			method:         http.MethodPost,
			path:           "/api/v1/lottery/users/42/tickets",
			body:           lottery.TicketsRequest{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(rec.all())
			w := testutil.Do(t, r, tt.method, tt.path, token, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			calls := rec.all()[before:]
			if tt.expectedCall == "" {
				assert.Empty(t, calls)
				return
			}
			require.Len(t, calls, 1)
			assert.Equal(t, tt.expectedCall, calls[0])
		})
	}

	assert.Len(t, testutil.Actions(t), 5)
}
