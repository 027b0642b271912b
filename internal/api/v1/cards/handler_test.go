package cards_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payadmin-backend/internal/api/v1/cards"
	"payadmin-backend/internal/format"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/testutil"
)

func setupRouter(t *testing.T, mux *http.ServeMux) (*gin.Engine, string) {
	h := cards.NewHandler(testutil.NewRemote(t, mux))
	return testutil.Router(t, func(rg *gin.RouterGroup) {
		cards.RegisterRoutes(rg, h)
	})
}

func TestListCardsUsesOneScale(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/cards", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, []models.Card{
			{ID: 1, CardNumber: "8600123456789012", OwnerName: "Ali", Balance: 1500000, Main: true},
			{ID: 2, CardNumber: "9860123456789012", OwnerName: "Vali", Balance: 5},
		})
	})
	mux.HandleFunc("GET /api/admin/cards-and-wallet", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, models.CardSyncResult{
			Cards:         []models.Card{{ID: 1, CardNumber: "8600123456789012", Balance: 1500000}},
			WalletBalance: 1500000,
		})
	})
	r, token := setupRouter(t, mux)

	w := testutil.Do(t, r, http.MethodGet, "/api/v1/cards", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var views []cards.CardView
	testutil.Decode(t, w, &views)
	require.Len(t, views, 2)
	assert.Equal(t, format.CardBalance(1500000), views[0].BalanceDisplay)
	assert.Equal(t, "8600 1234 5678 9012", views[0].CardNumberDisplay)
	assert.Equal(t, int64(1500000), views[0].Balance)
	assert.True(t, views[0].Main)

	w = testutil.Do(t, r, http.MethodPost, "/api/v1/cards/sync", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var synced cards.SyncResponse
	testutil.Decode(t, w, &synced)
	assert.Equal(t, views[0].BalanceDisplay, synced.Cards[0].BalanceDisplay)
	assert.Equal(t, views[0].BalanceDisplay, synced.WalletBalanceDisplay)
}

func TestCreateCard(t *testing.T) {
	var received models.CardInput
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/cards", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		testutil.JSON(w, http.StatusOK, models.Card{ID: 9, CardNumber: received.CardNumber, OwnerName: received.OwnerName})
	})
	r, token := setupRouter(t, mux)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "valid with spaces", body: `{"cardNumber":"8600 1234 5678 9012","ownerName":"Ali"}`, expectedStatus: http.StatusCreated},
		{name: "short number", body: `{"cardNumber":"8600 1234","ownerName":"Ali"}`, expectedStatus: http.StatusBadRequest},
		{name: "letters", body: `{"cardNumber":"8600 1234 5678 90ab","ownerName":"Ali"}`, expectedStatus: http.StatusBadRequest},
		{name: "missing owner", body: `{"cardNumber":"8600123456789012"}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(t, r, http.MethodPost, "/api/v1/cards", token, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	assert.Equal(t, "8600123456789012", received.CardNumber)

	actions := testutil.Actions(t)
	require.Len(t, actions, 1)
	assert.Equal(t, "create", actions[0].Action)
	assert.Equal(t, "cards", actions[0].Resource)
	assert.Equal(t, "9", actions[0].ResourceID)
}

func TestCardMutations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/admin/cards/{id}/set-main", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /api/admin/cards/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "404" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	r, token := setupRouter(t, mux)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "set main", method: http.MethodPut, path: "/api/v1/cards/3/set-main", expectedStatus: http.StatusOK},
		{name: "delete", method: http.MethodDelete, path: "/api/v1/cards/3", expectedStatus: http.StatusOK},
		{name: "delete missing", method: http.MethodDelete, path: "/api/v1/cards/404", expectedStatus: http.StatusNotFound},
		{name: "bad id", method: http.MethodDelete, path: "/api/v1/cards/x", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(t, r, tt.method, tt.path, token, nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	assert.Len(t, testutil.Actions(t), 2)
}

func TestListCardsRemoteUnauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/cards", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r, token := setupRouter(t, mux)

	w := testutil.Do(t, r, http.MethodGet, "/api/v1/cards", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := testutil.Decode(t, w, nil)
	assert.Equal(t, "Session expired or invalid credentials", resp.Message)
}
