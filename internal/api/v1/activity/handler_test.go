package activity_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payadmin-backend/internal/api/v1/activity"
	"payadmin-backend/internal/services"
	"payadmin-backend/internal/testutil"
)

func TestListActions(t *testing.T) {
	r, token := testutil.Router(t, activity.RegisterRoutes)

	ctx := context.Background()
	services.RecordAction(ctx, services.Action{Action: "create", Resource: "cards", ResourceID: "1"})
	services.RecordAction(ctx, services.Action{Action: "delete", Resource: "cards", ResourceID: "1"})
	services.RecordAction(ctx, services.Action{Action: "create", Resource: "platforms", ResourceID: "9"})

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedTotal  int64
		expectedLen    int
	}{
		{name: "all", query: "", expectedStatus: http.StatusOK, expectedTotal: 3, expectedLen: 3},
		{name: "by resource", query: "?resource=cards", expectedStatus: http.StatusOK, expectedTotal: 2, expectedLen: 2},
		{name: "by action", query: "?resource=cards&action=delete", expectedStatus: http.StatusOK, expectedTotal: 1, expectedLen: 1},
		{name: "second page", query: "?page=2&limit=2", expectedStatus: http.StatusOK, expectedTotal: 3, expectedLen: 1},
		{name: "invalid page", query: "?page=0", expectedStatus: http.StatusBadRequest},
		{name: "limit too large", query: "?limit=1000", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(t, r, http.MethodGet, "/api/v1/activity"+tt.query, token, nil)
			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp activity.ActivityListResponse
			testutil.Decode(t, w, &resp)
			assert.Equal(t, tt.expectedTotal, resp.Total)
			assert.Len(t, resp.Actions, tt.expectedLen)
		})
	}
}

func TestListActionsEmpty(t *testing.T) {
	r, token := testutil.Router(t, func(rg *gin.RouterGroup) {
		activity.RegisterRoutes(rg)
	})

	w := testutil.Do(t, r, http.MethodGet, "/api/v1/activity", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actions":[]`)
}
