package broadcast_test

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payadmin-backend/internal/api/v1/broadcast"
	"payadmin-backend/internal/testutil"
)

func TestSendBroadcast(t *testing.T) {
	var mu sync.Mutex
	var sent []map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/broadcast/send", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mu.Lock()
		sent = append(sent, body)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	h := broadcast.NewHandler(testutil.NewRemote(t, mux))
	r, token := testutil.Router(t, func(rg *gin.RouterGroup) {
		broadcast.RegisterRoutes(rg, h)
	})

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedTime   interface{}
	}{
		{
			name:           "immediate ignores time",
			body:           `{"messageText":"Salom","scheduledTime":"2024-05-01T10:00"}`,
			expectedStatus: http.StatusOK,
			expectedTime:   nil,
		},
		{
			name:           "scheduled",
			body:           `{"messageText":"Salom","buttonText":"Open","buttonUrl":"https://t.me/bot","schedule":true,"scheduledTime":"2024-05-01T10:00:00"}`,
			expectedStatus: http.StatusOK,
			expectedTime:   "2024-05-01T10:00:00",
		},
		{name: "missing text", body: `{"buttonText":"Open"}`, expectedStatus: http.StatusBadRequest},
		{name: "bad url", body: `{"messageText":"x","buttonUrl":"not a url"}`, expectedStatus: http.StatusBadRequest},
		{name: "schedule without time", body: `{"messageText":"x","schedule":true}`, expectedStatus: http.StatusBadRequest},
		{name: "schedule with bad time", body: `{"messageText":"x","schedule":true,"scheduledTime":"tomorrow"}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu.Lock()
			before := len(sent)
			mu.Unlock()

			w := testutil.Do(t, r, http.MethodPost, "/api/v1/broadcast", token, tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			mu.Lock()
			defer mu.Unlock()
			if tt.expectedStatus != http.StatusOK {
				assert.Len(t, sent, before)
				return
			}
			require.Len(t, sent, before+1)
			last := sent[len(sent)-1]
			value, present := last["scheduledTime"]
			assert.True(t, present)
			assert.Equal(t, tt.expectedTime, value)
		})
	}
}
