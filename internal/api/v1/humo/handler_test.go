package humo_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payadmin-backend/internal/api/v1/humo"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/testutil"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/humo/newNumber", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, map[string]string{"message": "code sent"})
	})
	mux.HandleFunc("POST /api/humo/smscode", func(w http.ResponseWriter, r *http.Request) {
		var in models.HumoSMSCode
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		switch in.Code {
		case "11111":
			testutil.JSON(w, http.StatusOK, map[string]interface{}{
				"message": "password needed",
				"data":    map[string]string{"next": "POST /twostep", "hint": "cat name"},
			})
		case "22222":
			testutil.JSON(w, http.StatusOK, map[string]string{"message": "linked"})
		default:
			testutil.JSON(w, http.StatusBadRequest, map[string]string{"message": "wrong code"})
		}
	})
	mux.HandleFunc("POST /api/humo/twostep", func(w http.ResponseWriter, r *http.Request) {
		testutil.JSON(w, http.StatusOK, map[string]string{"message": "linked"})
	})
	mux.HandleFunc("GET /api/humo/active", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_photo"))
		testutil.JSON(w, http.StatusOK, []models.HumoAccount{{ID: "7", Phone: "998901234567", Status: "ACTIVE"}})
	})
	mux.HandleFunc("DELETE /api/humo/delete", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("phone") != "998901234567" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := humo.NewHandler(testutil.NewRemote(t, mux))
	return testutil.Router(t, func(rg *gin.RouterGroup) {
		humo.RegisterRoutes(rg, h)
	})
}

func TestHumoLoginSteps(t *testing.T) {
	r, token := setupRouter(t)

	w := testutil.Do(t, r, http.MethodPost, "/api/v1/humo/new-number", token, models.HumoPhone{Phone: "998901234567"})
	require.Equal(t, http.StatusOK, w.Code)

	tests := []struct {
		name           string
		code           string
		expectedStatus int
		needsTwoStep   bool
		hint           string
	}{
		{name: "two-step required", code: "11111", expectedStatus: http.StatusOK, needsTwoStep: true, hint: "cat name"},
		{name: "linked", code: "22222", expectedStatus: http.StatusOK},
		{name: "wrong code", code: "00000", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(t, r, http.MethodPost, "/api/v1/humo/sms-code", token, models.HumoSMSCode{Phone: "998901234567", Code: tt.code})
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var step humo.StepResponse
			testutil.Decode(t, w, &step)
			assert.Equal(t, tt.needsTwoStep, step.NeedsTwoStep)
			assert.Equal(t, tt.hint, step.Hint)
		})
	}

	w = testutil.Do(t, r, http.MethodPost, "/api/v1/humo/two-step", token, models.HumoTwoStep{Phone: "998901234567", Password: "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/v1/humo/two-step", token, `{"phone":"998901234567"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var actions []string
	for _, a := range testutil.Actions(t) {
		actions = append(actions, a.Action)
	}
	assert.Equal(t, []string{"new-number", "link", "link"}, actions)
}

func TestHumoAccounts(t *testing.T) {
	r, token := setupRouter(t)

	w := testutil.Do(t, r, http.MethodGet, "/api/v1/humo/active", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var accounts []models.HumoAccount
	testutil.Decode(t, w, &accounts)
	require.Len(t, accounts, 1)
	assert.Equal(t, "ACTIVE", accounts[0].Status)

	w = testutil.Do(t, r, http.MethodDelete, "/api/v1/humo?phone=998901234567", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodDelete, "/api/v1/humo", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, r, http.MethodDelete, "/api/v1/humo?phone=998900000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
