// Package testutil wires handlers to a fake remote API for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"payadmin-backend/internal/database"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"
)

const (
	JWTSecret = "test_secret"
	// Credential is base64("admin:secret").
	Credential remote.Credential = "YWRtaW46c2VjcmV0"
	SessionID                    = "test-session"
)

type staticSession struct{}

func (staticSession) Current() (remote.Credential, string, bool) { return Credential, SessionID, true }

// NewRemote serves handler as the remote API under /api and returns a
// client for it. Requests without the test credential get 401.
func NewRemote(t *testing.T, handler http.Handler) *remote.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != Credential.Header() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return remote.NewClient(srv.URL+"/api", 5*time.Second)
}

// SetupStores points the database globals at in-memory sqlite and miniredis.
func SetupStores(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	mr, err := miniredis.Run()
	require.NoError(t, err)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		database.RedisClient.Close()
		database.RedisClient = nil
		database.DB = nil
		mr.Close()
	})
}

// Router mounts register under an authorized /api/v1 group and returns the
// engine with a valid bearer token.
func Router(t *testing.T, register func(*gin.RouterGroup)) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	SetupStores(t)

	token, err := utils.GenerateToken(JWTSecret, "admin", SessionID, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.Logger())
	authorized := r.Group("/api/v1")
	authorized.Use(middleware.AuthMiddleware(JWTSecret, staticSession{}))
	register(authorized)
	return r, token
}

// Do performs a request with a JSON body (nil for none).
func Do(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the response envelope, storing its data in out when
// out is not nil.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) utils.Response {
	t.Helper()

	var raw struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), w.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(raw.Data, out), string(raw.Data))
	}
	return utils.Response{Status: raw.Status, Message: raw.Message, Data: raw.Data}
}

// Actions returns the recorded activity log, oldest first.
func Actions(t *testing.T) []models.ActionLog {
	t.Helper()
	var logs []models.ActionLog
	require.NoError(t, database.DB.Order("created_at asc").Find(&logs).Error)
	return logs
}

// JSON writes v as a JSON response.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
