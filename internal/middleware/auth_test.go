package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"payadmin-backend/internal/database"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/utils"
)

const testSecret = "test_secret"

func setupMockRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr
}

const testSessionID = "session-1"

type fakeSession struct {
	cred remote.Credential
	sid  string
}

func (f fakeSession) Current() (remote.Credential, string, bool) {
	return f.cred, f.sid, f.cred != ""
}

func (f fakeSession) IsAuthenticated() bool {
	return f.cred != ""
}

func TestAuthMiddleware(t *testing.T) {
	mr := setupMockRedis()
	defer mr.Close()

	gin.SetMode(gin.TestMode)

	validToken, _ := utils.GenerateToken(testSecret, "admin", testSessionID, time.Hour)
	expiredToken, _ := utils.GenerateToken(testSecret, "admin", testSessionID, -time.Hour)
	revokedToken, _ := utils.GenerateToken(testSecret, "admin", testSessionID, time.Hour)
	earlierToken, _ := utils.GenerateToken(testSecret, "admin", "session-0", time.Hour)
	unboundToken, _ := utils.GenerateToken(testSecret, "admin", "", time.Hour)
	mr.Set("denylist:"+revokedToken, "1")

	loggedIn := fakeSession{cred: "YWRtaW46c2VjcmV0", sid: testSessionID}

	tests := []struct {
		name           string
		authHeader     string
		session        fakeSession
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Authorization Header",
			session:        loggedIn,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "authorization header is required",
		},
		{
			name:           "Invalid Token Format",
			authHeader:     "InvalidToken",
			session:        loggedIn,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "bearer token not found",
		},
		{
			name:           "Invalid Token Signature",
			authHeader:     "Bearer invalid.token.signature",
			session:        loggedIn,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + expiredToken,
			session:        loggedIn,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "Revoked Token",
			authHeader:     "Bearer " + revokedToken,
			session:        loggedIn,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token has been revoked",
		},
		{
			name:           "Session Logged Out",
			authHeader:     "Bearer " + validToken,
			session:        fakeSession{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Session is logged out",
		},
		{
			name:           "Token From Earlier Session",
			authHeader:     "Bearer " + earlierToken,
			session:        loggedIn,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token belongs to an ended session",
		},
		{
			name:           "Token Without Session",
			authHeader:     "Bearer " + unboundToken,
			session:        loggedIn,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token belongs to an ended session",
		},
		{
			name:           "Authorized",
			authHeader:     "Bearer " + validToken,
			session:        loggedIn,
			expectedStatus: http.StatusOK,
			expectedBody:   "YWRtaW46c2VjcmV0 admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(AuthMiddleware(testSecret, tt.session))
			r.GET("/api/test", func(c *gin.Context) {
				c.String(http.StatusOK, string(Credential(c))+" "+Username(c))
			})

			req, _ := http.NewRequest(http.MethodGet, "/api/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus != http.StatusOK {
				var resp utils.Response
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Contains(t, resp.Message, tt.expectedBody)
			} else {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareRedisDown(t *testing.T) {
	mr := setupMockRedis()
	mr.Close()
	gin.SetMode(gin.TestMode)

	token, _ := utils.GenerateToken(testSecret, "admin", testSessionID, time.Hour)

	r := gin.New()
	r.Use(AuthMiddleware(testSecret, fakeSession{cred: "x", sid: testSessionID}))
	r.GET("/api/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
