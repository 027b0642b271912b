package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payadmin-backend/config"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/session"
	"payadmin-backend/internal/testutil"
)

func newTestRouter(t *testing.T, staticDir string) (*gin.Engine, *session.Manager) {
	gin.SetMode(gin.TestMode)
	testutil.SetupStores(t)

	valid := "Basic " + string(session.EncodeBasic("admin", "secret"))
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != valid {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(upstream.Close)

	client := remote.NewClient(upstream.URL+"/api", 5*time.Second)
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	mgr := session.NewManager(client, store, session.Options{})
	t.Cleanup(mgr.Wait)

	cfg := &config.Config{
		JWTSecret:   testutil.JWTSecret,
		JWTTTL:      time.Hour,
		CORSOrigins: []string{"http://localhost:5173"},
		StaticDir:   staticDir,
	}
	return NewRouter(Deps{Config: cfg, API: client, Sessions: mgr}), mgr
}

func TestPageGuards(t *testing.T) {
	r, _ := newTestRouter(t, "")

	tests := []struct {
		name             string
		path             string
		expectedStatus   int
		expectedLocation string
	}{
		{name: "login reachable", path: "/login", expectedStatus: http.StatusOK},
		{name: "home guarded", path: "/", expectedStatus: http.StatusFound, expectedLocation: "/login"},
		{name: "config detail guarded", path: "/oson-configs/3", expectedStatus: http.StatusFound, expectedLocation: "/login"},
		{name: "unknown page", path: "/nope", expectedStatus: http.StatusFound, expectedLocation: "/login"},
		{name: "unknown api path", path: "/api/v1/nope", expectedStatus: http.StatusNotFound},
		{name: "api requires token", path: "/api/v1/cards", expectedStatus: http.StatusUnauthorized},
		{name: "status is public", path: "/api/v1/auth/status", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.Do(t, r, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
		})
	}
}

func TestLoggedInFlow(t *testing.T) {
	r, mgr := newTestRouter(t, "")

	w := testutil.Do(t, r, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.True(t, mgr.IsAuthenticated())
	var login struct {
		Token string `json:"token"`
	}
	testutil.Decode(t, w, &login)

	w = testutil.Do(t, r, http.MethodGet, "/login", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = testutil.Do(t, r, http.MethodGet, "/transactions", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/somewhere", "", nil)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = testutil.Do(t, r, http.MethodGet, "/api/v1/cards", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticPages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>panel</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static", "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "js", "main.js"), []byte("console.log(1)"), 0o644))

	r, _ := newTestRouter(t, dir)

	w := testutil.Do(t, r, http.MethodGet, "/login", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "panel")

	w = testutil.Do(t, r, http.MethodGet, "/static/js/main.js", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())
}
