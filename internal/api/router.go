package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"payadmin-backend/config"
	_ "payadmin-backend/docs"
	"payadmin-backend/internal/api/v1/activity"
	"payadmin-backend/internal/api/v1/admins"
	"payadmin-backend/internal/api/v1/auth"
	"payadmin-backend/internal/api/v1/broadcast"
	"payadmin-backend/internal/api/v1/cards"
	"payadmin-backend/internal/api/v1/currency"
	"payadmin-backend/internal/api/v1/dashboard"
	"payadmin-backend/internal/api/v1/features"
	"payadmin-backend/internal/api/v1/humo"
	"payadmin-backend/internal/api/v1/logindevices"
	"payadmin-backend/internal/api/v1/lottery"
	"payadmin-backend/internal/api/v1/osonconfig"
	"payadmin-backend/internal/api/v1/platforms"
	"payadmin-backend/internal/api/v1/transactions"
	"payadmin-backend/internal/middleware"
	"payadmin-backend/internal/remote"
	"payadmin-backend/internal/services"
	"payadmin-backend/internal/session"
	"payadmin-backend/internal/utils"
)

// pagePaths are the client routes that need a logged in session.
var pagePaths = []string{
	"/",
	"/cards",
	"/platforms",
	"/transactions",
	"/lottery",
	"/oson-configs",
	"/oson-configs/:id",
	"/currency",
	"/login-devices",
	"/admins",
	"/broadcast",
	"/humo",
}

type Deps struct {
	Config   *config.Config
	API      *remote.Client
	Sessions *session.Manager
}

func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	tokens := services.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, auth.NewHandler(deps.Sessions, tokens))

		authorized := v1.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret, deps.Sessions))
		{
			cards.RegisterRoutes(authorized, cards.NewHandler(deps.API))
			platforms.RegisterRoutes(authorized, platforms.NewHandler(deps.API))
			transactions.RegisterRoutes(authorized, transactions.NewHandler(deps.API))
			lottery.RegisterRoutes(authorized, lottery.NewHandler(deps.API))
			admins.RegisterRoutes(authorized, admins.NewHandler(deps.API))
			broadcast.RegisterRoutes(authorized, broadcast.NewHandler(deps.API))
			currency.RegisterRoutes(authorized, currency.NewHandler(deps.API))
			logindevices.RegisterRoutes(authorized, logindevices.NewHandler(deps.API))
			dashboard.RegisterRoutes(authorized, dashboard.NewHandler(deps.API))
			osonconfig.RegisterRoutes(authorized, osonconfig.NewHandler(deps.API))
			humo.RegisterRoutes(authorized, humo.NewHandler(deps.API))
			features.RegisterRoutes(authorized, features.NewHandler(deps.API))
			activity.RegisterRoutes(authorized)
		}
	}

	registerPages(router, cfg.StaticDir, deps.Sessions)

	fallback := middleware.FallbackRedirect(deps.Sessions)
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Not found"))
			return
		}
		fallback(c)
	})

	return router
}

// registerPages mounts the client routes behind the session guard. Without a
// static dir the guarded routes answer with the session state only.
func registerPages(router *gin.Engine, staticDir string, sessions *session.Manager) {
	serve := func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("ok", gin.H{"state": sessions.State().String()}))
	}
	if staticDir != "" {
		router.Static("/static", filepath.Join(staticDir, "static"))
		index := filepath.Join(staticDir, "index.html")
		serve = func(c *gin.Context) {
			c.File(index)
		}
	}

	router.GET(middleware.LoginPath, middleware.RedirectIfLoggedIn(sessions), serve)
	guard := middleware.RequireLogin(sessions)
	for _, path := range pagePaths {
		router.GET(path, guard, serve)
	}
}
