package bootstrap

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/recicla-contigo/backend/config"
	httpapi "github.com/recicla-contigo/backend/internal/api/http"
	"github.com/recicla-contigo/backend/internal/api/http/middleware"
	authhttp "github.com/recicla-contigo/backend/internal/auth/http"
	authmw "github.com/recicla-contigo/backend/internal/auth/middleware"
	authrepo "github.com/recicla-contigo/backend/internal/auth/repository"
	"github.com/recicla-contigo/backend/internal/auth/security"
	authservice "github.com/recicla-contigo/backend/internal/auth/service"
	"github.com/recicla-contigo/backend/internal/catalog"
	reporthttp "github.com/recicla-contigo/backend/internal/reports/http"
	reportrepo "github.com/recicla-contigo/backend/internal/reports/repository"
	reportservice "github.com/recicla-contigo/backend/internal/reports/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Cfg         *config.Config
	Log         *zap.Logger

	// DB is only used by the health probe; nil when the stores below are
	// not Postgres-backed.
	DB      *pgxpool.Pool
	Users   authrepo.Store
	Reports reportrepo.Store
	Catalog *catalog.Catalog
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(middleware.Metrics())
	r.Use(corsMiddleware(dep.Cfg.Server.AllowedOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", middleware.MetricsHandler())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "VENTANILLA RECICLA CONTIGO API - Cuidando nuestro planeta"})
	})

	hasher := security.NewPasswordHasher(security.DefaultArgon2Params())
	tokens := security.NewTokenManager(dep.Cfg.Auth.TokenSecret, dep.Cfg.Auth.TokenTTL)
	session := authmw.TokenAuth(tokens, dep.Cfg.Auth.RequireToken)

	api := r.Group("/api")

	authSvc := authservice.NewAuthService(dep.Users, hasher, tokens, dep.Log)
	authhttp.New(authSvc).Register(api, session)

	ledger := reportservice.NewLedger(dep.Reports, dep.Users, dep.Log)
	projection := reportservice.NewProjection(dep.Reports, dep.Users)
	reporthttp.New(ledger, projection).Register(api, session)

	catalog.NewHandler(dep.Catalog).Register(api)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")

	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
