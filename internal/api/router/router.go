package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/config"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/api/handler"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/api/middleware"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/internal/model"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/jwt"
	"github.com/BacemBenSoui/HACKATHON-2026-FNCT-FIN/pkg/redis"
)

// Setup builds the Gin engine with all routes.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public
		v1.GET("/catalog", h.Catalog.Get)

		auth := v1.Group("/auth")
		{
			// credential endpoints are brute-force targets
			loginLimiter := middleware.RateLimit(rdb, 10, time.Minute)
			auth.POST("/register", loginLimiter, h.Auth.Register)
			auth.POST("/login", loginLimiter, h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// authenticated
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			profiles := authorized.Group("/profiles")
			{
				profiles.GET("/me", h.Profile.GetMe)
				profiles.PUT("/me", h.Profile.UpdateMe)
			}

			teams := authorized.Group("/teams")
			{
				teams.GET("", h.Team.List)
				teams.POST("", h.Team.Create)
				teams.GET("/:id", h.Team.Get)
				teams.POST("/:id/apply", h.Team.Apply)
				teams.GET("/:id/requests", h.Team.ListRequests)
				teams.POST("/:id/submit", h.Team.Submit)
			}

			joinRequests := authorized.Group("/join-requests")
			{
				joinRequests.POST("/:id/accept", h.Team.Accept)
				joinRequests.POST("/:id/reject", h.Team.Reject)
			}

			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				admin.GET("/teams", h.Admin.ListTeams)
				admin.GET("/teams/:id", h.Admin.GetTeam)
				admin.POST("/teams/:id/decision", h.Admin.Decide)
				admin.GET("/teams/:id/decision-mail", h.Admin.DecisionMail)
				admin.GET("/export/candidates", h.Export.Candidates)
			}
		}
	}

	return r
}
