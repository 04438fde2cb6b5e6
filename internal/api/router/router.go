package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bataa715/Audit/config"
	"github.com/Bataa715/Audit/internal/api/handler"
	"github.com/Bataa715/Audit/internal/api/middleware"
	"github.com/Bataa715/Audit/internal/repository"
	"github.com/Bataa715/Audit/pkg/jwt"
	"github.com/Bataa715/Audit/pkg/redis"
)

// Public auth endpoints are rate limited per IP; everything else runs
// behind JWT and doesn't need it.
const (
	authRateLimit  = 20
	authRateWindow = time.Minute
)

// maxBodyBytes is the global request body ceiling, sized for the
// spreadsheet import; the public auth endpoints get a much tighter cap
// since they only ever carry small JSON bodies.
const (
	maxBodyBytes  = 10 << 20 // 10 MB
	authBodyBytes = 64 << 10 // 64 KB
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public auth and directory lookups
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, authRateLimit, authRateWindow))
		auth.Use(middleware.BodyLimit(authBodyBytes))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/set-password", h.Auth.SetPassword)
			auth.POST("/check-user", h.Auth.CheckUser)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/login-by-id", h.Auth.LoginByID)
			auth.POST("/admin-login", h.Auth.AdminLogin)
			auth.GET("/user-id-prefix/:department", h.Auth.UserIDPrefix)
			auth.GET("/search", h.Auth.Search)
			auth.GET("/departments/:department/users", h.Auth.UsersByDepartment)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/signup", middleware.AdminOnly(repo), h.Auth.Signup)

			// directory administration
			users := authorized.Group("/users")
			users.Use(middleware.AdminOnly(repo))
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
				users.PUT("/:id/status", h.User.UpdateStatus)
				users.PUT("/:id/tools", h.User.UpdateTools)
				users.POST("/import", h.User.Import)
			}

			// departments: reads for everyone, mutations admin-only
			departments := authorized.Group("/departments")
			{
				departments.GET("", h.Department.List)
				departments.GET("/name/:name", h.Department.GetByName)
				departments.GET("/:id", h.Department.Get)
				departments.POST("", middleware.AdminOnly(repo), h.Department.Create)
				departments.PUT("/:id", middleware.AdminOnly(repo), h.Department.Update)
				departments.DELETE("/:id", middleware.AdminOnly(repo), h.Department.Delete)
			}

			// fitness tool; the capability gate sits in the service layer
			fitness := authorized.Group("/fitness")
			{
				fitness.GET("/exercises", h.Fitness.ListExercises)
				fitness.POST("/exercises", h.Fitness.CreateExercise)
				fitness.DELETE("/exercises/:id", h.Fitness.DeleteExercise)
				fitness.GET("/workout-logs", h.Fitness.ListWorkoutLogs)
				fitness.POST("/workout-logs", h.Fitness.CreateWorkoutLog)
				fitness.DELETE("/workout-logs/:id", h.Fitness.DeleteWorkoutLog)
				fitness.GET("/body-stats", h.Fitness.ListBodyStats)
				fitness.POST("/body-stats", h.Fitness.CreateBodyStats)
				fitness.DELETE("/body-stats/:id", h.Fitness.DeleteBodyStats)
				fitness.GET("/dashboard", h.Fitness.Dashboard)
			}

			export := authorized.Group("/export")
			export.Use(middleware.AdminOnly(repo))
			{
				export.GET("/users", h.User.Export)
			}
		}
	}

	return r
}
