package router

import (
	"net/http"
	"time"

	"github.com/acadra/gradebook-backend/internal/config"
	"github.com/acadra/gradebook-backend/internal/handler"
	"github.com/acadra/gradebook-backend/internal/middleware"
	"github.com/acadra/gradebook-backend/internal/response"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Student *handler.StudentHandler
	Catalog *handler.CatalogHandler
	Result  *handler.ResultHandler
	Import  *handler.ImportHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for bulk imports (5 uploads per minute per IP); every
	// upload ends with a full-population ranking pass.
	importLimiter := middleware.NewRateLimiter(5, time.Minute)

	api := router.Group("/api/v1")
	{
		// ─── Students ──────────────────────────────────────────────────
		api.POST("/students", handlers.Student.Create)
		api.GET("/students", handlers.Student.List)
		api.GET("/students/:roll", handlers.Student.Get)
		api.GET("/students/:roll/ranks", handlers.Result.GetRanks)

		// ─── Results ───────────────────────────────────────────────────
		api.POST("/students/:roll/results", handlers.Result.SubmitMarks)
		api.GET("/students/:roll/results", handlers.Result.GetMarks)

		// ─── Course catalogs ───────────────────────────────────────────
		api.POST("/courses", handlers.Catalog.CreateCourses)
		api.GET("/courses", handlers.Catalog.GetCourses)

		// ─── Leaderboards (cacheable for 30s) ──────────────────────────
		boards := api.Group("/leaderboard")
		boards.Use(middleware.CacheControl(30))
		{
			boards.GET("/cgpa", handlers.Result.TopCGPA)
			boards.GET("/sgpa", handlers.Result.TopSGPA)
		}

		// ─── Bulk import ───────────────────────────────────────────────
		api.POST("/imports/results", importLimiter.Middleware(), handlers.Import.ImportResults)
	}

	return router
}
