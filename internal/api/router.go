// Package api is the HTTP surface: it maps routes to content, validation and the store,
// and alone decides which status code each outcome gets.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doctorprofile/profile-api/internal/store"
	"github.com/doctorprofile/profile-api/pkg/logger"
	"github.com/doctorprofile/profile-api/pkg/middleware"
)

// Assets resolves site media to a fetchable URL.
type Assets interface {
	PresignedURL(ctx context.Context, key string) (string, error)
}

// Deps is everything the routes need, injected once at startup.
type Deps struct {
	Store store.Store
	// Handle is nil when the database was never initialized.
	Handle         store.Handle
	DatabaseURLSet bool
	// Assets is optional; without it the photo route answers 404.
	Assets Assets
	// WriteLimiter, when set, guards the submission routes.
	WriteLimiter gin.HandlerFunc
}

// NewRouter builds the engine with open CORS, request logging, JSON panic
// recovery and every route registered.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.With("path", c.Request.URL.Path).Errorf("panic: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
	}))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})

	RegisterRoutes(r, deps)
	RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// RegisterRoutes wires the public API onto r.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	h := &Handler{deps: deps}

	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/profile", h.Profile)
	r.GET("/testimonials", h.Testimonials)
	r.GET("/test", h.Diagnostics)
	r.GET("/doctor.jpg", h.Photo)

	r.POST("/appointments", h.limited(h.CreateAppointment)...)
	r.POST("/contact", h.limited(h.CreateContact)...)
}
