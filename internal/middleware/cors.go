package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kybermartin/python-editor/internal/config"
)

// CORSMiddleware allows the origins listed in FRONTEND_URL. The default
// "*" admits any origin; since credentials are allowed, the wildcard is
// implemented by echoing the request origin rather than AllowAllOrigins.
func CORSMiddleware() gin.HandlerFunc {
	origins := config.AppConfig.AllowedOrigins()

	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
