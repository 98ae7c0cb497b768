package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// devOrigin is the Vite dev server the storefront runs on locally.
const devOrigin = "http://localhost:5173"

// CORSMiddleware allows the storefront web origins. Deployed origins are
// added via WEB_ORIGINS, a comma-separated list.
func CORSMiddleware() gin.HandlerFunc {
	origins := []string{devOrigin}
	for _, origin := range strings.Split(os.Getenv("WEB_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
