package routes

import (
	"time"

	"labreserve/handlers"
	"labreserve/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterReservationRoutes registers the list/append endpoint at the root path.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxPerMin int) {
	r.GET("/", hb.ListReservationsHandler)
	r.POST("/", middleware.RateLimitMiddleware(maxPerMin), hb.CreateReservationHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxPerMin int) {
	// The reservation page calls the store from the browser.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterReservationRoutes(r, hb, maxPerMin)
	RegisterHealthRoute(r, hb)
}
