// File: labreserve/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers registered by routes.
type HandlerBundle struct {
	// Reservation endpoints
	ListReservationsHandler  gin.HandlerFunc
	CreateReservationHandler gin.HandlerFunc

	// Operations
	HealthHandler gin.HandlerFunc
}
