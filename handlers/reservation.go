package handlers

import (
	"net/http"

	"labreserve/models"
	"labreserve/services/reservation"
	"labreserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the list/append reservation endpoint.
type ReservationHandler struct {
	Service reservation.ReservationService
	Logger  *zap.Logger
}

func NewReservationHandler(svc reservation.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: svc, Logger: logger}
}

// ListReservationsHandler replies with every stored reservation as a bare JSON array.
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	list, err := h.Service.List(c.Request.Context())
	if err != nil {
		requestLogger(c, h.Logger).Error("Failed to list reservations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reservations", err.Error())
		return
	}
	if list == nil {
		list = []models.Reservation{}
	}
	c.JSON(http.StatusOK, list)
}

// CreateReservationHandler stores the posted reservation and echoes the stored record.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var req models.Reservation
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	saved, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		if reservation.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid reservation", err.Error())
			return
		}
		requestLogger(c, h.Logger).Error("Failed to create reservation", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation", err.Error())
		return
	}

	c.JSON(http.StatusOK, saved)
}
