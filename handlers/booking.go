package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poojaconnect/models"
	"poojaconnect/services/booking"
	"poojaconnect/utils"
)

// BookingHandler exposes the public booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler accepts a booking request and runs the assignment
// engine. Deferred and confirmed bookings both return 201; the status field
// and message tell them apart.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking data", err.Error())
		return
	}

	record, message, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrPoojaNotFound):
			utils.JSONError(c, http.StatusBadRequest, "Invalid pooja selected", "")
		case errors.Is(err, booking.ErrZoneNotFound):
			utils.JSONError(c, http.StatusBadRequest, "Invalid zone selected", "")
		case errors.Is(err, booking.ErrInvalidTime):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking time", err.Error())
		default:
			h.Logger.Error("Failed to create booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": record,
		"message": message,
	})
}

// GetBookingHandler returns a booking with its pooja and zone context.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.Service.GetBookingDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("Failed to fetch booking", zap.String("bookingId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", "")
		return
	}
	c.JSON(http.StatusOK, detail)
}
