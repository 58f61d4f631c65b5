package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"poojaconnect/models"
	"poojaconnect/services/booking"
	"poojaconnect/services/priest"
	"poojaconnect/utils"
)

// AdminHandler exposes the operator endpoints for bookings and the priest
// roster.
type AdminHandler struct {
	Bookings booking.BookingService
	Priests  priest.PriestService
	Logger   *zap.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(bookings booking.BookingService, priests priest.PriestService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Priests: priests, Logger: logger}
}

// ListBookingsHandler lists all bookings, newest first.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListBookings(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler applies a status and/or priest-assignment update.
func (h *AdminHandler) UpdateBookingHandler(c *gin.Context) {
	id := c.Param("id")
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}

	record, err := h.Bookings.UpdateBooking(c.Request.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		case errors.Is(err, booking.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking status", err.Error())
		default:
			h.Logger.Error("Failed to update booking", zap.String("bookingId", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking", "")
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListPriestsHandler lists the full priest roster.
func (h *AdminHandler) ListPriestsHandler(c *gin.Context) {
	priests, err := h.Priests.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list priests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch priests", "")
		return
	}
	c.JSON(http.StatusOK, priests)
}

// CreatePriestHandler creates a priest record with optional zone coverage.
func (h *AdminHandler) CreatePriestHandler(c *gin.Context) {
	var input priest.PriestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid priest payload", err.Error())
		return
	}

	record, err := h.Priests.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, priest.ErrMissingFields):
			utils.JSONError(c, http.StatusBadRequest, "Missing required fields", "")
		case errors.Is(err, priest.ErrUnknownZone):
			utils.JSONError(c, http.StatusBadRequest, "Unknown primary zone", "")
		default:
			h.Logger.Error("Failed to create priest", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create priest", "")
		}
		return
	}
	c.JSON(http.StatusCreated, record)
}
