package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/check-availability", h.CheckAvailability)
	rg.GET("/bookings/upcoming", h.GetUpcoming)
	rg.GET("/bookings/checkins", h.GetTodayCheckIns)
	rg.GET("/bookings/checkouts", h.GetTodayCheckOuts)
	rg.GET("/bookings/:id", h.GetByID)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.PATCH("/bookings/:id/reschedule", h.Reschedule)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    b,
		"message": "Booking created successfully",
	})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	available, message, err := h.service.CheckAvailability(c.Request.Context(), req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		writeServiceError(c, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"available": available,
		"message":   message,
	})
}

func (h *Handler) GetUpcoming(c *gin.Context) {
	var from, to *time.Time
	if f, ok := parseDateQuery(c.Query("from")); ok {
		from = &f
	}
	if t, ok := parseDateQuery(c.Query("to")); ok {
		to = &t
	}

	bookings, err := h.service.GetUpcoming(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch bookings")
		return
	}

	response.List(c, http.StatusOK, len(bookings), bookings)
}

func (h *Handler) GetTodayCheckIns(c *gin.Context) {
	bookings, err := h.service.GetTodayCheckIns(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch today check-ins")
		return
	}

	response.List(c, http.StatusOK, len(bookings), bookings)
}

func (h *Handler) GetTodayCheckOuts(c *gin.Context) {
	bookings, err := h.service.GetTodayCheckOuts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch today check-outs")
		return
	}

	response.List(c, http.StatusOK, len(bookings), bookings)
}

func (h *Handler) GetByID(c *gin.Context) {
	b, err := h.service.GetByBookingID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Failed to fetch booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		writeServiceError(c, err, "Failed to update booking status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    b,
		"message": "Booking status updated",
	})
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.RescheduleBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    b,
		"message": "Booking rescheduled",
	})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking dates or guests")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrOverbooking):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, "INVALID_STATUS", "Booking cannot move to the requested status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func parseDateQuery(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
