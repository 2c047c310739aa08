package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	{
		payments.GET("", h.ListPayments)
		payments.GET("/:id", h.GetPayment)
		payments.PATCH("/:id", h.UpdatePayment)
	}
}

// ListPayments handles GET /api/v1/payments
func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch payments")
		return
	}
	response.List(c, http.StatusOK, len(payments), payments)
}

// GetPayment handles GET /api/v1/payments/:id
func (h *Handler) GetPayment(c *gin.Context) {
	p, err := h.service.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to fetch payment")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// UpdatePayment handles PATCH /api/v1/payments/:id
func (h *Handler) UpdatePayment(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	p, err := h.service.UpdatePayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err, "Failed to update payment")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, p, "Payment updated successfully")
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "PAYMENT_NOT_FOUND", "Payment not found")
	case errors.Is(err, ErrOverpaid):
		response.Error(c, http.StatusBadRequest, "OVERPAID", "Paid amount cannot exceed the bill amount")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment payload")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
