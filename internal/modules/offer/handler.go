package offer

import (
	"errors"
	"net/http"
	"strconv"

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
	offers := r.Group("/offers")
	{
		offers.GET("", h.ListOffers)
		offers.GET("/:id", h.GetOffer)
		offers.POST("", h.CreateOffer)
		offers.PATCH("/:id", h.UpdateOffer)
		offers.DELETE("/:id", h.DeleteOffer)
	}
}

// ListOffers handles GET /api/v1/offers
func (h *Handler) ListOffers(c *gin.Context) {
	offers, err := h.service.ListOffers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch offers")
		return
	}
	response.List(c, http.StatusOK, len(offers), offers)
}

// GetOffer handles GET /api/v1/offers/:id
func (h *Handler) GetOffer(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	o, err := h.service.GetOffer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Failed to fetch offer")
		return
	}
	response.Success(c, http.StatusOK, o)
}

// CreateOffer handles POST /api/v1/offers
func (h *Handler) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	o, err := h.service.CreateOffer(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "Failed to create offer")
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, o, "Offer created successfully")
}

// UpdateOffer handles PATCH /api/v1/offers/:id
func (h *Handler) UpdateOffer(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	var req UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	o, err := h.service.UpdateOffer(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err, "Failed to update offer")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, o, "Offer updated successfully")
}

// DeleteOffer handles DELETE /api/v1/offers/:id
func (h *Handler) DeleteOffer(c *gin.Context) {
	id, ok := offerID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteOffer(c.Request.Context(), id); err != nil {
		writeError(c, err, "Failed to delete offer")
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, nil, "Offer deleted successfully")
}

func offerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid offer ID")
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "OFFER_NOT_FOUND", "Offer not found")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid offer payload")
	case errors.Is(err, ErrOverlappingOffer):
		response.Error(c, http.StatusConflict, "OFFER_OVERLAP", "An active offer already covers these dates for this room")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
