package whatsapp

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type InboundMessageRequest struct {
	Phone      string `json:"phone" binding:"required"`
	Message    string `json:"message" binding:"required"`
	SenderType string `json:"sender_type" binding:"required,oneof=ai user"`
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	wa := r.Group("/whatsapp")
	{
		wa.GET("/users", h.ListConversations)
		wa.GET("/messages/:phone", h.GetMessages)
		wa.POST("/messages", h.InboundMessage)
		wa.GET("/ws", h.Websocket)
	}
}

// ListConversations handles GET /api/v1/whatsapp/users
func (h *Handler) ListConversations(c *gin.Context) {
	conversations, err := h.service.ListConversations(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch conversations")
		return
	}
	response.List(c, http.StatusOK, len(conversations), conversations)
}

// GetMessages handles GET /api/v1/whatsapp/messages/:phone
func (h *Handler) GetMessages(c *gin.Context) {
	msgs, err := h.service.GetMessages(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch messages")
		return
	}
	response.List(c, http.StatusOK, len(msgs), msgs)
}

// InboundMessage handles POST /api/v1/whatsapp/messages, the ingest
// endpoint the bot webhook posts to.
func (h *Handler) InboundMessage(c *gin.Context) {
	var req InboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	m, err := h.service.RecordMessage(c.Request.Context(), req.Phone, req.Message, domain.SenderType(req.SenderType))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record message")
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// Websocket handles GET /api/v1/whatsapp/ws. New inbound messages are
// pushed to the socket until the client disconnects.
func (h *Handler) Websocket(c *gin.Context) {
	adminID := c.GetInt64("admin_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(adminID, conn)
	defer h.hub.Unregister(adminID)

	// drain control frames; the viewer never sends data
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
