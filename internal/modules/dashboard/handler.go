package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hoteldesk/internal/pkg/response"
)

const dateQueryLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/summary", h.Summary)
	r.GET("/reports/summary", h.Report)
}

// Summary handles GET /api/v1/dashboard/summary
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard summary")
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// Report handles GET /api/v1/reports/summary?from=...&to=...
// The range defaults to the last 30 days.
func (h *Handler) Report(c *gin.Context) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateQueryLayout, v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "from must be YYYY-MM-DD")
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateQueryLayout, v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "to must be YYYY-MM-DD")
			return
		}
		to = t
	}
	if to.Before(from) {
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "to must not be before from")
		return
	}

	report, err := h.service.Report(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		return
	}
	response.Success(c, http.StatusOK, report)
}
