package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk/internal/config"
	"hoteldesk/internal/middleware"
	"hoteldesk/internal/pkg/response"
)

const RefreshCookieName = "hd_refresh"

type Handler struct {
	service *Service
	cfg     *config.RuntimeConfig
}

func NewHandler(service *Service, cfg *config.RuntimeConfig) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes mounts the public auth endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.Refresh)
	}
}

// RegisterProtectedRoutes mounts the endpoints that need a session.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	h.setSessionCookies(c, session)
	response.Success(c, http.StatusOK, gin.H{"admin": session.Admin})
}

// Refresh handles POST /api/v1/auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	raw, _ := c.Cookie(RefreshCookieName)

	session, err := h.service.Refresh(c.Request.Context(), raw)
	if err != nil {
		if errors.Is(err, ErrInvalidRefresh) {
			h.clearSessionCookies(c)
			response.Error(c, http.StatusUnauthorized, "INVALID_REFRESH", "Session expired, log in again")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Refresh failed")
		return
	}

	h.setSessionCookies(c, session)
	response.Success(c, http.StatusOK, gin.H{"admin": session.Admin})
}

// Logout handles POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	raw, _ := c.Cookie(RefreshCookieName)
	if err := h.service.Logout(c.Request.Context(), raw); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Logout failed")
		return
	}

	h.clearSessionCookies(c)
	response.SuccessWithMessage(c, http.StatusOK, nil, "Logged out")
}

// Me handles GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	adminID := c.GetInt64("admin_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	admin, err := h.service.Me(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "ADMIN_NOT_FOUND", "Admin not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load admin")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

func (h *Handler) setSessionCookies(c *gin.Context, session *Session) {
	c.SetSameSite(sameSiteMode(h.cfg.CookieSameSite))
	c.SetCookie(middleware.AccessCookieName, session.AccessToken,
		int(h.cfg.JWTAccessTTL.Seconds()), h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
	c.SetCookie(RefreshCookieName, session.RefreshToken,
		int(h.cfg.RefreshTTL.Seconds()), h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
}

func (h *Handler) clearSessionCookies(c *gin.Context) {
	c.SetSameSite(sameSiteMode(h.cfg.CookieSameSite))
	c.SetCookie(middleware.AccessCookieName, "", -1, h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
	c.SetCookie(RefreshCookieName, "", -1, h.cfg.CookiePath, "", h.cfg.CookieSecure, true)
}

func sameSiteMode(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
