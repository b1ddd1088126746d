package handler

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/Souvik9205/KomyuLink/internal/auth/service"
	"github.com/Souvik9205/KomyuLink/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the session token cookie issued on verify/login.
	CookieName = "token"

	// cookieTTL mirrors the token's own 3-day validity. The two are
	// kept in lockstep by convention, not derived from each other.
	cookieTTL = 3 * 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService is the orchestrator surface the handlers depend on.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) service.Result
	Verify(ctx context.Context, email, code string) service.Result
	Login(ctx context.Context, email, password string) service.Result
	ResendOTP(ctx context.Context, email string) service.Result
	CleanupOTP(ctx context.Context, email string) (int, error)
}

type Handler struct {
	auth         AuthService
	cookieDomain string
}

func NewHandler(auth AuthService, cookieDomain string) *Handler {
	return &Handler{
		auth:         auth,
		cookieDomain: cookieDomain,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	grp := r.Group("/api/auth")
	grp.POST("/register", h.Register)
	grp.POST("/verify", h.Verify)
	grp.POST("/login", h.Login)
	grp.POST("/user/resend-otp", h.ResendOTP)
	grp.GET("/logout", h.Logout)

	r.GET("/api/cleanup/otp/:email", h.CleanupOTP)

	for _, route := range r.Routes() {
		logger.Info("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}
}

func (h *Handler) Logout(c *gin.Context) {
	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) CleanupOTP(c *gin.Context) {
	email := c.Param("email")

	n, err := h.auth.CleanupOTP(c.Request.Context(), email)
	if err != nil {
		logger.Error("otp cleanup failed", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.Info("otp cleanup", map[string]any{"email": email, "removed": n})
	c.String(http.StatusOK, "OTP cleaned up for %s", email)
}

// respond writes the orchestrator result as the JSON message contract.
func respond(c *gin.Context, res service.Result) {
	c.JSON(res.Status.HTTP(), gin.H{"message": res.Message})
}

func (h *Handler) setTokenCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		Expires:  time.Now().Add(cookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearTokenCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
