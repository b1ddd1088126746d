package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "OTP and email are required"})
		return
	}
	if req.Email == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "OTP and email are required"})
		return
	}
	if !validEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	res := h.auth.Verify(c.Request.Context(), req.Email, req.OTP)
	if res.Token != "" {
		h.setTokenCookie(c, res.Token)
	}
	respond(c, res)
}
