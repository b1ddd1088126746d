package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type resendRequest struct {
	Email string `json:"email"`
}

func (h *Handler) ResendOTP(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}
	if !validEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	respond(c, h.auth.ResendOTP(c.Request.Context(), req.Email))
}
