package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"galleria/internal/models"
	"galleria/internal/services"
)

type AuthHandler struct {
	registration *services.RegistrationService
}

func NewAuthHandler(registration *services.RegistrationService) *AuthHandler {
	return &AuthHandler{registration: registration}
}

func (h *AuthHandler) SendVerificationCode(c *gin.Context) {
	var req models.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registration.RequestCode(req.Email); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		}
		log.Printf("[auth][send-code] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent successfully"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.registration.Register(req.Username, req.Email, req.Password, req.VerificationCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		case errors.Is(err, services.ErrInvalidOrExpiredCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired verification code"})
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		default:
			log.Printf("[auth][register] failed for %q: %v", req.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.registration.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrIncorrectCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect username or password"})
			return
		}
		log.Printf("[auth][login] failed for %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
