package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/api/middleware"
	"github.com/upgradehq/upgrade-backend/internal/services"
	"github.com/upgradehq/upgrade-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.SendServiceError(c, "Failed to sign up", err)
		return
	}

	utils.SendCreated(c, "Account created successfully", resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SendError(c, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		utils.SendServiceError(c, "Failed to log in", err)
		return
	}

	utils.SendSuccess(c, "Logged in successfully", resp)
}

func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req services.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	resp, err := h.authService.GoogleAuth(c.Request.Context(), req)
	if err != nil {
		utils.SendServiceError(c, "Failed to authenticate", err)
		return
	}

	utils.SendSuccess(c, "Logged in successfully", resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		utils.SendServiceError(c, "Failed to retrieve profile", err)
		return
	}

	utils.SendSuccess(c, "Profile retrieved successfully", user)
}
