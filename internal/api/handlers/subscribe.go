package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/services"
	"github.com/upgradehq/upgrade-backend/internal/utils"
)

type SubscribeHandler struct {
	subscriberService *services.SubscriberService
}

func NewSubscribeHandler(subscriberService *services.SubscriberService) *SubscribeHandler {
	return &SubscribeHandler{subscriberService: subscriberService}
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Valid email is required")
		return
	}

	if err := h.subscriberService.Subscribe(c.Request.Context(), req.Email); err != nil {
		utils.SendServiceError(c, "Failed to subscribe", err)
		return
	}

	utils.SendCreated(c, "Successfully subscribed to newsletter", nil)
}

// Unsubscribe accepts either a JSON body with an email or a token query
// parameter from the email link.
func (h *SubscribeHandler) Unsubscribe(c *gin.Context) {
	token := c.Query("token")

	var req subscribeRequest
	if token == "" {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendValidationError(c, "Email or token is required")
			return
		}
	}

	if err := h.subscriberService.Unsubscribe(c.Request.Context(), req.Email, token); err != nil {
		utils.SendServiceError(c, "Failed to unsubscribe", err)
		return
	}

	utils.SendSuccess(c, "Successfully unsubscribed", nil)
}
