package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/api/middleware"
	"github.com/upgradehq/upgrade-backend/internal/services"
	"github.com/upgradehq/upgrade-backend/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetSavedProducts returns the caller's saved list, newest first.
func (h *UserHandler) GetSavedProducts(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	products, err := h.userService.SavedProducts(c.Request.Context(), userID)
	if err != nil {
		utils.SendServiceError(c, "Failed to retrieve saved list", err)
		return
	}

	utils.SendSuccess(c, "Saved list retrieved successfully", products)
}

// RemoveSavedProduct takes a product off the caller's saved list without
// touching their vote.
func (h *UserHandler) RemoveSavedProduct(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	productID, err := parseID(c, "product_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	if err := h.userService.RemoveSavedProduct(c.Request.Context(), userID, productID); err != nil {
		utils.SendServiceError(c, "Failed to remove saved product", err)
		return
	}

	utils.SendSuccess(c, "Product removed from saved list", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.SendServiceError(c, "Failed to update profile", err)
		return
	}

	utils.SendSuccess(c, "Profile updated successfully", user)
}
