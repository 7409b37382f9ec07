package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/api/middleware"
	"github.com/upgradehq/upgrade-backend/internal/services"
	"github.com/upgradehq/upgrade-backend/internal/utils"
)

type VoteHandler struct {
	voteService *services.VoteService
}

func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

type toggleVoteResponse struct {
	Voted bool `json:"voted"`
}

// ToggleVote flips the caller's vote on a product.
func (h *VoteHandler) ToggleVote(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	productID, err := parseID(c, "product_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	voted, err := h.voteService.Toggle(c.Request.Context(), userID, productID)
	if err != nil {
		utils.SendServiceError(c, "Failed to toggle vote", err)
		return
	}

	message := "Vote removed"
	if voted {
		message = "Vote added"
	}
	utils.SendSuccess(c, message, toggleVoteResponse{Voted: voted})
}
