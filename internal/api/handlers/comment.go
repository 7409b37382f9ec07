package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/api/middleware"
	"github.com/upgradehq/upgrade-backend/internal/services"
	"github.com/upgradehq/upgrade-backend/internal/utils"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type addCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	productID, err := parseID(c, "product_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), userID, productID, req.Content, req.ParentID)
	if err != nil {
		utils.SendServiceError(c, "Failed to add comment", err)
		return
	}

	utils.SendCreated(c, "Comment added successfully", comment)
}

// GetThread returns the product's discussion, newest threads first.
func (h *CommentHandler) GetThread(c *gin.Context) {
	productID, err := parseID(c, "product_id")
	if err != nil {
		utils.SendValidationError(c, "Invalid product ID")
		return
	}

	thread, err := h.commentService.GetThread(c.Request.Context(), productID)
	if err != nil {
		utils.SendServiceError(c, "Failed to retrieve thread", err)
		return
	}

	utils.SendSuccess(c, "Thread retrieved successfully", thread)
}
