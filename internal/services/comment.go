package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/upgradehq/upgrade-backend/internal/errs"
	"github.com/upgradehq/upgrade-backend/internal/models"
	"github.com/upgradehq/upgrade-backend/internal/store"
)

// ThreadNode is one discussion: a top-level comment with its replies in
// conversational (oldest-first) order.
type ThreadNode struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// CommentService creates comments and assembles the two-level thread view.
type CommentService struct {
	store store.Store
}

func NewCommentService(st store.Store) *CommentService {
	return &CommentService{store: st}
}

// AddComment creates a comment or reply. Replying to a reply does not deepen
// the thread: the new comment is reparented onto the thread's top-level
// comment, so stored nesting never exceeds two levels.
func (s *CommentService) AddComment(ctx context.Context, authorID, productID uint, content string, parentID *uint) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", errs.ErrValidation)
	}

	exists, err := s.store.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: product %d", errs.ErrNotFound, productID)
	}

	if parentID != nil {
		parent, err := s.store.FindComment(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.ProductID != productID {
			return nil, fmt.Errorf("%w: parent comment %d belongs to a different product", errs.ErrValidation, parent.ID)
		}
		if parent.IsReply() {
			// Flatten: attach to the reply's own top-level parent.
			parentID = parent.ParentID
		}
	}

	comment := &models.Comment{
		Content:   content,
		UserID:    authorID,
		ProductID: productID,
		ParentID:  parentID,
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetThread returns the product's discussion as top-level nodes ordered
// newest first. Replies inside each node stay oldest first so a discussion
// reads chronologically even though fresh threads surface at the top.
func (s *CommentService) GetThread(ctx context.Context, productID uint) ([]ThreadNode, error) {
	comments, err := s.store.ListComments(ctx, productID)
	if err != nil {
		return nil, err
	}

	nodes := make([]ThreadNode, 0)
	index := make(map[uint]int) // comment ID -> position in nodes

	// ListComments is oldest-first, so parents always precede replies.
	for _, c := range comments {
		if c.ParentID == nil {
			index[c.ID] = len(nodes)
			nodes = append(nodes, ThreadNode{Comment: c, Replies: []models.Comment{}})
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			nodes[i].Replies = append(nodes[i].Replies, c)
		}
	}

	// Newest discussion first.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes, nil
}
