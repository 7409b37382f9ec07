// Package store is the persistence boundary of the engagement engine.
// All cross-record consistency (vote/saved-list coupling, comment nesting)
// leans on the transactional guarantees here, not on in-process locking.
package store

import (
	"context"

	"github.com/upgradehq/upgrade-backend/internal/models"
)

// EngagementCounts are the per-product derived numbers computed in bulk.
type EngagementCounts struct {
	VoteCount    int64 `json:"vote_count"`
	CommentCount int64 `json:"comment_count"`
}

// Store exposes the atomic operations the engagement engine needs. Every
// method either succeeds or returns one of the errs sentinels wrapped with
// context; nothing is retried at this layer.
type Store interface {
	// Transaction runs fn against a store whose operations share one
	// database transaction. A non-nil error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(Store) error) error

	ProductExists(ctx context.Context, productID uint) (bool, error)

	// FindVote returns errs.ErrNotFound when the user has no vote on the
	// product.
	FindVote(ctx context.Context, userID, productID uint) (*models.Vote, error)

	// CreateVote returns errs.ErrConflict when a vote for the pair already
	// exists. The unique (user_id, product_id) index makes this the
	// serialization point for concurrent toggles.
	CreateVote(ctx context.Context, userID, productID uint) (*models.Vote, error)

	DeleteVote(ctx context.Context, voteID uint) error

	// UpsertSavedProduct is a no-op when the entry already exists.
	UpsertSavedProduct(ctx context.Context, userID, productID uint) error

	// DeleteSavedProduct is a no-op when the entry is absent.
	DeleteSavedProduct(ctx context.Context, userID, productID uint) error

	// CountEngagement resolves vote and comment counts for a batch of
	// products in one query. Products without any engagement are simply
	// absent from the result; callers treat a missing key as zero.
	CountEngagement(ctx context.Context, productIDs []uint) (map[uint]EngagementCounts, error)

	// VotedProductIDs returns, out of productIDs, the ones the user has
	// voted on, in one query.
	VotedProductIDs(ctx context.Context, userID uint, productIDs []uint) (map[uint]struct{}, error)

	FindComment(ctx context.Context, commentID uint) (*models.Comment, error)

	// CreateComment inserts the comment. It rejects with errs.ErrValidation
	// any parent reference that crosses products or that points at a reply;
	// the comment service normally resolves both before calling, so this is
	// the write-time guard for the nesting invariant.
	CreateComment(ctx context.Context, comment *models.Comment) error

	// ListComments returns every comment on the product ordered oldest
	// first, author preloaded. Thread assembly happens in the comment
	// service.
	ListComments(ctx context.Context, productID uint) ([]models.Comment, error)
}
