package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/upgradehq/upgrade-backend/internal/errs"
	"github.com/upgradehq/upgrade-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

// New returns a Store backed by the given gorm connection. The connection
// must be opened with TranslateError enabled so duplicate-key failures can
// be told apart from other errors.
func New(db *gorm.DB) Store {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &gormStore{db: db}
}

func (s *gormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) ProductExists(ctx context.Context, productID uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check product %d: %v", productID, err)
	}
	return count > 0, nil
}

func (s *gormStore) FindVote(ctx context.Context, userID, productID uint) (*models.Vote, error) {
	var vote models.Vote
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vote for user %d on product %d", errs.ErrNotFound, userID, productID)
		}
		return nil, fmt.Errorf("failed to find vote: %v", err)
	}
	return &vote, nil
}

func (s *gormStore) CreateVote(ctx context.Context, userID, productID uint) (*models.Vote, error) {
	vote := models.Vote{UserID: userID, ProductID: productID}
	if err := s.db.WithContext(ctx).Create(&vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %d already voted on product %d", errs.ErrConflict, userID, productID)
		}
		return nil, fmt.Errorf("failed to create vote: %v", err)
	}
	return &vote, nil
}

func (s *gormStore) DeleteVote(ctx context.Context, voteID uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Vote{}, voteID).Error; err != nil {
		return fmt.Errorf("failed to delete vote %d: %v", voteID, err)
	}
	return nil
}

func (s *gormStore) UpsertSavedProduct(ctx context.Context, userID, productID uint) error {
	entry := models.SavedProduct{UserID: userID, ProductID: productID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save product %d for user %d: %v", productID, userID, err)
	}
	return nil
}

func (s *gormStore) DeleteSavedProduct(ctx context.Context, userID, productID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.SavedProduct{}).Error
	if err != nil {
		return fmt.Errorf("failed to unsave product %d for user %d: %v", productID, userID, err)
	}
	return nil
}

type engagementRow struct {
	ProductID    uint
	VoteCount    int64
	CommentCount int64
}

func (s *gormStore) CountEngagement(ctx context.Context, productIDs []uint) (map[uint]EngagementCounts, error) {
	counts := make(map[uint]EngagementCounts, len(productIDs))
	if len(productIDs) == 0 {
		return counts, nil
	}

	// One round trip for the whole batch regardless of its size.
	query := `
		SELECT p.id AS product_id,
		       (SELECT COUNT(*) FROM votes v WHERE v.product_id = p.id) AS vote_count,
		       (SELECT COUNT(*) FROM comments c WHERE c.product_id = p.id) AS comment_count
		FROM products p
		WHERE p.id IN ?
	`

	var rows []engagementRow
	if err := s.db.WithContext(ctx).Raw(query, productIDs).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count engagement: %v", err)
	}

	for _, row := range rows {
		counts[row.ProductID] = EngagementCounts{
			VoteCount:    row.VoteCount,
			CommentCount: row.CommentCount,
		}
	}
	return counts, nil
}

func (s *gormStore) VotedProductIDs(ctx context.Context, userID uint, productIDs []uint) (map[uint]struct{}, error) {
	voted := make(map[uint]struct{}, len(productIDs))
	if len(productIDs) == 0 {
		return voted, nil
	}

	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("user_id = ? AND product_id IN ?", userID, productIDs).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list voted products for user %d: %v", userID, err)
	}

	for _, id := range ids {
		voted[id] = struct{}{}
	}
	return voted, nil
}

func (s *gormStore) FindComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: comment %d", errs.ErrNotFound, commentID)
		}
		return nil, fmt.Errorf("failed to find comment %d: %v", commentID, err)
	}
	return &comment, nil
}

func (s *gormStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	if comment.ParentID != nil {
		parent, err := s.FindComment(ctx, *comment.ParentID)
		if err != nil {
			return err
		}
		if parent.ProductID != comment.ProductID {
			return fmt.Errorf("%w: parent comment %d belongs to a different product", errs.ErrValidation, parent.ID)
		}
		if parent.IsReply() {
			return fmt.Errorf("%w: parent comment %d is itself a reply", errs.ErrValidation, parent.ID)
		}
	}

	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %v", err)
	}

	// Reload with the author so responses carry it.
	if err := s.db.WithContext(ctx).Preload("User").First(comment, comment.ID).Error; err != nil {
		return fmt.Errorf("failed to reload comment %d: %v", comment.ID, err)
	}
	return nil
}

func (s *gormStore) ListComments(ctx context.Context, productID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for product %d: %v", productID, err)
	}
	return comments, nil
}
