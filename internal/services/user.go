package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/upgradehq/upgrade-backend/internal/errs"
	"github.com/upgradehq/upgrade-backend/internal/models"
	"gorm.io/gorm"
)

// UserService covers the profile and the personal saved list.
type UserService struct {
	db          *gorm.DB
	aggregation *AggregationService
}

func NewUserService(db *gorm.DB, aggregation *AggregationService) *UserService {
	return &UserService{db: db, aggregation: aggregation}
}

type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

// SavedProducts returns the user's saved list newest-first, each product
// annotated with counts and the owner's voted flag.
func (s *UserService) SavedProducts(ctx context.Context, userID uint) ([]AnnotatedProduct, error) {
	var entries []models.SavedProduct
	err := s.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved list for user %d: %v", userID, err)
	}

	products := make([]models.Product, 0, len(entries))
	for _, entry := range entries {
		products = append(products, entry.Product)
	}

	return s.aggregation.Annotate(ctx, products, &userID)
}

// RemoveSavedProduct drops a product from the user's saved list. Removing
// an absent entry is a no-op, so the endpoint is idempotent. The vote, if
// any, stays; only unvoting couples the two.
func (s *UserService) RemoveSavedProduct(ctx context.Context, userID, productID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.SavedProduct{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove saved product %d for user %d: %v", productID, userID, err)
	}
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", errs.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to fetch user %d: %v", userID, err)
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile for user %d: %v", userID, err)
		}
	}
	return &user, nil
}
