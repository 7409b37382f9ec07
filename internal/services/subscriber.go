package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/upgradehq/upgrade-backend/internal/errs"
	"github.com/upgradehq/upgrade-backend/internal/models"
	"github.com/upgradehq/upgrade-backend/internal/utils"
	"github.com/upgradehq/upgrade-backend/pkg/logger"
	"gorm.io/gorm"
)

// SubscriberService keeps the newsletter list. Unsubscribing deactivates
// rather than deletes, so re-subscribing the same address reactivates it.
type SubscriberService struct {
	db    *gorm.DB
	email *EmailService
}

func NewSubscriberService(db *gorm.DB, email *EmailService) *SubscriberService {
	return &SubscriberService{db: db, email: email}
}

func (s *SubscriberService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: valid email is required", errs.ErrValidation)
	}

	var existing models.Subscriber
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Active {
			return fmt.Errorf("%w: email %s already subscribed", errs.ErrConflict, email)
		}
		if err := s.db.WithContext(ctx).Model(&existing).Update("active", true).Error; err != nil {
			return fmt.Errorf("failed to reactivate subscription: %v", err)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber := models.Subscriber{
			Email:            email,
			Active:           true,
			UnsubscribeToken: uuid.NewString(),
		}
		if err := s.db.WithContext(ctx).Create(&subscriber).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: email %s already subscribed", errs.ErrConflict, email)
			}
			return fmt.Errorf("failed to create subscriber: %v", err)
		}

		// Best effort: the subscription stands even if the greeting fails.
		go func() {
			if err := s.email.SendWelcomeEmail(subscriber.Email, subscriber.UnsubscribeToken); err != nil {
				logger.Warnf("failed to send welcome email to %s: %v", subscriber.Email, err)
			}
		}()
		return nil
	default:
		return fmt.Errorf("failed to look up subscriber: %v", err)
	}
}

// Unsubscribe deactivates by email or by the token from the email link.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email, token string) error {
	query := s.db.WithContext(ctx).Model(&models.Subscriber{})
	switch {
	case token != "":
		query = query.Where("unsubscribe_token = ?", token)
	case email != "":
		query = query.Where("email = ?", strings.ToLower(strings.TrimSpace(email)))
	default:
		return fmt.Errorf("%w: email or token is required", errs.ErrValidation)
	}

	result := query.Update("active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to unsubscribe: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no matching subscriber", errs.ErrNotFound)
	}
	return nil
}
