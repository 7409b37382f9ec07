package services

import (
	"context"
	"fmt"

	"github.com/upgradehq/upgrade-backend/internal/errs"
	"github.com/upgradehq/upgrade-backend/internal/store"
	"github.com/upgradehq/upgrade-backend/pkg/logger"
)

// VoteService flips a user's vote on a product and keeps the saved list in
// step: the first vote saves the product, withdrawing the vote unsaves it.
type VoteService struct {
	store store.Store
}

func NewVoteService(st store.Store) *VoteService {
	return &VoteService{store: st}
}

// Toggle adds or removes the user's vote on the product and returns the
// resulting state. The vote mutation and the saved-list mutation run in one
// transaction so neither is ever visible without the other.
//
// A concurrent duplicate vote loses on the (user_id, product_id) unique
// index; that conflict is a benign race and resolves to voted=true, the
// same state the winner produced.
func (s *VoteService) Toggle(ctx context.Context, userID, productID uint) (bool, error) {
	exists, err := s.store.ProductExists(ctx, productID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("%w: product %d", errs.ErrNotFound, productID)
	}

	var voted bool
	err = s.store.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.FindVote(ctx, userID, productID)
		switch {
		case err == nil:
			// Unvote, and drop the saved-list entry with it.
			if err := tx.DeleteVote(ctx, existing.ID); err != nil {
				return err
			}
			if err := tx.DeleteSavedProduct(ctx, userID, productID); err != nil {
				return err
			}
			voted = false
			return nil
		case errs.IsNotFound(err):
			if _, err := tx.CreateVote(ctx, userID, productID); err != nil {
				return err
			}
			if err := tx.UpsertSavedProduct(ctx, userID, productID); err != nil {
				return err
			}
			voted = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		if errs.IsConflict(err) {
			// Lost a vote-on race. The winning request already created the
			// vote and the saved entry, so the user-visible state matches.
			logger.Warnf("concurrent vote on product %d by user %d, converging to voted", productID, userID)
			return true, nil
		}
		return false, err
	}

	return voted, nil
}
