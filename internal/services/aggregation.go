package services

import (
	"context"

	"github.com/upgradehq/upgrade-backend/internal/models"
	"github.com/upgradehq/upgrade-backend/internal/store"
)

// AnnotatedProduct is a product decorated with its engagement numbers and
// the viewer-specific voted flag.
type AnnotatedProduct struct {
	models.Product
	VoteCount    int64 `json:"vote_count"`
	CommentCount int64 `json:"comment_count"`
	HasVoted     bool  `json:"has_voted"`
}

// AggregationService computes vote/comment counts and "has this viewer
// voted" over a batch of products without per-product queries.
type AggregationService struct {
	store store.Store
}

func NewAggregationService(st store.Store) *AggregationService {
	return &AggregationService{store: st}
}

// Annotate decorates products in place-order: the output sequence matches
// the input exactly, products with no engagement get zero counts. It issues
// one bulk count query, plus one bulk membership query when a viewer is
// present. An anonymous viewer (nil viewerID) never sees HasVoted true.
func (s *AggregationService) Annotate(ctx context.Context, products []models.Product, viewerID *uint) ([]AnnotatedProduct, error) {
	annotated := make([]AnnotatedProduct, 0, len(products))
	if len(products) == 0 {
		return annotated, nil
	}

	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	counts, err := s.store.CountEngagement(ctx, ids)
	if err != nil {
		return nil, err
	}

	voted := map[uint]struct{}{}
	if viewerID != nil {
		voted, err = s.store.VotedProductIDs(ctx, *viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range products {
		c := counts[p.ID] // zero value when the product has no rows
		_, hasVoted := voted[p.ID]
		annotated = append(annotated, AnnotatedProduct{
			Product:      p,
			VoteCount:    c.VoteCount,
			CommentCount: c.CommentCount,
			HasVoted:     hasVoted,
		})
	}
	return annotated, nil
}

// AnnotateOne is the single-product convenience used by the detail page.
func (s *AggregationService) AnnotateOne(ctx context.Context, product models.Product, viewerID *uint) (*AnnotatedProduct, error) {
	annotated, err := s.Annotate(ctx, []models.Product{product}, viewerID)
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}
