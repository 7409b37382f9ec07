package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/upgradehq/upgrade-backend/internal/models"
)

func productBatch(ids ...uint) []models.Product {
	products := make([]models.Product, len(ids))
	for i, id := range ids {
		products[i] = models.Product{ID: id}
	}
	return products
}

func TestAnnotatePreservesOrderAndZeroFills(t *testing.T) {
	st := newFakeStore(1, 2, 3)
	svc := NewAggregationService(st)
	ctx := context.Background()

	// Product 2 gets a vote and a comment; 1 and 3 stay untouched.
	if _, err := st.CreateVote(ctx, 10, 2); err != nil {
		t.Fatal(err)
	}
	if err := st.CreateComment(ctx, &models.Comment{Content: "nice", UserID: 10, ProductID: 2}); err != nil {
		t.Fatal(err)
	}

	viewer := uint(10)
	annotated, err := svc.Annotate(ctx, productBatch(3, 2, 1), &viewer)
	if err != nil {
		t.Fatalf("annotate failed: %v", err)
	}

	if len(annotated) != 3 {
		t.Fatalf("expected 3 products, got %d", len(annotated))
	}
	gotOrder := []uint{annotated[0].ID, annotated[1].ID, annotated[2].ID}
	if !reflect.DeepEqual(gotOrder, []uint{3, 2, 1}) {
		t.Errorf("output order %v does not match input order", gotOrder)
	}

	if annotated[0].VoteCount != 0 || annotated[0].CommentCount != 0 {
		t.Errorf("product without engagement should have zero counts, got %+v", annotated[0])
	}
	if annotated[1].VoteCount != 1 || annotated[1].CommentCount != 1 {
		t.Errorf("expected counts 1/1 for product 2, got %+v", annotated[1])
	}
	if !annotated[1].HasVoted {
		t.Error("viewer voted on product 2, HasVoted should be true")
	}
	if annotated[0].HasVoted || annotated[2].HasVoted {
		t.Error("viewer did not vote on products 1 and 3")
	}
}

func TestAnnotateAnonymousViewer(t *testing.T) {
	st := newFakeStore(1)
	svc := NewAggregationService(st)
	ctx := context.Background()

	if _, err := st.CreateVote(ctx, 10, 1); err != nil {
		t.Fatal(err)
	}

	annotated, err := svc.Annotate(ctx, productBatch(1), nil)
	if err != nil {
		t.Fatal(err)
	}
	if annotated[0].HasVoted {
		t.Error("anonymous viewer must never see HasVoted=true")
	}
	if st.votedCalls != 0 {
		t.Errorf("anonymous annotate should skip the membership query, got %d calls", st.votedCalls)
	}
}

func TestAnnotateIsIdempotent(t *testing.T) {
	st := newFakeStore(1, 2)
	svc := NewAggregationService(st)
	ctx := context.Background()

	if _, err := st.CreateVote(ctx, 10, 1); err != nil {
		t.Fatal(err)
	}

	viewer := uint(10)
	first, err := svc.Annotate(ctx, productBatch(1, 2), &viewer)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Annotate(ctx, productBatch(1, 2), &viewer)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated annotate diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnnotateIssuesConstantQueries(t *testing.T) {
	st := newFakeStore(1, 2, 3, 4, 5, 6, 7, 8)
	svc := NewAggregationService(st)

	viewer := uint(10)
	if _, err := svc.Annotate(context.Background(), productBatch(1, 2, 3, 4, 5, 6, 7, 8), &viewer); err != nil {
		t.Fatal(err)
	}

	if st.countCalls != 1 {
		t.Errorf("expected exactly 1 bulk count query, got %d", st.countCalls)
	}
	if st.votedCalls != 1 {
		t.Errorf("expected exactly 1 bulk membership query, got %d", st.votedCalls)
	}
}

func TestAnnotateEmptyInput(t *testing.T) {
	st := newFakeStore()
	svc := NewAggregationService(st)

	annotated, err := svc.Annotate(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(annotated) != 0 {
		t.Errorf("expected empty result, got %d entries", len(annotated))
	}
	if st.countCalls != 0 {
		t.Errorf("empty input should not touch the store, got %d count calls", st.countCalls)
	}
}
