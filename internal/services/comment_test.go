package services

import (
	"context"
	"testing"

	"github.com/upgradehq/upgrade-backend/internal/errs"
)

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	svc := NewCommentService(newFakeStore(1))

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.AddComment(context.Background(), 10, 1, content, nil)
		if !errs.IsValidation(err) {
			t.Errorf("content %q: expected validation error, got %v", content, err)
		}
	}
}

func TestAddCommentUnknownProduct(t *testing.T) {
	svc := NewCommentService(newFakeStore())

	_, err := svc.AddComment(context.Background(), 10, 99, "hello", nil)
	if !errs.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAddCommentMissingParent(t *testing.T) {
	svc := NewCommentService(newFakeStore(1))

	missing := uint(42)
	_, err := svc.AddComment(context.Background(), 10, 1, "hello", &missing)
	if !errs.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAddCommentCrossProductParent(t *testing.T) {
	svc := NewCommentService(newFakeStore(1, 2))
	ctx := context.Background()

	parent, err := svc.AddComment(ctx, 10, 1, "on product one", nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.AddComment(ctx, 11, 2, "reply across products", &parent.ID)
	if !errs.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

// Replying to a reply must not deepen the thread: the new comment is
// attached to the reply's top-level parent instead.
func TestReplyToReplyIsFlattened(t *testing.T) {
	svc := NewCommentService(newFakeStore(1))
	ctx := context.Background()

	top, err := svc.AddComment(ctx, 10, 1, "top level", nil)
	if err != nil {
		t.Fatal(err)
	}
	reply, err := svc.AddComment(ctx, 11, 1, "first reply", &top.ID)
	if err != nil {
		t.Fatal(err)
	}
	if reply.ParentID == nil || *reply.ParentID != top.ID {
		t.Fatalf("reply should have parent %d, got %v", top.ID, reply.ParentID)
	}

	deep, err := svc.AddComment(ctx, 12, 1, "reply to the reply", &reply.ID)
	if err != nil {
		t.Fatal(err)
	}
	if deep.ParentID == nil || *deep.ParentID != top.ID {
		t.Errorf("reply-to-reply should be reparented onto %d, got %v", top.ID, deep.ParentID)
	}
}

func TestGetThreadOrdering(t *testing.T) {
	svc := NewCommentService(newFakeStore(1))
	ctx := context.Background()

	first, err := svc.AddComment(ctx, 10, 1, "older thread", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddComment(ctx, 11, 1, "early reply", &first.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddComment(ctx, 12, 1, "late reply", &first.ID); err != nil {
		t.Fatal(err)
	}
	second, err := svc.AddComment(ctx, 13, 1, "newer thread", nil)
	if err != nil {
		t.Fatal(err)
	}

	thread, err := svc.GetThread(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(thread) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(thread))
	}
	// Top-level comments surface newest first.
	if thread[0].ID != second.ID || thread[1].ID != first.ID {
		t.Errorf("top-level order wrong: got [%d, %d], want [%d, %d]",
			thread[0].ID, thread[1].ID, second.ID, first.ID)
	}
	// Replies read chronologically inside a thread.
	replies := thread[1].Replies
	if len(replies) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(replies))
	}
	if replies[0].Content != "early reply" || replies[1].Content != "late reply" {
		t.Errorf("replies out of conversational order: %q then %q", replies[0].Content, replies[1].Content)
	}
	if len(thread[0].Replies) != 0 {
		t.Errorf("newer thread should have no replies, got %d", len(thread[0].Replies))
	}
}

// Full scenario: one user votes, comments land with a reply, and both the
// annotated counts and the assembled thread line up.
func TestVoteCommentThreadScenario(t *testing.T) {
	st := newFakeStore(1)
	votes := NewVoteService(st)
	comments := NewCommentService(st)
	aggregation := NewAggregationService(st)
	ctx := context.Background()

	userA, userB := uint(10), uint(11)

	voted, err := votes.Toggle(ctx, userA, 1)
	if err != nil || !voted {
		t.Fatalf("vote failed: voted=%v err=%v", voted, err)
	}

	great, err := comments.AddComment(ctx, userA, 1, "great", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := comments.AddComment(ctx, userB, 1, "thanks", &great.ID); err != nil {
		t.Fatal(err)
	}

	forA, err := aggregation.Annotate(ctx, productBatch(1), &userA)
	if err != nil {
		t.Fatal(err)
	}
	if forA[0].VoteCount != 1 || !forA[0].HasVoted {
		t.Errorf("viewer A: want voteCount=1 hasVoted=true, got %d/%v", forA[0].VoteCount, forA[0].HasVoted)
	}
	if forA[0].CommentCount != 2 {
		t.Errorf("want commentCount=2, got %d", forA[0].CommentCount)
	}

	forB, err := aggregation.Annotate(ctx, productBatch(1), &userB)
	if err != nil {
		t.Fatal(err)
	}
	if forB[0].HasVoted {
		t.Error("viewer B never voted, hasVoted should be false")
	}

	thread, err := comments.GetThread(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(thread) != 1 {
		t.Fatalf("expected one discussion, got %d", len(thread))
	}
	if thread[0].Content != "great" {
		t.Errorf("top-level comment should be %q, got %q", "great", thread[0].Content)
	}
	if len(thread[0].Replies) != 1 || thread[0].Replies[0].Content != "thanks" {
		t.Errorf("expected single reply %q, got %+v", "thanks", thread[0].Replies)
	}
}
