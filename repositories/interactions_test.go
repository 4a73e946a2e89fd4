package repositories

import (
	"context"
	"errors"
	"testing"

	"blogapi/models"
)

func createPost(t *testing.T, repo *PostRepository) *models.Post {
	t.Helper()
	post := &models.Post{Title: "hello", Content: "world"}
	if err := repo.Create(context.Background(), post); err != nil {
		t.Fatalf("creating post: %v", err)
	}
	return post
}

func guestRecord(interactionType models.InteractionType, targetID, guestID string) *models.InteractionRecord {
	return &models.InteractionRecord{
		Role:     models.RoleGuest,
		Type:     interactionType,
		TargetID: targetID,
		GuestID:  &guestID,
	}
}

func postCounters(t *testing.T, repo *PostRepository, id string) (view, like, share int) {
	t.Helper()
	post, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("fetching post: %v", err)
	}
	return post.ViewCount, post.LikeCount, post.ShareCount
}

func TestInteractionIdempotency(t *testing.T) {
	for _, interactionType := range []models.InteractionType{models.InteractionView, models.InteractionLike} {
		t.Run(string(interactionType), func(t *testing.T) {
			db := newTestDB(t)
			posts := NewPostRepository(db)
			ledger := NewPostInteractionRepository(db)
			post := createPost(t, posts)

			for i := 0; i < 3; i++ {
				err := ledger.Create(context.Background(), guestRecord(interactionType, post.ID, "g1-1.2.3.4"))
				if err != nil {
					t.Fatalf("create attempt %d: %v", i, err)
				}
			}

			view, like, _ := postCounters(t, posts, post.ID)
			got := view
			if interactionType == models.InteractionLike {
				got = like
			}
			if got != 1 {
				t.Errorf("counter = %d, want 1 after repeated %s", got, interactionType)
			}

			records, err := ledger.GuestInteractions(context.Background(), interactionType, "g1-1.2.3.4", post.ID)
			if err != nil {
				t.Fatalf("reading interactions: %v", err)
			}
			if len(records) != 1 {
				t.Errorf("records = %d, want 1", len(records))
			}
		})
	}
}

func TestShareIsUnlimited(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ledger := NewPostInteractionRepository(db)
	post := createPost(t, posts)

	for i := 0; i < 3; i++ {
		err := ledger.Create(context.Background(), guestRecord(models.InteractionShare, post.ID, "g1-1.2.3.4"))
		if err != nil {
			t.Fatalf("share %d: %v", i, err)
		}
	}

	_, _, share := postCounters(t, posts, post.ID)
	if share != 3 {
		t.Errorf("shareCount = %d, want 3", share)
	}
}

func TestUnlikeReversesLike(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ledger := NewPostInteractionRepository(db)
	post := createPost(t, posts)
	ctx := context.Background()

	if err := ledger.Create(ctx, guestRecord(models.InteractionLike, post.ID, "g1-1.2.3.4")); err != nil {
		t.Fatalf("like: %v", err)
	}
	if err := ledger.Create(ctx, guestRecord(models.InteractionUnlike, post.ID, "g1-1.2.3.4")); err != nil {
		t.Fatalf("unlike: %v", err)
	}

	_, like, _ := postCounters(t, posts, post.ID)
	if like != 0 {
		t.Errorf("likeCount = %d, want 0 after unlike", like)
	}

	records, err := ledger.GuestInteractions(ctx, models.InteractionLike, "g1-1.2.3.4", post.ID)
	if err != nil {
		t.Fatalf("reading likes: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("like records = %d, want 0 after unlike", len(records))
	}

	// And the actor can like again afterwards.
	if err := ledger.Create(ctx, guestRecord(models.InteractionLike, post.ID, "g1-1.2.3.4")); err != nil {
		t.Fatalf("re-like: %v", err)
	}
	_, like, _ = postCounters(t, posts, post.ID)
	if like != 1 {
		t.Errorf("likeCount = %d, want 1 after re-like", like)
	}
}

func TestUnlikeWithoutLikeIsNoop(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ledger := NewPostInteractionRepository(db)
	post := createPost(t, posts)

	if err := ledger.Create(context.Background(), guestRecord(models.InteractionUnlike, post.ID, "g1-1.2.3.4")); err != nil {
		t.Fatalf("unlike: %v", err)
	}

	_, like, _ := postCounters(t, posts, post.ID)
	if like != 0 {
		t.Errorf("likeCount = %d, want 0", like)
	}
}

func TestInteractionOnMissingTargetRollsBack(t *testing.T) {
	db := newTestDB(t)
	ledger := NewPostInteractionRepository(db)
	ctx := context.Background()

	err := ledger.Create(ctx, guestRecord(models.InteractionLike, "no-such-post", "g1-1.2.3.4"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// The record insert must have been rolled back with the counter update.
	records, err := ledger.GuestInteractions(ctx, models.InteractionLike, "g1-1.2.3.4", "no-such-post")
	if err != nil {
		t.Fatalf("reading interactions: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0 after rollback", len(records))
	}
}

func TestGuestIdentityIncludesAddress(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ledger := NewPostInteractionRepository(db)
	post := createPost(t, posts)
	ctx := context.Background()

	// Same client id behind two addresses counts as two guests.
	if err := ledger.Create(ctx, guestRecord(models.InteractionLike, post.ID, "g1-1.2.3.4")); err != nil {
		t.Fatalf("like from first address: %v", err)
	}
	if err := ledger.Create(ctx, guestRecord(models.InteractionLike, post.ID, "g1-5.6.7.8")); err != nil {
		t.Fatalf("like from second address: %v", err)
	}

	_, like, _ := postCounters(t, posts, post.ID)
	if like != 2 {
		t.Errorf("likeCount = %d, want 2", like)
	}
}

func TestNoteLedgerIsIndependent(t *testing.T) {
	db := newTestDB(t)
	notes := NewNoteRepository(db)
	ledger := NewNoteInteractionRepository(db)
	ctx := context.Background()

	note := &models.Note{Content: "a note"}
	if err := notes.Create(ctx, note); err != nil {
		t.Fatalf("creating note: %v", err)
	}

	if err := ledger.Create(ctx, guestRecord(models.InteractionView, note.ID, "g1-1.2.3.4")); err != nil {
		t.Fatalf("view: %v", err)
	}
	if err := ledger.Create(ctx, guestRecord(models.InteractionView, note.ID, "g1-1.2.3.4")); err != nil {
		t.Fatalf("repeated view: %v", err)
	}

	got, err := notes.Get(ctx, note.ID)
	if err != nil {
		t.Fatalf("fetching note: %v", err)
	}
	if got.ViewCount != 1 {
		t.Errorf("viewCount = %d, want 1", got.ViewCount)
	}
}

func TestInteractionScenario(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ledger := NewPostInteractionRepository(db)
	post := createPost(t, posts)
	ctx := context.Background()

	steps := []struct {
		interactionType models.InteractionType
		guest           string
	}{
		{models.InteractionView, "g1-1.2.3.4"},
		{models.InteractionView, "g1-1.2.3.4"},
		{models.InteractionLike, "g1-1.2.3.4"},
		{models.InteractionLike, "g2-1.2.3.4"},
		{models.InteractionUnlike, "g1-1.2.3.4"},
		{models.InteractionShare, "g1-1.2.3.4"},
		{models.InteractionShare, "g1-1.2.3.4"},
	}
	for i, step := range steps {
		if err := ledger.Create(ctx, guestRecord(step.interactionType, post.ID, step.guest)); err != nil {
			t.Fatalf("step %d (%s): %v", i, step.interactionType, err)
		}
	}

	view, like, share := postCounters(t, posts, post.ID)
	if view != 1 {
		t.Errorf("viewCount = %d, want 1", view)
	}
	if like != 1 {
		t.Errorf("likeCount = %d, want 1", like)
	}
	if share != 2 {
		t.Errorf("shareCount = %d, want 2", share)
	}
}
