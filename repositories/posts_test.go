package repositories

import (
	"context"
	"errors"
	"testing"

	"blogapi/models"
)

func TestPostCRUD(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	goTags, err := tags.FindOrCreateByNames(ctx, []string{"go", "backend"})
	if err != nil {
		t.Fatalf("resolving tags: %v", err)
	}

	post := &models.Post{
		Title:   "first post",
		Content: "some content",
		Images:  models.StringList{"a.jpg", "b.jpg"},
		Tags:    goTags,
	}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("creating post: %v", err)
	}
	if post.ID == "" {
		t.Fatal("post id was not generated")
	}

	got, err := posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("fetching post: %v", err)
	}
	if got.Title != "first post" || len(got.Tags) != 2 || len(got.Images) != 2 {
		t.Errorf("unexpected post: title=%q tags=%d images=%d", got.Title, len(got.Tags), len(got.Images))
	}

	post.Title = "renamed"
	post.Tags = goTags[:1]
	if err := posts.Update(ctx, post); err != nil {
		t.Fatalf("updating post: %v", err)
	}
	got, err = posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("fetching updated post: %v", err)
	}
	if got.Title != "renamed" || len(got.Tags) != 1 {
		t.Errorf("update not applied: title=%q tags=%d", got.Title, len(got.Tags))
	}

	if err := posts.Delete(ctx, post.ID); err != nil {
		t.Fatalf("deleting post: %v", err)
	}
	if _, err := posts.Get(ctx, post.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
}

func TestPostListFiltersByTag(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)
	ctx := context.Background()

	goTag, err := tags.FindOrCreateByNames(ctx, []string{"go"})
	if err != nil {
		t.Fatalf("resolving tag: %v", err)
	}

	tagged := &models.Post{Title: "tagged", Content: "x", Tags: goTag}
	plain := &models.Post{Title: "plain", Content: "y"}
	for _, p := range []*models.Post{tagged, plain} {
		if err := posts.Create(ctx, p); err != nil {
			t.Fatalf("creating post: %v", err)
		}
	}

	result, err := posts.List(ctx, 10, 0, goTag[0].ID)
	if err != nil {
		t.Fatalf("listing posts: %v", err)
	}
	if len(result) != 1 || result[0].ID != tagged.ID {
		t.Errorf("filtered list = %d posts, want only the tagged one", len(result))
	}

	all, err := posts.List(ctx, 10, 0, "")
	if err != nil {
		t.Fatalf("listing all posts: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered list = %d posts, want 2", len(all))
	}
}

func TestPostSearch(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	ctx := context.Background()

	match := &models.Post{Title: "about gophers", Content: "x"}
	other := &models.Post{Title: "something else", Content: "y"}
	for _, p := range []*models.Post{match, other} {
		if err := posts.Create(ctx, p); err != nil {
			t.Fatalf("creating post: %v", err)
		}
	}

	result, err := posts.Search(ctx, "gopher")
	if err != nil {
		t.Fatalf("searching: %v", err)
	}
	if len(result) != 1 || result[0].ID != match.ID {
		t.Errorf("search = %d posts, want the gopher one", len(result))
	}
}
