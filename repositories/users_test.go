package repositories

import (
	"context"
	"errors"
	"testing"

	"blogapi/models"
)

func TestUserLifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Email: "owner@example.com", Name: "Owner", Password: "hash"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("creating user: %v", err)
	}

	byEmail, err := users.GetByEmail(ctx, "owner@example.com")
	if err != nil {
		t.Fatalf("fetching by email: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("byEmail.ID = %q, want %q", byEmail.ID, user.ID)
	}

	user.Name = "New Name"
	if err := users.Update(ctx, user); err != nil {
		t.Fatalf("updating user: %v", err)
	}
	got, err := users.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("fetching user: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("name = %q, want %q", got.Name, "New Name")
	}

	if err := users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("deleting user: %v", err)
	}
	if _, err := users.Get(ctx, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
}

func TestUserEmailIsUnique(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Email: "owner@example.com", Name: "Owner"}
	if err := users.Create(ctx, first); err != nil {
		t.Fatalf("creating user: %v", err)
	}

	dup := &models.User{Email: "owner@example.com", Name: "Impostor"}
	if err := users.Create(ctx, dup); err == nil {
		t.Error("duplicate email was accepted")
	}
}
