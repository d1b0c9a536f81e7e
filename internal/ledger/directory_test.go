package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"socialfit/internal/model"
	"socialfit/internal/store"
)

func newTestUser(id, email string) *model.User {
	return &model.User{
		ID:             id,
		Name:           "Test User",
		Email:          email,
		PasswordHashed: "$2a$10$fakehash",
		Role:           model.RoleStudent,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestUserDirectory_CreateAndGet(t *testing.T) {
	d := NewUserDirectory(store.NewMemoryStore())
	ctx := context.Background()

	if err := d.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := d.GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("getByID: %v", err)
	}
	if byID.Email != "ana@example.com" {
		t.Errorf("email = %q", byID.Email)
	}

	byEmail, err := d.GetByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("getByEmail: %v", err)
	}
	if byEmail.ID != "u1" {
		t.Errorf("id = %q, want u1", byEmail.ID)
	}
}

func TestUserDirectory_Create_DuplicateEmail(t *testing.T) {
	d := NewUserDirectory(store.NewMemoryStore())
	ctx := context.Background()

	if err := d.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Email uniqueness is case-insensitive.
	err := d.Create(ctx, newTestUser("u2", "ANA@example.com"))
	if !errors.Is(err, model.ErrEmailExists) {
		t.Fatalf("error = %v, want ErrEmailExists", err)
	}
}

func TestUserDirectory_GetByID_NotFound(t *testing.T) {
	d := NewUserDirectory(store.NewMemoryStore())

	_, err := d.GetByID(context.Background(), "nobody")
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}

func TestUserDirectory_SetAvatar(t *testing.T) {
	d := NewUserDirectory(store.NewMemoryStore())
	ctx := context.Background()

	if err := d.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("create: %v", err)
	}

	url := "https://cdn.example.com/avatars/u1.jpg"
	if err := d.SetAvatar(ctx, "u1", url); err != nil {
		t.Fatalf("setAvatar: %v", err)
	}

	user, _ := d.GetByID(ctx, "u1")
	if user.AvatarURL == nil || *user.AvatarURL != url {
		t.Errorf("avatar = %v, want %q", user.AvatarURL, url)
	}

	err := d.SetAvatar(ctx, "nobody", url)
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
}

func TestUserDirectory_List(t *testing.T) {
	d := NewUserDirectory(store.NewMemoryStore())
	ctx := context.Background()

	if err := d.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("create u1: %v", err)
	}
	if err := d.Create(ctx, newTestUser("u2", "bia@example.com")); err != nil {
		t.Fatalf("create u2: %v", err)
	}

	users, err := d.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("list = %d users, want 2", len(users))
	}
	if users[0].ID != "u1" || users[1].ID != "u2" {
		t.Errorf("list order = [%s %s], want [u1 u2]", users[0].ID, users[1].ID)
	}
}
