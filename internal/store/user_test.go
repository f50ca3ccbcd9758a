package store

import (
	"context"
	"errors"
	"testing"

	"github.com/zengarden/apiserver/types"
)

func TestUserCreateAndGet(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewUserRepository(conn)
	ctx := context.Background()

	created, err := repo.Create(ctx, types.User{Username: "alice", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("Create() returned user with ID 0")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Create() CreatedAt is zero")
	}

	byID, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if byID.Username != "alice" || byID.PasswordHash != "hash" {
		t.Errorf("GetByID() = %+v", byID)
	}

	byName, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if byName.ID != created.ID {
		t.Errorf("GetByUsername() ID = %d, want %d", byName.ID, created.ID)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewUserRepository(conn)
	ctx := context.Background()

	if _, err := repo.Create(ctx, types.User{Username: "alice", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, types.User{Username: "alice", PasswordHash: "h"}); err == nil {
		t.Error("Create() with duplicate username expected error, got nil")
	}
}

func TestUserNotFound(t *testing.T) {
	conn := setupTestDB(t)
	repo := NewUserRepository(conn)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 12345); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByUsername(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByUsername() error = %v, want ErrNotFound", err)
	}
}
