package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/zengarden/apiserver/config"
	"github.com/zengarden/apiserver/internal/db"
	"github.com/zengarden/apiserver/types"
)

// setupTestDB initializes an in-memory sqlite database with the real
// migrations applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := config.Config{Database: config.DatabaseConfig{Path: ":memory:"}}
	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return conn
}

func createTestUser(t *testing.T, conn *sql.DB, username string) types.User {
	t.Helper()

	repo := NewUserRepository(conn)
	user, err := repo.Create(context.Background(), types.User{
		Username:     username,
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return user
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
