package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/naatiworlds/Recetagrm-api/internal/core/users"
	"github.com/naatiworlds/Recetagrm-api/internal/db/migrations"
)

// setupTestDB connects to TEST_DATABASE_URL, runs migrations and empties every table
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, migrations.Dir), "Failed to run migrations")

	_, err = db.Exec(`TRUNCATE comments, likes, follows, posts, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, name string, public bool) *users.User {
	t.Helper()

	u, err := NewUserRepository(db).Create(context.Background(), &users.User{
		Name:     name,
		Email:    name + "@example.com",
		IsPublic: public,
	})
	require.NoError(t, err)
	return u
}
