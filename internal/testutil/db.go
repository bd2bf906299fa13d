package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alimgiray/timecard/pkg/database"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
