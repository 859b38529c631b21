package database

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationsPath = "../../migrations"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Initialize(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations(context.Background(), migrationsPath))
	return db
}

func TestMigrationsCreateTables(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tables := []string{"accounts", "learners", "learner_progress", "activity_completions", "settings", "quiz_questions"}
	for _, table := range tables {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}

	// a second run is a no-op
	require.NoError(t, db.RunMigrations(ctx, migrationsPath))
	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestMigrationsMissingDir(t *testing.T) {
	db, err := Initialize(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, db.RunMigrations(context.Background(), t.TempDir()))
}

func TestWithTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO accounts (id, email) VALUES (?, ?)", "a1", "one@example.com")
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO accounts (id, email) VALUES (?, ?)", "a2", "two@example.com"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts").Scan(&count))
	assert.Equal(t, 1, count, "rolled back insert must not persist")
}

func TestForeignKeyCascade(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO accounts (id, email) VALUES (?, ?)", "a1", "one@example.com")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO learners (id, account_id, name, nickname, age) VALUES (?, ?, ?, ?, ?)", "l1", "a1", "Sam", "Brave Lion", 6)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", "a1")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM learners").Scan(&count))
	assert.Zero(t, count)
}

func TestConcurrentAccess(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO accounts (id, email) VALUES (?, ?)", "a1", "concurrent@example.com")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var id string
			err := db.QueryRowContext(ctx, "SELECT id FROM accounts WHERE email = ?", "concurrent@example.com").Scan(&id)
			assert.NoError(t, err)
			assert.Equal(t, "a1", id)
		}()
	}
	wg.Wait()
}
