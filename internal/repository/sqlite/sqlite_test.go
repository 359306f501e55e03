package sqlite_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/Houeta/price-radar/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository_InvalidPath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := sqlite.NewRepository(t.Context(), logger, filepath.Join(t.TempDir(), "missing", "radar.db"))

	require.ErrorContains(t, err, "unable to establish connection to database")
}

func TestNewRepository_Schema(t *testing.T) {
	ctx := t.Context()
	repo := newTestDB(t)

	t.Run("tables_exist", func(t *testing.T) {
		rows, err := repo.DB().QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table'")
		require.NoError(t, err)
		defer rows.Close()

		var tables []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			tables = append(tables, name)
		}
		require.NoError(t, rows.Err())

		assert.Subset(t, tables, []string{"kv_store", "subscriptions"})
	})

	t.Run("storage_key_is_unique", func(t *testing.T) {
		_, err := repo.DB().ExecContext(ctx, "INSERT INTO kv_store (storage_key, value) VALUES ('pr_alerts', '[]')")
		require.NoError(t, err)

		_, err = repo.DB().ExecContext(ctx, "INSERT INTO kv_store (storage_key, value) VALUES ('pr_alerts', '[{}]')")
		require.ErrorContains(t, err, "UNIQUE constraint failed")

		require.NoError(t, repo.Save(ctx, "pr_alerts", `[{"id":1}]`), "Save upserts over the existing key")
		value, err := repo.Load(ctx, "pr_alerts")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, value)
	})

	t.Run("subscription_is_unique_per_chat_and_email", func(t *testing.T) {
		_, err := repo.DB().ExecContext(ctx, "INSERT INTO subscriptions (chat_id, email) VALUES (1, 'a@b.com')")
		require.NoError(t, err)

		_, err = repo.DB().ExecContext(ctx, "INSERT INTO subscriptions (chat_id, email) VALUES (1, 'a@b.com')")
		require.ErrorContains(t, err, "UNIQUE constraint failed")

		_, err = repo.DB().ExecContext(ctx, "INSERT INTO subscriptions (chat_id, email) VALUES (2, 'a@b.com')")
		require.NoError(t, err, "another chat may follow the same email")
	})
}

func TestRepository_AlertsSurviveRestart(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dbPath := filepath.Join(t.TempDir(), "radar.db")

	// Arrange
	first, err := sqlite.NewRepository(ctx, logger, dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "pr_alerts", `[{"id":42}]`))
	require.NoError(t, first.SubscribeChat(ctx, 10, "a@b.com"))
	require.NoError(t, first.Close())

	// Act
	second, err := sqlite.NewRepository(ctx, logger, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	// Assert
	value, err := second.Load(ctx, "pr_alerts")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":42}]`, value)

	chats, err := second.ChatsForEmail(ctx, "A@B.com")
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, chats)
}
