package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Houeta/price-radar/internal/repository"
)

// Load returns the value stored under key, or repository.ErrKeyNotFound.
func (r *Repository) Load(ctx context.Context, key string) (string, error) {
	const opn = "repository.sqlite.Load"

	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE storage_key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrKeyNotFound
		}
		return "", fmt.Errorf("%s: failed to get value for key %s: %w", opn, key, err)
	}

	return value, nil
}

// Save replaces the value stored under key.
func (r *Repository) Save(ctx context.Context, key, value string) error {
	const opn = "repository.sqlite.Save"

	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO kv_store (storage_key, value) VALUES (?, ?) ON CONFLICT(storage_key) DO UPDATE SET value = excluded.value",
		key,
		value,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to save value for key %s: %w", opn, key, err)
	}

	r.log.Debug("Saved value", "op", opn, "key", key, "bytes", len(value))

	return nil
}
