package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// SubscribeChat makes the chat receive notifications for alerts registered with email.
func (r *Repository) SubscribeChat(ctx context.Context, chatID int64, email string) error {
	const opn = "repository.sqlite.SubscribeChat"
	_, err := r.db.ExecContext(
		ctx,
		"INSERT OR IGNORE INTO subscriptions (chat_id, email) VALUES (?, ?)",
		chatID,
		normaliseEmail(email),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}

// UnsubscribeChat removes every subscription of the chat.
func (r *Repository) UnsubscribeChat(ctx context.Context, chatID int64) error {
	const opn = "repository.sqlite.UnsubscribeChat"
	_, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE chat_id = ?", chatID)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}

// ChatsForEmail returns the chats subscribed to alerts of email.
func (r *Repository) ChatsForEmail(ctx context.Context, email string) ([]int64, error) {
	const opn = "repository.sqlite.ChatsForEmail"
	rows, err := r.db.QueryContext(ctx, "SELECT chat_id FROM subscriptions WHERE email = ?", normaliseEmail(email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: failed to scan chat_id: %w", opn, err)
		}
		chatIDs = append(chatIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return chatIDs, nil
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
