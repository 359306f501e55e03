package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Houeta/price-radar/internal/models"
	"gopkg.in/telebot.v4"
)

// NotifyTriggers sends every triggered alert to the chats subscribed to its
// email and returns the triggers that reached at least one chat. Delivery
// keeps going after a failure; all failures are returned joined.
func (b *Bot) NotifyTriggers(ctx context.Context, triggers []models.Trigger) ([]models.Trigger, error) {
	const opn = "bot.NotifyTriggers"
	log := b.log.With("op", opn)

	var (
		errs      []error
		delivered []models.Trigger
	)
	sent := 0
	for _, t := range triggers {
		chats, err := b.svc.Subscriptions.ChatsForEmail(ctx, t.Alert.Email)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to get chats for alert %d: %w", t.Alert.ID, err))
			continue
		}
		if len(chats) == 0 {
			log.DebugContext(ctx, "No chat subscribed to alert email", "alert", t.Alert.ID)
			continue
		}

		text := formatTrigger(t)
		reached := false
		for _, chatID := range chats {
			if _, err = b.bot.Send(&telebot.Chat{ID: chatID}, text); err != nil {
				errs = append(errs, fmt.Errorf("failed to notify chat %d: %w", chatID, err))
				continue
			}
			sent++
			reached = true
		}
		if reached {
			delivered = append(delivered, t)
		}
	}

	log.InfoContext(ctx, "Alert notifications sent", "triggers", len(triggers), "messages", sent)

	if err := errors.Join(errs...); err != nil {
		return delivered, fmt.Errorf("%s: %w", opn, err)
	}

	return delivered, nil
}
