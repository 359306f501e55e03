package bot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/services/aggregator"
	"github.com/Houeta/price-radar/internal/services/alerts"
	"github.com/Houeta/price-radar/internal/services/tracker"
	"gopkg.in/telebot.v4"
)

const helpText = `Commands:
/search <product> [| platform, platform] - search prices
/platform <name|all> - show one platform
/sort <price_asc|price_desc|discount|rating> - reorder results
/filter <min> <max> <min discount %> - filter results
/compare <n> - compare result n across platforms
/history <1M|3M|6M> - price history of the compared product
/alert <email>; <product>; <target price> - create a price-drop alert
/alerts - list alerts
/delete <id> - delete an alert
/subscribe <email> - receive alerts created for an email
/unsubscribe - stop receiving alerts`

const noSearchText = "Search for something first with /search <product>."

// startHandler process command /start.
func (b *Bot) startHandler(c telebot.Context) error {
	b.log.Info("User started the bot", "username", c.Sender().Username)

	ctx, cancel := requestContext()
	defer cancel()

	return b.reply(c, b.startReply(ctx))
}

func (b *Bot) searchHandler(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	return b.reply(c, b.searchReply(ctx, c.Chat().ID, c.Message().Payload))
}

func (b *Bot) platformHandler(c telebot.Context) error {
	return b.reply(c, b.platformReply(c.Chat().ID, c.Message().Payload))
}

func (b *Bot) sortHandler(c telebot.Context) error {
	return b.reply(c, b.sortReply(c.Chat().ID, c.Message().Payload))
}

func (b *Bot) filterHandler(c telebot.Context) error {
	return b.reply(c, b.filterReply(c.Chat().ID, c.Args()))
}

func (b *Bot) compareHandler(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	return b.reply(c, b.compareReply(ctx, c.Chat().ID, c.Message().Payload))
}

func (b *Bot) historyHandler(c telebot.Context) error {
	return b.reply(c, b.historyReply(c.Chat().ID, c.Message().Payload))
}

func (b *Bot) alertHandler(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	return b.reply(c, b.alertReply(ctx, c.Chat().ID, c.Message().Payload))
}

func (b *Bot) alertsHandler(c telebot.Context) error {
	return b.reply(c, b.alertsReply())
}

func (b *Bot) deleteHandler(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	return b.reply(c, b.deleteReply(ctx, c.Message().Payload))
}

func (b *Bot) subscribeHandler(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	return b.reply(c, b.subscribeReply(ctx, c.Chat().ID, c.Message().Payload))
}

func (b *Bot) unsubscribeHandler(c telebot.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	return b.reply(c, b.unsubscribeReply(ctx, c.Chat().ID))
}

func (b *Bot) reply(c telebot.Context, text string) error {
	if err := c.Send(text); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}

func (b *Bot) startReply(ctx context.Context) string {
	status := "Live prices are available."
	if b.svc.Health == nil || !b.svc.Health.Healthy(ctx) {
		status = demoNotice
	}

	return "Hello! I compare product prices across online stores.\n" + status + "\n\n" + helpText
}

func (b *Bot) searchReply(ctx context.Context, chatID int64, payload string) string {
	query, platforms := parseSearchPayload(payload)

	res, err := b.svc.Tracker.Search(ctx, query, platforms)
	if errors.Is(err, tracker.ErrEmptyQuery) {
		return "Usage: /search <product> [| platform, platform]"
	}
	if err != nil {
		b.log.ErrorContext(ctx, "Search failed", "op", "bot.search", "query", query, "error", err)
		return "Search failed, please try again later."
	}

	sess := newSession(res)
	b.sessions.put(chatID, sess)

	return formatView(sess)
}

// parseSearchPayload splits "query | p1, p2" into the query and platforms.
func parseSearchPayload(payload string) (string, []string) {
	query, rawPlatforms, found := strings.Cut(payload, "|")
	if !found {
		return strings.TrimSpace(query), nil
	}

	var platforms []string
	for _, p := range strings.FieldsFunc(rawPlatforms, func(r rune) bool { return r == ',' || r == ' ' }) {
		platforms = append(platforms, models.PlatformKey(p))
	}

	return strings.TrimSpace(query), platforms
}

func (b *Bot) platformReply(chatID int64, payload string) string {
	current, ok := b.sessions.get(chatID)
	if !ok {
		return noSearchText
	}

	platform := models.PlatformKey(payload)
	if platform == "" {
		platform = aggregator.AllPlatforms
	}
	if platform != aggregator.AllPlatforms && !slices.Contains(current.result.Data.Platforms, platform) {
		return fmt.Sprintf("Unknown platform %q. Available: all, %s", payload, strings.Join(current.result.Data.Platforms, ", "))
	}

	sess, _ := b.sessions.update(chatID, func(s *session) {
		s.platform = platform
		s.refresh()
	})

	return formatView(sess)
}

func (b *Bot) sortReply(chatID int64, payload string) string {
	key, valid := aggregator.ParseSortKey(payload)
	if !valid {
		return "Usage: /sort <price_asc|price_desc|discount|rating>"
	}

	sess, ok := b.sessions.update(chatID, func(s *session) {
		s.sortKey = key
		s.refresh()
	})
	if !ok {
		return noSearchText
	}

	return formatView(sess)
}

func (b *Bot) filterReply(chatID int64, args []string) string {
	padded := make([]string, 3)
	copy(padded, args)
	bounds := aggregator.ParseBounds(padded[0], padded[1], padded[2])

	sess, ok := b.sessions.update(chatID, func(s *session) {
		s.bounds = bounds
		s.refresh()
	})
	if !ok {
		return noSearchText
	}

	return formatView(sess)
}

func (b *Bot) compareReply(ctx context.Context, chatID int64, payload string) string {
	current, ok := b.sessions.get(chatID)
	if !ok {
		return noSearchText
	}

	n, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil || n < 1 || n > len(current.view) {
		return fmt.Sprintf("Usage: /compare <n>, where n is between 1 and %d.", len(current.view))
	}

	insight := b.svc.Tracker.Inspect(ctx, current.view[n-1], models.RangeShort)
	b.sessions.update(chatID, func(s *session) {
		s.insight = insight
	})

	return formatInsight(insight)
}

func (b *Bot) historyReply(chatID int64, payload string) string {
	r, err := models.ParseRange(payload)
	if err != nil {
		return "Usage: /history <1M|3M|6M>"
	}

	current, ok := b.sessions.get(chatID)
	if !ok || current.insight == nil {
		return "Compare a product first with /compare <n>."
	}

	series := b.svc.Tracker.History(current.insight.AnchorPrice, r)
	b.sessions.update(chatID, func(s *session) {
		if s.insight != nil {
			updated := *s.insight
			updated.Range, updated.History = r, series
			s.insight = &updated
		}
	})

	return formatHistory(r, series)
}

func (b *Bot) alertReply(ctx context.Context, chatID int64, payload string) string {
	const opn = "bot.alert"

	parts := make([]string, 3)
	copy(parts, strings.SplitN(payload, ";", 3))

	alert, err := b.svc.Alerts.Create(ctx, parts[0], parts[1], parts[2])
	var verr *alerts.ValidationError
	if errors.As(err, &verr) {
		return verr.Message + "\nUsage: /alert <email>; <product>; <target price>"
	}
	if err != nil {
		b.log.ErrorContext(ctx, "Failed to create alert", "op", opn, "error", err)
		return "Could not save the alert, please try again later."
	}

	if err = b.svc.Subscriptions.SubscribeChat(ctx, chatID, alert.Email); err != nil {
		b.log.WarnContext(ctx, "Failed to subscribe chat to alert email", "op", opn, "chat", chatID, "error", err)
	}

	return "Alert created:\n" + formatAlert(alert)
}

func (b *Bot) alertsReply() string {
	list := b.svc.Alerts.List()
	if len(list) == 0 {
		return "No alerts yet. Create one with /alert <email>; <product>; <target price>."
	}

	lines := make([]string, 0, len(list)+1)
	lines = append(lines, fmt.Sprintf("Alerts (%d):", len(list)))
	for _, a := range list {
		lines = append(lines, formatAlert(a))
	}

	return strings.Join(lines, "\n")
}

func (b *Bot) deleteReply(ctx context.Context, payload string) string {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(payload), "#"), 10, 64)
	if err != nil {
		return "Usage: /delete <id>"
	}

	if err = b.svc.Alerts.Delete(ctx, id); err != nil {
		b.log.ErrorContext(ctx, "Failed to delete alert", "op", "bot.delete", "id", id, "error", err)
		return "Could not delete the alert, please try again later."
	}

	return fmt.Sprintf("Alert #%d deleted.", id)
}

func (b *Bot) subscribeReply(ctx context.Context, chatID int64, payload string) string {
	email := strings.TrimSpace(payload)
	if !strings.Contains(email, "@") {
		return "Usage: /subscribe <email>"
	}

	if err := b.svc.Subscriptions.SubscribeChat(ctx, chatID, email); err != nil {
		b.log.ErrorContext(ctx, "Failed to subscribe", "op", "bot.subscribe", "chat", chatID, "error", err)
		return "Could not subscribe, please try again later."
	}

	return fmt.Sprintf("This chat now receives alerts for %s.", email)
}

func (b *Bot) unsubscribeReply(ctx context.Context, chatID int64) string {
	if err := b.svc.Subscriptions.UnsubscribeChat(ctx, chatID); err != nil {
		b.log.ErrorContext(ctx, "Failed to unsubscribe", "op", "bot.unsubscribe", "chat", chatID, "error", err)
		return "Could not unsubscribe, please try again later."
	}

	return "This chat no longer receives alerts."
}
