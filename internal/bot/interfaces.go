package bot

import (
	"context"

	"github.com/Houeta/price-radar/internal/models"
	"gopkg.in/telebot.v4"
)

type API interface {
	// Handle lets you set the handler for some command name or one of the supported endpoints. It also applies middleware if such passed to the function.
	Handle(endpoint interface{}, h telebot.HandlerFunc, m ...telebot.MiddlewareFunc)
	// Start brings bot into motion by consuming incoming updates (see Bot.Updates channel).
	Start()
	// Stop gracefully shuts the poller down.
	Stop()

	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// Tracker runs searches and builds product insights.
type Tracker interface {
	Search(ctx context.Context, query string, platforms []string) (models.Result[models.SearchResultSet], error)
	Inspect(ctx context.Context, record models.PriceRecord, r models.Range) *models.Insight
	History(price int, r models.Range) []int
}

// AlertStore keeps the price-drop alerts.
type AlertStore interface {
	List() []models.Alert
	Create(ctx context.Context, email, product, targetPriceRaw string) (models.Alert, error)
	Delete(ctx context.Context, id int64) error
}

// Subscriptions links chats to alert emails.
type Subscriptions interface {
	SubscribeChat(ctx context.Context, chatID int64, email string) error
	UnsubscribeChat(ctx context.Context, chatID int64) error
	ChatsForEmail(ctx context.Context, email string) ([]int64, error)
}

// HealthChecker reports whether live prices are available.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}
