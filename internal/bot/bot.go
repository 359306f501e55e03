package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

// handlerTimeout bounds the work done for one incoming command.
const handlerTimeout = 30 * time.Second

// Services are the collaborators the bot commands call into.
type Services struct {
	Tracker       Tracker
	Alerts        AlertStore
	Subscriptions Subscriptions
	Health        HealthChecker
}

// Bot contains the bot API instance and other information.
type Bot struct {
	bot      API
	log      *slog.Logger
	svc      Services
	sessions *sessions
}

func NewBot(log *slog.Logger, token string, poller time.Duration, svc Services) (*Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", bot.Me.Username)

	return newBot(bot, log, svc), nil
}

func newBot(api API, log *slog.Logger, svc Services) *Bot {
	botInstance := &Bot{bot: api, log: log, svc: svc, sessions: newSessions()}

	botInstance.registerRoutes()

	return botInstance
}

// Start launches the bot to listen for updates.
func (b *Bot) Start() {
	b.log.Info("Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// registerRoutes configures all routes (commands).
func (b *Bot) registerRoutes() {
	b.bot.Handle("/start", b.startHandler)
	b.bot.Handle("/help", b.startHandler)

	// Search and result views.
	b.bot.Handle("/search", b.searchHandler)
	b.bot.Handle("/platform", b.platformHandler)
	b.bot.Handle("/sort", b.sortHandler)
	b.bot.Handle("/filter", b.filterHandler)

	// Product insight.
	b.bot.Handle("/compare", b.compareHandler)
	b.bot.Handle("/history", b.historyHandler)

	// Alerts.
	b.bot.Handle("/alert", b.alertHandler)
	b.bot.Handle("/alerts", b.alertsHandler)
	b.bot.Handle("/delete", b.deleteHandler)
	b.bot.Handle("/subscribe", b.subscribeHandler)
	b.bot.Handle("/unsubscribe", b.unsubscribeHandler)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), handlerTimeout)
}
