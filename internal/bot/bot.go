package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/i18n"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
	"gopkg.in/telebot.v4"
)

// Config — конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

//go:generate mockgen -source=bot.go -destination=mocks/mock_bot.go -package=mocks

// BadgeReader — последнее состояние бейджа
type BadgeReader interface {
	State() (presentation.State, bool)
}

// HistoryResolver — цена на прошедшую дату
type HistoryResolver interface {
	ResolveHistorical(ctx context.Context, date time.Time) (domain.Quote, error)
}

// ActivityToucher — команда пользователя продлевает активный режим опроса
type ActivityToucher interface {
	Touch()
}

// Bot — Telegram-фронтенд тикера
type Bot struct {
	bot      *telebot.Bot
	badge    BadgeReader
	history  HistoryResolver
	activity ActivityToucher
	catalog  *i18n.Catalog
	logger   *slog.Logger
	now      func() time.Time
}

// New создаёт бота и регистрирует команды
func New(cfg Config, badge BadgeReader, history HistoryResolver, activity ActivityToucher, catalog *i18n.Catalog, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := newBot(badge, history, activity, catalog, logger)
	bot.bot = b

	b.Use(bot.touch)
	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/help", bot.handleStart)
	b.Handle("/price", bot.handlePrice)
	b.Handle("/history", bot.handleHistory)
	return bot, nil
}

func newBot(badge BadgeReader, history HistoryResolver, activity ActivityToucher, catalog *i18n.Catalog, logger *slog.Logger) *Bot {
	return &Bot{
		badge:    badge,
		history:  history,
		activity: activity,
		catalog:  catalog,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start запускает long polling; остановка через Stop
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
	<-ctx.Done()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}

// touch — любая команда считается активностью пользователя
func (b *Bot) touch(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		b.activity.Touch()
		return next(c)
	}
}
