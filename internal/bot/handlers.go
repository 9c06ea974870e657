package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/pkg/pricefmt"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/ports/errcode"
	"gopkg.in/telebot.v4"
)

// historyDateLayout — формат даты в команде /history
const historyDateLayout = "02-01-2006"

// historyTimeout — история может пройти по всем источникам
const historyTimeout = 15 * time.Second

// handleStart — справка по командам
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(b.catalog.T("botHelp"))
}

// handlePrice — текст бейджа и подсказка последнего цикла
func (b *Bot) handlePrice(c telebot.Context) error {
	st, ok := b.badge.State()
	if !ok {
		return c.Send(translateBotError(b.catalog, errcode.NotReady))
	}
	return c.Send(st.Text + "\n" + st.Title)
}

// handleHistory — /history dd-mm-yyyy
func (b *Bot) handleHistory(c telebot.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Send(b.catalog.T("botHistoryUsage"))
	}

	date, err := b.parseDate(args[0])
	if err != nil {
		b.logger.Debug("bot: /history bad date", slog.String("arg", args[0]))
		return c.Send(translateBotError(b.catalog, errcode.From(err)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()

	q, err := b.history.ResolveHistorical(ctx, date)
	if err != nil {
		b.logger.Warn("bot: /history failed",
			slog.String("date_key", domain.DateKey(date)),
			slog.String("error", err.Error()),
		)
		return c.Send(translateBotError(b.catalog, errcode.From(err)))
	}
	return c.Send(b.catalog.T("botHistoryResult",
		date.Format(historyDateLayout),
		pricefmt.FormatPrice(q.CurrentPrice),
		string(q.Source),
	))
}

// parseDate — дата в UTC, не позже сегодняшнего дня
func (b *Bot) parseDate(raw string) (time.Time, error) {
	date, err := time.ParseInLocation(historyDateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", derrors.ErrInvalidDate, raw)
	}
	if domain.DateKey(date) > domain.DateKey(b.now()) {
		return time.Time{}, fmt.Errorf("%w: %q is in the future", derrors.ErrInvalidDate, raw)
	}
	return date, nil
}
