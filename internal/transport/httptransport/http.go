package httptransport

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/activity"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/domain"
	derrors "github.com/NastyaGoryachaya/btc-ticker-service/internal/errors"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/pkg/pricefmt"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
	"github.com/labstack/echo/v4"
)

//go:generate mockgen -source=http.go -destination=mocks/mock_http.go -package=mocks

// BadgeReader — последнее состояние бейджа
type BadgeReader interface {
	State() (presentation.State, bool)
}

// HistoryResolver — цена на прошедшую дату
type HistoryResolver interface {
	ResolveHistorical(ctx context.Context, date time.Time) (domain.Quote, error)
}

// CycleReader — последний успешный цикл обновления
type CycleReader interface {
	Last() (presentation.Payload, bool)
}

// ActivityTracker — сигналы активности пользователя
type ActivityTracker interface {
	Touch()
	Set(state activity.State)
}

// HistoryPrice — DTO ответа /price/history
type HistoryPrice struct {
	Date      string        `json:"date"`
	Price     float64       `json:"price"`
	Formatted string        `json:"formatted"`
	Source    domain.Source `json:"source"`
}

type activityRequest struct {
	State string `json:"state"`
}

// PriceHandler — HTTP-handler бейджа, истории и сигналов активности
type PriceHandler struct {
	logger   *slog.Logger
	badge    BadgeReader
	cycles   CycleReader
	history  HistoryResolver
	activity ActivityTracker
	tradeURL string
	timeout  time.Duration
	now      func() time.Time
}

func NewPriceHandler(logger *slog.Logger, badge BadgeReader, cycles CycleReader, history HistoryResolver, tracker ActivityTracker, tradeURL string, timeout time.Duration) *PriceHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if badge == nil || cycles == nil || history == nil || tracker == nil {
		log.Fatal("nil dependency")
	}
	// Источники отвечают до 8s, история может пройти по нескольким
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &PriceHandler{
		logger:   logger,
		badge:    badge,
		cycles:   cycles,
		history:  history,
		activity: tracker,
		tradeURL: tradeURL,
		timeout:  timeout,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (h *PriceHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/healthz", h.Health)
	r.GET("/badge", h.GetBadge, h.touch)
	r.GET("/price/history", h.GetHistory, h.touch)
	r.GET("/trade", h.Trade, h.touch)
	r.POST("/activity", h.PostActivity)
}

// touch — любой пользовательский запрос продлевает активный режим
func (h *PriceHandler) touch(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h.activity.Touch()
		return next(c)
	}
}

// Health — процесс жив; last_success пуст, пока ни один цикл не завершился успешно
func (h *PriceHandler) Health(c echo.Context) error {
	resp := echo.Map{"status": "ok"}
	if p, ok := h.cycles.Last(); ok {
		resp["last_success"] = p.At
		resp["source"] = p.Source
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *PriceHandler) GetBadge(c echo.Context) error {
	st, ok := h.badge.State()
	if !ok {
		// Первый цикл обновления ещё не завершился
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "not_ready",
		})
	}
	return c.JSON(http.StatusOK, st)
}

func (h *PriceHandler) GetHistory(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("date"))
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "date_required",
		})
	}
	date, err := h.parseDate(raw)
	if err != nil {
		status, code := FromServiceError(err)
		return c.JSON(status, echo.Map{
			"error": code,
			"date":  raw,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	q, err := h.history.ResolveHistorical(ctx, date)
	if err != nil {
		status, code := FromServiceError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("ResolveHistorical failed",
				slog.String("op", "GetHistory"),
				slog.String("date_key", raw),
				slog.String("error", err.Error()),
			)
		}
		return c.JSON(status, echo.Map{
			"error": code,
			"date":  raw,
		})
	}

	return c.JSON(http.StatusOK, HistoryPrice{
		Date:      domain.DateKey(date),
		Price:     q.CurrentPrice,
		Formatted: pricefmt.FormatPrice(q.CurrentPrice),
		Source:    q.Source,
	})
}

// parseDate — YYYY-MM-DD, не позже сегодняшнего дня UTC
func (h *PriceHandler) parseDate(raw string) (time.Time, error) {
	date, err := domain.ParseDateKey(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", derrors.ErrInvalidDate, raw)
	}
	if domain.DateKey(date) > domain.DateKey(h.now()) {
		return time.Time{}, fmt.Errorf("%w: %s is in the future", derrors.ErrInvalidDate, raw)
	}
	return date, nil
}

func (h *PriceHandler) PostActivity(c echo.Context) error {
	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "bad_request",
		})
	}
	state, err := activity.ParseState(req.State)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "unknown_state",
			"state": req.State,
		})
	}
	h.activity.Set(state)
	return c.JSON(http.StatusOK, echo.Map{"state": state.String()})
}

// Trade — переход на страницу торговли парой
func (h *PriceHandler) Trade(c echo.Context) error {
	if h.tradeURL == "" {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "trade_url_not_configured",
		})
	}
	return c.Redirect(http.StatusFound, h.tradeURL)
}
