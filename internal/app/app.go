package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/activity"
	botpkg "github.com/NastyaGoryachaya/btc-ticker-service/internal/bot"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/i18n"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/presentation"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/scheduler"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/dailyref"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/resolver"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/ticker"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/transport/httptransport"
	"github.com/labstack/echo/v4"
)

// warmupTimeout — прогрев идёт по всем источникам с дневным открытием
const warmupTimeout = 30 * time.Second

type App struct {
	cfg config.Config
	log *slog.Logger

	store *store
	e     *echo.Echo
	serv  *http.Server

	resolver *resolver.Resolver
	cache    *dailyref.Cache
	badge    *presentation.Badge
	ticker   *ticker.Service

	monitor *activity.Monitor
	updater *scheduler.Scheduler
	warmup  *scheduler.Warmup

	bot *botpkg.Bot

	// фоновые задачи; хранилище закрывается только после их завершения
	stop    context.CancelFunc
	workers sync.WaitGroup
}

func NewApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	catalog, err := i18n.Load(cfg.Presentation.Locale)
	if err != nil {
		return nil, fmt.Errorf("load locale: %w", err)
	}

	sources, err := buildSources(cfg)
	if err != nil {
		return nil, err
	}
	app.resolver = resolver.New(sources, log)

	app.store, err = openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app.cache = dailyref.NewCache(app.store.kv, app.resolver, log)
	app.badge = presentation.NewBadge(catalog)
	sink := presentation.Multi{app.badge, presentation.NewLogSink(log)}
	app.ticker = ticker.NewService(app.resolver, app.cache, sink, cfg.Resolver.ReferenceMode, log)

	app.monitor = activity.NewMonitor(cfg.Scheduler.IdleThreshold, log)
	app.updater = scheduler.NewScheduler(app.ticker, cfg.Scheduler.ActiveInterval, cfg.Scheduler.IdleInterval, log)
	app.monitor.OnChange(app.updater.SetActivity)

	// Прогрев нужен только там, где опорная цена берётся из кэша
	if cfg.Resolver.ReferenceMode != config.ReferenceRolling24h {
		app.warmup, err = scheduler.NewWarmup(cfg.Scheduler.WarmupCron, app.cache, warmupTimeout, log)
		if err != nil {
			app.store.close()
			return nil, err
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	app.e = e

	ph := httptransport.NewPriceHandler(log, app.badge, app.ticker, app.resolver, app.monitor, cfg.Pair.TradeURL, cfg.Server.WriteTimeout)
	ph.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			app.store.close()
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: 10 * time.Second},
			app.badge,
			app.resolver,
			app.monitor,
			catalog,
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			app.store.close()
			return nil, err
		}
		app.bot = botApp
	}

	log.Info("app initialized",
		slog.Any("sources", app.resolver.Names()),
		slog.String("reference_mode", cfg.Resolver.ReferenceMode),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("locale", catalog.Locale()),
		slog.Bool("bot_attached", app.bot != nil),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	// запись из прошлого запуска; если она сегодняшняя, первый цикл обойдётся без запроса открытия
	if entry, err := a.cache.Entry(ctx); err == nil {
		a.log.Info("daily reference restored",
			slog.String("date_key", entry.DateKey),
			slog.Float64("price", entry.ReferencePrice),
		)
	}

	ctx, a.stop = context.WithCancel(ctx)

	a.log.Info("starting activity monitor", slog.Duration("idle_threshold", a.cfg.Scheduler.IdleThreshold))
	a.spawn(ctx, a.monitor.Run)

	a.log.Info("starting updater")
	a.spawn(ctx, a.updater.Start)

	if a.warmup != nil {
		a.spawn(ctx, a.warmup.Start)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		a.spawn(ctx, a.bot.Start)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	errCh := make(chan error, 1)
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}
	if err := a.Shutdown(context.Background()); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// spawn — фоновая задача, которую Shutdown дождётся
func (a *App) spawn(ctx context.Context, run func(context.Context)) {
	a.workers.Add(1)
	go func() {
		defer a.workers.Done()
		run(ctx)
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error
	if a.serv != nil {
		if err := a.serv.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if a.stop != nil {
		a.stop()
	}
	done := make(chan struct{})
	go func() {
		a.workers.Wait()
		close(done)
	}()
	select {
	case <-done:
		if a.store != nil {
			if err := a.store.close(); err != nil {
				a.log.Error("storage close error", slog.String("error", err.Error()))
				errs = append(errs, err)
			}
		}
	case <-shCtx.Done():
		// цикл обновления ещё пишет в хранилище, закрывать его нельзя
		a.log.Error("background workers did not stop in time, storage left open")
		errs = append(errs, fmt.Errorf("wait background workers: %w", shCtx.Err()))
	}

	a.log.Info("application stopped")
	return errors.Join(errs...)
}
