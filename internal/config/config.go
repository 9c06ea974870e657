package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/consts"
	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

const (
	ReferenceDailyOpen  = "daily_open"
	ReferenceTicker24h  = "ticker_24h"
	ReferenceRolling24h = "rolling_24h"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"`
	Pair         PairConfig         `yaml:"pair"`
	Sources      SourcesConfig      `yaml:"sources"`
	Resolver     ResolverConfig     `yaml:"resolver"`
	Storage      StorageConfig      `yaml:"storage"`
	SQLite       SQLiteConfig       `yaml:"sqlite"`
	Postgres     PostgresConfig     `yaml:"postgres"`
	Telegram     TelegramConfig     `yaml:"telegram"`
	Presentation PresentationConfig `yaml:"presentation"`
	Logger       LoggerConfig       `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// SchedulerConfig — адаптивный период опроса и ежедневный прогрев кэша
type SchedulerConfig struct {
	ActiveInterval time.Duration `yaml:"active_interval" env:"ACTIVE_INTERVAL" env-default:"1m"`
	IdleInterval   time.Duration `yaml:"idle_interval" env:"IDLE_INTERVAL" env-default:"5m"`
	IdleThreshold  time.Duration `yaml:"idle_threshold" env-default:"15s"`
	WarmupCron     string        `yaml:"warmup_cron" env:"WARMUP_CRON" env-default:"5 0 0 * * *"` // с секундами, UTC
}

type PairConfig struct {
	Symbol   string `yaml:"symbol" env:"PAIR_SYMBOL" env-default:"BTCBRL"`   // тикер на биржах
	CoinID   string `yaml:"coin_id" env-default:"bitcoin"`                    // id в CoinGecko
	Currency string `yaml:"currency" env-default:"brl"`                       // vs_currency в CoinGecko
	TradeURL string `yaml:"trade_url" env-default:"https://www.binance.com/pt-BR/trade/BTC_BRL"`
}

type SourceConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout" env-default:"8s"`
	UserAgent string        `yaml:"user_agent" env-default:"btc-ticker-service/1.0"`
}

type SourcesConfig struct {
	Binance   SourceConfig `yaml:"binance"`
	Bybit     SourceConfig `yaml:"bybit"`
	CoinGecko SourceConfig `yaml:"coingecko"`
}

// ResolverConfig — порядок опроса источников (первый — основной)
type ResolverConfig struct {
	Order         []string `yaml:"order" env:"RESOLVER_ORDER" env-separator:"," env-default:"binance,bybit,coingecko"`
	ReferenceMode string   `yaml:"reference_mode" env:"REFERENCE_MODE" env-default:"daily_open"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"` // sqlite|postgres|memory
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"data/ticker.db"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env-default:"localhost"`
	Port            int           `yaml:"port" env-default:"5432"`
	User            string        `yaml:"user" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env-default:"ticker"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"4"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

type TelegramConfig struct {
	Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token   string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
}

type PresentationConfig struct {
	Locale string `yaml:"locale" env:"LOCALE" env-default:"pt_BR"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`  // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

func LoadConfig() (*Config, error) {
	return load(fetchConfigPath())
}

func load(configPath string) (*Config, error) {
	cfg := &Config{}

	if configPath != "" {
		// ReadConfig сам дочитывает переменные окружения
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.Sources.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}

func (s *SourcesConfig) applyDefaults() {
	if s.Binance.BaseURL == "" {
		s.Binance.BaseURL = "https://data-api.binance.vision"
	}
	if s.Bybit.BaseURL == "" {
		s.Bybit.BaseURL = "https://api.bybit.com"
	}
	if s.CoinGecko.BaseURL == "" {
		s.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	}
}

// Validate — проверка значений, которые cleanenv проверить не может
func (c *Config) Validate() error {
	if len(c.Resolver.Order) == 0 {
		return errors.New("resolver.order is empty")
	}
	seen := make(map[string]struct{}, len(c.Resolver.Order))
	for i, name := range c.Resolver.Order {
		name = strings.ToLower(strings.TrimSpace(name))
		if !consts.IsKnownSource(name) {
			return fmt.Errorf("resolver.order: unknown source %q", name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("resolver.order: duplicate source %q", name)
		}
		seen[name] = struct{}{}
		c.Resolver.Order[i] = name
	}

	switch c.Resolver.ReferenceMode {
	case ReferenceDailyOpen, ReferenceTicker24h, ReferenceRolling24h:
	default:
		return fmt.Errorf("resolver.reference_mode: unknown mode %q", c.Resolver.ReferenceMode)
	}

	switch c.Storage.Driver {
	case DriverSQLite, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}

	if c.Scheduler.ActiveInterval <= 0 || c.Scheduler.IdleInterval <= 0 {
		return errors.New("scheduler intervals must be positive")
	}
	if c.Scheduler.IdleThreshold <= 0 {
		return errors.New("scheduler.idle_threshold must be positive")
	}
	if strings.TrimSpace(c.Pair.Symbol) == "" {
		return errors.New("pair.symbol is empty")
	}
	return nil
}

// Source — настройки источника по имени
func (s SourcesConfig) Source(name string) (SourceConfig, bool) {
	switch name {
	case consts.SourceBinance:
		return s.Binance, true
	case consts.SourceBybit:
		return s.Bybit, true
	case consts.SourceCoinGecko:
		return s.CoinGecko, true
	}
	return SourceConfig{}, false
}
