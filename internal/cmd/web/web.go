// Package web parses web command flags and starts the browser-facing server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/arenahq/arena/internal/platform/cmd"
	"github.com/arenahq/arena/internal/services/web/app"
	"github.com/arenahq/arena/internal/services/web/modules/shop"
	"github.com/shopspring/decimal"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string          `env:"ARENA_WEB_HTTP_ADDR"               envDefault:"localhost:8086"`
	APIBaseURL          string          `env:"ARENA_API_BASE_URL"                envDefault:"http://localhost:8000"`
	APITimeout          time.Duration   `env:"ARENA_API_TIMEOUT"                 envDefault:"10s"`
	SessionStore        string          `env:"ARENA_WEB_SESSION_STORE"           envDefault:"sqlite"`
	SessionDBPath       string          `env:"ARENA_WEB_SESSION_DB_PATH"         envDefault:"data/web-sessions.db"`
	RedisAddr           string          `env:"ARENA_WEB_REDIS_ADDR"`
	SessionTTL          time.Duration   `env:"ARENA_WEB_SESSION_TTL"             envDefault:"168h"`
	TrustForwardedProto bool            `env:"ARENA_WEB_TRUST_FORWARDED_PROTO"   envDefault:"false"`
	TaxRate             decimal.Decimal `env:"ARENA_SHOP_TAX_RATE"               envDefault:"0.075"`
	Currency            string          `env:"ARENA_SHOP_CURRENCY"               envDefault:"NGN"`
	PlaceholderStats    bool            `env:"ARENA_DASHBOARD_PLACEHOLDER_STATS" envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "esports backend base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "per-call backend timeout")
	fs.StringVar(&cfg.SessionStore, "session-store", cfg.SessionStore, "session store backend (sqlite or redis)")
	fs.StringVar(&cfg.SessionDBPath, "session-db-path", cfg.SessionDBPath, "sqlite session store path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "redis session store address")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honour X-Forwarded-Proto")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := app.NewServer(ctx, cfg.appConfig())
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func (c Config) appConfig() app.Config {
	return app.Config{
		HTTPAddr:            c.HTTPAddr,
		APIBaseURL:          c.APIBaseURL,
		APITimeout:          c.APITimeout,
		SessionStore:        c.SessionStore,
		SessionDBPath:       c.SessionDBPath,
		RedisAddr:           c.RedisAddr,
		SessionTTL:          c.SessionTTL,
		TrustForwardedProto: c.TrustForwardedProto,
		Shop:                shop.Config{TaxRate: c.TaxRate, Currency: c.Currency},
		PlaceholderStats:    c.PlaceholderStats,
	}
}
