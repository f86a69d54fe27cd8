// Command puretextd serves the sanitizer, the clipboard converter and the
// preferences over a local HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/puretext/pkg/api"
	"github.com/dmitrymomot/puretext/pkg/clientip"
	"github.com/dmitrymomot/puretext/pkg/clipboard"
	"github.com/dmitrymomot/puretext/pkg/config"
	"github.com/dmitrymomot/puretext/pkg/converter"
	"github.com/dmitrymomot/puretext/pkg/environment"
	"github.com/dmitrymomot/puretext/pkg/httpserver"
	"github.com/dmitrymomot/puretext/pkg/logger"
	"github.com/dmitrymomot/puretext/pkg/preferences"
	"github.com/dmitrymomot/puretext/pkg/ratelimiter"
	"github.com/dmitrymomot/puretext/pkg/redis"
	"github.com/dmitrymomot/puretext/pkg/requestid"
)

type appConfig struct {
	Env                 string        `env:"APP_ENV" envDefault:"development"`
	Name                string        `env:"APP_NAME" envDefault:"puretext"`
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:"127.0.0.1:7878"`
	ShutdownTimeout     time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxBodyBytes        int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	PreferencesBackend  string        `env:"PREFERENCES_BACKEND" envDefault:"file"`
	PreferencesFile     string        `env:"PREFERENCES_FILE" envDefault:"puretext.yaml"`
	PreferencesRedisKey string        `env:"PREFERENCES_REDIS_KEY" envDefault:"puretext:preferences"`
	PasteCommand        string        `env:"PASTE_COMMAND" envDefault:"xdotool key --clearmodifiers ctrl+v"`
	ClipboardRead       string        `env:"CLIPBOARD_READ_COMMAND"`
	ClipboardWrite      string        `env:"CLIPBOARD_WRITE_COMMAND"`
	RateLimitEnabled    bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	TrustProxyHeaders   bool          `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "puretextd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadEnv(); err != nil {
		// A missing .env is normal outside development.
		slog.Debug("no .env loaded", logger.Error(err))
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))

	var client *goredis.Client
	if cfg.PreferencesBackend == "redis" {
		var rcfg redis.Config
		if err := config.Load(&rcfg); err != nil {
			return err
		}
		c, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := c.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		}()
		client = c
	}

	store, err := openStore(ctx, cfg, client, log)
	if err != nil {
		return err
	}

	apiOpts := []api.Option{
		api.WithLogger(log),
		api.WithMaxBodyBytes(cfg.MaxBodyBytes),
		api.WithTrustedProxy(cfg.TrustProxyHeaders),
	}
	if client != nil {
		apiOpts = append(apiOpts, api.WithReadinessChecks(redis.Healthcheck(client)))
	}
	if cfg.RateLimitEnabled {
		bucket, closeLimiter, err := openLimiter(client)
		if err != nil {
			return err
		}
		defer closeLimiter()
		apiOpts = append(apiOpts, api.WithRateLimit(bucket))
	}

	var conv *converter.Converter
	if cb, name, err := openClipboard(cfg); err != nil {
		log.WarnContext(ctx, "clipboard route disabled", logger.Error(err))
	} else {
		log.InfoContext(ctx, "clipboard ready", slog.String("backend", name))
		conv = converter.New(cb, store,
			converter.WithLogger(log),
			converter.WithPaster(converter.NewCommandPaster(converter.ParseCommand(cfg.PasteCommand))),
			converter.WithNotifier(converter.NewBellNotifier(os.Stderr)),
		)
	}

	a := api.New(store, conv, apiOpts...)

	srv := httpserver.New(
		httpserver.WithAddr(cfg.HTTPAddr),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log),
	)
	return srv.Run(ctx, a.Handler())
}

func openStore(ctx context.Context, cfg appConfig, client *goredis.Client, log *slog.Logger) (preferences.Store, error) {
	switch cfg.PreferencesBackend {
	case "memory":
		log.InfoContext(ctx, "using in-memory preferences")
		return preferences.NewMemoryStore(), nil
	case "file", "":
		log.InfoContext(ctx, "using preferences file", slog.String("path", cfg.PreferencesFile))
		return preferences.NewFileStore(cfg.PreferencesFile), nil
	case "redis":
		log.InfoContext(ctx, "using redis preferences", slog.String("key", cfg.PreferencesRedisKey))
		return preferences.NewRedisStore(client, cfg.PreferencesRedisKey), nil
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", cfg.PreferencesBackend)
	}
}

// openClipboard prefers configured helper commands over the platform
// clipboard.
func openClipboard(cfg appConfig) (clipboard.Clipboard, string, error) {
	if cfg.ClipboardRead != "" || cfg.ClipboardWrite != "" {
		cb, err := clipboard.NewCommand(cfg.ClipboardRead, cfg.ClipboardWrite)
		if err != nil {
			return nil, "", err
		}
		return cb, cb.Name(), nil
	}
	cb, err := clipboard.Detect()
	if err != nil {
		return nil, "", err
	}
	return cb, cb.Name(), nil
}

// openLimiter shares buckets through Redis when a client is connected.
func openLimiter(client *goredis.Client) (*ratelimiter.Bucket, func(), error) {
	var rlcfg ratelimiter.Config
	if err := config.Load(&rlcfg); err != nil {
		return nil, nil, err
	}

	var (
		store   ratelimiter.Store
		closeFn = func() {}
	)
	if client != nil {
		store = ratelimiter.NewRedisStore(client, "")
	} else {
		mem := ratelimiter.NewMemoryStore()
		store, closeFn = mem, mem.Close
	}

	bucket, err := ratelimiter.NewBucket(store, rlcfg)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return bucket, closeFn, nil
}
