package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/puretext/pkg/cleantext"
	"github.com/dmitrymomot/puretext/pkg/clientip"
	"github.com/dmitrymomot/puretext/pkg/converter"
	"github.com/dmitrymomot/puretext/pkg/httpserver"
	"github.com/dmitrymomot/puretext/pkg/logger"
	"github.com/dmitrymomot/puretext/pkg/preferences"
	"github.com/dmitrymomot/puretext/pkg/ratelimiter"
	"github.com/dmitrymomot/puretext/pkg/requestid"
)

// DefaultMaxBodyBytes caps request bodies at 1 MiB.
const DefaultMaxBodyBytes int64 = 1 << 20

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithMaxBodyBytes sets the request body cap. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(a *API) {
		if n > 0 {
			a.maxBodyBytes = n
		}
	}
}

// WithReadinessChecks adds checks run by /health/ready.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(a *API) {
		a.readiness = append(a.readiness, checks...)
	}
}

// WithRateLimit throttles the /v1 routes per client address.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(a *API) { a.limiter = b }
}

// WithTrustedProxy resolves client addresses from X-Forwarded-For and
// X-Real-IP.
func WithTrustedProxy(trust bool) Option {
	return func(a *API) { a.trustProxy = trust }
}

// API serves the HTTP routes. A nil converter disables the clipboard route.
type API struct {
	sanitizer    *cleantext.Sanitizer
	prefs        preferences.Store
	conv         *converter.Converter
	log          *slog.Logger
	maxBodyBytes int64
	readiness    []func(context.Context) error
	limiter      *ratelimiter.Bucket
	trustProxy   bool
}

func New(prefs preferences.Store, conv *converter.Converter, opts ...Option) *API {
	a := &API{
		sanitizer:    cleantext.New(),
		prefs:        prefs,
		conv:         conv,
		log:          logger.Discard(),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("api"))
	return a
}

// Handler returns the router.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.trustProxy))
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(a.log))

	r.Route("/v1", func(r chi.Router) {
		if a.limiter != nil {
			r.Use(ratelimiter.Middleware(a.limiter, clientip.KeyFromContext, ratelimiter.WithLogger(a.log)))
		}
		r.Use(limitBody(a.maxBodyBytes))
		r.Post("/convert/{mode}", a.wrap(a.convert))
		r.Post("/clipboard/{mode}", a.wrap(a.clipboard))
		r.Get("/mappings/{mode}", a.wrap(a.mappings))
		r.Get("/preferences", a.wrap(a.getPreferences))
		r.Put("/preferences", a.wrap(a.putPreferences))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.Liveness())
		r.Get("/ready", httpserver.Readiness(a.log, a.readiness...))
	})

	return r
}
