// Package app is the launcher's composition root: it wires the config,
// storage, API client, auth core, game bridge, and web server together
// and runs them until shutdown.
package app

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/badmarinesstudio/horizon-web/internal/api"
	"github.com/badmarinesstudio/horizon-web/internal/auth"
	"github.com/badmarinesstudio/horizon-web/internal/config"
	"github.com/badmarinesstudio/horizon-web/internal/game"
	"github.com/badmarinesstudio/horizon-web/internal/logging"
	"github.com/badmarinesstudio/horizon-web/internal/metrics"
	"github.com/badmarinesstudio/horizon-web/internal/storage/localstate"
	"github.com/badmarinesstudio/horizon-web/internal/web"
)

// tokenKeyPrefix qualifies the persisted token per environment so a
// development launcher never picks up a production session.
const tokenKeyPrefix = "bc_access_token_"

// App is the assembled launcher.
type App struct {
	cfg        *config.Config
	log        logging.Logger
	db         *sql.DB
	client     *api.HTTPClient
	tokens     *auth.TokenCache
	users      *auth.UserCache
	controller *auth.Controller
	state      *auth.State
	server     *web.Server
}

// New wires the launcher from its config. The returned App owns the
// local state database until Run returns.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(cfg.LogLevel)

	store, db, err := localstate.Open(ctx, cfg.LocalStatePath)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenCache(ctx, store, tokenKeyPrefix+cfg.Environment, log)
	users := auth.NewUserCache()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	client, err := api.New(cfg.APIBaseURL,
		api.WithLogger(log),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLanguageFunc(func() string { return cfg.DefaultLanguage }),
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	controller := auth.NewController(client, tokens, users, log, m)
	client.Transport().SetRefreshHook(controller.RefreshAuth)
	state := auth.NewState(tokens, users, controller, log)

	gameSvc := game.New(
		&http.Client{Timeout: cfg.RequestTimeout},
		cfg.ResolveActiveVersionURL(),
		cfg.GameContentURL,
		cfg.Production(),
		log,
	)
	gameHandler := game.NewHandler(gameSvc, tokens, state, controller, log)

	router, err := web.NewRouter(web.Deps{
		Client:         client,
		Controller:     controller,
		State:          state,
		Game:           gameHandler,
		Metrics:        m,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Log:            log,
		DefaultLang:    cfg.DefaultLanguage,
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{
		cfg:        cfg,
		log:        log,
		db:         db,
		client:     client,
		tokens:     tokens,
		users:      users,
		controller: controller,
		state:      state,
		server:     web.NewServer(cfg.ListenAddr, router, log),
	}, nil
}

// Run starts the auth state and serves until the context is canceled or
// an interrupt arrives.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.state.Start(ctx)
	defer a.state.Stop()

	return a.server.Run(ctx)
}
