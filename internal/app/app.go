package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"postsvc/config"
	"postsvc/internal/adapter/in/rest"
	"postsvc/internal/adapter/out/events/natsevents"
	"postsvc/internal/adapter/out/pubsub/inmemory"
	memstore "postsvc/internal/adapter/out/storage/inmemory"
	pgstore "postsvc/internal/adapter/out/storage/postgres"
	"postsvc/internal/service"
	"postsvc/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/gorilla/handlers"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
)

const natsClientName = "postsvc"

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
	nc   *nats.Conn
	bus  *inmemory.PostBus
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	mode, err := service.ParseMutationMode(cfg.MutationMode)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg}

	var sessions service.SessionProvider
	switch cfg.StorageType {
	case config.StorageTypePostgres:
		a.pool, err = pgstore.NewPool(ctx, pgstore.PoolConfig{
			DSN:      cfg.Postgres.GetDSN(),
			Schema:   cfg.Postgres.Schema,
			MaxConns: cfg.Postgres.MaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		sessions = pgstore.NewClient(a.pool, trmpgx.DefaultCtxGetter)

	case config.StorageTypeInMemory:
		sessions = memstore.NewStore()

	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}

	var events service.EventPublisher
	if cfg.NATS.URL != "" {
		a.nc, err = natsevents.Connect(cfg.NATS.URL, natsClientName)
		if err != nil {
			a.closeResources(ctx)
			return nil, fmt.Errorf("nats: %w", err)
		}
		events = natsevents.NewPublisher(a.nc)
	} else {
		a.bus = inmemory.New(0)
		events = a.bus
	}

	postSvc := service.NewPostService(mode, events)

	var h http.Handler = rest.NewHandler(postSvc, sessions)
	if origins := cfg.HTTP.CORSAllowedOrigins; len(origins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(h)
	}

	baseCtx := context.WithoutCancel(ctx)

	addr := ":" + cfg.HTTP.Port
	a.srv = &http.Server{
		Addr:              addr,
		Handler:           h,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized",
		"addr", addr,
		"storage", cfg.StorageType,
		"mutation_mode", mode,
		"nats", a.nc != nil,
	)
	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.bus != nil {
		go logEvents(ctx, a.bus.Subscribe(ctx))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := a.srv.Shutdown(shCtx); err != nil {
			log.Warn("http shutdown", "error", err)
		}
		a.closeResources(ctx)
		return nil

	case err := <-errCh:
		a.closeResources(ctx)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) closeResources(ctx context.Context) {
	if a.nc != nil {
		if err := a.nc.Drain(); err != nil {
			logger.FromContext(ctx).Warn("nats drain", "error", err)
			a.nc.Close()
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

// logEvents is the in-process consumer used when no broker is configured.
func logEvents(ctx context.Context, events <-chan service.Event) {
	log := logger.FromContext(ctx)
	for event := range events {
		log.Debug("post event",
			"type", event.Type,
			"post_id", event.Post.ID,
			"likes", event.Post.Likes,
		)
	}
}
