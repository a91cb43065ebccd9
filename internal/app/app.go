package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gridbill/internal/config"
	"github.com/GlebRadaev/gridbill/internal/events"
	"github.com/GlebRadaev/gridbill/internal/handlers"
	"github.com/GlebRadaev/gridbill/internal/pg"
	"github.com/GlebRadaev/gridbill/internal/ratelimit"
	"github.com/GlebRadaev/gridbill/internal/repo"
	"github.com/GlebRadaev/gridbill/internal/service"
	"github.com/GlebRadaev/gridbill/pkg/auth"
	"github.com/GlebRadaev/gridbill/pkg/clients"
	"github.com/GlebRadaev/gridbill/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	limiter   *ratelimit.Limiter
	publisher events.Publisher
	pool      *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool, cfg.StoreTimeout)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.publisher = buildPublisher(cfg)
	a.srv = service.New(cfg, a.repo, txManager, a.publisher)
	a.limiter, err = ratelimit.New(ratelimit.DefaultClasses, ratelimit.DefaultFallback, cfg.RateLimitEvictInterval)
	if err != nil {
		return fmt.Errorf("can't build rate limiter: %w", err)
	}
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret), a.limiter)

	a.startBackground(ctx)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// buildPublisher always logs events. Broker and webhook sinks are added when
// configured; a broker that can't be reached at startup is skipped.
func buildPublisher(cfg *config.Config) events.Fanout {
	publishers := events.Fanout{events.LogPublisher{}}

	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			zap.L().Warn("amqp publisher disabled", zap.Error(err))
		} else {
			publishers = append(publishers, amqpPublisher)
		}
	}
	if cfg.EventsWebhookURL != "" {
		publishers = append(publishers, events.NewWebhookPublisher(cfg.EventsWebhookURL, clients.NewHTTPClient()))
	}

	return publishers
}

func (a *Application) startBackground(ctx context.Context) {
	a.srv.BillRun.Start(ctx)
	a.limiter.Start(ctx)
}

// stopBackground runs after the http server has drained.
func (a *Application) stopBackground() {
	a.limiter.Stop()
	a.srv.BillRun.Stop()
	if err := a.publisher.Close(); err != nil {
		zap.L().Warn("close event publisher", zap.Error(err))
	}
	a.pool.Close()
	zap.L().Info("background workers stopped")
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Warn("http server shutdown", zap.Error(err))
		}
		a.stopBackground()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
