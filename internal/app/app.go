package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/teamvest/internal/accrual"
	"github.com/GlebRadaev/teamvest/internal/cache"
	"github.com/GlebRadaev/teamvest/internal/config"
	"github.com/GlebRadaev/teamvest/internal/handlers"
	"github.com/GlebRadaev/teamvest/internal/lock"
	"github.com/GlebRadaev/teamvest/internal/notify"
	"github.com/GlebRadaev/teamvest/internal/payout"
	"github.com/GlebRadaev/teamvest/internal/pg"
	"github.com/GlebRadaev/teamvest/internal/repo"
	"github.com/GlebRadaev/teamvest/internal/service"
	"github.com/GlebRadaev/teamvest/internal/service/treeservice"
	"github.com/GlebRadaev/teamvest/pkg/clients"
	"github.com/GlebRadaev/teamvest/pkg/logger"
)

const statsCachePrefix = "team:stats"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type sink interface {
	accrual.Sink
	Close() error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	payout *payout.Service

	pool   *pgxpool.Pool
	redis  *redis.Client
	sink   sink
	locker accrual.Locker

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
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}
	a.cfg = cfg

	if err = logger.InitLogger(cfg.LogLvl); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.pool = pool
	version, err := pg.Migrate(ctx, pool)
	if err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	zap.L().Info("database schema is up to date", zap.Int64("version", version))
	txManager := pg.NewTXManager(pool)

	statsCache, err := a.initRedis(ctx)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}
	if err := a.initSink(); err != nil {
		return fmt.Errorf("can't connect to kafka: %w", err)
	}

	a.repo = repo.New(pg.New(pool))
	a.srv, err = service.New(cfg, a.repo, service.Deps{
		TXManager: txManager,
		Cache:     statsCache,
		Sink:      a.sink,
	})
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv)
	a.payout = payout.New(cfg.TransferAddress, a.srv.WalletService, clients.NewHTTPClient(), cfg.PayoutInterval, cfg.PayoutWorkers)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startWorkers(ctx)

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

// initRedis connects the stats cache and the accrual lock. Without an address
// the cache is disabled and the scheduler runs unlocked.
func (a *Application) initRedis(ctx context.Context) (treeservice.StatsCache, error) {
	if a.cfg.RedisAddress == "" {
		zap.L().Warn("redis is not configured, team stats are not cached and accrual runs are not locked")
		return cache.Nop{}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddress,
		Password: a.cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	a.redis = client
	a.locker = lock.New(client)
	return cache.New(client, statsCachePrefix, a.cfg.StatsCacheTTL), nil
}

func (a *Application) initSink() error {
	if len(a.cfg.KafkaBrokers) == 0 {
		a.sink = notify.LogSink{}
		return nil
	}
	producer, err := notify.NewProducer(a.cfg.KafkaBrokers)
	if err != nil {
		return err
	}
	a.sink = notify.NewKafkaSink(producer, a.cfg.KafkaTopic)
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startWorkers runs the accrual scheduler and the payout worker. Both are
// tracked by wg so shared resources are released only after they return.
func (a *Application) startWorkers(ctx context.Context) {
	scheduler := accrual.NewScheduler(a.srv.Engine, a.locker, a.cfg.AccrualInterval)

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		scheduler.Run(ctx)
	}()
	go func() {
		defer a.wg.Done()
		a.payout.Run(ctx)
	}()
}

func (a *Application) close() {
	if a.srv != nil {
		a.srv.Engine.Close()
	}
	if a.sink != nil {
		if err := a.sink.Close(); err != nil {
			zap.L().Error("failed to close event sink", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Error("failed to close redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
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
	a.close()

	return appErr
}
