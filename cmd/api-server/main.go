package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"studentsignal/internal/catalog"
	"studentsignal/internal/config"
	"studentsignal/internal/logging"
	"studentsignal/internal/store"
	"studentsignal/pkg/database"
)

func main() {
	cfg := config.Load()
	log, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("api-server: stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	backend, err := store.Open(openCtx, cfg.Store.URL, cfg.Store.Database)
	cancel()
	if err != nil {
		return err
	}
	defer backend.Close(context.Background())

	repo, err := openRepo(ctx, backend, cfg.Store)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(repo, string(backend.Kind), log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("api-server: listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("backend", string(backend.Kind)),
			zap.String("collection", cfg.Store.Collection))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("api-server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openRepo picks the catalog reader for the backend. SQLite gets an empty
// table up front so listings work before the first pipeline run.
func openRepo(ctx context.Context, b *store.Backend, cfg config.StoreConfig) (catalog.Repo, error) {
	if b.Kind == store.KindSQLite {
		if err := database.Migrate(ctx, b.SQL, cfg.Collection); err != nil {
			return nil, err
		}
		return catalog.NewSQLiteRepo(b.SQL, cfg.Collection)
	}
	return catalog.NewMongoRepo(b.Mongo, cfg.Database, cfg.Collection), nil
}
