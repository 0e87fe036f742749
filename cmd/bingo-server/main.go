package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	apphost "video-bingo/internal/app/host"
	apppublic "video-bingo/internal/app/public"
	"video-bingo/internal/catalog"
	"video-bingo/internal/config"
	"video-bingo/internal/eventconfig"
	"video-bingo/internal/logging"
	"video-bingo/internal/migrations"
	"video-bingo/internal/store"
	httptransport "video-bingo/internal/transport/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadApp()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}
	if err := logging.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("logging init failed")
	}
	defer logging.Close()

	if err := run(ctx, cfg.Server); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.ServerConfig) error {
	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Ping(ctx); err != nil {
		return err
	}

	if cfg.AutoMigrate {
		if err := migrations.Run(st.SQLDB()); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	}
	if err := st.EnsureDefaultPatterns(ctx, catalog.DefaultPatterns()); err != nil {
		return err
	}
	if cfg.SeedDemo {
		if err := st.EnsureDemoVenue(ctx); err != nil {
			return err
		}
	}

	local := eventconfig.DefaultLocal()
	hostSvc, err := apphost.NewService(st, st, local, cfg)
	if err != nil {
		return err
	}
	publicSvc := apppublic.NewService(st, st, eventconfig.NewChain(local, st, st))

	r := httptransport.NewRouter(hostSvc, publicSvc, st, cfg)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
