package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/profile-normalizer/internal/config"
	"github.com/profile-normalizer/internal/db"
	"github.com/profile-normalizer/internal/logger"
	"github.com/profile-normalizer/internal/store"
	"github.com/profile-normalizer/internal/transform"
	"github.com/profile-normalizer/internal/vocab"
	"github.com/profile-normalizer/internal/web"
	"github.com/profile-normalizer/internal/web/handlers"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("preview server failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	v := vocab.Default()
	var pinger handlers.Pinger

	if cfg.Web.UseDefault {
		log.Info().Msg("Serving built-in vocabularies, database not used")
	} else {
		conn, err := db.NewConnection(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer conn.Close()

		st := store.NewPostgresStore(conn.DB, cfg.Staging.Table, cfg.Staging.KeyColumn)
		if v, err = vocab.Load(ctx, st, cfg.Staging); err != nil {
			return err
		}
		pinger = st
	}

	server := web.NewServer(cfg.Web, transform.Jobs(v), pinger)
	return server.Start(ctx)
}
