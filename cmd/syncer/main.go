package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v6"
	_ "github.com/mattn/go-sqlite3"
	"github.com/quantumspectra/shopify-sync/cmd/syncer/config"
	"github.com/quantumspectra/shopify-sync/internal/decoder"
	"github.com/quantumspectra/shopify-sync/internal/fetcher"
	"github.com/quantumspectra/shopify-sync/internal/handler"
	"github.com/quantumspectra/shopify-sync/internal/platform/rabbitmq"
	"github.com/quantumspectra/shopify-sync/internal/platform/storage"
	"github.com/quantumspectra/shopify-sync/internal/syncer"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open store")
	}

	syn := syncer.NewSyncer(
		fetcher.NewFetcher(
			&http.Client{Timeout: cfg.HTTPTimeout},
			cfg.Shopify.BaseURL(),
			cfg.Shopify.APIToken,
			fetcher.WithPageSize(cfg.Shopify.PageSize),
			fetcher.WithMaxAttempts(cfg.Shopify.MaxAttempts),
		),
		decoder.Decoder{},
		storage.NewSQLite(db, &logger),
		&logger,
		syncer.WithLookback(cfg.Shopify.Lookback),
	)

	han := handler.NewHandler(conn, syn, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("shopify sync up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	closers := errgroup.Group{}

	closers.Go(func() error {
		return db.Close()
	})

	closers.Go(func() error {
		return amqpConnection.Close()
	})

	if err := closers.Wait(); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't close connections")
	}

	logger.Info().Msg("graceful shutdown successful")
}
