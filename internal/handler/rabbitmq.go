package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quantumspectra/shopify-sync/internal/platform/models"
	"github.com/quantumspectra/shopify-sync/internal/platform/rabbitmq"
	"github.com/quantumspectra/shopify-sync/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Syncer --filename syncer.go
//go:generate mockery --name Consumer --filename consumer.go

// Syncer syncs shop entities into the local store.
type Syncer interface {
	RunSync(ctx context.Context, full bool) (*models.SyncSummary, error)
}

// Consumer consumes queue messages and passes them to a handler function.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq    Consumer
	syncer Syncer
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq Consumer, syncer Syncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		syncer: syncer,
		logger: logger,
	}
}

// Start starts consuming and handling sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Bool("full", cmd.Full).
			Msg("sync started")

		summary, err := h.syncer.RunSync(ctx, cmd.Full)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		h.logger.Info().
			Bool("full", cmd.Full).
			Int32("products", summary.Products).
			Int32("customers", summary.Customers).
			Int32("orders", summary.Orders).
			Int32("failedRecords", summary.FailedRecords).
			Msg("sync finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, err
}
