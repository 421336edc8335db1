package consumer

import (
	"context"
	"database/sql"
	"errors"

	"search-srv/config"
	"search-srv/pkg/discord"
	"search-srv/pkg/kafka"
	"search-srv/pkg/log"
)

// ConsumerServer runs the search-event consumer group. It owns the group
// lifecycle and keeps the search history and popular-search roll current.
type ConsumerServer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig

	postgresDB    *sql.DB
	searchConfig  config.SearchConfig
	kafkaConsumer kafka.IConsumer

	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig

	PostgresDB    *sql.DB
	SearchConfig  config.SearchConfig
	KafkaConsumer kafka.IConsumer

	Discord discord.IDiscord
}

// New creates a new consumer server with dependency validation.
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:             cfg.Logger,
		kafkaConfig:   cfg.KafkaConfig,
		postgresDB:    cfg.PostgresDB,
		searchConfig:  cfg.SearchConfig,
		kafkaConsumer: cfg.KafkaConsumer,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *ConsumerServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if len(srv.kafkaConfig.Brokers) == 0 {
		return errors.New("kafka brokers are required")
	}
	if srv.kafkaConfig.Topic == "" {
		return errors.New("kafka topic is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.kafkaConsumer == nil {
		return errors.New("kafka consumer is required")
	}
	// discord is optional

	return nil
}

// Run starts the consumer loop and blocks until the context is cancelled.
// Consume returns on every rebalance; the loop rejoins until shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	handler := srv.setupDomain()

	go srv.watchErrors(ctx)

	srv.l.Info(ctx, "Consumer Server is running")

	for {
		if err := srv.kafkaConsumer.ConsumeWithContext(ctx, []string{srv.kafkaConfig.Topic}, handler); err != nil {
			if ctx.Err() != nil {
				break
			}
			srv.l.Errorf(ctx, "consumer.Run.Consume: %v", err)
			srv.notify(ctx, err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	if err := srv.kafkaConsumer.Close(); err != nil {
		srv.l.Errorf(ctx, "consumer.Run.Close: %v", err)
	}

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}

func (srv *ConsumerServer) watchErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-srv.kafkaConsumer.Errors():
			if !ok {
				return
			}
			srv.l.Errorf(ctx, "consumer.watchErrors: %v", err)
		}
	}
}

func (srv *ConsumerServer) notify(ctx context.Context, err error) {
	if srv.discord == nil {
		return
	}
	_ = srv.discord.SendError(ctx, "Consumer Error", "search event consumer", err)
}
