package kafka

import (
	"fmt"
	"sync"

	"search-srv/config"
	"search-srv/pkg/kafka"
)

var (
	producerInstance kafka.IProducer
	producerOnce     sync.Once
	mu               sync.RWMutex
	initErr          error
)

// ConnectProducer initializes the Kafka producer using a singleton pattern.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if producerInstance != nil {
		return producerInstance, nil
	}

	if initErr != nil {
		producerOnce = sync.Once{}
		initErr = nil
	}

	var err error
	producerOnce.Do(func() {
		client, e := kafka.NewProducer(kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.Topic,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Kafka producer: %w", e)
			initErr = err
			return
		}
		producerInstance = client
	})

	return producerInstance, err
}

// NewConsumer creates a Kafka consumer group for the configured brokers.
// Consumers are not singletons; each caller owns and closes its group.
func NewConsumer(cfg config.KafkaConfig) (kafka.IConsumer, error) {
	return kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
	})
}

// HealthCheck checks if the producer is initialized.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if producerInstance == nil {
		return fmt.Errorf("Kafka producer not initialized")
	}
	return producerInstance.HealthCheck()
}

// DisconnectProducer closes the Kafka producer.
func DisconnectProducer() error {
	mu.Lock()
	defer mu.Unlock()

	if producerInstance != nil {
		if err := producerInstance.Close(); err != nil {
			return err
		}
		producerInstance = nil
		producerOnce = sync.Once{}
		initErr = nil
	}
	return nil
}
