package producer

import (
	"context"
	"encoding/json"

	"search-srv/internal/search"
	pkgKafka "search-srv/pkg/kafka"
	"search-srv/pkg/log"
)

type implPublisher struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

var _ search.EventPublisher = &implPublisher{}

// New - Factory
func New(l log.Logger, producer pkgKafka.IProducer) search.EventPublisher {
	return &implPublisher{
		l:        l,
		producer: producer,
	}
}

// PublishSearchPerformed emits one search event. Events of the same caller
// share a key so the consumer sees them in order.
func (p *implPublisher) PublishSearchPerformed(ctx context.Context, event search.SearchPerformedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.l.Errorf(ctx, "search.kafka.PublishSearchPerformed.Marshal: %v", err)
		return err
	}

	key := event.DeviceID
	if key == "" {
		key = event.ID
	}

	if err := p.producer.Publish([]byte(key), value); err != nil {
		p.l.Errorf(ctx, "search.kafka.PublishSearchPerformed.Publish: %v", err)
		return err
	}

	return nil
}
