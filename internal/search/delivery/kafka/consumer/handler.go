package consumer

import (
	"encoding/json"
	"errors"

	"github.com/IBM/sarama"

	"search-srv/internal/search"
	"search-srv/pkg/log"
)

// Handler consumes search events and maintains the search history and
// popular-search roll through the use case.
type Handler struct {
	l  log.Logger
	uc search.UseCase
}

var _ sarama.ConsumerGroupHandler = &Handler{}

// New - Factory
func New(l log.Logger, uc search.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim processes messages one by one. Malformed events are marked
// and skipped; store failures leave the message unmarked so the next
// session retries it.
func (h *Handler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for msg := range claim.Messages() {
		var event search.SearchPerformedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			h.l.Warnf(ctx, "search.consumer.ConsumeClaim.Unmarshal offset=%d: %v", msg.Offset, err)
			session.MarkMessage(msg, "")
			continue
		}

		if err := h.uc.RecordSearch(ctx, event); err != nil {
			if errors.Is(err, search.ErrInvalidEvent) {
				h.l.Warnf(ctx, "search.consumer.ConsumeClaim.RecordSearch offset=%d: %v", msg.Offset, err)
				session.MarkMessage(msg, "")
				continue
			}
			h.l.Errorf(ctx, "search.consumer.ConsumeClaim.RecordSearch offset=%d: %v", msg.Offset, err)
			return err
		}

		session.MarkMessage(msg, "")
	}

	return nil
}
