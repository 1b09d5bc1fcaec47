package statusevents

import (
	"context"
	"encoding/json"
	"strconv"

	"fretes/internal/entities"
	"fretes/pkg/logger"
)

type producer interface {
	Send(topic string, key []byte, value []byte) (int32, int64, error)
}

// Gateway публикует события смены статуса фрахта. Доставка best-effort:
// переход уже закоммичен, поэтому сбой публикации только логируется.
type Gateway struct {
	log      logger.Logger
	producer producer
	topic    string
}

func New(log logger.Logger, producer producer, topic string) *Gateway {
	gatewayLog := log.With(
		logger.NewField("topic", topic),
	)

	return &Gateway{
		log:      gatewayLog,
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) StatusChanged(_ context.Context, event entities.FreightStatusChangedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		g.log.With(
			logger.NewField("error", err),
			logger.NewField("freight_id", event.FreightID),
		).Error("marshal status changed event")
		EventPublishTotal.WithLabelValues("error").Inc()
		return
	}

	key := []byte(strconv.FormatInt(event.FreightID, 10))

	partition, offset, err := g.producer.Send(g.topic, key, payload)
	if err != nil {
		g.log.With(
			logger.NewField("error", err),
			logger.NewField("freight_id", event.FreightID),
		).Error("publish status changed event")
		EventPublishTotal.WithLabelValues("error").Inc()
		return
	}

	EventPublishTotal.WithLabelValues("ok").Inc()
	g.log.With(
		logger.NewField("freight_id", event.FreightID),
		logger.NewField("status", event.Next.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("status changed event published")
}
