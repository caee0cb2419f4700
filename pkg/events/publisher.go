package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"tastyeats/entity"
)

// OrderPublisher emits created orders to Kafka for downstream consumers
// (analytics, kitchen dashboards). Publishing is best-effort: the order is
// already committed when PublishOrder runs.
type OrderPublisher struct {
	Writer *kafka.Writer
}

func NewOrderPublisher(broker, topic string) *OrderPublisher {
	return &OrderPublisher{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *OrderPublisher) PublishOrder(ctx context.Context, order *entity.Order) error {
	payload, _ := json.Marshal(order)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.ID), 10)),
		Value: payload,
	})
}

func (p *OrderPublisher) Close() error {
	return p.Writer.Close()
}
