package messaging

import (
	"flower-shop-service/src/internal/model"
	kafka "flower-shop-service/src/pkg/kafka/confluent"
	"flower-shop-service/src/pkg/log"
)

type OrderProducer struct {
	OrderCreatedProducer Producer[*model.OrderCreatedEvent]
}

func NewOrderProducer(producer kafka.Producer, log log.Log) *OrderProducer {
	if producer == nil {
		return nil
	}
	return &OrderProducer{
		OrderCreatedProducer: Producer[*model.OrderCreatedEvent]{
			Producer: producer,
			Topic:    "order-created",
			Log:      log,
		},
	}
}

func (p *OrderProducer) SendOrderCreated(event *model.OrderCreatedEvent) error {
	return p.OrderCreatedProducer.Send(event)
}
