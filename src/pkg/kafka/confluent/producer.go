package kafka

import (
	"fmt"

	"flower-shop-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type producer struct {
	producer *k.Producer
	log      log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	p, err := k.NewProducer(config)
	if err != nil {
		return nil, err
	}

	prod := &producer{
		producer: p,
		log:      logger,
	}

	// drain delivery reports so the internal queue never fills up
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *k.Message:
				if ev.TopicPartition.Error != nil {
					logger.Error("kafka-producer", fmt.Sprintf("delivery failed: %v", ev.TopicPartition.Error), "deliveryReport", "")
				}
			case k.Error:
				logger.Error("kafka-producer", ev.Error(), "event", "")
			}
		}
	}()

	return prod, nil
}

func (p *producer) Publish(message *k.Message) error {
	return p.producer.Produce(message, nil)
}
