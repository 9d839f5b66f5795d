package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
)

// Producer publishes JSON encoded events to nsqd
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a producer and pings the daemon
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	producer.SetLoggerLevel(nsq.LogLevelWarning)
	return &Producer{producer: producer}, nil
}

// Publish marshals message and publishes it on topic, waiting for the ack
func (p *Producer) Publish(ctx context.Context, topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	done := make(chan *nsq.ProducerTransaction, 1)
	if err := p.producer.PublishAsync(topic, msgBytes, done); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case trans := <-done:
		if trans.Error != nil {
			return fmt.Errorf("failed to publish message: %w", trans.Error)
		}
		return nil
	}
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
