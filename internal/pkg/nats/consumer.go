package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/bookingflow/internal/pkg/logger"
)

// MessageHandler processes one message body
type MessageHandler func(message []byte) error

// Consumer is a subscription on a single subject
type Consumer struct {
	subscription *nats.Subscription
}

// NewConsumer subscribes handler to subject. An empty queueGroup fans the
// message out to every instance.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	cb := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = client.conn.QueueSubscribe(subject, queueGroup, cb)
	} else {
		sub, err = client.conn.Subscribe(subject, cb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	return &Consumer{subscription: sub}, nil
}

// Stop unsubscribes
func (c *Consumer) Stop() {
	if c.subscription != nil {
		_ = c.subscription.Unsubscribe()
	}
}
