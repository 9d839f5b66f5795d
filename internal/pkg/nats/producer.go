package nats

import (
	"context"
	"encoding/json"
	"fmt"
)

// Producer publishes JSON encoded events
type Producer struct {
	client *Client
}

// NewProducer creates a producer on an existing client
func NewProducer(client *Client) *Producer {
	return &Producer{client: client}
}

// Publish marshals message and publishes it on subject. NATS core publish
// only buffers locally, so ctx is checked before the write.
func (p *Producer) Publish(ctx context.Context, subject string, message interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.client.conn.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}
