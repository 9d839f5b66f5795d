package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/metrics"
	"github.com/piresc/bookingflow/internal/pkg/models"
	natspkg "github.com/piresc/bookingflow/internal/pkg/nats"
	nsqpkg "github.com/piresc/bookingflow/internal/pkg/nsq"
	"github.com/piresc/bookingflow/internal/pkg/retry"
)

// Event drivers
const (
	DriverNATS = "nats"
	DriverNSQ  = "nsq"
	DriverNone = "none"
)

// Publisher emits domain events. Publishing is best effort: callers log
// failures and carry on.
//
//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/piresc/bookingflow/internal/pkg/events Publisher
type Publisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
}

// Handler processes one raw event body
type Handler func(data []byte) error

// Subscriber delivers events published by any instance
type Subscriber interface {
	Subscribe(subject string, h Handler) (stop func(), err error)
}

// Bus bundles the publisher and subscriber of one driver
type Bus struct {
	Publisher  Publisher
	Subscriber Subscriber
	close      func()
	check      func() error
}

// CheckHealth reports whether the driver connection is usable
func (b *Bus) CheckHealth(ctx context.Context) error {
	if b.check == nil {
		return nil
	}
	return b.check()
}

// Close releases the driver connections
func (b *Bus) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open connects the driver named in cfg.Events.Driver. Publishing goes
// through a retrying, metered wrapper.
func Open(cfg *models.Config, m *metrics.Metrics, log *logger.ZapLogger) (*Bus, error) {
	retryCfg := retry.DefaultConfig()
	if cfg.Events.MaxRetries > 0 {
		retryCfg.MaxRetries = cfg.Events.MaxRetries
	}

	switch cfg.Events.Driver {
	case DriverNATS:
		client, err := natspkg.NewClient(cfg.NATS.URL, cfg.App.Name)
		if err != nil {
			return nil, err
		}
		return &Bus{
			Publisher:  NewRetryingPublisher(natspkg.NewProducer(client), retryCfg, m, log),
			Subscriber: &natsSubscriber{client: client},
			close:      client.Close,
			check: func() error {
				if !client.IsConnected() {
					return errors.New("nats connection is down")
				}
				return nil
			},
		}, nil

	case DriverNSQ:
		producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			return nil, err
		}
		return &Bus{
			Publisher:  NewRetryingPublisher(producer, retryCfg, m, log),
			Subscriber: &nsqSubscriber{address: cfg.NSQ.Address, channel: ephemeralChannel(cfg.App.Name)},
			close:      producer.Stop,
			check:      producer.Ping,
		}, nil

	case DriverNone, "":
		return &Bus{Publisher: NoopPublisher{}, Subscriber: NoopSubscriber{}}, nil
	}

	return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
}

// RetryingPublisher retries transient publish failures and records the
// outcome per subject
type RetryingPublisher struct {
	next    Publisher
	retrier *retry.Retrier
	metrics *metrics.Metrics
	logger  *logger.ZapLogger
}

// NewRetryingPublisher wraps next. m may be nil.
func NewRetryingPublisher(next Publisher, cfg retry.Config, m *metrics.Metrics, log *logger.ZapLogger) *RetryingPublisher {
	return &RetryingPublisher{
		next:    next,
		retrier: retry.New(cfg, log),
		metrics: m,
		logger:  log,
	}
}

func (p *RetryingPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	if _, err := json.Marshal(payload); err != nil {
		p.record(subject, "invalid")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err := p.retrier.Execute(ctx, func(ctx context.Context) error {
		return p.next.Publish(ctx, subject, payload)
	})
	if err != nil {
		p.record(subject, "failed")
		return err
	}

	p.record(subject, "published")
	p.logger.Debug("Event published", logger.String("subject", subject))
	return nil
}

func (p *RetryingPublisher) record(subject, result string) {
	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(subject, result).Inc()
	}
}

// NoopPublisher drops every event
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// NoopSubscriber never delivers anything
type NoopSubscriber struct{}

func (NoopSubscriber) Subscribe(string, Handler) (func(), error) { return func() {}, nil }

type natsSubscriber struct {
	client *natspkg.Client
}

func (s *natsSubscriber) Subscribe(subject string, h Handler) (func(), error) {
	consumer, err := natspkg.NewConsumer(s.client, subject, "", natspkg.MessageHandler(h))
	if err != nil {
		return nil, err
	}
	return consumer.Stop, nil
}

type nsqSubscriber struct {
	address string
	channel string
}

func (s *nsqSubscriber) Subscribe(subject string, h Handler) (func(), error) {
	consumer, err := nsqpkg.NewConsumer(subject, s.channel, s.address, nsqpkg.MessageHandler(h))
	if err != nil {
		return nil, err
	}
	return consumer.Stop, nil
}

// ephemeralChannel gives every instance its own NSQ channel so each one
// sees every message
func ephemeralChannel(app string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%s#ephemeral", app, host)
}
