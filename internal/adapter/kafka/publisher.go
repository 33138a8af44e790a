package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

// ErrClosed is returned by PublishDelivery once Close has been called.
var ErrClosed = errors.New("delivery publisher closed")

// DeliveryPublisher publishes delivery events to a Kafka topic, keyed by
// campaign id so events of one campaign stay ordered.
type DeliveryPublisher struct {
	producer  sarama.AsyncProducer
	topic     string
	log       *slog.Logger
	wg        sync.WaitGroup
	closeOnce sync.Once

	// mu guards closed; publishers hold it shared while writing to Input.
	mu     sync.RWMutex
	closed bool
}

// NewConfig returns the producer configuration DeliveryPublisher expects.
func NewConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	return cfg
}

// NewDeliveryPublisher wraps producer. Call Start before publishing and
// Close on shutdown.
func NewDeliveryPublisher(producer sarama.AsyncProducer, topic string, log *slog.Logger) *DeliveryPublisher {
	return &DeliveryPublisher{producer: producer, topic: topic, log: log}
}

// Start launches the handlers draining the success and error channels.
// They return once Close has shut the producer down.
func (p *DeliveryPublisher) Start() {
	p.wg.Add(2)
	go p.handleSuccesses()
	go p.handleErrors()
}

func (p *DeliveryPublisher) handleSuccesses() {
	defer p.wg.Done()
	for msg := range p.producer.Successes() {
		key, _ := msg.Key.Encode()
		p.log.Debug("delivery event published",
			slog.String("topic", msg.Topic),
			slog.Int64("offset", msg.Offset),
			slog.String("key", string(key)))
	}
}

func (p *DeliveryPublisher) handleErrors() {
	defer p.wg.Done()
	for err := range p.producer.Errors() {
		p.log.Error("delivery event not published",
			slog.String("topic", err.Msg.Topic),
			slog.Any("error", err.Err))
	}
}

// PublishDelivery queues event. It only blocks while the producer input
// is full, and gives up when ctx is done.
func (p *DeliveryPublisher) PublishDelivery(ctx context.Context, event port.DeliveryEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal delivery event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.CampaignID),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending messages and waits for the handlers. Later
// PublishDelivery calls fail with ErrClosed.
func (p *DeliveryPublisher) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		p.producer.AsyncClose()
		p.wg.Wait()
	})
}
