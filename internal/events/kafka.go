package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes roster events to a single topic, creating the
// writer lazily on first publish.
type KafkaPublisher struct {
	brokers []string
	topic   string
	timeout time.Duration

	mu     sync.Mutex
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher. timeout bounds each publish;
// zero disables the bound.
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topic: topic, timeout: timeout}
}

// PublishRosterChanged writes the event keyed by activity name so all
// mutations of one roster land on the same partition in order.
func (p *KafkaPublisher) PublishRosterChanged(ctx context.Context, ev RosterChanged) error {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}

	msg, err := newMessage(ev)
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.getWriter().WriteMessages(ctx, msg)
}

func newMessage(ev RosterChanged) (kafka.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(ev.Activity),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("roster." + ev.Action)},
			{Key: "event_id", Value: []byte(ev.EventID)},
		},
	}, nil
}

func (p *KafkaPublisher) getWriter() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the writer if one was created.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
