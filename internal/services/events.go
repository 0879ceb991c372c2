package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventObserver counts publish attempts.
type EventObserver interface {
	ObserveEvent(eventType, result string)
}

// EventPublisher publishes domain events after a workflow committed.
// Publishing is best-effort: failures are logged and never reach the caller.
type EventPublisher struct {
	kafkaWriter KafkaWriter
	observer    EventObserver
}

// NewEventPublisher creates an EventPublisher. A nil writer disables publishing.
func NewEventPublisher(kafkaWriter KafkaWriter, observer EventObserver) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter, observer: observer}
}

// Publish writes the event keyed by its application id.
func (p *EventPublisher) Publish(ctx context.Context, event models.Event) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}

	if p.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		p.observe(event.Type, "skipped")
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		p.observe(event.Type, "failed")
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ApplicationID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		p.observe(event.Type, "failed")
		return
	}

	logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type, "application_id", event.ApplicationID)
	p.observe(event.Type, "ok")
}

func (p *EventPublisher) observe(eventType, result string) {
	if p.observer != nil {
		p.observer.ObserveEvent(eventType, result)
	}
}
