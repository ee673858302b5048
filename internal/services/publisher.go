package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ConversionEvent is the message published for each applied conversion.
type ConversionEvent struct {
	EventID         string  `json:"event_id"`
	Amount          float64 `json:"amount"`
	SourceCurrency  string  `json:"source_currency"`
	TargetCurrency  string  `json:"target_currency"`
	Rate            float64 `json:"rate"`
	ConvertedAmount float64 `json:"converted_amount"`
	ConvertedAt     int64   `json:"converted_at"` // Unix seconds
}

// KafkaConversionPublisher publishes conversion events to Kafka.
type KafkaConversionPublisher struct {
	writer KafkaWriter
}

// NewKafkaConversionPublisher creates a publisher around writer.
func NewKafkaConversionPublisher(writer KafkaWriter) *KafkaConversionPublisher {
	return &KafkaConversionPublisher{writer: writer}
}

// PublishConversion writes one event keyed by a fresh event ID.
func (p *KafkaConversionPublisher) PublishConversion(ctx context.Context, result models.ConversionResult) error {
	event := ConversionEvent{
		EventID:         uuid.NewString(),
		Amount:          result.Amount,
		SourceCurrency:  result.SourceCurrency,
		TargetCurrency:  result.TargetCurrency,
		Rate:            result.Rate,
		ConvertedAmount: result.ConvertedAmount,
		ConvertedAt:     result.ConvertedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal conversion event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write conversion event: %w", err)
	}

	logger.Log.Infow("conversion published to Kafka", "event_id", event.EventID,
		"source", event.SourceCurrency, "target", event.TargetCurrency)
	return nil
}

// Close closes the underlying writer.
func (p *KafkaConversionPublisher) Close() error {
	return p.writer.Close()
}
