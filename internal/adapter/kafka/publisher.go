// Package kafka publishes built harm reports to a sink topic for
// downstream consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/storm-harm-report/internal/config"
	"github.com/couchcryptid/storm-harm-report/internal/report"
)

// Publisher produces ranked lists to the configured report topic.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured report topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaReportTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// PublishReport serializes the report's four ranked lists and publishes
// them in a single WriteMessages call, one message per harm field keyed
// by the field name.
func (p *Publisher) PublishReport(ctx context.Context, rep *report.Report) error {
	lists := rep.Lists()
	msgs := make([]kafkago.Message, len(lists))
	for i, list := range lists {
		msg, err := serializeToMessage(list, rep.GeneratedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a ranked list into a Kafka message.
func serializeToMessage(list report.RankedList, generatedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(list)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize ranked list: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(list.Field),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "field", Value: []byte(list.Field)},
			{Key: "generated_at", Value: []byte(generatedAt.Format(time.RFC3339))},
		},
	}, nil
}
