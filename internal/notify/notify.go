// Package notify delivers engine events to downstream consumers.
package notify

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// NewProducer builds a synchronous producer that waits for all in-sync
// replicas.
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	return sarama.NewSyncProducer(brokers, cfg)
}

type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaSink(producer sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

// Publish sends value as JSON keyed by key, so events of one run land on one
// partition.
func (s *KafkaSink) Publish(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		zap.L().Error("failed to publish event", zap.String("topic", s.topic), zap.String("key", key), zap.Error(err))
		return err
	}
	zap.L().Debug("event published", zap.String("topic", s.topic), zap.Int32("partition", partition), zap.Int64("offset", offset))
	return nil
}

func (s *KafkaSink) Close() error {
	return s.producer.Close()
}

// LogSink writes events to the application log. It is the sink when no
// brokers are configured.
type LogSink struct{}

func (LogSink) Publish(_ context.Context, key string, value any) error {
	zap.L().Info("event", zap.String("key", key), zap.Any("payload", value))
	return nil
}

func (LogSink) Close() error { return nil }
