package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"hotelier/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

// ToKafkaMessage marshals the value to JSON and targets the given topic.
// The writer carries no topic of its own, so one client serves every topic.
func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	message := kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: jsonValue,
	}

	return message, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

// New builds a client around a single long-lived writer. Writes are
// synchronous so publish errors surface to the caller, and the writer's
// batching transport is reused across publishes until Close.
func New(config *config.Config) Client {
	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	writer := &kafkaGo.Writer{
		Addr: kafkaGo.TCP(config.Kafka.Brokers...),
		Transport: &kafkaGo.Transport{
			SASL: mechanism,
		},
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info().Msg("Kafka client initialized")

	return &kafkaClientImpl{
		writer: writer,
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", topic).Msg("Sent message successfully.")

	return nil
}

// Close flushes pending batches and releases the writer's connections.
func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka writer.")

		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
