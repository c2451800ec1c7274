package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"lotus/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Publisher sends domain events to the configured topic. When the broker is
// disabled by configuration every publish is a logged no-op; delivery is
// best-effort and never blocks the calling flow.
type Publisher interface {
	Publish(ctx context.Context, messages ...Message) error
}

type publisherImpl struct {
	config  *config.Config
	writer  *kafkaGo.Writer
	enabled bool
}

func New(config *config.Config) Publisher {
	if !config.Event.Kafka.Enable {
		log.Info().Msg("Kafka publisher disabled by configuration")

		return &publisherImpl{config: config, enabled: false}
	}

	mechanism := plain.Mechanism{
		Username: config.Event.Kafka.Username,
		Password: config.Event.Kafka.Password,
	}

	transport := &kafkaGo.Transport{}
	if mechanism.Username != "" {
		transport.SASL = mechanism
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Event.Kafka.Brokers...),
		Topic:                  config.Event.Kafka.Topic,
		Transport:              transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
	}

	log.Info().Str("topic", config.Event.Kafka.Topic).Msg("Kafka publisher initialized")

	return &publisherImpl{
		config:  config,
		writer:  writer,
		enabled: true,
	}
}

func (k *publisherImpl) Publish(ctx context.Context, messages ...Message) error {
	if !k.enabled {
		return nil
	}

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", k.config.Event.Kafka.Topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	return nil
}
