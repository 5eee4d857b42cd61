package kafka

import (
	"context"
	"fmt"

	"fulfillment/internal/pkg/config"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
)

type Producer struct {
	log      logger.Logger
	producer sarama.AsyncProducer
	done     chan struct{}
}

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Errors = true
	cfg.Producer.Return.Successes = false

	return cfg, nil
}

// NewProducer connects an async producer. Delivery errors are only logged:
// everything published through it is fire-and-forget.
func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("component", "kafka-producer"),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewAsyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create async producer: %w", err)
	}

	return newProducer(kafkaLog, producer), nil
}

func newProducer(log logger.Logger, producer sarama.AsyncProducer) *Producer {
	p := &Producer{
		log:      log,
		producer: producer,
		done:     make(chan struct{}),
	}
	go p.drainErrors()
	return p
}

func (p *Producer) Input() chan<- *sarama.ProducerMessage {
	return p.producer.Input()
}

func (p *Producer) drainErrors() {
	defer close(p.done)

	for err := range p.producer.Errors() {
		p.log.With(
			logger.NewField("topic", err.Msg.Topic),
			logger.NewField("error", err.Err),
		).Warn("kafka publish failed")
	}
}

// Close flushes buffered messages and waits for the error drain to finish.
func (p *Producer) Close() error {
	p.producer.AsyncClose()
	<-p.done
	return nil
}
