package notification

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
)

const enqueueTimeout = 200 * time.Millisecond

// Notifier publishes customer notifications for booked deliveries. Nothing
// it does can fail the caller: undeliverable notifications are logged and
// dropped.
type Notifier struct {
	log      handlerLogger
	producer producer
	topic    string
}

func New(log handlerLogger, producer producer, topic string) *Notifier {
	return &Notifier{
		log:      log.With(logger.NewField("component", "notification")),
		producer: producer,
		topic:    topic,
	}
}

func (n *Notifier) Notify(ctx context.Context, profile entities.ShippingProfile, schedule entities.DeliverySchedule) {
	log := n.log.With(
		logger.NewField("order", schedule.Identity.Key()),
		logger.NewField("tracking_number", schedule.TrackingNumber),
	)

	if profile.Email == "" && profile.ContactPhone == "" {
		log.Info("no customer contact, notification skipped")
		return
	}

	payload, err := json.Marshal(newMessage(profile, schedule, time.Now().UTC()))
	if err != nil {
		log.Warn("notification encoding failed", logger.NewField("error", err))
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(schedule.Identity.Key()),
		Value: sarama.ByteEncoder(payload),
	}

	timer := time.NewTimer(enqueueTimeout)
	defer timer.Stop()

	select {
	case n.producer.Input() <- msg:
	case <-ctx.Done():
		log.Warn("notification dropped", logger.NewField("error", ctx.Err()))
	case <-timer.C:
		log.Warn("notification dropped, producer not accepting messages")
	}
}
