package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/D4sh12/e-commerce-api/internal/producer"
	"github.com/D4sh12/e-commerce-api/internal/sender"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EmailDeliverer доставляет одно письмо. Реализуется sender.EmailSender.
type EmailDeliverer interface {
	SendEmail(n sender.EmailNotification) error
}

// knownTemplates — шаблоны, для которых есть файлы в TMPL_DIR.
// Событие с любым другим шаблоном отбрасывается.
var knownTemplates = map[string]struct{}{
	producer.TemplateConfirmation:  {},
	producer.TemplatePasswordReset: {},
}

type Config struct {
	Brokers []string
	GroupID string
	Topic   string
}

type KafkaEmailConsumer struct {
	reader  *kafka.Reader
	deliver EmailDeliverer
	log     *zap.Logger
}

func NewKafkaEmailConsumer(cfg Config, deliver EmailDeliverer, log *zap.Logger) *KafkaEmailConsumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:           cfg.Brokers,
		GroupID:           cfg.GroupID,
		Topic:             cfg.Topic,
		MinBytes:          10e3,
		MaxBytes:          10e6,
		CommitInterval:    time.Second,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	})
	return &KafkaEmailConsumer{reader: r, deliver: deliver, log: log}
}

func (c *KafkaEmailConsumer) Run(ctx context.Context) error {
	c.log.Info("kafka consumer started")
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			c.log.Error("read message", zap.Error(err))
			continue
		}
		if err := c.handle(m.Value); err != nil {
			c.log.Error("handle email event", zap.ByteString("value", m.Value), zap.Error(err))
		}
	}
}

// handle разбирает событие и отправляет письмо. Битое событие логируется
// и пропускается: offset уже закоммичен, падать на нём нельзя.
func (c *KafkaEmailConsumer) handle(value []byte) error {
	var em producer.EmailMessage
	if err := json.Unmarshal(value, &em); err != nil {
		return fmt.Errorf("unmarshal email message: %w", err)
	}
	if em.To == "" {
		return errors.New("empty recipient")
	}
	if _, ok := knownTemplates[em.Template]; !ok {
		return fmt.Errorf("unknown template %q", em.Template)
	}

	if err := c.deliver.SendEmail(sender.EmailNotification{
		To:       em.To,
		Subject:  em.Subject,
		Template: em.Template,
		Data:     em.Data,
	}); err != nil {
		return fmt.Errorf("send email to %s: %w", em.To, err)
	}
	c.log.Info("email sent", zap.String("to", em.To), zap.String("template", em.Template))
	return nil
}

func (c *KafkaEmailConsumer) Close() error { return c.reader.Close() }
