package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Шаблоны писем, которые умеет рендерить notifier (templates/<name>.{html,txt}).
const (
	TemplateConfirmation  = "confirmation_email"
	TemplatePasswordReset = "password_reset_email"
)

type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type EmailMessage struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

// NewConfirmationEmail — письмо активации аккаунта: код подтверждения
// плюс токен для ссылки активации.
func NewConfirmationEmail(to, firstName, confirmationCode, activationToken string) EmailMessage {
	return EmailMessage{
		To:       to,
		Subject:  "Confirmation Email",
		Template: TemplateConfirmation,
		Data: map[string]any{
			"first_name":        firstName,
			"confirmation_code": confirmationCode,
			"activation_token":  activationToken,
		},
	}
}

// NewPasswordResetEmail — письмо с кодом сброса пароля.
func NewPasswordResetEmail(to, firstName, resetCode string) EmailMessage {
	return EmailMessage{
		To:       to,
		Subject:  "Password Reset Request",
		Template: TemplatePasswordReset,
		Data: map[string]any{
			"first_name": firstName,
			"reset_code": resetCode,
		},
	}
}

type EmailProducer struct {
	writer  *kafka.Writer
	timeout time.Duration
}

func NewEmailProducer(cfg Config) *EmailProducer {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	return &EmailProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		timeout: cfg.WriteTimeout,
	}
}

func (p *EmailProducer) SendEmail(ctx context.Context, key string, msg EmailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *EmailProducer) Close() error {
	return p.writer.Close()
}
