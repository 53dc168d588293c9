package consumer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/D4sh12/e-commerce-api/internal/producer"
	"github.com/D4sh12/e-commerce-api/internal/sender"

	"go.uber.org/zap"
)

type mockDeliverer struct {
	sendFunc  func(n sender.EmailNotification) error
	delivered []sender.EmailNotification
}

func (m *mockDeliverer) SendEmail(n sender.EmailNotification) error {
	m.delivered = append(m.delivered, n)
	if m.sendFunc != nil {
		return m.sendFunc(n)
	}
	return nil
}

func newTestConsumer(d *mockDeliverer) *KafkaEmailConsumer {
	return &KafkaEmailConsumer{deliver: d, log: zap.NewNop()}
}

func TestHandle_DeliversKnownTemplates(t *testing.T) {
	d := &mockDeliverer{}
	c := newTestConsumer(d)

	msg := producer.NewConfirmationEmail("john@example.com", "John", "123456", "token")
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := c.handle(raw); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(d.delivered) != 1 {
		t.Fatalf("delivered expected 1 got %d", len(d.delivered))
	}
	got := d.delivered[0]
	if got.To != "john@example.com" || got.Template != producer.TemplateConfirmation {
		t.Fatalf("delivered mismatch: %+v", got)
	}
	if got.Data["confirmation_code"] != "123456" {
		t.Fatalf("data mismatch: %v", got.Data)
	}
}

func TestHandle_RejectsBadEvents(t *testing.T) {
	cases := []struct {
		name  string
		value []byte
	}{
		{"malformed json", []byte(`{not json`)},
		{"empty recipient", []byte(`{"to":"","subject":"x","template":"confirmation_email"}`)},
		{"unknown template", []byte(`{"to":"john@example.com","subject":"x","template":"spam_blast"}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &mockDeliverer{}
			c := newTestConsumer(d)
			if err := c.handle(tc.value); err == nil {
				t.Fatal("expected error, got nil")
			}
			if len(d.delivered) != 0 {
				t.Fatalf("nothing should be delivered, got %d", len(d.delivered))
			}
		})
	}
}

func TestHandle_WrapsDeliveryError(t *testing.T) {
	sentinel := errors.New("smtp down")
	d := &mockDeliverer{sendFunc: func(n sender.EmailNotification) error { return sentinel }}
	c := newTestConsumer(d)

	raw, _ := json.Marshal(producer.NewPasswordResetEmail("john@example.com", "John", "654321"))
	err := c.handle(raw)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped delivery error, got %v", err)
	}
}
