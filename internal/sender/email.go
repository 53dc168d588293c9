package sender

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/D4sh12/e-commerce-api/config"

	gopkgmail "gopkg.in/gomail.v2"
)

type EmailNotification struct {
	To       string
	Subject  string
	Template string         // имя шаблона (например, "confirmation_email")
	Data     map[string]any // данные для шаблона
}

type EmailSender struct {
	cfg *config.NotifierConfig
}

func NewEmailSender(cfg *config.NotifierConfig) *EmailSender {
	return &EmailSender{cfg: cfg}
}

func (s *EmailSender) SendEmail(n EmailNotification) error {
	htmlBody, err := s.render(n.Template+".html", n.Data)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	plainBody, err := s.render(n.Template+".txt", n.Data)
	if err != nil {
		return fmt.Errorf("render plain: %w", err)
	}

	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.cfg.SMTPFrom)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	d := gopkgmail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)
	d.SSL = true
	return d.DialAndSend(m)
}

func (s *EmailSender) render(name string, data map[string]any) (string, error) {
	path := filepath.Join(s.cfg.TMPLDir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
