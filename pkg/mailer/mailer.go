package mailer

import (
	"lms_backend/pkg/logger"

	"github.com/resend/resend-go/v3"
)

type resendMailer struct {
	client *resend.Client
	from   string
}

// New returns a Resend-backed mailer, or a log-only mailer when apiKey is empty.
func New(apiKey string, from string) Mailer {
	if apiKey == "" {
		logger.Warn("RESEND_API_KEY not set, emails will only be logged")
		return logMailer{}
	}
	return NewResendMailer(apiKey, from)
}

func NewResendMailer(apiKey string, from string) Mailer {
	client := resend.NewClient(apiKey)
	return &resendMailer{client: client, from: from}
}

func (r *resendMailer) SendMail(to string, id string, data map[string]any) error {
	params := &resend.SendEmailRequest{
		From: r.from,
		To:   []string{to},
		Template: &resend.EmailTemplate{
			Id:        id,
			Variables: data,
		},
	}

	_, err := r.client.Emails.Send(params)
	return err
}

func (r *resendMailer) SendMailAsync(to string, id string, data map[string]any, operationName string) {
	sendAsync(r, to, id, data, operationName)
}

type logMailer struct{}

func (logMailer) SendMail(to string, id string, data map[string]any) error {
	logger.Info("email not sent, mailer disabled", "to", to, "template", id)
	return nil
}

func (m logMailer) SendMailAsync(to string, id string, data map[string]any, operationName string) {
	_ = m.SendMail(to, id, data)
}

func sendAsync(m Mailer, to string, id string, data map[string]any, operationName string) {
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic in email goroutine", "operation", operationName, "panic", rec)
			}
		}()

		if err := m.SendMail(to, id, data); err != nil {
			logger.Error("failed to send email", "operation", operationName, "to", to, "template", id, "error", err)
		}
	}()
}
