package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"inmogestion-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed mailer. With an empty API key
// every send is logged and skipped, which keeps local development working
// without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string) error {
	subject := "Bienvenido a InmoGestión"
	plain := fmt.Sprintf("Hola %s, tu cuenta de agente ya está activa.", name)
	html := fmt.Sprintf(`<html><body>
		<h2>Bienvenido a InmoGestión</h2>
		<p>Hola <strong>%s</strong>, tu cuenta de agente ya está activa.</p>
		<p>Ya puedes registrar propiedades y agendar visitas.</p>
	</body></html>`, name)
	return s.send(ctx, email, name, subject, plain, html)
}

func (s *emailService) SendVisitConfirmation(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error {
	subject := fmt.Sprintf("Visita agendada: %s", listingTitle)
	plain := fmt.Sprintf("Visita con %s el %s %s para la propiedad %s.", clientName, visitDate, visitTime, listingTitle)
	html := fmt.Sprintf(`<html><body>
		<h2>Visita agendada</h2>
		<p>Propiedad: <strong>%s</strong></p>
		<p>Cliente: %s</p>
		<p>Fecha: %s %s</p>
	</body></html>`, listingTitle, clientName, visitDate, visitTime)
	return s.send(ctx, email, agentName, subject, plain, html)
}

func (s *emailService) SendVisitReminder(ctx context.Context, email, agentName, listingTitle, clientName, visitDate, visitTime string) error {
	subject := fmt.Sprintf("Recordatorio de visita: %s", listingTitle)
	plain := fmt.Sprintf("Mañana %s %s tienes visita con %s en %s.", visitDate, visitTime, clientName, listingTitle)
	html := fmt.Sprintf(`<html><body>
		<h2>Recordatorio de visita</h2>
		<p>Propiedad: <strong>%s</strong></p>
		<p>Cliente: %s</p>
		<p>Fecha: %s %s</p>
	</body></html>`, listingTitle, clientName, visitDate, visitTime)
	return s.send(ctx, email, agentName, subject, plain, html)
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	if s.apiKey == "" {
		logger.Info("email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil, "status", response.StatusCode)
	return nil
}
