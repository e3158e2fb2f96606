// services/notification_service.go
package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"boxway-backend/models"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Notifier delivers a message to a single recipient. Implementations are
// best-effort collaborators: callers decide whether a failure matters.
type Notifier interface {
	Notify(recipient, subject, body string) error
}

// EmailNotifier sends mail through the SMTP server configured in the
// environment (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, SMTP_FROM).
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailNotifierFromEnv() *EmailNotifier {
	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}
	return &EmailNotifier{
		dialer: gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   os.Getenv("SMTP_FROM"),
	}
}

func (n *EmailNotifier) Notify(recipient, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return n.dialer.DialAndSend(m)
}

// NotificationService sends side-channel notifications and records every
// attempt in the notification log.
type NotificationService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewNotificationService(db *gorm.DB, notifier Notifier) *NotificationService {
	return &NotificationService{db: db, notifier: notifier}
}

// NotifyPhaseUpdate mails the project's client about a phase change. The
// delivery is best-effort: whatever happens, the phase change stands, and the
// returned notice describes the outcome for the caller's response payload.
func (s *NotificationService) NotifyPhaseUpdate(project *models.Project, client *models.Client, phaseStatus, remarks string) string {
	if client == nil || client.Email == "" {
		return "Notification skipped: project has no client contact"
	}

	subject := fmt.Sprintf("Project update: %s", project.Title)
	body := fmt.Sprintf("Dear %s,\n\nYour project %q has moved to the %s phase.",
		client.Name, project.Title, project.CurrentPhase)
	if phaseStatus != "" {
		body += fmt.Sprintf("\nPhase status: %s.", phaseStatus)
	}
	if remarks != "" {
		body += fmt.Sprintf("\nRemarks: %s", remarks)
	}
	body += "\n\nRegards,\nBoxway Architecture"

	err := s.notifier.Notify(client.Email, subject, body)

	entry := models.NotificationLog{
		ClientID:  &client.ID,
		Type:      "phase_update",
		Channel:   "email",
		Recipient: client.Email,
		Subject:   subject,
		Message:   body,
		Status:    "sent",
		SentAt:    time.Now(),
	}
	if err != nil {
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
	}
	if logErr := s.db.Create(&entry).Error; logErr != nil {
		log.Error().Err(logErr).Str("client", client.ID.String()).Msg("failed to record notification")
	}

	if err != nil {
		log.Warn().Err(err).Str("project", project.ID.String()).Msg("phase update notification failed")
		return "Phase updated, but client notification failed: " + err.Error()
	}
	return "Client notified at " + client.Email
}
