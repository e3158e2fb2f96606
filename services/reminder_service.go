// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"boxway-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// Tasks due within this window get a reminder
const reminderWindow = 48 * time.Hour

// ReminderService sends deadline reminders to assigned staff over SMS or
// WhatsApp, driven by a daily cron schedule.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the deadline sweep every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendDeadlineReminders); err != nil {
		log.Error().Err(err).Msg("failed to schedule deadline reminders")
		return
	}

	c.Start()
	log.Info().Msg("reminder scheduler started")
}

// SendDeadlineReminders notifies every staff member whose open tasks fall due
// within the reminder window. The Settings taskReminder toggle can switch the
// whole sweep off.
func (s *ReminderService) SendDeadlineReminders() {
	var settings models.Settings
	if err := s.db.First(&settings).Error; err == nil && !settings.TaskReminder {
		log.Info().Msg("task reminders disabled in settings, skipping sweep")
		return
	}

	now := time.Now()
	var tasks []models.Task
	if err := s.db.Preload("AssignedTo").Preload("Project").
		Where("status <> ? AND deadline BETWEEN ? AND ?", models.TaskCompleted, now, now.Add(reminderWindow)).
		Find(&tasks).Error; err != nil {
		log.Error().Err(err).Msg("failed to fetch tasks due soon")
		return
	}

	for i := range tasks {
		s.sendTaskReminder(&tasks[i])
	}

	log.Info().Int("tasks", len(tasks)).Msg("deadline reminder sweep completed")
}

func (s *ReminderService) sendTaskReminder(task *models.Task) {
	if task.AssignedTo == nil || task.AssignedTo.ContactPhone == "" {
		return
	}

	projectTitle := ""
	if task.Project != nil {
		projectTitle = task.Project.Title
	}
	message := fmt.Sprintf("Reminder: task %q (%s) is due on %s.",
		task.Title, projectTitle, task.Deadline.Format("02 Jan 2006"))

	to := task.AssignedTo.ContactPhone
	channel := "sms"
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if whatsapp := os.Getenv("TWILIO_WHATSAPP_NUMBER"); whatsapp != "" {
		to = "whatsapp:" + to
		from = "whatsapp:" + whatsapp
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	_, err := s.client.Api.CreateMessage(params)

	entry := models.NotificationLog{
		UserID:    &task.AssignedToID,
		Type:      "task_deadline",
		Channel:   channel,
		Recipient: task.AssignedTo.ContactPhone,
		Message:   message,
		Status:    "sent",
		SentAt:    time.Now(),
	}
	if err != nil {
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
		log.Warn().Err(err).Str("task", task.ID.String()).Msg("failed to send deadline reminder")
	}

	if logErr := s.db.Create(&entry).Error; logErr != nil {
		log.Error().Err(logErr).Str("task", task.ID.String()).Msg("failed to record reminder")
	}
}
