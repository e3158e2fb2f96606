// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index" json:"clientId,omitempty"`
	Type         string     `gorm:"type:varchar(30)" json:"type"`    // phase_update, task_deadline
	Channel      string     `gorm:"type:varchar(20)" json:"channel"` // email, sms, whatsapp
	Recipient    string     `json:"recipient"`
	Subject      string     `json:"subject"`
	Message      string     `gorm:"type:text" json:"message"`
	Status       string     `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string     `gorm:"type:text" json:"errorMessage"`
	SentAt       time.Time  `json:"sentAt"`
	gorm.Model   `json:"-"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
