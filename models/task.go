package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task execution statuses
const (
	TaskPending    = "Pending"
	TaskInProgress = "In Progress"
	TaskReview     = "Review"
	TaskCompleted  = "Completed"
)

// Drawing approval statuses
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

// A rejected drawing sends the task back to In Progress at this fixed
// progress value, whatever progress it had before.
const rejectedProgressReset = 50

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`

	ProjectID uuid.UUID `gorm:"type:uuid;index;not null" json:"projectId"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	AssignedToID uuid.UUID `gorm:"type:uuid;index;not null" json:"assignedToId"`
	AssignedTo   *User     `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`

	Deadline time.Time `gorm:"not null" json:"deadline"`

	Status   string `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	Progress int    `gorm:"default:0" json:"progress"` // 0 to 100

	DrawingURL     string `json:"drawingUrl"`
	ApprovalStatus string `gorm:"type:varchar(20);default:'Pending'" json:"approvalStatus"`
	ApprovalNotes  string `json:"approvalNotes"`

	gorm.Model `json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// SubmitDrawing records the deliverable and moves the task into review,
// resetting any earlier approval outcome.
func (t *Task) SubmitDrawing(drawingURL string) {
	t.DrawingURL = drawingURL
	t.Status = TaskReview
	t.ApprovalStatus = ApprovalPending
}

// ApplyApproval records the review decision. Approval completes the task at
// 100% progress; rejection sends it back to In Progress at the fixed reset
// value. Any other decision is invalid.
func (t *Task) ApplyApproval(decision, notes string) error {
	switch decision {
	case ApprovalApproved:
		t.Status = TaskCompleted
		t.Progress = 100
	case ApprovalRejected:
		t.Status = TaskInProgress
		t.Progress = rejectedProgressReset
	default:
		return fmt.Errorf("invalid approval decision: %q", decision)
	}
	t.ApprovalStatus = decision
	t.ApprovalNotes = notes
	return nil
}
