package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report types
const (
	ReportProgress  = "Progress"
	ReportFinancial = "Financial"
	ReportSafety    = "Safety"
	ReportMaterial  = "Material"
	ReportTimeline  = "Timeline"
)

type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`
	Description string    `json:"description"`

	// Path or URL to the generated PDF
	FileURL string `gorm:"not null" json:"fileUrl"`

	GeneratedByID uuid.UUID `gorm:"type:uuid;index;not null" json:"generatedById"`
	GeneratedBy   *User     `gorm:"foreignKey:GeneratedByID" json:"generatedBy,omitempty"`

	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"projectId,omitempty"`
	Project   *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	DateRangeStart *time.Time `json:"dateRangeStart,omitempty"`
	DateRangeEnd   *time.Time `json:"dateRangeEnd,omitempty"`

	gorm.Model `json:"-"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
