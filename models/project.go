package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project lifecycle phases, in their natural order
const (
	PhaseConceptDesign    = "Concept Design"
	PhaseDesignStage      = "Design Stage"
	Phase3DVisualization  = "3D Visualization"
	PhaseApprovalDrawings = "Approval Drawings"
	PhaseWorkingDrawings  = "Working Drawings"
	PhaseSiteExecution    = "Site Execution"
	PhaseCompletion       = "Completion"
)

// Phase entry statuses
const (
	PhasePending    = "Pending"
	PhaseInProgress = "In Progress"
	PhaseCompleted  = "Completed"
)

// Project statuses
const (
	ProjectActive    = "Active"
	ProjectCompleted = "Completed"
	ProjectOnHold    = "On Hold"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	AssignedStaff []User `gorm:"many2many:project_staff;" json:"assignedStaff,omitempty"`

	CurrentPhase string         `gorm:"type:varchar(30);default:'Concept Design'" json:"currentPhase"`
	Phases       []ProjectPhase `gorm:"foreignKey:ProjectID" json:"phases"`

	Status string `gorm:"type:varchar(20);default:'Active'" json:"status"`

	gorm.Model `json:"-"`
}

// ProjectPhase is one entry in a project's phase history. There is at most one
// entry per phase name; Position preserves the order entries were opened in.
type ProjectPhase struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProjectID uuid.UUID  `gorm:"type:uuid;index;not null" json:"projectId"`
	Name      string     `gorm:"type:varchar(30);not null" json:"name"`
	Status    string     `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Position  int        `json:"position"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

func (ph *ProjectPhase) BeforeCreate(tx *gorm.DB) (err error) {
	if ph.ID == uuid.Nil {
		ph.ID = uuid.New()
	}
	return
}

// ValidPhaseName reports whether name is one of the fixed project phases.
func ValidPhaseName(name string) bool {
	switch name {
	case PhaseConceptDesign, PhaseDesignStage, Phase3DVisualization,
		PhaseApprovalDrawings, PhaseWorkingDrawings, PhaseSiteExecution, PhaseCompletion:
		return true
	}
	return false
}

// AdvancePhase moves the project to phaseName and records it in the phase
// history. An existing entry is updated in place: its status changes only when
// phaseStatus is non-empty, and reaching Completed stamps EndDate exactly once.
// A phase not seen before is appended with StartDate = now and status
// phaseStatus, defaulting to In Progress. After the call CurrentPhase always
// has a matching history entry.
func (p *Project) AdvancePhase(phaseName, phaseStatus string, now time.Time) {
	if phaseName == "" {
		return
	}
	p.CurrentPhase = phaseName

	for i := range p.Phases {
		if p.Phases[i].Name != phaseName {
			continue
		}
		if phaseStatus != "" {
			p.Phases[i].Status = phaseStatus
		}
		if p.Phases[i].Status == PhaseCompleted && p.Phases[i].EndDate == nil {
			end := now
			p.Phases[i].EndDate = &end
		}
		return
	}

	status := phaseStatus
	if status == "" {
		status = PhaseInProgress
	}
	entry := ProjectPhase{
		ProjectID: p.ID,
		Name:      phaseName,
		Status:    status,
		StartDate: now,
		Position:  len(p.Phases),
	}
	if status == PhaseCompleted {
		end := now
		entry.EndDate = &end
	}
	p.Phases = append(p.Phases, entry)
}
