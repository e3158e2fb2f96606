package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StringSlice is a jsonb-backed list column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, s)
}

// Settings is the firm-wide configuration singleton. It is loaded explicitly
// and handed to the flows that need it rather than read from ambient state.
type Settings struct {
	CompanyName    string `gorm:"default:'Boxway Architecture'" json:"companyName"`
	CompanyAddress string `json:"companyAddress"`

	// Default monthly basic salary per role, used when a staff record
	// carries no salary of its own
	SalaryIntern     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"salaryIntern"`
	SalaryArchitect  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"salaryArchitect"`
	SalaryHR         decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"salaryHr"`
	SalaryAccountant decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"salaryAccountant"`

	DefaultProjectPhases StringSlice `gorm:"type:jsonb" json:"defaultProjectPhases"`

	Theme string `gorm:"type:varchar(10);default:'light'" json:"theme"`

	TwoFactorAuth       bool `gorm:"default:false" json:"twoFactorAuth"`
	PasswordExpiryDays  int  `gorm:"default:90" json:"passwordExpiryDays"`
	SessionTimeoutLimit int  `gorm:"default:60" json:"sessionTimeoutLimit"` // minutes

	EmailNotification bool `gorm:"default:true" json:"emailNotification"`
	TaskReminder      bool `gorm:"default:true" json:"taskReminder"`
	ApprovalRequest   bool `gorm:"default:true" json:"approvalRequest"`
	SiteIssueAlert    bool `gorm:"default:true" json:"siteIssueAlert"`

	AllowSelfRegistration bool   `gorm:"default:false" json:"allowSelfRegistration"`
	DefaultUserRole       string `gorm:"default:'Intern'" json:"defaultUserRole"`

	gorm.Model `json:"-"`
}

// DefaultSettings returns the configuration used until an Admin saves one.
func DefaultSettings() *Settings {
	return &Settings{
		CompanyName: "Boxway Architecture",
		DefaultProjectPhases: StringSlice{
			PhaseConceptDesign,
			PhaseDesignStage,
			Phase3DVisualization,
			PhaseApprovalDrawings,
			PhaseWorkingDrawings,
			PhaseSiteExecution,
			PhaseCompletion,
		},
		Theme:               "light",
		PasswordExpiryDays:  90,
		SessionTimeoutLimit: 60,
		EmailNotification:   true,
		TaskReminder:        true,
		ApprovalRequest:     true,
		SiteIssueAlert:      true,
		DefaultUserRole:     RoleIntern,
	}
}

// SalaryFor returns the configured default basic salary for a role, zero when
// the role has no structure.
func (s *Settings) SalaryFor(role string) decimal.Decimal {
	switch strings.ToLower(role) {
	case "intern":
		return s.SalaryIntern
	case "architect":
		return s.SalaryArchitect
	case "hr":
		return s.SalaryHR
	case "accountant":
		return s.SalaryAccountant
	}
	return decimal.Zero
}
