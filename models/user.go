package models

import (
	"time"

	"boxway-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Staff roles
const (
	RoleAdmin      = "Admin"
	RoleArchitect  = "Architect"
	RoleHR         = "HR"
	RoleAccountant = "Accountant"
	RoleIntern     = "Intern"
	RoleManager    = "Manager"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Role          string     `gorm:"type:varchar(20);not null;default:'Intern'" json:"role"`
	Designation   string     `json:"designation"`
	Gender        string     `gorm:"type:varchar(10)" json:"gender"`
	DOB           *time.Time `json:"dob"`
	Qualification string     `json:"qualification"`

	ContactPhone   string `json:"contactPhone"`
	ContactAddress string `json:"contactAddress"`

	BankAccountName   string `json:"bankAccountName"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankName          string `json:"bankName"`
	BankIFSCCode      string `json:"bankIfscCode"`

	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`
	EmergencyContactPhone        string `json:"emergencyContactPhone"`

	JoiningDate time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"joiningDate"`

	BasicSalary decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"basicSalary"`
	Allowances  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"allowances"`

	IsActive bool `gorm:"default:true" json:"isActive"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// CanReviewTasks reports whether the role may approve or reject submitted drawings.
func (u *User) CanReviewTasks() bool {
	return u.Role == RoleAdmin || u.Role == RoleArchitect || u.Role == RoleManager
}
