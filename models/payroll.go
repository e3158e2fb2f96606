package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payroll statuses
const (
	PayrollPending  = "Pending"
	PayrollApproved = "Approved"
	PayrollPaid     = "Paid"
)

// Daily salary is basic salary over a flat 30 days for every month. The
// real calendar length of the month is deliberately ignored.
const payrollDivisorDays = 30

type Payroll struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	StaffID uuid.UUID `gorm:"type:uuid;index;not null" json:"staffId"`
	Staff   *User     `gorm:"foreignKey:StaffID" json:"staff,omitempty"`

	// Identifying label, e.g. "January 2024"
	Month string `gorm:"not null" json:"month"`

	BasicSalary    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"basicSalary"`
	Allowances     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"allowances"`
	AttendanceDays int             `gorm:"not null" json:"attendanceDays"`
	TotalDays      int             `gorm:"default:30" json:"totalDays"`

	TotalCalculatedSalary decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalCalculatedSalary"`
	Deductions            decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"deductions"`
	Bonuses               decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"bonuses"`
	NetSalary             decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"netSalary"`

	Status      string     `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`

	gorm.Model `json:"-"`
}

func (p *Payroll) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// CalculateSalary derives the month's pay from the basic salary and the
// number of days attended: basic/30 per day, times days attended, plus
// allowances, rounded to the nearest whole unit.
func CalculateSalary(basicSalary decimal.Decimal, attendanceDays int, allowances decimal.Decimal) decimal.Decimal {
	daily := basicSalary.Div(decimal.NewFromInt(payrollDivisorDays))
	total := daily.Mul(decimal.NewFromInt(int64(attendanceDays))).Add(allowances)
	return total.Round(0)
}

// NewPayroll builds a Pending payroll record for staff covering month.
// When allowancesOverride is nil the staff member's configured allowance
// applies. Deductions and bonuses start at zero and feed NetSalary once set.
func NewPayroll(staff *User, month string, attendanceDays int, allowancesOverride *decimal.Decimal) *Payroll {
	allowances := staff.Allowances
	if allowancesOverride != nil {
		allowances = *allowancesOverride
	}

	total := CalculateSalary(staff.BasicSalary, attendanceDays, allowances)

	p := &Payroll{
		StaffID:               staff.ID,
		Month:                 month,
		BasicSalary:           staff.BasicSalary,
		Allowances:            allowances,
		AttendanceDays:        attendanceDays,
		TotalDays:             payrollDivisorDays,
		TotalCalculatedSalary: total,
		Status:                PayrollPending,
	}
	p.RecalculateNet()
	return p
}

// RecalculateNet refreshes NetSalary from the calculated total, bonuses and
// deductions.
func (p *Payroll) RecalculateNet() {
	p.NetSalary = p.TotalCalculatedSalary.Add(p.Bonuses).Sub(p.Deductions)
}

// SetStatus transitions the payroll record. Moving to Paid stamps the payment
// date; repeating the transition just refreshes the timestamp, and the date is
// never cleared by later transitions.
func (p *Payroll) SetStatus(status string, now time.Time) {
	p.Status = status
	if status == PayrollPaid {
		paid := now
		p.PaymentDate = &paid
	}
}
