package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance statuses
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLeave   = "Leave"
	AttendanceHalfDay = "Half Day"
)

// ErrAlreadyCheckedOut is returned when a staff member marks attendance a
// third time in the same day.
var ErrAlreadyCheckedOut = errors.New("already checked out for today")

type Attendance struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Date   time.Time `gorm:"index;not null" json:"date"`
	Status string    `gorm:"type:varchar(20);default:'Present'" json:"status"`

	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Notes        string     `json:"notes"`

	gorm.Model `json:"-"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// NewCheckIn opens the day's attendance record for a staff member. Status
// defaults to Present when the caller leaves it empty.
func NewCheckIn(userID uuid.UUID, status, notes string, now time.Time) *Attendance {
	if status == "" {
		status = AttendancePresent
	}
	checkIn := now
	return &Attendance{
		UserID:      userID,
		Date:        now,
		Status:      status,
		CheckInTime: &checkIn,
		Notes:       notes,
	}
}

// CheckOut closes the day's record. Status and notes overwrite the check-in
// values only when provided. A second check-out fails with
// ErrAlreadyCheckedOut.
func (a *Attendance) CheckOut(status, notes string, now time.Time) error {
	if a.CheckOutTime != nil {
		return ErrAlreadyCheckedOut
	}
	checkOut := now
	a.CheckOutTime = &checkOut
	if notes != "" {
		a.Notes = notes
	}
	if status != "" {
		a.Status = status
	}
	return nil
}
