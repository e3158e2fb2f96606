package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewCheckIn(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 5, 4, 9, 12, 0, 0, time.UTC)

	a := NewCheckIn(userID, "", "traffic on the ring road", now)

	if a.UserID != userID {
		t.Errorf("UserID = %v", a.UserID)
	}
	if a.Status != AttendancePresent {
		t.Errorf("Status = %q, want default %q", a.Status, AttendancePresent)
	}
	if a.CheckInTime == nil || !a.CheckInTime.Equal(now) {
		t.Errorf("CheckInTime = %v, want %v", a.CheckInTime, now)
	}
	if a.CheckOutTime != nil {
		t.Errorf("CheckOutTime = %v, want nil", a.CheckOutTime)
	}
	if a.Notes != "traffic on the ring road" {
		t.Errorf("Notes = %q", a.Notes)
	}
}

func TestNewCheckInExplicitStatus(t *testing.T) {
	a := NewCheckIn(uuid.New(), AttendanceHalfDay, "", time.Now())
	if a.Status != AttendanceHalfDay {
		t.Errorf("Status = %q, want %q", a.Status, AttendanceHalfDay)
	}
}

func TestCheckOut(t *testing.T) {
	morning := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	evening := morning.Add(9 * time.Hour)
	a := NewCheckIn(uuid.New(), "", "", morning)

	if err := a.CheckOut("", "", evening); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if a.CheckOutTime == nil || !a.CheckOutTime.Equal(evening) {
		t.Errorf("CheckOutTime = %v, want %v", a.CheckOutTime, evening)
	}
	// Empty status and notes leave the check-in values alone
	if a.Status != AttendancePresent {
		t.Errorf("Status = %q, want %q", a.Status, AttendancePresent)
	}
	if a.Notes != "" {
		t.Errorf("Notes = %q, want empty", a.Notes)
	}
}

func TestCheckOutOverwritesWhenProvided(t *testing.T) {
	now := time.Now()
	a := NewCheckIn(uuid.New(), AttendancePresent, "in at nine", now)

	if err := a.CheckOut(AttendanceHalfDay, "left early, site visit", now.Add(4*time.Hour)); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if a.Status != AttendanceHalfDay {
		t.Errorf("Status = %q, want %q", a.Status, AttendanceHalfDay)
	}
	if a.Notes != "left early, site visit" {
		t.Errorf("Notes = %q", a.Notes)
	}
}

func TestCheckOutTwice(t *testing.T) {
	now := time.Now()
	a := NewCheckIn(uuid.New(), "", "", now)

	if err := a.CheckOut("", "", now.Add(8*time.Hour)); err != nil {
		t.Fatalf("first CheckOut: %v", err)
	}
	first := *a.CheckOutTime

	err := a.CheckOut(AttendanceAbsent, "should not stick", now.Add(10*time.Hour))
	if !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Fatalf("second CheckOut err = %v, want ErrAlreadyCheckedOut", err)
	}
	if !a.CheckOutTime.Equal(first) {
		t.Errorf("CheckOutTime changed on failed check-out: %v", a.CheckOutTime)
	}
	if a.Status != AttendancePresent || a.Notes != "" {
		t.Errorf("record mutated on failed check-out: status=%q notes=%q", a.Status, a.Notes)
	}
}
