package models

import (
	"testing"
	"time"
)

func TestCalculateSalary(t *testing.T) {
	cases := []struct {
		name       string
		basic      int64
		days       int
		allowances int64
		want       int64
	}{
		{"worked example", 30000, 22, 2000, 24000},
		{"full month", 30000, 30, 0, 30000},
		{"zero days", 30000, 0, 1500, 1500},
		{"rounds to nearest", 1000, 1, 0, 33}, // 33.33 rounds down
		{"rounds half up", 10000, 22, 0, 7333},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateSalary(d(tc.basic), tc.days, d(tc.allowances))
			if !got.Equal(d(tc.want)) {
				t.Errorf("CalculateSalary(%d, %d, %d) = %s, want %d",
					tc.basic, tc.days, tc.allowances, got, tc.want)
			}
		})
	}
}

func TestNewPayrollUsesStaffAllowances(t *testing.T) {
	staff := &User{BasicSalary: d(30000), Allowances: d(2000)}

	p := NewPayroll(staff, "January 2024", 22, nil)

	if !p.Allowances.Equal(d(2000)) {
		t.Errorf("Allowances = %s, want staff allowance 2000", p.Allowances)
	}
	if !p.TotalCalculatedSalary.Equal(d(24000)) {
		t.Errorf("TotalCalculatedSalary = %s, want 24000", p.TotalCalculatedSalary)
	}
	if !p.NetSalary.Equal(d(24000)) {
		t.Errorf("NetSalary = %s, want 24000", p.NetSalary)
	}
	if p.Status != PayrollPending {
		t.Errorf("Status = %q, want %q", p.Status, PayrollPending)
	}
	if p.TotalDays != 30 {
		t.Errorf("TotalDays = %d, want 30", p.TotalDays)
	}
}

func TestNewPayrollAllowancesOverride(t *testing.T) {
	staff := &User{BasicSalary: d(30000), Allowances: d(2000)}
	override := d(500)

	p := NewPayroll(staff, "February 2024", 30, &override)

	if !p.Allowances.Equal(d(500)) {
		t.Errorf("Allowances = %s, want override 500", p.Allowances)
	}
	if !p.TotalCalculatedSalary.Equal(d(30500)) {
		t.Errorf("TotalCalculatedSalary = %s, want 30500", p.TotalCalculatedSalary)
	}
}

func TestRecalculateNet(t *testing.T) {
	p := Payroll{
		TotalCalculatedSalary: d(24000),
		Bonuses:               d(1000),
		Deductions:            d(300),
	}

	p.RecalculateNet()

	if !p.NetSalary.Equal(d(24700)) {
		t.Errorf("NetSalary = %s, want 24700", p.NetSalary)
	}
}

func TestSetStatusStampsPaymentDate(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	p := Payroll{Status: PayrollPending}

	p.SetStatus(PayrollApproved, now)
	if p.PaymentDate != nil {
		t.Errorf("PaymentDate set on Approved: %v", p.PaymentDate)
	}

	p.SetStatus(PayrollPaid, now)
	if p.PaymentDate == nil || !p.PaymentDate.Equal(now) {
		t.Errorf("PaymentDate = %v, want %v", p.PaymentDate, now)
	}

	// Moving back to Pending keeps the stamp
	p.SetStatus(PayrollPending, now.Add(time.Hour))
	if p.PaymentDate == nil || !p.PaymentDate.Equal(now) {
		t.Errorf("PaymentDate cleared by later transition: %v", p.PaymentDate)
	}

	// Paying again refreshes it
	later := now.Add(48 * time.Hour)
	p.SetStatus(PayrollPaid, later)
	if p.PaymentDate == nil || !p.PaymentDate.Equal(later) {
		t.Errorf("PaymentDate = %v, want refreshed %v", p.PaymentDate, later)
	}
}
