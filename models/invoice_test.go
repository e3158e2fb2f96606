package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRecalculateWorkedExample(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{
			{Description: "Design fees", Quantity: d(2), UnitPrice: d(500)},
			{Description: "Site visit", Quantity: d(1), UnitPrice: d(1500)},
		},
		Tax:        d(200),
		Discount:   d(100),
		AmountPaid: d(2600),
		Status:     InvoiceSent,
	}

	inv.Recalculate()

	if !inv.SubTotal.Equal(d(2500)) {
		t.Errorf("SubTotal = %s, want 2500", inv.SubTotal)
	}
	if !inv.TotalAmount.Equal(d(2600)) {
		t.Errorf("TotalAmount = %s, want 2600", inv.TotalAmount)
	}
	if !inv.BalanceDue.Equal(d(0)) {
		t.Errorf("BalanceDue = %s, want 0", inv.BalanceDue)
	}
	if inv.Status != InvoicePaid {
		t.Errorf("Status = %q, want %q", inv.Status, InvoicePaid)
	}
}

func TestRecalculateOverwritesItemAmounts(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{
			// Caller-supplied amount is wrong on purpose
			{Description: "Concept sketches", Quantity: d(3), UnitPrice: d(400), Amount: d(999)},
		},
	}

	inv.Recalculate()

	if !inv.Items[0].Amount.Equal(d(1200)) {
		t.Errorf("item amount = %s, want 1200", inv.Items[0].Amount)
	}
	if !inv.SubTotal.Equal(d(1200)) {
		t.Errorf("SubTotal = %s, want 1200", inv.SubTotal)
	}
}

func TestRecalculateInvariants(t *testing.T) {
	cases := []struct {
		name       string
		items      []InvoiceItem
		tax        int64
		discount   int64
		amountPaid int64
	}{
		{"empty items", nil, 0, 0, 0},
		{"single item", []InvoiceItem{{Quantity: d(1), UnitPrice: d(100)}}, 18, 0, 0},
		{"discount exceeds total", []InvoiceItem{{Quantity: d(1), UnitPrice: d(50)}}, 0, 500, 0},
		{"overpaid", []InvoiceItem{{Quantity: d(2), UnitPrice: d(250)}}, 0, 0, 900},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Invoice{
				Items:      tc.items,
				Tax:        d(tc.tax),
				Discount:   d(tc.discount),
				AmountPaid: d(tc.amountPaid),
			}
			inv.Recalculate()

			wantTotal := inv.SubTotal.Add(inv.Tax).Sub(inv.Discount)
			if !inv.TotalAmount.Equal(wantTotal) {
				t.Errorf("TotalAmount = %s, want subTotal+tax-discount = %s", inv.TotalAmount, wantTotal)
			}
			wantBalance := inv.TotalAmount.Sub(inv.AmountPaid)
			if !inv.BalanceDue.Equal(wantBalance) {
				t.Errorf("BalanceDue = %s, want totalAmount-amountPaid = %s", inv.BalanceDue, wantBalance)
			}
		})
	}
}

func TestRecalculateNegativeTotalPermitted(t *testing.T) {
	inv := Invoice{
		Items:    []InvoiceItem{{Quantity: d(1), UnitPrice: d(100)}},
		Discount: d(500),
		Status:   InvoiceDraft,
	}

	inv.Recalculate()

	if !inv.TotalAmount.Equal(d(-400)) {
		t.Errorf("TotalAmount = %s, want -400", inv.TotalAmount)
	}
	// Negative total with nothing paid: balance <= 0 but total is not
	// positive, so the caller-set status must survive
	if inv.Status != InvoiceDraft {
		t.Errorf("Status = %q, want %q", inv.Status, InvoiceDraft)
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{
			{Quantity: d(2), UnitPrice: d(500)},
			{Quantity: d(1), UnitPrice: d(1500)},
		},
		Tax:        d(200),
		Discount:   d(100),
		AmountPaid: d(1000),
		Status:     InvoiceSent,
	}

	inv.Recalculate()
	first := inv

	inv.Recalculate()

	if !inv.SubTotal.Equal(first.SubTotal) ||
		!inv.TotalAmount.Equal(first.TotalAmount) ||
		!inv.BalanceDue.Equal(first.BalanceDue) ||
		inv.Status != first.Status {
		t.Errorf("second recalculation changed the invoice: %+v vs %+v", inv, first)
	}
}

func TestStatusDerivation(t *testing.T) {
	cases := []struct {
		name       string
		amountPaid int64
		initial    string
		want       string
	}{
		{"fully paid", 1000, InvoiceSent, InvoicePaid},
		{"partially paid", 400, InvoiceSent, InvoicePartiallyPaid},
		{"nothing paid keeps caller status", 0, InvoiceSent, InvoiceSent},
		{"nothing paid keeps cancelled", 0, InvoiceCancelled, InvoiceCancelled},
		{"nothing paid keeps overdue", 0, InvoiceOverdue, InvoiceOverdue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := Invoice{
				Items:      []InvoiceItem{{Quantity: d(1), UnitPrice: d(1000)}},
				AmountPaid: d(tc.amountPaid),
				Status:     tc.initial,
			}
			inv.Recalculate()
			if inv.Status != tc.want {
				t.Errorf("Status = %q, want %q", inv.Status, tc.want)
			}
		})
	}
}
