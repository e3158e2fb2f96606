// controllers/invoice_test.go
package controllers

import (
	"testing"

	"boxway-backend/models"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestTouchesMoney(t *testing.T) {
	status := models.InvoiceCancelled
	notes := "client requested cancellation"
	items := []InvoiceItemInput{{Description: "Design fees", UnitPrice: dec(500)}}

	cases := []struct {
		name  string
		input UpdateInvoiceInput
		want  bool
	}{
		{"empty patch", UpdateInvoiceInput{}, false},
		{"status only", UpdateInvoiceInput{Status: &status}, false},
		{"status and notes", UpdateInvoiceInput{Status: &status, Notes: &notes}, false},
		{"items", UpdateInvoiceInput{Items: &items}, true},
		{"tax", UpdateInvoiceInput{Tax: decPtr(100)}, true},
		{"discount", UpdateInvoiceInput{Discount: decPtr(50)}, true},
		{"amount paid", UpdateInvoiceInput{AmountPaid: decPtr(1000)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.input.touchesMoney(); got != tc.want {
				t.Errorf("touchesMoney = %v, want %v", got, tc.want)
			}
		})
	}
}

// A fully paid invoice patched only in status must keep the patched status:
// the recalculation runs solely for monetary patches, so the derived Paid
// never overwrites a manual Cancelled.
func TestStatusOnlyPatchSkipsRecalculation(t *testing.T) {
	invoice := models.Invoice{
		Items:      []models.InvoiceItem{{Quantity: dec(1), UnitPrice: dec(1000)}},
		AmountPaid: dec(1000),
	}
	invoice.Recalculate()
	if invoice.Status != models.InvoicePaid {
		t.Fatalf("Status after payment = %q, want %q", invoice.Status, models.InvoicePaid)
	}

	status := models.InvoiceCancelled
	patch := UpdateInvoiceInput{Status: &status}
	if patch.touchesMoney() {
		t.Fatal("status-only patch reported as monetary")
	}

	// The non-monetary path is a direct merge with hooks skipped
	invoice.Status = *patch.Status

	if invoice.Status != models.InvoiceCancelled {
		t.Errorf("Status = %q, want %q", invoice.Status, models.InvoiceCancelled)
	}

	// A later monetary patch goes back through the derivation
	paid := dec(1000)
	monetary := UpdateInvoiceInput{AmountPaid: &paid}
	if !monetary.touchesMoney() {
		t.Fatal("amountPaid patch not reported as monetary")
	}
	invoice.AmountPaid = *monetary.AmountPaid
	invoice.Recalculate()
	if invoice.Status != models.InvoicePaid {
		t.Errorf("Status after monetary patch = %q, want %q", invoice.Status, models.InvoicePaid)
	}
}

func TestBuildInvoiceItems(t *testing.T) {
	t.Run("absent quantity defaults to 1", func(t *testing.T) {
		items, err := buildInvoiceItems([]InvoiceItemInput{
			{Description: "Site visit", UnitPrice: dec(1500)},
		})
		if err != nil {
			t.Fatalf("buildInvoiceItems: %v", err)
		}
		if !items[0].Quantity.Equal(dec(1)) {
			t.Errorf("Quantity = %s, want 1", items[0].Quantity)
		}
	})

	t.Run("explicit zero quantity is kept", func(t *testing.T) {
		items, err := buildInvoiceItems([]InvoiceItemInput{
			{Description: "Waived fees", Quantity: decPtr(0), UnitPrice: dec(500)},
		})
		if err != nil {
			t.Fatalf("buildInvoiceItems: %v", err)
		}
		if !items[0].Quantity.IsZero() {
			t.Errorf("Quantity = %s, want 0", items[0].Quantity)
		}
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := buildInvoiceItems([]InvoiceItemInput{
			{Description: "Bad line", Quantity: decPtr(-1), UnitPrice: dec(500)},
		})
		if err == nil {
			t.Fatal("expected error for negative quantity")
		}
	})

	t.Run("negative unit price rejected", func(t *testing.T) {
		_, err := buildInvoiceItems([]InvoiceItemInput{
			{Description: "Bad line", Quantity: decPtr(1), UnitPrice: dec(-500)},
		})
		if err == nil {
			t.Fatal("expected error for negative unit price")
		}
	})
}
