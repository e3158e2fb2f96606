package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice statuses. Paid and Partially Paid are derived from the amounts;
// the rest are set by the issuing staff and survive recalculation.
const (
	InvoiceDraft         = "Draft"
	InvoiceSent          = "Sent"
	InvoiceUnpaid        = "Unpaid"
	InvoicePartiallyPaid = "Partially Paid"
	InvoicePaid          = "Paid"
	InvoiceOverdue       = "Overdue"
	InvoiceCancelled     = "Cancelled"
)

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string    `gorm:"uniqueIndex;not null" json:"invoiceNumber"`

	ProjectID uuid.UUID `gorm:"type:uuid;index;not null" json:"projectId"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	// Snapshot of the project's client at creation time, not re-derived later
	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	IssuedByID uuid.UUID `gorm:"type:uuid;index" json:"issuedById"`
	IssuedBy   *User     `gorm:"foreignKey:IssuedByID" json:"issuedBy,omitempty"`

	Date    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"date"`
	DueDate time.Time `gorm:"not null" json:"dueDate"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`

	SubTotal    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"subTotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"tax"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discount"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"totalAmount"`
	AmountPaid  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"amountPaid"`
	BalanceDue  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"balanceDue"`

	Status    string `gorm:"type:varchar(20);default:'Draft'" json:"status"`
	Notes     string `json:"notes"`
	GSTNumber string `json:"gstNumber"`

	gorm.Model `json:"-"`
}

type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"invoiceId"`
	Description string          `gorm:"not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
}

func (inv *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	return
}

func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return
}

// Recalculate the derived amounts before every save so a persisted invoice
// can never carry stale or caller-supplied totals.
func (inv *Invoice) BeforeSave(tx *gorm.DB) (err error) {
	inv.Recalculate()
	return
}

// Recalculate rebuilds every derived field from the line items and payment
// amounts. Item amounts are always quantity x unit price; whatever the caller
// sent in Amount is overwritten. TotalAmount may go negative when the
// discount exceeds subtotal plus tax; no floor is applied.
//
// Status is derived last: a positive total that is fully covered becomes
// Paid, a partial payment against an open balance becomes Partially Paid,
// and otherwise whatever status the caller set (Draft, Sent, Cancelled,
// Overdue, ...) is left alone.
func (inv *Invoice) Recalculate() {
	subTotal := decimal.Zero
	for i := range inv.Items {
		inv.Items[i].Amount = inv.Items[i].Quantity.Mul(inv.Items[i].UnitPrice)
		subTotal = subTotal.Add(inv.Items[i].Amount)
	}

	inv.SubTotal = subTotal
	inv.TotalAmount = subTotal.Add(inv.Tax).Sub(inv.Discount)
	inv.BalanceDue = inv.TotalAmount.Sub(inv.AmountPaid)

	switch {
	case inv.BalanceDue.Sign() <= 0 && inv.TotalAmount.Sign() > 0:
		inv.Status = InvoicePaid
	case inv.AmountPaid.Sign() > 0 && inv.BalanceDue.Sign() > 0:
		inv.Status = InvoicePartiallyPaid
	}
}
