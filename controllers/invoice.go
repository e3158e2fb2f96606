// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"boxway-backend/config"
	"boxway-backend/models"
	"boxway-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceItemInput defines the structure for an invoice line item. Any amount
// the caller sends is ignored; line amounts are always recomputed server-side.
// Quantity is a pointer so an omitted quantity defaults to 1 while an explicit
// zero stays zero.
type InvoiceItemInput struct {
	Description string           `json:"description" binding:"required"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	ProjectID uuid.UUID          `json:"projectId" binding:"required"`
	DueDate   time.Time          `json:"dueDate" binding:"required"`
	Items     []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
	Tax       decimal.Decimal    `json:"tax"`
	Discount  decimal.Decimal    `json:"discount"`
	Notes     string             `json:"notes"`
	GSTNumber string             `json:"gstNumber"`
	Status    string             `json:"status" binding:"omitempty,oneof=Draft Sent Unpaid 'Partially Paid' Paid Overdue Cancelled"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	DueDate    *time.Time          `json:"dueDate"`
	Items      *[]InvoiceItemInput `json:"items" binding:"omitempty,dive"`
	Tax        *decimal.Decimal    `json:"tax"`
	Discount   *decimal.Decimal    `json:"discount"`
	AmountPaid *decimal.Decimal    `json:"amountPaid"`
	Notes      *string             `json:"notes"`
	GSTNumber  *string             `json:"gstNumber"`
	Status     *string             `json:"status" binding:"omitempty,oneof=Draft Sent Unpaid 'Partially Paid' Paid Overdue Cancelled"`
}

// touchesMoney reports whether the patch changes anything the derived totals
// depend on. Only such patches may re-run the recalculation: a status-only or
// notes-only patch must apply as-is, otherwise the derivation would overwrite
// a manual status (e.g. Cancelled on a fully paid invoice) with Paid.
func (in *UpdateInvoiceInput) touchesMoney() bool {
	return in.Items != nil || in.Tax != nil || in.Discount != nil || in.AmountPaid != nil
}

func buildInvoiceItems(inputs []InvoiceItemInput) ([]models.InvoiceItem, error) {
	items := make([]models.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		qty := decimal.NewFromInt(1)
		if in.Quantity != nil {
			if in.Quantity.Sign() < 0 {
				return nil, errors.New("item quantity cannot be negative")
			}
			qty = *in.Quantity
		}
		if in.UnitPrice.Sign() < 0 {
			return nil, errors.New("item unit price cannot be negative")
		}
		items = append(items, models.InvoiceItem{
			Description: in.Description,
			Quantity:    qty,
			UnitPrice:   in.UnitPrice,
		})
	}
	return items, nil
}

// CreateInvoice issues a new invoice against a project. The client is copied
// from the project, never taken from the caller, and all totals are computed
// by the model's recalculation before the row is written.
func CreateInvoice(c *gin.Context) {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var project models.Project
	if err := config.DB.First(&project, "id = ?", input.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	items, err := buildInvoiceItems(input.Items)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	status := input.Status
	if status == "" {
		status = models.InvoiceDraft
	}

	invoice := models.Invoice{
		InvoiceNumber: utils.GenerateInvoiceNumber(time.Now()),
		ProjectID:     project.ID,
		ClientID:      project.ClientID,
		IssuedByID:    callerID,
		Date:          time.Now(),
		DueDate:       input.DueDate,
		Items:         items,
		Tax:           input.Tax,
		Discount:      input.Discount,
		Notes:         input.Notes,
		GSTNumber:     input.GSTNumber,
		Status:        status,
	}

	// Totals and derived status are filled in by the BeforeSave hook
	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	utils.RespondWithSuccess(c, http.StatusCreated, invoice, "Invoice created successfully")
}

// GetInvoices retrieves all invoices
func GetInvoices(c *gin.Context) {
	var invoices []models.Invoice
	if err := config.DB.Preload("Items").Preload("Project").Preload("Client").
		Order("created_at DESC").Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}
	utils.RespondWithSuccess(c, http.StatusOK, invoices, "Invoices fetched successfully")
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").Preload("Project").Preload("Client").Preload("IssuedBy").
		First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, invoice, "Invoice details fetched")
}

// UpdateInvoice applies a partial update. Whenever items, tax, discount or
// the amount paid change, the derived totals and status are rebuilt by the
// recalculation hook on save.
func UpdateInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Preload("Items").First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Items != nil {
		items, err := buildInvoiceItems(*input.Items)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}

		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		invoice.Items = items
	}

	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Tax != nil {
		invoice.Tax = *input.Tax
	}
	if input.Discount != nil {
		invoice.Discount = *input.Discount
	}
	if input.AmountPaid != nil {
		invoice.AmountPaid = *input.AmountPaid
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}
	if input.GSTNumber != nil {
		invoice.GSTNumber = *input.GSTNumber
	}
	if input.Status != nil {
		invoice.Status = *input.Status
	}

	// A patch with no monetary fields is a plain merge; skipping the hooks
	// keeps the recalculation from rewriting a manually set status.
	session := tx
	if !input.touchesMoney() {
		session = tx.Session(&gorm.Session{SkipHooks: true})
	}
	if err := session.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	tx.Commit()

	utils.RespondWithSuccess(c, http.StatusOK, invoice, "Invoice updated successfully")
}

// DeleteInvoice removes an invoice and its line items
func DeleteInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}
	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	tx.Commit()

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{}, "Invoice deleted successfully")
}
