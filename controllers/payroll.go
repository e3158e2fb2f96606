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

// CalculatePayrollInput defines the expected JSON structure for generating a
// payroll record from attendance
type CalculatePayrollInput struct {
	StaffID        uuid.UUID        `json:"staffId" binding:"required"`
	Month          string           `json:"month" binding:"required"`
	AttendanceDays int              `json:"attendanceDays" binding:"min=0"`
	Allowances     *decimal.Decimal `json:"allowances"`
}

// CreatePayrollInput defines the expected JSON structure for a manual record
type CreatePayrollInput struct {
	StaffID        uuid.UUID       `json:"staffId" binding:"required"`
	Month          string          `json:"month" binding:"required"`
	BasicSalary    decimal.Decimal `json:"basicSalary"`
	Allowances     decimal.Decimal `json:"allowances"`
	AttendanceDays int             `json:"attendanceDays" binding:"min=0"`
	Deductions     decimal.Decimal `json:"deductions"`
	Bonuses        decimal.Decimal `json:"bonuses"`
}

// UpdatePayrollStatusInput carries the status transition
type UpdatePayrollStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Paid"`
}

// CalculatePayroll derives a month's salary for a staff member from their
// attendance count. When the staff record carries no basic salary, the
// role's configured salary structure from Settings applies.
func CalculatePayroll(c *gin.Context) {
	var input CalculatePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.User
	if err := config.DB.First(&staff, "id = ?", input.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if staff.BasicSalary.IsZero() {
		settings := loadSettings()
		staff.BasicSalary = settings.SalaryFor(staff.Role)
	}

	payroll := models.NewPayroll(&staff, input.Month, input.AttendanceDays, input.Allowances)

	if err := config.DB.Create(payroll).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payroll record")
		return
	}

	utils.RespondWithSuccess(c, http.StatusCreated, payroll, "Payroll calculated and generated successfully")
}

// CreatePayroll records a payroll entry with caller-supplied amounts
func CreatePayroll(c *gin.Context) {
	var input CreatePayrollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.User
	if err := config.DB.First(&staff, "id = ?", input.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payroll := models.Payroll{
		StaffID:        staff.ID,
		Month:          input.Month,
		BasicSalary:    input.BasicSalary,
		Allowances:     input.Allowances,
		AttendanceDays: input.AttendanceDays,
		Deductions:     input.Deductions,
		Bonuses:        input.Bonuses,
		Status:         models.PayrollPending,
		TotalCalculatedSalary: models.CalculateSalary(
			input.BasicSalary, input.AttendanceDays, input.Allowances),
	}
	payroll.RecalculateNet()

	if err := config.DB.Create(&payroll).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payroll record")
		return
	}

	utils.RespondWithSuccess(c, http.StatusCreated, payroll, "Payroll record created manually")
}

// GetAllPayroll retrieves every payroll record
func GetAllPayroll(c *gin.Context) {
	var payrolls []models.Payroll
	if err := config.DB.Preload("Staff").Find(&payrolls).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payroll records")
		return
	}
	utils.RespondWithSuccess(c, http.StatusOK, payrolls, "Payroll records fetched")
}

// GetMyPayroll retrieves the caller's payroll history
func GetMyPayroll(c *gin.Context) {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var payrolls []models.Payroll
	if err := config.DB.Where("staff_id = ?", callerID).Find(&payrolls).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payroll records")
		return
	}
	utils.RespondWithSuccess(c, http.StatusOK, payrolls, "My payroll history fetched")
}

// UpdatePayrollStatus transitions a payroll record; paying stamps the
// payment date.
func UpdatePayrollStatus(c *gin.Context) {
	payrollUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payroll ID format")
		return
	}

	var input UpdatePayrollStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var payroll models.Payroll
	if err := config.DB.First(&payroll, "id = ?", payrollUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payroll record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	payroll.SetStatus(input.Status, time.Now())

	if err := config.DB.Save(&payroll).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payroll status")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, payroll, "Payroll status updated")
}
