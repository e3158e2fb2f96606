package controllers

import (
	"errors"
	"net/http"

	"boxway-backend/config"
	"boxway-backend/models"
	"boxway-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpdateSettingsInput defines the expected JSON structure for updating the
// firm-wide settings singleton
type UpdateSettingsInput struct {
	CompanyName    *string `json:"companyName"`
	CompanyAddress *string `json:"companyAddress"`

	SalaryIntern     *decimal.Decimal `json:"salaryIntern"`
	SalaryArchitect  *decimal.Decimal `json:"salaryArchitect"`
	SalaryHR         *decimal.Decimal `json:"salaryHr"`
	SalaryAccountant *decimal.Decimal `json:"salaryAccountant"`

	DefaultProjectPhases *models.StringSlice `json:"defaultProjectPhases"`

	Theme *string `json:"theme" binding:"omitempty,oneof=light dark"`

	TwoFactorAuth       *bool `json:"twoFactorAuth"`
	PasswordExpiryDays  *int  `json:"passwordExpiryDays"`
	SessionTimeoutLimit *int  `json:"sessionTimeoutLimit"`

	EmailNotification *bool `json:"emailNotification"`
	TaskReminder      *bool `json:"taskReminder"`
	ApprovalRequest   *bool `json:"approvalRequest"`
	SiteIssueAlert    *bool `json:"siteIssueAlert"`

	AllowSelfRegistration *bool   `json:"allowSelfRegistration"`
	DefaultUserRole       *string `json:"defaultUserRole" binding:"omitempty,oneof=Admin Architect HR Accountant Intern Manager"`
}

// loadSettings returns the persisted settings row, falling back to defaults
// when none has been saved yet.
func loadSettings() *models.Settings {
	var settings models.Settings
	if err := config.DB.First(&settings).Error; err != nil {
		return models.DefaultSettings()
	}
	return &settings
}

// GetSettings fetches the settings singleton, creating defaults on first read
func GetSettings(c *gin.Context) {
	var settings models.Settings
	if err := config.DB.First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		settings = *models.DefaultSettings()
		if err := config.DB.Create(&settings).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create default settings")
			return
		}
	}
	utils.RespondWithSuccess(c, http.StatusOK, settings, "System settings fetched")
}

// UpdateSettings applies a partial update to the settings singleton
func UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var settings models.Settings
	if err := config.DB.First(&settings).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		settings = *models.DefaultSettings()
	}

	if input.CompanyName != nil {
		settings.CompanyName = *input.CompanyName
	}
	if input.CompanyAddress != nil {
		settings.CompanyAddress = *input.CompanyAddress
	}
	if input.SalaryIntern != nil {
		settings.SalaryIntern = *input.SalaryIntern
	}
	if input.SalaryArchitect != nil {
		settings.SalaryArchitect = *input.SalaryArchitect
	}
	if input.SalaryHR != nil {
		settings.SalaryHR = *input.SalaryHR
	}
	if input.SalaryAccountant != nil {
		settings.SalaryAccountant = *input.SalaryAccountant
	}
	if input.DefaultProjectPhases != nil {
		settings.DefaultProjectPhases = *input.DefaultProjectPhases
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.TwoFactorAuth != nil {
		settings.TwoFactorAuth = *input.TwoFactorAuth
	}
	if input.PasswordExpiryDays != nil {
		settings.PasswordExpiryDays = *input.PasswordExpiryDays
	}
	if input.SessionTimeoutLimit != nil {
		settings.SessionTimeoutLimit = *input.SessionTimeoutLimit
	}
	if input.EmailNotification != nil {
		settings.EmailNotification = *input.EmailNotification
	}
	if input.TaskReminder != nil {
		settings.TaskReminder = *input.TaskReminder
	}
	if input.ApprovalRequest != nil {
		settings.ApprovalRequest = *input.ApprovalRequest
	}
	if input.SiteIssueAlert != nil {
		settings.SiteIssueAlert = *input.SiteIssueAlert
	}
	if input.AllowSelfRegistration != nil {
		settings.AllowSelfRegistration = *input.AllowSelfRegistration
	}
	if input.DefaultUserRole != nil {
		settings.DefaultUserRole = *input.DefaultUserRole
	}

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, settings, "System settings updated")
}
