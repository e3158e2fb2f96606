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

// RegisterUserInput defines the expected JSON structure for creating a staff member
type RegisterUserInput struct {
	Name           string           `json:"name" binding:"required"`
	Email          string           `json:"email" binding:"required,email"`
	Password       string           `json:"password" binding:"required,min=8"`
	Role           string           `json:"role" binding:"omitempty,oneof=Admin Architect HR Accountant Intern Manager"`
	Designation    string           `json:"designation"`
	ContactPhone   string           `json:"contactPhone"`
	ContactAddress string           `json:"contactAddress"`
	JoiningDate    *time.Time       `json:"joiningDate"`
	BasicSalary    *decimal.Decimal `json:"basicSalary"`
	Allowances     *decimal.Decimal `json:"allowances"`
}

// UpdateUserInput defines the expected JSON structure for updating a staff member
type UpdateUserInput struct {
	Name           *string          `json:"name"`
	Email          *string          `json:"email"`
	Role           *string          `json:"role" binding:"omitempty,oneof=Admin Architect HR Accountant Intern Manager"`
	Designation    *string          `json:"designation"`
	ContactPhone   *string          `json:"contactPhone"`
	ContactAddress *string          `json:"contactAddress"`
	BasicSalary    *decimal.Decimal `json:"basicSalary"`
	Allowances     *decimal.Decimal `json:"allowances"`
	IsActive       *bool            `json:"isActive"`
	Password       *string          `json:"password"`
}

// RegisterUser creates a new staff member
func RegisterUser(c *gin.Context) {
	var input RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "User already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password, // Hashed in BeforeCreate hook
		Role:           input.Role,
		Designation:    input.Designation,
		ContactPhone:   input.ContactPhone,
		ContactAddress: input.ContactAddress,
	}
	if user.Role == "" {
		user.Role = models.RoleIntern
	}
	if input.JoiningDate != nil {
		user.JoiningDate = *input.JoiningDate
	} else {
		user.JoiningDate = time.Now()
	}
	if input.BasicSalary != nil {
		user.BasicSalary = *input.BasicSalary
	}
	if input.Allowances != nil {
		user.Allowances = *input.Allowances
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.RespondWithSuccess(c, http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}, "User registered successfully")
}

// GetUsers retrieves all staff members
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}
	utils.RespondWithSuccess(c, http.StatusOK, users, "Users fetched successfully")
}

// UpdateUser updates an existing staff member
func UpdateUser(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Designation != nil {
		user.Designation = *input.Designation
	}
	if input.ContactPhone != nil {
		user.ContactPhone = *input.ContactPhone
	}
	if input.ContactAddress != nil {
		user.ContactAddress = *input.ContactAddress
	}
	if input.BasicSalary != nil {
		user.BasicSalary = *input.BasicSalary
	}
	if input.Allowances != nil {
		user.Allowances = *input.Allowances
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser soft deletes a staff member
func DeleteUser(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	result := config.DB.Where("id = ?", userUUID).Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{}, "User removed")
}
