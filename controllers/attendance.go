package controllers

import (
	"errors"
	"net/http"
	"time"

	"boxway-backend/config"
	"boxway-backend/models"
	"boxway-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MarkAttendanceInput defines the expected JSON structure for a check-in or
// check-out
type MarkAttendanceInput struct {
	Status string `json:"status" binding:"omitempty,oneof=Present Absent Leave 'Half Day'"`
	Notes  string `json:"notes"`
}

// MarkAttendance records the caller's check-in or check-out for the current
// day. The first call of a day creates the record, the second one closes it,
// and a third fails.
func MarkAttendance(c *gin.Context) {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input MarkAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	now := time.Now()

	var existing models.Attendance
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", callerID, utils.BeginningOfDay(now), utils.EndOfDay(now)).
		First(&existing).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}

		// Check in
		attendance := models.NewCheckIn(callerID, input.Status, input.Notes, now)
		if err := config.DB.Create(attendance).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record attendance")
			return
		}
		utils.RespondWithSuccess(c, http.StatusCreated, attendance, "Checked in successfully")
		return
	}

	// Check out
	if err := existing.CheckOut(input.Status, input.Notes, now); err != nil {
		if errors.Is(err, models.ErrAlreadyCheckedOut) {
			utils.RespondWithError(c, http.StatusConflict, "You have already checked out for today")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record attendance")
		}
		return
	}

	if err := config.DB.Save(&existing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record attendance")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, existing, "Checked out successfully")
}

// GetAllAttendance retrieves every attendance record
func GetAllAttendance(c *gin.Context) {
	var attendance []models.Attendance
	if err := config.DB.Preload("User").Order("date DESC").Find(&attendance).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance records")
		return
	}
	utils.RespondWithSuccess(c, http.StatusOK, attendance, "Attendance records fetched")
}

// GetMyAttendance retrieves the caller's attendance history
func GetMyAttendance(c *gin.Context) {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var attendance []models.Attendance
	if err := config.DB.Where("user_id = ?", callerID).Order("date DESC").Find(&attendance).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance records")
		return
	}
	utils.RespondWithSuccess(c, http.StatusOK, attendance, "My attendance records fetched")
}
