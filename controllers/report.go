// controllers/report.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"boxway-backend/config"
	"boxway-backend/models"
	"boxway-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReportInput defines the expected JSON structure for generating a report
type CreateReportInput struct {
	Title          string     `json:"title" binding:"required"`
	Type           string     `json:"type" binding:"required,oneof=Progress Financial Safety Material Timeline"`
	Description    string     `json:"description"`
	FileURL        string     `json:"fileUrl"`
	ProjectID      *uuid.UUID `json:"projectId"`
	DateRangeStart *time.Time `json:"dateRangeStart"`
	DateRangeEnd   *time.Time `json:"dateRangeEnd"`
}

type reportTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// GetReportsDashboard returns report counts by type and the latest reports
func GetReportsDashboard(c *gin.Context) {
	var stats []reportTypeCount
	config.DB.Model(&models.Report{}).
		Select("type, COUNT(*) as count").Group("type").Scan(&stats)

	var recentReports []models.Report
	config.DB.Preload("GeneratedBy").
		Order("created_at DESC").Limit(10).Find(&recentReports)

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{
		"stats":         stats,
		"recentReports": recentReports,
	}, "Reports dashboard data fetched")
}

// CreateReport records a generated report
func CreateReport(c *gin.Context) {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	fileURL := input.FileURL
	if fileURL == "" {
		fileURL = fmt.Sprintf("reports/generated/%d.pdf", time.Now().UnixMilli())
	}

	report := models.Report{
		Title:          input.Title,
		Type:           input.Type,
		Description:    input.Description,
		FileURL:        fileURL,
		GeneratedByID:  callerID,
		ProjectID:      input.ProjectID,
		DateRangeStart: input.DateRangeStart,
		DateRangeEnd:   input.DateRangeEnd,
	}

	if err := config.DB.Create(&report).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create report")
		return
	}

	utils.RespondWithSuccess(c, http.StatusCreated, report, "Report generated successfully")
}

// GetReport retrieves a single report
func GetReport(c *gin.Context) {
	reportUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	var report models.Report
	if err := config.DB.Preload("GeneratedBy").Preload("Project").
		First(&report, "id = ?", reportUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Report not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, report, "Report details fetched")
}

// DownloadReport streams the report's PDF as an attachment
func DownloadReport(c *gin.Context) {
	reportUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	var report models.Report
	if err := config.DB.First(&report, "id = ?", reportUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Report not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.FileAttachment(filepath.Clean(report.FileURL), report.Title+".pdf")
}
