package controllers

import (
	"errors"
	"net/http"
	"time"

	"boxway-backend/config"
	"boxway-backend/models"
	"boxway-backend/services"
	"boxway-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifications delivers phase-change notices to clients. Wired in main;
// when nil, phase updates still commit and the response says delivery
// was skipped.
var Notifications *services.NotificationService

// CreateProjectInput defines the expected JSON structure for creating a project
type CreateProjectInput struct {
	Title         string      `json:"title" binding:"required"`
	Description   string      `json:"description"`
	ClientID      uuid.UUID   `json:"clientId" binding:"required"`
	AssignedStaff []uuid.UUID `json:"assignedStaff"`
	Status        string      `json:"status" binding:"omitempty,oneof=Active Completed 'On Hold'"`
}

// UpdateProjectInput defines the expected JSON structure for updating a project
type UpdateProjectInput struct {
	Title         *string      `json:"title"`
	Description   *string      `json:"description"`
	AssignedStaff *[]uuid.UUID `json:"assignedStaff"`
	Status        *string      `json:"status" binding:"omitempty,oneof=Active Completed 'On Hold'"`
}

// UpdateProgressInput defines the expected JSON structure for a phase update
type UpdateProgressInput struct {
	CurrentPhase string `json:"currentPhase" binding:"required"`
	PhaseStatus  string `json:"phaseStatus" binding:"omitempty,oneof=Pending 'In Progress' Completed"`
	Remarks      string `json:"remarks"`
}

// CreateProject creates a new project for a client. The client link is a
// single foreign-key write, so there is no second update to keep consistent.
func CreateProject(c *gin.Context) {
	var input CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, "id = ?", input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	project := models.Project{
		Title:        input.Title,
		Description:  input.Description,
		ClientID:     client.ID,
		CurrentPhase: models.PhaseConceptDesign,
		Status:       models.ProjectActive,
	}
	if input.Status != "" {
		project.Status = input.Status
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&project).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	if len(input.AssignedStaff) > 0 {
		var staff []models.User
		if err := tx.Where("id IN ?", input.AssignedStaff).Find(&staff).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve assigned staff")
			return
		}
		if err := tx.Model(&project).Association("AssignedStaff").Append(&staff); err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign staff")
			return
		}
	}

	tx.Commit()

	utils.RespondWithSuccess(c, http.StatusCreated, project, "Project created successfully")
}

// GetProjects retrieves all projects
func GetProjects(c *gin.Context) {
	var projects []models.Project
	if err := config.DB.Preload("Client").Preload("AssignedStaff").
		Preload("Phases", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Find(&projects).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}
	utils.RespondWithSuccess(c, http.StatusOK, projects, "Projects fetched successfully")
}

// GetProject retrieves a specific project by ID
func GetProject(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	var project models.Project
	if err := config.DB.Preload("Client").Preload("AssignedStaff").
		Preload("Phases", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&project, "id = ?", projectUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, project, "Project details fetched")
}

// UpdateProject updates a project's descriptive fields and staffing
func UpdateProject(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	var input UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var project models.Project
	if err := config.DB.First(&project, "id = ?", projectUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Save(&project).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	if input.AssignedStaff != nil {
		var staff []models.User
		if err := tx.Where("id IN ?", *input.AssignedStaff).Find(&staff).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve assigned staff")
			return
		}
		if err := tx.Model(&project).Association("AssignedStaff").Replace(&staff); err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign staff")
			return
		}
	}

	tx.Commit()

	utils.RespondWithSuccess(c, http.StatusOK, project, "Project updated successfully")
}

// UpdateProjectProgress advances the project's current phase and phase
// history, then notifies the client best-effort. A failed notification never
// rolls back the phase change; its outcome is reported in the response.
func UpdateProjectProgress(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	var input UpdateProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidPhaseName(input.CurrentPhase) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown phase: "+input.CurrentPhase)
		return
	}

	var project models.Project
	if err := config.DB.Preload("Client").
		Preload("Phases", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&project, "id = ?", projectUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	project.AdvancePhase(input.CurrentPhase, input.PhaseStatus, time.Now())

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&project).Update("current_phase", project.CurrentPhase).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}
	for i := range project.Phases {
		if err := tx.Save(&project.Phases[i]).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update phase history")
			return
		}
	}

	tx.Commit()

	notice := "Notification skipped: delivery not configured"
	if Notifications != nil {
		notice = Notifications.NotifyPhaseUpdate(&project, project.Client, input.PhaseStatus, input.Remarks)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Project progress updated",
		"data":     project,
		"delivery": notice,
	})
}

// DeleteProject removes a project
func DeleteProject(c *gin.Context) {
	projectUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid project ID format")
		return
	}

	result := config.DB.Where("id = ?", projectUUID).Delete(&models.Project{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Project not found")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{}, "Project deleted successfully")
}
