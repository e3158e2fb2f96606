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
	"gorm.io/gorm"
)

// CreateTaskInput defines the expected JSON structure for creating a task
type CreateTaskInput struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	ProjectID    uuid.UUID `json:"projectId" binding:"required"`
	AssignedToID uuid.UUID `json:"assignedToId" binding:"required"`
	Deadline     time.Time `json:"deadline" binding:"required"`
}

// UpdateTaskInput defines the expected JSON structure for the general task
// update. The caller is trusted to keep status, progress and approval status
// consistent on this path.
type UpdateTaskInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Review Completed"`
	Progress    *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	DrawingURL  *string    `json:"drawingUrl"`
}

// SubmitDrawingInput carries the deliverable URL
type SubmitDrawingInput struct {
	DrawingURL string `json:"drawingUrl" binding:"required"`
}

// ApproveTaskInput carries the review decision
type ApproveTaskInput struct {
	ApprovalStatus string `json:"approvalStatus" binding:"required,oneof=Approved Rejected"`
	ApprovalNotes  string `json:"approvalNotes"`
}

func callerIdentity(c *gin.Context) (uuid.UUID, string, bool) {
	userID, ok := c.Get("userId")
	if !ok {
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(userID.(string))
	if err != nil {
		return uuid.Nil, "", false
	}
	role, _ := c.Get("userRole")
	roleStr, _ := role.(string)
	return id, roleStr, true
}

// CreateTask creates a new task on a project
func CreateTask(c *gin.Context) {
	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var project models.Project
	if err := config.DB.First(&project, "id = ?", input.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Project not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var assignee models.User
	if err := config.DB.First(&assignee, "id = ?", input.AssignedToID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Assigned staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	task := models.Task{
		Title:          input.Title,
		Description:    input.Description,
		ProjectID:      project.ID,
		AssignedToID:   assignee.ID,
		Deadline:       input.Deadline,
		Status:         models.TaskPending,
		ApprovalStatus: models.ApprovalPending,
	}

	if err := config.DB.Create(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create task")
		return
	}

	utils.RespondWithSuccess(c, http.StatusCreated, task, "Task created successfully")
}

// GetTasks retrieves tasks, optionally filtered by assignee or project
func GetTasks(c *gin.Context) {
	query := config.DB.Preload("Project").Preload("AssignedTo")
	if assignedTo := c.Query("assignedTo"); assignedTo != "" {
		query = query.Where("assigned_to_id = ?", assignedTo)
	}
	if project := c.Query("project"); project != "" {
		query = query.Where("project_id = ?", project)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, tasks, "Tasks fetched successfully")
}

// GetMyTasks retrieves the caller's tasks
func GetMyTasks(c *gin.Context) {
	callerID, _, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var tasks []models.Task
	if err := config.DB.Preload("Project").
		Where("assigned_to_id = ?", callerID).Find(&tasks).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, tasks, "My tasks fetched successfully")
}

// UpdateTask applies a trusted field merge. Permitted for reviewer roles and
// the assignee; no cross-field recomputation happens here.
func UpdateTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	callerID, callerRole, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", taskUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	reviewer := callerRole == models.RoleAdmin || callerRole == models.RoleArchitect || callerRole == models.RoleManager
	if !reviewer && task.AssignedToID != callerID {
		utils.RespondWithError(c, http.StatusForbidden, "Not authorized to update this task")
		return
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Deadline != nil {
		task.Deadline = *input.Deadline
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Progress != nil {
		task.Progress = *input.Progress
	}
	if input.DrawingURL != nil {
		task.DrawingURL = *input.DrawingURL
	}

	if err := config.DB.Save(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, task, "Task updated successfully")
}

// SubmitDrawing records a deliverable and moves the task into review.
// Only the assignee or an Admin may submit.
func SubmitDrawing(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	callerID, callerRole, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input SubmitDrawingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", taskUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if task.AssignedToID != callerID && callerRole != models.RoleAdmin {
		utils.RespondWithError(c, http.StatusForbidden, "Only the assigned staff can submit drawings")
		return
	}

	task.SubmitDrawing(input.DrawingURL)

	if err := config.DB.Save(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit drawing")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, task, "Drawing submitted for review")
}

// ApproveTask records the review outcome on a submitted drawing.
// Only Admin, Architect or Manager may review.
func ApproveTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	_, callerRole, ok := callerIdentity(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	if callerRole != models.RoleAdmin && callerRole != models.RoleArchitect && callerRole != models.RoleManager {
		utils.RespondWithError(c, http.StatusForbidden, "Only Admin, Architect or Manager can approve or reject tasks")
		return
	}

	var input ApproveTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var task models.Task
	if err := config.DB.First(&task, "id = ?", taskUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := task.ApplyApproval(input.ApprovalStatus, input.ApprovalNotes); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Save(&task).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update task")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, task, "Task "+input.ApprovalStatus+" successfully")
}

// DeleteTask removes a task
func DeleteTask(c *gin.Context) {
	taskUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid task ID format")
		return
	}

	result := config.DB.Where("id = ?", taskUUID).Delete(&models.Task{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete task")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Task not found")
		return
	}

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{}, "Task deleted successfully")
}
