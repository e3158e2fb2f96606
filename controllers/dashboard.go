package controllers

import (
	"net/http"
	"time"

	"boxway-backend/config"
	"boxway-backend/models"
	"boxway-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetAdminDashboard returns firm-wide counts and the latest projects
func GetAdminDashboard(c *gin.Context) {
	var totalProjects, activeClients, staffCount, pendingPayroll int64
	config.DB.Model(&models.Project{}).Count(&totalProjects)
	config.DB.Model(&models.Client{}).Count(&activeClients)
	config.DB.Model(&models.User{}).Count(&staffCount)
	config.DB.Model(&models.Payroll{}).Where("status = ?", models.PayrollPending).Count(&pendingPayroll)

	var recentProjects []models.Project
	config.DB.Select("id", "title", "status", "current_phase", "created_at").
		Order("created_at DESC").Limit(5).Find(&recentProjects)

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{
		"totalProjects":  totalProjects,
		"activeClients":  activeClients,
		"staffCount":     staffCount,
		"pendingPayroll": pendingPayroll,
		"recentProjects": recentProjects,
	}, "Admin dashboard stats fetched")
}

// dashboardTarget resolves whose dashboard to show: Admins may pass another
// staff id; everyone else sees their own.
func dashboardTarget(c *gin.Context) (string, bool) {
	callerID, callerRole, ok := callerIdentity(c)
	if !ok {
		return "", false
	}
	if callerRole == models.RoleAdmin && c.Param("id") != "" {
		return c.Param("id"), true
	}
	return callerID.String(), true
}

// GetArchitectDashboard returns the architect's assigned projects and open
// task count
func GetArchitectDashboard(c *gin.Context) {
	targetID, ok := dashboardTarget(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var myProjects []models.Project
	config.DB.
		Joins("JOIN project_staff ON project_staff.project_id = projects.id").
		Where("project_staff.user_id = ?", targetID).
		Order("projects.updated_at DESC").Limit(5).
		Find(&myProjects)

	var activeTasks int64
	config.DB.Model(&models.Task{}).
		Where("assigned_to_id = ? AND status = ?", targetID, models.TaskInProgress).
		Count(&activeTasks)

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{
		"recentProjects":   myProjects,
		"activeTasksCount": activeTasks,
		"role":             models.RoleArchitect,
	}, "Architect dashboard stats fetched")
}

// GetHRDashboard returns staffing and today's attendance counts
func GetHRDashboard(c *gin.Context) {
	var totalStaff, todayAttendance int64
	config.DB.Model(&models.User{}).Where("role <> ?", models.RoleAdmin).Count(&totalStaff)
	config.DB.Model(&models.Attendance{}).
		Where("date >= ?", utils.BeginningOfDay(time.Now())).
		Count(&todayAttendance)

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{
		"totalStaff":           totalStaff,
		"todayAttendanceCount": todayAttendance,
		"role":                 models.RoleHR,
	}, "HR dashboard stats fetched")
}

// GetAccountantDashboard returns payroll workload and paid totals
func GetAccountantDashboard(c *gin.Context) {
	var pendingPayroll int64
	config.DB.Model(&models.Payroll{}).Where("status = ?", models.PayrollPending).Count(&pendingPayroll)

	var totalPaid decimal.NullDecimal
	config.DB.Model(&models.Payroll{}).
		Where("status = ?", models.PayrollPaid).
		Select("SUM(total_calculated_salary)").Scan(&totalPaid)

	paid := decimal.Zero
	if totalPaid.Valid {
		paid = totalPaid.Decimal
	}

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{
		"pendingPayrollCount": pendingPayroll,
		"totalPaid":           paid,
		"role":                models.RoleAccountant,
	}, "Accountant dashboard stats fetched")
}

// GetInternDashboard returns the intern's tasks and the projects they touch
func GetInternDashboard(c *gin.Context) {
	targetID, ok := dashboardTarget(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var myTasks []models.Task
	config.DB.Preload("Project").
		Where("assigned_to_id = ?", targetID).
		Order("created_at DESC").Limit(10).
		Find(&myTasks)

	var completedTasks int64
	config.DB.Model(&models.Task{}).
		Where("assigned_to_id = ? AND status = ?", targetID, models.TaskCompleted).
		Count(&completedTasks)

	seen := make(map[string]bool)
	var recentProjects []*models.Project
	for _, t := range myTasks {
		if t.Project == nil || seen[t.Project.ID.String()] {
			continue
		}
		seen[t.Project.ID.String()] = true
		recentProjects = append(recentProjects, t.Project)
		if len(recentProjects) == 5 {
			break
		}
	}

	utils.RespondWithSuccess(c, http.StatusOK, gin.H{
		"tasks":               myTasks,
		"completedTasksCount": completedTasks,
		"recentProjects":      recentProjects,
		"role":                models.RoleIntern,
	}, "Intern dashboard stats fetched")
}
