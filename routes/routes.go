package routes

import (
	"boxway-backend/config"
	"boxway-backend/controllers"
	"boxway-backend/models"
	"boxway-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Boxway API is running...")
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Staff management
		users := api.Group("/users")
		{
			users.POST("", utils.RequireRoles(models.RoleAdmin), controllers.RegisterUser)
			users.GET("", utils.RequireRoles(models.RoleAdmin), controllers.GetUsers)
			users.PUT("/:id", utils.RequireRoles(models.RoleAdmin), controllers.UpdateUser)
			users.DELETE("/:id", utils.RequireRoles(models.RoleAdmin), controllers.DeleteUser)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect), controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect), controllers.UpdateClient)
			clients.DELETE("/:id", utils.RequireRoles(models.RoleAdmin), controllers.DeleteClient)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.POST("", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect), controllers.CreateProject)
			projects.GET("", controllers.GetProjects)
			projects.GET("/:id", controllers.GetProject)
			projects.PUT("/:id", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect), controllers.UpdateProject)
			projects.PUT("/:id/progress", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect, models.RoleManager), controllers.UpdateProjectProgress)
			projects.DELETE("/:id", utils.RequireRoles(models.RoleAdmin), controllers.DeleteProject)
		}

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.POST("", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect), controllers.CreateTask)
			tasks.GET("", controllers.GetTasks)
			tasks.GET("/my", controllers.GetMyTasks)
			tasks.PUT("/:id/submit", controllers.SubmitDrawing) // ownership checked in controller
			tasks.PUT("/:id/approve", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect, models.RoleManager), controllers.ApproveTask)
			tasks.PUT("/:id", controllers.UpdateTask) // ownership checked in controller
			tasks.DELETE("/:id", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect), controllers.DeleteTask)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect, models.RoleManager), controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect, models.RoleManager), controllers.UpdateInvoice)
			invoices.DELETE("/:id", utils.RequireRoles(models.RoleAdmin), controllers.DeleteInvoice)
		}

		// Payroll routes
		payroll := api.Group("/payroll")
		{
			payroll.POST("", utils.RequireRoles(models.RoleAdmin, models.RoleAccountant), controllers.CreatePayroll)
			payroll.GET("", utils.RequireRoles(models.RoleAdmin, models.RoleAccountant), controllers.GetAllPayroll)
			payroll.POST("/calculate", utils.RequireRoles(models.RoleAdmin, models.RoleAccountant), controllers.CalculatePayroll)
			payroll.GET("/my", controllers.GetMyPayroll)
			payroll.PUT("/:id", utils.RequireRoles(models.RoleAdmin, models.RoleAccountant), controllers.UpdatePayrollStatus)
		}

		// Attendance routes
		attendance := api.Group("/attendance")
		{
			attendance.POST("", controllers.MarkAttendance)
			attendance.GET("", utils.RequireRoles(models.RoleAdmin, models.RoleHR), controllers.GetAllAttendance)
			attendance.GET("/my", controllers.GetMyAttendance)
		}

		// Dashboard routes
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/admin", utils.RequireRoles(models.RoleAdmin), controllers.GetAdminDashboard)
			dashboard.GET("/architect", controllers.GetArchitectDashboard)
			dashboard.GET("/architect/:id", controllers.GetArchitectDashboard)
			dashboard.GET("/hr", utils.RequireRoles(models.RoleAdmin, models.RoleHR), controllers.GetHRDashboard)
			dashboard.GET("/accountant", utils.RequireRoles(models.RoleAdmin, models.RoleAccountant), controllers.GetAccountantDashboard)
			dashboard.GET("/intern", controllers.GetInternDashboard)
			dashboard.GET("/intern/:id", controllers.GetInternDashboard)
		}

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSettings)
			settings.PUT("", utils.RequireRoles(models.RoleAdmin), controllers.UpdateSettings)
		}

		// Report routes
		reports := api.Group("/reports")
		{
			reports.GET("/dashboard", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect, models.RoleAccountant), controllers.GetReportsDashboard)
			reports.POST("", utils.RequireRoles(models.RoleAdmin, models.RoleArchitect, models.RoleAccountant), controllers.CreateReport)
			reports.GET("/:id", controllers.GetReport)
			reports.GET("/:id/download", controllers.DownloadReport)
		}
	}

	return r
}
