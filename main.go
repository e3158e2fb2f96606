package main

import (
	"os"

	"boxway-backend/config"
	"boxway-backend/controllers"
	"boxway-backend/models"
	"boxway-backend/routes"
	"boxway-backend/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	config.SetupLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Project{},
		&models.ProjectPhase{},
		&models.Task{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payroll{},
		&models.Attendance{},
		&models.Settings{},
		&models.Report{},
		&models.NotificationLog{},
	)
}

func main() {
	controllers.Notifications = services.NewNotificationService(config.DB, services.NewEmailNotifierFromEnv())

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	log.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
