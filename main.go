package main

import (
	"log"
	"net/http"
	"os"

	"hris/config"
	"hris/jobs"
	"hris/models"
	"hris/routes"
	"hris/services"
	"hris/services/logger"

	"github.com/gin-gonic/gin"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.AllowanceType{},
		&models.UserAllowance{},
		&models.DeductionType{},
		&models.UserDeduction{},
		&models.Attendance{},
		&models.LeaveType{},
		&models.LeaveRequest{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	attendanceService := services.NewAttendanceService(services.AttendanceServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	}, m)
	attendanceAdapter := services.NewAttendanceServiceAdapter(attendanceService)
	jobs.SetAttendanceMarker(attendanceAdapter)

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
