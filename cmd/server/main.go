package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/timecard/internal/domain/workinghours"
	"github.com/alimgiray/timecard/internal/handlers"
	"github.com/alimgiray/timecard/internal/middleware"
	"github.com/alimgiray/timecard/internal/repositories"
	"github.com/alimgiray/timecard/internal/services"
	"github.com/alimgiray/timecard/internal/workers"
	"github.com/alimgiray/timecard/pkg/config"
	"github.com/alimgiray/timecard/pkg/database"
	"github.com/alimgiray/timecard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.AppConfig

	gin.SetMode(cfg.Server.Mode)

	location, err := cfg.Location()
	if err != nil {
		logger.Fatalf("Invalid timezone: %v", err)
	}
	adjustment, err := cfg.AdjustmentRange()
	if err != nil {
		logger.Fatalf("Invalid remote adjustment range: %v", err)
	}

	// Initialize database
	if err := database.Init(cfg.Database.Path); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	employeeRepo := repositories.NewEmployeeRepository(database.DB)
	attendanceRepo := repositories.NewAttendanceRepository(database.DB)
	jobRepo := repositories.NewJobRepository(database.DB)

	employeeService := services.NewEmployeeService(employeeRepo)
	attendanceService := services.NewAttendanceService(employeeRepo, attendanceRepo, workinghours.NewSystemClock(location), adjustment)
	reportService := services.NewReportService(employeeRepo, attendanceRepo, attendanceService)
	jobService := services.NewJobService(jobRepo)
	schedulerService := services.NewSchedulerService(jobService, clockwork.NewRealClock(), location, cfg.Reports.DailyHour)

	workerManager := workers.NewWorkerManager(jobRepo, reportService, cfg.Reports.Dir)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	setupRoutes(router, cfg.Server.APIKey, employeeService, attendanceService, jobService)

	// Start workers
	if err := workerManager.StartAll(cfg.Reports.Workers); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	if err := schedulerService.StartScheduler(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.StopScheduler()

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s (timezone %s)", cfg.Server.Port, location)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shut down: %v", err)
	}
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, apiKey string, employeeService *services.EmployeeService, attendanceService *services.AttendanceService, jobService *services.JobService) {
	// Initialize handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	reportHandler := handlers.NewReportHandler(jobService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	router.NoRoute(notFoundHandler.NotFound)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	employees := router.Group("/employees")
	employees.Use(middleware.APIKeyRequired(apiKey))
	{
		employees.POST("", employeeHandler.CreateEmployee)
		employees.GET("", employeeHandler.ListEmployees)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		employees.POST("/:id/clock-in", attendanceHandler.ClockIn)
		employees.POST("/:id/clock-out", attendanceHandler.ClockOut)
		employees.PUT("/:id/attendance/:date", attendanceHandler.RecordManual)
		employees.GET("/:id/attendance", attendanceHandler.ListRecords)
		employees.GET("/:id/working-hours", attendanceHandler.WorkingHours)
	}

	attendance := router.Group("/attendance")
	attendance.Use(middleware.APIKeyRequired(apiKey))
	{
		attendance.GET("/:id", attendanceHandler.GetRecord)
	}

	reports := router.Group("/reports")
	reports.Use(middleware.APIKeyRequired(apiKey))
	{
		reports.POST("", reportHandler.CreateReport)
		reports.GET("", reportHandler.ListReports)
		reports.GET("/:id", reportHandler.GetReport)
		reports.GET("/:id/download", reportHandler.DownloadReport)
	}
}
