package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caresync/config"
	"caresync/cron"
	"caresync/database"
	appointmentRepoPkg "caresync/database/repository/appointment"
	emergencyRepoPkg "caresync/database/repository/emergency"
	prescriptionRepoPkg "caresync/database/repository/prescription"
	recordsRepoPkg "caresync/database/repository/records"
	reminderRepoPkg "caresync/database/repository/reminder"
	scheduleRepoPkg "caresync/database/repository/schedule"
	userRepoPkg "caresync/database/repository/user"
	"caresync/handlers"
	"caresync/middleware"
	"caresync/routes"
	"caresync/services/appointment"
	"caresync/services/emergency"
	ai "caresync/services/intelligence"
	"caresync/services/notification"
	"caresync/services/prescription"
	"caresync/services/records"
	"caresync/services/reminder"
	"caresync/services/scheduling"
	"caresync/services/user"
	"caresync/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	clinicLoc, err := time.LoadLocation(config.AppConfig.ClinicTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid clinic timezone %q: %v", config.AppConfig.ClinicTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	recordRepo := recordsRepoPkg.NewMongoRecordRepo()
	labRepo := recordsRepoPkg.NewMongoLabRepo()
	prescriptionRepo := prescriptionRepoPkg.NewMongoPrescriptionRepo()
	emergencyRepo := emergencyRepoPkg.NewMongoEmergencyRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	availabilityService := &scheduling.DefaultAvailabilityService{
		Schedules:    scheduleRepo,
		Appointments: appointmentRepo,
		Loc:          clinicLoc,
	}
	scheduleService := &scheduling.DefaultScheduleService{Repo: scheduleRepo}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:         appointmentRepo,
		Availability: availabilityService,
		Loc:          clinicLoc,
	}

	recordService := &records.DefaultRecordService{
		Records: recordRepo,
		Labs:    labRepo,
	}
	prescriptionService := &prescription.DefaultPrescriptionService{Repo: prescriptionRepo}

	notificationService := &notification.DefaultNotificationService{Users: userRepo}

	emergencyService := &emergency.DefaultEmergencyService{
		Repo:         emergencyRepo,
		Appointments: appointmentRepo,
		Notifier:     notificationService,
	}

	reminderQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderQueue.Close()
	reminderService := &reminder.DefaultReminderService{
		Repo:  reminderRepo,
		Queue: reminderQueue,
	}

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	aiService := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey, ctxStore)

	// Background reminder delivery.
	cron.InitReminderWorker(notificationService, reminderRepo)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	recordsHandler := handlers.NewRecordsHandler(recordService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	emergencyHandler := handlers.NewEmergencyHandler(emergencyService, userService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	aiHandler := handlers.NewAIHandler(aiService, recordService, prescriptionService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		// User endpoints.
		GetProfileHandler:     userHandler.GetProfileHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		UpdatePasswordHandler: userHandler.UpdatePasswordHandler,
		RevokeTokenHandler:    userHandler.RevokeTokenHandler,
		DeleteAccountHandler:  userHandler.DeleteAccountHandler,
		ListDoctorsHandler:    userHandler.ListDoctorsHandler,

		// Scheduling endpoints.
		GetFreeSlotsHandler:   availabilityHandler.GetFreeSlotsHandler,
		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		UpdateScheduleHandler: scheduleHandler.UpdateScheduleHandler,

		// Appointment endpoints.
		BookAppointmentHandler:         appointmentHandler.BookHandler,
		ListAppointmentsHandler:        appointmentHandler.ListHandler,
		GetAppointmentHandler:          appointmentHandler.GetHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateStatusHandler,

		// Medical record endpoints.
		CreateRecordHandler: recordsHandler.CreateRecordHandler,
		ListRecordsHandler:  recordsHandler.ListRecordsHandler,
		GetRecordHandler:    recordsHandler.GetRecordHandler,

		// Lab result endpoints.
		CreateLabResultHandler: recordsHandler.CreateLabResultHandler,
		ListLabResultsHandler:  recordsHandler.ListLabResultsHandler,
		GetLabResultHandler:    recordsHandler.GetLabResultHandler,

		// Prescription endpoints.
		IssuePrescriptionHandler:        prescriptionHandler.IssueHandler,
		ListPrescriptionsHandler:        prescriptionHandler.ListHandler,
		GetPrescriptionHandler:          prescriptionHandler.GetHandler,
		UpdatePrescriptionStatusHandler: prescriptionHandler.UpdateStatusHandler,

		// Emergency endpoints.
		AddContactHandler:    emergencyHandler.AddContactHandler,
		ListContactsHandler:  emergencyHandler.ListContactsHandler,
		RemoveContactHandler: emergencyHandler.RemoveContactHandler,
		TriggerSOSHandler:    emergencyHandler.TriggerSOSHandler,
		ListSOSEventsHandler: emergencyHandler.ListSOSEventsHandler,

		// Reminder endpoints.
		CreateReminderHandler: reminderHandler.CreateHandler,
		ListRemindersHandler:  reminderHandler.ListHandler,
		DeleteReminderHandler: reminderHandler.DeleteHandler,

		// Assistant endpoints.
		AnalyzeSymptomsHandler:   aiHandler.AnalyzeSymptomsHandler,
		LabInsightHandler:        aiHandler.LabInsightHandler,
		CheckInteractionsHandler: aiHandler.CheckInteractionsHandler,
		ChatHandler:              aiHandler.ChatHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
