package routes

import (
	"net/http"
	"time"

	"caresync/handlers"
	"caresync/middleware"
	"caresync/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.UpdatePasswordHandler)
		api.DELETE("/me/token", hb.RevokeTokenHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.GET("/doctors", hb.ListDoctorsHandler)
	}
}

// RegisterSchedulingRoutes registers availability lookup and the doctor's
// weekly schedule.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	availability := r.Group("/api/availability")
	{
		availability.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		availability.GET("", hb.GetFreeSlotsHandler)
	}

	schedule := r.Group("/api/schedule")
	{
		schedule.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		schedule.GET("", hb.GetScheduleHandler)
		schedule.GET("/:providerId", hb.GetScheduleHandler)
		schedule.PUT("", middleware.RequireRole(models.RoleDoctor), hb.UpdateScheduleHandler)
	}
}

// RegisterAppointmentRoutes registers booking and appointment management.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RolePatient), hb.BookAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PATCH("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterRecordRoutes registers medical records and lab results.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	records := r.Group("/api/records")
	{
		records.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		records.POST("", middleware.RequireRole(models.RoleDoctor), hb.CreateRecordHandler)
		records.GET("", hb.ListRecordsHandler)
		records.GET("/:id", hb.GetRecordHandler)
	}

	labs := r.Group("/api/labs")
	{
		labs.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		labs.POST("", middleware.RequireRole(models.RoleDoctor), hb.CreateLabResultHandler)
		labs.GET("", hb.ListLabResultsHandler)
		labs.GET("/:id", hb.GetLabResultHandler)
	}
}

// RegisterPrescriptionRoutes registers medication orders.
func RegisterPrescriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/prescriptions")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", middleware.RequireRole(models.RoleDoctor), hb.IssuePrescriptionHandler)
		api.GET("", hb.ListPrescriptionsHandler)
		api.GET("/:id", hb.GetPrescriptionHandler)
		api.PATCH("/:id/status", hb.UpdatePrescriptionStatusHandler)
	}
}

// RegisterEmergencyRoutes registers emergency contacts and SOS.
func RegisterEmergencyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/emergency")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/contacts", middleware.RequireRole(models.RolePatient), hb.AddContactHandler)
		api.GET("/contacts", hb.ListContactsHandler)
		api.DELETE("/contacts/:id", hb.RemoveContactHandler)
		api.POST("/sos", middleware.RequireRole(models.RolePatient), hb.TriggerSOSHandler)
		api.GET("/sos", hb.ListSOSEventsHandler)
	}
}

// RegisterReminderRoutes registers scheduled push reminders.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateReminderHandler)
		api.GET("", hb.ListRemindersHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterAIRoutes registers assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/symptoms", hb.AnalyzeSymptomsHandler)
		api.POST("/labs/insights", hb.LabInsightHandler)
		api.POST("/interactions", hb.CheckInteractionsHandler)
		api.POST("/chat", hb.ChatHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CareSync"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterSchedulingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterPrescriptionRoutes(r, hb)
	RegisterEmergencyRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterAIRoutes(r, hb)
}
