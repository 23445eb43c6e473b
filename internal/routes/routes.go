package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bicicolombia/taller-scheduler/internal/audit"
	"github.com/bicicolombia/taller-scheduler/internal/config"
	"github.com/bicicolombia/taller-scheduler/internal/handlers"
	infraRepo "github.com/bicicolombia/taller-scheduler/internal/infra/repository"
	"github.com/bicicolombia/taller-scheduler/internal/middleware"
	"github.com/bicicolombia/taller-scheduler/internal/notify"
	"github.com/bicicolombia/taller-scheduler/internal/timezone"
	"github.com/bicicolombia/taller-scheduler/internal/tokens"
	ucAppointment "github.com/bicicolombia/taller-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.ShopTimezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	webhookDispatcher := notify.NewDispatcher(cfg.WebhookURL)
	revoker := tokens.NewRevoker(cfg.RedisAddr, cfg.RedisPassword)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		webhookDispatcher,
		auditDispatcher,
		loc,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		webhookDispatcher,
		auditDispatcher,
		loc,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		webhookDispatcher,
		auditDispatcher,
		loc,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
		loc,
	)

	calendarEventsUC := ucAppointment.NewListCalendarEvents(
		appointmentRepo,
		loc,
	)

	adminNoteUC := ucAppointment.NewUpdateAdminNote(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, revoker)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(createAppointmentUC, cfg, loc)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		rescheduleAppointmentUC,
		listAppointmentsUC,
		calendarEventsUC,
		adminNoteUC,
		loc,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (widget de agenda)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/shop", publicHandler.GetShop)
			publicAPI.POST("/quote", publicHandler.Quote)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (panel del taller)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, revoker))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/calendar", appointmentHandler.Calendar)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/note", appointmentHandler.UpdateNote)
			secured.GET("/me/appointments/:id/whatsapp", appointmentHandler.WhatsAppLink)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
