package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BellezaEstetica/salon-scheduler/internal/audit"
	"github.com/BellezaEstetica/salon-scheduler/internal/auth"
	"github.com/BellezaEstetica/salon-scheduler/internal/cache"
	"github.com/BellezaEstetica/salon-scheduler/internal/config"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/handlers"
	infraRepo "github.com/BellezaEstetica/salon-scheduler/internal/infra/repository"
	"github.com/BellezaEstetica/salon-scheduler/internal/middleware"
	"github.com/BellezaEstetica/salon-scheduler/internal/notify"
	ucAppointment "github.com/BellezaEstetica/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	grid := domain.SlotGrid{
		OpenHour:    cfg.OpenHour,
		CloseHour:   cfg.CloseHour,
		StepMinutes: cfg.SlotMinutes,
	}

	var slots cache.SlotCache = cache.NoopSlotCache{}
	if cfg.RedisAddr != "" {
		slots = cache.NewRedisSlotCache(
			cfg.RedisAddr,
			time.Duration(cfg.SlotCacheTTLs)*time.Second,
			logger,
		)
	}

	var sender notify.EmailSender = notify.NewLogSender(logger)
	if cfg.SendGridAPIKey != "" {
		sender = notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	}
	notifier := notify.NewDispatcher(sender, logger)

	verifier := auth.BcryptVerifier{}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		grid,
		notifier,
		slots,
		auditDispatcher,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		grid,
		notifier,
		slots,
		auditDispatcher,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		notifier,
		slots,
		auditDispatcher,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	chargedUC := ucAppointment.NewSetChargedAmount(
		appointmentRepo,
		auditDispatcher,
	)

	freeSlotsUC := ucAppointment.NewFreeSlots(
		appointmentRepo,
		grid,
		slots,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, verifier)
	meHandler := handlers.NewMeHandler(db, verifier)
	serviceHandler := handlers.NewServiceHandler(db)
	clientAdminHandler := handlers.NewClientAdminHandler(db, auditDispatcher)
	statsHandler := handlers.NewStatsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createUC,
		rescheduleUC,
		cancelUC,
		completeUC,
		chargedUC,
		freeSlotsUC,
		listUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/free-slots", appointmentHandler.FreeSlots)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		}

		// ------------------------------
		// 👑 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
		{
			admin.GET("/appointments", appointmentHandler.List)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			admin.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			admin.PATCH("/appointments/:id/charged-amount", appointmentHandler.SetChargedAmount)
			admin.PATCH("/appointments/:id/notes", appointmentHandler.SetNotes)

			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.PATCH("/services/:id/toggle", serviceHandler.Toggle)

			admin.GET("/clients", clientAdminHandler.List)
			admin.PATCH("/clients/:id", clientAdminHandler.Update)
			admin.PATCH("/clients/:id/block", clientAdminHandler.Block)
			admin.DELETE("/clients/:id", clientAdminHandler.Delete)
			admin.GET("/clients/:id/history", clientAdminHandler.History)

			admin.GET("/statistics", statsHandler.GetMonthly)
		}
	}
}
