package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	"github.com/lotusspa/salon-scheduler/internal/cache"
	"github.com/lotusspa/salon-scheduler/internal/config"
	"github.com/lotusspa/salon-scheduler/internal/domain/account"
	"github.com/lotusspa/salon-scheduler/internal/handlers"
	infraRepo "github.com/lotusspa/salon-scheduler/internal/infra/repository"
	"github.com/lotusspa/salon-scheduler/internal/middleware"
	"github.com/lotusspa/salon-scheduler/internal/queue"
	"github.com/lotusspa/salon-scheduler/internal/storage"
	ucReservation "github.com/lotusspa/salon-scheduler/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	catalogCache := cache.New(cfg)
	mediaStore := storage.NewMediaStore(cfg)
	eventPublisher := queue.NewPublisher(cfg.AMQPUrl)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		eventPublisher,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		reservationRepo,
		auditDispatcher,
		eventPublisher,
	)

	completeReservationUC := ucReservation.NewCompleteReservation(
		reservationRepo,
		auditDispatcher,
		eventPublisher,
	)

	listHistoryUC := ucReservation.NewListHistory(reservationRepo)

	availableBedsUC := ucReservation.NewListAvailableBeds(reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, cfg, auditDispatcher)
	salonHandler := handlers.NewSalonHandler(db, catalogCache, auditDispatcher)
	branchHandler := handlers.NewBranchHandler(db, catalogCache, auditDispatcher)
	bedHandler := handlers.NewBedHandler(db, auditDispatcher)
	therapyHandler := handlers.NewTherapyHandler(db, catalogCache, auditDispatcher)
	mediaHandler := handlers.NewMediaHandler(db, mediaStore, catalogCache, auditDispatcher)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		cancelReservationUC,
		completeReservationUC,
		listHistoryUC,
		availableBedsUC,
	)

	adminHandler := handlers.NewAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/salons", salonHandler.ListPublic)
			publicAPI.GET("/salons/:id", salonHandler.DetailPublic)
			publicAPI.GET("/salons/:id/beds", salonHandler.ListBedsPublic)
		}

		// ------------------------------
		// AUTHENTICATED (any role)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.PUT("/me/promote", meHandler.Promote)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", reservationHandler.ListHistory)
			secured.PUT("/reservations/:id/cancel", reservationHandler.Cancel)
			secured.GET("/salons/:id/available-beds", reservationHandler.AvailableBeds)

			// ------------------------------
			// SALON OWNER
			// ------------------------------
			owner := secured.Group("/owner")
			owner.Use(middleware.RequireRoles(account.RoleSalonOwner))
			{
				owner.GET("/salon", salonHandler.GetMySalon)
				owner.PATCH("/salon", salonHandler.UpdateMySalon)

				owner.POST("/salon/branches", branchHandler.Create)
				owner.DELETE("/salon/branches/:id", branchHandler.Delete)

				owner.POST("/branches/:id/beds", bedHandler.Create)
				owner.DELETE("/beds/:id", bedHandler.Delete)

				owner.POST("/salon/therapies", therapyHandler.Create)
				owner.PUT("/salon/therapies/:id", therapyHandler.Update)
				owner.DELETE("/salon/therapies/:id", therapyHandler.Delete)

				owner.POST("/salon/media", mediaHandler.Upload)
				owner.DELETE("/salon/media/:id", mediaHandler.Delete)

				owner.PATCH("/reservations/:id/complete", reservationHandler.Complete)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			adminAPI := secured.Group("/admin")
			adminAPI.Use(middleware.RequireRoles(account.RoleAdmin))
			{
				adminAPI.GET("/users", adminHandler.ListUsers)
				adminAPI.DELETE("/users/:id", adminHandler.DeleteUser)
				adminAPI.GET("/salons", adminHandler.ListSalons)
				adminAPI.DELETE("/salons/:id", adminHandler.DeleteSalon)
			}
		}
	}
}
