package main

import (
	"context"
	"fmt"
	"log"

	"lexconnect/internal/config"
	"lexconnect/internal/handler"
	"lexconnect/internal/repository/sqlite"
	"lexconnect/internal/router"
	"lexconnect/internal/seed"
	"lexconnect/internal/service"
)

// @title LexConnect API
// @version 1.0
// @description Law firm client collaboration portal backend
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := sqlite.NewUserRepo(db)
	caseRepo := sqlite.NewCaseRepo(db)
	appointmentRepo := sqlite.NewAppointmentRepo(db)
	documentRepo := sqlite.NewDocumentRepo(db)
	conversationRepo := sqlite.NewConversationRepo(db)
	caseTypeRepo := sqlite.NewCaseTypeRepo(db)
	notificationRepo := sqlite.NewNotificationRepo(db)

	if cfg.Seed.Demo {
		if err := seed.Run(context.Background(), seed.Repos{
			Users:         userRepo,
			Cases:         caseRepo,
			Appointments:  appointmentRepo,
			Documents:     documentRepo,
			Conversations: conversationRepo,
			CaseTypes:     caseTypeRepo,
			Notifications: notificationRepo,
		}); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	caseSvc := service.NewCaseService(caseRepo, caseTypeRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, userRepo)
	documentSvc := service.NewDocumentService(documentRepo, caseRepo)
	conversationSvc := service.NewConversationService(conversationRepo)
	caseTypeSvc := service.NewCaseTypeService(caseTypeRepo)
	dashboardSvc := service.NewDashboardService(caseRepo, appointmentRepo, documentRepo, conversationRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		User:         handler.NewUserHandler(userSvc),
		Case:         handler.NewCaseHandler(caseSvc),
		Appointment:  handler.NewAppointmentHandler(appointmentSvc),
		Document:     handler.NewDocumentHandler(documentSvc),
		Conversation: handler.NewConversationHandler(conversationSvc),
		CaseType:     handler.NewCaseTypeHandler(caseTypeSvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Notification: handler.NewNotificationHandler(notificationSvc),
		Health:       handler.NewHealthHandler(db),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
