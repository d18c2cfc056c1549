package main

import (
	"github.com/RasuriVIGNESH/peerconnect/internal/config"
	"github.com/RasuriVIGNESH/peerconnect/internal/handlers"
	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/internal/services"
	"github.com/RasuriVIGNESH/peerconnect/internal/utils"
	"github.com/RasuriVIGNESH/peerconnect/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	taskQueue services.TaskQueue
	worker    *services.Worker
	scheduler *services.Scheduler

	authHandler         *handlers.AuthHandler
	projectHandler      *handlers.ProjectHandler
	teamHandler         *handlers.TeamHandler
	invitationHandler   *handlers.InvitationHandler
	joinRequestHandler  *handlers.JoinRequestHandler
	skillHandler        *handlers.SkillHandler
	notificationHandler *handlers.NotificationHandler
	healthHandler       *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, queue,
// services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed the predefined skill catalog
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	db := models.GetDB()

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	taskQueue := services.InitTaskQueue(cfg)
	notificationService := services.NewNotificationService(db, taskQueue)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(notificationService.ProcessTask)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(notificationService.ProcessTask)
			worker.Start()
		}
	}

	// Core services
	skillService := services.NewSkillService(db)
	teamService := services.NewTeamService(db, notificationService)
	projectService := services.NewProjectService(db, skillService, teamService)
	invitationService := services.NewInvitationService(db, teamService, notificationService)
	joinRequestService := services.NewJoinRequestService(db, teamService, notificationService)
	userSkillService := services.NewUserSkillService(db, skillService)
	authService := services.NewAuthService(db, &cfg.JWT)

	// Invitation expiry sweep
	scheduler := services.NewScheduler(invitationService, cfg.Team.InvitationTTLDays)
	if err := scheduler.Start(); err != nil {
		logger.Warn().Err(err).Msg("Failed to start scheduler")
	}

	return &appServices{
		taskQueue: taskQueue,
		worker:    worker,
		scheduler: scheduler,

		authHandler:         handlers.NewAuthHandler(authService),
		projectHandler:      handlers.NewProjectHandler(projectService),
		teamHandler:         handlers.NewTeamHandler(teamService),
		invitationHandler:   handlers.NewInvitationHandler(invitationService),
		joinRequestHandler:  handlers.NewJoinRequestHandler(joinRequestService),
		skillHandler:        handlers.NewSkillHandler(skillService, userSkillService),
		notificationHandler: handlers.NewNotificationHandler(notificationService),
		healthHandler:       handlers.NewHealthHandler(),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
	logger.Info().Msg("All services stopped")
}
